// Copyright © 2020 AMIS Technologies
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cl

import (
	"math/big"
	"sync"

	"github.com/aisuosuo/clhomo/classgroup"
)

// The 1827-bit discriminant group. Per [CL15, Appendix B.3] this targets a
// 128-bit security level under the standard class-number estimate, with the
// caveat (see https://eprint.iacr.org/2020/196.pdf) that Sutherland's
// group-order algorithm narrows the margin for a small fraction of random
// instances - the 3072-bit group in groups_3072.go is the conservative
// alternative.
const (
	deltaK1827Dec = "-5612960460354297586496608465355436736175385121665162536528003724349027131555226649274328061478036486426974235182817460231858406454328229705097433539599357659030732986212902896965288623752937699627896244889952350312271535460213196686033784826094098560791044370859682930856242386198578254852455887200105136848768296981731378965699234956909793269449142655809687632817484368532297652832818925682445449730939672558315001010323704348812542103398759340104715127787089082447127193712577594846384285770469931817870736146192486488946997648500323172668328291265422577316785106221217309556660122713505680384876843920057653776862871100907889289236674725514431"

	generatorA1827Dec = "3379933361837959750444281267886081834476751587152191195702130129876229099797314884670653751744957540137083102210369145718831424083421213040698452363387299065826090566614550509104171596193940708452801446727936908797340323098201338663853170233065328696856790082422069275092967399794413723895514088363951458374936750806184395472544267780653575123461655052057240595359404437943529185106860238910043016082"

	generatorB1827Dec = "58358596530709071629230628954813789065094567413901151732504604054459961302465715041370372364950254062052414177175583619344532154277172761099891464143583046235404103174114873829883081661462607082144282568946995469931366172071928031362252538721358169137643386731728896321136677327778862260030176007687015790858390775199286445826383171957023481318023285705914617463624817890014105071550499557399120835"

	discriminant1827Dec = "-75257495770792601579408435348799912112609846029965206820064851604692987230254538914853608976971793980958712372789231634579578971529235823075608739231635687425758158575368321348137900869894119507551586698602273331769113654968615517566745786072923103207661147676790644792111452136974276225728730910712947503901232735129687891775293591232029998265064837518833536297518857716272011348573253397254136847763813364524813537416619588617528698171849359403663703760169261184343946919401092992684996593982744033815507830560787451354075275532210193117085590501285653650352846925182015277946751628767130269342252523310043345421861896214174850131607385236887381965429994384214519104490505249675175386383257705274311668138257554180057201072703457873180274207162029503126883077609392094864657038777406276133886450239"

	stilde1827Dec = "70874029964003222178994413383062782755071292199599732976843764646488791400299245173357367622414689715904677764175683692699088623752022377648358556868028456505343659927114861398173913787770528036913753917714784290366762147149325499950491790497996441006302782823370615596812470224184985789821376325103006605987671787325355230432"
)

func parseDec(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("cl: malformed embedded group constant")
	}
	return v
}

var (
	group1827Once    sync.Once
	group1827        *Group
	group1827ctx     *classgroup.Ctx
	group1827UpdOnce sync.Once
	group1827Updated *Group
)

// Group1827 returns the fixed 1827-bit discriminant group.
func Group1827() *Group {
	group1827Once.Do(func() {
		group1827ctx = classgroup.NewCtx()
		group1827 = newGroup(
			parseDec(deltaK1827Dec),
			parseDec(generatorA1827Dec),
			parseDec(generatorB1827Dec),
			parseDec(discriminant1827Dec),
			parseDec(stilde1827Dec),
		)
	})
	return group1827
}

// Group1827Updated returns the 1827-bit group whose generator has already
// been raised to q (the secp256k1 scalar field order) - the variant
// Encrypt/Decrypt actually operate in.
func Group1827Updated() *Group {
	Group1827()
	group1827UpdOnce.Do(func() {
		updated, err := group1827.updated(group1827ctx)
		if err != nil {
			panic("cl: failed to derive updated 1827-bit group: " + err.Error())
		}
		group1827Updated = updated
	})
	return group1827Updated
}
