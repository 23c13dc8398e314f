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
	"sync"

	"github.com/aisuosuo/clhomo/classgroup"
)

// The 3072-bit discriminant group: the conservative alternative to
// Group1827 that is not affected by the Sutherland group-order margin
// discussed in groups_1827.go.
const (
	deltaK3072Dec = "-4059187479482350050615628258855828167626431824732199036597668525464616895922000411261718516567731632732286800934600249406393974357768444047141581621951155803795734117021495676831593033172450357785597776576612281305223919414836213766354372816990863555296830253123574199460146205334642841425167146191511265843560519935132843345652241452096808325636749679870044168299284188041110855817763388520168386219623910310164928704787483081634387756726626535065281682599731277374016734081858737636466840542887162979503417512544889504232167650829937659939952944676065304893114687576168003023224828141758525768773373824222139881461335520424806873120226629820060875152488085708505799289587546695067879685280385374856021956449469249646800629229020371797593504643496190406594392765693007499422572180546825466666141075563827212225011483631613617098804995744522667871405671831585120704467080787250858292339350012462220525281878018038188111302643"

	generatorA3072Dec = "7558696258536269836685598691067254392455432126512045048703153470216587589262584772773889350803142696082644492391440222657387505436226106559387636399090692870409664685458565139268115361587965012801626486214178296724409957196458581564654675171891414734873480981011022434578765292108902615901895824430417440790854617643067937627692652614825761175005451229674634875483251243329253319146864770567796872059102546431266905942844241327140097892962334716147988086934626736364915485808267753549075272883526450647112751694864522351665428653263635553"

	generatorB3072Dec = "7110582194089178292873623928339940221177068678147419045016231011875502636852334272115320612748035025965493444044134858046528138916161220583195510694897710613486866021680645839297391773510359545101415795781046778268789176573129050721030057929435162739737320039997979549217218832394942012916585101410393854693994253094796506466642394248189174331033987416154803874258142847897908542918940158825420984527661422824424966184192353102243120918368701972881794424452449979886520228687483571195987688449901751348213142154870047359909042087991612521"

	discriminant3072Dec = "-54424806076527156168985032165443480786420749773635324654757897883565645703417884567871042148029631370681593998050904556738585685752650398063780963909714157075453959236964108559638106174791817697784880543469483206812928940067399311317488294362527938882175697366019957696115809536326918268075743444713094760405458243480351677889162968503597995433089866471083629557434694747572996742811168571602020576064530026860732056884277663707523145711611191348850530092216164179043365835314045243342514552963960414585323924973601164865544638680028963602014477110061372790986953196941681814148922608605077598475440517010589628638951818530996940003106846018822916313104592745851208891211437536842831920118837146579414872086574070852830341252313194989178993890549487609254953085788716425539786601425248044456208912081099634485955683519682483772537685513745962700726289912780998237173705138945626073085145984550221831801591311255789856639888250191333084021087921178381947976571438316855053762214058567794937388453551692847435930047709140590212761974735590043211787370187396675877349868884982570867"

	stilde3072Dec = "2731990876498942190907198793351360821924936450827254526077205732808204356440122049083260923320622633917729210455296914797563479318897501367228802354913238349385665287912286300665455086668936692955454575005791947875391212727463655396061046670508369983948246816429384317848036518361689362084276319232647078502064602526624505278574375502609123069687358026449142841870608209630753106164304656955565967571069523057451219185931205895267929394930386842181744618272983847612"
)

var (
	group3072Once    sync.Once
	group3072        *Group
	group3072ctx     *classgroup.Ctx
	group3072UpdOnce sync.Once
	group3072Updated *Group
)

// Group3072 returns the fixed 3072-bit discriminant group.
func Group3072() *Group {
	group3072Once.Do(func() {
		group3072ctx = classgroup.NewCtx()
		group3072 = newGroup(
			parseDec(deltaK3072Dec),
			parseDec(generatorA3072Dec),
			parseDec(generatorB3072Dec),
			parseDec(discriminant3072Dec),
			parseDec(stilde3072Dec),
		)
	})
	return group3072
}

// Group3072Updated returns the 3072-bit group whose generator has already
// been raised to q.
func Group3072Updated() *Group {
	Group3072()
	group3072UpdOnce.Do(func() {
		updated, err := group3072.updated(group3072ctx)
		if err != nil {
			panic("cl: failed to derive updated 3072-bit group: " + err.Error())
		}
		group3072Updated = updated
	})
	return group3072Updated
}
