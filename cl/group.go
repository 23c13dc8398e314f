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

	"github.com/aisuosuo/clhomo/classgroup"
	"github.com/aisuosuo/clhomo/scalar"
)

var big2 = big.NewInt(2)

// Group is a fixed instance of [CL15, Fig. 2]'s setup: the ideal class group
// G = <g> generated by g, together with stilde, the published upper bound on
// G's order that keygen draws its secret exponent below. delta_k is kept
// only for reference - every arithmetic operation works in the order of
// discriminant Δ_p = Δ_k * p^2 that the generator's form already carries.
type Group struct {
	deltaK    *big.Int
	generator *classgroup.Form
	stilde    *big.Int
}

// newGroup builds a Group from its generator's (a, b, Δ) and the group's
// published parameters. It exists so groups_1827.go and groups_3072.go stay
// pure data: decimal literals in, a Group out.
func newGroup(deltaK, a, b, discriminant, stilde *big.Int) *Group {
	generator, err := classgroup.NewByDiscriminant(a, b, discriminant)
	if err != nil {
		panic("cl: embedded group parameters do not form a valid class: " + err.Error())
	}
	return &Group{
		deltaK:    new(big.Int).Set(deltaK),
		generator: generator,
		stilde:    new(big.Int).Set(stilde),
	}
}

// Discriminant returns Δ_p, the discriminant every form in this group shares.
func (g *Group) Discriminant() *big.Int {
	return g.generator.Discriminant()
}

// Generator returns the group's generator g.
func (g *Group) Generator() *classgroup.Form {
	return g.generator
}

// Stilde returns the published upper bound on the generator's order.
func (g *Group) Stilde() *big.Int {
	return new(big.Int).Set(g.stilde)
}

// exponentBound is stilde * 2^40, the range keygen draws secret exponents
// from - d = 40 in the paper's notation, the "distribution distance" that
// statistically hides which multiple of the order the secret actually is.
func (g *Group) exponentBound() *big.Int {
	bound := new(big.Int).Lsh(g.stilde, 40)
	return bound
}

// updated returns a new Group whose generator is this group's generator
// raised to q, the secp256k1 scalar field order - the "GROUP_UPDATE" variant
// used everywhere f^m needs to stay in the order-p subgroup independent of
// the group's own generator choice.
func (g *Group) updated(ctx *classgroup.Ctx) (*Group, error) {
	gq, err := classgroup.Pow(g.generator, scalar.Order, ctx)
	if err != nil {
		return nil, err
	}
	return &Group{
		deltaK:    new(big.Int).Set(g.deltaK),
		generator: gq,
		stilde:    new(big.Int).Set(g.stilde),
	}, nil
}

// expoF computes Red(f^k) for f = (p^2, p), the generator of the order-p
// subgroup of the class group, using the closed form from [CL15,
// Proposition 1] instead of repeated composition: Red(f^k) = (p^2, L(k)*p)
// where L(k) is k^-1 mod p, normalized to be odd.
func expoF(p, discriminant, k *big.Int) (*classgroup.Form, error) {
	if k.Sign() == 0 {
		return classgroup.Principal(discriminant), nil
	}
	kInv := new(big.Int).ModInverse(k, p)
	if kInv == nil {
		return nil, ErrPlaintextOutOfRange
	}
	if new(big.Int).Mod(kInv, big2).Sign() == 0 {
		kInv.Sub(kInv, p)
	}
	b := new(big.Int).Mul(kInv, p)
	a := new(big.Int).Mul(p, p)
	return classgroup.NewByDiscriminant(a, b, discriminant)
}

// discreteLogF inverts expoF: given fm = f^m for the fixed generator
// f = (p^2, p), recovers m. This only works for elements actually produced
// by expoF - it is the fast discrete log specific to the order-p subgroup,
// not a general class-group discrete log (which is assumed hard).
func discreteLogF(p, discriminant *big.Int, fm *classgroup.Form) *big.Int {
	principal := classgroup.Principal(discriminant)
	if fm.Equal(principal) {
		return new(big.Int)
	}
	lk := new(big.Int).Div(fm.B(), p)
	return new(big.Int).ModInverse(lk, p)
}
