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

package classgroup

import "math/big"

var (
	big0 = big.NewInt(0)
	big1 = big.NewInt(1)
	big2 = big.NewInt(2)
	big4 = big.NewInt(4)
)

// Form is a binary quadratic form a*x^2 + b*x*y + c*y^2 of negative
// discriminant Δ = b^2 - 4ac. Every form produced by this package is kept
// reduced: |b| <= a <= c, and b >= 0 whenever |b| == a or a == c. Two forms
// represent the same class in the ideal class group iff their reduced (a, b)
// pairs are equal - c is redundant, it is pinned by a, b and Δ.
//
// Forms own their integer fields and are mutated only by Compose, Pow,
// Reduce and Inverse. They are safe to copy by value of their pointer
// contents via Copy, and are never shared across goroutines concurrently.
type Form struct {
	a, b, c      *big.Int
	discriminant *big.Int
}

// New constructs a form from (a, b, c), deriving and validating Δ = b^2-4ac,
// and reduces it to canonical form.
func New(a, b, c *big.Int) (*Form, error) {
	disc, err := discriminantOf(a, b, c)
	if err != nil {
		return nil, err
	}
	f := &Form{
		a: new(big.Int).Set(a),
		b: new(big.Int).Set(b),
		c: new(big.Int).Set(c),
		discriminant: disc,
	}
	reduce(f, NewCtx())
	return f, nil
}

// NewByDiscriminant constructs a form from (a, b, Δ), deriving
// c = (b^2 - Δ)/(4a), and reduces it to canonical form. This is the
// constructor the class-group layer uses, since a and b alone (plus the
// group's fixed Δ) pin down a form.
func NewByDiscriminant(a, b, disc *big.Int) (*Form, error) {
	if !validDiscriminant(disc) {
		return nil, ErrInvalidDiscriminant
	}
	f := newUnreduced(a, b, disc)
	reduce(f, NewCtx())
	return f, nil
}

// newUnreduced builds (a, b, c) from (a, b, Δ) without reducing; its caller
// NewByDiscriminant reduces the result with a fresh Ctx.
func newUnreduced(a, b, disc *big.Int) *Form {
	c := new(big.Int).Mul(b, b)
	c.Sub(c, disc)
	c.Rsh(c, 2)
	c.Div(c, a)
	return &Form{
		a:            new(big.Int).Set(a),
		b:            new(big.Int).Set(b),
		c:            c,
		discriminant: new(big.Int).Set(disc),
	}
}

func discriminantOf(a, b, c *big.Int) (*big.Int, error) {
	disc := new(big.Int).Mul(b, b)
	ac := new(big.Int).Mul(a, c)
	ac.Lsh(ac, 2)
	disc.Sub(disc, ac)
	if !validDiscriminant(disc) {
		return nil, ErrInvalidDiscriminant
	}
	return disc, nil
}

func validDiscriminant(disc *big.Int) bool {
	if disc.Sign() >= 0 {
		return false
	}
	mod4 := new(big.Int).Mod(disc, big4)
	return mod4.Cmp(big1) == 0
}

// Principal returns the identity element of the class group of discriminant
// Δ: the form (1, 1, (1-Δ)/4).
func Principal(disc *big.Int) *Form {
	c := new(big.Int).Sub(big1, disc)
	c.Rsh(c, 2)
	return &Form{
		a:            new(big.Int).Set(big1),
		b:            new(big.Int).Set(big1),
		c:            c,
		discriminant: new(big.Int).Set(disc),
	}
}

// A returns the form's a coefficient.
func (f *Form) A() *big.Int { return f.a }

// B returns the form's b coefficient.
func (f *Form) B() *big.Int { return f.b }

// C returns the form's c coefficient.
func (f *Form) C() *big.Int { return f.c }

// Discriminant returns Δ.
func (f *Form) Discriminant() *big.Int { return f.discriminant }

// IsReduced reports whether the form already satisfies the reduced-form
// invariant: |b| <= a <= c, with b >= 0 whenever a == |b| or a == c.
func (f *Form) IsReduced() bool {
	absB := new(big.Int).Abs(f.b)
	if f.a.Cmp(absB) > 0 && f.c.Cmp(f.a) > 0 {
		return true
	}
	if f.a.Cmp(absB) == 0 && f.b.Sign() >= 0 && f.a.Cmp(f.c) <= 0 {
		return true
	}
	if f.a.Cmp(f.c) == 0 && f.b.Sign() >= 0 && f.a.Cmp(absB) >= 0 {
		return true
	}
	return false
}

// IsPrimitive reports whether gcd(a, b, c) == 1.
func (f *Form) IsPrimitive(ctx *Ctx) bool {
	g := new(big.Int)
	threeGCD(g, f.a, f.b, f.c, ctx)
	return g.Cmp(big1) == 0
}

// Equal reports whether two (assumed-reduced) forms represent the same
// class: equality of the canonical (a, b) pair.
func (f *Form) Equal(other *Form) bool {
	return f.a.Cmp(other.a) == 0 && f.b.Cmp(other.b) == 0
}

// Copy returns a deep copy, safe to mutate independently of f.
func (f *Form) Copy() *Form {
	return &Form{
		a:            new(big.Int).Set(f.a),
		b:            new(big.Int).Set(f.b),
		c:            new(big.Int).Set(f.c),
		discriminant: new(big.Int).Set(f.discriminant),
	}
}

// Inverse returns the reduced inverse (a, -b, c) of f.
func (f *Form) Inverse(ctx *Ctx) *Form {
	inv := &Form{
		a:            new(big.Int).Set(f.a),
		b:            new(big.Int).Neg(f.b),
		c:            new(big.Int).Set(f.c),
		discriminant: new(big.Int).Set(f.discriminant),
	}
	reduce(inv, ctx)
	return inv
}
