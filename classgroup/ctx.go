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

// Ctx is a pool of named big.Int scratch slots shared by Compose, Reduce and
// the congruence solver. It is the single-owner equivalent of the mutable
// scratch struct threaded through the original NUCOMP routine: the named
// intermediates of composition, reduction and the congruence solver land in
// these fields instead of being allocated fresh. Composition is not fully
// allocation-free: each call still allocates its result form and a few
// short-lived values (exGCD's results, exactDiv's quotient and remainder,
// IsPrimitive's gcd). A Ctx must not be shared across goroutines; give each
// worker its own.
type Ctx struct {
	// composition scratch, named after the NUCOMP step variables they hold.
	g, h, w, s, t, u *big.Int
	a, b, m          *big.Int
	mu, v, lambda    *big.Int
	sigma, k, l      *big.Int

	// congruence solver scratch (congruence.go).
	cgD, cgU, cgV, cgTmp *big.Int

	// three-gcd scratch (gcd.go).
	gcdTmp *big.Int

	// reduction scratch (reduce.go).
	redR, redTmp1, redTmp2 *big.Int

	// general-purpose scratch for callers that need one extra slot
	// (threeGCD's second operand, normalize's a*r^2).
	tmp *big.Int
}

// NewCtx allocates and zero-initializes a scratch pool. Allocate one per
// goroutine and reuse it across every Compose/Pow/Reduce call.
func NewCtx() *Ctx {
	c := &Ctx{}
	for _, p := range c.slots() {
		*p = new(big.Int)
	}
	return c
}

// slots returns every scratch field by pointer, used only for allocation.
func (c *Ctx) slots() []**big.Int {
	return []**big.Int{
		&c.g, &c.h, &c.w, &c.s, &c.t, &c.u,
		&c.a, &c.b, &c.m,
		&c.mu, &c.v, &c.lambda,
		&c.sigma, &c.k, &c.l,
		&c.cgD, &c.cgU, &c.cgV, &c.cgTmp,
		&c.gcdTmp,
		&c.redR, &c.redTmp1, &c.redTmp2,
		&c.tmp,
	}
}
