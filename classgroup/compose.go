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

// Compose multiplies two forms of the same discriminant (the ideal class
// group operation) and returns the reduced product. At least one of f1, f2
// must be primitive; this is the precondition under which the coefficient
// formula below is an exact composition, with no separate d0 factor the way
// full NUCOMP needs for non-primitive inputs.
//
// The named intermediates (g, h, w, s, t, u, mu, v, lambda, k, l, m) live in
// ctx and are reused across calls. Each call still allocates the result
// Form, exGCD's return values, exactDiv's quotient and remainder, and
// IsPrimitive's gcd, so composition is not allocation-free.
func Compose(f1, f2 *Form, ctx *Ctx) (*Form, error) {
	if f1.discriminant.Cmp(f2.discriminant) != 0 {
		return nil, ErrDifferentDiscriminant
	}
	if !f1.IsPrimitive(ctx) && !f2.IsPrimitive(ctx) {
		return nil, ErrNonPrimitive
	}

	// g = (b1 + b2) / 2
	ctx.g.Add(f1.b, f2.b)
	ctx.g.Rsh(ctx.g, 1)

	// h = (b2 - b1) / 2
	ctx.h.Sub(f2.b, f1.b)
	ctx.h.Rsh(ctx.h, 1)

	// w = gcd(a1, a2, g)
	threeGCD(ctx.w, f1.a, f2.a, ctx.g, ctx)

	// s = a1/w, t = a2/w, u = g/w
	if err := exactDiv(ctx.s, f1.a, ctx.w); err != nil {
		return nil, err
	}
	if err := exactDiv(ctx.t, f2.a, ctx.w); err != nil {
		return nil, err
	}
	if err := exactDiv(ctx.u, ctx.g, ctx.w); err != nil {
		return nil, err
	}

	// First congruence: (t*u)*mu = h*u + s*c1 (mod s*t); v = (s*t)/gcd(t*u, s*t).
	ctx.a.Mul(ctx.t, ctx.u)
	ctx.b.Mul(ctx.h, ctx.u)
	ctx.m.Mul(ctx.s, f1.c)
	ctx.b.Add(ctx.b, ctx.m)
	ctx.m.Mul(ctx.s, ctx.t)
	if err := solveLinearCongruence(ctx.mu, ctx.v, ctx.a, ctx.b, ctx.m, ctx); err != nil {
		return nil, err
	}

	// Second congruence: (t*v)*lambda = h - t*mu (mod s).
	ctx.a.Mul(ctx.t, ctx.v)
	ctx.m.Mul(ctx.t, ctx.mu)
	ctx.b.Sub(ctx.h, ctx.m)
	ctx.m.Set(ctx.s)
	if err := solveLinearCongruence(ctx.lambda, ctx.sigma, ctx.a, ctx.b, ctx.m, ctx); err != nil {
		return nil, err
	}

	// k = mu + v*lambda
	ctx.a.Mul(ctx.v, ctx.lambda)
	ctx.k.Add(ctx.mu, ctx.a)

	// l = (k*t - h) / s
	ctx.l.Mul(ctx.k, ctx.t)
	ctx.l.Sub(ctx.l, ctx.h)
	if err := exactDiv(ctx.l, ctx.l, ctx.s); err != nil {
		return nil, err
	}

	// m = (t*u*k - h*u - c1*s) / (s*t)
	ctx.m.Mul(ctx.t, ctx.u)
	ctx.m.Mul(ctx.m, ctx.k)
	ctx.a.Mul(ctx.h, ctx.u)
	ctx.m.Sub(ctx.m, ctx.a)
	ctx.a.Mul(f1.c, ctx.s)
	ctx.m.Sub(ctx.m, ctx.a)
	ctx.a.Mul(ctx.s, ctx.t)
	if err := exactDiv(ctx.m, ctx.m, ctx.a); err != nil {
		return nil, err
	}

	out := &Form{
		a:            new(big.Int),
		b:            new(big.Int),
		c:            new(big.Int),
		discriminant: new(big.Int).Set(f1.discriminant),
	}

	// A = s*t
	out.a.Mul(ctx.s, ctx.t)

	// B = w*u - k*t - l*s
	out.b.Mul(ctx.w, ctx.u)
	ctx.a.Mul(ctx.k, ctx.t)
	out.b.Sub(out.b, ctx.a)
	ctx.a.Mul(ctx.l, ctx.s)
	out.b.Sub(out.b, ctx.a)

	// C = k*l - w*m
	out.c.Mul(ctx.k, ctx.l)
	ctx.a.Mul(ctx.w, ctx.m)
	out.c.Sub(out.c, ctx.a)

	reduce(out, ctx)
	return out, nil
}

// exactDiv sets out = x/y and fails with ErrNotExact if the division has a
// nonzero remainder - every division in composition is a correctness
// condition, not a convention.
func exactDiv(out, x, y *big.Int) error {
	q, r := new(big.Int), new(big.Int)
	q.QuoRem(x, y, r)
	if r.Sign() != 0 {
		return ErrNotExact
	}
	out.Set(q)
	return nil
}
