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

// reduce drives f to the unique reduced representative of its class, per
// Algorithm 5.4.2 (Cohen, A Course in Computational Algebraic Number
// Theory): normalize so -a < b <= a, then swap-and-renormalize while a > c
// (or a == c and b < 0). Each iteration strictly decreases max(a, |b|), so
// the loop always terminates. c is kept consistent with a, b, Δ throughout.
func reduce(f *Form, ctx *Ctx) {
	normalize(f, ctx)
	for f.a.Cmp(f.c) > 0 || (f.a.Cmp(f.c) == 0 && f.b.Sign() < 0) {
		f.a, f.c = f.c, f.a
		f.b.Neg(f.b)
		normalize(f, ctx)
	}
	if f.a.Cmp(f.c) == 0 && f.b.Sign() < 0 {
		f.b.Neg(f.b)
	}
	if ctx.redTmp1.Abs(f.b).Cmp(f.a) == 0 && f.b.Sign() < 0 {
		f.b.Neg(f.b)
	}
}

// normalize shifts (a, b, c) by the unique integer r so that the resulting
// b satisfies -a < b <= a:
//
//	r = floor((a - b) / (2a))
//	c <- a*r^2 + b*r + c   (using the pre-shift b)
//	b <- b + 2*r*a
func normalize(f *Form, ctx *Ctx) {
	twoA := ctx.redTmp1
	twoA.Lsh(f.a, 1)

	r := ctx.redR
	r.Sub(f.a, f.b)
	r.Div(r, twoA)

	rSq := ctx.tmp
	rSq.Mul(r, r)
	rSq.Mul(rSq, f.a)

	br := ctx.redTmp2
	br.Mul(f.b, r)

	f.c.Add(f.c, rSq)
	f.c.Add(f.c, br)

	twoRA := ctx.redTmp1
	twoRA.Mul(r, f.a)
	twoRA.Lsh(twoRA, 1)
	f.b.Add(f.b, twoRA)
}
