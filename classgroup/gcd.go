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

// threeGCD sets out to gcd(gcd(x, y), z), reusing ctx.gcdTmp as the one
// extra slot needed between the two pairwise GCDs. The result is always
// non-negative, matching math/big.Int.GCD's convention.
func threeGCD(out *big.Int, x, y, z *big.Int, ctx *Ctx) {
	out.GCD(nil, nil, absOf(ctx.gcdTmp, x), absOf(ctx.tmp, y))
	out.GCD(nil, nil, out, absOf(ctx.gcdTmp, z))
}

// absOf sets dst = |x| and returns dst. A small helper so three-gcd and
// exGCD never have to worry about math/big's requirement that GCD's inputs
// be non-negative.
func absOf(dst, x *big.Int) *big.Int {
	return dst.Abs(x)
}

// exGCD returns (u, v, d) such that u*x + v*y = d = gcd(|x|, |y|), for
// arbitrary-signed x, y. math/big's GCD only accepts non-negative operands
// and does not define the y == 0 case the way the linear-congruence solver
// needs it, so the sign bookkeeping here mirrors the textbook extended
// Euclidean algorithm exactly.
func exGCD(x, y *big.Int) (u, v, d *big.Int) {
	if y.Sign() == 0 {
		sign := int64(x.Sign())
		return big.NewInt(sign), big.NewInt(0), new(big.Int).Abs(x)
	}
	absX := new(big.Int).Abs(x)
	absY := new(big.Int).Abs(y)
	a, b := new(big.Int), new(big.Int)
	d = new(big.Int).GCD(a, b, absX, absY)
	if x.Sign() < 0 {
		a.Neg(a)
	}
	if y.Sign() < 0 {
		b.Neg(b)
	}
	return a, b, d
}
