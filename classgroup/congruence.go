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

// solveLinearCongruence finds mu such that a*mu = b (mod m), writing the
// result into outMu. When outV is non-nil it also receives m/gcd(a, m), the
// modulus of the reduced system - composition reuses it as the next
// congruence's cofactor instead of recomputing a gcd. m must be strictly
// positive; composition always passes s*t or s, both positive. a may be zero
// or negative (composition's first solve passes t*u, and u takes the sign of
// b1+b2); exGCD handles its sign.
func solveLinearCongruence(outMu, outV *big.Int, a, b, m *big.Int, ctx *Ctx) error {
	u, _, d := exGCD(a, m)

	ctx.cgTmp.Mod(b, d)
	if ctx.cgTmp.Sign() != 0 {
		return ErrNoSolution
	}

	// mOverD = m / d
	ctx.cgD.Div(m, d)

	// bOverD = b / d
	ctx.cgU.Div(b, d)

	outMu.Mul(u, ctx.cgU)
	outMu.Mod(outMu, ctx.cgD)

	if outV != nil {
		outV.Set(ctx.cgD)
	}
	return nil
}
