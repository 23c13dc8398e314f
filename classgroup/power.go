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

// Pow computes f^exp by classical left-to-right square-and-multiply,
// starting the accumulator at the principal form (the group identity) and
// walking exp's bits from the most significant down. A negative exp is
// rejected - callers that need f^-exp should invert the base first via
// Inverse, which keeps this routine's contract to non-negative exponents
// only, matching how every caller in this package already has the sign
// resolved before it gets here.
func Pow(f *Form, exp *big.Int, ctx *Ctx) (*Form, error) {
	if exp.Sign() < 0 {
		return nil, ErrNegativeExponent
	}
	result := Principal(f.discriminant)
	if exp.Sign() == 0 {
		return result, nil
	}
	for i := exp.BitLen() - 1; i >= 0; i-- {
		squared, err := Compose(result, result, ctx)
		if err != nil {
			return nil, err
		}
		result = squared
		if exp.Bit(i) == 1 {
			multiplied, err := Compose(result, f, ctx)
			if err != nil {
				return nil, err
			}
			result = multiplied
		}
	}
	return result, nil
}

// PowUint64 is a convenience wrapper over Pow for small fixed exponents,
// such as squaring a cached base a handful of times while building a
// windowed exponentiation table.
func PowUint64(f *Form, exp uint64, ctx *Ctx) (*Form, error) {
	return Pow(f, new(big.Int).SetUint64(exp), ctx)
}
