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

// Package scalar carries the secp256k1 scalar field: the plaintext space of
// the linearly homomorphic encryption scheme in package cl. The curve itself
// never appears here - only its group order, q, which pins the size of
// everything the scheme encrypts.
package scalar

import (
	"errors"
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"
)

// ErrOutOfRange is returned when a value does not lie in [0, Order).
var ErrOutOfRange = errors.New("scalar: value out of range")

// Order is q, the order of the secp256k1 base point - also the order of the
// scalar field elements this package converts to and from class-group
// exponents.
var Order = btcec.S256().Params().N

// FE is a field element of the scalar field, always kept reduced modulo
// Order. It is the external representation a collaborating elliptic-curve
// package would hand this library a plaintext in.
type FE struct {
	v *big.Int
}

// NewFE reduces v modulo Order and wraps it.
func NewFE(v *big.Int) *FE {
	return &FE{v: new(big.Int).Mod(v, Order)}
}

// Int returns the field element's representative in [0, Order) as a plain
// big.Int, safe for the caller to mutate.
func (f *FE) Int() *big.Int {
	return new(big.Int).Set(f.v)
}

// String renders the field element in base 10, the wire format FE<->Int
// round-trips through.
func (f *FE) String() string {
	return f.v.String()
}

// FEFromString parses a base-10 field element, rejecting values outside
// [0, Order).
func FEFromString(s string) (*FE, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, ErrOutOfRange
	}
	if v.Sign() < 0 || v.Cmp(Order) >= 0 {
		return nil, ErrOutOfRange
	}
	return &FE{v: v}, nil
}

// BigIntToHex renders an arbitrary-precision integer (a class-group
// exponent, not necessarily reduced mod Order) as a base-16 string - the
// BigInt<->Int wire format class-group coefficients and ciphertext
// components round-trip through when a collaborating component wants a
// compact hex encoding instead of cbor.
func BigIntToHex(v *big.Int) string {
	return v.Text(16)
}

// BigIntFromHex parses a base-16 encoded arbitrary-precision integer.
func BigIntFromHex(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return nil, ErrOutOfRange
	}
	return v, nil
}
