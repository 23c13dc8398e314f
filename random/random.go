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

// Package random collects the cryptographically secure sampling routines the
// class-group homomorphic scheme needs: a uniform integer below a bound, a
// uniform integer in a half-open range, and a coin flip for sign choices.
// Every routine here is the one place a collaborating component would plug
// in an alternative entropy source.
package random

import (
	"crypto/rand"
	"errors"
	"math/big"
)

// ErrInvalidBound is returned when a sampling bound is not strictly positive.
var ErrInvalidBound = errors.New("random: bound must be positive")

var big1 = big.NewInt(1)

// Below returns a uniform random integer in [0, bound).
func Below(bound *big.Int) (*big.Int, error) {
	if bound.Sign() <= 0 {
		return nil, ErrInvalidBound
	}
	return rand.Int(rand.Reader, bound)
}

// Positive returns a uniform random integer in [1, bound); 0 is excluded.
func Positive(bound *big.Int) (*big.Int, error) {
	if bound.Cmp(big1) <= 0 {
		return nil, ErrInvalidBound
	}
	x, err := Below(new(big.Int).Sub(bound, big1))
	if err != nil {
		return nil, err
	}
	return x.Add(x, big1), nil
}

// InRange returns a uniform random integer in [floor, ceil).
func InRange(floor, ceil *big.Int) (*big.Int, error) {
	span := new(big.Int).Sub(ceil, floor)
	if span.Sign() <= 0 {
		return nil, ErrInvalidBound
	}
	x, err := Below(span)
	if err != nil {
		return nil, err
	}
	return x.Add(x, floor), nil
}

// Sign returns a uniform random choice of +1 or -1, used when a group
// element's exponent is drawn from a symmetric range around zero.
func Sign() (int, error) {
	b, err := Below(big.NewInt(2))
	if err != nil {
		return 0, err
	}
	if b.Sign() == 0 {
		return -1, nil
	}
	return 1, nil
}

// Bytes returns size cryptographically secure random bytes.
func Bytes(size int) ([]byte, error) {
	if size < 1 {
		return nil, ErrInvalidBound
	}
	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return nil, err
	}
	return buf, nil
}
