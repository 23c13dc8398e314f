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

// Package classgroup implements the ideal class group arithmetic of a binary
// quadratic form of negative discriminant: reduction, NUCOMP-style
// composition and exponentiation. All hot-path operations thread a *Ctx
// scratch pool that holds their named intermediates; composition still
// allocates its result and a few short-lived values on every call.
package classgroup

import "errors"

var (
	// ErrInvalidDiscriminant is returned when Δ >= 0 or Δ != 1 (mod 4).
	ErrInvalidDiscriminant = errors.New("classgroup: invalid discriminant")
	// ErrDifferentDiscriminant is returned when two forms of different Δ are combined.
	ErrDifferentDiscriminant = errors.New("classgroup: different discriminant")
	// ErrNonPrimitive is returned when composition is attempted on two non-primitive forms.
	ErrNonPrimitive = errors.New("classgroup: neither form is primitive")
	// ErrNotExact is returned when an intermediate division in composition has a nonzero remainder.
	ErrNotExact = errors.New("classgroup: inexact division")
	// ErrNoSolution is returned when the linear congruence a*mu = b (mod m) has no solution.
	ErrNoSolution = errors.New("classgroup: no solution to linear congruence")
	// ErrNegativeExponent is returned when Pow is called with a negative exponent.
	ErrNegativeExponent = errors.New("classgroup: negative exponent")
	// ErrInvalidMessage is returned when a serialized form cannot be parsed.
	ErrInvalidMessage = errors.New("classgroup: invalid message")
)
