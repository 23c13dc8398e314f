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

// Package cl implements the Castagnos-Laguillaumie linearly homomorphic
// public-key cryptosystem over the ideal class group of an imaginary
// quadratic order. The plaintext space is the secp256k1 scalar field;
// ciphertexts support homomorphic addition of plaintexts and homomorphic
// scalar multiplication without ever decrypting.
//
// Paper: Linearly Homomorphic Encryption from DDH, Castagnos & Laguillaumie,
// CT-RSA 2015. https://eprint.iacr.org/2015/047.pdf
package cl

import "errors"

var (
	// ErrTrivialKey is returned when a public key equals the group identity.
	ErrTrivialKey = errors.New("cl: public key is trivial")
	// ErrInvalidCiphertext is returned when an encoded ciphertext, its
	// discriminant or either of its components fails to decode.
	ErrInvalidCiphertext = errors.New("cl: invalid ciphertext")
	// ErrPlaintextOutOfRange is returned when a plaintext scalar does not
	// lie in the message space.
	ErrPlaintextOutOfRange = errors.New("cl: plaintext out of range")
)
