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

package cl

import (
	"errors"
	"math/big"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/blake2b"

	"github.com/aisuosuo/clhomo/classgroup"
	"github.com/aisuosuo/clhomo/random"
	"github.com/aisuosuo/clhomo/scalar"
)

// maxHashRetries bounds the Fiat-Shamir challenge's rejection-sampling loop.
const maxHashRetries = 100

const saltSize = 32

// ErrExceedMaxRetry is returned when challenge rejection sampling fails to
// land in range after maxHashRetries attempts - astronomically unlikely for
// a well-formed challenge space.
var ErrExceedMaxRetry = errors.New("cl: exceeded max retries sampling a challenge")

// ErrFailedVerify is returned when an EncryptionProof fails to verify.
var ErrFailedVerify = errors.New("cl: proof verification failed")

// EncryptionProof is a Fiat-Shamir, Sigma-protocol style proof of knowledge
// of the plaintext and randomness underlying a ciphertext: the prover knows
// m and r such that c1 = g^r and c2 = h^r*f^m, without revealing either.
//
//	Step 1 (prover): draw r1 in [0, 2^40*stilde), r2 in [0, q).
//	                 t1 = g^r1, t2 = h^r1 * f^r2.
//	                 k  = H(t1, t2, c1, c2) mod challengeBound.
//	                 u1 = r1 + k*r (no reduction - u1 lives in Z).
//	                 u2 = r2 + k*m mod q.
//	Step 2 (verifier): recompute k from (t1, t2, c1, c2); check
//	                   g^u1 == t1 * c1^k  and  h^u1 * f^u2 == t2 * c2^k.
type EncryptionProof struct {
	Salt []byte
	T1   *classgroup.Form
	T2   *classgroup.Form
	U1   *big.Int
	U2   *big.Int
}

// challengeBound is the size of the Fiat-Shamir challenge space c: a small
// fixed challenge set (1024) kept as a named constant rather than a config
// field, since no caller of this package needs it to vary.
var challengeBound = big.NewInt(1024)

// hashSpace bounds the digests hashChallenge accepts: 2^256, a multiple of
// challengeBound, so an accepted digest reduced mod challengeBound is uniform.
var hashSpace = new(big.Int).Lsh(big.NewInt(1), 256)

type proofHashInput struct {
	T1 *classgroup.WireForm `cbor:"1,keyasint"`
	T2 *classgroup.WireForm `cbor:"2,keyasint"`
	C1 *classgroup.WireForm `cbor:"3,keyasint"`
	C2 *classgroup.WireForm `cbor:"4,keyasint"`
}

func hashChallenge(t1, t2, c1, c2 *classgroup.Form) (*big.Int, []byte, error) {
	payload, err := cbor.Marshal(&proofHashInput{
		T1: t1.ToWire(),
		T2: t2.ToWire(),
		C1: c1.ToWire(),
		C2: c2.ToWire(),
	})
	if err != nil {
		return nil, nil, err
	}
	for i := 0; i < maxHashRetries; i++ {
		salt, err := random.Bytes(saltSize)
		if err != nil {
			return nil, nil, err
		}
		digest := blake2b.Sum256(append(payload, salt...))
		k := new(big.Int).SetBytes(digest[:])
		if k.Cmp(hashSpace) < 0 {
			return k, salt, nil
		}
	}
	return nil, nil, ErrExceedMaxRetry
}

func rehashChallenge(t1, t2, c1, c2 *classgroup.Form, salt []byte) (*big.Int, error) {
	payload, err := cbor.Marshal(&proofHashInput{
		T1: t1.ToWire(),
		T2: t2.ToWire(),
		C1: c1.ToWire(),
		C2: c2.ToWire(),
	})
	if err != nil {
		return nil, err
	}
	digest := blake2b.Sum256(append(payload, salt...))
	return new(big.Int).SetBytes(digest[:]), nil
}

// Prove builds an EncryptionProof that the caller knows the plaintext m and
// randomness r behind ciphertext c, encrypted under pk.
func Prove(pk *PublicKey, c *Ciphertext, m *scalar.FE, r *PrivateKey, ctx *classgroup.Ctx) (*EncryptionProof, error) {
	r1Bound := new(big.Int).Lsh(pk.group.stilde, 40)
	r1, err := random.Below(r1Bound)
	if err != nil {
		return nil, err
	}
	r2, err := random.Below(scalar.Order)
	if err != nil {
		return nil, err
	}

	t1, err := classgroup.Pow(pk.group.generator, r1, ctx)
	if err != nil {
		return nil, err
	}
	hr1, err := classgroup.Pow(pk.h, r1, ctx)
	if err != nil {
		return nil, err
	}
	fr2, err := expoF(scalar.Order, pk.group.Discriminant(), r2)
	if err != nil {
		return nil, err
	}
	t2, err := classgroup.Compose(hr1, fr2, ctx)
	if err != nil {
		return nil, err
	}

	k, salt, err := hashChallenge(t1, t2, c.C1, c.C2)
	if err != nil {
		return nil, err
	}
	k.Mod(k, challengeBound)

	u1 := new(big.Int).Mul(k, r.x)
	u1.Add(u1, r1)

	u2 := new(big.Int).Mul(k, m.Int())
	u2.Add(u2, r2)
	u2.Mod(u2, scalar.Order)

	return &EncryptionProof{Salt: salt, T1: t1, T2: t2, U1: u1, U2: u2}, nil
}

// Verify checks an EncryptionProof against ciphertext c and public key pk.
func Verify(pk *PublicKey, c *Ciphertext, proof *EncryptionProof, ctx *classgroup.Ctx) error {
	k, err := rehashChallenge(proof.T1, proof.T2, c.C1, c.C2, proof.Salt)
	if err != nil {
		return err
	}
	k.Mod(k, challengeBound)

	// g^u1 == t1 * c1^k
	gu1, err := classgroup.Pow(pk.group.generator, proof.U1, ctx)
	if err != nil {
		return err
	}
	c1k, err := classgroup.Pow(c.C1, k, ctx)
	if err != nil {
		return err
	}
	wantLeft, err := classgroup.Compose(proof.T1, c1k, ctx)
	if err != nil {
		return err
	}
	if !gu1.Equal(wantLeft) {
		return ErrFailedVerify
	}

	// h^u1 * f^u2 == t2 * c2^k
	hu1, err := classgroup.Pow(pk.h, proof.U1, ctx)
	if err != nil {
		return err
	}
	fu2, err := expoF(scalar.Order, pk.group.Discriminant(), proof.U2)
	if err != nil {
		return err
	}
	left, err := classgroup.Compose(hu1, fu2, ctx)
	if err != nil {
		return err
	}
	c2k, err := classgroup.Pow(c.C2, k, ctx)
	if err != nil {
		return err
	}
	right, err := classgroup.Compose(proof.T2, c2k, ctx)
	if err != nil {
		return err
	}
	if !left.Equal(right) {
		return ErrFailedVerify
	}
	return nil
}
