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
	"math/big"

	"github.com/aisuosuo/clhomo/classgroup"
	"github.com/aisuosuo/clhomo/random"
	"github.com/aisuosuo/clhomo/scalar"
)

// Encrypt returns a fresh encryption of m under pk: (c1, c2) = (g^r, h^r *
// f^m) for a random r, together with the ephemeral private key r itself -
// callers running an interactive protocol (e.g. a ZK proof of correct
// encryption) may need r afterwards.
func Encrypt(pk *PublicKey, m *scalar.FE, ctx *classgroup.Ctx) (*Ciphertext, *PrivateKey, error) {
	r, err := random.Below(pk.group.exponentBound())
	if err != nil {
		return nil, nil, err
	}

	c1, err := classgroup.Pow(pk.group.generator, r, ctx)
	if err != nil {
		return nil, nil, err
	}

	hr, err := classgroup.Pow(pk.h, r, ctx)
	if err != nil {
		return nil, nil, err
	}

	fm, err := expoF(scalar.Order, pk.group.Discriminant(), m.Int())
	if err != nil {
		return nil, nil, err
	}

	c2, err := classgroup.Compose(hr, fm, ctx)
	if err != nil {
		return nil, nil, err
	}

	return &Ciphertext{C1: c1, C2: c2},
		&PrivateKey{group: pk.group, x: r},
		nil
}

// EncryptWithoutR encrypts m with the ephemeral exponent fixed to zero:
// (c1, c2) = (identity, f^m). This produces a ciphertext that is not
// semantically secure on its own - it only carries m in the clear inside
// the group's order-p subgroup - and exists for protocols that add a
// properly randomized encryption of zero afterwards (eval_sum with a
// regular Encrypt output) to restore hiding.
func EncryptWithoutR(group *Group, m *scalar.FE, ctx *classgroup.Ctx) (*Ciphertext, *PrivateKey, error) {
	r := new(big.Int)
	c1, err := classgroup.Pow(group.generator, r, ctx)
	if err != nil {
		return nil, nil, err
	}
	fm, err := expoF(scalar.Order, group.Discriminant(), m.Int())
	if err != nil {
		return nil, nil, err
	}
	return &Ciphertext{C1: c1, C2: fm},
		&PrivateKey{group: group, x: r},
		nil
}

// Decrypt recovers the plaintext scalar m from a ciphertext encrypted under
// sk's matching public key: c1^-x cancels h^r out of c2, leaving f^m, whose
// discrete log in the order-p subgroup is recovered by discreteLogF.
func Decrypt(sk *PrivateKey, c *Ciphertext, ctx *classgroup.Ctx) (*scalar.FE, error) {
	c1x, err := classgroup.Pow(c.C1, sk.x, ctx)
	if err != nil {
		return nil, err
	}
	c1xInv := c1x.Inverse(ctx)

	fm, err := classgroup.Compose(c.C2, c1xInv, ctx)
	if err != nil {
		return nil, err
	}

	m := discreteLogF(scalar.Order, sk.group.Discriminant(), fm)
	return scalar.NewFE(m), nil
}

// EvalScal homomorphically multiplies the encrypted plaintext by a public
// scalar k: (c1, c2)^k = (c1^k, c2^k).
func EvalScal(c *Ciphertext, k *big.Int, ctx *classgroup.Ctx) (*Ciphertext, error) {
	c1, err := classgroup.Pow(c.C1, k, ctx)
	if err != nil {
		return nil, err
	}
	c2, err := classgroup.Pow(c.C2, k, ctx)
	if err != nil {
		return nil, err
	}
	return &Ciphertext{C1: c1, C2: c2}, nil
}

// EvalSum homomorphically adds two ciphertexts' plaintexts: component-wise
// composition in the class group.
func EvalSum(a, b *Ciphertext, ctx *classgroup.Ctx) (*Ciphertext, error) {
	c1, err := classgroup.Compose(a.C1, b.C1, ctx)
	if err != nil {
		return nil, err
	}
	c2, err := classgroup.Compose(a.C2, b.C2, ctx)
	if err != nil {
		return nil, err
	}
	return &Ciphertext{C1: c1, C2: c2}, nil
}
