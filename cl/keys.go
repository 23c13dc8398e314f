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
)

// PublicKey is h = g^x for secret x, published alongside the Group it was
// derived in.
type PublicKey struct {
	group *Group
	h     *classgroup.Form
}

// PrivateKey is the secret exponent x.
type PrivateKey struct {
	group *Group
	x     *big.Int
}

// Group returns the group a public key was generated in.
func (pk *PublicKey) Group() *Group { return pk.group }

// H returns the public key's group element h = g^x.
func (pk *PublicKey) H() *classgroup.Form { return pk.h }

// Group returns the group a private key was generated in.
func (sk *PrivateKey) Group() *Group { return sk.group }

// X returns the secret exponent. Callers should treat the result as
// sensitive and avoid retaining it longer than necessary.
func (sk *PrivateKey) X() *big.Int { return new(big.Int).Set(sk.x) }

// GenerateKeyPair draws a secret exponent x uniformly from [0, stilde*2^40)
// and computes the public key h = g^x, per [CL15, Fig. 2]'s key generation.
// group should be the Group's *Updated variant so that every ciphertext
// this key ever produces is already reduced against the right generator.
func GenerateKeyPair(group *Group, ctx *classgroup.Ctx) (*PrivateKey, *PublicKey, error) {
	x, err := random.Below(group.exponentBound())
	if err != nil {
		return nil, nil, err
	}
	h, err := classgroup.Pow(group.generator, x, ctx)
	if err != nil {
		return nil, nil, err
	}
	if h.Equal(classgroup.Principal(group.Discriminant())) {
		return nil, nil, ErrTrivialKey
	}
	return &PrivateKey{group: group, x: x},
		&PublicKey{group: group, h: h},
		nil
}

// NewPrivateKey wraps an already-known secret exponent x (e.g. recovered
// from a key file) as a PrivateKey in group. It performs no validation
// beyond what group itself guarantees; callers that need the trivial-key
// check should go through GenerateKeyPair instead.
func NewPrivateKey(group *Group, x *big.Int) *PrivateKey {
	return &PrivateKey{group: group, x: new(big.Int).Set(x)}
}

// NewPublicKey wraps an already-known group element h (e.g. decoded from a
// key file) as a PublicKey in group.
func NewPublicKey(group *Group, h *classgroup.Form) *PublicKey {
	return &PublicKey{group: group, h: h}
}

// PublicKeyFor derives the public key h = g^x for an existing private key,
// useful when x was recovered out of band (e.g. a threshold share) rather
// than sampled fresh by GenerateKeyPair.
func PublicKeyFor(sk *PrivateKey, ctx *classgroup.Ctx) (*PublicKey, error) {
	h, err := classgroup.Pow(sk.group.generator, sk.x, ctx)
	if err != nil {
		return nil, err
	}
	return &PublicKey{group: sk.group, h: h}, nil
}
