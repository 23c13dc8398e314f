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

	"github.com/fxamacker/cbor/v2"

	"github.com/aisuosuo/clhomo/classgroup"
)

// Ciphertext is a CL encryption (c1, c2) = (g^r, h^r * f^m). Both components
// share the encrypting group's discriminant.
type Ciphertext struct {
	C1 *classgroup.Form
	C2 *classgroup.Form
}

// wireCiphertext is the cbor transport form: Δ is included so a receiver
// can reconstruct c for both components. The decoded Δ is used as is;
// UnmarshalCiphertextBinary does not compare it against any Group.
type wireCiphertext struct {
	Discriminant string               `cbor:"1,keyasint"`
	C1           *classgroup.WireForm `cbor:"2,keyasint"`
	C2           *classgroup.WireForm `cbor:"3,keyasint"`
}

// MarshalBinary cbor-encodes the ciphertext.
func (c *Ciphertext) MarshalBinary() ([]byte, error) {
	w := &wireCiphertext{
		Discriminant: c.C1.Discriminant().String(),
		C1:           c.C1.ToWire(),
		C2:           c.C2.ToWire(),
	}
	return cbor.Marshal(w)
}

// UnmarshalCiphertextBinary decodes a cbor-encoded ciphertext.
func UnmarshalCiphertextBinary(data []byte) (*Ciphertext, error) {
	var w wireCiphertext
	if err := cbor.Unmarshal(data, &w); err != nil {
		return nil, ErrInvalidCiphertext
	}
	disc, ok := new(big.Int).SetString(w.Discriminant, 10)
	if !ok {
		return nil, ErrInvalidCiphertext
	}
	c1, err := classgroup.FormFromWire(w.C1, disc)
	if err != nil {
		return nil, ErrInvalidCiphertext
	}
	c2, err := classgroup.FormFromWire(w.C2, disc)
	if err != nil {
		return nil, ErrInvalidCiphertext
	}
	return &Ciphertext{C1: c1, C2: c2}, nil
}
