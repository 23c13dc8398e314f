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

import (
	"math/big"

	"github.com/fxamacker/cbor/v2"
)

// WireForm is the on-the-wire representation of a Form: the reduced (a, b)
// pair, base 10. c and the discriminant are not part of a WireForm - a peer
// that already knows the group's Δ recomputes c locally. (cl.Ciphertext's
// wire encoding carries Δ next to its two WireForms.)
type WireForm struct {
	A string `cbor:"1,keyasint"`
	B string `cbor:"2,keyasint"`
}

// ToWire encodes f's (a, b) pair for transport. The caller is expected to
// know which group (and therefore which Δ) f belongs to.
func (f *Form) ToWire() *WireForm {
	return &WireForm{
		A: f.a.String(),
		B: f.b.String(),
	}
}

// FormFromWire reconstructs a Form from a WireForm and the group's
// discriminant, deriving c and re-reducing defensively - a peer must never
// trust that bytes received off the wire already describe a reduced form.
func FormFromWire(w *WireForm, disc *big.Int) (*Form, error) {
	if w == nil {
		return nil, ErrInvalidMessage
	}
	a, ok := new(big.Int).SetString(w.A, 10)
	if !ok {
		return nil, ErrInvalidMessage
	}
	b, ok := new(big.Int).SetString(w.B, 10)
	if !ok {
		return nil, ErrInvalidMessage
	}
	return NewByDiscriminant(a, b, disc)
}

// MarshalBinary cbor-encodes f's wire form.
func (f *Form) MarshalBinary() ([]byte, error) {
	return cbor.Marshal(f.ToWire())
}

// UnmarshalFormBinary decodes a cbor-encoded WireForm and reconstructs the
// Form against disc.
func UnmarshalFormBinary(data []byte, disc *big.Int) (*Form, error) {
	var w WireForm
	if err := cbor.Unmarshal(data, &w); err != nil {
		return nil, ErrInvalidMessage
	}
	return FormFromWire(&w, disc)
}
