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

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/aisuosuo/clhomo/classgroup"
	"github.com/aisuosuo/clhomo/cl"
	"github.com/aisuosuo/clhomo/cmd/clctl/config"
)

func resolveGroup(name config.GroupName) (*cl.Group, error) {
	switch name {
	case config.Group1827:
		return cl.Group1827Updated(), nil
	case config.Group3072:
		return cl.Group3072Updated(), nil
	default:
		return nil, fmt.Errorf("clctl: unknown group %q", name)
	}
}

func encodeForm(f *classgroup.Form) (string, error) {
	data, err := f.MarshalBinary()
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(data), nil
}

func decodeForm(s string, group *cl.Group) (*classgroup.Form, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	return classgroup.UnmarshalFormBinary(data, group.Discriminant())
}

func encodeCiphertext(c *cl.Ciphertext) (string, error) {
	data, err := c.MarshalBinary()
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(data), nil
}

func decodeCiphertext(s string) (*cl.Ciphertext, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	return cl.UnmarshalCiphertextBinary(data)
}
