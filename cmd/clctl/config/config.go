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

// Package config holds the yaml file shapes clctl reads and writes:
// key material and ciphertexts, all hex/base10-encoded so the files stay
// diffable and readable.
package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

// GroupName selects one of the two fixed discriminant groups.
type GroupName string

const (
	Group1827 GroupName = "1827"
	Group3072 GroupName = "3072"
)

// KeyFile is the on-disk shape of a keypair produced by `clctl keygen`.
type KeyFile struct {
	Group      GroupName `yaml:"group"`
	PrivateKey string    `yaml:"privateKey,omitempty"`
	PublicKeyH string    `yaml:"publicKeyH"`
}

// CiphertextFile is the on-disk shape of a ciphertext produced by `clctl
// encrypt`/`eval-sum`/`eval-scal`.
type CiphertextFile struct {
	Group GroupName `yaml:"group"`
	Data  string    `yaml:"data"`
}

// ReadKeyFile reads and parses a KeyFile.
func ReadKeyFile(path string) (*KeyFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var k KeyFile
	if err := yaml.Unmarshal(raw, &k); err != nil {
		return nil, err
	}
	return &k, nil
}

// ReadCiphertextFile reads and parses a CiphertextFile.
func ReadCiphertextFile(path string) (*CiphertextFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c CiphertextFile
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// WriteYamlFile marshals v as yaml and writes it to path.
func WriteYamlFile(v interface{}, path string) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
