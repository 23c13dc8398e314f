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
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/aisuosuo/clhomo/cmd/clctl/config"
)

// These are plain require-style smoke tests rather than Ginkgo specs: they
// drive RunE functions directly against temp files, which reads more
// naturally as a linear sequence of assertions than as nested Describe/It
// blocks.

func resetViper(t *testing.T, group, out string) {
	t.Helper()
	viper.Reset()
	viper.Set("group", group)
	viper.Set("out", out)
}

func TestKeygenEncryptDecryptRoundTrip(t *testing.T) {
	dir := t.TempDir()
	keyPath := filepath.Join(dir, "key.yaml")
	ctPath := filepath.Join(dir, "ciphertext.yaml")

	resetViper(t, "1827", keyPath)
	require.NoError(t, runKeygen(keygenCmd, nil))

	kf, err := config.ReadKeyFile(keyPath)
	require.NoError(t, err)
	require.NotEmpty(t, kf.PrivateKey)
	require.NotEmpty(t, kf.PublicKeyH)

	viper.Reset()
	viper.Set("key", keyPath)
	viper.Set("out", ctPath)
	require.NoError(t, runEncrypt(encryptCmd, []string{"123456789"}))

	viper.Reset()
	viper.Set("key", keyPath)
	viper.Set("ciphertext", ctPath)
	require.NoError(t, runDecrypt(decryptCmd, nil))
}

func TestDecryptRejectsGroupMismatch(t *testing.T) {
	dir := t.TempDir()
	keyPath := filepath.Join(dir, "key.yaml")
	ctPath := filepath.Join(dir, "ciphertext.yaml")

	resetViper(t, "1827", keyPath)
	require.NoError(t, runKeygen(keygenCmd, nil))

	require.NoError(t, config.WriteYamlFile(&config.CiphertextFile{
		Group: config.Group3072,
		Data:  "00",
	}, ctPath))

	viper.Reset()
	viper.Set("key", keyPath)
	viper.Set("ciphertext", ctPath)
	require.Error(t, runDecrypt(decryptCmd, nil))
}
