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
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aisuosuo/clhomo/classgroup"
	"github.com/aisuosuo/clhomo/cl"
	"github.com/aisuosuo/clhomo/cmd/clctl/config"
	"github.com/aisuosuo/clhomo/logging"
	"github.com/aisuosuo/clhomo/scalar"
)

var encryptCmd = &cobra.Command{
	Use:   "encrypt [plaintext]",
	Short: "encrypt a plaintext under a public key",
	Args:  cobra.ExactArgs(1),
	RunE:  runEncrypt,
}

func init() {
	encryptCmd.Flags().String("key", "key.yaml", "path to a key file (only publicKeyH is used)")
	encryptCmd.Flags().String("out", "ciphertext.yaml", "path to write the ciphertext to")
}

func runEncrypt(cmd *cobra.Command, args []string) error {
	m, err := scalar.FEFromString(args[0])
	if err != nil {
		return err
	}

	kf, err := config.ReadKeyFile(viper.GetString("key"))
	if err != nil {
		return err
	}
	group, err := resolveGroup(kf.Group)
	if err != nil {
		return err
	}
	h, err := decodeForm(kf.PublicKeyH, group)
	if err != nil {
		return err
	}
	pk := cl.NewPublicKey(group, h)

	ctx := classgroup.NewCtx()
	ct, _, err := cl.Encrypt(pk, m, ctx)
	if err != nil {
		return err
	}

	wire, err := encodeCiphertext(ct)
	if err != nil {
		return err
	}
	out := viper.GetString("out")
	if err := config.WriteYamlFile(&config.CiphertextFile{Group: kf.Group, Data: wire}, out); err != nil {
		return err
	}
	logging.Logger().Info("clctl: wrote ciphertext", "path", out)
	return nil
}
