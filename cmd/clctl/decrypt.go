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
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aisuosuo/clhomo/classgroup"
	"github.com/aisuosuo/clhomo/cl"
	"github.com/aisuosuo/clhomo/cmd/clctl/config"
	"github.com/aisuosuo/clhomo/logging"
	"github.com/aisuosuo/clhomo/scalar"
)

var decryptCmd = &cobra.Command{
	Use:   "decrypt",
	Short: "decrypt a ciphertext with a private key",
	RunE:  runDecrypt,
}

func init() {
	decryptCmd.Flags().String("key", "key.yaml", "path to a key file (privateKey must be set)")
	decryptCmd.Flags().String("ciphertext", "ciphertext.yaml", "path to the ciphertext file")
}

func runDecrypt(cmd *cobra.Command, args []string) error {
	kf, err := config.ReadKeyFile(viper.GetString("key"))
	if err != nil {
		return err
	}
	if kf.PrivateKey == "" {
		return fmt.Errorf("clctl: key file %q has no privateKey", viper.GetString("key"))
	}
	group, err := resolveGroup(kf.Group)
	if err != nil {
		return err
	}
	x, err := scalar.BigIntFromHex(kf.PrivateKey)
	if err != nil {
		return err
	}
	sk := cl.NewPrivateKey(group, x)

	cf, err := config.ReadCiphertextFile(viper.GetString("ciphertext"))
	if err != nil {
		return err
	}
	if cf.Group != kf.Group {
		return fmt.Errorf("clctl: ciphertext group %q does not match key group %q", cf.Group, kf.Group)
	}
	ct, err := decodeCiphertext(cf.Data)
	if err != nil {
		return err
	}

	ctx := classgroup.NewCtx()
	m, err := cl.Decrypt(sk, ct, ctx)
	if err != nil {
		return err
	}
	logging.Logger().Info("clctl: decrypted ciphertext", "path", viper.GetString("ciphertext"))
	fmt.Println(m.String())
	return nil
}
