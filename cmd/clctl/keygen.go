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

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "generate a CL keypair in the configured group",
	RunE:  runKeygen,
}

func init() {
	keygenCmd.Flags().String("out", "key.yaml", "path to write the keypair to")
}

func runKeygen(cmd *cobra.Command, args []string) error {
	groupName := config.GroupName(viper.GetString("group"))
	group, err := resolveGroup(groupName)
	if err != nil {
		return err
	}

	ctx := classgroup.NewCtx()
	sk, pk, err := cl.GenerateKeyPair(group, ctx)
	if err != nil {
		return err
	}

	hWire, err := encodeForm(pk.H())
	if err != nil {
		return err
	}

	kf := &config.KeyFile{
		Group:      groupName,
		PrivateKey: scalar.BigIntToHex(sk.X()),
		PublicKeyH: hWire,
	}
	out := viper.GetString("out")
	if err := config.WriteYamlFile(kf, out); err != nil {
		return err
	}
	logging.Logger().Info("clctl: wrote keypair", "path", out, "group", groupName)
	return nil
}
