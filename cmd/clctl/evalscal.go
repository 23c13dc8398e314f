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

var evalScalCmd = &cobra.Command{
	Use:   "eval-scal [ciphertext] [scalar]",
	Short: "homomorphically multiply a ciphertext by a known scalar",
	Args:  cobra.ExactArgs(2),
	RunE:  runEvalScal,
}

func init() {
	evalScalCmd.Flags().String("out", "ciphertext.yaml", "path to write the resulting ciphertext to")
}

func runEvalScal(cmd *cobra.Command, args []string) error {
	cf, err := config.ReadCiphertextFile(args[0])
	if err != nil {
		return err
	}
	c, err := decodeCiphertext(cf.Data)
	if err != nil {
		return err
	}

	k, err := scalar.BigIntFromHex(args[1])
	if err != nil {
		return err
	}

	ctx := classgroup.NewCtx()
	scaled, err := cl.EvalScal(c, k, ctx)
	if err != nil {
		return err
	}

	wire, err := encodeCiphertext(scaled)
	if err != nil {
		return err
	}
	out := viper.GetString("out")
	if err := config.WriteYamlFile(&config.CiphertextFile{Group: cf.Group, Data: wire}, out); err != nil {
		return err
	}
	logging.Logger().Info("clctl: wrote ciphertext", "path", out)
	return nil
}
