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
)

var evalSumCmd = &cobra.Command{
	Use:   "eval-sum [ciphertext-a] [ciphertext-b]",
	Short: "homomorphically add two ciphertexts",
	Args:  cobra.ExactArgs(2),
	RunE:  runEvalSum,
}

func init() {
	evalSumCmd.Flags().String("out", "ciphertext.yaml", "path to write the resulting ciphertext to")
}

func runEvalSum(cmd *cobra.Command, args []string) error {
	caf, err := config.ReadCiphertextFile(args[0])
	if err != nil {
		return err
	}
	cbf, err := config.ReadCiphertextFile(args[1])
	if err != nil {
		return err
	}
	if caf.Group != cbf.Group {
		return fmt.Errorf("clctl: ciphertext groups %q and %q differ", caf.Group, cbf.Group)
	}

	a, err := decodeCiphertext(caf.Data)
	if err != nil {
		return err
	}
	b, err := decodeCiphertext(cbf.Data)
	if err != nil {
		return err
	}

	ctx := classgroup.NewCtx()
	sum, err := cl.EvalSum(a, b, ctx)
	if err != nil {
		return err
	}

	wire, err := encodeCiphertext(sum)
	if err != nil {
		return err
	}
	out := viper.GetString("out")
	if err := config.WriteYamlFile(&config.CiphertextFile{Group: caf.Group, Data: wire}, out); err != nil {
		return err
	}
	logging.Logger().Info("clctl: wrote ciphertext", "path", out)
	return nil
}
