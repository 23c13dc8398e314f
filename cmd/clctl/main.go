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

// Command clctl drives the CL homomorphic cryptosystem from the shell:
// generate a keypair, encrypt a plaintext, decrypt a ciphertext, and
// combine ciphertexts under the scheme's homomorphism (eval-sum, eval-scal).
package main

import (
	"github.com/getamis/sirius/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "clctl",
	Short: "Castagnos-Laguillaumie class-group homomorphic encryption",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return viper.BindPFlags(cmd.Flags())
	},
}

func init() {
	rootCmd.PersistentFlags().String("group", "1827", "fixed group to operate in: 1827 or 3072")
	rootCmd.AddCommand(keygenCmd)
	rootCmd.AddCommand(encryptCmd)
	rootCmd.AddCommand(decryptCmd)
	rootCmd.AddCommand(evalSumCmd)
	rootCmd.AddCommand(evalScalCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Crit("clctl: command failed", "err", err)
	}
}
