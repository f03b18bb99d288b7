// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"github.com/consensys/go-vgen/pkg/verilog"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var lfsrCmd = &cobra.Command{
	Use:   "lfsr [flags]",
	Short: "generate a clocked LFSR module.",
	Long: `Generate a Verilog module which steps a linear-feedback shift register
	one cycle per clock under a given feedback polynomial.  The register loads
	its seed whilst reset is held.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		p := readPolynomial(cmd)
		prefix := GetString(cmd, "prefix")
		filename := GetString(cmd, "output")
		// Construct module
		module := verilog.NewSequential(p, prefix)
		// Write out file
		writeModule(module, filename)
	},
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(lfsrCmd)
	lfsrCmd.Flags().String("gen-poly", "", "feedback polynomial given as a 0b or 0x literal")
	lfsrCmd.Flags().Uint("width", 0, "select the tabulated maximal-length polynomial of the given width")
	lfsrCmd.Flags().String("prefix", "vgen", "prefix for the module and file names")
	lfsrCmd.Flags().StringP("output", "o", "", "specify output file.")
}
