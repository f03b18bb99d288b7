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
	"fmt"
	"os"

	"github.com/consensys/go-vgen/pkg/lfsr"
	"github.com/consensys/go-vgen/pkg/poly"
	"github.com/consensys/go-vgen/pkg/verilog"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var randCmd = &cobra.Command{
	Use:   "rand [flags]",
	Short: "generate a combinational pseudo-random module.",
	Long: `Generate a Verilog module which maps a seed directly to the first N
	output bits of a linear-feedback shift register, computing in one step what
	the clocked module computes over N cycles.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		p := readPolynomial(cmd)
		n := GetInt(cmd, "out-width")
		prefix := GetString(cmd, "prefix")
		suffix := polySuffix(cmd, p)
		filename := GetString(cmd, "output")
		//
		if n <= 0 {
			fmt.Printf("output width must be positive (got %d)\n", n)
			os.Exit(2)
		}
		// Expand register through n cycles
		schedule, err := lfsr.Expand(p, n)
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		for i, term := range schedule {
			log.Debugf("cycle %d: %s", i, term)
		}
		// Construct module
		module := verilog.NewParallel(p, schedule, prefix, suffix)
		// Write out file
		writeModule(module, filename)
	},
}

// Determine how the polynomial is rendered within the module name, namely as
// a hexadecimal (default) or binary literal.
func polySuffix(cmd *cobra.Command, p poly.Polynomial) string {
	suffix := GetString(cmd, "suffix")
	//
	switch suffix {
	case "hex":
		return p.HexString()
	case "bin":
		return p.BinString()
	}
	//
	fmt.Printf("unknown suffix rendering %q (expected hex or bin)\n", suffix)
	os.Exit(2)
	// unreachable
	return ""
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(randCmd)
	randCmd.Flags().String("gen-poly", "", "feedback polynomial given as a 0b or 0x literal")
	randCmd.Flags().Uint("width", 0, "select the tabulated maximal-length polynomial of the given width")
	randCmd.Flags().Int("out-width", 0, "number of pseudo random output bits")
	randCmd.Flags().String("prefix", "vgen", "prefix for the module and file names")
	randCmd.Flags().String("suffix", "hex", "polynomial rendering within the module name (hex or bin)")
	randCmd.Flags().StringP("output", "o", "", "specify output file.")
}
