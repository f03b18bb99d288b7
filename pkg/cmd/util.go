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

	"github.com/consensys/go-vgen/pkg/poly"
	"github.com/consensys/go-vgen/pkg/verilog"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or fail if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string, or fail if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetInt gets an expected int, or fail if an error arises.
func GetInt(cmd *cobra.Command, flag string) int {
	r, err := cmd.Flags().GetInt(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected uint, or fail if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Determine the feedback polynomial for a given invocation, as specified
// either by an explicit literal (--gen-poly) or by a register width (--width)
// selecting from the built-in table of maximal-length polynomials.  Exactly
// one of the two must be given.
func readPolynomial(cmd *cobra.Command) poly.Polynomial {
	var (
		literal = GetString(cmd, "gen-poly")
		width   = GetUint(cmd, "width")
	)
	//
	if (literal == "") == (width == 0) {
		fmt.Println("exactly one of --gen-poly or --width must be given")
		os.Exit(2)
	}
	// Look up table when given a width
	if literal == "" {
		p, ok := poly.Maximal(width)
		//
		if !ok {
			fmt.Printf("no maximal-length polynomial tabulated for width %d\n", width)
			os.Exit(2)
		}
		//
		return p
	}
	// Otherwise, parse the literal
	p, err := poly.Parse(literal)
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return p
}

// Write a generated module to a given file or, when no filename is given, to
// a file in the working directory named after the module itself.
func writeModule(module *verilog.Module, filename string) {
	if filename == "" {
		filename = fmt.Sprintf("%s.v", module.Name)
	}
	//
	if err := os.WriteFile(filename, []byte(module.String()), 0644); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
	//
	log.Infof("Wrote %s\n", filename)
}
