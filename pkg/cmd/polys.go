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
	"strconv"
	"strings"

	"github.com/consensys/go-vgen/pkg/poly"
	"github.com/consensys/go-vgen/pkg/util"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var polysCmd = &cobra.Command{
	Use:   "polys [flags]",
	Short: "List the built-in maximal-length polynomials.",
	Long: `List the built-in table of maximal-length feedback polynomials, one per
	register width, as tabulated in Xilinx application note XAPP052.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			minWidth = GetUint(cmd, "min")
			maxWidth = GetUint(cmd, "max")
		)
		// Determine widths to list
		widths := selectWidths(minWidth, maxWidth)
		//
		if len(widths) == 0 {
			fmt.Printf("no polynomials tabulated between widths %d and %d\n", minWidth, maxWidth)
			os.Exit(2)
		}
		//
		printPolys(widths)
	},
}

// Select tabulated widths within a given range.
func selectWidths(minWidth uint, maxWidth uint) []uint {
	var widths []uint
	//
	for _, w := range poly.MaximalWidths() {
		if minWidth <= w && w <= maxWidth {
			widths = append(widths, w)
		}
	}
	//
	return widths
}

// Print one row per tabulated polynomial, bounding column widths against the
// terminal (when stdout is one).
func printPolys(widths []uint) {
	tp := util.NewTablePrinter(4)
	//
	tp.AddRow("WIDTH", "POLY", "TAPS", "POLYNOMIAL")
	//
	for _, w := range widths {
		p, ok := poly.Maximal(w)
		// Tabulated widths always resolve.
		if !ok {
			panic(fmt.Sprintf("untabulated width %d", w))
		}
		//
		tp.AddRow(strconv.FormatUint(uint64(w), 10), p.HexString(), tapsString(p), p.String())
	}
	// Bound column widths against the terminal
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if tw, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && tw > 0 {
			tp.SetMaxWidth(uint(tw) / 4)
		}
	}
	//
	tp.Print()
}

// Render the tap indices of a polynomial in descending order.
func tapsString(p poly.Polynomial) string {
	var builder strings.Builder
	//
	for i, tap := range p.Taps() {
		if i != 0 {
			builder.WriteString(",")
		}
		//
		builder.WriteString(strconv.FormatUint(uint64(tap), 10))
	}
	//
	return builder.String()
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(polysCmd)
	polysCmd.Flags().Uint("min", 2, "smallest register width to list")
	polysCmd.Flags().Uint("max", 32, "largest register width to list")
}
