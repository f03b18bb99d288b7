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
package verilog

import (
	"fmt"
	"strings"

	"github.com/consensys/go-vgen/pkg/poly"
)

// NewSequential builds a clocked module which steps a register one cycle per
// clock under a given feedback polynomial.  The register is loaded from the
// seed port whilst reset is held, and shifts the feedback bit in at the
// bottom on every posedge thereafter.
func NewSequential(p poly.Polynomial, prefix string) *Module {
	width := p.Width()
	//
	return &Module{
		Name: fmt.Sprintf("%s_lfsr_%d_%s", prefix, width, p.BitString()),
		Banner: []string{
			headerWarning,
			fmt.Sprintf("This module computes %d-bit LFSR bits from an input seed", width),
			fmt.Sprintf("based on the LFSR polynomial: %s", p),
		},
		Ports: []Port{
			{Name: "clk", Input: true},
			{Name: "rst", Input: true},
			{Name: "seed", Width: width, Input: true, Separated: true},
			{Name: "lfsr", Width: width, Reg: true},
		},
		Body: []string{
			"wire    fb; // feedback bit",
			fmt.Sprintf("assign fb = %s;", feedbackExpr(p)),
			"",
			"always @(posedge clk) begin",
			"    if (rst) begin",
			"        lfsr <= seed;",
			"    end",
			"    else begin",
			fmt.Sprintf("        lfsr <= %s;", shiftExpr(width)),
			"    end",
			"end",
		},
	}
}

// Construct the XOR of all tapped register bits, with taps rendered in
// descending order.
func feedbackExpr(p poly.Polynomial) string {
	var builder strings.Builder
	//
	for i, tap := range p.Taps() {
		if i != 0 {
			builder.WriteString(" ^ ")
		}
		//
		builder.WriteString(fmt.Sprintf("lfsr[%d]", tap))
	}
	//
	return builder.String()
}

// Construct the shifted register contents for the next cycle.  A one-bit
// register has nothing to shift and simply latches the feedback bit.
func shiftExpr(width uint) string {
	if width == 1 {
		return "fb"
	}
	// Done
	return fmt.Sprintf("{lfsr[%d:0], fb}", width-2)
}
