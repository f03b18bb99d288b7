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
	"testing"
)

func Test_Sequential_00(t *testing.T) {
	module := NewSequential(parsePoly(t, "0b110110"), "vgen")
	//
	expected := golden(
		slashes,
		"///// Generated code. Don't modify!",
		"///// This module computes 6-bit LFSR bits from an input seed",
		"///// based on the LFSR polynomial: x^6 + x^5 + x^3 + x^2 + 1",
		slashes,
		"module vgen_lfsr_6_110110 (",
		"    input    clk,",
		"    input    rst,",
		"",
		"    input [6-1:0]   seed,",
		"    output reg [6-1:0]  lfsr",
		"    );",
		"",
		"    wire    fb; // feedback bit",
		"    assign fb = lfsr[5] ^ lfsr[4] ^ lfsr[2] ^ lfsr[1];",
		"",
		"    always @(posedge clk) begin",
		"        if (rst) begin",
		"            lfsr <= seed;",
		"        end",
		"        else begin",
		"            lfsr <= {lfsr[4:0], fb};",
		"        end",
		"    end",
		"",
		"endmodule",
	)
	//
	if actual := module.String(); actual != expected {
		t.Errorf("unexpected output:\n%s", actual)
	}
}

func Test_Sequential_01(t *testing.T) {
	// Rendering is deterministic, byte for byte.
	module := NewSequential(parsePoly(t, "0xd008"), "vgen")
	//
	if module.String() != module.String() {
		t.Error("non-deterministic rendering")
	}
	//
	if module.Name != "vgen_lfsr_16_1101000000001000" {
		t.Errorf("unexpected name %s", module.Name)
	}
}

func Test_Sequential_02(t *testing.T) {
	// A one-bit register has nothing to shift.
	module := NewSequential(parsePoly(t, "0b1"), "tb")
	//
	if module.Name != "tb_lfsr_1_1" {
		t.Errorf("unexpected name %s", module.Name)
	}
	//
	check_BodyLine(t, module, "        lfsr <= fb;")
	check_BodyLine(t, module, "assign fb = lfsr[0];")
}

func Test_Sequential_03(t *testing.T) {
	// Single tap keeps the feedback chain to one operand.
	module := NewSequential(parsePoly(t, "0b100"), "vgen")
	//
	check_BodyLine(t, module, "assign fb = lfsr[2];")
	check_BodyLine(t, module, "        lfsr <= {lfsr[1:0], fb};")
}

// ===================================================================
// Test Helpers
// ===================================================================

func check_BodyLine(t *testing.T, module *Module, line string) {
	for _, l := range module.Body {
		if l == line {
			return
		}
	}
	//
	t.Errorf("missing body line %q in:\n%s", line, module)
}
