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
	"strings"
	"testing"

	"github.com/consensys/go-vgen/pkg/poly"
)

func Test_Module_00(t *testing.T) {
	check_Decl(t, Port{Name: "clk", Input: true}, "input    clk")
	check_Decl(t, Port{Name: "seed", Width: 6, Input: true}, "input [6-1:0]   seed")
	check_Decl(t, Port{Name: "out", Width: 3}, "output [3-1:0]  out")
	check_Decl(t, Port{Name: "lfsr", Width: 6, Reg: true}, "output reg [6-1:0]  lfsr")
}

func Test_Module_01(t *testing.T) {
	module := &Module{
		Name:   "empty",
		Banner: []string{headerWarning},
		Ports:  []Port{{Name: "clk", Input: true}},
	}
	//
	expected := golden(
		slashes,
		"///// Generated code. Don't modify!",
		slashes,
		"module empty (",
		"    input    clk",
		"    );",
		"",
		"",
		"endmodule",
	)
	//
	if actual := module.String(); actual != expected {
		t.Errorf("unexpected output:\n%s", actual)
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

var slashes = strings.Repeat("/", 80)

func golden(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

func parsePoly(t *testing.T, literal string) poly.Polynomial {
	p, err := poly.Parse(literal)
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	return p
}

func check_Decl(t *testing.T, port Port, expected string) {
	if actual := port.decl(); actual != expected {
		t.Errorf("unexpected declaration %q (expected %q)", actual, expected)
	}
}
