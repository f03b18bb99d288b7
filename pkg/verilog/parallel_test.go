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

	"github.com/consensys/go-vgen/pkg/lfsr"
)

func Test_Parallel_00(t *testing.T) {
	p := parsePoly(t, "0b110110")
	//
	schedule, err := lfsr.Expand(p, 3)
	if err != nil {
		t.Fatal(err)
	}
	//
	module := NewParallel(p, schedule, "vgen", p.HexString())
	//
	expected := golden(
		slashes,
		"///// Generated code. Don't modify!",
		"///// This module parallelly computes a 3-bit pseudo random output from 6-bit input seed",
		"///// based on the LFSR polynomial: x^6 + x^5 + x^3 + x^2 + 1",
		slashes,
		"module vgen_rand_6_3_0x36 (",
		"    input [6-1:0]   seed,",
		"    output [3-1:0]  out",
		"    );",
		"",
		"    assign out[0] = seed[1] ^ seed[2] ^ seed[4] ^ seed[5];",
		"    assign out[1] = seed[0] ^ seed[1] ^ seed[3] ^ seed[4];",
		"    assign out[2] = seed[0] ^ seed[1] ^ seed[3] ^ seed[4] ^ seed[5];",
		"",
		"endmodule",
	)
	//
	if actual := module.String(); actual != expected {
		t.Errorf("unexpected output:\n%s", actual)
	}
}

func Test_Parallel_01(t *testing.T) {
	p := parsePoly(t, "0b110110")
	//
	schedule, err := lfsr.Expand(p, 3)
	if err != nil {
		t.Fatal(err)
	}
	// Binary rendering within the module name
	module := NewParallel(p, schedule, "vgen", p.BinString())
	//
	if module.Name != "vgen_rand_6_3_0b110110" {
		t.Errorf("unexpected name %s", module.Name)
	}
}

func Test_Parallel_02(t *testing.T) {
	p := parsePoly(t, "0b10")
	//
	schedule, err := lfsr.Expand(p, 2)
	if err != nil {
		t.Fatal(err)
	}
	//
	module := NewParallel(p, schedule, "vgen", p.HexString())
	//
	check_BodyLine(t, module, "assign out[0] = seed[1];")
	check_BodyLine(t, module, "assign out[1] = seed[0];")
}
