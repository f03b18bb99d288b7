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

	"github.com/consensys/go-vgen/pkg/lfsr"
	"github.com/consensys/go-vgen/pkg/poly"
)

// NewParallel builds a combinational module which maps a seed directly to the
// first len(schedule) output bits of a register under a given feedback
// polynomial.  Each output bit is assigned the XOR of seed bits determined by
// the corresponding term of the schedule, thus computing in one step what the
// sequential module computes over as many cycles.  The given suffix
// distinguishes module names generated from the same polynomial, and is
// conventionally a literal rendering of the polynomial itself.
func NewParallel(p poly.Polynomial, schedule []lfsr.Term, prefix string, suffix string) *Module {
	var (
		width = p.Width()
		n     = len(schedule)
		body  = make([]string, n)
	)
	//
	for i, term := range schedule {
		body[i] = assignOut(i, term)
	}
	//
	return &Module{
		Name: fmt.Sprintf("%s_rand_%d_%d_%s", prefix, width, n, suffix),
		Banner: []string{
			headerWarning,
			fmt.Sprintf("This module parallelly computes a %d-bit pseudo random output from %d-bit input seed", n, width),
			fmt.Sprintf("based on the LFSR polynomial: %s", p),
		},
		Ports: []Port{
			{Name: "seed", Width: width, Input: true},
			{Name: "out", Width: uint(n)},
		},
		Body: body,
	}
}

// Construct the assignment of one output bit, being the XOR of the seed bits
// named by its term in ascending order.
func assignOut(index int, term lfsr.Term) string {
	var builder strings.Builder
	// Terms are never empty for a well-formed polynomial.
	if term.IsEmpty() {
		panic(fmt.Sprintf("empty term for output bit %d", index))
	}
	//
	for i, bit := range term {
		if i != 0 {
			builder.WriteString(" ^ ")
		}
		//
		builder.WriteString(fmt.Sprintf("seed[%d]", bit))
	}
	//
	return fmt.Sprintf("assign out[%d] = %s;", index, builder.String())
}
