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
)

// Warning placed at the top of every generated module.
const headerWarning = "Generated code. Don't modify!"

// Width of the banner enclosing the header comment.
const bannerWidth = 80

// Port describes a single port of a Verilog module.
type Port struct {
	// Port name.
	Name string
	// Number of bits, where zero indicates a scalar port.
	Width uint
	// Indicates an input (versus an output) port.
	Input bool
	// Indicates an output registered inside the module.
	Reg bool
	// Separated ports open a new port group, rendered with a preceding blank
	// line.
	Separated bool
}

// Declaration of this port, excluding indentation and the trailing comma.
func (p Port) decl() string {
	switch {
	case p.Input && p.Width == 0:
		return fmt.Sprintf("input    %s", p.Name)
	case p.Input:
		return fmt.Sprintf("input [%d-1:0]   %s", p.Width, p.Name)
	case p.Reg:
		return fmt.Sprintf("output reg [%d-1:0]  %s", p.Width, p.Name)
	default:
		return fmt.Sprintf("output [%d-1:0]  %s", p.Width, p.Name)
	}
}

// Module describes a generated Verilog module as a header banner, a port list
// and a flat list of body lines.  Body lines are stored without the base
// indentation, which is applied uniformly during rendering.
type Module struct {
	// Module name, as used for the enclosing file as well.
	Name string
	// Banner comment lines describing what the module computes.
	Banner []string
	// Ports in declaration order.
	Ports []Port
	// Body lines, excluding base indentation.
	Body []string
}

// String renders this module as Verilog source text.
func (p *Module) String() string {
	var builder strings.Builder
	// Banner
	builder.WriteString(strings.Repeat("/", bannerWidth))
	builder.WriteString("\n")
	//
	for _, line := range p.Banner {
		builder.WriteString("///// ")
		builder.WriteString(line)
		builder.WriteString("\n")
	}
	//
	builder.WriteString(strings.Repeat("/", bannerWidth))
	builder.WriteString("\n")
	// Header
	builder.WriteString(fmt.Sprintf("module %s (\n", p.Name))
	//
	for i, port := range p.Ports {
		if port.Separated && i != 0 {
			builder.WriteString("\n")
		}
		//
		builder.WriteString("    ")
		builder.WriteString(port.decl())
		//
		if i+1 != len(p.Ports) {
			builder.WriteString(",")
		}
		//
		builder.WriteString("\n")
	}
	//
	builder.WriteString("    );\n")
	builder.WriteString("\n")
	// Body
	for _, line := range p.Body {
		if line != "" {
			builder.WriteString("    ")
			builder.WriteString(line)
		}
		//
		builder.WriteString("\n")
	}
	//
	builder.WriteString("\nendmodule\n")
	// Done
	return builder.String()
}
