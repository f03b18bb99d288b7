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
package util

import "fmt"

// TablePrinter is useful for printing tables to the terminal.
type TablePrinter struct {
	widths []uint
	rows   [][]string
}

// NewTablePrinter constructs an empty table with a given number of columns.
func NewTablePrinter(ncols uint) *TablePrinter {
	widths := make([]uint, ncols)
	//
	return &TablePrinter{widths, nil}
}

// AddRow appends a row to this table, which must match the column count.
func (p *TablePrinter) AddRow(vals ...string) {
	if len(vals) != len(p.widths) {
		panic("incorrect number of columns")
	}
	// Update column widths
	for i := 0; i < len(p.widths); i++ {
		p.widths[i] = max(p.widths[i], uint(len(vals[i])))
	}
	// Done
	p.rows = append(p.rows, vals)
}

// SetMaxWidth puts an upper bound on the width of any column.
func (p *TablePrinter) SetMaxWidth(m uint) {
	for i := 0; i < len(p.widths); i++ {
		p.widths[i] = min(p.widths[i], m)
	}
}

// Print the table.
func (p *TablePrinter) Print() {
	for _, row := range p.rows {
		for j, col := range row {
			jth := col
			jth_width := p.widths[j]

			if uint(len(col)) > jth_width {
				jth = col[0:jth_width]
			}

			fmt.Printf(" %*s |", jth_width, jth)
		}

		fmt.Println()
	}
}
