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
package poly

// Maximal returns a tabulated maximal-length feedback polynomial for a given
// register width, or false if no polynomial is tabulated for that width.  A
// maximal-length polynomial cycles a w-bit register through all 2^w - 1
// non-zero states before repeating.
func Maximal(width uint) (Polynomial, bool) {
	for _, entry := range maximalTable {
		if entry.width == width {
			p, err := Parse(entry.literal)
			// Tabulated literals are always well formed.
			if err != nil {
				panic(err)
			}
			// Done
			return p, true
		}
	}
	// Unknown width
	return Polynomial{}, false
}

// MaximalWidths returns all register widths for which a maximal-length
// feedback polynomial is tabulated, in ascending order.
func MaximalWidths() []uint {
	widths := make([]uint, len(maximalTable))
	//
	for i, entry := range maximalTable {
		widths[i] = entry.width
	}
	//
	return widths
}
