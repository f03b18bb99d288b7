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
package lfsr

import (
	"math/big"
	"slices"
	"sort"
	"strconv"
	"strings"
)

// Term represents the XOR of a set of seed bits, identified by their indices
// within the seed.  A term is stored as an array of unique indices in
// ascending order, which makes equality structural and fixes the order in
// which XOR chains are rendered.
type Term []uint

// NewTerm constructs a term over zero or more seed-bit indices.  Duplicate
// indices collapse (a term is a set).
func NewTerm(indices ...uint) Term {
	term := make(Term, len(indices))
	copy(term, indices)
	//
	slices.Sort(term)
	// Remove any duplicates
	return slices.Compact(term)
}

// Contains returns true if a given seed-bit index is in this term.
func (p Term) Contains(index uint) bool {
	// Find index where element either does occur, or should occur.
	i := sort.Search(len(p), func(i int) bool {
		return index <= p[i]
	})
	// Check whether item existed or not.
	return i < len(p) && p[i] == index
}

// IsEmpty checks whether this term has no indices at all.  The empty term
// denotes the constant zero.
func (p Term) IsEmpty() bool {
	return len(p) == 0
}

// Xor returns the symmetric difference of this term and another; that is, the
// indices occurring in exactly one of the two.  Indices present in both
// cancel, so the XOR of any term with itself is the empty term.  Neither
// operand is modified.
func (p Term) Xor(q Term) Term {
	// Count indices common to both terms.
	n := countCommon(p, q)
	// Allocate exact space for the surviving indices.
	target := make(Term, len(p)+len(q)-n-n)
	// Merge both terms, cancelling common indices.
	mergeXor(target, p, q)
	// Done
	return target
}

// Eval substitutes concrete seed bits into this term, producing the XOR of
// the seed bits at every index of the term.
func (p Term) Eval(seed *big.Int) uint {
	bit := uint(0)
	//
	for _, index := range p {
		bit ^= seed.Bit(int(index))
	}
	//
	return bit
}

func (p Term) String() string {
	var (
		builder strings.Builder
		first   = true
	)
	//
	builder.WriteString("{")
	//
	for _, index := range p {
		if !first {
			builder.WriteString(", ")
		}
		//
		first = false
		//
		builder.WriteString(strconv.FormatUint(uint64(index), 10))
	}
	//
	builder.WriteString("}")
	//
	return builder.String()
}

// Determine the number of indices occurring in both terms.
func countCommon(left Term, right Term) int {
	i := 0
	j := 0
	n := 0

	for i < len(left) && j < len(right) {
		if left[i] < right[j] {
			i++
		} else if left[i] > right[j] {
			j++
		} else {
			i++
			j++
			n++ // common index detected
		}
	}

	return n
}

// Merge two sorted terms (left and right) into a target array, dropping any
// index present in both.  This assumes the target array is exactly big
// enough.
func mergeXor(target Term, left Term, right Term) {
	i := 0
	j := 0
	k := 0
	// Merge overlap of both terms
	for i < len(left) && j < len(right) {
		if left[i] < right[j] {
			target[k] = left[i]
			i++
			k++
		} else if left[i] > right[j] {
			target[k] = right[j]
			j++
			k++
		} else {
			// Common index cancels out
			i++
			j++
		}
	}
	// Handle anything left
	if i < len(left) {
		copy(target[k:], left[i:])
	} else if j < len(right) {
		copy(target[k:], right[j:])
	}
}
