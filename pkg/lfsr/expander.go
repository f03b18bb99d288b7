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
	"errors"
	"fmt"

	"github.com/consensys/go-vgen/pkg/poly"
)

// ErrInvalidOutputWidth signals a request for a negative number of output
// bits.
var ErrInvalidOutputWidth = errors.New("invalid output width")

// FeedbackTerm returns the symbolic feedback bit of a register under a given
// polynomial, namely the XOR of the register bits at its tap indices.
func FeedbackTerm(p poly.Polynomial) Term {
	return NewTerm(p.Taps()...)
}

// Expand symbolically advances a register through n cycles, returning one
// term per cycle.  The i-th term expresses the feedback bit produced on cycle
// i as an XOR of seed bits and, hence, gives the i-th output bit of the
// register as a pure function of its seed.  Expanding through zero cycles
// yields an empty schedule.
func Expand(p poly.Polynomial, n int) ([]Term, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOutputWidth, n)
	}
	//
	var (
		width = p.Width()
		taps  = p.Taps()
		// Current symbolic state, where state[i] describes register bit i as
		// an XOR of seed bits.  Initially, register bit i is exactly seed
		// bit i.
		state = make([]Term, width)
		//
		schedule = make([]Term, n)
	)
	//
	for i := range state {
		state[i] = NewTerm(uint(i))
	}
	//
	for c := 0; c < n; c++ {
		feedback := Term{}
		// Fold every tapped register bit into the feedback term.  Bits
		// feeding back an even number of times cancel out.
		for _, tap := range taps {
			feedback = feedback.Xor(state[tap])
		}
		//
		schedule[c] = feedback
		// Shift register up, bringing the feedback bit in at the bottom.
		for i := int(width) - 1; i > 0; i-- {
			state[i] = state[i-1]
		}
		//
		state[0] = feedback
	}
	// Done
	return schedule, nil
}
