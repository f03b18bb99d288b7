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

	"github.com/consensys/go-vgen/pkg/poly"
)

// Simulator drives a concrete linear-feedback shift register, cycle by cycle.
// Its primary purpose is cross-checking symbolic expansion against a bitwise
// rendition of the same register.
type Simulator struct {
	poly poly.Polynomial
	// Current register contents, always confined to the register width.
	state *big.Int
	// Initial register contents, as configured at construction.
	seed *big.Int
	// Width mask (i.e. 2^w - 1).
	mask *big.Int
}

// NewSimulator constructs a simulator seeded with a given value, where seed
// bits beyond the register width are discarded.  The seed itself is copied
// and, hence, can be freely mutated afterwards.
func NewSimulator(p poly.Polynomial, seed *big.Int) *Simulator {
	mask := new(big.Int).Lsh(big.NewInt(1), p.Width())
	mask.Sub(mask, big.NewInt(1))
	//
	return &Simulator{
		poly:  p,
		state: new(big.Int).And(seed, mask),
		seed:  new(big.Int).And(seed, mask),
		mask:  mask,
	}
}

// Feedback returns the feedback bit this register would shift in on the next
// cycle, namely the XOR of its tapped bits.
func (p *Simulator) Feedback() uint {
	bit := uint(0)
	//
	for _, tap := range p.poly.Taps() {
		bit ^= p.state.Bit(int(tap))
	}
	//
	return bit
}

// Step advances this register through one cycle, shifting every bit up by one
// position and bringing the feedback bit in at the bottom.  The feedback bit
// is returned, being the output bit the register produces on this cycle.
func (p *Simulator) Step() uint {
	fb := p.Feedback()
	//
	p.state.Lsh(p.state, 1)
	p.state.SetBit(p.state, 0, fb)
	p.state.And(p.state, p.mask)
	//
	return fb
}

// State returns the current register contents.  The returned value is a copy
// and may be freely mutated.
func (p *Simulator) State() *big.Int {
	return new(big.Int).Set(p.state)
}

// Reset returns this register to its seed.
func (p *Simulator) Reset() {
	p.state.Set(p.seed)
}
