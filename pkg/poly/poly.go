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

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

var (
	// ErrMalformedPolynomial signals a polynomial literal which could not be
	// parsed, either because it lacks a 0b / 0x prefix or because its digits
	// are invalid for the given base.
	ErrMalformedPolynomial = errors.New("malformed polynomial")
	// ErrZeroPolynomial signals a polynomial literal whose value is zero.
	// The zero polynomial has no feedback taps and, hence, describes no
	// register at all.
	ErrZeroPolynomial = errors.New("zero polynomial")
)

// Polynomial describes the feedback (i.e. characteristic) polynomial of a
// linear-feedback shift register over GF(2).  Bit i of the underlying value
// determines whether register bit i feeds back, with the most significant bit
// fixing the register width.  Polynomials are immutable once constructed.
type Polynomial struct {
	// Number of bits in the register, as determined by the most significant
	// tap.
	width uint
	// Tap indices in descending order.
	taps []uint
	// Underlying coefficient mask.
	value *big.Int
}

// Parse a polynomial from a binary (0b) or hexadecimal (0x) literal, such as
// "0b110110" or "0x36".  The prefix must be lowercase.  Leading zero digits
// are accepted but do not contribute to the width, which is always determined
// by the most significant set bit.
func Parse(literal string) (Polynomial, error) {
	var base int
	//
	switch {
	case strings.HasPrefix(literal, "0b"):
		base = 2
	case strings.HasPrefix(literal, "0x"):
		base = 16
	default:
		return Polynomial{}, fmt.Errorf("%w: %q (expected 0b or 0x prefix)", ErrMalformedPolynomial, literal)
	}
	// Reject signs up front since big.Int accepts a leading sign in any
	// base, which is not a valid digit here.
	if strings.ContainsAny(literal[2:], "+-") {
		return Polynomial{}, fmt.Errorf("%w: %q (invalid base-%d digits)", ErrMalformedPolynomial, literal, base)
	}
	// Parse digits following the prefix.
	value, ok := new(big.Int).SetString(literal[2:], base)
	//
	if !ok {
		return Polynomial{}, fmt.Errorf("%w: %q (invalid base-%d digits)", ErrMalformedPolynomial, literal, base)
	} else if value.Sign() == 0 {
		return Polynomial{}, fmt.Errorf("%w: %q", ErrZeroPolynomial, literal)
	}
	// Done
	return newPolynomial(value), nil
}

// Construct a polynomial directly from its coefficient mask.  This assumes
// the mask is non-zero.
func newPolynomial(value *big.Int) Polynomial {
	var (
		width = uint(value.BitLen())
		taps  []uint
	)
	// Collect tap indices in descending order.
	for i := int(width) - 1; i >= 0; i-- {
		if value.Bit(i) == 1 {
			taps = append(taps, uint(i))
		}
	}
	//
	return Polynomial{width, taps, value}
}

// Width returns the number of bits in the register described by this
// polynomial.
func (p Polynomial) Width() uint {
	return p.width
}

// Taps returns the feedback tap indices of this polynomial in descending
// order.  The returned array is a copy and may be freely mutated.
func (p Polynomial) Taps() []uint {
	taps := make([]uint, len(p.taps))
	copy(taps, p.taps)
	//
	return taps
}

// HasTap checks whether a given register bit feeds back under this
// polynomial.
func (p Polynomial) HasTap(index uint) bool {
	return index < p.width && p.value.Bit(int(index)) == 1
}

// Value returns the coefficient mask of this polynomial.  The returned value
// is a copy and may be freely mutated.
func (p Polynomial) Value() *big.Int {
	return new(big.Int).Set(p.value)
}

// String returns the conventional algebraic rendering of this polynomial,
// such as "x^6 + x^5 + x^3 + x^2 + 1".  Observe that a tap on register bit i
// corresponds with the monomial x^(i+1), whilst the trailing constant is
// always present.
func (p Polynomial) String() string {
	var builder strings.Builder
	//
	for _, tap := range p.taps {
		builder.WriteString(fmt.Sprintf("x^%d + ", tap+1))
	}
	//
	builder.WriteString("1")
	//
	return builder.String()
}

// BitString returns the coefficients of this polynomial as a bare binary
// string (most significant bit first), such as "110110".
func (p Polynomial) BitString() string {
	return p.value.Text(2)
}

// BinString returns this polynomial as a binary literal, such as "0b110110".
func (p Polynomial) BinString() string {
	return fmt.Sprintf("0b%s", p.value.Text(2))
}

// HexString returns this polynomial as a hexadecimal literal, such as "0x36".
func (p Polynomial) HexString() string {
	return fmt.Sprintf("0x%s", p.value.Text(16))
}
