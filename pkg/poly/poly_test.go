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
	"math/big"
	"slices"
	"testing"
)

func Test_Poly_01(t *testing.T) {
	check_Poly(t, "0b110110", 6, []uint{5, 4, 2, 1})
	check_Poly(t, "0x36", 6, []uint{5, 4, 2, 1})
}

func Test_Poly_02(t *testing.T) {
	check_Poly(t, "0b1", 1, []uint{0})
	check_Poly(t, "0b10", 2, []uint{1})
	check_Poly(t, "0b11", 2, []uint{1, 0})
	check_Poly(t, "0xb8", 8, []uint{7, 5, 4, 3})
	// Uppercase digits are fine, uppercase prefixes are not.
	check_Poly(t, "0xB8", 8, []uint{7, 5, 4, 3})
	check_Poly(t, "0x80200003", 32, []uint{31, 21, 1, 0})
}

func Test_Poly_03(t *testing.T) {
	// Leading zeros never contribute to the width.
	check_Poly(t, "0b000110110", 6, []uint{5, 4, 2, 1})
	check_Poly(t, "0x0036", 6, []uint{5, 4, 2, 1})
}

func Test_Poly_04(t *testing.T) {
	p, err := Parse("0b110110")
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	if s := p.String(); s != "x^6 + x^5 + x^3 + x^2 + 1" {
		t.Errorf("unexpected rendering %q", s)
	}
	//
	if s := p.BitString(); s != "110110" {
		t.Errorf("unexpected bit string %q", s)
	}
	//
	if s := p.BinString(); s != "0b110110" {
		t.Errorf("unexpected binary literal %q", s)
	}
	//
	if s := p.HexString(); s != "0x36" {
		t.Errorf("unexpected hexadecimal literal %q", s)
	}
}

func Test_Poly_05(t *testing.T) {
	p, err := Parse("0b1")
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	if s := p.String(); s != "x^1 + 1" {
		t.Errorf("unexpected rendering %q", s)
	}
}

func Test_Poly_06(t *testing.T) {
	p, _ := Parse("0x36")
	value := p.Value()
	//
	if value.Cmp(big.NewInt(0x36)) != 0 {
		t.Errorf("unexpected value %s", value)
	}
	// Mutating the returned value must not affect the polynomial.
	value.SetUint64(0)
	//
	if p.Value().Cmp(big.NewInt(0x36)) != 0 {
		t.Error("polynomial value mutated through accessor")
	}
	// Likewise for taps.
	taps := p.Taps()
	taps[0] = 99
	//
	if !slices.Equal(p.Taps(), []uint{5, 4, 2, 1}) {
		t.Error("polynomial taps mutated through accessor")
	}
}

func Test_Poly_07(t *testing.T) {
	check_Malformed(t, "")
	check_Malformed(t, "110110")
	check_Malformed(t, "0B110110")
	check_Malformed(t, "0X36")
	check_Malformed(t, "0b")
	check_Malformed(t, "0x")
	check_Malformed(t, "0bxyz")
	check_Malformed(t, "0b12")
	check_Malformed(t, "0x36g")
	check_Malformed(t, "0b11_01")
	check_Malformed(t, "-0b1")
	check_Malformed(t, "0b-101")
	check_Malformed(t, "0x-1")
	check_Malformed(t, "0b+101")
	check_Malformed(t, "0x+36")
}

func Test_Poly_08(t *testing.T) {
	check_Zero(t, "0b0")
	check_Zero(t, "0x0")
	check_Zero(t, "0b0000")
	check_Zero(t, "0x0000")
}

// ===================================================================
// Test Helpers
// ===================================================================

func check_Poly(t *testing.T, literal string, width uint, taps []uint) {
	p, err := Parse(literal)
	//
	if err != nil {
		t.Fatalf("parsing %q failed: %s", literal, err)
	}
	//
	if p.Width() != width {
		t.Errorf("parsing %q gave width %d (expected %d)", literal, p.Width(), width)
	}
	//
	if !slices.Equal(p.Taps(), taps) {
		t.Errorf("parsing %q gave taps %v (expected %v)", literal, p.Taps(), taps)
	}
	// Cross-check taps against HasTap
	for i := uint(0); i < width+2; i++ {
		expected := slices.Contains(taps, i)
		//
		if p.HasTap(i) != expected {
			t.Errorf("parsing %q gave HasTap(%d) = %t", literal, i, p.HasTap(i))
		}
	}
}

func check_Malformed(t *testing.T, literal string) {
	_, err := Parse(literal)
	//
	if !errors.Is(err, ErrMalformedPolynomial) {
		t.Errorf("parsing %q gave %v (expected malformed polynomial)", literal, err)
	}
}

func check_Zero(t *testing.T, literal string) {
	_, err := Parse(literal)
	//
	if !errors.Is(err, ErrZeroPolynomial) {
		t.Errorf("parsing %q gave %v (expected zero polynomial)", literal, err)
	}
}
