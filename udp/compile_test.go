/*
 * udp4 - Compiler test cases.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package udp

import (
	"errors"
	"testing"
)

func TestCompileCombinationalBuckets(t *testing.T) {
	def, err := Compile("AND2", Combinational, 2, []string{
		"000", "010", "100", "111", "??x",
	})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if len(def.L1) != 1 {
		t.Fatalf("L1 has %d rows, want 1", len(def.L1))
	}
	if len(def.L0) != 3 {
		t.Fatalf("L0 has %d rows, want 3 (x-class row must be discarded)", len(def.L0))
	}
}

// TestCompileRoundTrip checks that every level pattern character compiles
// to exactly the mask bits it names (0, 1, x, or the "either" wildcard).
func TestCompileRoundTrip(t *testing.T) {
	tests := []struct {
		ch             byte
		m0, m1, mx bool
	}{
		{chr0, true, false, false},
		{chr1, false, true, false},
		{chrX, false, false, true},
		{chrBoth, true, true, false},
		{chrLowX, true, false, true},
		{chrHiX, false, true, true},
		{chrAny, true, true, true},
	}
	for _, tt := range tests {
		row := LevelRow{}
		if err := orLevelChar(&row, tt.ch, 1); err != nil {
			t.Fatalf("orLevelChar(%q): %v", string(tt.ch), err)
		}
		if (row.M0 != 0) != tt.m0 || (row.M1 != 0) != tt.m1 || (row.Mx != 0) != tt.mx {
			t.Errorf("char %q: got (m0=%v m1=%v mx=%v), want (%v %v %v)",
				string(tt.ch), row.M0 != 0, row.M1 != 0, row.Mx != 0, tt.m0, tt.m1, tt.mx)
		}
	}
}

func TestCompileMalformedRowLength(t *testing.T) {
	_, err := Compile("BAD", Combinational, 2, []string{"00"})
	if !errors.Is(err, ErrMalformedRow) {
		t.Fatalf("err = %v, want ErrMalformedRow", err)
	}
}

func TestCompileUnknownPattern(t *testing.T) {
	_, err := Compile("BAD", Combinational, 2, []string{"0z0"})
	if !errors.Is(err, ErrUnknownPattern) {
		t.Fatalf("err = %v, want ErrUnknownPattern", err)
	}
}

func TestCompilePortCountExceeded(t *testing.T) {
	_, err := Compile("BAD", Combinational, MaxPorts+1, nil)
	if !errors.Is(err, ErrPortCountExceeded) {
		t.Fatalf("err = %v, want ErrPortCountExceeded", err)
	}
}

func TestCompileSequentialMultipleEdges(t *testing.T) {
	// Port0 rising, port1 falling: two edge characters in one row.
	_, err := Compile("BAD", Sequential, 2, []string{"?rf1"})
	if !errors.Is(err, ErrMultipleEdges) {
		t.Fatalf("err = %v, want ErrMultipleEdges", err)
	}
}

func TestCompileSequentialHoldAndEdgeBuckets(t *testing.T) {
	def, err := Compile("DFF", Sequential, 2, []string{
		"?0r1",
		"???-",
	})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if len(def.E1) != 1 {
		t.Fatalf("E1 has %d rows, want 1", len(def.E1))
	}
	if def.E1[0].EdgePosition != 1 {
		t.Fatalf("edge position = %d, want 1", def.E1[0].EdgePosition)
	}
	if !def.E1[0].Prev0 || def.E1[0].Prev1 || def.E1[0].PrevX {
		t.Fatalf("rising edge should require prev=0 only, got %+v", def.E1[0])
	}
	if len(def.LL) != 1 {
		t.Fatalf("LL has %d rows, want 1", len(def.LL))
	}
}

func TestCompileSequentialEdgeXDiscarded(t *testing.T) {
	def, err := Compile("Q", Sequential, 1, []string{"?qx"})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if len(def.E0) != 0 || len(def.E1) != 0 || len(def.EL) != 0 {
		t.Fatalf("class-x edge row must be discarded, got E0=%d E1=%d EL=%d",
			len(def.E0), len(def.E1), len(def.EL))
	}
}
