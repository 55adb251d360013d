/*
 * udp4 - Input state test cases.
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

import "testing"

func TestNewAllX(t *testing.T) {
	cur := NewAllX(3)
	if cur.Mx != 0x7 || cur.M0 != 0 || cur.M1 != 0 {
		t.Fatalf("NewAllX(3) = %+v, want Mx=0x7", cur)
	}
}

func TestSetPortExclusivity(t *testing.T) {
	cur := NewAllX(4)
	cur = SetPort(cur, 1, V1)
	cur = SetPort(cur, 2, V0)

	for i := 0; i < 4; i++ {
		bit := portBit(i)
		count := 0
		if cur.M0&bit != 0 {
			count++
		}
		if cur.M1&bit != 0 {
			count++
		}
		if cur.Mx&bit != 0 {
			count++
		}
		if count != 1 {
			t.Fatalf("port %d: expected exactly one mask bit set, got %d", i, count)
		}
	}

	if ValueAt(cur, 1) != V1 {
		t.Errorf("port 1 = %v, want V1", ValueAt(cur, 1))
	}
	if ValueAt(cur, 2) != V0 {
		t.Errorf("port 2 = %v, want V0", ValueAt(cur, 2))
	}
	if ValueAt(cur, 0) != Vx {
		t.Errorf("port 0 = %v, want Vx (untouched)", ValueAt(cur, 0))
	}
}

func TestSetPortZFoldsToX(t *testing.T) {
	cur := NewAllX(1)
	cur = SetPort(cur, 0, V1)
	cur = SetPort(cur, 0, Vz)
	if ValueAt(cur, 0) != Vx {
		t.Fatalf("Vz should fold to Vx, got %v", ValueAt(cur, 0))
	}
	if cur.Mx&portBit(0) == 0 {
		t.Fatalf("Vz should set the Mx bit, state = %+v", cur)
	}
}

func TestLevelRowMatchesWildcards(t *testing.T) {
	tests := []struct {
		name string
		row  LevelRow
		cur  InputState
		want bool
	}{
		{"any port matches 0", LevelRow{M0: 1, M1: 1, Mx: 1}, InputState{M0: 1}, true},
		{"any port matches 1", LevelRow{M0: 1, M1: 1, Mx: 1}, InputState{M1: 1}, true},
		{"any port matches x", LevelRow{M0: 1, M1: 1, Mx: 1}, InputState{Mx: 1}, true},
		{"both accepts 0", LevelRow{M0: 1, M1: 1}, InputState{M0: 1}, true},
		{"both rejects x", LevelRow{M0: 1, M1: 1}, InputState{Mx: 1}, false},
		{"exact 0 rejects 1", LevelRow{M0: 1}, InputState{M1: 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.row.Matches(tt.cur); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestRowMatchMonotonicity checks that narrowing a port from x to a
// concrete value the row also accepts can't turn a match into a
// non-match.
func TestRowMatchMonotonicity(t *testing.T) {
	row := LevelRow{M0: 0, M1: 0, Mx: 0}
	orLevelChar(&row, chrLowX, portBit(0)) // 'l': accepts {0, x}

	wide := InputState{Mx: portBit(0)}
	narrow := InputState{M0: portBit(0)}

	if !row.Matches(wide) {
		t.Fatal("row should match the wildcard state")
	}
	if !row.Matches(narrow) {
		t.Fatal("row should still match after narrowing x to an accepted concrete value")
	}
}
