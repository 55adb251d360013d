/*
 * udp4 - Compiled row types and the pattern alphabet
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

// Kind distinguishes a combinational UDP from a sequential one.
type Kind int

const (
	Combinational Kind = iota
	Sequential
)

func (k Kind) String() string {
	if k == Sequential {
		return "sequential"
	}
	return "combinational"
}

// LevelRow is a single compiled level-matching rule: three bitmasks over the
// same index space as InputState (ports, plus, for sequential rows, the
// output slot at bit position P).
type LevelRow struct {
	M0 uint64
	M1 uint64
	Mx uint64
}

// Matches reports whether cur's chosen bit per position lies in the row's
// accepted set: every position cur marks as 0, 1, or x must also be
// accepted by the row's corresponding mask.
func (r LevelRow) Matches(cur InputState) bool {
	return subset(cur.M0, r.M0) && subset(cur.M1, r.M1) && subset(cur.Mx, r.Mx)
}

// heldOutput reads back the output value a hold ("-") row encoded into the
// output-slot bit of a sequential LevelRow match. It reads from cur, not
// from the row, so a hold while the output is already Vx re-emits Vx
// rather than getting stuck at some earlier defined value.
func heldOutput(cur InputState, outputSlot int) LogicValue {
	bit := portBit(outputSlot)
	switch {
	case cur.M0&bit != 0:
		return V0
	case cur.M1&bit != 0:
		return V1
	default:
		return Vx
	}
}

// EdgeRow is a single compiled edge-matching rule: the underlying level
// masks (matched against the current input, across every port plus the
// output slot) plus an edge descriptor naming the one port the edge occurs
// on and which previous value(s) on that port are acceptable.
type EdgeRow struct {
	Level LevelRow

	EdgePosition int

	// Prev0/Prev1/PrevX: which previous value(s) at EdgePosition this row
	// accepts.
	Prev0 bool
	Prev1 bool
	PrevX bool
}

// prevAllowed reports whether the previous value seen at the edge position
// is one this row accepts.
func (r EdgeRow) prevAllowed(prev LogicValue) bool {
	switch prev {
	case V0:
		return r.Prev0
	case V1:
		return r.Prev1
	default:
		return r.PrevX
	}
}

// Pattern characters, shared by level columns on both combinational and
// sequential rows.
const (
	chr0    = '0'
	chr1    = '1'
	chrX    = 'x'
	chrBoth = 'b'
	chrLowX = 'l'
	chrHiX  = 'h'
	chrAny  = '?'

	// Edge characters, sequential port columns only.
	chrFall = 'f'
	chrRise = 'r'
	chrToX  = 'q'
)

// levelAlphabet is every character valid in a level column.
const levelAlphabet = "01xblh?"

// isLevelChar reports whether ch is one of the seven level pattern chars.
func isLevelChar(ch byte) bool {
	switch ch {
	case chr0, chr1, chrX, chrBoth, chrLowX, chrHiX, chrAny:
		return true
	default:
		return false
	}
}

// isEdgeChar reports whether ch is one of the three edge pattern chars.
func isEdgeChar(ch byte) bool {
	switch ch {
	case chrFall, chrRise, chrToX:
		return true
	default:
		return false
	}
}

// orLevelChar ORs the mask bit for port position bit into cur according to
// ch's accept-set (a wildcard sets all three masks, "either 0 or 1" sets
// two, and so on).
func orLevelChar(cur *LevelRow, ch byte, bit uint64) error {
	switch ch {
	case chr0:
		cur.M0 |= bit
	case chr1:
		cur.M1 |= bit
	case chrX:
		cur.Mx |= bit
	case chrBoth:
		cur.M0 |= bit
		cur.M1 |= bit
	case chrLowX:
		cur.M0 |= bit
		cur.Mx |= bit
	case chrHiX:
		cur.M1 |= bit
		cur.Mx |= bit
	case chrAny:
		cur.M0 |= bit
		cur.M1 |= bit
		cur.Mx |= bit
	default:
		return errUnknownPatternChar(ch)
	}
	return nil
}

// outputClass is the character trailing a combinational row, or the
// leading (current-output) / trailing (next-output) character of a
// sequential row.
type outputClass byte

const (
	classOut0  outputClass = '0'
	classOut1  outputClass = '1'
	classOutX  outputClass = 'x'
	classOutHold outputClass = '-'
)
