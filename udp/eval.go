/*
 * udp4 - Evaluator: selects the applicable row on every input change
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

import "github.com/rcornwell/udp4/util/trace"

// EvalComb evaluates a combinational definition against cur. It scans L1
// before L0 so that, if a table has overlapping rows (more than one row
// matches the same input, which Compile does not reject), the result is a
// fixed, documented order rather than whichever bucket happens to be
// checked first.
func EvalComb(def *Definition, cur InputState) LogicValue {
	for i := range def.L1 {
		if def.L1[i].Matches(cur) {
			trace.Debugf("udp", trace.Match, "%s: L1[%d] matched", def.Label, i)
			return V1
		}
	}
	for i := range def.L0 {
		if def.L0[i].Matches(cur) {
			trace.Debugf("udp", trace.Match, "%s: L0[%d] matched", def.Label, i)
			return V0
		}
	}
	return Vx
}

// EvalSeq evaluates a sequential definition. cur and prev carry only port
// bits; curOut is the last emitted output. The output slot is folded in
// internally before level and edge matching, then every level bucket is
// tried before any edge bucket: a level row (including a catch-all hold
// row) always gets first refusal, and edge rows only ever fire when no
// level row matched at all.
func EvalSeq(def *Definition, cur, prev InputState, curOut LogicValue) LogicValue {
	outputSlot := def.OutputSlot()
	curTmp := SetPort(cur, outputSlot, curOut)

	if v, ok := testLevels(def, curTmp); ok {
		return v
	}
	return testEdges(def, curTmp, prev)
}

// testLevels scans the level buckets in strict order L0, L1, Lx, LL. The
// bool return distinguishes "no level row matched" (caller falls through to
// edge matching) from an explicit Vx level match.
func testLevels(def *Definition, curTmp InputState) (LogicValue, bool) {
	for i := range def.L0 {
		if def.L0[i].Matches(curTmp) {
			trace.Debugf("udp", trace.Match, "%s: L0[%d] matched", def.Label, i)
			return V0, true
		}
	}
	for i := range def.L1 {
		if def.L1[i].Matches(curTmp) {
			trace.Debugf("udp", trace.Match, "%s: L1[%d] matched", def.Label, i)
			return V1, true
		}
	}
	for i := range def.Lx {
		if def.Lx[i].Matches(curTmp) {
			trace.Debugf("udp", trace.Match, "%s: Lx[%d] matched", def.Label, i)
			return Vx, true
		}
	}
	for i := range def.LL {
		if def.LL[i].Matches(curTmp) {
			v := heldOutput(curTmp, def.OutputSlot())
			trace.Debugf("udp", trace.Match, "%s: LL[%d] matched, holding %s", def.Label, i, v)
			return v, true
		}
	}
	return Vx, false
}

// testEdges derives the single differing port from cur/prev, then scans
// E0, E1, EL in that strict order.
func testEdges(def *Definition, curTmp, prev InputState) LogicValue {
	ports := def.Ports
	rangeMask := portRangeMask(ports)

	edgeMask := (curTmp.M0 ^ prev.M0) | (curTmp.M1 ^ prev.M1) | (curTmp.Mx ^ prev.Mx)
	edgeMask &= rangeMask

	if edgeMask == 0 {
		return Vx
	}

	position := trailingZeros(edgeMask)
	if edgeMask&(edgeMask-1) != 0 {
		// More than one port differs: the caller is expected to apply one
		// port update at a time, so this can't be trusted. Return Vx
		// defensively rather than guessing which port actually edged.
		return Vx
	}

	prevValue := ValueAt(prev, position)

	if scanEdgeBucket(def.E0, position, prevValue, curTmp) {
		trace.Debugf("udp", trace.Match, "%s: E0 matched at port %d", def.Label, position)
		return V0
	}
	if scanEdgeBucket(def.E1, position, prevValue, curTmp) {
		trace.Debugf("udp", trace.Match, "%s: E1 matched at port %d", def.Label, position)
		return V1
	}

	for i := range def.EL {
		row := def.EL[i]
		if row.EdgePosition != position {
			continue
		}
		if !row.prevAllowed(prevValue) {
			continue
		}
		if !row.Level.Matches(curTmp) {
			continue
		}
		v := heldOutput(curTmp, def.OutputSlot())
		trace.Debugf("udp", trace.Match, "%s: EL matched at port %d, holding %s", def.Label, position, v)
		return v
	}

	return Vx
}

// scanEdgeBucket scans a fixed-output (E0 or E1) bucket and reports whether
// a row matched; the output value itself is implied by which bucket the
// caller passed in.
func scanEdgeBucket(rows []EdgeRow, position int, prevValue LogicValue, curTmp InputState) bool {
	for i := range rows {
		row := rows[i]
		if row.EdgePosition != position {
			continue
		}
		if !row.prevAllowed(prevValue) {
			continue
		}
		if !row.Level.Matches(curTmp) {
			continue
		}
		return true
	}
	return false
}

// trailingZeros returns the index of the least-significant set bit of m.
// m is assumed nonzero.
func trailingZeros(m uint64) int {
	n := 0
	for m&1 == 0 {
		m >>= 1
		n++
	}
	return n
}
