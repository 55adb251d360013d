/*
 * udp4 - Fixed-capacity instance evaluation history
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

// History is a fixed-capacity ring buffer recording the port updates an
// InstanceCore has seen. It is the backing array used by the REPL's
// "history" command.
//
// The shape is adapted from emu/memory's flat [N]uint32 word array plus a
// parallel key array of per-block access/modify bits: here the flat array
// holds entries instead of words, and the parallel byte array marks which
// slots have been written at least once ("touched") versus overwritten by
// wraparound ("recycled") instead of memory's access/modify distinction.
// Like that array, History never grows once constructed: no allocation
// happens on the per-port-update hot path.
type History struct {
	entries [historyCapacity]HistoryEntry
	flags   [historyCapacity]uint8
	next    int
	filled  bool
}

const historyCapacity = 256

const (
	flagTouched  uint8 = 0x4
	flagRecycled uint8 = 0x2
)

// HistoryEntry is one recorded port update and the output it produced.
type HistoryEntry struct {
	Port   int
	Value  LogicValue
	Output LogicValue
}

// NewHistory returns an empty History ready to attach to an InstanceCore.
func NewHistory() *History {
	return &History{}
}

// Record appends one port update, overwriting the oldest entry once the
// buffer is full.
func (h *History) Record(port int, value, output LogicValue) {
	if h.flags[h.next]&flagTouched != 0 {
		h.flags[h.next] |= flagRecycled
	}
	h.entries[h.next] = HistoryEntry{Port: port, Value: value, Output: output}
	h.flags[h.next] |= flagTouched

	h.next++
	if h.next == historyCapacity {
		h.next = 0
		h.filled = true
	}
}

// Snapshot returns every recorded entry in chronological order, oldest
// first.
func (h *History) Snapshot() []HistoryEntry {
	if !h.filled {
		out := make([]HistoryEntry, h.next)
		copy(out, h.entries[:h.next])
		return out
	}
	out := make([]HistoryEntry, historyCapacity)
	copy(out, h.entries[h.next:])
	copy(out[historyCapacity-h.next:], h.entries[:h.next])
	return out
}
