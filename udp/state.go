/*
 * udp4 - Input state mask plumbing
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

const (
	// Width is the bit width of the mask word.
	Width = 64

	// MaxPorts is the largest port count a UDP may declare: one bit of
	// the mask word is reserved for the sequential output slot.
	MaxPorts = Width - 1
)

// InputState is a triple of bitmasks over port indices. For each index i in
// [0, P) (and, during sequential evaluation, also i = P, the output slot)
// exactly one of M0, M1, Mx has bit i set.
type InputState struct {
	M0 uint64
	M1 uint64
	Mx uint64
}

// portBit returns the mask bit for port index i.
func portBit(i int) uint64 {
	return 1 << uint(i)
}

// portRangeMask returns a mask with the low n bits set.
func portRangeMask(n int) uint64 {
	if n <= 0 {
		return 0
	}
	if n >= Width {
		return ^uint64(0)
	}
	return (uint64(1) << uint(n)) - 1
}

// NewAllX returns the initial InputState for a UDP with the given port
// count: every port unknown.
func NewAllX(ports int) InputState {
	return InputState{Mx: portRangeMask(ports)}
}

// SetPort returns cur with port i's bit cleared in all three masks and then
// set in the mask for v (Vz folds to Vx).
func SetPort(cur InputState, i int, v LogicValue) InputState {
	bit := portBit(i)
	cur.M0 &^= bit
	cur.M1 &^= bit
	cur.Mx &^= bit

	switch v.FoldZ() {
	case V0:
		cur.M0 |= bit
	case V1:
		cur.M1 |= bit
	default:
		cur.Mx |= bit
	}
	return cur
}

// ValueAt returns the logic value InputState carries at port i.
func ValueAt(cur InputState, i int) LogicValue {
	bit := portBit(i)
	switch {
	case cur.M0&bit != 0:
		return V0
	case cur.M1&bit != 0:
		return V1
	default:
		return Vx
	}
}

// subset reports whether every bit set in cur is also set in row: the
// match rule shared by level rows, edge rows, and the output slot.
func subset(cur, row uint64) bool {
	return cur == cur&row
}
