/*
 * udp4 - Compiled UDP definition
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

// Definition is a named, compiled UDP: its port count, kind, and the row
// tables grouped by target output class. Once returned from Compile, a
// Definition is immutable and safe to share by reference across any number
// of InstanceCores, even across goroutines.
type Definition struct {
	Label string
	Kind  Kind
	Ports int

	// Combinational buckets (also reused as the sequential level buckets
	// below; a combinational Definition only ever populates L0/L1).
	L0 []LevelRow
	L1 []LevelRow

	// Sequential-only level buckets.
	Lx []LevelRow
	LL []LevelRow

	// Sequential-only edge buckets.
	E0 []EdgeRow
	E1 []EdgeRow
	EL []EdgeRow
}

// OutputSlot is the synthetic bit index carrying the current output inside
// a sequential InputState. Unused for combinational definitions.
func (d *Definition) OutputSlot() int {
	return d.Ports
}
