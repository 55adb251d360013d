/*
 * udp4 - Four-valued logic scalar
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

// LogicValue is one of the four values a UDP port or output can carry.
type LogicValue uint8

const (
	V0 LogicValue = iota // Logic 0
	V1                    // Logic 1
	Vx                    // Unknown
	Vz                    // High impedance, folds to Vx on input
)

// String renders a LogicValue the way rule rows and trace output spell it.
func (v LogicValue) String() string {
	switch v {
	case V0:
		return "0"
	case V1:
		return "1"
	case Vx:
		return "x"
	case Vz:
		return "z"
	default:
		return "?"
	}
}

// FoldZ turns Vz into Vx. Every input-facing path folds z this way before
// it ever reaches mask arithmetic; only Vz itself needs the call.
func (v LogicValue) FoldZ() LogicValue {
	if v == Vz {
		return Vx
	}
	return v
}
