/*
 * udp4 - Compile-time error taxonomy
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
	"fmt"
)

// Sentinel errors for everything Compile and Registry can reject. Callers
// distinguish them with errors.Is; for row errors the row text and index are
// folded in with fmt.Errorf so the offending row is never lost on the way
// up, while port-count and registry errors carry the port count or label.
var (
	ErrMalformedRow      = errors.New("malformed row")
	ErrUnknownPattern    = errors.New("unknown pattern character")
	ErrMultipleEdges     = errors.New("more than one edge character in row")
	ErrPortCountExceeded = errors.New("port count exceeds mask word width")

	ErrDuplicateDefinition = errors.New("duplicate UDP definition")
	ErrUnknownDefinition   = errors.New("unknown UDP definition")
)

func errMalformedRow(idx int, row string) error {
	return fmt.Errorf("%w: row %d (%q)", ErrMalformedRow, idx, row)
}

func errUnknownPatternChar(ch byte) error {
	return fmt.Errorf("%w: %q", ErrUnknownPattern, string(ch))
}

func errUnknownPattern(idx int, row string) error {
	return fmt.Errorf("%w: row %d (%q)", ErrUnknownPattern, idx, row)
}

func errMultipleEdges(idx int, row string) error {
	return fmt.Errorf("%w: row %d (%q)", ErrMultipleEdges, idx, row)
}

func errPortCountExceeded(ports int) error {
	return fmt.Errorf("%w: %d ports requested, max %d", ErrPortCountExceeded, ports, MaxPorts)
}
