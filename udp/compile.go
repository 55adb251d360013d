/*
 * udp4 - Compiler: textual rule rows to bitmask-indexed row tables
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

// Compile translates a label, kind, port count, and a list of already
// tokenised row strings into an immutable *Definition. Row lexing itself is
// out of scope: rows arrive as plain strings, one character per port plus
// the output class character(s), and Compile only validates and buckets
// them.
func Compile(label string, kind Kind, ports int, rows []string) (*Definition, error) {
	if ports > MaxPorts {
		return nil, errPortCountExceeded(ports)
	}

	def := &Definition{Label: label, Kind: kind, Ports: ports}

	var err error
	if kind == Sequential {
		err = compileSequential(def, rows)
	} else {
		err = compileCombinational(def, rows)
	}
	if err != nil {
		return nil, err
	}
	return def, nil
}

// compileCombinational compiles a combinational table: each row is P level
// characters followed by one output-class character. Class 'x' rows are
// discarded since x is already the no-match default.
func compileCombinational(def *Definition, rows []string) error {
	ports := def.Ports
	rowLen := ports + 1

	n0, n1 := 0, 0
	for idx, row := range rows {
		if len(row) != rowLen {
			return errMalformedRow(idx, row)
		}
		for i := 0; i < ports; i++ {
			if !isLevelChar(row[i]) {
				return errUnknownPattern(idx, row)
			}
		}
		switch outputClass(row[ports]) {
		case classOut0:
			n0++
		case classOut1:
			n1++
		case classOutX:
			// discarded
		default:
			return errUnknownPattern(idx, row)
		}
	}

	def.L0 = make([]LevelRow, n0)
	def.L1 = make([]LevelRow, n1)

	i0, i1 := 0, 0
	for idx, row := range rows {
		cur := LevelRow{}
		for i := 0; i < ports; i++ {
			if err := orLevelChar(&cur, row[i], portBit(i)); err != nil {
				return errUnknownPattern(idx, row)
			}
		}
		switch outputClass(row[ports]) {
		case classOut0:
			def.L0[i0] = cur
			i0++
		case classOut1:
			def.L1[i1] = cur
			i1++
		}
	}

	if i0 != n0 || i1 != n1 {
		panic("udp: bucket fill count mismatch in combinational compile")
	}
	return nil
}

// compileSequential compiles a sequential table: each row is one
// current-output-class character, P port characters (at most one of which
// may be an edge character), then one next-output-class character.
func compileSequential(def *Definition, rows []string) error {
	ports := def.Ports
	rowLen := ports + 2
	outputSlot := ports

	nLev0, nLev1, nLevX, nLevL := 0, 0, 0, 0
	nEdg0, nEdg1, nEdgL := 0, 0, 0

	isEdge := make([]bool, len(rows))

	for idx, row := range rows {
		if len(row) != rowLen {
			return errMalformedRow(idx, row)
		}
		if !isLevelChar(row[0]) {
			return errUnknownPattern(idx, row)
		}

		edges := 0
		for i := 0; i < ports; i++ {
			ch := row[1+i]
			switch {
			case isLevelChar(ch):
			case isEdgeChar(ch):
				edges++
			default:
				return errUnknownPattern(idx, row)
			}
		}
		if edges > 1 {
			return errMultipleEdges(idx, row)
		}
		isEdge[idx] = edges == 1

		class := outputClass(row[rowLen-1])
		if isEdge[idx] {
			switch class {
			case classOut0:
				nEdg0++
			case classOut1:
				nEdg1++
			case classOutX:
				// discarded: an edge row driving output to x carries no
				// information beyond the no-match default
			case classOutHold:
				nEdgL++
			default:
				return errUnknownPattern(idx, row)
			}
		} else {
			switch class {
			case classOut0:
				nLev0++
			case classOut1:
				nLev1++
			case classOutX:
				nLevX++
			case classOutHold:
				nLevL++
			default:
				return errUnknownPattern(idx, row)
			}
		}
	}

	def.L0 = make([]LevelRow, nLev0)
	def.L1 = make([]LevelRow, nLev1)
	def.Lx = make([]LevelRow, nLevX)
	def.LL = make([]LevelRow, nLevL)
	def.E0 = make([]EdgeRow, nEdg0)
	def.E1 = make([]EdgeRow, nEdg1)
	def.EL = make([]EdgeRow, nEdgL)

	iLev0, iLev1, iLevX, iLevL := 0, 0, 0, 0
	iEdg0, iEdg1, iEdgL := 0, 0, 0

	for idx, row := range rows {
		class := outputClass(row[rowLen-1])

		if !isEdge[idx] {
			cur := LevelRow{}
			for i := 0; i < ports; i++ {
				if err := orLevelChar(&cur, row[1+i], portBit(i)); err != nil {
					return errUnknownPattern(idx, row)
				}
			}
			if err := orLevelChar(&cur, row[0], portBit(outputSlot)); err != nil {
				return errUnknownPattern(idx, row)
			}

			switch class {
			case classOut0:
				def.L0[iLev0] = cur
				iLev0++
			case classOut1:
				def.L1[iLev1] = cur
				iLev1++
			case classOutX:
				def.Lx[iLevX] = cur
				iLevX++
			case classOutHold:
				def.LL[iLevL] = cur
				iLevL++
			}
			continue
		}

		if class == classOutX {
			continue
		}

		edge := EdgeRow{}
		for i := 0; i < ports; i++ {
			ch := row[1+i]
			bit := portBit(i)
			switch {
			case isLevelChar(ch):
				if err := orLevelChar(&edge.Level, ch, bit); err != nil {
					return errUnknownPattern(idx, row)
				}
			case ch == chrFall:
				edge.Level.M0 |= bit
				edge.EdgePosition = i
				edge.Prev1 = true
			case ch == chrRise:
				edge.Level.M1 |= bit
				edge.EdgePosition = i
				edge.Prev0 = true
			case ch == chrToX:
				edge.Level.Mx |= bit
				edge.EdgePosition = i
				edge.Prev0 = true
				edge.Prev1 = true
			}
		}
		if err := orLevelChar(&edge.Level, row[0], portBit(outputSlot)); err != nil {
			return errUnknownPattern(idx, row)
		}

		switch class {
		case classOut0:
			def.E0[iEdg0] = edge
			iEdg0++
		case classOut1:
			def.E1[iEdg1] = edge
			iEdg1++
		case classOutHold:
			def.EL[iEdgL] = edge
			iEdgL++
		}
	}

	if iLev0 != nLev0 || iLev1 != nLev1 || iLevX != nLevX || iLevL != nLevL ||
		iEdg0 != nEdg0 || iEdg1 != nEdg1 || iEdgL != nEdgL {
		panic("udp: bucket fill count mismatch in sequential compile")
	}
	return nil
}
