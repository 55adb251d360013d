/*
 * udp4 - UDP library file parser
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

// Package udpconfig loads a textual UDP library file: a sequence of
// directive lines that define UDP tables and the instances built from
// them. The grammar, and the hand-rolled line scanner that reads it, is
// adapted from config/configparser's device-model directive format,
// generalized from "device models and options" to "UDP definitions and
// instances":
//
//	'#' indicates a comment, rest of line ignored.
//	<line> := 'udp' <label> <kind> <ports> |
//	          'row' <pattern> |
//	          'end' |
//	          'instance' <name> <label> |
//	          'trace' <mask>
//	<kind>  := 'comb' | 'seq'
//
// A 'udp' line opens a definition; 'row' lines accumulate pattern strings
// for it; 'end' closes it, compiles the accumulated rows, and registers
// the result. 'instance' lines may only appear between definitions (not
// inside an open udp/end block) and name an InstanceCore to build once
// loading finishes. 'trace' sets the row-match tracing mask for the
// remainder of the run.
package udpconfig

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/rcornwell/udp4/udp"
	"github.com/rcornwell/udp4/util/trace"
)

// InstanceSpec is one 'instance' directive: the name to give the instance
// and the label of the UDP definition it is built from.
type InstanceSpec struct {
	Name  string
	Label string
}

// Library is the result of loading a UDP library file: a frozen registry
// of compiled definitions, plus the instances the file asked to be built.
type Library struct {
	Registry  *udp.Registry
	Instances []InstanceSpec
}

// directiveLine is the current line being scanned, adapted from
// configparser's optionLine.
type directiveLine struct {
	line string
	pos  int
}

// openDef accumulates row strings between a 'udp' line and its 'end'.
type openDef struct {
	label string
	kind  udp.Kind
	ports int
	rows  []string
}

// Load reads name and returns the compiled Library it describes.
func Load(name string) (*Library, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return load(file)
}

func load(r io.Reader) (*Library, error) {
	lib := &Library{Registry: udp.NewRegistry()}
	var open *openDef

	reader := bufio.NewReader(r)
	lineNumber := 0
	for {
		raw, err := reader.ReadString('\n')
		lineNumber++
		if len(raw) == 0 && err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}

		line := &directiveLine{line: raw}
		if perr := line.apply(lib, &open, lineNumber); perr != nil {
			return nil, perr
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
	}

	if open != nil {
		return nil, fmt.Errorf("line %d: unterminated udp block for %q, missing end", lineNumber, open.label)
	}
	return lib, nil
}

// apply parses one directive line and updates lib/open accordingly.
func (line *directiveLine) apply(lib *Library, open **openDef, lineNumber int) error {
	directive := line.getWord()
	if directive == "" {
		return nil
	}

	switch directive {
	case "udp":
		if *open != nil {
			return fmt.Errorf("line %d: nested udp block, %q still open", lineNumber, (*open).label)
		}
		def, err := line.parseUdpHeader(lineNumber)
		if err != nil {
			return err
		}
		*open = def
		return nil

	case "row":
		if *open == nil {
			return fmt.Errorf("line %d: row directive outside any udp block", lineNumber)
		}
		row := line.getWord()
		if row == "" {
			return fmt.Errorf("line %d: row directive with no pattern", lineNumber)
		}
		(*open).rows = append((*open).rows, row)
		return nil

	case "end":
		if *open == nil {
			return fmt.Errorf("line %d: end with no open udp block", lineNumber)
		}
		def, err := udp.Compile((*open).label, (*open).kind, (*open).ports, (*open).rows)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNumber, err)
		}
		if err := lib.Registry.Register(def); err != nil {
			return fmt.Errorf("line %d: %w", lineNumber, err)
		}
		*open = nil
		return nil

	case "instance":
		if *open != nil {
			return fmt.Errorf("line %d: instance directive inside open udp block %q", lineNumber, (*open).label)
		}
		name := line.getWord()
		label := line.getWord()
		if name == "" || label == "" {
			return fmt.Errorf("line %d: instance requires a name and a udp label", lineNumber)
		}
		lib.Instances = append(lib.Instances, InstanceSpec{Name: name, Label: label})
		return nil

	case "trace":
		if *open != nil {
			return fmt.Errorf("line %d: trace directive inside open udp block %q", lineNumber, (*open).label)
		}
		maskWord := line.getWord()
		mask, err := strconv.ParseInt(maskWord, 0, 64)
		if err != nil {
			return fmt.Errorf("line %d: invalid trace mask %q: %w", lineNumber, maskWord, err)
		}
		trace.SetEnabled(trace.Mask(mask))
		return nil

	default:
		return fmt.Errorf("line %d: unknown directive %q", lineNumber, directive)
	}
}

// parseUdpHeader parses the remainder of a 'udp' line: label, kind, ports.
func (line *directiveLine) parseUdpHeader(lineNumber int) (*openDef, error) {
	label := line.getWord()
	kindWord := line.getWord()
	portsWord := line.getWord()
	if label == "" || kindWord == "" || portsWord == "" {
		return nil, fmt.Errorf("line %d: udp directive requires a label, kind, and port count", lineNumber)
	}

	var kind udp.Kind
	switch strings.ToLower(kindWord) {
	case "comb":
		kind = udp.Combinational
	case "seq":
		kind = udp.Sequential
	default:
		return nil, fmt.Errorf("line %d: unknown udp kind %q, want comb or seq", lineNumber, kindWord)
	}

	ports, err := strconv.Atoi(portsWord)
	if err != nil || ports <= 0 {
		return nil, fmt.Errorf("line %d: invalid port count %q", lineNumber, portsWord)
	}

	return &openDef{label: label, kind: kind, ports: ports}, nil
}

// skipSpace advances past leading whitespace.
func (line *directiveLine) skipSpace() {
	for line.pos < len(line.line) && unicode.IsSpace(rune(line.line[line.pos])) {
		line.pos++
	}
}

// isEOL reports whether the scanner has reached the end of the line or a
// comment marker.
func (line *directiveLine) isEOL() bool {
	if line.pos >= len(line.line) {
		return true
	}
	return line.line[line.pos] == '#'
}

// getWord returns the next whitespace-delimited token, or "" at end of
// line. Tokens stop at '#' so trailing comments are never captured.
func (line *directiveLine) getWord() string {
	line.skipSpace()
	if line.isEOL() {
		return ""
	}

	start := line.pos
	for line.pos < len(line.line) && !unicode.IsSpace(rune(line.line[line.pos])) && line.line[line.pos] != '#' {
		line.pos++
	}
	return line.line[start:line.pos]
}
