/*
 * udp4 - Per-compilation UDP definition registry
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

import "fmt"

// Registry maps UDP labels to their compiled Definitions. Unlike the
// symbol_table_t the UDP core was distilled from (a single process-wide
// table, symbols.h/udp_table), a Registry is created per compilation run
// and threaded explicitly through the parser and instance builder, so
// multiple independent loads never share or clobber each other's tables.
// There is exactly one writer, the compiler driving a single build, so
// Registry holds no lock of its own; callers sharing one across goroutines
// must synchronize externally.
type Registry struct {
	defs map[string]*Definition
}

// NewRegistry returns an empty Registry, ready for Register calls.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]*Definition)}
}

// Register adds def under its own Label. Registering a second Definition
// under a label already present is a fatal compile-time error
// (ErrDuplicateDefinition), matching vvp_udp_s's "assert(!udp_find(label))".
func (r *Registry) Register(def *Definition) error {
	if _, exists := r.defs[def.Label]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateDefinition, def.Label)
	}
	r.defs[def.Label] = def
	return nil
}

// Lookup resolves label against the registry, the Go equivalent of
// udp.cc's udp_find, but returning an error instead of a nil pointer so an
// instance builder referencing a label that was never compiled gets a
// diagnosable ErrUnknownDefinition instead of a crash.
func (r *Registry) Lookup(label string) (*Definition, error) {
	def, ok := r.defs[label]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDefinition, label)
	}
	return def, nil
}

// Labels returns every registered label, for REPL completion and listing.
func (r *Registry) Labels() []string {
	labels := make([]string, 0, len(r.defs))
	for label := range r.defs {
		labels = append(labels, label)
	}
	return labels
}
