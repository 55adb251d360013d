/*
 * udp4 - Mask-gated row-match tracing
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

// Package trace provides mask-gated diagnostic logging for the hot
// evaluation path. It is adapted from util/debug's Debugf/DebugDevf: a
// module name, a bitmask of enabled trace categories, and a format string.
// When no category is enabled the call costs a single mask test, so the
// Evaluator and InstanceCore can leave these calls in place permanently without
// paying for formatting work on every port update.
package trace

import (
	"fmt"
	"log/slog"
)

// Mask is a bitmask of trace categories a module may gate its Debugf calls
// on. Categories are additive: SetEnabled(0) disables everything.
type Mask int

const (
	// Compile is the compiler's category. The compiler makes no Debugf
	// calls, so enabling it produces no output.
	Compile Mask = 1 << iota
	// Match traces which row matched on each evaluation; an evaluation
	// that matches no row emits nothing.
	Match
	// Instance traces InstanceCore port updates and output transitions.
	Instance
)

var enabled Mask

// SetEnabled replaces the set of enabled trace categories. Called once at
// startup (or interactively from the REPL's "trace" command); the core
// evaluates on a single goroutine, so this is never read concurrently with
// a write.
func SetEnabled(mask Mask) {
	enabled = mask
}

// Enabled reports whether any bit of mask is currently on.
func Enabled(mask Mask) bool {
	return enabled&mask != 0
}

// Debugf logs a trace line through slog.Debug if mask is enabled. The
// module name becomes a "module" attribute so trace lines from the
// evaluator ("udp") and from each instance (its definition's label) can be
// told apart in the log stream.
func Debugf(module string, mask Mask, format string, args ...any) {
	if enabled&mask == 0 {
		return
	}
	slog.Debug(fmt.Sprintf(format, args...), "module", module)
}
