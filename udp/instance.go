/*
 * udp4 - InstanceCore: per-instance stateful evaluation wrapper
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

// InstanceCore is the thin stateful wrapper around a Definition: it owns an
// instance's current InputState and last output, and holds a non-owning
// reference to the shared, immutable Definition. Two instances may point at
// the same Definition; neither instance's state ever leaks into the other.
type InstanceCore struct {
	Def *Definition

	current InputState
	curOut  LogicValue

	// history, when non-nil, records every port update this instance
	// sees. Optional: most instances run without one.
	history *History
}

// NewInstance creates an InstanceCore bound to def, with every input port
// and curOut initialized to Vx: nothing has been driven yet.
func NewInstance(def *Definition) *InstanceCore {
	return &InstanceCore{
		Def:     def,
		current: NewAllX(def.Ports),
		curOut:  Vx,
	}
}

// EnableHistory attaches a fixed-capacity trace-history recorder to this
// instance. Safe to call at any point; passing nil disables it again.
func (ic *InstanceCore) EnableHistory(h *History) {
	ic.history = h
}

// Current returns the instance's current InputState.
func (ic *InstanceCore) Current() InputState {
	return ic.current
}

// Output returns the instance's last emitted output.
func (ic *InstanceCore) Output() LogicValue {
	return ic.curOut
}

// OnPortUpdate applies a single port change and returns the new output:
// snapshot prev, mutate current, evaluate, remember the result, and hand it
// back for the caller (the simulator) to propagate with whatever delay it
// chooses.
func (ic *InstanceCore) OnPortUpdate(port int, value LogicValue) LogicValue {
	prev := ic.current
	ic.current = SetPort(ic.current, port, value)

	var next LogicValue
	switch ic.Def.Kind {
	case Sequential:
		next = EvalSeq(ic.Def, ic.current, prev, ic.curOut)
	default:
		next = EvalComb(ic.Def, ic.current)
	}

	trace.Debugf(ic.Def.Label, trace.Instance, "port %d <- %s, output %s -> %s",
		port, value.FoldZ(), ic.curOut, next)

	if ic.history != nil {
		ic.history.Record(port, value.FoldZ(), next)
	}

	ic.curOut = next
	return next
}
