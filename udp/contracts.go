/*
 * udp4 - Named external collaborator contracts
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

// This core never implements these two interfaces; it only names them, so
// a surrounding simulator has a documented contract to implement against
// instead of reaching into InstanceCore's internals. Neither the net/signal
// plumbing nor the event scheduler belongs inside the evaluation core
// itself: both are a surrounding driver's job.

// NetSink is the net/signal plumbing an evaluation's output is handed to.
// This core never calls it directly; InstanceCore.OnPortUpdate only returns
// the computed value and leaves propagation to the caller.
type NetSink interface {
	// Propagate delivers a newly computed output bit downstream.
	Propagate(value LogicValue)
}

// Scheduler is the event queue an evaluation's propagation delay is handed
// to; named here only so reference drivers (see package delay) have a
// contract to implement against.
type Scheduler interface {
	// Schedule arranges for apply to run after the given number of
	// simulation ticks.
	Schedule(ticks int, apply func())
}
