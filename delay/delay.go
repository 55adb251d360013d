/*
 * udp4 - Propagation delay queue for a reference driver
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

// Package delay fills the scheduler role the evaluation core names
// (udp.Scheduler) but deliberately never implements itself: propagation
// delay is a surrounding simulator's concern, not the evaluator's. Queue's
// Schedule takes a callback, a tick count and an arg rather than
// udp.Scheduler's (ticks, apply) pair, so Queue does not satisfy that
// interface. A
// driver that wants to apply InstanceCore.OnPortUpdate's result after some
// number of simulation ticks, rather than immediately, needs a queue
// somewhere; this is that queue, adapted directly from emu/event's
// relative-time doubly-linked event list.
package delay

// Callback is invoked when a scheduled delay expires. arg is an opaque
// caller-supplied value, carried through unchanged (an instance handle, a
// port number — whatever the caller needs to apply the delayed value).
type Callback func(arg int)

type entry struct {
	ticks int // ticks remaining until this event fires, relative to the previous entry
	cb    Callback
	arg   int
	prev  *entry
	next  *entry
}

// Queue is a relative-time ordered list of pending delays: the same
// structure as emu/event's EventList, generalized from device-keyed
// cancellation to arg-keyed cancellation since this package has no Device
// type to key on.
type Queue struct {
	head *entry
	tail *entry
}

// Schedule arranges for cb(arg) to run after ticks simulation ticks. A
// ticks of 0 or less runs cb immediately without queueing it, matching
// emu/event's AddEvent convention for an undelayed event.
func (q *Queue) Schedule(cb Callback, ticks int, arg int) {
	if ticks <= 0 {
		cb(arg)
		return
	}

	ev := &entry{ticks: ticks, cb: cb, arg: arg}

	cur := q.head
	if cur == nil {
		q.head = ev
		q.tail = ev
		return
	}

	for cur != nil {
		if ev.ticks <= cur.ticks {
			cur.ticks -= ev.ticks
			ev.prev = cur.prev
			ev.next = cur
			cur.prev = ev
			if ev.prev != nil {
				ev.prev.next = ev
			} else {
				q.head = ev
			}
			return
		}
		ev.ticks -= cur.ticks
		cur = cur.next
	}

	ev.prev = q.tail
	q.tail.next = ev
	q.tail = ev
}

// Cancel removes the first pending entry whose arg matches, if any.
func (q *Queue) Cancel(arg int) {
	cur := q.head
	for cur != nil {
		if cur.arg != arg {
			cur = cur.next
			continue
		}

		if cur.next != nil {
			cur.next.ticks += cur.ticks
			cur.next.prev = cur.prev
		} else {
			q.tail = cur.prev
		}

		if cur.prev != nil {
			cur.prev.next = cur.next
		} else {
			q.head = cur.next
		}
		return
	}
}

// Advance moves simulation time forward by ticks, firing every entry whose
// remaining time reaches zero or below, in order.
func (q *Queue) Advance(ticks int) {
	cur := q.head
	if cur == nil {
		return
	}
	cur.ticks -= ticks
	for cur != nil && cur.ticks <= 0 {
		cur.cb(cur.arg)
		if cur.next != nil {
			// Carry any overshoot into the next entry's relative delay.
			cur.next.ticks += cur.ticks
		}
		q.head = cur.next
		cur = q.head
		if cur != nil {
			cur.prev = nil
		} else {
			q.tail = nil
		}
	}
}

// Pending reports whether any delay is still queued.
func (q *Queue) Pending() bool {
	return q.head != nil
}
