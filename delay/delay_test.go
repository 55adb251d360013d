/*
 * udp4 - Delay queue test cases.
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

package delay

import "testing"

func TestScheduleZeroTicksFiresImmediately(t *testing.T) {
	fired := false
	q := &Queue{}
	q.Schedule(func(arg int) { fired = true }, 0, 1)
	if !fired {
		t.Fatal("expected zero-tick schedule to fire immediately")
	}
	if q.Pending() {
		t.Fatal("zero-tick schedule should never enter the queue")
	}
}

func TestAdvanceFiresInOrder(t *testing.T) {
	var order []int
	q := &Queue{}
	q.Schedule(func(arg int) { order = append(order, arg) }, 5, 1)
	q.Schedule(func(arg int) { order = append(order, arg) }, 2, 2)
	q.Schedule(func(arg int) { order = append(order, arg) }, 8, 3)

	q.Advance(2)
	if len(order) != 1 || order[0] != 2 {
		t.Fatalf("after 2 ticks want [2], got %v", order)
	}

	q.Advance(3)
	if len(order) != 2 || order[1] != 1 {
		t.Fatalf("after 5 ticks want [2 1], got %v", order)
	}

	q.Advance(3)
	if len(order) != 3 || order[2] != 3 {
		t.Fatalf("after 8 ticks want [2 1 3], got %v", order)
	}

	if q.Pending() {
		t.Fatal("queue should be empty after all entries fired")
	}
}

func TestCancelRemovesPendingEntry(t *testing.T) {
	var fired []int
	q := &Queue{}
	q.Schedule(func(arg int) { fired = append(fired, arg) }, 3, 1)
	q.Schedule(func(arg int) { fired = append(fired, arg) }, 5, 2)

	q.Cancel(1)
	q.Advance(10)

	if len(fired) != 1 || fired[0] != 2 {
		t.Fatalf("want only arg 2 to fire, got %v", fired)
	}
}

func TestCancelOfLastEntryGivesTimeToNothing(t *testing.T) {
	q := &Queue{}
	q.Schedule(func(arg int) {}, 3, 1)
	q.Cancel(1)
	if q.Pending() {
		t.Fatal("queue should be empty after cancelling its only entry")
	}
}

func TestAdvanceWithEmptyQueueIsNoop(t *testing.T) {
	q := &Queue{}
	q.Advance(100) // must not panic
	if q.Pending() {
		t.Fatal("advancing an empty queue must not create entries")
	}
}
