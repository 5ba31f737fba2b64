// Copyright (c) 2026, The DragKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"log/slog"
	"sync"
)

// TraceEventCompression can be set to true to see when events
// are being compressed to eliminate laggy behavior.
var TraceEventCompression = false

// Queue is a FIFO event queue with compression of non-unique events.
// When the last queued (and not yet processed) event has the same type
// and pointer id as an incoming non-unique event, the incoming event
// replaces it, carrying the Prev position over so the movement span is
// preserved. Unique events are always appended, so a terminal PointerUp
// can never displace the move leading up to it.
// The zero value is ready to use, and it is safe for concurrent use.
type Queue struct {
	mu     sync.Mutex
	events []Event
}

// Send adds an event to the end of the queue, compressing it into the
// last queued event when eligible.
func (q *Queue) Send(ev Event) {
	ev.Init()
	q.mu.Lock()
	defer q.mu.Unlock()
	n := len(q.events)
	if !ev.IsUnique() && n > 0 {
		last := q.events[n-1]
		if last.Type() == ev.Type() && last.PointerID() == ev.PointerID() {
			ev.AsBase().Prev = last.PrevPos()
			q.events[n-1] = ev
			if TraceEventCompression {
				slog.Debug("events.Queue compressed", "event", ev)
			}
			return
		}
	}
	q.events = append(q.events, ev)
}

// NextEvent removes and returns the next event in the queue.
// It returns nil if the queue is empty.
func (q *Queue) NextEvent() Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	n := len(q.events)
	if n == 0 {
		return nil
	}
	ev := q.events[0]
	copy(q.events, q.events[1:])
	q.events[n-1] = nil
	q.events = q.events[:n-1]
	return ev
}

// Drain removes and returns all events currently in the queue, in order.
func (q *Queue) Drain() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	evs := q.events
	q.events = nil
	return evs
}

// Len returns the number of events waiting in the queue.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}
