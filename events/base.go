// Copyright (c) 2026, The DragKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"
	"time"

	"github.com/dragkit/dragkit/math32"
	"golang.org/x/net/html"
)

// Event is the interface for pointer and drag events.
// Specific event types embed [Base], which implements most of it.
type Event interface {
	fmt.Stringer

	// Type returns the type of the event.
	Type() Types

	// AsBase returns the event as a [Base] event, for direct field access.
	AsBase() *Base

	// Init sets the time of the event to now, if it is not already set.
	Init()

	// Pos returns the current pointer position in document coordinates.
	Pos() math32.Vector2

	// StartPos returns the pointer position at the start of the
	// current pointer sequence (where the contact first went down).
	StartPos() math32.Vector2

	// PrevPos returns the pointer position from the previous event
	// in the sequence.
	PrevPos() math32.Vector2

	// StartDelta returns Pos() minus StartPos().
	StartDelta() math32.Vector2

	// PrevDelta returns Pos() minus PrevPos().
	PrevDelta() math32.Vector2

	// Target returns the document node the event originated on,
	// which may be nil if the host does not do hit testing.
	Target() *html.Node

	// Points returns the number of simultaneous pointer contacts
	// active when the event was generated, including this one.
	// It is always at least 1.
	Points() int

	// PointerID returns the host-assigned identifier of the pointer
	// that produced this event.
	PointerID() int

	// Time returns the time when the event was generated.
	Time() time.Time

	// IsUnique returns whether this event is always delivered,
	// as opposed to being compressed in a [Queue].
	IsUnique() bool

	// IsHandled returns whether the event has been processed in a way
	// that stops further handlers from running.
	IsHandled() bool

	// SetHandled marks the event as handled, stopping further handlers.
	SetHandled()
}

// Base is the base event type, which all other event types embed.
// It carries the common position, target, and handling state.
type Base struct {
	// Typ is the type of the event.
	Typ Types

	// GenTime is when the event was generated.
	GenTime time.Time

	// Where is the pointer position in document coordinates.
	Where math32.Vector2

	// Start is the pointer position at the start of the current
	// pointer sequence. The drag engine stamps this on PointerDown
	// and carries it through the session.
	Start math32.Vector2

	// Prev is the pointer position from the previous event in the
	// sequence. It is carried over when events are compressed.
	Prev math32.Vector2

	// Node is the document node the event originated on. It may be nil
	// when the host does not do hit testing, in which case target
	// filtering falls back to the root node.
	Node *html.Node

	// Contacts is the number of simultaneous pointer contacts active
	// when the event was generated, including this one.
	// Zero is treated as one.
	Contacts int

	// Pointer is the host-assigned identifier of the pointer that
	// produced this event. Mouse hosts can leave it zero.
	Pointer int

	// unique is whether this event is always delivered,
	// as opposed to being compressed in a [Queue].
	unique bool

	// handled is whether the event has been processed in a way that
	// stops further handlers from running.
	handled bool
}

func (ev *Base) Type() Types {
	return ev.Typ
}

func (ev *Base) AsBase() *Base {
	return ev
}

func (ev *Base) Init() {
	if ev.GenTime.IsZero() {
		ev.GenTime = time.Now()
	}
}

func (ev *Base) Pos() math32.Vector2 {
	return ev.Where
}

func (ev *Base) StartPos() math32.Vector2 {
	return ev.Start
}

func (ev *Base) PrevPos() math32.Vector2 {
	return ev.Prev
}

func (ev *Base) StartDelta() math32.Vector2 {
	return ev.Where.Sub(ev.Start)
}

func (ev *Base) PrevDelta() math32.Vector2 {
	return ev.Where.Sub(ev.Prev)
}

func (ev *Base) Target() *html.Node {
	return ev.Node
}

func (ev *Base) Points() int {
	if ev.Contacts < 1 {
		return 1
	}
	return ev.Contacts
}

func (ev *Base) PointerID() int {
	return ev.Pointer
}

func (ev *Base) Time() time.Time {
	return ev.GenTime
}

func (ev *Base) IsUnique() bool {
	return ev.unique
}

// SetUnique marks the event as always delivered, exempt from compression.
func (ev *Base) SetUnique() {
	ev.unique = true
}

func (ev *Base) IsHandled() bool {
	return ev.handled
}

func (ev *Base) SetHandled() {
	ev.handled = true
}

// ClearHandled reverses the effect of [Base.SetHandled],
// for events that are recycled across dispatch passes.
func (ev *Base) ClearHandled() {
	ev.handled = false
}

func (ev *Base) String() string {
	return fmt.Sprintf("%v{Pos: %v, Time: %v}", ev.Type(), ev.Where, ev.Time().Format("04:05"))
}
