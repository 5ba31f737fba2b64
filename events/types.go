// Copyright (c) 2026, The DragKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the pointer and drag event types consumed and
// produced by the drag engine, along with listener registration and an
// optional compressing queue for hosts that batch event delivery.
package events

// Types determines the type of event. The type includes both the
// source / nature of the event and the "action" type of the event
// (e.g., PointerDown and PointerUp are separate event types). The standard
// [JavaScript Pointer Events](https://developer.mozilla.org/en-US/docs/Web/API/Pointer_events)
// provide the basis for the raw event type names.
// Unless otherwise noted, all events are marked as Unique,
// meaning they are always delivered. Non-Unique events are subject
// to compression in [Queue], where if the last event added (and not yet
// processed and therefore removed from the queue) is of the same type
// then it is replaced with the new one, instead of adding.
type Types int32

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// PointerDown happens when a pointer contact begins: a mouse button is
	// pressed or a touch point is placed. Points() reports how many
	// simultaneous contacts are active, for multitouch suppression.
	PointerDown

	// PointerMove is sent whenever the pointer moves, with or without a
	// contact down. These can be numerous and hosts may deliver them
	// through a [Queue] for compression.
	// Not unique, and Prev position is updated during compression.
	PointerMove

	// PointerUp happens when a pointer contact ends normally.
	PointerUp

	// PointerCancel happens when the host interrupts a pointer sequence,
	// such as a system gesture taking over the pointer. It is handled
	// exactly like PointerUp.
	PointerCancel

	// DragStart is sent by the drag engine when a qualifying PointerDown
	// has started a drag session. The offset is the total translation
	// carried over from any prior sessions.
	DragStart

	// DragMove is sent by the drag engine for each accepted pointer move
	// during a drag session, carrying the constrained offset.
	DragMove

	// DragEnd is sent by the drag engine when a drag session finishes,
	// on PointerUp or PointerCancel, carrying the final offset.
	DragEnd

	// TypesN is the number of event types.
	TypesN
)

var typeNames = [TypesN]string{"UnknownType", "PointerDown", "PointerMove",
	"PointerUp", "PointerCancel", "DragStart", "DragMove", "DragEnd"}

func (tp Types) String() string {
	if tp < 0 || tp >= TypesN {
		return "UnknownType"
	}
	return typeNames[tp]
}

// IsUnique returns whether events of this type are always delivered
// individually, as opposed to being compressed in a [Queue].
func (tp Types) IsUnique() bool {
	return tp != PointerMove
}
