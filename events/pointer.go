// Copyright (c) 2026, The DragKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"github.com/dragkit/dragkit/math32"
	"golang.org/x/net/html"
)

// Pointer is the raw pointer event that hosts feed into the drag engine,
// covering mouse, touch, and pen input uniformly.
type Pointer struct {
	Base
}

// NewPointer returns a new [Pointer] event of the given type at the given
// position, originating on the given node. The node may be nil when the
// host does not do hit testing.
func NewPointer(typ Types, where math32.Vector2, node *html.Node) *Pointer {
	ev := &Pointer{}
	ev.Typ = typ
	if typ.IsUnique() {
		ev.SetUnique()
	}
	ev.Where = where
	ev.Prev = where
	ev.Node = node
	return ev
}

// NewPointerMove returns a new [PointerMove] event going from the prev
// to the where position. It is not unique: a [Queue] may compress
// consecutive moves, carrying the Prev position over.
func NewPointerMove(where, prev math32.Vector2, node *html.Node) *Pointer {
	ev := &Pointer{}
	ev.Typ = PointerMove
	// not unique
	ev.Where = where
	ev.Prev = prev
	ev.Node = node
	return ev
}

// NewTouch returns a new [Pointer] event for a touch contact, with the
// host-assigned pointer id and the number of simultaneous contacts.
func NewTouch(typ Types, where math32.Vector2, node *html.Node, id, contacts int) *Pointer {
	ev := NewPointer(typ, where, node)
	ev.Pointer = id
	ev.Contacts = contacts
	return ev
}
