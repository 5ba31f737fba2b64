// Copyright (c) 2026, The DragKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"

	"github.com/dragkit/dragkit/math32"
	"golang.org/x/net/html"
)

// Drag is the event the drag engine sends to listeners for
// [DragStart], [DragMove], and [DragEnd]. In addition to the pointer
// positions in [Base], it carries the constrained translation offset
// and the nodes involved in the session.
type Drag struct {
	Base

	// Offset is the total constrained translation of the root node,
	// relative to its untranslated position.
	Offset math32.Vector2

	// Root is the node being dragged.
	Root *html.Node

	// Current is the node the initiating PointerDown originated on.
	// It is the Root when the host does not do hit testing.
	Current *html.Node
}

// NewDrag returns a new [Drag] event of the given type with the given
// constrained offset and session nodes.
func NewDrag(typ Types, offset math32.Vector2, root, current *html.Node) *Drag {
	ev := &Drag{}
	ev.Typ = typ
	ev.SetUnique()
	ev.Offset = offset
	ev.Root = root
	ev.Current = current
	if current == nil {
		ev.Current = root
	}
	return ev
}

// OffsetX returns the horizontal component of the constrained offset.
func (ev *Drag) OffsetX() float32 {
	return ev.Offset.X
}

// OffsetY returns the vertical component of the constrained offset.
func (ev *Drag) OffsetY() float32 {
	return ev.Offset.Y
}

func (ev *Drag) String() string {
	return fmt.Sprintf("%v{Offset: %v, Pos: %v, Time: %v}", ev.Type(), ev.Offset, ev.Where, ev.Time().Format("04:05"))
}
