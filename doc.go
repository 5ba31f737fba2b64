// Copyright (c) 2026, The DragKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dragkit attaches pointer-driven, constrained movement
// behavior to nodes of an HTML document tree. A [Draggable] converts
// the pointer events a host feeds it into a constrained translation
// offset, honoring axis locks, rectangular bounds, grid snapping,
// handle and cancel targets, and multitouch suppression, and renders
// the offset by writing the node's style attribute and toggling state
// classes. It computes numbers and strings only; event delivery,
// layout geometry, and painting belong to the host, behind
// [github.com/dragkit/dragkit/dom.Geometry] and the
// [github.com/dragkit/dragkit/events] types.
//
// Minimal use:
//
//	doc, _ := dom.ParseString(page)
//	box, _ := dom.Query(doc, "#box")
//	geom := layoutGeometry() // host's dom.Geometry
//
//	d := dragkit.New(box, geom, nil)
//	d.OnDrag = func(e *events.Drag) {
//		fmt.Println("moved to", e.Offset)
//	}
//
//	d.HandleEvent(events.NewPointer(events.PointerDown, math32.Vec2(100, 100), box))
//	d.HandleEvent(events.NewPointerMove(math32.Vec2(150, 130), math32.Vec2(100, 100), box))
//	d.HandleEvent(events.NewPointer(events.PointerUp, math32.Vec2(150, 130), box))
//
// After this sequence the box node carries
// style="transform: translate3d(50px, 30px, 0);" and the
// "dragkit-dragged" class.
package dragkit
