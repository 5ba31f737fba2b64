// Copyright (c) 2026, The DragKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dom

import (
	"github.com/dragkit/dragkit/math32"
	"golang.org/x/net/html"
)

// Geometry reports element layout to the drag engine. Hosts implement
// it against their layout or rendering system. Boxes are reported at
// the element's current position, including any applied translation,
// the way DOM getBoundingClientRect does.
type Geometry interface {
	// BoundingBox returns the border box of the given node in document
	// coordinates. The second return value is false when the node has
	// no box, such as before layout.
	BoundingBox(n *html.Node) (math32.Box2, bool)

	// ViewportSize returns the size of the viewport containing the
	// document, used to resolve inset-based bounds.
	ViewportSize() math32.Vector2
}

// StaticGeometry is a [Geometry] backed by an explicit box per node.
// It is useful for tests and for hosts whose layout is computed
// externally.
type StaticGeometry struct {
	// Boxes are the known element boxes.
	Boxes map[*html.Node]math32.Box2

	// Viewport is the viewport size.
	Viewport math32.Vector2
}

// NewStaticGeometry returns a new [StaticGeometry] with the given
// viewport size.
func NewStaticGeometry(viewport math32.Vector2) *StaticGeometry {
	return &StaticGeometry{
		Boxes:    map[*html.Node]math32.Box2{},
		Viewport: viewport,
	}
}

// SetBox sets the box for the given node.
func (g *StaticGeometry) SetBox(n *html.Node, box math32.Box2) *StaticGeometry {
	g.Boxes[n] = box
	return g
}

func (g *StaticGeometry) BoundingBox(n *html.Node) (math32.Box2, bool) {
	box, ok := g.Boxes[n]
	return box, ok
}

func (g *StaticGeometry) ViewportSize() math32.Vector2 {
	return g.Viewport
}
