// Copyright (c) 2026, The DragKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dragkit

import (
	"fmt"

	"github.com/dragkit/dragkit/dom"
	"github.com/dragkit/dragkit/math32"
	"golang.org/x/net/html"
)

// Bounds is a drag boundary descriptor. It is resolved to a concrete
// rectangle at the session phases given by [RecomputeBounds]; between
// resolutions the rectangle is fixed, regardless of layout changes.
type Bounds interface {
	// BoundingRect resolves the descriptor to a rectangle in document
	// coordinates, for the element attached at the given root.
	BoundingRect(geom dom.Geometry, root *html.Node) (math32.Box2, error)
}

// NodeBounds bounds movement by the current box of a fixed node.
type NodeBounds struct {
	Node *html.Node
}

// BoundsOf returns a [Bounds] tracking the box of the given node.
func BoundsOf(n *html.Node) Bounds {
	return NodeBounds{Node: n}
}

func (b NodeBounds) BoundingRect(geom dom.Geometry, root *html.Node) (math32.Box2, error) {
	if b.Node == nil {
		return math32.Box2{}, fmt.Errorf("%w: nil bounds node", ErrConfiguration)
	}
	box, ok := geom.BoundingBox(b.Node)
	if !ok {
		return math32.Box2{}, fmt.Errorf("%w: bounds node has no box", ErrResolution)
	}
	return box, nil
}

// ParentBounds bounds movement by the box of the element's nearest
// element ancestor.
type ParentBounds struct{}

// BoundsParent bounds movement by the element's parent.
var BoundsParent Bounds = ParentBounds{}

func (ParentBounds) BoundingRect(geom dom.Geometry, root *html.Node) (math32.Box2, error) {
	p := dom.ParentElement(root)
	if p == nil {
		return math32.Box2{}, fmt.Errorf("%w: element has no parent element", ErrResolution)
	}
	box, ok := geom.BoundingBox(p)
	if !ok {
		return math32.Box2{}, fmt.Errorf("%w: parent has no box", ErrResolution)
	}
	return box, nil
}

// BodyBounds bounds movement by the box of the document body.
type BodyBounds struct{}

// BoundsBody bounds movement by the document body.
var BoundsBody Bounds = BodyBounds{}

func (BodyBounds) BoundingRect(geom dom.Geometry, root *html.Node) (math32.Box2, error) {
	body := dom.Body(root)
	if body == nil {
		return math32.Box2{}, fmt.Errorf("%w: document has no body", ErrResolution)
	}
	box, ok := geom.BoundingBox(body)
	if !ok {
		return math32.Box2{}, fmt.Errorf("%w: body has no box", ErrResolution)
	}
	return box, nil
}

// SelectorBounds bounds movement by the box of the first node matching
// a CSS selector, resolved against the element's document.
type SelectorBounds string

// BoundsSelector returns a [Bounds] resolving the given CSS selector.
func BoundsSelector(sel string) Bounds {
	return SelectorBounds(sel)
}

func (b SelectorBounds) BoundingRect(geom dom.Geometry, root *html.Node) (math32.Box2, error) {
	match, err := dom.Query(dom.Root(root), string(b))
	if err != nil {
		return math32.Box2{}, fmt.Errorf("%w: bounds selector %q: %v", ErrConfiguration, string(b), err)
	}
	if match == nil {
		return math32.Box2{}, fmt.Errorf("%w: bounds selector %q matched nothing", ErrResolution, string(b))
	}
	box, ok := geom.BoundingBox(match)
	if !ok {
		return math32.Box2{}, fmt.Errorf("%w: bounds selector %q target has no box", ErrResolution, string(b))
	}
	return box, nil
}

// Coords bounds movement by insets from the viewport edges: Left and
// Top are distances from the left and top edges, Right and Bottom from
// the right and bottom edges. Zero values mean the edge itself.
type Coords struct {
	Top    float32
	Left   float32
	Right  float32
	Bottom float32
}

func (c Coords) BoundingRect(geom dom.Geometry, root *html.Node) (math32.Box2, error) {
	vp := geom.ViewportSize()
	box := math32.B2(c.Left, c.Top, vp.X-c.Right, vp.Y-c.Bottom)
	if box.Min.X > box.Max.X || box.Min.Y > box.Max.Y {
		return math32.Box2{}, fmt.Errorf("%w: bounds coords invert the rectangle: %v", ErrConfiguration, box)
	}
	return box, nil
}

// resolveBounds re-resolves the rectangle for the session's bounds
// descriptor, keeping the previous one on failure.
func (d *Draggable) resolveBounds(s *session) {
	if s.cfg.Bounds == nil {
		return
	}
	box, err := s.cfg.Bounds.BoundingRect(d.geom, d.root)
	if err != nil {
		d.fail(err)
		return
	}
	d.rect = &box
}
