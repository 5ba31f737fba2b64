// Copyright (c) 2026, The DragKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dragkit

import (
	"fmt"

	"github.com/dragkit/dragkit/events"
	"github.com/dragkit/dragkit/math32"
	"golang.org/x/net/html"
)

// Axis restricts which components of pointer movement translate the
// element.
type Axis int32

const (
	// AxisBoth allows movement on both axes. It is the default.
	AxisBoth Axis = iota

	// AxisX allows horizontal movement only.
	AxisX

	// AxisY allows vertical movement only.
	AxisY

	// AxisNone freezes movement entirely.
	AxisNone
)

var axisNames = []string{"both", "x", "y", "none"}

func (a Axis) String() string {
	if a < 0 || int(a) >= len(axisNames) {
		return "both"
	}
	return axisNames[a]
}

// MarshalText implements [encoding.TextMarshaler].
func (a Axis) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (a *Axis) UnmarshalText(text []byte) error {
	s := string(text)
	for i, nm := range axisNames {
		if nm == s {
			*a = Axis(i)
			return nil
		}
	}
	return fmt.Errorf("%w: unknown axis %q", ErrConfiguration, s)
}

// MarshalYAML implements a YAML Marshaler for [Axis].
func (a Axis) MarshalYAML() (interface{}, error) {
	return a.String(), nil
}

// UnmarshalYAML implements a YAML Unmarshaler for [Axis].
func (a *Axis) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	return a.UnmarshalText([]byte(s))
}

// project zeroes the locked components of a movement delta.
func (a Axis) project(delta math32.Vector2) math32.Vector2 {
	switch a {
	case AxisX:
		delta.Y = 0
	case AxisY:
		delta.X = 0
	case AxisNone:
		delta = math32.Vector2{}
	}
	return delta
}

// RecomputeBounds controls at which session phases the bounds
// descriptor is re-resolved against current layout.
type RecomputeBounds struct {
	// DragStart re-resolves when a session starts. It is the default.
	DragStart bool

	// Drag re-resolves on every accepted pointer move, and the current
	// offset is re-clamped against the new rectangle.
	Drag bool

	// DragEnd re-resolves when a session ends, so the rectangle is
	// fresh for a following session that does not re-resolve at start.
	DragEnd bool
}

// Target selects the nodes that permit ([Options.Handle]) or forbid
// ([Options.Cancel]) drag initiation. A pointer-down matches when its
// origin node is a selected node or nested within one.
type Target struct {
	// Selector is a CSS selector resolved within the draggable element.
	Selector string

	// Nodes are explicit target nodes. When set, Selector is ignored.
	Nodes []*html.Node `toml:"-" yaml:"-" json:"-"`
}

// SelectorTarget returns a [Target] selecting nodes by CSS selector.
func SelectorTarget(sel string) *Target {
	return &Target{Selector: sel}
}

// NodeTarget returns a [Target] selecting the given nodes.
func NodeTarget(nodes ...*html.Node) *Target {
	return &Target{Nodes: nodes}
}

// Options configures a [Draggable]. [NewOptions] returns one with the
// defaults applied; a zero Options has everything off. The options are
// snapshot at each pointer-down, so mutations take effect on the next
// session, except Disabled and Position, which [Draggable.Update]
// applies immediately.
type Options struct {

	// Bounds keeps the element's box inside a resolved rectangle while
	// dragging. Nil means unconstrained. See [BoundsOf], [BoundsParent],
	// [BoundsBody], [BoundsSelector], and [Coords].
	Bounds Bounds `toml:"-" yaml:"-" json:"-"`

	// RecomputeBounds is the phase policy for re-resolving Bounds.
	// The default re-resolves at drag start only, fixing the rectangle
	// for the whole session.
	RecomputeBounds RecomputeBounds

	// Axis restricts movement to the given axis.
	Axis Axis

	// LegacyTranslate (default true) renders offsets through the
	// transform style property. When false, the left and top properties
	// are written instead, affecting layout.
	LegacyTranslate bool

	// GPUAcceleration (default true) uses the 3-D translate form,
	// promoting the element to its own compositing layer. Only
	// meaningful when LegacyTranslate is on.
	GPUAcceleration bool

	// Transform, when set, takes over rendering: it receives the
	// constrained offset and either returns a replacement transform
	// string or reports that it mutated the element itself.
	Transform func(in TransformInput) TransformResult `toml:"-" yaml:"-" json:"-"`

	// ApplyUserSelectHack (default true) suppresses text selection on
	// the document body while any element in the document is dragging,
	// via the [ClassSelectNone] body class.
	ApplyUserSelectHack bool

	// IgnoreMultitouch ignores pointer-downs carrying more than one
	// simultaneous contact point.
	IgnoreMultitouch bool

	// Disabled blocks pointer-driven interaction. External Position
	// updates still render. Applied immediately by [Draggable.Update];
	// disabling mid-drag cancels the session.
	Disabled bool

	// Grid snaps each axis of the total offset to multiples of the
	// given cell size. Nil disables snapping. Non-positive cells are a
	// configuration error and disable snapping for the session.
	Grid *math32.Vector2

	// Position, when non-nil, is the authoritative externally-owned
	// position. [Draggable.Update] renders it directly, bypassing the
	// constraint pipeline, whenever it differs from the last applied
	// offset. It works while Disabled.
	Position *math32.Vector2 `toml:"-" yaml:"-" json:"-"`

	// Cancel forbids drag initiation from within matching nodes.
	// It wins over Handle.
	Cancel *Target

	// Handle permits drag initiation only from within matching nodes.
	// Without it, any non-Cancel point on the element qualifies.
	Handle *Target

	// DefaultClass (default "dragkit") is applied to the element at
	// [New] and removed by [Draggable.Destroy].
	DefaultClass string

	// DefaultClassDragging (default "dragkit-dragging") is held on the
	// element while a session is active.
	DefaultClassDragging string

	// DefaultClassDragged (default "dragkit-dragged") is applied when
	// the first session with movement ends, and never auto-removed.
	DefaultClassDragged string

	// DefaultPosition seeds the first render, unless Position is set.
	DefaultPosition math32.Vector2

	// OnDragStart is called once when a session starts, with the offset
	// carried over from before the session.
	OnDragStart func(e *events.Drag) `toml:"-" yaml:"-" json:"-"`

	// OnDrag is called for every accepted pointer move during a
	// session, with the constrained offset.
	OnDrag func(e *events.Drag) `toml:"-" yaml:"-" json:"-"`

	// OnDragEnd is called once when a session ends, with the final
	// offset.
	OnDragEnd func(e *events.Drag) `toml:"-" yaml:"-" json:"-"`
}

// Defaults sets the default option values on top of the zero value.
func (o *Options) Defaults() {
	o.RecomputeBounds = RecomputeBounds{DragStart: true}
	o.LegacyTranslate = true
	o.GPUAcceleration = true
	o.ApplyUserSelectHack = true
	o.DefaultClass = DefaultClass
	o.DefaultClassDragging = DefaultClassDragging
	o.DefaultClassDragged = DefaultClassDragged
}

// NewOptions returns a new [Options] with the defaults applied.
func NewOptions() *Options {
	o := &Options{}
	o.Defaults()
	return o
}

// Default class names. Set the corresponding [Options] field to ""
// to not apply a class at all.
const (
	// DefaultClass marks the element as drag-enabled.
	DefaultClass = "dragkit"

	// DefaultClassDragging marks the element during an active session.
	DefaultClassDragging = "dragkit-dragging"

	// DefaultClassDragged marks an element that has completed at least
	// one session with movement.
	DefaultClassDragged = "dragkit-dragged"
)
