// Copyright (c) 2026, The DragKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dragkit

import (
	"github.com/dragkit/dragkit/math32"
)

// constrain turns a raw session delta into the new total offset:
// axis projection of the delta, then grid snapping of the total, then
// clamping of the total against rect. Snapping can push a clamped
// value back out of bounds by up to one grid cell, so clamping runs
// last. A nil rect leaves the offset unclamped.
func (s *session) constrain(delta math32.Vector2, rect *math32.Box2) math32.Vector2 {
	delta = s.cfg.Axis.project(delta)
	off := s.base.Add(delta)
	if s.grid != nil {
		off = snapOffset(*s.grid, off)
	}
	if rect != nil {
		off = clampOffset(*rect, s.origin, off)
	}
	return off
}

// snapOffset rounds each axis of a total offset to the nearest
// multiple of the grid cell, half away from zero.
func snapOffset(grid, off math32.Vector2) math32.Vector2 {
	return math32.Vec2(
		math32.RoundToMultiple(off.X, grid.X),
		math32.RoundToMultiple(off.Y, grid.Y))
}

// clampOffset clamps a total offset so that the element box, which
// sits at origin when untranslated, stays inside rect, inclusive.
// When rect cannot contain the box on an axis, the left or top edge
// wins.
func clampOffset(rect, origin math32.Box2, off math32.Vector2) math32.Vector2 {
	lo := rect.Min.Sub(origin.Min)
	hi := rect.Max.Sub(origin.Max)
	return math32.Vec2(
		math32.Clamp(off.X, lo.X, hi.X),
		math32.Clamp(off.Y, lo.Y, hi.Y))
}
