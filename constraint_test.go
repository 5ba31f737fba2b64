// Copyright (c) 2026, The DragKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dragkit

import (
	"testing"

	"github.com/dragkit/dragkit/math32"
	"github.com/stretchr/testify/assert"
)

func TestSnapOffset(t *testing.T) {
	grid := math32.Vec2(10, 10)
	assert.Equal(t, math32.Vec2(20, 30), snapOffset(grid, math32.Vec2(24, 26)))
	assert.Equal(t, math32.Vec2(30, -30), snapOffset(grid, math32.Vec2(25, -25)))
	assert.Equal(t, math32.Vec2(0, 0), snapOffset(grid, math32.Vec2(4.9, -4.9)))
	assert.Equal(t, math32.Vec2(45, 30), snapOffset(math32.Vec2(15, 30), math32.Vec2(41, 26)))
}

func TestClampOffset(t *testing.T) {
	rect := math32.B2(0, 0, 100, 100)
	origin := math32.B2(0, 0, 20, 20)
	assert.Equal(t, math32.Vec2(80, 5), clampOffset(rect, origin, math32.Vec2(200, 5)))
	assert.Equal(t, math32.Vec2(0, 0), clampOffset(rect, origin, math32.Vec2(-50, -1)))
	assert.Equal(t, math32.Vec2(80, 80), clampOffset(rect, origin, math32.Vec2(80, 80)))

	// an element offset from the document origin
	origin = math32.B2(40, 40, 60, 60)
	assert.Equal(t, math32.Vec2(-40, 40), clampOffset(rect, origin, math32.Vec2(-90, 90)))
}

func TestClampOffsetOverconstrained(t *testing.T) {
	// the rectangle cannot contain the element; the left/top edge wins
	rect := math32.B2(0, 0, 10, 10)
	origin := math32.B2(0, 0, 20, 20)
	assert.Equal(t, math32.Vec2(0, 0), clampOffset(rect, origin, math32.Vec2(50, -50)))
}

func TestConstrainOrder(t *testing.T) {
	grid := math32.Vec2(30, 30)
	rect := math32.B2(0, 0, 100, 100)
	s := &session{
		cfg:    Options{},
		origin: math32.B2(0, 0, 20, 20),
		grid:   &grid,
	}
	// snapping 95 gives 90, past the 80 limit; clamping runs last
	assert.Equal(t, math32.Vec2(80, 0), s.constrain(math32.Vec2(95, 0), &rect))
}

func TestConstrainAxisBeforeGrid(t *testing.T) {
	grid := math32.Vec2(10, 10)
	s := &session{
		cfg:  Options{Axis: AxisX},
		grid: &grid,
	}
	// y is zeroed before snapping can see it
	assert.Equal(t, math32.Vec2(50, 0), s.constrain(math32.Vec2(46, 97), nil))
}

func TestConstrainBaseline(t *testing.T) {
	s := &session{
		cfg:  Options{Axis: AxisY},
		base: math32.Vec2(12, 34),
	}
	// the frozen axis keeps the baseline rather than resetting it
	assert.Equal(t, math32.Vec2(12, 44), s.constrain(math32.Vec2(100, 10), nil))
}

func TestAxisProject(t *testing.T) {
	delta := math32.Vec2(3, 4)
	assert.Equal(t, math32.Vec2(3, 4), AxisBoth.project(delta))
	assert.Equal(t, math32.Vec2(3, 0), AxisX.project(delta))
	assert.Equal(t, math32.Vec2(0, 4), AxisY.project(delta))
	assert.Equal(t, math32.Vec2(0, 0), AxisNone.project(delta))
}
