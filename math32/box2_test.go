// Copyright (c) 2026, The DragKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBox2(t *testing.T) {
	b := B2(0, 0, 100, 50)
	assert.Equal(t, Vec2(100, 50), b.Size())
	assert.Equal(t, Vec2(50, 25), b.Center())
	assert.False(t, b.IsEmpty())

	e := B2Empty()
	assert.True(t, e.IsEmpty())
	e.ExpandByPoint(Vec2(10, 20))
	assert.Equal(t, B2(10, 20, 10, 20), e)

	assert.Equal(t, B2(0, 0, 100, 50), B2FromRect(image.Rect(0, 0, 100, 50)))
	assert.Equal(t, image.Rect(0, 0, 100, 50), b.ToRect())
}

func TestBox2Canon(t *testing.T) {
	b := B2(100, 50, 0, 0)
	assert.True(t, b.IsEmpty())
	assert.Equal(t, B2(0, 0, 100, 50), b.Canon())
}

func TestBox2Contains(t *testing.T) {
	b := B2(0, 0, 100, 100)
	assert.True(t, b.ContainsPoint(Vec2(50, 50)))
	assert.True(t, b.ContainsPoint(Vec2(100, 100))) // inclusive
	assert.False(t, b.ContainsPoint(Vec2(101, 50)))

	assert.True(t, b.ContainsBox(B2(10, 10, 90, 90)))
	assert.False(t, b.ContainsBox(B2(10, 10, 110, 90)))
	assert.True(t, b.IntersectsBox(B2(90, 90, 110, 110)))
	assert.False(t, b.IntersectsBox(B2(101, 101, 110, 110)))
}

func TestBox2Ops(t *testing.T) {
	b := B2(0, 0, 100, 100)
	assert.Equal(t, Vec2(100, 80), b.ClampPoint(Vec2(150, 80)))
	assert.Equal(t, B2(50, 50, 100, 100), b.Intersect(B2(50, 50, 150, 150)))
	assert.Equal(t, B2(0, 0, 150, 150), b.Union(B2(50, 50, 150, 150)))
	assert.Equal(t, B2(10, -10, 110, 90), b.Translate(Vec2(10, -10)))
}

func TestScalarHelpers(t *testing.T) {
	assert.Equal(t, float32(5), Clamp(10, 0, 5))
	assert.Equal(t, float32(0), Clamp(-10, 0, 5))
	assert.Equal(t, float32(3), Clamp(3, 0, 5))
	// inverted interval pins to the first bound
	assert.Equal(t, float32(10), Clamp(5, 10, 0))

	assert.Equal(t, float32(20), RoundToMultiple(24, 10))
	assert.Equal(t, float32(30), RoundToMultiple(26, 10))
	assert.Equal(t, float32(30), RoundToMultiple(25, 10)) // half away from zero
	assert.Equal(t, float32(-30), RoundToMultiple(-25, 10))
	assert.Equal(t, float32(24), RoundToMultiple(24, 0))
}
