// Copyright (c) 2026, The DragKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/math/fixed"
)

func TestVector2(t *testing.T) {
	assert.Equal(t, Vector2{5, 10}, Vec2(5, 10))
	assert.Equal(t, Vector2{20, 20}, Vector2Scalar(20))
	assert.Equal(t, Vector2{15, -5}, Vector2FromPoint(image.Pt(15, -5)))
	assert.Equal(t, Vector2{8, 3}, Vector2FromFixed(fixed.P(8, 3)))

	v := Vector2{}
	v.Set(-1, 7)
	assert.Equal(t, Vector2{-1, 7}, v)

	v.SetScalar(8.12)
	assert.Equal(t, Vector2{8.12, 8.12}, v)

	v.SetZero()
	assert.True(t, v.IsZero())
}

func TestVector2Math(t *testing.T) {
	a := Vec2(3, 4)
	b := Vec2(1, -2)

	assert.Equal(t, Vec2(4, 2), a.Add(b))
	assert.Equal(t, Vec2(2, 6), a.Sub(b))
	assert.Equal(t, Vec2(3, -8), a.Mul(b))
	assert.Equal(t, Vec2(3, -2), a.Div(b))
	assert.Equal(t, Vec2(6, 8), a.MulScalar(2))
	assert.Equal(t, Vec2(1.5, 2), a.DivScalar(2))
	assert.Equal(t, Vector2{}, a.DivScalar(0))
	assert.Equal(t, Vec2(-3, -4), a.Negate())
	assert.Equal(t, Vec2(1, 2), b.Abs())
	assert.Equal(t, float32(5), a.Length())
	assert.Equal(t, float32(25), a.LengthSquared())

	assert.Equal(t, Vec2(1, -2), a.Min(b))
	assert.Equal(t, Vec2(3, 4), a.Max(b))

	c := Vec2(10, -10)
	c.Clamp(Vec2(0, 0), Vec2(5, 5))
	assert.Equal(t, Vec2(5, 0), c)
}

func TestVector2Round(t *testing.T) {
	v := Vec2(1.4, -1.6)
	assert.Equal(t, Vec2(1, -2), v.Round())
	assert.Equal(t, Vec2(1, -2), v.Floor())
	assert.Equal(t, Vec2(2, -1), v.Ceil())
	assert.Equal(t, image.Pt(1, -2), v.ToPointRound())
}

func TestVector2Fixed(t *testing.T) {
	v := Vec2(8, 3)
	assert.Equal(t, fixed.P(8, 3), v.ToFixed())
	assert.Equal(t, v, Vector2FromFixed(v.ToFixed()))
}
