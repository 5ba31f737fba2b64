// Copyright (c) 2026, The DragKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dragkit

import (
	"testing"

	"github.com/dragkit/dragkit/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundingRects(t *testing.T) {
	f := newFixture(t, nil)

	box, err := BoundsOf(f.arena).BoundingRect(f.geom, f.box)
	require.NoError(t, err)
	assert.Equal(t, math32.B2(0, 0, 100, 100), box)

	box, err = BoundsParent.BoundingRect(f.geom, f.box)
	require.NoError(t, err)
	assert.Equal(t, math32.B2(0, 0, 100, 100), box)

	box, err = BoundsBody.BoundingRect(f.geom, f.box)
	require.NoError(t, err)
	assert.Equal(t, math32.B2(0, 0, 800, 600), box)

	box, err = BoundsSelector("#arena").BoundingRect(f.geom, f.box)
	require.NoError(t, err)
	assert.Equal(t, math32.B2(0, 0, 100, 100), box)

	box, err = Coords{Top: 10, Left: 20, Right: 30, Bottom: 40}.BoundingRect(f.geom, f.box)
	require.NoError(t, err)
	assert.Equal(t, math32.B2(20, 10, 770, 560), box)
}

func TestBoundingRectErrors(t *testing.T) {
	f := newFixture(t, nil)

	_, err := BoundsOf(nil).BoundingRect(f.geom, f.box)
	assert.ErrorIs(t, err, ErrConfiguration)

	_, err = BoundsOf(f.doc).BoundingRect(f.geom, f.box)
	assert.ErrorIs(t, err, ErrResolution)

	_, err = BoundsSelector(".nothing").BoundingRect(f.geom, f.box)
	assert.ErrorIs(t, err, ErrResolution)

	_, err = BoundsSelector("[").BoundingRect(f.geom, f.box)
	assert.ErrorIs(t, err, ErrConfiguration)

	_, err = Coords{Left: 500, Right: 700}.BoundingRect(f.geom, f.box)
	assert.ErrorIs(t, err, ErrConfiguration)

	_, err = BoundsParent.BoundingRect(f.geom, f.doc)
	assert.ErrorIs(t, err, ErrResolution)
}
