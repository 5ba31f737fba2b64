// Copyright (c) 2026, The DragKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dragkit

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dragkit/dragkit/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsProfile(t *testing.T) {
	fnm := filepath.Join(t.TempDir(), "drag.toml")

	opts := NewOptions()
	opts.Axis = AxisX
	grid := math32.Vec2(10, 20)
	opts.Grid = &grid
	opts.IgnoreMultitouch = true
	opts.LegacyTranslate = false
	opts.Handle = SelectorTarget(".grip")
	opts.Cancel = SelectorTarget(".no-drag")
	opts.DefaultPosition = math32.Vec2(5, 6)
	opts.RecomputeBounds = RecomputeBounds{Drag: true}
	require.NoError(t, SaveOptions(opts, fnm))

	b, err := os.ReadFile(fnm)
	require.NoError(t, err)
	assert.Contains(t, string(b), `Axis = 'x'`)

	got, err := OpenOptions(fnm)
	require.NoError(t, err)
	assert.Equal(t, AxisX, got.Axis)
	require.NotNil(t, got.Grid)
	assert.Equal(t, math32.Vec2(10, 20), *got.Grid)
	assert.True(t, got.IgnoreMultitouch)
	assert.False(t, got.LegacyTranslate)
	assert.True(t, got.GPUAcceleration)
	require.NotNil(t, got.Handle)
	assert.Equal(t, ".grip", got.Handle.Selector)
	require.NotNil(t, got.Cancel)
	assert.Equal(t, ".no-drag", got.Cancel.Selector)
	assert.Equal(t, math32.Vec2(5, 6), got.DefaultPosition)
	assert.True(t, got.RecomputeBounds.Drag)
	assert.False(t, got.RecomputeBounds.DragStart)
	assert.Equal(t, "dragkit", got.DefaultClass)
}

func TestOptionsProfileYAML(t *testing.T) {
	fnm := filepath.Join(t.TempDir(), "drag.yaml")

	opts := NewOptions()
	opts.Axis = AxisY
	grid := math32.Vec2(8, 8)
	opts.Grid = &grid
	opts.Handle = SelectorTarget(".grip")
	require.NoError(t, SaveOptions(opts, fnm))

	b, err := os.ReadFile(fnm)
	require.NoError(t, err)
	assert.Contains(t, string(b), "axis: y")

	got, err := OpenOptions(fnm)
	require.NoError(t, err)
	assert.Equal(t, AxisY, got.Axis)
	require.NotNil(t, got.Grid)
	assert.Equal(t, math32.Vec2(8, 8), *got.Grid)
	require.NotNil(t, got.Handle)
	assert.Equal(t, ".grip", got.Handle.Selector)
	assert.True(t, got.LegacyTranslate)
}

func TestOptionsProfileJSON(t *testing.T) {
	fnm := filepath.Join(t.TempDir(), "drag.json")

	opts := NewOptions()
	opts.Axis = AxisX
	opts.IgnoreMultitouch = true
	opts.DefaultPosition = math32.Vec2(3, 4)
	require.NoError(t, SaveOptions(opts, fnm))

	b, err := os.ReadFile(fnm)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"Axis": "x"`)

	got, err := OpenOptions(fnm)
	require.NoError(t, err)
	assert.Equal(t, AxisX, got.Axis)
	assert.True(t, got.IgnoreMultitouch)
	assert.Equal(t, math32.Vec2(3, 4), got.DefaultPosition)
	assert.Equal(t, DefaultClassDragging, got.DefaultClassDragging)
}

func TestOpenOptionsMissing(t *testing.T) {
	_, err := OpenOptions(filepath.Join(t.TempDir(), "none.toml"))
	assert.Error(t, err)
}

func TestWatchOptions(t *testing.T) {
	dir := t.TempDir()
	fnm := filepath.Join(dir, "drag.toml")

	opts := NewOptions()
	opts.Axis = AxisY
	require.NoError(t, SaveOptions(opts, fnm))

	got := make(chan *Options, 8)
	ow, err := WatchOptions(fnm, func(o *Options) {
		got <- o
	})
	require.NoError(t, err)
	defer ow.Close()

	// save to a temp name and rename into place, so the watcher sees
	// one create with complete content
	opts.Axis = AxisX
	tmp := filepath.Join(dir, "drag.toml.next")
	require.NoError(t, SaveOptions(opts, tmp))
	require.NoError(t, os.Rename(tmp, fnm))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case o := <-got:
			if o.Axis == AxisX {
				return
			}
		case <-deadline:
			t.Fatal("watcher did not reload updated options")
		}
	}
}

func TestAxisText(t *testing.T) {
	b, err := AxisY.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "y", string(b))

	var a Axis
	require.NoError(t, a.UnmarshalText([]byte("none")))
	assert.Equal(t, AxisNone, a)
	assert.ErrorIs(t, a.UnmarshalText([]byte("diagonal")), ErrConfiguration)
}
