// Copyright (c) 2026, The DragKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dragkit

import (
	"fmt"
	"strconv"

	"github.com/dragkit/dragkit/dom"
	"github.com/dragkit/dragkit/math32"
	"golang.org/x/net/html"
)

// TransformInput is the value an [Options.Transform] function receives:
// the constrained total offset and the node being rendered.
type TransformInput struct {
	OffsetX  float32
	OffsetY  float32
	RootNode *html.Node
}

// TransformResult tells the engine what an [Options.Transform] function
// did. Construct it with [Replace] or [Handled].
type TransformResult struct {
	replace string
	handled bool
}

// Replace returns a [TransformResult] assigning the given string
// verbatim to the element's transform style property.
func Replace(transform string) TransformResult {
	return TransformResult{replace: transform}
}

// Handled returns a [TransformResult] indicating the function mutated
// the element itself and the engine should do nothing further.
func Handled() TransformResult {
	return TransformResult{handled: true}
}

// applyTransform renders a total offset onto the root node: through the
// caller transform function when one is configured, or as a translate
// transform string, or as the left/top property pair. It is stateless
// and idempotent over the offset.
func (d *Draggable) applyTransform(cfg *Options, off math32.Vector2) {
	if cfg.Transform != nil {
		res, ok := d.callTransform(cfg, off)
		if !ok || res.handled {
			return
		}
		dom.SetStyle(d.root, "transform", res.replace)
		return
	}
	if !cfg.LegacyTranslate {
		dom.SetStyle(d.root, "left", px(off.X))
		dom.SetStyle(d.root, "top", px(off.Y))
		return
	}
	if cfg.GPUAcceleration {
		dom.SetStyle(d.root, "transform", fmt.Sprintf("translate3d(%s, %s, 0)", px(off.X), px(off.Y)))
	} else {
		dom.SetStyle(d.root, "transform", fmt.Sprintf("translate(%s, %s)", px(off.X), px(off.Y)))
	}
}

// callTransform invokes the caller transform function, recovering a
// panic into [ErrCallback] with ok false.
func (d *Draggable) callTransform(cfg *Options, off math32.Vector2) (res TransformResult, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			d.fail(fmt.Errorf("%w: transform: %v", ErrCallback, r))
		}
	}()
	return cfg.Transform(TransformInput{OffsetX: off.X, OffsetY: off.Y, RootNode: d.root}), true
}

// px formats a pixel length with trailing zeros trimmed.
func px(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32) + "px"
}
