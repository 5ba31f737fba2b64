// Copyright (c) 2026, The DragKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package states defines the drag-relevant states of elements,
// which are used for CSS-class based styling.
package states

import "strings"

// States are drag states of elements that are relevant for styling based on
// [CSS Pseudo-classes](https://developer.mozilla.org/en-US/docs/Web/CSS/Pseudo-classes).
// They are bit flags: a state value holds any combination of them.
type States int64

const (
	// Disabled elements cannot be interacted with, but do display.
	Disabled States = iota

	// Dragging elements are currently being dragged: a pointer went down on
	// them and has not come back up.
	Dragging

	// Dragged elements have been moved by at least one completed drag.
	// Once set, it persists for the life of the element.
	Dragged
)

var stateNames = map[States]string{
	Disabled: "disabled",
	Dragging: "dragging",
	Dragged:  "dragged",
}

// HasFlag returns whether these states have the given flag set.
func (st States) HasFlag(f States) bool {
	return st&(1<<uint32(f)) != 0
}

// SetFlag sets the value of the given flags in these states to the given value.
func (st *States) SetFlag(on bool, f ...States) {
	for _, flag := range f {
		if on {
			*st |= 1 << uint32(flag)
		} else {
			*st &^= 1 << uint32(flag)
		}
	}
}

func (st States) String() string {
	var set []string
	for _, f := range []States{Disabled, Dragging, Dragged} {
		if st.HasFlag(f) {
			set = append(set, stateNames[f])
		}
	}
	return strings.Join(set, "|")
}

// Is is a shortcut for [States.HasFlag].
func (st States) Is(f States) bool {
	return st.HasFlag(f)
}
