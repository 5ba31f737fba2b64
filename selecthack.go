// Copyright (c) 2026, The DragKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dragkit

import (
	"sync"

	"github.com/dragkit/dragkit/dom"
	"golang.org/x/net/html"
)

// ClassSelectNone is the class held on the document body while any
// element in that document is dragging, for the host's stylesheet to
// map to user-select: none.
const ClassSelectNone = "dragkit-select-none"

// selectGuard reference-counts active drag sessions per document, so
// that with several elements mid-drag at once, the body class is added
// on the first session and removed only when the last one ends.
var selectGuard = &selectGuardState{active: map[*html.Node]int{}}

type selectGuardState struct {
	mu     sync.Mutex
	active map[*html.Node]int
}

// acquire registers an active session on the given document root,
// toggling the body class on the 0 to 1 transition.
func (sg *selectGuardState) acquire(root *html.Node) {
	if root == nil {
		return
	}
	sg.mu.Lock()
	defer sg.mu.Unlock()
	sg.active[root]++
	if sg.active[root] == 1 {
		if body := dom.Body(root); body != nil {
			dom.AddClass(body, ClassSelectNone)
		}
	}
}

// release unregisters a session, toggling the body class on the
// 1 to 0 transition. Extra releases are ignored.
func (sg *selectGuardState) release(root *html.Node) {
	if root == nil {
		return
	}
	sg.mu.Lock()
	defer sg.mu.Unlock()
	n := sg.active[root]
	if n <= 0 {
		return
	}
	if n == 1 {
		delete(sg.active, root)
		if body := dom.Body(root); body != nil {
			dom.RemoveClass(body, ClassSelectNone)
		}
		return
	}
	sg.active[root] = n - 1
}

// holding returns the active session count for the given document
// root.
func (sg *selectGuardState) holding(root *html.Node) int {
	sg.mu.Lock()
	defer sg.mu.Unlock()
	return sg.active[root]
}
