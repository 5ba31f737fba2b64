// Copyright (c) 2026, The DragKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// Classes returns the classes of the given node, from its class attribute.
func Classes(n *html.Node) []string {
	return strings.Fields(Attr(n, "class"))
}

// HasClass reports whether the given node has the given class.
func HasClass(n *html.Node, class string) bool {
	for _, c := range Classes(n) {
		if c == class {
			return true
		}
	}
	return false
}

// AddClass adds the given class to the given node.
// It does nothing if the node already has it.
func AddClass(n *html.Node, class string) {
	if HasClass(n, class) {
		return
	}
	cs := append(Classes(n), class)
	SetAttr(n, "class", strings.Join(cs, " "))
}

// RemoveClass removes the given class from the given node.
// The class attribute itself is removed when no classes remain.
func RemoveClass(n *html.Node, class string) {
	cs := Classes(n)
	out := cs[:0]
	for _, c := range cs {
		if c != class {
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		RemoveAttr(n, "class")
		return
	}
	SetAttr(n, "class", strings.Join(out, " "))
}
