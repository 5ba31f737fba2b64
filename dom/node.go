// Copyright (c) 2026, The DragKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dom provides the document-tree helpers the drag engine uses:
// class and inline style attribute manipulation, CSS selector queries,
// and the geometry interface hosts implement to report element boxes.
// Documents are [golang.org/x/net/html] node trees.
package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// ParseString parses the given HTML source into a document node.
func ParseString(source string) (*html.Node, error) {
	return html.Parse(strings.NewReader(source))
}

// Root returns the root of the tree containing the given node.
func Root(n *html.Node) *html.Node {
	if n == nil {
		return nil
	}
	for n.Parent != nil {
		n = n.Parent
	}
	return n
}

// Body returns the body element of the document containing the given
// node, or nil if there is none.
func Body(n *html.Node) *html.Node {
	root := Root(n)
	if root == nil {
		return nil
	}
	var body *html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if body != nil {
			return
		}
		if n.Type == html.ElementNode && n.Data == "body" {
			body = n
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return body
}

// ParentElement returns the nearest element ancestor of the given
// node, or nil if there is none.
func ParentElement(n *html.Node) *html.Node {
	if n == nil {
		return nil
	}
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode {
			return p
		}
	}
	return nil
}

// Contains reports whether ancestor is the given node or one of its
// ancestors.
func Contains(ancestor, n *html.Node) bool {
	if ancestor == nil {
		return false
	}
	for ; n != nil; n = n.Parent {
		if n == ancestor {
			return true
		}
	}
	return false
}

// Attr returns the value of the given attribute on the given node,
// or "" if it is not present.
func Attr(n *html.Node, key string) string {
	if n == nil {
		return ""
	}
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// SetAttr sets the given attribute on the given node, adding it if it
// is not already present.
func SetAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// RemoveAttr removes the given attribute from the given node.
func RemoveAttr(n *html.Node, key string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			return
		}
	}
}
