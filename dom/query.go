// Copyright (c) 2026, The DragKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dom

import (
	selcss "github.com/ericchiang/css"
	"golang.org/x/net/html"
)

// QueryAll returns the nodes under root matching the given CSS selector.
// It returns an error if the selector does not parse.
func QueryAll(root *html.Node, sel string) ([]*html.Node, error) {
	s, err := selcss.Parse(sel)
	if err != nil {
		return nil, err
	}
	return s.Select(root), nil
}

// Query returns the first node under root matching the given CSS
// selector, or nil if nothing matches. It returns an error if the
// selector does not parse.
func Query(root *html.Node, sel string) (*html.Node, error) {
	matches, err := QueryAll(root, sel)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, nil
	}
	return matches[0], nil
}

// WithinMatch reports whether the given node is a match for the given
// CSS selector under root, or a descendant of one. It returns an error
// if the selector does not parse.
func WithinMatch(root, n *html.Node, sel string) (bool, error) {
	matches, err := QueryAll(root, sel)
	if err != nil {
		return false, err
	}
	for _, match := range matches {
		if Contains(match, n) {
			return true, nil
		}
	}
	return false, nil
}

// WithinAny reports whether the given node is one of the given nodes
// or a descendant of one.
func WithinAny(nodes []*html.Node, n *html.Node) bool {
	for _, node := range nodes {
		if Contains(node, n) {
			return true
		}
	}
	return false
}
