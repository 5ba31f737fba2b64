// Copyright (c) 2026, The DragKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dom

import (
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"golang.org/x/net/html"
)

// Styles returns the parsed inline style declarations of the given node.
// A malformed style attribute is treated as empty.
func Styles(n *html.Node) []*css.Declaration {
	style := Attr(n, "style")
	if style == "" {
		return nil
	}
	if !strings.HasSuffix(style, ";") {
		style += ";"
	}
	decls, err := parser.ParseDeclarations(style)
	if err != nil {
		return nil
	}
	return decls
}

// Style returns the value of the given inline style property on the
// given node, or "" if it is not set.
func Style(n *html.Node, property string) string {
	for _, decl := range Styles(n) {
		if decl.Property == property {
			return decl.Value
		}
	}
	return ""
}

// SetStyle sets the given inline style property on the given node,
// preserving the other declarations in the style attribute.
func SetStyle(n *html.Node, property, value string) {
	decls := Styles(n)
	found := false
	for _, decl := range decls {
		if decl.Property == property {
			decl.Value = value
			decl.Important = false
			found = true
		}
	}
	if !found {
		decls = append(decls, &css.Declaration{Property: property, Value: value})
	}
	SetAttr(n, "style", joinDeclarations(decls))
}

// RemoveStyle removes the given inline style property from the given
// node. The style attribute itself is removed when no declarations
// remain.
func RemoveStyle(n *html.Node, property string) {
	decls := Styles(n)
	out := decls[:0]
	for _, decl := range decls {
		if decl.Property != property {
			out = append(out, decl)
		}
	}
	if len(out) == 0 {
		RemoveAttr(n, "style")
		return
	}
	SetAttr(n, "style", joinDeclarations(out))
}

func joinDeclarations(decls []*css.Declaration) string {
	strs := make([]string, len(decls))
	for i, decl := range decls {
		strs[i] = decl.String()
	}
	return strings.Join(strs, " ")
}
