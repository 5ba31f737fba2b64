// Copyright (c) 2026, The DragKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dom

import (
	"testing"

	"github.com/dragkit/dragkit/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

const testPage = `<html><body>
<div id="box" class="card">
	<div class="titlebar"><span id="grip">drag me</span></div>
	<button id="close">x</button>
</div>
<div id="other"></div>
</body></html>`

func parseTestPage(t *testing.T) *html.Node {
	doc, err := ParseString(testPage)
	require.NoError(t, err)
	return doc
}

func TestQuery(t *testing.T) {
	doc := parseTestPage(t)
	box, err := Query(doc, "#box")
	require.NoError(t, err)
	require.NotNil(t, box)
	assert.Equal(t, "div", box.Data)

	none, err := Query(doc, ".missing")
	require.NoError(t, err)
	assert.Nil(t, none)

	all, err := QueryAll(doc, "div")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	_, err = QueryAll(doc, "[")
	assert.Error(t, err)
}

func TestWithinMatch(t *testing.T) {
	doc := parseTestPage(t)
	grip, _ := Query(doc, "#grip")
	box, _ := Query(doc, "#box")
	other, _ := Query(doc, "#other")

	in, err := WithinMatch(box, grip, ".titlebar")
	require.NoError(t, err)
	assert.True(t, in)

	in, err = WithinMatch(box, box, ".titlebar")
	require.NoError(t, err)
	assert.False(t, in)

	assert.True(t, WithinAny([]*html.Node{box}, grip))
	assert.False(t, WithinAny([]*html.Node{other}, grip))
}

func TestContains(t *testing.T) {
	doc := parseTestPage(t)
	box, _ := Query(doc, "#box")
	grip, _ := Query(doc, "#grip")
	other, _ := Query(doc, "#other")
	assert.True(t, Contains(box, grip))
	assert.True(t, Contains(box, box))
	assert.False(t, Contains(box, other))
	assert.False(t, Contains(grip, box))
	assert.Equal(t, doc, Root(grip))
}

func TestClasses(t *testing.T) {
	doc := parseTestPage(t)
	box, _ := Query(doc, "#box")

	assert.True(t, HasClass(box, "card"))
	AddClass(box, "dragkit")
	AddClass(box, "dragkit")
	assert.Equal(t, "card dragkit", Attr(box, "class"))

	RemoveClass(box, "card")
	assert.Equal(t, "dragkit", Attr(box, "class"))
	RemoveClass(box, "dragkit")
	assert.Equal(t, "", Attr(box, "class"))
	assert.False(t, HasClass(box, "dragkit"))
}

func TestStyles(t *testing.T) {
	doc := parseTestPage(t)
	box, _ := Query(doc, "#box")

	SetStyle(box, "transform", "translate3d(10px, 20px, 0)")
	assert.Equal(t, "translate3d(10px, 20px, 0)", Style(box, "transform"))

	SetStyle(box, "width", "100px")
	SetStyle(box, "transform", "translate3d(30px, 0px, 0)")
	assert.Equal(t, "translate3d(30px, 0px, 0)", Style(box, "transform"))
	assert.Equal(t, "100px", Style(box, "width"))

	RemoveStyle(box, "transform")
	assert.Equal(t, "", Style(box, "transform"))
	RemoveStyle(box, "width")
	assert.Equal(t, "", Attr(box, "style"))
}

func TestBody(t *testing.T) {
	doc := parseTestPage(t)
	grip, _ := Query(doc, "#grip")
	body := Body(grip)
	require.NotNil(t, body)
	assert.Equal(t, "body", body.Data)
}

func TestStaticGeometry(t *testing.T) {
	doc := parseTestPage(t)
	box, _ := Query(doc, "#box")
	g := NewStaticGeometry(math32.Vec2(800, 600)).
		SetBox(box, math32.B2(10, 20, 110, 70))

	b, ok := g.BoundingBox(box)
	assert.True(t, ok)
	assert.Equal(t, math32.Vec2(100, 50), b.Size())

	_, ok = g.BoundingBox(doc)
	assert.False(t, ok)
	assert.Equal(t, math32.Vec2(800, 600), g.ViewportSize())
}
