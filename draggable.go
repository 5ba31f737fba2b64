// Copyright (c) 2026, The DragKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dragkit

import (
	"fmt"
	"log/slog"

	"github.com/dragkit/dragkit/base/errors"
	"github.com/dragkit/dragkit/dom"
	"github.com/dragkit/dragkit/events"
	"github.com/dragkit/dragkit/math32"
	"github.com/dragkit/dragkit/states"
	"golang.org/x/net/html"
)

// TraceDrag can be set to true to log session transitions and applied
// offsets, for debugging host integrations.
var TraceDrag = false

// Draggable attaches drag behavior to one document node. It owns the
// drag state machine: it consumes pointer events via
// [Draggable.HandleEvent], runs the constraint pipeline, renders
// offsets through the transform engine, maintains the state classes,
// and fires the lifecycle callbacks. Create it with [New].
//
// A Draggable is not safe for concurrent use; the host delivers events
// and reactive updates from one goroutine, in order.
type Draggable struct {

	// Options configure the behavior. Mutate them (or use
	// [Draggable.SetOptions]) between sessions; they are snapshot at
	// each pointer-down. Disabled and Position act immediately through
	// [Draggable.Update].
	Options

	// root is the node the behavior is attached to.
	root *html.Node

	// geom answers layout queries for root and bounds targets.
	geom dom.Geometry

	// state holds the Disabled/Dragging/Dragged flags.
	state states.States

	// listeners receive the drag events after the Options callbacks.
	listeners events.Listeners

	// sess is the live session, nil while idle.
	sess *session

	// rect is the most recently resolved bounds rectangle. It persists
	// across sessions so a resolution failure can fall back to it.
	rect *math32.Box2

	// applied is the last total offset handed to the transform engine,
	// whether session-driven or external. It is the baseline for the
	// next session and the comparison point that keeps external
	// position updates from looping.
	applied math32.Vector2

	// err is the most recent engine error, cleared at session start.
	err error

	destroyed bool
}

// session is the live state for one pointer-down-to-up interaction.
type session struct {
	// cfg is the options snapshot taken at pointer-down.
	cfg Options

	// pointer is the id of the active pointer; events from other
	// pointers are ignored for the duration.
	pointer int

	// start is the pointer position at pointer-down.
	start math32.Vector2

	// current is the node the pointer-down originated on.
	current *html.Node

	// origin is the element box at zero total offset.
	origin math32.Box2

	// boundsOK is whether origin was captured, making clamping usable.
	boundsOK bool

	// base is the total offset when the session began.
	base math32.Vector2

	// offset is the current constrained total offset.
	offset math32.Vector2

	// grid is the validated snapping grid, nil when snapping is off.
	grid *math32.Vector2

	// moved is whether any pointer move was accepted this session.
	moved bool
}

// New attaches drag behavior to the given root node, with layout
// queries served by geom. A nil opts means [NewOptions] defaults.
// The initial position is rendered immediately: Position if set,
// otherwise DefaultPosition.
func New(root *html.Node, geom dom.Geometry, opts *Options) *Draggable {
	d := &Draggable{root: root, geom: geom}
	if opts == nil {
		opts = NewOptions()
	}
	d.Options = *opts
	d.state.SetFlag(d.Disabled, states.Disabled)
	if d.DefaultClass != "" {
		dom.AddClass(root, d.DefaultClass)
	}
	pos := d.DefaultPosition
	if d.Position != nil {
		pos = *d.Position
	}
	d.render(&d.Options, pos)
	return d
}

// HandleEvent feeds one pointer event to the state machine. Event
// types other than PointerDown, PointerMove, PointerUp, and
// PointerCancel are ignored.
func (d *Draggable) HandleEvent(e events.Event) {
	if d.destroyed {
		return
	}
	switch e.Type() {
	case events.PointerDown:
		d.pointerDown(e)
	case events.PointerMove:
		d.pointerMove(e)
	case events.PointerUp, events.PointerCancel:
		d.pointerUp(e)
	}
}

// On adds a listener for the given drag event type ([events.DragStart],
// [events.DragMove], [events.DragEnd]), called after the Options
// callbacks. Later listeners run first, and marking the event handled
// stops the chain.
func (d *Draggable) On(typ events.Types, fun func(e events.Event)) *Draggable {
	d.listeners.Add(typ, fun)
	return d
}

func (d *Draggable) pointerDown(e events.Event) {
	if d.sess != nil {
		return
	}
	cfg := d.Options
	if cfg.Disabled {
		return
	}
	if cfg.IgnoreMultitouch && e.Points() > 1 {
		return
	}
	if !d.shouldStart(&cfg, e) {
		return
	}
	d.err = nil
	s := &session{
		cfg:     cfg,
		pointer: e.PointerID(),
		start:   e.Pos(),
		current: e.Target(),
		base:    d.applied,
		offset:  d.applied,
	}
	s.grid = d.validGrid(cfg.Grid)
	if cfg.Bounds != nil {
		if box, ok := d.geom.BoundingBox(d.root); ok {
			s.origin = box.Translate(d.applied.Negate())
			s.boundsOK = true
		} else {
			d.fail(fmt.Errorf("%w: element has no box", ErrResolution))
		}
		if cfg.RecomputeBounds.DragStart {
			d.resolveBounds(s)
		}
	}
	d.sess = s
	d.state.SetFlag(true, states.Dragging)
	if cfg.DefaultClassDragging != "" {
		dom.AddClass(d.root, cfg.DefaultClassDragging)
	}
	if cfg.ApplyUserSelectHack {
		selectGuard.acquire(dom.Root(d.root))
	}
	if TraceDrag {
		slog.Debug("dragkit: drag start", "pos", s.start, "offset", s.base)
	}
	d.sendDrag(events.DragStart, s, e)
}

func (d *Draggable) pointerMove(e events.Event) {
	s := d.sess
	if s == nil || e.PointerID() != s.pointer {
		return
	}
	if s.cfg.RecomputeBounds.Drag {
		d.resolveBounds(s)
	}
	delta := e.Pos().Sub(s.start)
	off := s.constrain(delta, d.sessionRect(s))
	s.offset = off
	s.moved = true
	d.render(&s.cfg, off)
	if TraceDrag {
		slog.Debug("dragkit: drag", "pos", e.Pos(), "offset", off)
	}
	d.sendDrag(events.DragMove, s, e)
}

func (d *Draggable) pointerUp(e events.Event) {
	s := d.sess
	if s == nil || e.PointerID() != s.pointer {
		return
	}
	if s.cfg.RecomputeBounds.DragEnd {
		d.resolveBounds(s)
	}
	if TraceDrag {
		slog.Debug("dragkit: drag end", "offset", s.offset, "moved", s.moved)
	}
	d.endSession(s, e, true)
}

// endSession tears a session down: state flags, classes, and the
// select-hack guard are restored unconditionally before any callback
// runs, so a failing callback cannot leave them inconsistent.
func (d *Draggable) endSession(s *session, src events.Event, fireEnd bool) {
	d.sess = nil
	d.state.SetFlag(false, states.Dragging)
	if s.cfg.DefaultClassDragging != "" {
		dom.RemoveClass(d.root, s.cfg.DefaultClassDragging)
	}
	if s.moved {
		d.state.SetFlag(true, states.Dragged)
		if s.cfg.DefaultClassDragged != "" {
			dom.AddClass(d.root, s.cfg.DefaultClassDragged)
		}
	}
	if s.cfg.ApplyUserSelectHack {
		selectGuard.release(dom.Root(d.root))
	}
	if fireEnd {
		d.sendDrag(events.DragEnd, s, src)
	}
}

// sessionRect returns the rectangle to clamp against for the session,
// nil when clamping is off or unusable.
func (d *Draggable) sessionRect(s *session) *math32.Box2 {
	if s.cfg.Bounds == nil || !s.boundsOK {
		return nil
	}
	return d.rect
}

// shouldStart reports whether a pointer-down qualifies to begin a
// session: not within a Cancel target, and within the Handle target
// when one is configured. Cancel wins when a node matches both.
func (d *Draggable) shouldStart(cfg *Options, e events.Event) bool {
	target := e.Target()
	if target == nil {
		target = d.root
	}
	if cfg.Cancel != nil {
		in, err := d.matches(cfg.Cancel, target)
		if err != nil {
			d.fail(fmt.Errorf("%w: cancel selector: %v", ErrConfiguration, err))
		} else if in {
			return false
		}
	}
	if cfg.Handle != nil {
		in, err := d.matches(cfg.Handle, target)
		if err != nil {
			d.fail(fmt.Errorf("%w: handle selector: %v", ErrConfiguration, err))
			return false
		}
		return in
	}
	return true
}

// matches reports whether n is within the given target, resolving a
// selector within the element or walking the explicit node list.
func (d *Draggable) matches(t *Target, n *html.Node) (bool, error) {
	if len(t.Nodes) > 0 {
		return dom.WithinAny(t.Nodes, n), nil
	}
	if t.Selector == "" {
		return false, nil
	}
	return dom.WithinMatch(d.root, n, t.Selector)
}

// validGrid validates the grid option at session start. A non-positive
// cell reports [ErrConfiguration] and disables snapping for the
// session.
func (d *Draggable) validGrid(grid *math32.Vector2) *math32.Vector2 {
	if grid == nil {
		return nil
	}
	if grid.X <= 0 || grid.Y <= 0 {
		d.fail(fmt.Errorf("%w: grid cells must be positive, got %v", ErrConfiguration, *grid))
		return nil
	}
	g := *grid
	return &g
}

// render hands a total offset to the transform engine and records it
// as the applied position.
func (d *Draggable) render(cfg *Options, off math32.Vector2) {
	d.applyTransform(cfg, off)
	d.applied = off
}

// sendDrag fires the lifecycle callback and then the listeners for the
// given drag event type, with panics recovered into [ErrCallback].
func (d *Draggable) sendDrag(typ events.Types, s *session, src events.Event) {
	ev := events.NewDrag(typ, s.offset, d.root, s.current)
	if src != nil {
		ev.Where = src.Pos()
		ev.Prev = src.PrevPos()
	} else {
		ev.Where = s.start
		ev.Prev = s.start
	}
	ev.Start = s.start
	ev.Pointer = s.pointer
	ev.Init()
	var cb func(e *events.Drag)
	switch typ {
	case events.DragStart:
		cb = s.cfg.OnDragStart
	case events.DragMove:
		cb = s.cfg.OnDrag
	case events.DragEnd:
		cb = s.cfg.OnDragEnd
	}
	if cb != nil {
		d.invoke(typ, func() { cb(ev) })
	}
	if len(d.listeners) > 0 {
		d.invoke(typ, func() { d.listeners.Call(ev) })
	}
}

// invoke runs a caller-supplied function, recovering a panic into
// [ErrCallback] so the state machine's bookkeeping is never aborted.
func (d *Draggable) invoke(typ events.Types, fun func()) {
	defer func() {
		if r := recover(); r != nil {
			d.fail(fmt.Errorf("%w: %v: %v", ErrCallback, typ, r))
		}
	}()
	fun()
}

// Update propagates the option fields that act immediately. It mirrors
// Disabled into the state flags, cancelling any active session, and
// renders the external Position directly through the transform engine
// when it differs from the last applied offset. The external path
// bypasses the constraint pipeline and fires no callbacks, and it
// stays active while Disabled.
func (d *Draggable) Update() {
	if d.destroyed {
		return
	}
	d.state.SetFlag(d.Disabled, states.Disabled)
	if d.Disabled && d.sess != nil {
		d.endSession(d.sess, nil, false)
	}
	if d.sess == nil && d.Position != nil && *d.Position != d.applied {
		if TraceDrag {
			slog.Debug("dragkit: external position", "pos", *d.Position)
		}
		d.render(&d.Options, *d.Position)
	}
}

// SetOptions replaces the options and calls [Draggable.Update].
// Changes beyond Disabled and Position take effect at the next
// session.
func (d *Draggable) SetOptions(opts *Options) *Draggable {
	if opts != nil {
		d.Options = *opts
	}
	d.Update()
	return d
}

// SetPosition sets the external position and renders it immediately.
func (d *Draggable) SetPosition(x, y float32) *Draggable {
	p := math32.Vec2(x, y)
	d.Options.Position = &p
	d.Update()
	return d
}

// SetDisabled sets the disabled option and applies it immediately.
// Disabling mid-drag cancels the session, with class and guard cleanup
// but no drag-end callback.
func (d *Draggable) SetDisabled(disabled bool) *Draggable {
	d.Options.Disabled = disabled
	d.Update()
	return d
}

// Destroy cancels any active session, removes the engine's classes
// from the element, and makes the instance inert. The transform or
// position styles it wrote are left in place.
func (d *Draggable) Destroy() {
	if d.destroyed {
		return
	}
	if d.sess != nil {
		d.endSession(d.sess, nil, false)
	}
	for _, class := range []string{d.DefaultClass, d.DefaultClassDragging, d.DefaultClassDragged} {
		if class != "" {
			dom.RemoveClass(d.root, class)
		}
	}
	d.destroyed = true
}

// Offset returns the last total offset handed to the transform engine,
// session-driven or external.
func (d *Draggable) Offset() math32.Vector2 {
	return d.applied
}

// IsDragging reports whether a drag session is active.
func (d *Draggable) IsDragging() bool {
	return d.state.HasFlag(states.Dragging)
}

// State returns the current state flags.
func (d *Draggable) State() states.States {
	return d.state
}

// RootNode returns the node the behavior is attached to.
func (d *Draggable) RootNode() *html.Node {
	return d.root
}

// Err returns the most recent engine error, or nil. It is cleared when
// a new session starts.
func (d *Draggable) Err() error {
	return d.err
}

// fail records and logs an engine error.
func (d *Draggable) fail(err error) {
	d.err = errors.Log(err)
}
