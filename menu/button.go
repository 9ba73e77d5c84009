package menu

import (
	"image"

	"github.com/oligo/pulldown/locale"
	"github.com/oligo/pulldown/theme"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
)

// DefaultMenuOffset is the default horizontal nudge applied to menus whose
// anchor falls in the left or right third of the screen.
const DefaultMenuOffset = unit.Dp(16)

// Button is a trigger that opens a pull-down menu anchored to its own
// on-screen position. The zero value is not usable, use NewButton.
type Button struct {
	// Items builds the menu entries at open time. A builder returning an
	// empty list makes the press a silent no-op: no menu is shown, no state
	// changes and no callback fires.
	Items func(gtx C) []Entry
	// OnCanceled is invoked when the menu is dismissed without a selection.
	OnCanceled func()

	Position   MenuPosition
	ItemsOrder ItemsOrder
	Anchor     Anchoring
	MenuOffset unit.Dp
	// RTL resolves AnchorStart/AnchorEnd against the reading direction.
	RTL bool
	// Scroll is the scroll state of the menu list. If nil, an internal one
	// is created per open. A supplied state keeps its scroll position across
	// opens.
	Scroll *widget.List
	// Barrier overrides the accessibility description of the backdrop. If
	// empty it is resolved through the locale package.
	Barrier string
	// Animation transforms the button while its menu is open. Nil disables
	// the effect.
	Animation ButtonAnimation
	// ButtonBuilder customizes the trigger visuals. It receives the
	// animated default trigger and may wrap or replace it.
	ButtonBuilder func(gtx C, th *theme.Theme, state State, button layout.Widget) D

	overlay   *Overlay
	clickable widget.Clickable
	state     State
	// gen guards against resolutions of a previous open mutating the
	// current one.
	gen  int
	anim buttonAnim

	// last pointer press in button-local coordinates and the button size of
	// the last frame, used to recover the window-space anchor rect.
	pressPos image.Point
	hasPress bool
	size     image.Point
	pressTag int
}

// NewButton creates a pull-down trigger presenting on the given overlay.
func NewButton(overlay *Overlay, items func(gtx C) []Entry) *Button {
	return &Button{
		Items:      items,
		MenuOffset: DefaultMenuOffset,
		Animation:  DefaultButtonAnimation,
		overlay:    overlay,
	}
}

// State returns the current open/close state.
func (b *Button) State() State {
	return b.state
}

// Open runs the open protocol against the button's live geometry. It is the
// programmatic equivalent of pressing the button and does nothing while the
// menu is already open.
func (b *Button) Open(gtx C) {
	if b.overlay == nil || b.Items == nil || b.state != StateClosed {
		return
	}
	entries := b.Items(gtx)
	if len(entries) == 0 {
		return
	}

	anchor, hasAnchor := b.anchorRect()
	barrier := b.Barrier
	if barrier == "" {
		barrier = locale.BarrierLabel()
	}

	gen := b.gen + 1
	s := &session{
		anchor:     anchor,
		hasAnchor:  hasAnchor,
		position:   b.Position,
		itemsOrder: b.ItemsOrder,
		anchoring:  b.Anchor,
		menuOffset: b.MenuOffset,
		rtl:        b.RTL,
		body:       newMenu(entries, RenderConfig{HasLeading: hasLeading(entries)}, b.Scroll),
		barrier:    barrier,
		resolve: func(gtx C, action func()) {
			b.finish(gtx, gen, action)
		},
	}
	if !b.overlay.show(gtx, s) {
		return
	}
	b.gen = gen
	b.state = StateOpened
	b.anim.open(gtx.Now)
}

// finish closes the state machine and delivers the outcome. Resolutions of
// a stale open are dropped without mutating anything.
func (b *Button) finish(gtx C, gen int, action func()) {
	if gen != b.gen || b.state != StateOpened {
		return
	}
	b.state = StateClosed
	b.anim.close(gtx.Now)
	if action != nil {
		action()
	} else if b.OnCanceled != nil {
		b.OnCanceled()
	}
}

// Layout renders the trigger with the given content widget.
func (b *Button) Layout(gtx C, th *theme.Theme, w layout.Widget) D {
	b.update(gtx)

	trigger := func(gtx C) D {
		dims := material.Clickable(gtx, &b.clickable, w)
		b.size = dims.Size

		defer pointer.PassOp{}.Push(gtx.Ops).Pop()
		defer clip.Rect(image.Rectangle{Max: dims.Size}).Push(gtx.Ops).Pop()
		event.Op(gtx.Ops, &b.pressTag)
		return dims
	}

	animated := trigger
	if b.Animation != nil {
		animated = func(gtx C) D {
			return b.Animation(gtx, b.anim.progress(gtx), trigger)
		}
	}

	if b.ButtonBuilder != nil {
		// The custom builder receives the already animated trigger so the
		// open/close transform applies on both paths.
		return b.ButtonBuilder(gtx, th, b.state, animated)
	}
	return animated(gtx)
}

func (b *Button) update(gtx C) {
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: &b.pressTag,
			Kinds:  pointer.Press,
		})
		if !ok {
			break
		}
		if e, ok := ev.(pointer.Event); ok && e.Kind == pointer.Press {
			b.pressPos = roundPt(e.Position)
			b.hasPress = true
		}
	}

	// The trigger is inert while the menu is open.
	if b.clickable.Clicked(gtx) && b.state == StateClosed {
		b.Open(gtx)
	}
}

// anchorRect recovers the button rect in window coordinates by correlating
// the activating press as seen by the button (local coordinates) and by the
// overlay's window-wide press tracker.
func (b *Button) anchorRect() (image.Rectangle, bool) {
	windowPos, ok := b.overlay.windowPress()
	if !ok || !b.hasPress || b.size == (image.Point{}) {
		return image.Rectangle{}, false
	}
	origin := roundPt(windowPos).Sub(b.pressPos)
	return image.Rectangle{Min: origin, Max: origin.Add(b.size)}, true
}

func roundPt(p f32.Point) image.Point {
	return image.Pt(int(p.X+0.5), int(p.Y+0.5))
}
