package menu

import (
	"image"
	"time"

	"github.com/oligo/pulldown/theme"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/io/semantic"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/x/component"
)

const overlayAnimationDuration = time.Millisecond * 150

// session is the state of one menu presentation, created at open time and
// discarded when the overlay has fully disappeared.
type session struct {
	// anchor is the trigger rect in window coordinates. hasAnchor is false
	// when the anchor could not be determined, in which case the menu is
	// centered on screen.
	anchor    image.Rectangle
	hasAnchor bool

	position   MenuPosition
	itemsOrder ItemsOrder
	anchoring  Anchoring
	menuOffset unit.Dp
	rtl        bool

	body    *Menu
	barrier string
	// resolve delivers the outcome exactly once: the chosen item's action,
	// or nil for a dismissal.
	resolve  func(gtx C, action func())
	resolved bool
}

// Overlay presents pull-down menus above the app content. Lay it out after
// (above) everything else at the window root, e.g. as the last expanded
// child of a layout.Stack, so placement is resolved against the full window
// and the live safe-area insets on every frame.
type Overlay struct {
	// SafeInsets excludes window areas obscured by notches or system bars
	// from menu placement.
	SafeInsets layout.Inset

	anim    component.VisibilityAnimation
	session *session

	// last observed pointer press in window coordinates. Trigger buttons
	// correlate it with their own local press position to recover their
	// window-space rect.
	pressPos f32.Point
	hasPress bool
	// distinct event tags for the press tracker and the scrim
	pressTag int
	scrimTag int
}

func NewOverlay() *Overlay {
	o := &Overlay{}
	o.anim.State = component.Invisible
	o.anim.Duration = overlayAnimationDuration
	return o
}

// Active reports whether a menu is currently presented.
func (o *Overlay) Active() bool {
	return o.session != nil
}

// Layout renders the overlay. Unless a menu has been opened this only
// maintains the press tracker and draws nothing.
func (o *Overlay) Layout(gtx C, th *theme.Theme) D {
	o.trackPresses(gtx)

	if o.session == nil {
		return D{}
	}

	s := o.session
	if !o.anim.Visible() {
		// close animation finished
		o.session = nil
		return D{}
	}

	o.updateScrim(gtx)
	if s.body.requestDismiss {
		s.body.requestDismiss = false
		o.beginClose(gtx, nil)
	}

	gtx.Constraints.Min = gtx.Constraints.Max
	screen := ScreenMetrics{
		Size: gtx.Constraints.Max,
		Insets: Insets{
			Top:    gtx.Dp(o.SafeInsets.Top),
			Bottom: gtx.Dp(o.SafeInsets.Bottom),
			Left:   gtx.Dp(o.SafeInsets.Left),
			Right:  gtx.Dp(o.SafeInsets.Right),
		},
	}

	anchor := s.anchor
	if !s.hasAnchor {
		// no usable anchor geometry, degrade to a centered zero rect
		c := image.Pt(screen.Size.X/2, screen.Size.Y/2)
		anchor = image.Rectangle{Min: c, Max: c}
	}

	cfg := PlacementConfig{
		Position:   s.position,
		ItemsOrder: s.itemsOrder,
		Anchor:     s.anchoring,
		MenuOffset: gtx.Dp(s.menuOffset),
		RTL:        s.rtl,
	}

	// Placement is resolved fresh on every frame of the presentation, so
	// window resizes and rotations are reflected while the menu is open.
	content := s.body.measure(gtx, th)
	placed := ResolvePlacement(anchor, screen, cfg, content)
	s.body.reversed = cfg.ItemsOrder.Reversed(placed.Direction)

	o.layoutScrim(gtx, th, s)
	o.layoutMenu(gtx, th, s, anchor, placed)

	if it := s.body.takeChosen(); it != nil {
		o.beginClose(gtx, it.OnTap)
	}

	return D{Size: gtx.Constraints.Max}
}

// show starts presenting a session. Showing while another menu is still up
// is not supported and ignored.
func (o *Overlay) show(gtx C, s *session) bool {
	if o.session != nil {
		return false
	}
	o.session = s
	o.anim.Appear(gtx.Now)
	gtx.Execute(op.InvalidateCmd{})
	return true
}

// beginClose resolves the session outcome and starts the close animation.
// The session stays around until the overlay has fully disappeared.
func (o *Overlay) beginClose(gtx C, action func()) {
	s := o.session
	if s == nil || s.resolved {
		return
	}
	s.resolved = true
	o.anim.Disappear(gtx.Now)
	s.body.onDismissed()
	if s.resolve != nil {
		s.resolve(gtx, action)
	}
	gtx.Execute(op.InvalidateCmd{})
}

// trackPresses records pointer presses in window coordinates through an
// input area covering the whole window. PassOp keeps the area from stealing
// events from the widgets below.
func (o *Overlay) trackPresses(gtx C) {
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: &o.pressTag,
			Kinds:  pointer.Press,
		})
		if !ok {
			break
		}
		if e, ok := ev.(pointer.Event); ok && e.Kind == pointer.Press {
			o.pressPos = e.Position
			o.hasPress = true
		}
	}

	defer pointer.PassOp{}.Push(gtx.Ops).Pop()
	defer clip.Rect(image.Rectangle{Max: gtx.Constraints.Max}).Push(gtx.Ops).Pop()
	event.Op(gtx.Ops, &o.pressTag)
}

// updateScrim dismisses the menu when the user taps the backdrop.
func (o *Overlay) updateScrim(gtx C) {
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: &o.scrimTag,
			Kinds:  pointer.Press,
		})
		if !ok {
			break
		}
		if e, ok := ev.(pointer.Event); ok && e.Kind == pointer.Press {
			o.beginClose(gtx, nil)
		}
	}
}

// layoutScrim draws the input-capturing backdrop behind the menu.
func (o *Overlay) layoutScrim(gtx C, th *theme.Theme, s *session) {
	macro := op.Record(gtx.Ops)
	stack := clip.Rect(image.Rectangle{Max: gtx.Constraints.Max}).Push(gtx.Ops)
	event.Op(gtx.Ops, &o.scrimTag)
	semantic.DescriptionOp(s.barrier).Add(gtx.Ops)
	if th.ScrimColor.A > 0 {
		paint.ColorOp{Color: th.ScrimColor}.Add(gtx.Ops)
		paint.PaintOp{}.Add(gtx.Ops)
	}
	stack.Pop()
	op.Defer(gtx.Ops, macro.Stop())
}

// layoutMenu draws the menu body at its resolved rect, scaled and faded
// around the animation origin while the open/close transition runs.
func (o *Overlay) layoutMenu(gtx C, th *theme.Theme, s *session, anchor image.Rectangle, placed ResolvedPlacement) {
	origin := f32.Pt(
		float32(anchor.Min.X)+placed.Alignment.X*float32(anchor.Dx()),
		float32(anchor.Min.Y)+placed.Alignment.Y*float32(anchor.Dy()),
	)

	macro := op.Record(gtx.Ops)
	revealed := o.anim.Revealed(gtx)
	var stack op.TransformStack
	if o.anim.Animating() {
		scale := 0.5 + revealed/2
		stack = op.Affine(f32.Affine2D{}.Scale(origin, f32.Pt(scale, scale))).Push(gtx.Ops)
	}
	opacity := paint.PushOpacity(gtx.Ops, revealed)

	trans := op.Offset(placed.Menu.Min).Push(gtx.Ops)
	mgtx := gtx
	mgtx.Constraints.Min = image.Pt(placed.Menu.Dx(), 0)
	mgtx.Constraints.Max = placed.Menu.Size()
	s.body.Layout(mgtx, th)
	trans.Pop()

	opacity.Pop()
	if o.anim.Animating() {
		stack.Pop()
	}
	op.Defer(gtx.Ops, macro.Stop())
}

// windowPress returns the window coordinates of the most recent pointer
// press, if any.
func (o *Overlay) windowPress() (f32.Point, bool) {
	return o.pressPos, o.hasPress
}
