package menu

import (
	"time"

	"gioui.org/layout"
	"gioui.org/op/paint"
	"gioui.org/x/component"
)

const (
	openAnimationDuration  = time.Millisecond * 100
	closeAnimationDuration = time.Millisecond * 200
)

// State is the two-state open/close signal of a trigger button. It is owned
// by the button and only ever transitions Closed -> Opened -> Closed.
type State uint8

const (
	StateClosed State = iota
	StateOpened
)

// ButtonAnimation maps the controller state to a visual transform of the
// trigger button. progress runs from 0 (menu closed) to 1 (menu opened),
// already eased. A nil ButtonAnimation disables the transform entirely.
type ButtonAnimation func(gtx C, progress float32, button layout.Widget) D

// DefaultButtonAnimation dims the button to 40% opacity while its menu is
// open.
func DefaultButtonAnimation(gtx C, progress float32, button layout.Widget) D {
	if progress <= 0 {
		return button(gtx)
	}
	defer paint.PushOpacity(gtx.Ops, 1-0.6*progress).Pop()
	return button(gtx)
}

// buttonAnim times the open/close transition: 100ms with an accelerate then
// decelerate curve on open, 200ms decelerating on close.
type buttonAnim struct {
	vis component.VisibilityAnimation
}

func (a *buttonAnim) open(now time.Time) {
	a.vis.Duration = openAnimationDuration
	a.vis.Appear(now)
}

func (a *buttonAnim) close(now time.Time) {
	a.vis.Duration = closeAnimationDuration
	a.vis.Disappear(now)
}

func (a *buttonAnim) progress(gtx C) float32 {
	r := a.vis.Revealed(gtx)
	switch a.vis.State {
	case component.Appearing:
		return easeInOut(r)
	case component.Disappearing:
		// elapsed fraction of the close transition is 1-r
		return 1 - easeOut(1-r)
	default:
		return r
	}
}

func easeInOut(t float32) float32 {
	return t * t * (3 - 2*t)
}

func easeOut(t float32) float32 {
	return 1 - (1-t)*(1-t)
}
