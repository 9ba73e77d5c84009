package menu

import (
	"image"
	"image/color"

	"github.com/oligo/pulldown/misc"
	"github.com/oligo/pulldown/theme"

	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/component"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

var (
	minMenuWidth = unit.Dp(180)
	maxMenuWidth = unit.Dp(280)
)

const inf = 1e6

// Menu renders the entry list of a single open presentation. It is created
// fresh on every open together with its RenderConfig, so all items of one
// open agree on the leading slot layout.
type Menu struct {
	entries []Entry
	cfg     RenderConfig
	// stateBase maps an entry index to the first click state index used by
	// that entry. Click states are allocated in list order so they stay
	// attached to their logical entry regardless of the display order.
	stateBase []int
	states    []*widget.Clickable

	list *widget.List
	// ownScroll marks the scroll state as menu-created. A caller-supplied
	// controller is only ever read, never reset.
	ownScroll bool
	// reversed is refreshed by the overlay after every placement
	// resolution, coupling the display order to the growth direction.
	reversed bool
	// displayStates lists click states in display order for keyboard
	// navigation. Rebuilt every frame.
	displayStates  []*widget.Clickable
	focused        int
	requestDismiss bool
	chosen         *Item

	// Background color of the menu. If unset, Bg2 of the theme is used.
	Background color.NRGBA
}

// newMenu builds the per-open menu body. scroll may be a caller-supplied
// scroll state; passing nil creates an internal one.
func newMenu(entries []Entry, cfg RenderConfig, scroll *widget.List) *Menu {
	ownScroll := scroll == nil
	if ownScroll {
		scroll = &widget.List{}
	}
	scroll.List.Axis = layout.Vertical

	m := &Menu{
		entries:   entries,
		cfg:       cfg,
		list:      scroll,
		ownScroll: ownScroll,
		focused:   -1,
	}

	n := 0
	for _, e := range entries {
		m.stateBase = append(m.stateBase, n)
		n += entryStateCount(e)
	}
	for i := 0; i < n; i++ {
		m.states = append(m.states, &widget.Clickable{})
	}
	return m
}

// measure probes the natural content size of the menu body without emitting
// any drawing operations.
func (m *Menu) measure(gtx C, th *theme.Theme) image.Point {
	var fakeOps op.Ops
	gtx.Ops = &fakeOps
	gtx.Constraints.Min = image.Point{}
	gtx.Constraints.Max.Y = inf

	maxWidth := gtx.Dp(minMenuWidth)
	height := 0
	for _, w := range m.buildEntries(th) {
		dims := w(gtx)
		if dims.Size.X > maxWidth {
			maxWidth = dims.Size.X
		}
		height += dims.Size.Y
	}
	if limit := gtx.Dp(maxMenuWidth); maxWidth > limit {
		maxWidth = limit
	}
	// top and bottom padding of the surface
	height += gtx.Dp(unit.Dp(16))

	return image.Pt(maxWidth, height)
}

// Layout renders the menu body at the size chosen by the overlay.
func (m *Menu) Layout(gtx C, th *theme.Theme) D {
	m.update(gtx)

	entries := m.buildEntries(th)
	maxWidth := gtx.Constraints.Max.X

	surface := component.Surface(th.Theme)
	if m.Background == (color.NRGBA{}) {
		surface.Fill = th.Bg2
	} else {
		surface.Fill = m.Background
	}

	dims := surface.Layout(gtx, func(gtx C) D {
		return layout.Inset{
			Top:    unit.Dp(8),
			Bottom: unit.Dp(8),
		}.Layout(gtx, func(gtx C) D {
			return material.List(th.Theme, m.list).Layout(gtx, len(entries), func(gtx C, index int) D {
				gtx.Constraints.Min.X = maxWidth
				gtx.Constraints.Max.X = maxWidth
				return entries[index](gtx)
			})
		})
	})

	defer clip.Rect(image.Rectangle{Max: dims.Size}).Push(gtx.Ops).Pop()
	event.Op(gtx.Ops, m)
	return dims
}

// buildEntries assembles the entry widgets in display order and refreshes
// the keyboard navigation state list.
func (m *Menu) buildEntries(th *theme.Theme) []layout.Widget {
	m.displayStates = m.displayStates[:0]
	widgets := make([]layout.Widget, 0, len(m.entries))

	for i := 0; i < len(m.entries); i++ {
		idx := i
		if m.reversed {
			idx = len(m.entries) - 1 - i
		}

		switch e := m.entries[idx].(type) {
		case Item:
			state := m.states[m.stateBase[idx]]
			if !e.Disabled {
				m.displayStates = append(m.displayStates, state)
			}
			widgets = append(widgets, func(gtx C) D {
				return m.layoutItem(gtx, th, state, e)
			})
		case Row:
			base := m.stateBase[idx]
			for j := range e.Items {
				if !e.Items[j].Disabled {
					m.displayStates = append(m.displayStates, m.states[base+j])
				}
			}
			widgets = append(widgets, func(gtx C) D {
				return m.layoutRow(gtx, th, base, e)
			})
		case Title:
			widgets = append(widgets, func(gtx C) D {
				return e.layout(gtx, th)
			})
		case LargeDivider:
			widgets = append(widgets, func(gtx C) D {
				size := image.Pt(gtx.Constraints.Min.X, gtx.Dp(unit.Dp(8)))
				defer clip.Rect(image.Rectangle{Max: size}).Push(gtx.Ops).Pop()
				paint.ColorOp{Color: misc.WithAlpha(th.Fg, th.HoverAlpha/2)}.Add(gtx.Ops)
				paint.PaintOp{}.Add(gtx.Ops)
				return D{Size: size}
			})
		case Divider:
			widgets = append(widgets, func(gtx C) D {
				return misc.Divider(layout.Horizontal, unit.Dp(1)).Layout(gtx, th)
			})
		}
	}

	return widgets
}

func (m *Menu) layoutItem(gtx C, th *theme.Theme, state *widget.Clickable, it Item) D {
	if state.Clicked(gtx) && !it.Disabled {
		m.choose(it, gtx)
	}

	if it.Disabled {
		return it.layout(gtx, th, m.cfg)
	}

	return material.Clickable(gtx, state, func(gtx C) D {
		macro := op.Record(gtx.Ops)
		dims := it.layout(gtx, th, m.cfg)
		callOp := macro.Stop()

		defer clip.Rect(image.Rectangle{Max: dims.Size}).Push(gtx.Ops).Pop()
		if bg := m.itemBackground(th, state, it); bg.A > 0 {
			paint.ColorOp{Color: bg}.Add(gtx.Ops)
			paint.PaintOp{}.Add(gtx.Ops)
		}
		callOp.Add(gtx.Ops)
		return dims
	})
}

// itemBackground picks the tint painted behind an item. Keyboard focus wins
// over the checked-item tint.
func (m *Menu) itemBackground(th *theme.Theme, state *widget.Clickable, it Item) color.NRGBA {
	if m.isFocused(state) {
		return misc.WithAlpha(color.NRGBA{}, th.HoverAlpha)
	}
	if it.Selected != nil && *it.Selected {
		return misc.WithAlpha(th.ContrastBg, th.SelectedAlpha)
	}
	return color.NRGBA{}
}

func (m *Menu) layoutRow(gtx C, th *theme.Theme, base int, row Row) D {
	children := make([]layout.FlexChild, 0, len(row.Items))
	for j := range row.Items {
		it := row.Items[j]
		state := m.states[base+j]
		children = append(children, layout.Flexed(1, func(gtx C) D {
			if state.Clicked(gtx) && !it.Disabled {
				m.choose(it, gtx)
			}
			if it.Disabled {
				return layout.Center.Layout(gtx, func(gtx C) D {
					return it.layoutCompact(gtx, th)
				})
			}
			return material.Clickable(gtx, state, func(gtx C) D {
				return layout.Center.Layout(gtx, func(gtx C) D {
					return it.layoutCompact(gtx, th)
				})
			})
		}))
	}

	return layout.Flex{Alignment: layout.Middle}.Layout(gtx, children...)
}

func (m *Menu) choose(it Item, gtx C) {
	m.chosen = &it
	gtx.Execute(op.InvalidateCmd{})
}

// takeChosen returns the item picked since the last call, if any.
func (m *Menu) takeChosen() *Item {
	it := m.chosen
	m.chosen = nil
	return it
}

func (m *Menu) isFocused(state *widget.Clickable) bool {
	return m.focused >= 0 && m.focused < len(m.displayStates) && m.displayStates[m.focused] == state
}

// update handles keyboard navigation. The menu grabs focus while presented
// so arrow keys cycle through the items in display order.
func (m *Menu) update(gtx C) {
	if !gtx.Focused(m) {
		gtx.Execute(key.FocusCmd{Tag: m})
	}

	for {
		e, ok := gtx.Event(
			key.FocusFilter{Target: m},
			key.Filter{Focus: m, Name: key.NameUpArrow},
			key.Filter{Focus: m, Name: key.NameDownArrow},
			key.Filter{Focus: m, Name: key.NameEnter},
			key.Filter{Focus: m, Name: key.NameReturn},
			key.Filter{Focus: m, Name: key.NameEscape},
		)
		if !ok {
			break
		}

		ke, ok := e.(key.Event)
		if !ok || ke.State != key.Release {
			continue
		}

		switch ke.Name {
		case key.NameDownArrow:
			m.focused++
			if m.focused >= len(m.displayStates) {
				m.focused = 0
			}
		case key.NameUpArrow:
			m.focused--
			if m.focused < 0 {
				m.focused = len(m.displayStates) - 1
			}
		case key.NameEnter, key.NameReturn:
			if m.focused >= 0 && m.focused < len(m.displayStates) {
				m.displayStates[m.focused].Click()
			}
		case key.NameEscape:
			m.requestDismiss = true
			gtx.Execute(op.InvalidateCmd{})
		}
	}
}

func (m *Menu) onDismissed() {
	if m.ownScroll {
		m.list.List.ScrollTo(0)
	}
	m.focused = -1
}
