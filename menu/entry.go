package menu

import (
	"image"
	"image/color"

	"github.com/oligo/pulldown/icon"
	"github.com/oligo/pulldown/misc"
	"github.com/oligo/pulldown/theme"

	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"golang.org/x/exp/shiny/materialdesign/icons"
)

var checkIcon, _ = widget.NewIcon(icons.NavigationCheck)

var (
	itemInset = layout.Inset{
		Left:   unit.Dp(16),
		Right:  unit.Dp(16),
		Top:    unit.Dp(10),
		Bottom: unit.Dp(10),
	}
	titleInset = layout.Inset{
		Left:   unit.Dp(16),
		Right:  unit.Dp(16),
		Top:    unit.Dp(6),
		Bottom: unit.Dp(6),
	}
	leadingWidth  = unit.Dp(22)
	trailingWidth = unit.Dp(20)
)

// Entry is a single element of a pull-down menu. Implementations are Item,
// Divider, LargeDivider, Title and Row.
type Entry interface {
	entry()
}

// Item is a tappable menu entry.
type Item struct {
	Title string
	// Icon is an optional trailing vector icon.
	Icon *widget.Icon
	// Image is an optional trailing raster icon, used when Icon is unset.
	Image *icon.Source
	// Selected, when non-nil, marks the item as checkable. The presence of
	// the flag on any item switches the whole menu into selectable mode.
	Selected *bool
	// Destructive tints the item with the theme's destructive color.
	Destructive bool
	Disabled    bool
	// OnTap is invoked after the menu has closed when the user chose this
	// item.
	OnTap func()
}

// Divider is a thin separator line between entries.
type Divider struct{}

// LargeDivider is a thick separator band used to group entry sections.
type LargeDivider struct{}

// Title is a non-interactive heading entry.
type Title struct {
	Text string
}

// Row renders up to a few compact items side by side.
type Row struct {
	Items []Item
}

func (Item) entry()         {}
func (Divider) entry()      {}
func (LargeDivider) entry() {}
func (Title) entry()        {}
func (Row) entry()          {}

// RenderConfig is the per-open context shared by all rendered entries of one
// menu presentation. It is computed once at open time and never recomputed
// per item, so every item of the same menu agrees on the leading slot layout.
type RenderConfig struct {
	// HasLeading reserves a leading checkmark slot on every item when any
	// item of the open carries a Selected flag.
	HasLeading bool
}

// hasLeading reports whether any item, including items nested in rows,
// requests selectable presentation.
func hasLeading(entries []Entry) bool {
	for _, e := range entries {
		switch e := e.(type) {
		case Item:
			if e.Selected != nil {
				return true
			}
		case Row:
			for _, it := range e.Items {
				if it.Selected != nil {
					return true
				}
			}
		}
	}
	return false
}

// entryStateCount returns the number of click states a single entry needs.
func entryStateCount(e Entry) int {
	switch e := e.(type) {
	case Item:
		return 1
	case Row:
		return len(e.Items)
	}
	return 0
}

// interactiveCount returns the number of click states the entry list needs.
func interactiveCount(entries []Entry) int {
	n := 0
	for _, e := range entries {
		n += entryStateCount(e)
	}
	return n
}

func (it Item) textColor(th *theme.Theme) color.NRGBA {
	c := th.Fg
	if it.Destructive {
		c = th.Destructive
	}
	if it.Disabled {
		c = misc.WithAlpha(c, th.DisabledAlpha)
	}
	return c
}

// layout renders the item content: leading checkmark slot, title and an
// optional trailing icon.
func (it Item) layout(gtx C, th *theme.Theme, cfg RenderConfig) D {
	textColor := it.textColor(th)

	return itemInset.Layout(gtx, func(gtx C) D {
		// SpaceBetween pushes the trailing icon to the far edge when the
		// item is stretched to the menu width, while keeping the natural
		// hugging width during the measure pass.
		return layout.Flex{Alignment: layout.Middle, Spacing: layout.SpaceBetween}.Layout(gtx,
			layout.Rigid(func(gtx C) D {
				return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
					layout.Rigid(func(gtx C) D {
						if !cfg.HasLeading {
							return D{}
						}
						gtx.Constraints.Min.X = gtx.Dp(leadingWidth)
						gtx.Constraints.Max.X = gtx.Constraints.Min.X
						if it.Selected == nil || !*it.Selected {
							// empty slot keeps titles aligned with checked items
							return D{Size: image.Pt(gtx.Constraints.Min.X, 0)}
						}
						return misc.Icon{Icon: checkIcon, Color: textColor, Size: unit.Dp(16)}.Layout(gtx, th)
					}),
					layout.Rigid(func(gtx C) D {
						label := material.Label(th.Theme, th.TextSize, it.Title)
						label.Color = textColor
						label.MaxLines = 1
						return label.Layout(gtx)
					}),
				)
			}),
			layout.Rigid(func(gtx C) D {
				if it.Icon == nil && it.Image == nil {
					return D{}
				}
				return layout.Inset{Left: unit.Dp(8)}.Layout(gtx, func(gtx C) D {
					return it.layoutTrailing(gtx, th, textColor)
				})
			}),
		)
	})
}

// layoutTrailing renders the vector or raster icon at the item's trailing
// edge.
func (it Item) layoutTrailing(gtx C, th *theme.Theme, textColor color.NRGBA) D {
	if it.Icon != nil {
		return misc.Icon{Icon: it.Icon, Color: textColor, Size: trailingWidth}.Layout(gtx, th)
	}
	px := gtx.Dp(trailingWidth)
	img := widget.Image{
		Src: it.Image.ImageOp(image.Pt(px, px)),
		Fit: widget.Contain,
	}
	gtx.Constraints.Min = image.Pt(px, px)
	gtx.Constraints.Max = gtx.Constraints.Min
	return img.Layout(gtx)
}

// layoutCompact renders the item as a row child: icon above a small label.
func (it Item) layoutCompact(gtx C, th *theme.Theme) D {
	textColor := it.textColor(th)

	return layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx C) D {
		return layout.Flex{Axis: layout.Vertical, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx C) D {
				if it.Icon == nil && it.Image == nil {
					return D{}
				}
				return it.layoutTrailing(gtx, th, textColor)
			}),
			layout.Rigid(func(gtx C) D {
				if it.Title == "" {
					return D{}
				}
				label := material.Label(th.Theme, th.TextSize*0.72, it.Title)
				label.Color = textColor
				label.MaxLines = 1
				return label.Layout(gtx)
			}),
		)
	})
}

func (t Title) layout(gtx C, th *theme.Theme) D {
	return titleInset.Layout(gtx, func(gtx C) D {
		label := material.Label(th.Theme, th.TextSize*0.8, t.Text)
		label.Color = misc.WithAlpha(th.Fg, th.DisabledAlpha)
		return label.Layout(gtx)
	})
}
