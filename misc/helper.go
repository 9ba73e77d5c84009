package misc

import (
	"image"
	"image/color"

	"github.com/oligo/pulldown/theme"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

// Icon renders a vector icon with a color and size.
type Icon struct {
	Icon  *widget.Icon
	Color color.NRGBA
	// Size of the icon. If unset, 18dp is used.
	Size unit.Dp
}

func (i Icon) Layout(gtx C, th *theme.Theme) D {
	size := i.Size
	if size <= 0 {
		size = unit.Dp(18)
	}
	c := i.Color
	if c == (color.NRGBA{}) {
		c = th.Fg
	}

	px := gtx.Dp(size)
	gtx.Constraints.Min = image.Pt(px, px)
	gtx.Constraints.Max = gtx.Constraints.Min
	return i.Icon.Layout(gtx, c)
}

// DividerStyle draws a hairline along the cross axis.
type DividerStyle struct {
	Axis      layout.Axis
	Thickness unit.Dp
}

func Divider(axis layout.Axis, thickness unit.Dp) DividerStyle {
	return DividerStyle{Axis: axis, Thickness: thickness}
}

func (d DividerStyle) Layout(gtx C, th *theme.Theme) D {
	thickness := gtx.Dp(d.Thickness)
	var size image.Point
	if d.Axis == layout.Horizontal {
		size = image.Pt(gtx.Constraints.Min.X, thickness)
	} else {
		size = image.Pt(thickness, gtx.Constraints.Min.Y)
	}

	defer clip.Rect(image.Rectangle{Max: size}).Push(gtx.Ops).Pop()
	paint.ColorOp{Color: WithAlpha(th.Fg, th.HoverAlpha)}.Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)
	return D{Size: size}
}
