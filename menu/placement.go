package menu

import (
	"image"

	"gioui.org/f32"
)

// MenuPosition controls whether the menu is placed adjacent to the
// trigger button or over it.
type MenuPosition uint8

const (
	// PositionAutomatic places the menu on the side of the button with
	// more available space.
	PositionAutomatic MenuPosition = iota
	// PositionOver places the menu so that it covers the button.
	PositionOver
)

// ItemsOrder controls the visual order of entries inside the menu.
type ItemsOrder uint8

const (
	// OrderDownwards renders entries top to bottom in list order.
	OrderDownwards ItemsOrder = iota
	// OrderUpwards renders entries in reversed list order.
	OrderUpwards
	// OrderAutomatic couples the order to the resolved growth direction:
	// list order when the menu grows downwards, reversed when upwards.
	OrderAutomatic
)

// Anchoring selects the horizontal reference edge of the button the menu
// aligns to. Start and End resolve against the reading direction.
type Anchoring uint8

const (
	AnchorNone Anchoring = iota
	AnchorStart
	AnchorCenter
	AnchorEnd
)

// GrowthDirection reports whether the menu expands below or above its anchor.
type GrowthDirection uint8

const (
	GrowDown GrowthDirection = iota
	GrowUp
)

// Insets are safe-area insets in pixels, e.g. for notches or system bars.
type Insets struct {
	Top, Bottom, Left, Right int
}

// ScreenMetrics describes the viewport at placement-resolution time. It is
// read fresh on every open so device rotation between opens is respected.
type ScreenMetrics struct {
	Size   image.Point
	Insets Insets
}

// PlacementConfig bundles the per-open placement inputs. All lengths are in
// pixels, resolved from Dp by the caller.
type PlacementConfig struct {
	Position   MenuPosition
	ItemsOrder ItemsOrder
	Anchor     Anchoring
	// MenuOffset nudges the menu away from the screen center when the
	// anchor falls in the left or right third of the screen.
	MenuOffset int
	// RTL resolves AnchorStart/AnchorEnd against the reading direction.
	RTL bool
}

// ResolvedPlacement is the resolver output handed to the overlay.
type ResolvedPlacement struct {
	// Menu is the final menu rect in screen coordinates, clamped into the
	// screen bounds minus insets whenever the content size allows it.
	Menu      image.Rectangle
	Direction GrowthDirection
	// Alignment is the fractional point within the button rect from which
	// the open/close transition visually originates.
	Alignment f32.Point
}

// minMargin keeps the menu off the very edge of the usable screen area.
const minMargin = 8

// ResolvePlacement computes the menu rect, growth direction and animation
// origin for a menu of the given content size anchored to button. It is pure
// and total: degenerate geometry still yields a well formed, clamped rect.
func ResolvePlacement(button image.Rectangle, screen ScreenMetrics, cfg PlacementConfig, content image.Point) ResolvedPlacement {
	orig := button
	button = collapseAnchor(button, cfg.Anchor, cfg.RTL)

	bounds := image.Rect(
		screen.Insets.Left,
		screen.Insets.Top,
		screen.Size.X-screen.Insets.Right,
		screen.Size.Y-screen.Insets.Bottom,
	).Canon()

	spaceAbove := button.Min.Y - bounds.Min.Y
	spaceBelow := bounds.Max.Y - button.Max.Y

	var dir GrowthDirection
	switch cfg.Position {
	case PositionOver:
		// Covering the button, the menu moves downwards from the button's
		// top edge unless that leaves too little room and the space above
		// suffices.
		availDown := bounds.Max.Y - button.Min.Y
		availUp := button.Max.Y - bounds.Min.Y
		if content.Y > availDown && content.Y <= availUp {
			dir = GrowUp
		} else {
			dir = GrowDown
		}
	default:
		// Ties break downwards.
		if spaceAbove > spaceBelow {
			dir = GrowUp
		} else {
			dir = GrowDown
		}
	}

	// Vertical extent: pin the menu edge to the button edge on the chosen
	// side and clamp the height to the available space when the content
	// does not fit. A clamped menu scrolls internally.
	var top, avail int
	switch {
	case cfg.Position == PositionOver && dir == GrowDown:
		top = button.Min.Y
		avail = bounds.Max.Y - button.Min.Y
	case cfg.Position == PositionOver && dir == GrowUp:
		avail = button.Max.Y - bounds.Min.Y
	case dir == GrowDown:
		top = button.Max.Y
		avail = spaceBelow
	default:
		avail = spaceAbove
	}
	height := content.Y
	if height > avail {
		height = avail - minMargin
	}
	if height < 0 {
		height = 0
	}
	if dir == GrowUp {
		if cfg.Position == PositionOver {
			top = button.Max.Y - height
		} else {
			top = button.Min.Y - height
		}
	}

	// Horizontal extent: center on the anchor x, shift inwards to fit, then
	// nudge by the configured offset according to the thirds rule.
	width := content.X
	if max := bounds.Dx() - 2*minMargin; width > max {
		width = max
	}
	if width < 0 {
		width = 0
	}
	anchorX := (button.Min.X + button.Max.X) / 2
	left := fitHorizontally(anchorX-width/2, width, bounds)
	center := applyMenuOffset(left+width/2, screen.Size.X, cfg.MenuOffset)
	left = fitHorizontally(center-width/2, width, bounds)

	return ResolvedPlacement{
		Menu:      image.Rect(left, top, left+width, top+height),
		Direction: dir,
		Alignment: alignmentFor(orig, anchorX, cfg.Position, dir),
	}
}

// Reversed reports whether entries should be rendered in reversed list
// order for the given configured order and resolved growth direction.
func (o ItemsOrder) Reversed(dir GrowthDirection) bool {
	switch o {
	case OrderUpwards:
		return true
	case OrderAutomatic:
		return dir == GrowUp
	default:
		return false
	}
}

// collapseAnchor reduces the button to a zero-width rect at the configured
// horizontal anchor edge so all later math aligns to that edge.
func collapseAnchor(button image.Rectangle, anchor Anchoring, rtl bool) image.Rectangle {
	if anchor == AnchorNone {
		return button
	}
	var x int
	switch anchor {
	case AnchorCenter:
		x = (button.Min.X + button.Max.X) / 2
	case AnchorStart:
		if rtl {
			x = button.Max.X
		} else {
			x = button.Min.X
		}
	case AnchorEnd:
		if rtl {
			x = button.Min.X
		} else {
			x = button.Max.X
		}
	}
	button.Min.X = x
	button.Max.X = x
	return button
}

// fitHorizontally shifts a rect of the given width inwards until it lies
// within bounds, keeping the minimum margin off both edges.
func fitHorizontally(left, width int, bounds image.Rectangle) int {
	lo := bounds.Min.X + minMargin
	hi := bounds.Max.X - minMargin - width
	if hi < lo {
		hi = lo
	}
	if left < lo {
		left = lo
	}
	if left > hi {
		left = hi
	}
	return left
}

// applyMenuOffset nudges the pre-offset menu center outwards by offset when
// it falls in the left or right third of the screen. Centers in the middle
// third stay put.
func applyMenuOffset(center, screenWidth, offset int) int {
	third := screenWidth / 3
	switch {
	case center < third:
		return center - offset
	case center > screenWidth-third:
		return center + offset
	default:
		return center
	}
}

// alignmentFor picks the button edge nearest the resolved menu rect as the
// fractional transition origin.
func alignmentFor(button image.Rectangle, anchorX int, pos MenuPosition, dir GrowthDirection) f32.Point {
	ax := float32(0.5)
	if w := button.Dx(); w > 0 {
		ax = float32(anchorX-button.Min.X) / float32(w)
	}
	var ay float32
	switch {
	case pos == PositionOver && dir == GrowDown:
		ay = 0
	case pos == PositionOver && dir == GrowUp:
		ay = 1
	case dir == GrowDown:
		ay = 1
	default:
		ay = 0
	}
	return f32.Pt(ax, ay)
}
