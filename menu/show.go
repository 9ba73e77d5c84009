package menu

import (
	"image"

	"github.com/oligo/pulldown/locale"

	"gioui.org/unit"
	"gioui.org/widget"
)

// ShowOptions configures a standalone menu presentation. The zero value
// uses automatic placement, downwards item order, no anchoring and the
// default menu offset.
type ShowOptions struct {
	Position   MenuPosition
	ItemsOrder ItemsOrder
	Anchor     Anchoring
	// MenuOffset defaults to DefaultMenuOffset when zero. A negative value
	// requests no offset at all.
	MenuOffset unit.Dp
	RTL        bool
	Scroll     *widget.List
	Barrier    string
	OnCanceled func()
}

// Show presents a pull-down menu anchored to rect, given in window
// coordinates, without a dedicated trigger button. It reports whether the
// menu was presented: an empty entry list or a busy overlay is a silent
// no-op.
func Show(gtx C, ov *Overlay, rect image.Rectangle, entries []Entry, opts ShowOptions) bool {
	if ov == nil || len(entries) == 0 {
		return false
	}
	switch {
	case opts.MenuOffset == 0:
		opts.MenuOffset = DefaultMenuOffset
	case opts.MenuOffset < 0:
		opts.MenuOffset = 0
	}
	barrier := opts.Barrier
	if barrier == "" {
		barrier = locale.BarrierLabel()
	}

	s := &session{
		anchor:     rect,
		hasAnchor:  true,
		position:   opts.Position,
		itemsOrder: opts.ItemsOrder,
		anchoring:  opts.Anchor,
		menuOffset: opts.MenuOffset,
		rtl:        opts.RTL,
		body:       newMenu(entries, RenderConfig{HasLeading: hasLeading(entries)}, opts.Scroll),
		barrier:    barrier,
		resolve: func(gtx C, action func()) {
			if action != nil {
				action()
			} else if opts.OnCanceled != nil {
				opts.OnCanceled()
			}
		},
	}
	return ov.show(gtx, s)
}
