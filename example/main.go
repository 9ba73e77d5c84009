package main

import (
	"fmt"
	"image/color"
	"os"

	"github.com/oligo/pulldown/menu"
	"github.com/oligo/pulldown/misc"
	"github.com/oligo/pulldown/theme"

	"gioui.org/app"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"golang.org/x/exp/shiny/materialdesign/icons"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

var (
	copyIcon, _   = widget.NewIcon(icons.ContentContentCopy)
	pasteIcon, _  = widget.NewIcon(icons.ContentContentPaste)
	cutIcon, _    = widget.NewIcon(icons.ContentContentCut)
	deleteIcon, _ = widget.NewIcon(icons.ActionDelete)
	shareIcon, _  = widget.NewIcon(icons.SocialShare)
)

type UI struct {
	window  *app.Window
	theme   *theme.Theme
	overlay *menu.Overlay

	fileBtn *menu.Button
	sizeBtn *menu.Button
	moreBtn *menu.Button

	sizeIdx    int
	lastAction string
}

func newUI(w *app.Window, th *theme.Theme) *UI {
	ui := &UI{
		window:  w,
		theme:   th,
		overlay: menu.NewOverlay(),
		sizeIdx: 1,
	}

	ui.fileBtn = menu.NewButton(ui.overlay, ui.fileItems)
	ui.fileBtn.OnCanceled = func() { ui.lastAction = "canceled" }

	// a selectable menu growing from the button's trailing edge
	ui.sizeBtn = menu.NewButton(ui.overlay, ui.sizeItems)
	ui.sizeBtn.Anchor = menu.AnchorEnd
	ui.sizeBtn.ItemsOrder = menu.OrderAutomatic

	ui.moreBtn = menu.NewButton(ui.overlay, ui.moreItems)
	ui.moreBtn.Position = menu.PositionOver
	ui.moreBtn.ButtonBuilder = func(gtx C, th *theme.Theme, state menu.State, button layout.Widget) D {
		borderColor := misc.WithAlpha(th.ContrastBg, 0xb6)
		if state == menu.StateOpened {
			borderColor = th.ContrastBg
		}
		return widget.Border{
			Color:        borderColor,
			Width:        unit.Dp(1),
			CornerRadius: unit.Dp(4),
		}.Layout(gtx, button)
	}

	return ui
}

func (ui *UI) fileItems(gtx C) []menu.Entry {
	return []menu.Entry{
		menu.Row{Items: []menu.Item{
			{Title: "Cut", Icon: cutIcon, OnTap: ui.record("cut")},
			{Title: "Copy", Icon: copyIcon, OnTap: ui.record("copy")},
			{Title: "Paste", Icon: pasteIcon, OnTap: ui.record("paste")},
		}},
		menu.LargeDivider{},
		menu.Item{Title: "Share...", Icon: shareIcon, OnTap: ui.record("share")},
		menu.Item{Title: "Rename", Disabled: true},
		menu.Divider{},
		menu.Item{Title: "Delete", Icon: deleteIcon, Destructive: true, OnTap: ui.record("delete")},
	}
}

func (ui *UI) sizeItems(gtx C) []menu.Entry {
	sizes := []string{"Small", "Medium", "Large"}
	entries := []menu.Entry{menu.Title{Text: "Thumbnail size"}}
	for i, name := range sizes {
		i := i
		selected := ui.sizeIdx == i
		entries = append(entries, menu.Item{
			Title:    name,
			Selected: &selected,
			OnTap: func() {
				ui.sizeIdx = i
				ui.lastAction = "size: " + name
			},
		})
	}
	return entries
}

func (ui *UI) moreItems(gtx C) []menu.Entry {
	return []menu.Entry{
		menu.Item{Title: "Select All", OnTap: ui.record("select all")},
		menu.Item{Title: "Sort By Name", OnTap: ui.record("sort")},
	}
}

func (ui *UI) record(action string) func() {
	return func() { ui.lastAction = action }
}

func (ui *UI) Loop() error {
	var ops op.Ops
	for {
		e := ui.window.NextEvent()

		switch e := e.(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			ui.layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

func (ui *UI) layout(gtx C) D {
	return layout.Stack{}.Layout(gtx,
		layout.Expanded(func(gtx C) D {
			return ui.layoutContent(gtx)
		}),
		// the overlay goes last so menus draw above everything and resolve
		// placement against the whole window
		layout.Expanded(func(gtx C) D {
			return ui.overlay.Layout(gtx, ui.theme)
		}),
	)
}

func (ui *UI) layoutContent(gtx C) D {
	th := ui.theme
	return layout.UniformInset(unit.Dp(12)).Layout(gtx, func(gtx C) D {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(func(gtx C) D {
				return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
					layout.Rigid(func(gtx C) D {
						return ui.fileBtn.Layout(gtx, th, ui.btnLabel("File"))
					}),
					layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
					layout.Rigid(func(gtx C) D {
						return ui.sizeBtn.Layout(gtx, th, ui.btnLabel("Size"))
					}),
					layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
					layout.Rigid(func(gtx C) D {
						return ui.moreBtn.Layout(gtx, th, ui.btnLabel("More"))
					}),
				)
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(16)}.Layout),
			layout.Rigid(func(gtx C) D {
				label := material.Label(th.Theme, th.TextSize, fmt.Sprintf("last action: %s", ui.lastAction))
				label.Color = misc.WithAlpha(th.Fg, 0xb6)
				return label.Layout(gtx)
			}),
		)
	})
}

func (ui *UI) btnLabel(text string) layout.Widget {
	return func(gtx C) D {
		return layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx C) D {
			return material.Label(ui.theme.Theme, ui.theme.TextSize, text).Layout(gtx)
		})
	}
}

func main() {
	go func() {
		w := app.NewWindow(app.Title("pulldown example"))
		th := theme.NewTheme("", nil, false)
		th.TextSize = unit.Sp(14)
		th.Bg2 = color.NRGBA{R: 240, G: 240, B: 244, A: 255}

		ui := newUI(w, th)
		if err := ui.Loop(); err != nil {
			os.Exit(1)
		}
		os.Exit(0)
	}()

	app.Main()
}
