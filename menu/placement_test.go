package menu

import (
	"image"
	"testing"
)

func TestResolvePlacementContainment(t *testing.T) {
	screen := ScreenMetrics{
		Size:   image.Pt(400, 800),
		Insets: Insets{Top: 24, Bottom: 16},
	}

	buttons := []image.Rectangle{
		image.Rect(0, 24, 40, 64),
		image.Rect(360, 24, 400, 64),
		image.Rect(180, 380, 220, 420),
		image.Rect(100, 700, 200, 740),
		image.Rect(0, 744, 400, 784),
	}
	sizes := []image.Point{
		image.Pt(180, 100),
		image.Pt(280, 400),
		image.Pt(280, 2000), // taller than the screen
	}
	configs := []PlacementConfig{
		{},
		{Position: PositionOver},
		{Anchor: AnchorStart, MenuOffset: 16},
		{Anchor: AnchorEnd, MenuOffset: 16, RTL: true},
		{Anchor: AnchorCenter, MenuOffset: 100},
	}

	bounds := image.Rect(0, 24, 400, 784)
	for _, button := range buttons {
		for _, size := range sizes {
			for _, cfg := range configs {
				placed := ResolvePlacement(button, screen, cfg, size)
				if placed.Menu != placed.Menu.Canon() {
					t.Fatalf("placement %v is not well formed", placed.Menu)
				}
				if !placed.Menu.In(bounds) && placed.Menu.Dy() > 0 {
					t.Errorf("button %v size %v cfg %+v: menu %v escapes %v",
						button, size, cfg, placed.Menu, bounds)
				}
			}
		}
	}
}

func TestResolvePlacementDirection(t *testing.T) {
	screen := ScreenMetrics{Size: image.Pt(400, 800)}
	content := image.Pt(200, 100)

	cases := []struct {
		name   string
		button image.Rectangle
		cfg    PlacementConfig
		want   GrowthDirection
	}{
		{
			name:   "more space below",
			button: image.Rect(100, 100, 200, 140),
			want:   GrowDown,
		},
		{
			name:   "more space above",
			button: image.Rect(100, 700, 200, 740),
			want:   GrowUp,
		},
		{
			// equal space above and below breaks ties downwards
			name:   "tie breaks down",
			button: image.Rect(100, 380, 200, 420),
			want:   GrowDown,
		},
		{
			name:   "over prefers down",
			button: image.Rect(100, 380, 200, 420),
			cfg:    PlacementConfig{Position: PositionOver},
			want:   GrowDown,
		},
		{
			name:   "over flips up when only the top fits",
			button: image.Rect(100, 740, 200, 780),
			cfg:    PlacementConfig{Position: PositionOver},
			want:   GrowUp,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			placed := ResolvePlacement(tc.button, screen, tc.cfg, content)
			if placed.Direction != tc.want {
				t.Errorf("direction = %v, want %v", placed.Direction, tc.want)
			}
		})
	}
}

func TestResolvePlacementVerticalExtent(t *testing.T) {
	screen := ScreenMetrics{Size: image.Pt(400, 800)}
	button := image.Rect(100, 100, 200, 140)

	placed := ResolvePlacement(button, screen, PlacementConfig{}, image.Pt(200, 300))
	if got := placed.Menu.Min.Y; got != button.Max.Y {
		t.Errorf("menu top = %d, want pinned to button bottom %d", got, button.Max.Y)
	}
	if got := placed.Menu.Dy(); got != 300 {
		t.Errorf("menu height = %d, want 300", got)
	}

	// content taller than the space below gets clamped and scrolls
	placed = ResolvePlacement(button, screen, PlacementConfig{}, image.Pt(200, 2000))
	if got, want := placed.Menu.Dy(), 800-140-minMargin; got != want {
		t.Errorf("clamped height = %d, want %d", got, want)
	}

	placed = ResolvePlacement(image.Rect(100, 700, 200, 740), screen, PlacementConfig{}, image.Pt(200, 300))
	if got := placed.Menu.Max.Y; got != 700 {
		t.Errorf("menu bottom = %d, want pinned to button top 700", got)
	}
}

func TestApplyMenuOffset(t *testing.T) {
	cases := []struct {
		center int
		want   int
	}{
		{center: 30, want: 14},   // left third shifts left
		{center: 150, want: 150}, // center third stays
		{center: 270, want: 286}, // right third shifts right
	}

	for _, tc := range cases {
		if got := applyMenuOffset(tc.center, 300, 16); got != tc.want {
			t.Errorf("applyMenuOffset(%d) = %d, want %d", tc.center, got, tc.want)
		}
	}
}

func TestCollapseAnchor(t *testing.T) {
	button := image.Rect(100, 0, 200, 40)

	cases := []struct {
		name   string
		anchor Anchoring
		rtl    bool
		wantX  int
	}{
		{name: "start ltr", anchor: AnchorStart, wantX: 100},
		{name: "start rtl", anchor: AnchorStart, rtl: true, wantX: 200},
		{name: "end ltr", anchor: AnchorEnd, wantX: 200},
		{name: "end rtl", anchor: AnchorEnd, rtl: true, wantX: 100},
		{name: "center", anchor: AnchorCenter, wantX: 150},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := collapseAnchor(button, tc.anchor, tc.rtl)
			if got.Min.X != tc.wantX || got.Max.X != tc.wantX {
				t.Errorf("collapsed to [%d, %d], want zero width at %d", got.Min.X, got.Max.X, tc.wantX)
			}
			if got.Min.Y != button.Min.Y || got.Max.Y != button.Max.Y {
				t.Error("vertical extent must be preserved")
			}
		})
	}

	if got := collapseAnchor(button, AnchorNone, false); got != button {
		t.Errorf("AnchorNone must not modify the rect, got %v", got)
	}
}

func TestItemsOrderReversed(t *testing.T) {
	cases := []struct {
		order ItemsOrder
		dir   GrowthDirection
		want  bool
	}{
		{OrderDownwards, GrowDown, false},
		{OrderDownwards, GrowUp, false},
		{OrderUpwards, GrowDown, true},
		{OrderUpwards, GrowUp, true},
		{OrderAutomatic, GrowDown, false},
		{OrderAutomatic, GrowUp, true},
	}

	for _, tc := range cases {
		if got := tc.order.Reversed(tc.dir); got != tc.want {
			t.Errorf("order %v dir %v: reversed = %v, want %v", tc.order, tc.dir, got, tc.want)
		}
	}
}

// Five 40px items on a 400x800 screen with the button near the bottom: the
// menu must grow upwards off the button's top edge and automatic ordering
// must flip the items.
func TestResolvePlacementBottomButton(t *testing.T) {
	button := image.Rect(100, 700, 200, 740)
	screen := ScreenMetrics{Size: image.Pt(400, 800)}
	cfg := PlacementConfig{ItemsOrder: OrderAutomatic, MenuOffset: 16}

	placed := ResolvePlacement(button, screen, cfg, image.Pt(250, 200))
	if placed.Direction != GrowUp {
		t.Fatalf("direction = %v, want %v", placed.Direction, GrowUp)
	}
	if placed.Menu.Max.Y != button.Min.Y {
		t.Errorf("menu bottom = %d, want %d", placed.Menu.Max.Y, button.Min.Y)
	}
	if placed.Menu.Dy() != 200 {
		t.Errorf("menu height = %d, want 200", placed.Menu.Dy())
	}
	if !cfg.ItemsOrder.Reversed(placed.Direction) {
		t.Error("automatic order must render reversed when growing upwards")
	}
	if placed.Alignment.Y != 0 {
		t.Errorf("alignment y = %v, want the button's top edge", placed.Alignment.Y)
	}
}

func TestResolvePlacementAlignment(t *testing.T) {
	screen := ScreenMetrics{Size: image.Pt(400, 800)}
	button := image.Rect(100, 100, 200, 140)
	content := image.Pt(200, 100)

	cases := []struct {
		name  string
		cfg   PlacementConfig
		wantX float32
		wantY float32
	}{
		{name: "unanchored", wantX: 0.5, wantY: 1},
		{name: "start edge", cfg: PlacementConfig{Anchor: AnchorStart}, wantX: 0, wantY: 1},
		{name: "end edge", cfg: PlacementConfig{Anchor: AnchorEnd}, wantX: 1, wantY: 1},
		{name: "over", cfg: PlacementConfig{Position: PositionOver}, wantX: 0.5, wantY: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			placed := ResolvePlacement(button, screen, tc.cfg, content)
			if placed.Alignment.X != tc.wantX || placed.Alignment.Y != tc.wantY {
				t.Errorf("alignment = %v, want (%v, %v)", placed.Alignment, tc.wantX, tc.wantY)
			}
		})
	}
}

func TestResolvePlacementDegenerate(t *testing.T) {
	// zero sized screen and an off-screen button must still produce a well
	// formed rect
	placed := ResolvePlacement(
		image.Rect(-100, -100, -50, -80),
		ScreenMetrics{},
		PlacementConfig{MenuOffset: 16},
		image.Pt(200, 300),
	)
	if placed.Menu != placed.Menu.Canon() {
		t.Errorf("menu rect %v is not well formed", placed.Menu)
	}
	if placed.Menu.Dy() < 0 || placed.Menu.Dx() < 0 {
		t.Errorf("menu rect %v has negative extent", placed.Menu)
	}
}
