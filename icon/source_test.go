package icon

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 0x33, G: 0x66, B: 0x99, A: 0xff})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestFromBytes(t *testing.T) {
	s := FromBytes(pngBytes(t, 64, 32))
	if s.Error() != nil {
		t.Fatalf("unexpected load error: %v", s.Error())
	}
	if got := s.Size(); got != image.Pt(64, 32) {
		t.Errorf("size = %v, want 64x32", got)
	}
	if s.format != "png" {
		t.Errorf("format = %q, want png", s.format)
	}
}

func TestFromBytesInvalid(t *testing.T) {
	s := FromBytes([]byte("not an image"))
	if s.Error() == nil {
		t.Fatal("expected a load error")
	}
	// a broken source still yields a usable placeholder op
	op := s.ImageOp(image.Pt(20, 20))
	if op != emptyImg {
		t.Error("broken source must return the empty placeholder")
	}
}

func TestFitSizeKeepsAspectRatio(t *testing.T) {
	s := FromBytes(pngBytes(t, 64, 32))

	cases := []struct {
		bounds image.Point
		want   image.Point
	}{
		{bounds: image.Pt(32, 32), want: image.Pt(32, 16)},
		{bounds: image.Pt(128, 128), want: image.Pt(128, 64)},
		{bounds: image.Point{}, want: image.Pt(64, 32)},
	}
	for _, tc := range cases {
		if got := s.fitSize(tc.bounds); got != tc.want {
			t.Errorf("fitSize(%v) = %v, want %v", tc.bounds, got, tc.want)
		}
	}
}

func TestImageOpCachesScaledVariants(t *testing.T) {
	s := FromBytes(pngBytes(t, 64, 64))

	op1 := s.ImageOp(image.Pt(20, 20))
	op2 := s.ImageOp(image.Pt(20, 20))
	if op1 != op2 {
		t.Error("repeated requests of one size must hit the cache")
	}
	if s.scaled.Len() != 1 {
		t.Errorf("cache holds %d entries, want 1", s.scaled.Len())
	}

	s.ImageOp(image.Pt(40, 40))
	if s.scaled.Len() != 2 {
		t.Errorf("cache holds %d entries, want 2", s.scaled.Len())
	}
}

func TestLruCacheEviction(t *testing.T) {
	var evicted []string
	lru := newLruCache[int](2, func(key string, val int) {
		evicted = append(evicted, key)
	})

	lru.Put("a", 1)
	lru.Put("b", 2)
	// touching a makes b the eviction candidate
	lru.Get("a")
	lru.Put("c", 3)

	if len(evicted) != 1 || evicted[0] != "b" {
		t.Errorf("evicted = %v, want [b]", evicted)
	}
	if _, ok := lru.Get("b"); ok {
		t.Error("b must be gone")
	}
	if v, ok := lru.Get("a"); !ok || v != 1 {
		t.Error("a must survive the eviction")
	}
}
