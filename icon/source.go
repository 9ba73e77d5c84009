// Package icon loads raster icons for menu items and caches their scaled
// forms. Only the jpeg and png formats are supported.
package icon

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"

	"gioui.org/op/paint"
	"golang.org/x/image/draw"
)

// scaledCacheCapacity bounds how many scaled variants a single source keeps.
// Menus request at most a couple of sizes per icon, one per display density.
const scaledCacheCapacity = 4

// Source wraps a decodable raster icon. Scaled variants are produced on
// demand and cached per target size.
type Source struct {
	location string
	src      []byte
	srcSize  image.Point
	// the name of the registered image format, like "jpeg" or "png"
	format  string
	loadErr error

	scaled *lruCache[paint.ImageOp]
}

// FromBytes loads an icon from a bytes buffer.
func FromBytes(src []byte) *Source {
	s := &Source{location: "memory", scaled: newLruCache[paint.ImageOp](scaledCacheCapacity, nil)}
	s.loadErr = s.loadData(src)
	return s
}

// FromFile loads an icon from the local filesystem.
func FromFile(path string) *Source {
	s := &Source{location: path, scaled: newLruCache[paint.ImageOp](scaledCacheCapacity, nil)}
	buf, err := os.ReadFile(path)
	if err != nil {
		s.loadErr = err
		return s
	}
	s.loadErr = s.loadData(buf)
	return s
}

func (s *Source) loadData(src []byte) error {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(src))
	if err != nil {
		return err
	}

	s.srcSize = image.Point{X: cfg.Width, Y: cfg.Height}
	s.format = format
	s.src = src
	return nil
}

func (s *Source) Error() error {
	return s.loadErr
}

// Size returns the unscaled icon size.
func (s *Source) Size() image.Point {
	return s.srcSize
}

var emptyImg = paint.NewImageOp(image.NewUniform(color.Opaque))

// ImageOp scales the icon to fit within size, keeping the aspect ratio, and
// converts it to a Gio ImageOp. A zero size yields the unscaled icon.
func (s *Source) ImageOp(size image.Point) paint.ImageOp {
	if s.loadErr != nil {
		return emptyImg
	}

	target := s.fitSize(size)
	key := fmt.Sprintf("%dx%d", target.X, target.Y)
	if op, ok := s.scaled.Get(key); ok {
		return op
	}

	op, err := s.scale(target)
	if err != nil {
		log.Printf("scaling icon %s failed: %v", s.location, err)
		return emptyImg
	}
	s.scaled.Put(key, op)
	return op
}

// fitSize shrinks or grows the source size to fit within the requested
// bounds without distorting the aspect ratio.
func (s *Source) fitSize(size image.Point) image.Point {
	if size == (image.Point{}) || s.srcSize.X == 0 || s.srcSize.Y == 0 {
		return s.srcSize
	}
	ratio := min(
		float32(size.X)/float32(s.srcSize.X),
		float32(size.Y)/float32(s.srcSize.Y),
	)
	return image.Point{
		X: int(float32(s.srcSize.X) * ratio),
		Y: int(float32(s.srcSize.Y) * ratio),
	}
}

func (s *Source) scale(size image.Point) (paint.ImageOp, error) {
	srcImg, _, err := image.Decode(bytes.NewReader(s.src))
	if err != nil {
		return paint.ImageOp{}, err
	}

	dest := image.NewRGBA(image.Rectangle{Max: size})
	draw.CatmullRom.Scale(dest, dest.Bounds(), srcImg, srcImg.Bounds(), draw.Src, nil)
	return paint.NewImageOp(dest), nil
}
