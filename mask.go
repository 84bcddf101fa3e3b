package iconcloud

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io/fs"

	"github.com/disintegration/imaging"
)

var (
	ErrIconFileMissing = errors.New("icon bitmap missing")
	ErrSizeMismatch    = errors.New("image sizes differ")
)

// White is the mask background. Only pixels at 255 on every color
// channel are treated as background; antialiased edges blended toward
// white still count as icon. Alpha is not consulted, so an inverted
// mask keeps its glyph, now (255,255,255,0), as background.
var White = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// IsBackground reports whether c is pure white, ignoring alpha.
func IsBackground(c color.NRGBA) bool {
	return c.R == 255 && c.G == 255 && c.B == 255
}

// LoadMask reads the icon bitmap at path and builds a mask of the given
// canvas size. The bitmap is flattened onto opaque white using its own
// alpha, then pasted at the floor-centered offset of a white canvas.
// With invert set, every channel of every pixel is complemented.
func LoadMask(path string, size image.Point, invert bool) (*image.NRGBA, error) {
	if size.X <= 0 || size.Y <= 0 {
		return nil, fmt.Errorf("invalid canvas size %v", size)
	}
	icon, err := imaging.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrIconFileMissing, path)
		}
		return nil, fmt.Errorf("decoding icon bitmap %s: %w", path, err)
	}
	mask := ComposeMask(icon, size)
	if invert {
		InvertMask(mask)
	}
	tracer().Debugf("mask %v from %s (invert=%v)", size, path, invert)
	return mask, nil
}

// ComposeMask centers icon on a white canvas of the given size. Any
// transparency in icon is alpha-blended against white first.
func ComposeMask(icon image.Image, size image.Point) *image.NRGBA {
	ib := icon.Bounds()
	flat := imaging.New(ib.Dx(), ib.Dy(), White)
	flat = imaging.Overlay(flat, icon, image.Point{}, 1.0)

	canvas := imaging.New(size.X, size.Y, White)
	return imaging.Paste(canvas, flat, CenterOffset(size, ib.Size()))
}

// CenterOffset returns the top-left position that centers an inner box
// within an outer one, rounding down.
func CenterOffset(outer, inner image.Point) image.Point {
	return image.Pt((outer.X-inner.X)/2, (outer.Y-inner.Y)/2)
}

// InvertMask replaces every channel value v of m, alpha included, with
// 255-v. Applying it twice restores the original.
func InvertMask(m *image.NRGBA) {
	for y := range m.Rect.Dy() {
		row := m.Pix[y*m.Stride : y*m.Stride+m.Rect.Dx()*4]
		for i := range row {
			row[i] = 255 - row[i]
		}
	}
}

// MaskBounds returns the smallest rectangle containing every
// non-background pixel of m. It is empty if m is all background.
func MaskBounds(m *image.NRGBA) image.Rectangle {
	var r image.Rectangle
	b := m.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if IsBackground(m.NRGBAAt(x, y)) {
				continue
			}
			r = r.Union(image.Rect(x, y, x+1, y+1))
		}
	}
	return r
}
