package iconcloud

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/floats"
)

var ErrUnknownDirection = errors.New("unknown gradient direction")

type Direction int

const (
	NoGradient Direction = iota
	Horizontal
	Vertical
)

func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return ""
	}
}

// ParseDirection maps "horizontal" and "vertical" to a Direction. The
// empty string means no gradient.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return NoGradient, nil
	case "horizontal":
		return Horizontal, nil
	case "vertical":
		return Vertical, nil
	}
	return NoGradient, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// Colormap maps a position in [0,1] to a color.
type Colormap func(t float64) colorful.Color

// SampleColormap samples cmap at n evenly spaced positions over [0,1].
// Channels are scaled to [0,255] and truncated.
func SampleColormap(n int, cmap Colormap) []color.NRGBA {
	if n <= 0 {
		return nil
	}
	ts := []float64{0}
	if n > 1 {
		ts = floats.Span(make([]float64, n), 0, 1)
		// Span accumulates steps; pin the last sample to the colormap end.
		ts[n-1] = 1
	}
	out := make([]color.NRGBA, n)
	for i, t := range ts {
		c := cmap(t)
		out[i] = color.NRGBA{
			uint8(max(0, min(255, c.R*255))),
			uint8(max(0, min(255, c.G*255))),
			uint8(max(0, min(255, c.B*255))),
			255,
		}
	}
	return out
}

// NewGradient fills a canvas of the given size with cmap sampled along
// the x axis (Horizontal) or the y axis (Vertical). The vertical form
// is the transpose of a horizontal gradient.
func NewGradient(size image.Point, cmap Colormap, dir Direction) (*image.NRGBA, error) {
	switch dir {
	case Horizontal:
		return horizontalGradient(size.X, size.Y, cmap), nil
	case Vertical:
		return imaging.Transpose(horizontalGradient(size.Y, size.X, cmap)), nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownDirection, dir)
}

func horizontalGradient(w, h int, cmap Colormap) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	if w <= 0 || h <= 0 {
		return img
	}
	line := SampleColormap(w, cmap)
	row := img.Pix[:w*4]
	for x, c := range line {
		row[x*4+0] = c.R
		row[x*4+1] = c.G
		row[x*4+2] = c.B
		row[x*4+3] = c.A
	}
	for y := 1; y < h; y++ {
		copy(img.Pix[y*img.Stride:], row)
	}
	return img
}

// ApplyGradient returns a copy of mask in which every non-background
// pixel takes the gradient color at the same position. Background
// pixels are left as they are.
func ApplyGradient(mask, gradient *image.NRGBA) (*image.NRGBA, error) {
	mb, gb := mask.Bounds(), gradient.Bounds()
	if mb.Size() != gb.Size() {
		return nil, fmt.Errorf("%w: mask %v, gradient %v", ErrSizeMismatch, mb.Size(), gb.Size())
	}
	out := imaging.Clone(mask)
	for y := range mb.Dy() {
		for x := range mb.Dx() {
			i := out.PixOffset(x, y)
			if IsBackground(color.NRGBA{out.Pix[i], out.Pix[i+1], out.Pix[i+2], out.Pix[i+3]}) {
				continue
			}
			out.SetNRGBA(x, y, gradient.NRGBAAt(gb.Min.X+x, gb.Min.Y+y))
		}
	}
	return out, nil
}
