package iconcloud

import (
	"errors"
	"image"
	"image/color"
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/stat"
)

var ErrEmptyPalette = errors.New("empty palette")

type Orientation int

const (
	Upright Orientation = iota
	// Rotated words run bottom to top, turned 90 degrees.
	Rotated
)

func (o Orientation) String() string {
	if o == Rotated {
		return "rotated"
	}
	return "upright"
}

// Placement describes one word as the renderer places it.
type Placement struct {
	Word        string
	FontSize    int
	Position    image.Point
	Bounds      image.Rectangle
	Orientation Orientation
	// Rand is the renderer's random source. Nil means the color function
	// uses its own.
	Rand *rand.Rand
}

// ColorFunc picks the fill color of a placed word. Renderers call it once
// per word, in placement order.
type ColorFunc interface {
	WordColor(p Placement) color.RGBA
}

// Colorizer picks a uniformly random color from a fixed palette for
// each word, ignoring where and how the word is drawn. Two colorizers
// built from the same palette and seed yield the same sequence.
// A Colorizer is not safe for concurrent use.
type Colorizer struct {
	palette []color.RGBA
	rng     *rand.Rand
}

func NewColorizer(colors []colorful.Color, seed uint64) (*Colorizer, error) {
	if len(colors) == 0 {
		return nil, ErrEmptyPalette
	}
	pal := make([]color.RGBA, len(colors))
	for i, c := range colors {
		r, g, b := c.Clamped().RGB255()
		pal[i] = color.RGBA{r, g, b, 255}
	}
	return &Colorizer{
		palette: pal,
		rng:     rand.New(rand.NewPCG(seed, seed)),
	}, nil
}

func (cz *Colorizer) WordColor(p Placement) color.RGBA {
	rng := cz.rng
	if p.Rand != nil {
		rng = p.Rand
	}
	return cz.palette[rng.IntN(len(cz.palette))]
}

// Palette returns the active colors.
func (cz *Colorizer) Palette() []color.RGBA {
	return append([]color.RGBA(nil), cz.palette...)
}

// ImageSampler colors words from an image by position, which is how a
// gradient-colored mask is turned into word colors.
type ImageSampler struct {
	img *image.NRGBA
}

func NewImageSampler(img *image.NRGBA) *ImageSampler {
	return &ImageSampler{img: img}
}

// ColorAt returns the color at (x, y). Points outside the image are
// clamped to its border.
func (s *ImageSampler) ColorAt(x, y int) color.RGBA {
	b := s.img.Bounds()
	x = max(b.Min.X, min(b.Max.X-1, x))
	y = max(b.Min.Y, min(b.Max.Y-1, y))
	c := s.img.NRGBAAt(x, y)
	return color.RGBA{c.R, c.G, c.B, 255}
}

// RegionColor returns the mean color of the image over r.
func (s *ImageSampler) RegionColor(r image.Rectangle) color.RGBA {
	r = r.Intersect(s.img.Bounds())
	if r.Empty() {
		return s.ColorAt(r.Min.X, r.Min.Y)
	}
	n := r.Dx() * r.Dy()
	rs, gs, bs := make([]float64, 0, n), make([]float64, 0, n), make([]float64, 0, n)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := s.img.NRGBAAt(x, y)
			rs = append(rs, float64(c.R))
			gs = append(gs, float64(c.G))
			bs = append(bs, float64(c.B))
		}
	}
	return color.RGBA{
		uint8(max(0, min(255, stat.Mean(rs, nil)))),
		uint8(max(0, min(255, stat.Mean(gs, nil)))),
		uint8(max(0, min(255, stat.Mean(bs, nil)))),
		255,
	}
}

// WordColor averages over the word's bounds when known, and samples its
// position otherwise.
func (s *ImageSampler) WordColor(p Placement) color.RGBA {
	if !p.Bounds.Empty() {
		return s.RegionColor(p.Bounds)
	}
	return s.ColorAt(p.Position.X, p.Position.Y)
}
