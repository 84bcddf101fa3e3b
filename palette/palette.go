package palette

import (
	"fmt"
	"slices"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'iconcloud.palette'
func tracer() tracing.Trace {
	return tracing.Select("iconcloud.palette")
}

type Kind int

const (
	Qualitative Kind = iota
	Sequential
	Diverging
)

func (k Kind) String() string {
	switch k {
	case Sequential:
		return "sequential"
	case Diverging:
		return "diverging"
	default:
		return "qualitative"
	}
}

// Palette is an ordered, non-empty list of colors. It doubles as a
// continuous colormap through At.
type Palette struct {
	Name   string
	Kind   Kind
	colors []colorful.Color
}

// New creates a palette from colors. The slice is copied.
func New(name string, kind Kind, colors []colorful.Color) (*Palette, error) {
	if len(colors) == 0 {
		return nil, fmt.Errorf("palette %q has no colors", name)
	}
	return &Palette{Name: name, Kind: kind, colors: slices.Clone(colors)}, nil
}

// FromHex creates a palette from hex color strings.
func FromHex(name string, kind Kind, hex ...string) (*Palette, error) {
	colors := make([]colorful.Color, 0, len(hex))
	for _, h := range hex {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("palette %q: %w", name, err)
		}
		colors = append(colors, c)
	}
	return New(name, kind, colors)
}

func (p *Palette) Len() int {
	return len(p.colors)
}

// Colors returns a copy of the discrete colors.
func (p *Palette) Colors() []colorful.Color {
	return slices.Clone(p.colors)
}

// At samples the palette as a continuous colormap. The discrete colors
// sit at evenly spaced positions on [0,1] and are linearly interpolated
// in RGB. t is clamped to [0,1].
func (p *Palette) At(t float64) colorful.Color {
	n := len(p.colors)
	if n == 1 || t <= 0 {
		return p.colors[0]
	}
	if t >= 1 {
		return p.colors[n-1]
	}
	pos := t * float64(n-1)
	i := int(pos)
	if i >= n-1 {
		return p.colors[n-1]
	}
	return p.colors[i].BlendRgb(p.colors[i+1], pos-float64(i))
}

// Reversed returns a copy of p with the color order reversed and "_r"
// appended to its name.
func (p *Palette) Reversed() *Palette {
	colors := slices.Clone(p.colors)
	slices.Reverse(colors)
	return &Palette{Name: p.Name + "_r", Kind: p.Kind, colors: colors}
}

// RGB255 returns the discrete colors as 0-255 triples.
func (p *Palette) RGB255() [][3]uint8 {
	out := make([][3]uint8, len(p.colors))
	for i, c := range p.colors {
		r, g, b := c.Clamped().RGB255()
		out[i] = [3]uint8{r, g, b}
	}
	return out
}
