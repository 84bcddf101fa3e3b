package iconcloud

import (
	"errors"
	"image"
	"image/color"
	"math/rand/v2"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var redGreen = []colorful.Color{{R: 1}, {G: 1}}

func sequence(cz *Colorizer, n int) []color.RGBA {
	out := make([]color.RGBA, n)
	for i := range out {
		out[i] = cz.WordColor(Placement{Word: "w", FontSize: 10 + i, Position: image.Pt(i, 2*i), Orientation: Orientation(i % 2)})
	}
	return out
}

func TestColorizerDeterministic(t *testing.T) {
	a, err := NewColorizer(redGreen, 42)
	require.NoError(t, err)
	b, err := NewColorizer(redGreen, 42)
	require.NoError(t, err)

	first := sequence(a, 3)
	assert.Equal(t, first, sequence(b, 3))

	allowed := []color.RGBA{{255, 0, 0, 255}, {0, 255, 0, 255}}
	for _, c := range first {
		assert.Contains(t, allowed, c)
	}
	assert.Equal(t, allowed, a.Palette())
}

func TestColorizerUsesBothColors(t *testing.T) {
	cz, err := NewColorizer(redGreen, 7)
	require.NoError(t, err)
	seen := map[color.RGBA]bool{}
	for _, c := range sequence(cz, 200) {
		seen[c] = true
	}
	assert.Len(t, seen, 2)
}

func TestColorizerSeedsDiffer(t *testing.T) {
	pal := make([]colorful.Color, 16)
	for i := range pal {
		pal[i] = colorful.Hsv(float64(i)*22.5, 1, 1)
	}
	a, err := NewColorizer(pal, 1)
	require.NoError(t, err)
	b, err := NewColorizer(pal, 2)
	require.NoError(t, err)
	assert.NotEqual(t, sequence(a, 32), sequence(b, 32))
}

func TestColorizerPrefersRendererRand(t *testing.T) {
	cz, err := NewColorizer(redGreen, 42)
	require.NoError(t, err)
	r1 := rand.New(rand.NewPCG(9, 9))
	r2 := rand.New(rand.NewPCG(9, 9))
	for range 10 {
		assert.Equal(t,
			cz.WordColor(Placement{Rand: r1}),
			cz.WordColor(Placement{Word: "other", Rand: r2}))
	}
}

func TestColorIgnoresOrientation(t *testing.T) {
	a, err := NewColorizer(redGreen, 5)
	require.NoError(t, err)
	b, err := NewColorizer(redGreen, 5)
	require.NoError(t, err)
	for i := range 20 {
		assert.Equal(t,
			a.WordColor(Placement{Word: "w", Orientation: Upright}),
			b.WordColor(Placement{Word: "w", Orientation: Rotated}), "word %d", i)
	}

	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	img.SetNRGBA(1, 2, color.NRGBA{10, 20, 30, 255})
	s := NewImageSampler(img)
	box := image.Rect(1, 2, 2, 3)
	assert.Equal(t,
		s.WordColor(Placement{Bounds: box, Orientation: Upright}),
		s.WordColor(Placement{Bounds: box, Orientation: Rotated}))

	assert.Equal(t, "upright", Upright.String())
	assert.Equal(t, "rotated", Rotated.String())
}

func TestColorizerEmptyPalette(t *testing.T) {
	_, err := NewColorizer(nil, 0)
	assert.True(t, errors.Is(err, ErrEmptyPalette))
}

func TestImageSampler(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	for y := range 2 {
		img.SetNRGBA(0, y, color.NRGBA{200, 0, 0, 255})
		img.SetNRGBA(1, y, color.NRGBA{100, 0, 0, 255})
		img.SetNRGBA(2, y, color.NRGBA{0, 0, 50, 255})
		img.SetNRGBA(3, y, color.NRGBA{0, 0, 150, 255})
	}
	s := NewImageSampler(img)

	assert.Equal(t, color.RGBA{100, 0, 0, 255}, s.ColorAt(1, 1))
	assert.Equal(t, color.RGBA{0, 0, 150, 255}, s.ColorAt(99, -3), "clamped to the border")
	assert.Equal(t, color.RGBA{150, 0, 0, 255}, s.RegionColor(image.Rect(0, 0, 2, 2)))
	assert.Equal(t, color.RGBA{75, 0, 50, 255}, s.RegionColor(image.Rect(0, 0, 4, 2)))

	assert.Equal(t, color.RGBA{0, 0, 100, 255},
		s.WordColor(Placement{Bounds: image.Rect(2, 0, 4, 1)}))
	assert.Equal(t, color.RGBA{200, 0, 0, 255},
		s.WordColor(Placement{Position: image.Pt(0, 1)}))
}
