package utils

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"slices"

	"github.com/cenkalti/dominantcolor"
	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
	"github.com/npillmayer/schuko/tracing"
	"github.com/setanarut/iconcloud/palette"
)

// tracer traces with key 'iconcloud'
func tracer() tracing.Trace {
	return tracing.Select("iconcloud")
}

type PaletteMethod int

const (
	PaletteMethodDominantColor PaletteMethod = iota
	PaletteMethodKMeans
)

func (m PaletteMethod) String() string {
	switch m {
	case PaletteMethodKMeans:
		return "kmeans"
	default:
		return "dominantcolor"
	}
}

// ParsePaletteMethod maps "kmeans" and "dominantcolor" to a method.
func ParsePaletteMethod(s string) (PaletteMethod, error) {
	switch s {
	case "kmeans":
		return PaletteMethodKMeans, nil
	case "dominantcolor", "":
		return PaletteMethodDominantColor, nil
	}
	return 0, fmt.Errorf("unknown palette method %q", s)
}

var ErrNoColors = errors.New("no colors found in image")

type weightedColor struct {
	Col    colorful.Color
	Weight float64
}

// SortPaletteByBrightness orders colors from darkest to brightest, so
// that sampling the palette as a colormap yields a light ramp.
func SortPaletteByBrightness(colors []colorful.Color) {
	slices.SortFunc(colors, func(a, b colorful.Color) int {
		ri, gi, bi := a.LinearRgb()
		rj, gj, bj := b.LinearRgb()
		yi := 0.2126*ri + 0.7152*gi + 0.0722*bi
		yj := 0.2126*rj + 0.7152*gj + 0.0722*bj
		if yi < yj {
			return -1
		}
		if yi > yj {
			return 1
		}
		return 0
	})
}

func ExtractDominantColors(img image.Image, k int) []colorful.Color {
	if k <= 0 {
		return nil
	}
	candidates := dominantcolor.FindWeight(img, max(24, k*8))
	weighted := make([]weightedColor, 0, len(candidates))
	for _, c := range candidates {
		col, ok := colorful.MakeColor(c.RGBA)
		if !ok {
			continue
		}
		weighted = append(weighted, weightedColor{Col: col.Clamped(), Weight: max(c.Weight, 1e-6)})
	}
	return SelectDiverseWeightedColors(weighted, k)
}

// SelectDiverseWeightedColors greedily picks k colors, starting with the
// heaviest, each next one maximizing its Lab distance to the picks so
// far scaled by its weight.
func SelectDiverseWeightedColors(cands []weightedColor, k int) []colorful.Color {
	if k <= 0 || len(cands) == 0 {
		return nil
	}
	type item struct {
		col colorful.Color
		lab [3]float64
		w   float64
	}
	items := make([]item, len(cands))
	maxW := 0.0
	for i, c := range cands {
		col := c.Col.Clamped()
		l, a, b := col.Lab()
		w := max(c.Weight, 1e-6)
		maxW = max(maxW, w)
		items[i] = item{col: col, lab: [3]float64{l, a, b}, w: w}
	}
	k = min(k, len(items))

	picked := make([]int, 0, k)
	taken := make([]bool, len(items))
	seed := 0
	for i := range items {
		if items[i].w > items[seed].w {
			seed = i
		}
	}
	picked = append(picked, seed)
	taken[seed] = true

	for len(picked) < k {
		best, bestScore := -1, -1.0
		for i := range items {
			if taken[i] {
				continue
			}
			minD2 := math.MaxFloat64
			for _, s := range picked {
				d0 := items[i].lab[0] - items[s].lab[0]
				d1 := items[i].lab[1] - items[s].lab[1]
				d2 := items[i].lab[2] - items[s].lab[2]
				minD2 = min(minD2, d0*d0+d1*d1+d2*d2)
			}
			score := math.Sqrt(minD2) * (0.55 + 0.45*math.Sqrt(items[i].w/maxW))
			if score > bestScore {
				best, bestScore = i, score
			}
		}
		if best < 0 {
			break
		}
		taken[best] = true
		picked = append(picked, best)
	}

	out := make([]colorful.Color, len(picked))
	for i, idx := range picked {
		out[i] = items[idx].col
	}
	return out
}

func ExtractKMeansColors(img image.Image, k int) ([]colorful.Color, error) {
	if k <= 0 {
		return nil, nil
	}
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	if width == 0 || height == 0 {
		return nil, nil
	}

	// Subsample to keep kmeans tractable on large images.
	maxSamples := 12000
	step := 1
	if width*height > maxSamples {
		step = int(math.Sqrt(float64(width*height)/float64(maxSamples))) + 1
	}
	dataset := make(clusters.Observations, 0, min(width*height, maxSamples))
	for y := b.Min.Y; y < b.Max.Y; y += step {
		for x := b.Min.X; x < b.Max.X; x += step {
			r16, g16, b16, a16 := img.At(x, y).RGBA()
			if a16 == 0 {
				continue
			}
			dataset = append(dataset, clusters.Coordinates{
				float64(r16) / 65535.0,
				float64(g16) / 65535.0,
				float64(b16) / 65535.0,
			})
		}
	}
	if len(dataset) == 0 {
		return nil, nil
	}

	km := kmeans.New()
	cc, err := km.Partition(dataset, min(max(k*4, k+2), len(dataset)))
	if err != nil {
		return nil, fmt.Errorf("kmeans: %w", err)
	}
	slices.SortFunc(cc, func(a, b clusters.Cluster) int {
		return len(b.Observations) - len(a.Observations)
	})

	weighted := make([]weightedColor, 0, len(cc))
	for _, c := range cc {
		if len(c.Center) < 3 || len(c.Observations) == 0 {
			continue
		}
		col := colorful.Color{R: c.Center[0], G: c.Center[1], B: c.Center[2]}.Clamped()
		weighted = append(weighted, weightedColor{Col: col, Weight: float64(len(c.Observations))})
	}
	return SelectDiverseWeightedColors(weighted, k), nil
}

// ExtractPalette derives a k-color palette from img. The k-means method
// falls back to dominant colors when it finds nothing.
func ExtractPalette(img image.Image, k int, method PaletteMethod) (*palette.Palette, error) {
	var colors []colorful.Color
	if method == PaletteMethodKMeans {
		var err error
		if colors, err = ExtractKMeansColors(img, k); err != nil {
			tracer().Errorf("palette extraction: %v, falling back to dominantcolor", err)
		}
	}
	if len(colors) == 0 {
		colors = ExtractDominantColors(img, k)
	}
	if len(colors) == 0 {
		return nil, ErrNoColors
	}
	SortPaletteByBrightness(colors)
	tracer().Debugf("extracted %d colors with %v", len(colors), method)
	return palette.New("extracted", palette.Sequential, colors)
}

func ReadImage(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading image %s: %w", path, err)
	}
	return img, nil
}

func SaveImage(img image.Image, filename string) error {
	if err := imaging.Save(img, filename); err != nil {
		return fmt.Errorf("saving image %s: %w", filename, err)
	}
	return nil
}

// PaletteSwatch draws the palette's discrete colors as a row of square
// tiles above a strip showing the continuous colormap.
func PaletteSwatch(p *palette.Palette, tileSize int) *image.NRGBA {
	if tileSize <= 0 {
		tileSize = 64
	}
	colors := p.RGB255()
	w := tileSize * len(colors)
	h := tileSize + tileSize/4
	img := imaging.New(w, h, color.White)
	for i, c := range colors {
		tile := image.Rect(i*tileSize, 0, (i+1)*tileSize, tileSize)
		for y := tile.Min.Y; y < tile.Max.Y; y++ {
			for x := tile.Min.X; x < tile.Max.X; x++ {
				img.SetNRGBA(x, y, color.NRGBA{c[0], c[1], c[2], 255})
			}
		}
	}
	for x := range w {
		t := 0.0
		if w > 1 {
			t = float64(x) / float64(w-1)
		}
		r, g, b := p.At(t).Clamped().RGB255()
		for y := tileSize; y < h; y++ {
			img.SetNRGBA(x, y, color.NRGBA{r, g, b, 255})
		}
	}
	return img
}

func SavePalette(p *palette.Palette, tileSize int, filename string) error {
	return SaveImage(PaletteSwatch(p, tileSize), filename)
}
