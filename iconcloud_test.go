package iconcloud

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/setanarut/iconcloud/icon"
	"github.com/setanarut/iconcloud/palette"
	"github.com/setanarut/iconcloud/words"
	"github.com/stretchr/testify/suite"
	"golang.org/x/image/font/gofont/goregular"
)

// --- Test Suite Preparation ------------------------------------------------

type PipelineTestEnviron struct {
	suite.Suite
	fontDir string
}

func TestPipeline(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "iconcloud")
	defer teardown()
	suite.Run(t, new(PipelineTestEnviron))
}

func (env *PipelineTestEnviron) SetupSuite() {
	tracing.Select("iconcloud").SetTraceLevel(tracing.LevelInfo)
	env.fontDir = env.T().TempDir()
	for _, file := range icon.DefaultFontFiles {
		env.Require().NoError(os.WriteFile(filepath.Join(env.fontDir, file), goregular.TTF, 0o644))
	}
}

func (env *PipelineTestEnviron) options() Options {
	opts := DefaultOptions()
	opts.Text = "gopher gophers go channel channel goroutine the and of"
	opts.IconName = "fas fa-A"
	opts.Size = image.Pt(120, 80)
	opts.FontDir = env.fontDir
	opts.ScratchDir = env.T().TempDir()
	opts.OutputName = ""
	return opts
}

func (env *PipelineTestEnviron) assertScratchEmpty(opts Options) {
	entries, err := os.ReadDir(opts.ScratchDir)
	env.Require().NoError(err)
	env.Empty(entries, "scratch directory must be removed")
}

func countBackground(m *image.NRGBA) int {
	n := 0
	b := m.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if IsBackground(m.NRGBAAt(x, y)) {
				n++
			}
		}
	}
	return n
}

type captureRenderer struct {
	cloud *Cloud
}

func (r *captureRenderer) Render(c *Cloud) (image.Image, error) {
	r.cloud = c
	return c.Mask, nil
}

// --- Tests -----------------------------------------------------------------

func (env *PipelineTestEnviron) TestPrepareFlat() {
	opts := env.options()
	cloud, err := Prepare(opts)
	env.Require().NoError(err)
	env.assertScratchEmpty(opts)

	env.Equal(image.Pt(120, 80), cloud.Mask.Bounds().Size())
	env.Equal(color.RGBA{255, 255, 255, 255}, cloud.Background)
	env.Equal(200, cloud.MaxFontSize)

	env.Require().NotEmpty(cloud.Words)
	env.Equal(words.Frequency{Word: "channel", Count: 2, Weight: 1}, cloud.Words[0])
	for _, f := range cloud.Words {
		env.NotContains([]string{"the", "and", "of", "gophers"}, f.Word)
	}

	bb := MaskBounds(cloud.Mask)
	env.False(bb.Empty())
	env.True(bb.Min.X >= 20 && bb.Max.X <= 100, "icon lies in the centered 80x80 square: %v", bb)

	cz, ok := cloud.Colors.(*Colorizer)
	env.Require().True(ok)
	pal, err := palette.Resolve(opts.Palette)
	env.Require().NoError(err)
	var allowed []color.RGBA
	for _, c := range pal.RGB255() {
		allowed = append(allowed, color.RGBA{c[0], c[1], c[2], 255})
	}
	env.Equal(allowed, cz.Palette())
}

func (env *PipelineTestEnviron) TestPrepareIsReproducible() {
	opts := env.options()
	opts.Seed = 42
	a, err := Prepare(opts)
	env.Require().NoError(err)
	b, err := Prepare(opts)
	env.Require().NoError(err)
	env.Equal(a.Mask.Pix, b.Mask.Pix)
	for i := range 10 {
		p := Placement{Word: "w", Position: image.Pt(i, i)}
		env.Equal(a.Colors.WordColor(p), b.Colors.WordColor(p))
	}
}

func (env *PipelineTestEnviron) TestPrepareExplicitColors() {
	opts := env.options()
	opts.Colors = []string{"red", "#00ff00"}
	opts.Palette = "no.such.Palette" // not consulted
	cloud, err := Prepare(opts)
	env.Require().NoError(err)
	cz := cloud.Colors.(*Colorizer)
	env.Equal([]color.RGBA{{255, 0, 0, 255}, {0, 255, 0, 255}}, cz.Palette())
}

func (env *PipelineTestEnviron) TestPrepareGradient() {
	opts := env.options()
	opts.Gradient = "horizontal"
	opts.Palette = "matplotlib.Viridis_10"
	cloud, err := Prepare(opts)
	env.Require().NoError(err)
	env.assertScratchEmpty(opts)

	flat := opts
	flat.Gradient = ""
	plain, err := Prepare(flat)
	env.Require().NoError(err)

	env.Equal(countBackground(plain.Mask), countBackground(cloud.Mask))
	sampler, ok := cloud.Colors.(*ImageSampler)
	env.Require().True(ok)

	bb := MaskBounds(cloud.Mask)
	y := (bb.Min.Y + bb.Max.Y) / 2
	for x := bb.Min.X; x < bb.Max.X; x++ {
		c := cloud.Mask.NRGBAAt(x, y)
		if IsBackground(c) {
			continue
		}
		env.Equal(color.RGBA{c.R, c.G, c.B, 255}, sampler.ColorAt(x, y))
	}
}

func (env *PipelineTestEnviron) TestPrepareInvert() {
	for _, gradient := range []string{"", "horizontal"} {
		opts := env.options()
		opts.Gradient = gradient
		plain, err := Prepare(opts)
		env.Require().NoError(err)

		opts.Invert = true
		cloud, err := Prepare(opts)
		env.Require().NoError(err)
		env.assertScratchEmpty(opts)

		filled := 0
		b := plain.Mask.Bounds()
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				before, after := plain.Mask.NRGBAAt(x, y), cloud.Mask.NRGBAAt(x, y)
				switch {
				case IsBackground(before):
					env.False(IsBackground(after), "surround at %d,%d must hold words (gradient %q)", x, y, gradient)
				case gradient == "" && before == (color.NRGBA{A: 255}):
					filled++
					env.True(IsBackground(after), "glyph at %d,%d must be background", x, y)
				}
			}
		}
		if gradient == "" {
			env.Greater(filled, 0)
		}
		env.Greater(countBackground(cloud.Mask), 0, "gradient %q", gradient)
		env.False(IsBackground(cloud.Mask.NRGBAAt(0, 0)))
	}

	opts := env.options()
	opts.Invert = true
	cloud, err := Prepare(opts)
	env.Require().NoError(err)
	opts.Invert = false
	plain, err := Prepare(opts)
	env.Require().NoError(err)
	InvertMask(cloud.Mask)
	env.Equal(plain.Mask.Pix, cloud.Mask.Pix)
}

func (env *PipelineTestEnviron) TestUnknownFamily() {
	opts := env.options()
	opts.IconName = "xyz fa-flag"
	_, err := Prepare(opts)
	env.True(errors.Is(err, icon.ErrUnknownIconFamily))
	env.assertScratchEmpty(opts)
}

func (env *PipelineTestEnviron) TestUnknownGlyphCleansUp() {
	opts := env.options()
	opts.IconName = "fas fa-no-such-glyph"
	_, err := Prepare(opts)
	env.True(errors.Is(err, icon.ErrGlyphRasterization))
	env.assertScratchEmpty(opts)
}

func (env *PipelineTestEnviron) TestThreeColumnInputFailsBeforeRasterizing() {
	opts := env.options()
	opts.Text = ""
	opts.File = filepath.Join(env.T().TempDir(), "words.csv")
	env.Require().NoError(os.WriteFile(opts.File, []byte("a,b,c\nx,1,2\n"), 0o644))
	opts.FontDir = filepath.Join(env.T().TempDir(), "missing") // rasterizing would fail differently

	_, err := Prepare(opts)
	env.True(errors.Is(err, words.ErrInvalidInputFormat))
	env.assertScratchEmpty(opts)
}

func (env *PipelineTestEnviron) TestMissingInput() {
	opts := env.options()
	opts.Text = ""
	_, err := Prepare(opts)
	env.True(errors.Is(err, words.ErrMissingInput))
}

func (env *PipelineTestEnviron) TestUnknownPalette() {
	opts := env.options()
	opts.Palette = "cartocolors.qualitative.Nope_3"
	_, err := Prepare(opts)
	env.True(errors.Is(err, palette.ErrUnknownPalette))
	env.assertScratchEmpty(opts)
}

func (env *PipelineTestEnviron) TestInvalidGradientAndBackground() {
	opts := env.options()
	opts.Gradient = "diagonal"
	_, err := Prepare(opts)
	env.True(errors.Is(err, ErrUnknownDirection))

	opts = env.options()
	opts.Background = "plaid"
	_, err = Prepare(opts)
	env.True(errors.Is(err, ErrInvalidColor))
}

func (env *PipelineTestEnviron) TestGenerateSaves() {
	opts := env.options()
	opts.OutputName = filepath.Join(env.T().TempDir(), "cloud.png")
	r := &captureRenderer{}
	img, err := Generate(opts, r)
	env.Require().NoError(err)
	env.Require().NotNil(r.cloud)
	env.Equal(image.Pt(120, 80), img.Bounds().Size())

	saved, err := imaging.Open(opts.OutputName)
	env.Require().NoError(err)
	env.Equal(image.Pt(120, 80), saved.Bounds().Size())
}
