// Package iconcloud prepares word clouds shaped like an icon. It builds
// the silhouette mask of a Font Awesome style glyph and the color
// function a word-cloud renderer uses while placing words, either a
// random pick from a palette or a directional gradient.
package iconcloud

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/npillmayer/schuko/tracing"
	"github.com/setanarut/iconcloud/icon"
	"github.com/setanarut/iconcloud/palette"
	"github.com/setanarut/iconcloud/words"
)

// tracer traces with key 'iconcloud'
func tracer() tracing.Trace {
	return tracing.Select("iconcloud")
}

type Options struct {
	// Text is the raw input. It takes precedence over File.
	Text string
	// File is a plain text file, or a .csv/.tsv table with one column of
	// text or two columns of word and count.
	File string
	// Size of the output canvas. The icon is rendered at the smaller
	// dimension and centered.
	Size image.Point
	// IconName such as "fas fa-flag" or "fab fa-github".
	IconName string
	// Palette is a dotted palette identifier, e.g.
	// "cartocolors.qualitative.Bold_5". Ignored when Colors is set and no
	// gradient is requested.
	Palette string
	// PaletteColors overrides the Palette lookup with explicit palette
	// colors, for example ones extracted from an image.
	PaletteColors []colorful.Color
	// Colors are explicit word colors, names or hex strings.
	Colors []string
	// Gradient is "", "horizontal" or "vertical".
	Gradient string
	// Invert complements the mask.
	Invert      bool
	Background  string
	MaxWords    int
	MaxFontSize int
	// Stopwords enables the default stopword list. CustomStopwords are
	// dropped in either case.
	Stopwords       bool
	CustomStopwords []string
	Seed            uint64
	// FontDir holds the icon font files.
	FontDir string
	// FontPath is the text font handed to the renderer.
	FontPath   string
	OutputName string
	// ScratchDir is the parent of the temporary directory used for the
	// icon bitmap. Empty means the system temp dir.
	ScratchDir string
}

func DefaultOptions() Options {
	return Options{
		Size:        image.Pt(512, 512),
		IconName:    "fas fa-flag",
		Palette:     "cartocolors.qualitative.Bold_5",
		Background:  "white",
		MaxWords:    2000,
		MaxFontSize: 200,
		Stopwords:   true,
		FontDir:     "static",
		OutputName:  "iconcloud.png",
	}
}

// Cloud is everything a renderer needs to draw the word cloud.
type Cloud struct {
	Words []words.Frequency
	// Mask has the canvas size. Only non-white pixels may hold words.
	Mask *image.NRGBA
	// Colors picks each word's fill color.
	Colors      ColorFunc
	Background  color.RGBA
	MaxFontSize int
	FontPath    string
	Seed        uint64
}

// Renderer lays out and draws the words of a Cloud.
type Renderer interface {
	Render(c *Cloud) (image.Image, error)
}

// Prepare runs the pipeline up to the renderer: words, icon bitmap,
// mask and color function. The scratch directory for the icon bitmap
// is removed before Prepare returns, on success and on failure.
func Prepare(opts Options) (*Cloud, error) {
	return PrepareWith(opts, icon.NewRasterizer(opts.FontDir))
}

// PrepareWith is Prepare with a caller-owned rasterizer, whose parsed
// fonts are reused across calls.
func PrepareWith(opts Options, rast *icon.Rasterizer) (*Cloud, error) {
	cfg := words.Config{MaxWords: opts.MaxWords, MinLength: 2, NormalizePlurals: true}
	if opts.Stopwords {
		cfg.Stopwords = words.DefaultStopwords()
	}
	cfg = cfg.WithStopwords(opts.CustomStopwords...)

	src, err := words.Load(opts.Text, opts.File)
	if err != nil {
		return nil, err
	}
	freqs := words.Frequencies(src, cfg)
	tracer().Debugf("%d words to place", len(freqs))

	spec, err := icon.ParseName(opts.IconName)
	if err != nil {
		return nil, err
	}
	dir, err := ParseDirection(opts.Gradient)
	if err != nil {
		return nil, err
	}
	bg, err := ParseColor(opts.Background)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}

	var pal *palette.Palette
	if dir != NoGradient || len(opts.Colors) == 0 {
		if pal, err = resolvePalette(opts); err != nil {
			return nil, err
		}
	}
	var colors []colorful.Color
	if dir == NoGradient {
		if len(opts.Colors) > 0 {
			if colors, err = ParseColors(opts.Colors); err != nil {
				return nil, err
			}
		} else {
			colors = pal.Colors()
		}
	}

	mask, err := buildMask(opts, spec, rast)
	if err != nil {
		return nil, err
	}

	cloud := &Cloud{
		Words:       freqs,
		Mask:        mask,
		MaxFontSize: opts.MaxFontSize,
		FontPath:    opts.FontPath,
		Seed:        opts.Seed,
	}
	r, g, b := bg.Clamped().RGB255()
	cloud.Background = color.RGBA{r, g, b, 255}

	if dir == NoGradient {
		if cloud.Colors, err = NewColorizer(colors, opts.Seed); err != nil {
			return nil, err
		}
		return cloud, nil
	}

	grad, err := NewGradient(mask.Bounds().Size(), pal.At, dir)
	if err != nil {
		return nil, err
	}
	if cloud.Mask, err = ApplyGradient(mask, grad); err != nil {
		return nil, err
	}
	cloud.Colors = NewImageSampler(cloud.Mask)
	tracer().Debugf("%v gradient from palette %s", dir, pal.Name)
	return cloud, nil
}

func resolvePalette(opts Options) (*palette.Palette, error) {
	if len(opts.PaletteColors) > 0 {
		return palette.New("custom", palette.Qualitative, opts.PaletteColors)
	}
	return palette.Resolve(opts.Palette)
}

// buildMask rasterizes the icon into a scratch directory and reads it
// back as a mask. The directory is gone when buildMask returns.
func buildMask(opts Options, spec icon.Spec, rast *icon.Rasterizer) (*image.NRGBA, error) {
	scratch, err := os.MkdirTemp(opts.ScratchDir, "iconcloud-*")
	if err != nil {
		return nil, fmt.Errorf("creating scratch dir: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(scratch); err != nil {
			tracer().Errorf("removing scratch dir %s: %v", scratch, err)
		}
	}()

	path, err := rast.Rasterize(spec, opts.Size, scratch)
	if err != nil {
		return nil, err
	}
	return LoadMask(path, opts.Size, opts.Invert)
}

// Generate prepares the cloud, renders it with r and saves the result
// to opts.OutputName when set.
func Generate(opts Options, r Renderer) (image.Image, error) {
	cloud, err := Prepare(opts)
	if err != nil {
		return nil, err
	}
	img, err := r.Render(cloud)
	if err != nil {
		return nil, fmt.Errorf("rendering: %w", err)
	}
	if opts.OutputName != "" {
		if err := Save(img, opts.OutputName); err != nil {
			return nil, err
		}
	}
	return img, nil
}

// Save writes img to path; the format follows the file extension.
func Save(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	tracer().Infof("wrote %s", path)
	return nil
}
