// Command iconcloud prepares an icon-shaped word cloud: it counts the
// words of the input, builds the icon mask and its coloring, and writes
// a preview of the colored mask. Drawing the words themselves is left to
// a renderer linked in through the iconcloud.Renderer interface.
package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"github.com/setanarut/iconcloud"
	"github.com/setanarut/iconcloud/palette"
	"github.com/setanarut/iconcloud/utils"
)

// tracer traces with key 'iconcloud'
func tracer() tracing.Trace {
	return tracing.Select("iconcloud")
}

func main() {
	opts := iconcloud.DefaultOptions()
	text := flag.String("text", "", "Raw text to build the cloud from")
	file := flag.String("file", "", "Text file, or .csv/.tsv with text or word,count columns")
	size := flag.String("size", "512", "Canvas size, N or WxH")
	iconName := flag.String("icon", opts.IconName, "Icon, e.g. 'fas fa-flag' or 'fab fa-github'")
	pal := flag.String("palette", opts.Palette, "Dotted palette identifier")
	colors := flag.String("colors", "", "Comma separated word colors (names or hex), overrides -palette")
	paletteFrom := flag.String("palette-from", "", "Image to extract the palette from")
	paletteMethod := flag.String("palette-method", "dominantcolor", "Palette extraction [dominantcolor|kmeans]")
	paletteSize := flag.Int("palette-size", 5, "Number of colors to extract with -palette-from")
	gradient := flag.String("gradient", "", "Gradient direction [horizontal|vertical]")
	invert := flag.Bool("invert", false, "Invert the icon mask")
	background := flag.String("background", opts.Background, "Background color")
	maxWords := flag.Int("max-words", opts.MaxWords, "Maximum number of words")
	stopwords := flag.Bool("stopwords", true, "Drop common English words")
	custom := flag.String("custom-stopwords", "", "Comma separated additional stopwords")
	seed := flag.Int64("seed", -1, "Random seed; negative picks one from the clock")
	fontDir := flag.String("font-dir", opts.FontDir, "Directory holding the icon fonts")
	output := flag.String("output", opts.OutputName, "Preview image of the colored mask")
	swatch := flag.String("swatch", "", "Write the active palette as an image")
	top := flag.Int("top", 10, "Number of top words to list")
	list := flag.Bool("list-palettes", false, "List palette identifiers and exit")
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	flag.Parse()

	if err := setupTracing(*tlevel); err != nil {
		pterm.Error.Println(err)
		os.Exit(2)
	}
	if *list {
		for _, name := range palette.Names() {
			pterm.Println(name)
		}
		return
	}

	canvas, err := parseSize(*size)
	if err != nil {
		fail(err, 2)
	}
	opts.Text, opts.File = *text, *file
	opts.Size = canvas
	opts.IconName = *iconName
	opts.Palette = *pal
	opts.Colors = splitList(*colors)
	opts.Gradient = *gradient
	opts.Invert = *invert
	opts.Background = *background
	opts.MaxWords = *maxWords
	opts.Stopwords = *stopwords
	opts.CustomStopwords = splitList(*custom)
	opts.FontDir = *fontDir
	opts.OutputName = *output
	if *seed < 0 {
		opts.Seed = uint64(time.Now().UnixNano())
	} else {
		opts.Seed = uint64(*seed)
	}

	if *paletteFrom != "" {
		method, err := utils.ParsePaletteMethod(*paletteMethod)
		if err != nil {
			fail(err, 2)
		}
		img, err := utils.ReadImage(*paletteFrom)
		if err != nil {
			fail(err, 3)
		}
		p, err := utils.ExtractPalette(img, *paletteSize, method)
		if err != nil {
			fail(err, 3)
		}
		opts.PaletteColors = p.Colors()
		pterm.Info.Printf("extracted %d colors from %s\n", p.Len(), *paletteFrom)
	}

	cloud, err := iconcloud.Prepare(opts)
	if err != nil {
		fail(err, 4)
	}
	if err := iconcloud.Save(cloud.Mask, opts.OutputName); err != nil {
		fail(err, 5)
	}
	pterm.Success.Printf("wrote %s (%dx%d)\n", opts.OutputName, canvas.X, canvas.Y)

	if *swatch != "" {
		if err := writeSwatch(opts, *swatch); err != nil {
			fail(err, 5)
		}
		pterm.Success.Printf("wrote palette %s\n", *swatch)
	}

	pterm.Info.Printf("%d words, seed %d\n", len(cloud.Words), opts.Seed)
	for i, f := range cloud.Words {
		if i >= *top {
			break
		}
		pterm.Printf("%4d  %-24s %8.0f  %.3f\n", i+1, f.Word, f.Count, f.Weight)
	}
}

func setupTracing(level string) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":         "go",
		"trace.iconcloud":         level,
		"trace.iconcloud.icon":    level,
		"trace.iconcloud.palette": level,
		"trace.iconcloud.words":   level,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return fmt.Errorf("configuring tracing: %w", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	switch level {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		return fmt.Errorf("invalid trace level: %s", level)
	}
	return nil
}

func fail(err error, code int) {
	tracer().Errorf("%v", err)
	pterm.Error.Println(err)
	os.Exit(code)
}

// parseSize accepts "N" for a square canvas and "WxH" otherwise.
func parseSize(s string) (image.Point, error) {
	w, h, found := strings.Cut(strings.ToLower(s), "x")
	if !found {
		h = w
	}
	x, err := strconv.Atoi(strings.TrimSpace(w))
	if err != nil {
		return image.Point{}, fmt.Errorf("invalid size %q", s)
	}
	y, err := strconv.Atoi(strings.TrimSpace(h))
	if err != nil {
		return image.Point{}, fmt.Errorf("invalid size %q", s)
	}
	if x <= 0 || y <= 0 {
		return image.Point{}, fmt.Errorf("invalid size %q", s)
	}
	return image.Pt(x, y), nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func writeSwatch(opts iconcloud.Options, path string) error {
	var p *palette.Palette
	var err error
	switch {
	case len(opts.Colors) > 0 && opts.Gradient == "":
		cs, perr := iconcloud.ParseColors(opts.Colors)
		if perr != nil {
			return perr
		}
		p, err = palette.New("colors", palette.Qualitative, cs)
	case len(opts.PaletteColors) > 0:
		p, err = palette.New("extracted", palette.Sequential, opts.PaletteColors)
	default:
		p, err = palette.Resolve(opts.Palette)
	}
	if err != nil {
		return err
	}
	return utils.SavePalette(p, 64, path)
}
