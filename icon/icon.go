// Package icon rasterizes icon-font glyphs (Font Awesome style) into
// PNG bitmaps that can be turned into word-cloud masks.
package icon

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"maps"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font/sfnt"
)

// tracer traces with key 'iconcloud.icon'
func tracer() tracing.Trace {
	return tracing.Select("iconcloud.icon")
}

var (
	ErrUnknownIconFamily  = errors.New("unknown icon family")
	ErrGlyphRasterization = errors.New("glyph rasterization failed")
)

// FileName is the name of the bitmap written by Rasterize.
const FileName = "icon.png"

type Family int

const (
	Solid Family = iota
	Regular
	Brand
)

func (f Family) String() string {
	switch f {
	case Regular:
		return "regular"
	case Brand:
		return "brand"
	default:
		return "solid"
	}
}

// DefaultFontFiles maps each family to its Font Awesome 5 font file.
var DefaultFontFiles = map[Family]string{
	Solid:   "fa-solid-900.ttf",
	Regular: "fa-regular-400.ttf",
	Brand:   "fa-brands-400.ttf",
}

var familyPrefixes = map[string]Family{
	"fas":     Solid,
	"solid":   Solid,
	"far":     Regular,
	"regular": Regular,
	"fab":     Brand,
	"brand":   Brand,
	"brands":  Brand,
}

// Spec identifies a glyph within one icon family.
type Spec struct {
	Family Family
	Glyph  string
}

func (s Spec) String() string {
	return s.Family.String() + " " + s.Glyph
}

// ParseName parses identifiers like "fas fa-flag", "fab fa-github" or
// "solid flag". The "fa-" prefix on the glyph is optional.
func ParseName(name string) (Spec, error) {
	fields := strings.Fields(name)
	if len(fields) != 2 {
		return Spec{}, fmt.Errorf("%w: icon name %q must be \"<family> <glyph>\"", ErrUnknownIconFamily, name)
	}
	fam, ok := familyPrefixes[strings.ToLower(fields[0])]
	if !ok {
		return Spec{}, fmt.Errorf("%w: %q", ErrUnknownIconFamily, fields[0])
	}
	glyph := strings.TrimPrefix(fields[1], "fa-")
	if glyph == "" {
		return Spec{}, fmt.Errorf("%w: empty glyph name in %q", ErrGlyphRasterization, name)
	}
	return Spec{Family: fam, Glyph: glyph}, nil
}

// Rasterizer renders glyphs from icon fonts stored in FontDir.
// Parsed fonts are cached, so one Rasterizer should be reused for
// repeated renders.
type Rasterizer struct {
	FontDir string
	Files   map[Family]string
	// Color of the glyph; the background is always transparent.
	Color color.NRGBA

	mu    sync.Mutex
	fonts map[Family]*glyphFont
}

func NewRasterizer(fontDir string) *Rasterizer {
	return &Rasterizer{
		FontDir: fontDir,
		Files:   maps.Clone(DefaultFontFiles),
		Color:   color.NRGBA{A: 255},
	}
}

// FontPath returns the font file used for a family.
func (r *Rasterizer) FontPath(f Family) (string, error) {
	file, ok := r.Files[f]
	if !ok {
		return "", fmt.Errorf("%w: %v", ErrUnknownIconFamily, f)
	}
	return filepath.Join(r.FontDir, file), nil
}

func (r *Rasterizer) font(f Family) (*glyphFont, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if gf, ok := r.fonts[f]; ok {
		return gf, nil
	}
	path, err := r.FontPath(f)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading font for family %v: %w", ErrGlyphRasterization, f, err)
	}
	sf, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %w", ErrGlyphRasterization, path, err)
	}
	gf := newGlyphFont(sf)
	if r.fonts == nil {
		r.fonts = map[Family]*glyphFont{}
	}
	r.fonts[f] = gf
	tracer().Infof("loaded icon font %s (%d glyphs)", path, sf.NumGlyphs())
	return gf, nil
}

// Rasterize renders the glyph of spec into dir/icon.png. The bitmap is
// n×n pixels, n being the smaller of size.X and size.Y. The glyph is
// scaled to fill the bitmap along its larger extent and centered. The
// caller owns dir and its cleanup.
func (r *Rasterizer) Rasterize(spec Spec, size image.Point, dir string) (string, error) {
	n := min(size.X, size.Y)
	if n <= 0 {
		return "", fmt.Errorf("%w: invalid size %v", ErrGlyphRasterization, size)
	}
	gf, err := r.font(spec.Family)
	if err != nil {
		return "", err
	}
	gid, err := gf.lookup(spec.Glyph)
	if err != nil {
		return "", fmt.Errorf("%w: %v: %w", ErrGlyphRasterization, spec, err)
	}
	img, err := gf.render(gid, n, r.Color)
	if err != nil {
		return "", fmt.Errorf("%w: %v: %w", ErrGlyphRasterization, spec, err)
	}
	path := filepath.Join(dir, FileName)
	if err := savePNG(img, path); err != nil {
		return "", err
	}
	tracer().Debugf("rasterized %v at %dpx to %s", spec, n, path)
	return path, nil
}

// RasterizeName parses name and rasterizes it. The family is validated
// before anything touches the file system.
func (r *Rasterizer) RasterizeName(name string, size image.Point, dir string) (string, error) {
	spec, err := ParseName(name)
	if err != nil {
		return "", err
	}
	return r.Rasterize(spec, size, dir)
}
