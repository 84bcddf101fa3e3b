package icon

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// glyphFont wraps a parsed font with a lazily built glyph name index.
// sfnt.Buffer is not safe for concurrent use, hence the mutex.
type glyphFont struct {
	mu    sync.Mutex
	font  *sfnt.Font
	buf   sfnt.Buffer
	names map[string]sfnt.GlyphIndex
}

func newGlyphFont(f *sfnt.Font) *glyphFont {
	return &glyphFont{font: f}
}

func (gf *glyphFont) indexNames() {
	gf.names = make(map[string]sfnt.GlyphIndex)
	for i := range gf.font.NumGlyphs() {
		name, err := gf.font.GlyphName(&gf.buf, sfnt.GlyphIndex(i))
		if err != nil {
			tracer().Debugf("glyph name table unreadable at glyph %d: %v", i, err)
			return
		}
		if name != "" {
			if _, dup := gf.names[name]; !dup {
				gf.names[name] = sfnt.GlyphIndex(i)
			}
		}
	}
}

// lookup resolves a glyph by its post-table name, then by a single
// rune, then by a "uniXXXX" or "U+XXXX" code point.
func (gf *glyphFont) lookup(name string) (sfnt.GlyphIndex, error) {
	gf.mu.Lock()
	defer gf.mu.Unlock()
	if gf.names == nil {
		gf.indexNames()
	}
	if gid, ok := gf.names[name]; ok {
		return gid, nil
	}
	r, ok := codePoint(name)
	if !ok {
		return 0, fmt.Errorf("no glyph named %q", name)
	}
	gid, err := gf.font.GlyphIndex(&gf.buf, r)
	if err != nil {
		return 0, err
	}
	if gid == 0 {
		return 0, fmt.Errorf("no glyph for %q (U+%04X)", name, r)
	}
	return gid, nil
}

func codePoint(name string) (rune, bool) {
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		return r, true
	}
	for _, prefix := range []string{"uni", "U+", "u+"} {
		if hex, ok := strings.CutPrefix(name, prefix); ok {
			v, err := strconv.ParseUint(hex, 16, 32)
			if err != nil {
				return 0, false
			}
			return rune(v), true
		}
	}
	return 0, false
}

// render fills the outline of gid into an n×n image on a transparent
// background. The outline is scaled uniformly so that its larger extent
// spans n pixels, and centered along the other axis.
func (gf *glyphFont) render(gid sfnt.GlyphIndex, n int, c color.NRGBA) (*image.NRGBA, error) {
	gf.mu.Lock()
	segs, err := gf.font.LoadGlyph(&gf.buf, gid, fixed.I(n), nil)
	if err != nil {
		gf.mu.Unlock()
		return nil, err
	}
	// LoadGlyph results alias the buffer.
	segs = append(sfnt.Segments(nil), segs...)
	gf.mu.Unlock()

	b := segs.Bounds()
	minX, minY := fixedToFloat(b.Min.X), fixedToFloat(b.Min.Y)
	w, h := fixedToFloat(b.Max.X)-minX, fixedToFloat(b.Max.Y)-minY
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("glyph %d has an empty outline", gid)
	}
	scale := float32(n) / max(w, h)
	offX := (float32(n) - w*scale) / 2
	offY := (float32(n) - h*scale) / 2
	pt := func(p fixed.Point26_6) (float32, float32) {
		return (fixedToFloat(p.X)-minX)*scale + offX, (fixedToFloat(p.Y)-minY)*scale + offY
	}

	z := vector.NewRasterizer(n, n)
	z.DrawOp = draw.Src
	started := false
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if started {
				z.ClosePath()
			}
			started = true
			z.MoveTo(pt(seg.Args[0]))
		case sfnt.SegmentOpLineTo:
			z.LineTo(pt(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			bx, by := pt(seg.Args[0])
			cx, cy := pt(seg.Args[1])
			z.QuadTo(bx, by, cx, cy)
		case sfnt.SegmentOpCubeTo:
			bx, by := pt(seg.Args[0])
			cx, cy := pt(seg.Args[1])
			dx, dy := pt(seg.Args[2])
			z.CubeTo(bx, by, cx, cy, dx, dy)
		}
	}
	if started {
		z.ClosePath()
	}

	coverage := image.NewAlpha(image.Rect(0, 0, n, n))
	z.Draw(coverage, coverage.Bounds(), image.Opaque, image.Point{})

	dst := image.NewNRGBA(image.Rect(0, 0, n, n))
	for i, a := range coverage.Pix {
		if a == 0 {
			continue
		}
		o := i * 4
		dst.Pix[o+0] = c.R
		dst.Pix[o+1] = c.G
		dst.Pix[o+2] = c.B
		dst.Pix[o+3] = uint8(uint16(a) * uint16(c.A) / 255)
	}
	return dst, nil
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

func savePNG(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("writing icon bitmap: %w", err)
	}
	return nil
}
