package iconcloud

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

var ErrInvalidColor = errors.New("invalid color")

// ParseColor accepts SVG/CSS color names ("navy", "SteelBlue") and hex
// strings ("#369", "#336699", "336699").
func ParseColor(s string) (colorful.Color, error) {
	s = strings.TrimSpace(s)
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		col, _ := colorful.MakeColor(c)
		return col, nil
	}
	hex := s
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return c, nil
}

func ParseColors(list []string) ([]colorful.Color, error) {
	out := make([]colorful.Color, 0, len(list))
	for _, s := range list {
		c, err := ParseColor(s)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
