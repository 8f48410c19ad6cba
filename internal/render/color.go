package render

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/gogpu/gg"
)

// ParseColor parses "#rgb", "#rgba", "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	for _, r := range hex {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
		}
	}
	c := gg.Hex(hex)
	return color.NRGBA{R: toByte(c.R), G: toByte(c.G), B: toByte(c.B), A: toByte(c.A)}, nil
}

func toByte(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

// toRGBA converts c for gg. The quarter step bias makes gg's truncating
// conversion back to bytes return the original values.
func toRGBA(c color.NRGBA) gg.RGBA {
	return gg.RGBA{
		R: (float64(c.R) + 0.25) / 255,
		G: (float64(c.G) + 0.25) / 255,
		B: (float64(c.B) + 0.25) / 255,
		A: (float64(c.A) + 0.25) / 255,
	}
}

// ParsePalette parses a list of colors, failing on the first bad entry.
func ParsePalette(entries []string) ([]color.NRGBA, error) {
	out := make([]color.NRGBA, 0, len(entries))
	for i, e := range entries {
		c, err := ParseColor(e)
		if err != nil {
			return nil, fmt.Errorf("palette entry %d: %w", i, err)
		}
		out = append(out, c)
	}
	return out, nil
}
