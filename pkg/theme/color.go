package theme

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColor resolves a CSS color string: an SVG 1.1 named color ("tomato",
// "dodgerblue") or hex notation (#rgb, #rrggbb, #rrggbbaa). Names are
// matched case-insensitively.
func ParseColor(s string) (color.RGBA, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[v]; ok {
		return c, nil
	}
	if strings.HasPrefix(v, "#") {
		return parseHex(v)
	}
	return color.RGBA{}, fmt.Errorf("theme: unknown color %q", s)
}

func parseHex(v string) (color.RGBA, error) {
	digits := v[1:]
	var r, g, b, a string
	switch len(digits) {
	case 3:
		r, g, b = digits[0:1]+digits[0:1], digits[1:2]+digits[1:2], digits[2:3]+digits[2:3]
		a = "ff"
	case 6:
		r, g, b, a = digits[0:2], digits[2:4], digits[4:6], "ff"
	case 8:
		r, g, b, a = digits[0:2], digits[2:4], digits[4:6], digits[6:8]
	default:
		return color.RGBA{}, fmt.Errorf("theme: malformed hex color %q", v)
	}
	var out color.RGBA
	for _, part := range []struct {
		s   string
		dst *uint8
	}{{r, &out.R}, {g, &out.G}, {b, &out.B}, {a, &out.A}} {
		n, err := strconv.ParseUint(part.s, 16, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("theme: malformed hex color %q", v)
		}
		*part.dst = uint8(n)
	}
	return out, nil
}

// CSS renders c as a CSS color value: rgb(…) when opaque, rgba(…) with the
// alpha rounded to three decimals otherwise.
func CSS(c color.RGBA) string {
	if c.A == 0xFF {
		return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
	}
	alpha := math.Round(float64(c.A)/255*1000) / 1000
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B,
		strconv.FormatFloat(alpha, 'f', -1, 64))
}
