package css

import (
	"strconv"
	"strings"
)

var namedColors = map[string]uint32{
	"black":   0x000000,
	"silver":  0xc0c0c0,
	"gray":    0x808080,
	"grey":    0x808080,
	"white":   0xffffff,
	"maroon":  0x800000,
	"red":     0xff0000,
	"purple":  0x800080,
	"fuchsia": 0xff00ff,
	"magenta": 0xff00ff,
	"green":   0x008000,
	"lime":    0x00ff00,
	"olive":   0x808000,
	"yellow":  0xffff00,
	"navy":    0x000080,
	"blue":    0x0000ff,
	"teal":    0x008080,
	"aqua":    0x00ffff,
	"cyan":    0x00ffff,
	"orange":  0xffa500,
}

// ParseColor understands #rgb, #rgba, #rrggbb, #rrggbbaa, rgb(), rgba() and
// basic named colors.
func ParseColor(s string) (Color, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, false
	}
	if s == "transparent" {
		return 0, true
	}
	if v, ok := namedColors[s]; ok {
		return RGB(v), true
	}
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		return parseHexColor(hex)
	}
	if args, ok := cutFunction(s, "rgba"); ok {
		return parseRGBFunc(args)
	}
	if args, ok := cutFunction(s, "rgb"); ok {
		return parseRGBFunc(args)
	}
	return 0, false
}

func parseHexColor(hex string) (Color, bool) {
	switch len(hex) {
	case 3, 4:
		var sb strings.Builder
		for _, r := range hex {
			sb.WriteRune(r)
			sb.WriteRune(r)
		}
		hex = sb.String()
	case 6, 8:
	default:
		return 0, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, false
	}
	if len(hex) == 6 {
		return RGB(uint32(v)), true
	}
	return Color(v), true
}

func cutFunction(s, name string) (string, bool) {
	rest, ok := strings.CutPrefix(s, name+"(")
	if !ok {
		return "", false
	}
	return strings.CutSuffix(strings.TrimSpace(rest), ")")
}

func parseRGBFunc(args string) (Color, bool) {
	fields := strings.FieldsFunc(args, func(r rune) bool {
		return r == ',' || r == ' ' || r == '/' || r == '\t'
	})
	if len(fields) != 3 && len(fields) != 4 {
		return 0, false
	}
	var c uint32
	for i := range 3 {
		v, ok := channel(fields[i], 255)
		if !ok {
			return 0, false
		}
		c = c<<8 | v
	}
	alpha := uint32(0xff)
	if len(fields) == 4 {
		v, ok := channel(fields[3], 1)
		if !ok {
			return 0, false
		}
		alpha = v
	}
	return Color(c<<8 | alpha), true
}

// channel converts a color component into 0-255 range. Plain numbers are
// relative to scale (255 for color channels, 1 for alpha).
func channel(s string, scale float64) (uint32, bool) {
	var (
		f   float64
		err error
	)
	if pct, ok := strings.CutSuffix(s, "%"); ok {
		f, err = strconv.ParseFloat(pct, 64)
		f /= 100
	} else {
		f, err = strconv.ParseFloat(s, 64)
		f /= scale
	}
	if err != nil {
		return 0, false
	}
	f = min(max(f, 0), 1)
	return uint32(f*255 + 0.5), true
}
