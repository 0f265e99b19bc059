// Package theme keeps read-only visual settings supplied to the interpreter
// and converts theme colors into the representation expected by the target
// surface.
package theme

import (
	"fmt"
	"math"

	"mdflow/common"
	"mdflow/config"
	"mdflow/css"
)

// Theme is created once and never modified afterwards.
type Theme struct {
	TextColor css.Color
	LinkColor css.Color
	CodeColor css.Color
	Format    common.ColorFormat
	Scale     float32
}

// DarkDefault returns built-in theme used when no configuration is available.
func DarkDefault() Theme {
	return Theme{
		TextColor: css.RGB(0x9daab6),
		LinkColor: css.RGB(0x4182eb),
		CodeColor: css.RGB(0xc0c5ce),
		Format:    common.ColorFormatBgra8unormSrgb,
		Scale:     1,
	}
}

// FromConfig builds theme out of validated configuration section.
func FromConfig(cfg *config.ThemeConfig) (Theme, error) {
	th := Theme{Format: cfg.ColorFormat, Scale: float32(cfg.ScaleFactor)}

	for _, c := range []struct {
		name string
		in   string
		out  *css.Color
	}{
		{"text_color", cfg.TextColor, &th.TextColor},
		{"link_color", cfg.LinkColor, &th.LinkColor},
		{"code_color", cfg.CodeColor, &th.CodeColor},
	} {
		v, ok := css.ParseColor(c.in)
		if !ok {
			return Theme{}, fmt.Errorf("unable to parse theme %s %q", c.name, c.in)
		}
		*c.out = v
	}
	if !th.Format.IsValid() {
		return Theme{}, fmt.Errorf("unsupported color format %q", th.Format)
	}
	if th.Scale <= 0 {
		th.Scale = 1
	}
	return th, nil
}

// Native converts color to normalized RGBA for theme surface format. For
// sRGB surfaces color channels are linearized since surface will encode them
// back on write. Alpha is always linear.
func (t Theme) Native(c css.Color) [4]float32 {
	r, g, b, a := c.RGBA()
	out := [4]float32{float32(r) / 255, float32(g) / 255, float32(b) / 255, float32(a) / 255}
	if t.Format.IsSRGB() {
		for i := range 3 {
			out[i] = srgbToLinear(out[i])
		}
	}
	return out
}

func srgbToLinear(v float32) float32 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return float32(math.Pow((float64(v)+0.055)/1.055, 2.4))
}
