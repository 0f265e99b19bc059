// Package common holds small closed enumerations shared between configuration,
// interpretation and output stages. Keeping them here lets config stay free of
// any dependency on layout code.
package common

// Horizontal alignment of a text box.
// ENUM(left, center, right)
type Align int

// Target surface color format. Formats with srgb suffix expect linear color
// values which will be encoded by the surface.
// ENUM(rgba8unorm, rgba8unorm-srgb, bgra8unorm, bgra8unorm-srgb)
type ColorFormat string

// IsSRGB reports whether surface performs sRGB encoding on write.
func (f ColorFormat) IsSRGB() bool {
	return f == ColorFormatRgba8unormSrgb || f == ColorFormatBgra8unormSrgb
}

// Specification of requested layout dump type.
// ENUM(text, yaml)
type OutputFmt int

func (o OutputFmt) Ext() string {
	switch o {
	case OutputFmtText:
		return ".layout.txt"
	case OutputFmtYaml:
		return ".layout.yaml"
	default:
		// this should never happen
		panic("unsupported output format requested")
	}
}
