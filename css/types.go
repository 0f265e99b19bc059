package css

import (
	"fmt"
	"unicode"

	"mdflow/common"
)

// Value represents a parsed CSS property value.
type Value struct {
	Raw     string  // Original CSS value string (e.g., "1.2em", "bold", "#ff0000")
	Value   float64 // Numeric value if applicable
	Unit    string  // Unit if applicable: "em", "px", "%", "pt", etc.
	Keyword string  // Keyword if applicable: "bold", "italic", "center", etc.
}

// IsNumeric returns true if the value has a numeric component.
// This includes explicit zero values like "0" or "0px".
func (v Value) IsNumeric() bool {
	if v.Unit != "" {
		return true
	}
	if v.Value != 0 && v.Keyword == "" {
		return true
	}
	if v.Raw != "" && v.Keyword == "" {
		firstChar := rune(v.Raw[0])
		if unicode.IsDigit(firstChar) || firstChar == '.' || firstChar == '-' || firstChar == '+' {
			return true
		}
	}
	return false
}

// Declaration is a single "property: value" pair of an inline style.
type Declaration struct {
	Property  string // lower case property name
	Value     Value
	Important bool
}

// Color is a RGBA color packed as 0xRRGGBBAA.
type Color uint32

// RGB packs opaque color from 0xRRGGBB.
func RGB(rgb uint32) Color {
	return Color(rgb<<8 | 0xff)
}

// RGBA returns color channels.
func (c Color) RGBA() (r, g, b, a uint8) {
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), uint8(c)
}

func (c Color) String() string {
	return fmt.Sprintf("#%08x", uint32(c))
}

// FontWeight of an inline style, zero value means not specified.
type FontWeight int

const (
	FontWeightUnset FontWeight = iota
	FontWeightNormal
	FontWeightBold
)

// FontStyle of an inline style, zero value means not specified.
type FontStyle int

const (
	FontStyleUnset FontStyle = iota
	FontStyleNormal
	FontStyleItalic
)

// TextDecoration of an inline style, zero value means not specified.
type TextDecoration int

const (
	TextDecorationUnset TextDecoration = iota
	TextDecorationNone
	TextDecorationUnderline
	TextDecorationLineThrough
)

// InlineStyle is the subset of inline declarations layout cares about. Nil
// pointers and zero enums mean the property was absent or not understood.
type InlineStyle struct {
	Color           *Color
	BackgroundColor *Color
	FontWeight      FontWeight
	FontStyle       FontStyle
	TextDecoration  TextDecoration
	TextAlign       *common.Align
}

// IsEmpty reports whether nothing usable was found.
func (s InlineStyle) IsEmpty() bool {
	return s.Color == nil && s.BackgroundColor == nil && s.FontWeight == FontWeightUnset &&
		s.FontStyle == FontStyleUnset && s.TextDecoration == TextDecorationUnset && s.TextAlign == nil
}
