// Package layout defines render-ready elements produced by the interpreter.
// Elements are positioned by an external layout stage, nothing here knows
// about glyphs or pixels beyond font sizes and margins.
package layout

import (
	"strings"

	"mdflow/common"
)

const (
	// DefaultMargin is the base horizontal margin, nested blocks are indented
	// by half of it.
	DefaultMargin float32 = 100
	// DefaultFontSize is the font size of a fresh text box.
	DefaultFontSize float32 = 16
	// SmallFontSize is used for boxes containing small text.
	SmallFontSize float32 = 12
)

// Element is one of *TextBox, Spacer or *Table.
type Element interface {
	element()
}

// Family is a font family class.
type Family int

const (
	FamilyProportional Family = iota
	FamilyMonospace
)

func (f Family) String() string {
	if f == FamilyMonospace {
		return "monospace"
	}
	return "proportional"
}

// MarshalText implements encoding.TextMarshaler.
func (f Family) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// Text is a run of text sharing single resolved style.
type Text struct {
	Text      string     `yaml:"text"`
	Color     [4]float32 `yaml:"color,flow"`
	Family    Family     `yaml:"family"`
	Bold      bool       `yaml:"bold,omitempty"`
	Italic    bool       `yaml:"italic,omitempty"`
	Underline bool       `yaml:"underline,omitempty"`
	Strike    bool       `yaml:"strike,omitempty"`
	Link      string     `yaml:"link,omitempty"`
	Scale     float32    `yaml:"scale"`
}

// NewText returns unstyled proportional text.
func NewText(s string, scale float32, color [4]float32) Text {
	return Text{Text: s, Scale: scale, Color: color}
}

// TextBox groups text fragments rendered together, similar to an inline
// formatting context.
type TextBox struct {
	Texts      []Text        `yaml:"texts"`
	FontSize   float32       `yaml:"font_size"`
	Indent     float32       `yaml:"indent,omitempty"`
	Scale      float32       `yaml:"scale"`
	Align      *common.Align `yaml:"align,omitempty"`
	Background *[4]float32   `yaml:"background,omitempty,flow"`
	Anchor     string        `yaml:"anchor,omitempty"`
	Checkbox   *bool         `yaml:"checkbox,omitempty"`
	CodeBlock  bool          `yaml:"code_block,omitempty"`
	QuoteDepth int           `yaml:"quote_depth,omitempty"`
}

func (*TextBox) element() {}

// NewTextBox returns empty box with default font size.
func NewTextBox(scale float32) *TextBox {
	return &TextBox{FontSize: DefaultFontSize, Scale: scale}
}

// HasContent reports whether any fragment has non-empty text.
func (b *TextBox) HasContent() bool {
	for i := range b.Texts {
		if b.Texts[i].Text != "" {
			return true
		}
	}
	return false
}

// PlainText returns concatenated text of all fragments.
func (b *TextBox) PlainText() string {
	var sb strings.Builder
	for i := range b.Texts {
		sb.WriteString(b.Texts[i].Text)
	}
	return sb.String()
}

// Last returns last fragment or nil for empty box.
func (b *TextBox) Last() *Text {
	if len(b.Texts) == 0 {
		return nil
	}
	return &b.Texts[len(b.Texts)-1]
}

// SetCheckbox marks box as task list item.
func (b *TextBox) SetCheckbox(checked bool) {
	b.Checkbox = &checked
}

// Spacer is vertical rhythm element, visible spacer draws a rule.
type Spacer struct {
	Visible bool `yaml:"visible"`
}

func (Spacer) element() {}

// Table owns rows of cell boxes in document order.
type Table struct {
	Rows [][]*TextBox `yaml:"rows"`
}

func (*Table) element() {}

// PushRow starts a new empty row.
func (t *Table) PushRow() {
	t.Rows = append(t.Rows, nil)
}

// PushCell appends cell to the last row, creating it when table has none.
func (t *Table) PushCell(cell *TextBox) {
	if len(t.Rows) == 0 {
		t.PushRow()
	}
	last := len(t.Rows) - 1
	t.Rows[last] = append(t.Rows[last], cell)
}
