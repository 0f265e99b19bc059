package layout

import (
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"mdflow/utils/debug"
)

// Dump returns human readable listing of elements, one element per top level
// entry with its fragments nested below.
func Dump(elems []Element) string {
	tw := debug.NewTreeWriter()
	for _, e := range elems {
		dumpElement(tw, 0, e)
	}
	return tw.String()
}

func dumpElement(tw *debug.TreeWriter, depth int, e Element) {
	switch e := e.(type) {
	case *TextBox:
		dumpBox(tw, depth, "textbox", e)
	case Spacer:
		if e.Visible {
			tw.Line(depth, "spacer visible")
		} else {
			tw.Line(depth, "spacer")
		}
	case *Table:
		tw.Line(depth, "table rows=%d", len(e.Rows))
		for i, row := range e.Rows {
			tw.Line(depth+1, "row %d", i)
			for _, cell := range row {
				dumpBox(tw, depth+2, "cell", cell)
			}
		}
	}
}

func dumpBox(tw *debug.TreeWriter, depth int, name string, b *TextBox) {
	var align, checkbox, background string
	if b.Align != nil {
		align = b.Align.String()
	}
	if b.Checkbox != nil {
		checkbox = strconv.FormatBool(*b.Checkbox)
	}
	if b.Background != nil {
		background = formatColor(*b.Background)
	}
	tw.Fields(depth, name,
		"size", formatFloat(b.FontSize),
		"indent", formatNonZero(b.Indent),
		"align", align,
		"anchor", b.Anchor,
		"checkbox", checkbox,
		"background", background,
		"code", flag(b.CodeBlock),
		"quote", formatCount(b.QuoteDepth),
	)
	for _, t := range b.Texts {
		tw.TextBlock(depth+1, textLabel(t), t.Text)
	}
}

// textLabel lists style flags of a fragment, e.g. "bold,mono,link=#x".
func textLabel(t Text) string {
	var label string
	add := func(s string) {
		if label != "" {
			label += ","
		}
		label += s
	}
	if t.Bold {
		add("bold")
	}
	if t.Italic {
		add("italic")
	}
	if t.Underline {
		add("underline")
	}
	if t.Strike {
		add("strike")
	}
	if t.Family == FamilyMonospace {
		add("mono")
	}
	if t.Link != "" {
		add("link=" + t.Link)
	}
	return label
}

func flag(v bool) string {
	if v {
		return "true"
	}
	return ""
}

func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

func formatNonZero(v float32) string {
	if v == 0 {
		return ""
	}
	return formatFloat(v)
}

func formatCount(v int) string {
	if v == 0 {
		return ""
	}
	return strconv.Itoa(v)
}

func formatColor(c [4]float32) string {
	return fmt.Sprintf("[%.3f %.3f %.3f %.3f]", c[0], c[1], c[2], c[3])
}

// yamlElement is serialized form of Element, exactly one field is set.
type yamlElement struct {
	TextBox *TextBox `yaml:"textbox,omitempty"`
	Spacer  *Spacer  `yaml:"spacer,omitempty"`
	Table   *Table   `yaml:"table,omitempty"`
}

// EncodeYAML writes elements as YAML sequence.
func EncodeYAML(w io.Writer, elems []Element) error {
	out := make([]yamlElement, 0, len(elems))
	for _, e := range elems {
		switch e := e.(type) {
		case *TextBox:
			out = append(out, yamlElement{TextBox: e})
		case Spacer:
			out = append(out, yamlElement{Spacer: &e})
		case *Table:
			out = append(out, yamlElement{Table: e})
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("unable to encode layout: %w", err)
	}
	return enc.Close()
}
