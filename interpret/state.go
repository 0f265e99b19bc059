package interpret

import (
	"mdflow/common"
	"mdflow/css"
)

// TextOptions are cascading text flags.
type TextOptions struct {
	Bold         bool
	Italic       bool
	Underline    bool
	Strike       bool
	Small        bool
	Code         bool
	Preformatted bool
	QuoteDepth   int
	// Align is shared between copies, it is only ever replaced, never
	// written through.
	Align *common.Align
}

// Span is styling of code runs coming from span style attributes.
type Span struct {
	Color      [4]float32
	Weight     css.FontWeight
	Style      css.FontStyle
	Decoration css.TextDecoration
}

// State is inherited formatting state. It is passed by value, every branch
// works on its own copy.
type State struct {
	Indent  float32
	Options TextOptions
	Span    Span
}

// Derive returns modified copy of the state leaving receiver intact.
func (s State) Derive(fn func(*State)) State {
	fn(&s)
	return s
}
