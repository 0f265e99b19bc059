package interpret

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"mdflow/css"
	"mdflow/layout"
)

// compose turns raw text into styled fragments appended to box. Pending link
// of the walk is attached to the first fragment and cleared.
func (f *flow) compose(b *layout.TextBox, st State, s string) {
	pre := st.Options.Preformatted

	if s == "\n" {
		if pre {
			b.Texts = append(b.Texts, layout.NewText("\n", f.theme.Scale, f.textColor))
		}
		f.spaceIfNeeded(b)
		return
	}
	if !pre && strings.TrimSpace(s) == "" {
		f.spaceIfNeeded(b)
		return
	}

	if !pre {
		s = collapseSpace(s)
		if len(b.Texts) == 0 || (b == f.box && f.marker) {
			s = strings.TrimLeftFunc(s, unicode.IsSpace)
		}
	}

	if st.Options.QuoteDepth >= 1 {
		b.QuoteDepth = st.Options.QuoteDepth
	}
	if st.Options.Align != nil {
		b.Align = st.Options.Align
	}
	if st.Options.Small {
		b.FontSize = layout.SmallFontSize
	}

	if !pre {
		b.Texts = append(b.Texts, f.styled(st, s))
	} else {
		for _, line := range splitLines(s) {
			b.Texts = append(b.Texts, f.styled(st, line))
		}
	}
	if b == f.box {
		f.marker = false
	}
}

// styled creates fragment applying code, link and toggles in this order, so
// link color wins over code color.
func (f *flow) styled(st State, s string) layout.Text {
	t := layout.NewText(s, f.theme.Scale, f.textColor)

	if st.Options.Code {
		t.Family = layout.FamilyMonospace
		t.Color = st.Span.Color
		t.Bold = st.Span.Weight == css.FontWeightBold
		t.Italic = st.Span.Style == css.FontStyleItalic
		t.Underline = st.Span.Decoration == css.TextDecorationUnderline
		t.Strike = st.Span.Decoration == css.TextDecorationLineThrough
	}
	if f.link != "" {
		t.Link = f.link
		t.Color = f.linkColor
		f.link = ""
	}
	t.Bold = t.Bold || st.Options.Bold
	t.Italic = t.Italic || st.Options.Italic
	t.Underline = t.Underline || st.Options.Underline
	t.Strike = t.Strike || st.Options.Strike
	return t
}

// spaceIfNeeded adds word separator unless box is empty or already ends with
// whitespace.
func (f *flow) spaceIfNeeded(b *layout.TextBox) {
	last := b.Last()
	if last == nil || last.Text == "" {
		return
	}
	if r, _ := utf8.DecodeLastRuneInString(last.Text); unicode.IsSpace(r) {
		return
	}
	b.Texts = append(b.Texts, layout.NewText(" ", f.theme.Scale, f.textColor))
}

// collapseSpace replaces every run of whitespace with single space.
func collapseSpace(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	space := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !space {
				sb.WriteByte(' ')
			}
			space = true
			continue
		}
		space = false
		sb.WriteRune(r)
	}
	return sb.String()
}

// splitLines splits text so that every newline is a separate element.
func splitLines(s string) []string {
	var parts []string
	for s != "" {
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			parts = append(parts, s)
			break
		}
		if i > 0 {
			parts = append(parts, s[:i])
		}
		parts = append(parts, "\n")
		s = s[i+1:]
	}
	return parts
}
