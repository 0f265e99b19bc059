package interpret

import (
	"go.uber.org/zap"

	"mdflow/anchor"
	"mdflow/layout"
	"mdflow/markup"
	"mdflow/tree"
)

const halfMargin = layout.DefaultMargin / 2

// pendingAnchor is heading box waiting for its anchor.
type pendingAnchor struct {
	box  *layout.TextBox
	text string
}

// flow is a single walk over a tree or a part of it. It owns the current box
// accumulator and the output.
type flow struct {
	*Interpreter

	tree *tree.Tree
	box  *layout.TextBox
	out  []layout.Element

	// anchorizer is nil when heading anchors are resolved after the walk.
	anchorizer *anchor.Anchorizer
	pending    []pendingAnchor

	// marker is set while current box holds only list item marker (prefix
	// or checkbox) and no item text yet.
	marker bool

	// link is target of the last anchor not yet attached to a fragment.
	// Only the first fragment after the anchor start gets it.
	link string
}

func (in *Interpreter) newFlow(t *tree.Tree, anchors *anchor.Anchorizer) *flow {
	return &flow{
		Interpreter: in,
		tree:        t,
		box:         layout.NewTextBox(in.theme.Scale),
		anchorizer:  anchors,
	}
}

func (f *flow) content(items []tree.Item, st State) {
	for _, it := range items {
		if it.IsText() {
			f.compose(f.box, st, it.Text())
			continue
		}
		f.node(it.Index(), st)
	}
}

func (f *flow) node(index int, st State) {
	n := f.tree.Node(index)

	switch n.Tag {
	case markup.TagParagraph:
		f.openBlock(st)
		st = f.withAlign(st, n.Attrs)
		f.content(n.Content, st)
		f.pushTextBox(st)
		f.pushSpacer(false)

	case markup.TagDiv:
		f.openBlock(st)
		st = f.withAlign(st, n.Attrs)
		f.content(n.Content, st)
		f.pushTextBox(st)

	case markup.TagBlockQuote:
		f.pushTextBox(st)
		inner := st.Derive(func(s *State) {
			s.Options.QuoteDepth++
			s.Indent += halfMargin
		})
		f.content(n.Content, inner)
		f.closeBlock(inner, st)
		if inner.Indent == halfMargin {
			f.pushSpacer(false)
		}

	case markup.TagH1, markup.TagH2, markup.TagH3, markup.TagH4, markup.TagH5, markup.TagH6:
		f.heading(n, st)

	case markup.TagHorizontalRule:
		f.pushTextBox(st)
		f.pushSpacer(true)

	case markup.TagBreak:
		f.pushTextBox(st)

	case markup.TagPreformatted:
		f.pushTextBox(st)
		if a, ok := markup.Find(n.Attrs, markup.AttrStyle); ok {
			if bg := f.styles.ParseInline(a.Value).BackgroundColor; bg != nil {
				c := f.theme.Native(*bg)
				f.box.Background = &c
			}
		}
		f.box.CodeBlock = true
		st.Options.Preformatted = true
		f.content(n.Content, st)
		f.pushTextBox(st)
		f.pushSpacer(false)

	case markup.TagBold:
		st.Options.Bold = true
		f.content(n.Content, st)

	case markup.TagItalic:
		st.Options.Italic = true
		f.content(n.Content, st)

	case markup.TagUnderline:
		st.Options.Underline = true
		f.content(n.Content, st)

	case markup.TagStrikethrough:
		st.Options.Strike = true
		f.content(n.Content, st)

	case markup.TagSmall:
		st.Options.Small = true
		f.content(n.Content, st)

	case markup.TagCode:
		st.Options.Code = true
		f.content(n.Content, st)

	case markup.TagSpan:
		f.content(n.Content, f.withSpan(st, n.Attrs))

	case markup.TagAnchor:
		for _, a := range n.Attrs {
			switch a.Kind {
			case markup.AttrHref:
				f.link = a.Value
			case markup.AttrAnchor:
				f.box.Anchor = a.Value
			}
		}
		f.content(n.Content, st)

	case markup.TagInput:
		if markup.Has(n.Attrs, markup.AttrIsCheckbox) {
			f.box.SetCheckbox(markup.Has(n.Attrs, markup.AttrIsChecked))
		}

	case markup.TagOrderedList:
		f.list(n, st, true)

	case markup.TagUnorderedList:
		f.list(n, st, false)

	case markup.TagTable:
		f.table(n, st)

	case markup.TagImage, markup.TagPicture, markup.TagSource, markup.TagDetails, markup.TagSection:
		f.log.Warn("Unsupported element skipped", zap.Stringer("tag", n.Tag))

	case markup.TagListItem, markup.TagTableRow, markup.TagTableDataCell, markup.TagTableHeader,
		markup.TagTableHead, markup.TagTableBody, markup.TagSummary:
		f.misplaced(n)

	case markup.TagRoot:
		f.log.Error("Root element can't reach interpreter", zap.Int("index", index))

	default:
		f.log.Error("Element has no interpretation", zap.Stringer("tag", n.Tag))
	}
}

func (f *flow) heading(n *tree.Node, st State) {
	f.pushTextBox(st)
	f.pushSpacer(false)

	st = f.withAlign(st, n.Attrs)
	st.Options.Bold = true
	if n.Tag == markup.TagH1 {
		st.Options.Underline = true
	}
	f.box.FontSize *= n.Tag.SizeMultiplier()

	f.content(n.Content, st)

	text := f.box.PlainText()
	if f.anchorizer != nil {
		f.box.Anchor = "#" + f.anchorizer.Anchorize(text)
	} else {
		f.pending = append(f.pending, pendingAnchor{box: f.box, text: text})
	}
	f.pushTextBox(st)
	f.pushSpacer(false)
}

func (f *flow) misplaced(n *tree.Node) {
	f.log.Warn("Element outside of its structural parent skipped", zap.Stringer("tag", n.Tag))
}

// withAlign applies align attribute or text-align style of the element.
func (f *flow) withAlign(st State, attrs []markup.Attr) State {
	if a, ok := markup.Find(attrs, markup.AttrAlign); ok {
		align := a.Align
		st.Options.Align = &align
		return st
	}
	if a, ok := markup.Find(attrs, markup.AttrStyle); ok {
		if align := f.styles.ParseInline(a.Value).TextAlign; align != nil {
			st.Options.Align = align
		}
	}
	return st
}

func (f *flow) withSpan(st State, attrs []markup.Attr) State {
	a, ok := markup.Find(attrs, markup.AttrStyle)
	if !ok {
		return st
	}
	style := f.styles.ParseInline(a.Value)
	return st.Derive(func(s *State) {
		if style.Color != nil {
			s.Span.Color = f.theme.Native(*style.Color)
		}
		if style.FontWeight != 0 {
			s.Span.Weight = style.FontWeight
		}
		if style.FontStyle != 0 {
			s.Span.Style = style.FontStyle
		}
		if style.TextDecoration != 0 {
			s.Span.Decoration = style.TextDecoration
		}
	})
}

// pushTextBox replaces accumulator with a fresh box. Old box goes to output
// only when it has some text.
func (f *flow) pushTextBox(st State) {
	old := f.box
	f.box = layout.NewTextBox(f.theme.Scale)
	f.box.Indent = st.Indent
	f.marker = false

	if old.HasContent() {
		old.Indent = st.Indent
		f.out = append(f.out, old)
		return
	}
	if old.Checkbox != nil {
		f.log.Debug("Task item without text skipped", zap.Bool("checked", *old.Checkbox))
	}
}

// openBlock flushes accumulator before block content. List item marker stays
// in the box, so loose list items keep marker and text together.
func (f *flow) openBlock(st State) {
	if f.marker {
		return
	}
	f.pushTextBox(st)
}

// closeBlock flushes box built with inner state, following content continues
// with outer indent.
func (f *flow) closeBlock(inner, outer State) {
	f.pushTextBox(inner)
	f.box.Indent = outer.Indent
}

func (f *flow) pushSpacer(visible bool) {
	f.out = append(f.out, layout.Spacer{Visible: visible})
}
