package interpret

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"mdflow/layout"
	"mdflow/markup"
	"mdflow/tree"
)

const bullet = "· "

func (f *flow) list(n *tree.Node, st State, ordered bool) {
	f.pushTextBox(st)

	index := 1
	if a, ok := markup.Find(n.Attrs, markup.AttrStart); ok && ordered {
		index = a.Start
	}
	item := st.Derive(func(s *State) {
		s.Indent += halfMargin
	})

	for _, it := range n.Content {
		if it.IsText() {
			if strings.TrimSpace(it.Text()) != "" {
				f.log.Warn("Text directly inside of list ignored", zap.String("text", it.Text()))
			}
			continue
		}
		child := f.tree.Node(it.Index())
		if child.Tag != markup.TagListItem {
			f.misplaced(child)
			continue
		}
		prefix := bullet
		if ordered {
			prefix = strconv.Itoa(index) + ". "
			index++
		}
		f.listItem(child, item, prefix)
	}

	f.closeBlock(item, st)
	if item.Indent == halfMargin {
		f.pushSpacer(false)
	}
}

func (f *flow) listItem(n *tree.Node, st State, prefix string) {
	f.pushTextBox(st)

	if checked, ok := f.leadingCheckbox(n); ok {
		f.box.SetCheckbox(checked)
	} else {
		t := layout.NewText(prefix, f.theme.Scale, f.textColor)
		t.Bold = true
		f.box.Texts = append(f.box.Texts, t)
	}
	f.marker = true

	f.content(n.Content, st)
	f.pushTextBox(st)
}

// leadingCheckbox looks for checkbox input being the first child of the item,
// loose items wrap it into paragraph.
func (f *flow) leadingCheckbox(n *tree.Node) (checked, ok bool) {
	for _, it := range n.Content {
		if it.IsText() {
			if strings.TrimSpace(it.Text()) == "" {
				continue
			}
			return false, false
		}
		child := f.tree.Node(it.Index())
		switch child.Tag {
		case markup.TagInput:
			if !markup.Has(child.Attrs, markup.AttrIsCheckbox) {
				return false, false
			}
			return markup.Has(child.Attrs, markup.AttrIsChecked), true
		case markup.TagParagraph:
			return f.leadingCheckbox(child)
		default:
			return false, false
		}
	}
	return false, false
}
