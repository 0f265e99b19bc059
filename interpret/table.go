package interpret

import (
	"strings"

	"go.uber.org/zap"

	"mdflow/layout"
	"mdflow/markup"
	"mdflow/tree"
)

func (f *flow) table(n *tree.Node, st State) {
	f.pushTextBox(st)
	f.pushSpacer(false)

	tbl := &layout.Table{}
	f.tableContent(tbl, n, st)
	f.out = append(f.out, tbl)

	f.pushSpacer(false)
}

// tableContent collects rows and cells of table or of its row group.
func (f *flow) tableContent(tbl *layout.Table, n *tree.Node, st State) {
	for _, it := range n.Content {
		if it.IsText() {
			if strings.TrimSpace(it.Text()) != "" {
				f.log.Warn("Text outside of table cell ignored", zap.String("text", it.Text()))
			}
			continue
		}
		child := f.tree.Node(it.Index())
		switch child.Tag {
		case markup.TagTableHead, markup.TagTableBody:
			f.tableContent(tbl, child, st)
		case markup.TagTableRow:
			tbl.PushRow()
			f.tableContent(tbl, child, st)
		case markup.TagTableHeader, markup.TagTableDataCell:
			tbl.PushCell(f.tableCell(child, st))
		default:
			f.log.Warn("Unexpected element inside of table skipped", zap.Stringer("tag", child.Tag))
		}
	}
}

// tableCell composes cell box. Only text is supported in cells for now.
func (f *flow) tableCell(n *tree.Node, st State) *layout.TextBox {
	st = f.withAlign(st, n.Attrs)
	if n.Tag == markup.TagTableHeader {
		st.Options.Bold = true
	}

	cell := layout.NewTextBox(f.theme.Scale)
	cell.Indent = st.Indent
	for _, it := range n.Content {
		if !it.IsText() {
			f.log.Warn("Rich content in table cell ignored", zap.Stringer("tag", f.tree.Node(it.Index()).Tag))
			continue
		}
		f.compose(cell, st, it.Text())
	}
	return cell
}
