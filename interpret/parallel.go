package interpret

import (
	"golang.org/x/sync/errgroup"

	"mdflow/anchor"
	"mdflow/layout"
	"mdflow/markup"
	"mdflow/tree"
)

// interpretParallel walks independent top level units concurrently. Units
// are merged in document order and heading anchors are resolved afterwards
// in the same order, so result is identical to sequential walk.
func (in *Interpreter) interpretParallel(t *tree.Tree, items []tree.Item, anchors *anchor.Anchorizer) []layout.Element {
	units := splitUnits(t, items)
	flows := make([]*flow, len(units))

	var g errgroup.Group
	g.SetLimit(in.workers)
	for i, unit := range units {
		g.Go(func() error {
			st := in.initialState()
			f := in.newFlow(t, nil)
			f.content(unit, st)
			f.pushTextBox(st)
			flows[i] = f
			return nil
		})
	}
	// units never fail
	_ = g.Wait()

	var out []layout.Element
	for _, f := range flows {
		for _, p := range f.pending {
			p.box.Anchor = "#" + anchors.Anchorize(p.text)
		}
		out = append(out, f.out...)
	}
	return out
}

// splitUnits groups top level items. Every block element starts and ends
// with box flush and forms its own unit, runs of inline content share one.
func splitUnits(t *tree.Tree, items []tree.Item) [][]tree.Item {
	var (
		units  [][]tree.Item
		inline []tree.Item
	)
	for _, it := range items {
		if it.IsText() || !isBlock(t.Node(it.Index()).Tag) {
			inline = append(inline, it)
			continue
		}
		if len(inline) > 0 {
			units = append(units, inline)
			inline = nil
		}
		units = append(units, []tree.Item{it})
	}
	if len(inline) > 0 {
		units = append(units, inline)
	}
	return units
}

func isBlock(tag markup.Tag) bool {
	switch tag {
	case markup.TagParagraph, markup.TagDiv, markup.TagBlockQuote,
		markup.TagH1, markup.TagH2, markup.TagH3, markup.TagH4, markup.TagH5, markup.TagH6,
		markup.TagHorizontalRule, markup.TagPreformatted,
		markup.TagOrderedList, markup.TagUnorderedList, markup.TagTable:
		return true
	}
	return false
}
