// Package tree builds well formed node tree out of flat, possibly malformed
// stream of markup tokens.
//
// Nodes are kept in a single append-only arena and reference their children
// by index. Parents are never stored on nodes, parent tracking exists only
// while tree is being built.
package tree

import (
	"fmt"

	"go.uber.org/multierr"

	"mdflow/markup"
	"mdflow/utils/debug"
)

// Item is a single content entry of a node: either literal text or a
// reference to a child node.
type Item struct {
	text   string
	child  int
	isText bool
}

// TextItem creates text content entry.
func TextItem(s string) Item {
	return Item{text: s, isText: true}
}

// NodeItem creates child reference content entry.
func NodeItem(index int) Item {
	return Item{child: index}
}

// IsText reports whether item holds literal text.
func (it Item) IsText() bool {
	return it.isText
}

// Text returns literal text, empty for child references.
func (it Item) Text() string {
	return it.text
}

// Index returns arena index of the child node, -1 for text items.
func (it Item) Index() int {
	if it.isText {
		return -1
	}
	return it.child
}

// Node is one element produced from a start tag.
type Node struct {
	Tag     markup.Tag
	Attrs   []markup.Attr
	Content []Item
}

// RootIndex is arena index of the synthetic root node.
const RootIndex = 0

// Tree is the result of building: arena of nodes rooted at RootIndex.
type Tree struct {
	nodes []Node
	err   error
}

// Len returns number of nodes in arena, root included.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Node returns node at index. Out of range index means the arena was not built
// by Builder and is considered a program defect.
func (t *Tree) Node(index int) *Node {
	if index < 0 || index >= len(t.nodes) {
		panic(fmt.Sprintf("tree: node index %d out of range [0, %d)", index, len(t.nodes)))
	}
	return &t.nodes[index]
}

// Root returns synthetic root node.
func (t *Tree) Root() *Node {
	return t.Node(RootIndex)
}

// Err returns combined structural problems (mismatched and unclosed tags)
// detected while building, nil for well formed input.
func (t *Tree) Err() error {
	return t.err
}

// Issues returns structural problems one by one.
func (t *Tree) Issues() []error {
	return multierr.Errors(t.err)
}

// String returns indented listing of the tree.
func (t *Tree) String() string {
	tw := debug.NewTreeWriter()
	t.dump(tw, RootIndex, 0)
	return tw.String()
}

func (t *Tree) dump(tw *debug.TreeWriter, index, depth int) {
	n := t.Node(index)
	if len(n.Attrs) == 0 {
		tw.Line(depth, "%s", n.Tag)
	} else {
		tw.Line(depth, "%s %v", n.Tag, n.Attrs)
	}
	for _, it := range n.Content {
		if it.IsText() {
			tw.TextBlock(depth+1, "", it.Text())
			continue
		}
		t.dump(tw, it.Index(), depth+1)
	}
}
