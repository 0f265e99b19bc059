package tree

import (
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/net/html"

	"mdflow/markup"
)

// Builder consumes tag-open, tag-close, text and end-of-stream events and
// produces Tree. Builder recovers from every malformation it sees: problems
// are logged, remembered and construction continues.
type Builder struct {
	log *zap.Logger

	nodes []Node
	// parents is the stack of arena indexes of currently open nodes, top is
	// the node receiving content.
	parents []int
	// toClose mirrors parents with tags expected to be closed.
	toClose []markup.Tag

	err   error
	ended bool
}

// NewBuilder returns builder holding only root node.
func NewBuilder(log *zap.Logger) *Builder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Builder{
		log:     log.Named("tree"),
		nodes:   []Node{{Tag: markup.TagRoot}},
		parents: []int{RootIndex},
		toClose: []markup.Tag{markup.TagRoot},
	}
}

func (b *Builder) current() *Node {
	return &b.nodes[b.parents[len(b.parents)-1]]
}

// Open handles start tag. Unknown tags do not create nodes, anything inside of
// them ends up in the enclosing node.
func (b *Builder) Open(name string, attrs []html.Attribute, selfClosing bool) {
	tag, ok := markup.Lookup(name)
	if !ok {
		b.log.Info("Ignoring start tag", zap.Error(&UnknownTagError{Name: name}))
		return
	}

	index := len(b.nodes)
	b.current().Content = append(b.current().Content, NodeItem(index))
	b.nodes = append(b.nodes, Node{Tag: tag, Attrs: markup.ParseAttrs(attrs)})

	if selfClosing || tag.IsVoid() {
		return
	}
	b.parents = append(b.parents, index)
	b.toClose = append(b.toClose, tag)
}

// Close handles end tag. On mismatch innermost element is closed anyway, so
// the rest of the document still gets reasonable structure.
func (b *Builder) Close(name string) error {
	tag, ok := markup.Lookup(name)
	if !ok {
		err := &UnknownTagError{Name: name, Closing: true}
		b.log.Info("Ignoring end tag", zap.Error(err))
		return err
	}
	if tag.IsVoid() {
		return nil
	}

	if len(b.toClose) <= 1 {
		err := &MismatchError{Expected: markup.TagRoot, Found: tag}
		b.fail(err)
		return err
	}

	expected := b.toClose[len(b.toClose)-1]
	b.toClose = b.toClose[:len(b.toClose)-1]
	b.parents = b.parents[:len(b.parents)-1]

	if expected != tag {
		err := &MismatchError{Expected: expected, Found: tag}
		b.fail(err)
		return err
	}
	return nil
}

// Text appends text to the current node. Single newline right after start
// tag is a tokenizer artifact and is dropped.
func (b *Builder) Text(s string) {
	n := b.current()
	if s == "\n" && len(n.Content) == 0 {
		return
	}
	n.Content = append(n.Content, TextItem(s))
}

// End reports tags left open and returns resulting tree. No attempt is made to
// close them.
func (b *Builder) End() *Tree {
	if !b.ended {
		b.ended = true
		for _, tag := range b.toClose[1:] {
			err := &UnclosedError{Tag: tag}
			b.log.Warn("Document contains unclosed tag", zap.Error(err))
			b.err = multierr.Append(b.err, err)
		}
	}
	return &Tree{nodes: b.nodes, err: b.err}
}

func (b *Builder) fail(err error) {
	b.log.Error("Malformed document", zap.Error(err))
	b.err = multierr.Append(b.err, err)
}
