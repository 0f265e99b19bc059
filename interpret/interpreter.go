// Package interpret walks node tree threading inherited formatting state down
// each branch and emits flat sequence of layout elements.
package interpret

import (
	"go.uber.org/zap"

	"mdflow/anchor"
	"mdflow/css"
	"mdflow/layout"
	"mdflow/theme"
	"mdflow/tree"
)

// Interpreter converts trees into layout elements. It keeps no per document
// state and may be used for many documents, including concurrently.
type Interpreter struct {
	theme   theme.Theme
	log     *zap.Logger
	anchors *anchor.Anchorizer
	workers int
	styles  *css.Parser

	textColor [4]float32
	linkColor [4]float32
	codeColor [4]float32
}

// Option configures Interpreter.
type Option func(*Interpreter)

// WithLogger sets logger, default is no logging.
func WithLogger(log *zap.Logger) Option {
	return func(in *Interpreter) {
		if log != nil {
			in.log = log
		}
	}
}

// WithAnchorizer makes interpreter use the same anchorizer for every
// document. By default each document gets a fresh one.
func WithAnchorizer(a *anchor.Anchorizer) Option {
	return func(in *Interpreter) {
		in.anchors = a
	}
}

// WithParallel processes top level blocks of a document using up to workers
// goroutines. Values below 2 mean sequential processing.
func WithParallel(workers int) Option {
	return func(in *Interpreter) {
		in.workers = workers
	}
}

// New creates interpreter for theme.
func New(th theme.Theme, opts ...Option) *Interpreter {
	in := &Interpreter{theme: th, log: zap.NewNop(), workers: 1}
	for _, opt := range opts {
		opt(in)
	}
	in.log = in.log.Named("interpret")
	in.styles = css.NewParser(in.log)
	in.textColor = th.Native(th.TextColor)
	in.linkColor = th.Native(th.LinkColor)
	in.codeColor = th.Native(th.CodeColor)
	return in
}

// Interpret produces layout elements for the whole tree. Problems with
// content are logged and skipped, the rest of the document is always
// processed.
func (in *Interpreter) Interpret(t *tree.Tree) []layout.Element {
	anchors := in.anchors
	if anchors == nil {
		anchors = anchor.New()
	}

	items := t.Root().Content
	if in.workers > 1 && len(items) > 1 {
		return in.interpretParallel(t, items, anchors)
	}

	st := in.initialState()
	f := in.newFlow(t, anchors)
	f.content(items, st)
	f.pushTextBox(st)
	return f.out
}

func (in *Interpreter) initialState() State {
	return State{Span: Span{Color: in.codeColor}}
}
