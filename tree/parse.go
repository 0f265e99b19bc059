package tree

import (
	"errors"
	"io"

	"go.uber.org/zap"
	"golang.org/x/net/html"
)

// Parse tokenizes HTML from r and builds tree out of it. Comments and doctype
// are ignored. Tokenizer failures end the stream, whatever was built so far
// is returned.
func Parse(r io.Reader, log *zap.Logger) *Tree {
	if log == nil {
		log = zap.NewNop()
	}
	b := NewBuilder(log)

	z := html.NewTokenizer(r)
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				log.Warn("HTML tokenizer emitted error", zap.Error(err))
			}
			return b.End()
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			b.Open(tok.Data, tok.Attr, tt == html.SelfClosingTagToken)
		case html.EndTagToken:
			tok := z.Token()
			// already logged by builder
			_ = b.Close(tok.Data)
		case html.TextToken:
			b.Text(string(z.Text()))
		case html.CommentToken, html.DoctypeToken:
		}
	}
}
