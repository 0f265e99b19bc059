// Package debug contains helpers producing human readable dumps of internal
// structures for logs, tests and debug reports.
package debug

import (
	"fmt"
	"strconv"
	"strings"
)

// TreeWriter writes indented tree listings, two spaces per level.
type TreeWriter struct {
	w *strings.Builder
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{
		w: &strings.Builder{},
	}
}

func (tw TreeWriter) String() string {
	return tw.w.String()
}

func (tw TreeWriter) indent(depth int) {
	for range depth {
		tw.w.WriteString("  ")
	}
}

// Line writes formatted line at depth.
func (tw TreeWriter) Line(depth int, format string, args ...any) {
	tw.indent(depth)
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

// TextBlock writes quoted text value with label, empty values are written as is.
func (tw TreeWriter) TextBlock(depth int, label, value string) {
	tw.indent(depth)
	if label != "" {
		tw.w.WriteString(label)
		tw.w.WriteString(": ")
	}
	tw.w.WriteString(encodeText(value))
	tw.w.WriteByte('\n')
}

// Fields writes a node header followed by non-empty key=value pairs in the
// order given. Pairs with empty values are skipped.
func (tw TreeWriter) Fields(depth int, name string, kv ...string) {
	tw.indent(depth)
	tw.w.WriteString(name)
	for i := 0; i+1 < len(kv); i += 2 {
		if kv[i+1] == "" {
			continue
		}
		tw.w.WriteByte(' ')
		tw.w.WriteString(kv[i])
		tw.w.WriteByte('=')
		tw.w.WriteString(kv[i+1])
	}
	tw.w.WriteByte('\n')
}

func encodeText(raw string) string {
	if raw == "" {
		return raw
	}
	return strconv.Quote(raw)
}
