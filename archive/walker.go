// Package archive finds markup documents inside of zip archives.
package archive

import (
	"archive/zip"
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"
)

// WalkFunc is called for every document found by Walk. Returned error stops
// the walk.
type WalkFunc func(archive string, file *zip.File) error

// IsMarkup reports whether file name looks like HTML document.
func IsMarkup(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".html", ".htm", ".xhtml":
		return true
	}
	return false
}

// Walk visits HTML documents of archive with names starting with prefix in
// archive order. Archive with absolute or ".." entry names is refused as a
// whole. Context is checked between documents.
func Walk(ctx context.Context, archive, prefix string, walkFn WalkFunc) error {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		if !isSafePath(f.Name) {
			return fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", f.Name)
		}
	}

	for _, f := range r.File {
		if f.FileInfo().IsDir() || !strings.HasPrefix(f.Name, prefix) || !IsMarkup(f.Name) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := walkFn(archive, f); err != nil {
			return err
		}
	}
	return nil
}

func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, `\`) {
		return false
	}
	for part := range strings.SplitSeq(strings.ReplaceAll(name, `\`, "/"), "/") {
		if part == ".." {
			return false
		}
	}
	return true
}
