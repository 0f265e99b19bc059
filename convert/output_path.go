package convert

import (
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"

	"mdflow/config"
	"mdflow/state"
)

// buildOutputPath returns layout dump file path for document "src" (path
// relative to the source root). Source directory structure is kept unless
// NoDirs is requested, every path element is cleaned and, if requested,
// transliterated.
func buildOutputPath(src, dst string, env *state.LocalEnv) string {
	parts := []string{dst}
	if !env.NoDirs {
		for _, segment := range splitPath(filepath.Dir(src)) {
			parts = append(parts, cleanPathSegment(segment, env))
		}
	}
	base := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	parts = append(parts, cleanPathSegment(base, env)+env.Format.Ext())
	return filepath.Join(parts...)
}

// splitPath breaks relative path into elements dropping empty and current
// directory ones.
func splitPath(p string) []string {
	var segments []string
	for s := range strings.SplitSeq(filepath.ToSlash(p), "/") {
		if s == "" || s == "." {
			continue
		}
		segments = append(segments, s)
	}
	return segments
}

func cleanPathSegment(segment string, env *state.LocalEnv) string {
	if segment == ".." {
		return "_"
	}
	if env.Transliterate {
		segment = slug.Make(segment)
	}
	return config.SanitizeFileName(segment)
}
