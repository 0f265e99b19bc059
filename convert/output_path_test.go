package convert

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"mdflow/common"
	"mdflow/state"
)

func TestBuildOutputPath(t *testing.T) {
	dst := filepath.FromSlash("/out")
	tests := []struct {
		name string
		src  string
		env  state.LocalEnv
		want string
	}{
		{
			name: "single file",
			src:  "readme.html",
			env:  state.LocalEnv{Format: common.OutputFmtText},
			want: "/out/readme.layout.txt",
		},
		{
			name: "keeps directories",
			src:  "docs/guide/intro.htm",
			env:  state.LocalEnv{Format: common.OutputFmtYaml},
			want: "/out/docs/guide/intro.layout.yaml",
		},
		{
			name: "no directories",
			src:  "docs/guide/intro.htm",
			env:  state.LocalEnv{Format: common.OutputFmtText, NoDirs: true},
			want: "/out/intro.layout.txt",
		},
		{
			name: "transliterate",
			src:  "My Guide/First Steps!.html",
			env:  state.LocalEnv{Format: common.OutputFmtText, Transliterate: true},
			want: "/out/my-guide/first-steps.layout.txt",
		},
		{
			name: "parent references stay inside destination",
			src:  "../../escape.html",
			env:  state.LocalEnv{Format: common.OutputFmtText},
			want: "/out/_/_/escape.layout.txt",
		},
		{
			name: "hidden name",
			src:  ".hidden.html",
			env:  state.LocalEnv{Format: common.OutputFmtText},
			want: "/out/hidden.layout.txt",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildOutputPath(filepath.FromSlash(tt.src), dst, &tt.env)
			if got != filepath.FromSlash(tt.want) {
				t.Errorf("buildOutputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSplitPath(t *testing.T) {
	tests := map[string][]string{
		".":       nil,
		"":        nil,
		"a":       {"a"},
		"a/b/c":   {"a", "b", "c"},
		"a//b/./": {"a", "b"},
	}
	for in, want := range tests {
		if diff := cmp.Diff(want, splitPath(in)); diff != "" {
			t.Errorf("splitPath(%q) mismatch (-want +got):\n%s", in, diff)
		}
	}
}
