package anchor

import (
	"sync"
	"testing"
)

func TestAnchorize(t *testing.T) {
	a := New()

	tests := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"Hello World", "hello-world-1"},
		{"hello world", "hello-world-2"},
		{"Getting started!", "getting-started"},
		{"", "section"},
		{"???", "section-1"},
		{"hello-world-1", "hello-world-1-1"},
	}
	for _, tt := range tests {
		if got := a.Anchorize(tt.in); got != tt.want {
			t.Errorf("Anchorize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAnchorize_Reset(t *testing.T) {
	a := New()
	first := a.Anchorize("Title")
	a.Reset()
	if got := a.Anchorize("Title"); got != first {
		t.Errorf("after Reset() got %q, want %q", got, first)
	}
}

func TestAnchorize_Concurrent(t *testing.T) {
	a := New()

	const n = 64
	results := make([]string, n)

	var wg sync.WaitGroup
	for i := range n {
		wg.Go(func() {
			results[i] = a.Anchorize("Same heading")
		})
	}
	wg.Wait()

	seen := make(map[string]bool, n)
	for _, r := range results {
		if seen[r] {
			t.Fatalf("duplicate anchor %q", r)
		}
		seen[r] = true
	}
}
