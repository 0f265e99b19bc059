package archive

import (
	"archive/zip"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func makeZip(t *testing.T, files map[string]string, order []string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "test.zip")
	f, err := os.Create(name)
	if err != nil {
		t.Fatalf("Failed to create zip file: %v", err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	for _, n := range order {
		fw, err := w.Create(n)
		if err != nil {
			t.Fatalf("Failed to create %s in zip: %v", n, err)
		}
		if _, err := io.WriteString(fw, files[n]); err != nil {
			t.Fatalf("Failed to write %s: %v", n, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to finalize zip: %v", err)
	}
	return name
}

func TestIsMarkup(t *testing.T) {
	tests := map[string]bool{
		"a.html":         true,
		"dir/B.HTM":      true,
		"page.xhtml":     true,
		"readme.md":      false,
		"html":           false,
		"archive.html.z": false,
	}
	for name, want := range tests {
		if got := IsMarkup(name); got != want {
			t.Errorf("IsMarkup(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestWalk(t *testing.T) {
	order := []string{"docs/", "docs/readme.html", "docs/notes.txt", "docs/guide.HTM", "src/index.html", "top.html"}
	files := map[string]string{"docs/readme.html": "<p>readme</p>", "docs/guide.HTM": "<p>guide</p>", "src/index.html": "<p>src</p>", "top.html": "<p>top</p>"}
	zipPath := makeZip(t, files, order)

	tests := []struct {
		prefix string
		want   []string
	}{
		{"", []string{"docs/readme.html", "docs/guide.HTM", "src/index.html", "top.html"}},
		{"docs/", []string{"docs/readme.html", "docs/guide.HTM"}},
		{"src/index.html", []string{"src/index.html"}},
		{"nothing/", nil},
	}
	for _, tt := range tests {
		t.Run("prefix "+tt.prefix, func(t *testing.T) {
			var visited []string
			err := Walk(context.Background(), zipPath, tt.prefix, func(archive string, file *zip.File) error {
				if archive != zipPath {
					t.Errorf("archive = %s, want %s", archive, zipPath)
				}
				visited = append(visited, file.Name)
				return nil
			})
			if err != nil {
				t.Fatalf("Walk() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, visited); diff != "" {
				t.Errorf("visited mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWalk_FileContent(t *testing.T) {
	zipPath := makeZip(t, map[string]string{"a.html": "<p>content</p>"}, []string{"a.html"})

	err := Walk(context.Background(), zipPath, "", func(_ string, file *zip.File) error {
		rc, err := file.Open()
		if err != nil {
			return err
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			return err
		}
		if string(data) != "<p>content</p>" {
			t.Errorf("content = %q", data)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
}

func TestWalk_EarlyTermination(t *testing.T) {
	zipPath := makeZip(t, map[string]string{"a.html": "", "b.html": ""}, []string{"a.html", "b.html"})
	stop := errors.New("stop")

	var count int
	err := Walk(context.Background(), zipPath, "", func(string, *zip.File) error {
		count++
		return stop
	})
	if !errors.Is(err, stop) || count != 1 {
		t.Errorf("Walk() error = %v, count = %d", err, count)
	}
}

func TestWalk_Cancelled(t *testing.T) {
	zipPath := makeZip(t, map[string]string{"a.html": ""}, []string{"a.html"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Walk(ctx, zipPath, "", func(string, *zip.File) error {
		t.Error("walkFn must not be called")
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Walk() error = %v, want context.Canceled", err)
	}
}

func TestWalk_UnsafePath(t *testing.T) {
	zipPath := makeZip(t, map[string]string{"ok.html": "", "../evil.html": ""}, []string{"ok.html", "../evil.html"})

	err := Walk(context.Background(), zipPath, "", func(string, *zip.File) error {
		t.Error("walkFn must not be called for unsafe archive")
		return nil
	})
	if err == nil {
		t.Error("expected error for unsafe archive")
	}
}

func TestWalk_InvalidArchive(t *testing.T) {
	name := filepath.Join(t.TempDir(), "bad.zip")
	if err := os.WriteFile(name, []byte("not a zip"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := Walk(context.Background(), name, "", func(string, *zip.File) error { return nil }); err == nil {
		t.Error("expected error for invalid archive")
	}
	if err := Walk(context.Background(), filepath.Join(t.TempDir(), "missing.zip"), "", func(string, *zip.File) error { return nil }); err == nil {
		t.Error("expected error for missing archive")
	}
}

func TestIsSafePath(t *testing.T) {
	tests := map[string]bool{
		"a/b.html":    true,
		"a..b.html":   true,
		"/abs.html":   false,
		`\win.html`:   false,
		"a/../b.html": false,
		`a\..\b.html`: false,
		"..":          false,
	}
	for name, want := range tests {
		if got := isSafePath(name); got != want {
			t.Errorf("isSafePath(%q) = %v, want %v", name, got, want)
		}
	}
}
