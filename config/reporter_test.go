package config

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readArchive(t *testing.T, name string) map[string]string {
	t.Helper()
	zr, err := zip.OpenReader(name)
	if err != nil {
		t.Fatalf("unable to open report: %v", err)
	}
	defer zr.Close()

	files := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("unable to open %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("unable to read %s: %v", f.Name, err)
		}
		files[f.Name] = string(data)
	}
	return files
}

func TestReport(t *testing.T) {
	dir := t.TempDir()
	conf := ReporterConfig{Destination: filepath.Join(dir, "report.zip")}
	r, err := conf.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if r.Name() != conf.Destination {
		t.Errorf("Name() = %q, want %q", r.Name(), conf.Destination)
	}

	stored := filepath.Join(dir, "stored.txt")
	if err := os.WriteFile(stored, []byte("late"), 0644); err != nil {
		t.Fatal(err)
	}
	copied := filepath.Join(dir, "a.html")
	if err := os.WriteFile(copied, []byte("before"), 0644); err != nil {
		t.Fatal(err)
	}

	r.Store("stored.txt", stored)
	r.StoreData("doc.tree.txt", []byte("root\n"))
	r.StoreData("doc.tree.txt", []byte("root again\n"))
	if err := r.StoreCopy("documents/a.html", copied); err != nil {
		t.Fatalf("StoreCopy() error = %v", err)
	}
	if err := r.StoreCopy("dir", dir); err == nil {
		t.Error("StoreCopy() of directory must fail")
	}
	r.Store("missing", filepath.Join(dir, "missing.txt"))

	// Store reads file on Close, StoreCopy keeps content at the time of call
	if err := os.WriteFile(stored, []byte("final"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(copied, []byte("after"), 0644); err != nil {
		t.Fatal(err)
	}

	temps := append([]string(nil), r.temps...)
	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	files := readArchive(t, conf.Destination)
	if files["stored.txt"] != "final" {
		t.Errorf("stored.txt = %q", files["stored.txt"])
	}
	if files["doc.tree.txt"] != "root\n" {
		t.Errorf("doc.tree.txt = %q", files["doc.tree.txt"])
	}
	if files["documents/a.html"] != "before" {
		t.Errorf("documents/a.html = %q", files["documents/a.html"])
	}
	if _, ok := files["dir"]; ok {
		t.Error("failed copy must not be stored")
	}
	if _, ok := files["missing"]; ok {
		t.Error("missing files must be skipped")
	}
	var versioned int
	for name := range files {
		if strings.HasPrefix(name, "doc.tree.txt-") {
			versioned++
		}
	}
	if versioned != 1 {
		t.Errorf("repeated data must be versioned, archive has %v", files)
	}
	if !strings.Contains(files["MANIFEST"], "stored.txt") {
		t.Errorf("MANIFEST = %q", files["MANIFEST"])
	}

	for _, d := range temps {
		if _, err := os.Stat(d); !os.IsNotExist(err) {
			t.Errorf("temporary copy %s must be removed", d)
		}
	}
}

func TestReport_OverwritePanics(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	r.Store("a", "/one")
	r.Store("a", "/one")
	defer func() {
		if recover() == nil {
			t.Error("expected panic for conflicting Store")
		}
	}()
	r.Store("a", "/two")
}

func TestReportClose_NilReport(t *testing.T) {
	var r *Report
	r.Store("a", "b")
	r.StoreData("a", nil)
	if err := r.StoreCopy("a", "b"); err != nil {
		t.Errorf("StoreCopy on nil report should not error, got: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close on nil report should not error, got: %v", err)
	}
	if r.Name() != "" {
		t.Errorf("Name() = %q", r.Name())
	}
}

func TestReportClose_NilFile(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	if err := r.Close(); err != nil {
		t.Errorf("Close with nil file should not error, got: %v", err)
	}
}
