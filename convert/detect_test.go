package convert

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/transform"
)

func encode(t *testing.T, s string, tr transform.Transformer) []byte {
	t.Helper()
	out, _, err := transform.Bytes(tr, []byte(s))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	return out
}

func TestIsArchiveFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("zip content", func(t *testing.T) {
		name := filepath.Join(dir, "docs.bin")
		f, err := os.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		w := zip.NewWriter(f)
		fw, _ := w.Create("a.html")
		io.WriteString(fw, "<p>a</p>")
		w.Close()
		f.Close()

		got, err := isArchiveFile(name)
		if err != nil || !got {
			t.Errorf("isArchiveFile() = %v, %v, want true", got, err)
		}
	})

	t.Run("zip extension but text content", func(t *testing.T) {
		name := filepath.Join(dir, "fake.zip")
		if err := os.WriteFile(name, []byte("not a real zip file"), 0644); err != nil {
			t.Fatal(err)
		}
		got, err := isArchiveFile(name)
		if err != nil || got {
			t.Errorf("isArchiveFile() = %v, %v, want false", got, err)
		}
	})

	t.Run("missing", func(t *testing.T) {
		if _, err := isArchiveFile(filepath.Join(dir, "missing.zip")); err == nil {
			t.Error("expected error for missing file")
		}
	})
}

func TestIsMarkupFile(t *testing.T) {
	dir := t.TempDir()
	png := []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0x0D, 'I', 'H', 'D', 'R'}

	tests := []struct {
		name    string
		content []byte
		want    bool
		wantEnc srcEncoding
	}{
		{"page.html", []byte("<p>x</p>"), true, encUnknown},
		{"page.HTM", []byte("<p>x</p>"), true, encUnknown},
		{"bom.html", append([]byte{0xEF, 0xBB, 0xBF}, "<p>x</p>"...), true, encUTF8},
		{"empty.html", nil, true, encUnknown},
		{"notes.txt", []byte("<p>x</p>"), false, encUnknown},
		{"image.html", png, false, encUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name := filepath.Join(dir, tt.name)
			if err := os.WriteFile(name, tt.content, 0644); err != nil {
				t.Fatal(err)
			}
			got, enc, err := isMarkupFile(name)
			if err != nil {
				t.Fatalf("isMarkupFile() error = %v", err)
			}
			if got != tt.want || enc != tt.wantEnc {
				t.Errorf("isMarkupFile() = %v, %v, want %v, %v", got, enc, tt.want, tt.wantEnc)
			}
		})
	}
}

func TestDetectUTF(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		want srcEncoding
	}{
		{"UTF-8 BOM", []byte{0xEF, 0xBB, 0xBF, 0x00}, encUTF8},
		{"UTF-16 Big Endian BOM", []byte{0xFE, 0xFF, 0x00, 0x00}, encUTF16BigEndian},
		{"UTF-16 Little Endian BOM", []byte{0xFF, 0xFE, 0x01, 0x00}, encUTF16LittleEndian},
		{"UTF-32 Big Endian BOM", []byte{0x00, 0x00, 0xFE, 0xFF}, encUTF32BigEndian},
		{"UTF-32 Little Endian BOM", []byte{0xFF, 0xFE, 0x00, 0x00}, encUTF32LittleEndian},
		{"No BOM", []byte{0x00, 0x01, 0x02, 0x03}, encUnknown},
		{"Short", []byte{0xEF}, encUnknown},
		{"Empty", nil, encUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detectUTF(tt.buf); got != tt.want {
				t.Errorf("detectUTF() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSelectReader(t *testing.T) {
	const doc = "<p>Привет</p>"

	tests := []struct {
		name string
		data []byte
		cp   bool
	}{
		{"plain utf-8", []byte(doc), false},
		{"utf-8 bom", append([]byte{0xEF, 0xBB, 0xBF}, doc...), false},
		{"utf-16be", encode(t, doc, unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder()), false},
		{"utf-16le", encode(t, doc, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()), false},
		{"utf-32be", encode(t, doc, utf32.UTF32(utf32.BigEndian, utf32.UseBOM).NewEncoder()), false},
		{"utf-32le", encode(t, doc, utf32.UTF32(utf32.LittleEndian, utf32.UseBOM).NewEncoder()), false},
		{"meta charset", append([]byte(`<meta charset="windows-1251">`), encode(t, doc, charmap.Windows1251.NewEncoder())...), false},
		{"forced code page", encode(t, doc, charmap.Windows1251.NewEncoder()), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, enc, markup, err := peekEncoding(bytes.NewReader(tt.data))
			if err != nil || !markup {
				t.Fatalf("peekEncoding() = %v, %v", markup, err)
			}
			var cp encoding.Encoding
			if tt.cp {
				cp = charmap.Windows1251
			}
			got, err := io.ReadAll(selectReader(r, enc, cp))
			if err != nil {
				t.Fatalf("read error = %v", err)
			}
			if !strings.HasSuffix(string(got), doc) {
				t.Errorf("decoded = %q, want suffix %q", got, doc)
			}
			if strings.HasPrefix(string(got), "\ufeff") {
				t.Errorf("BOM must be consumed: %q", got)
			}
		})
	}
}

func TestSelectReader_UnknownEncoding(t *testing.T) {
	got, err := io.ReadAll(selectReader(strings.NewReader("abc"), srcEncoding(999), nil))
	if err != nil || string(got) != "abc" {
		t.Errorf("selectReader() = %q, %v", got, err)
	}
}

func TestSrcEncoding_String(t *testing.T) {
	seen := make(map[string]bool)
	for _, e := range []srcEncoding{encUnknown, encUTF8, encUTF16BigEndian, encUTF16LittleEndian, encUTF32BigEndian, encUTF32LittleEndian} {
		s := e.String()
		if seen[s] {
			t.Errorf("duplicate name %q", s)
		}
		seen[s] = true
	}
}
