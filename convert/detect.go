package convert

import (
	"bytes"
	"io"
	"os"

	"github.com/h2non/filetype"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/transform"

	"mdflow/archive"
)

type srcEncoding int

const (
	encUnknown srcEncoding = iota
	encUTF8
	encUTF16BigEndian
	encUTF16LittleEndian
	encUTF32BigEndian
	encUTF32LittleEndian
)

func (e srcEncoding) String() string {
	switch e {
	case encUTF8:
		return "utf-8"
	case encUTF16BigEndian:
		return "utf-16be"
	case encUTF16LittleEndian:
		return "utf-16le"
	case encUTF32BigEndian:
		return "utf-32be"
	case encUTF32LittleEndian:
		return "utf-32le"
	default:
		return "unknown"
	}
}

// enough for filetype matchers.
const headerSize = 262

func readHeader(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := make([]byte, headerSize)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, err
	}
	return buf[:n], nil
}

func isArchiveFile(path string) (bool, error) {
	head, err := readHeader(path)
	if err != nil {
		return false, err
	}
	return filetype.Is(head, "zip"), nil
}

// isBinary reports header of well known non-text formats, so misnamed
// images and archives are never fed to tokenizer.
func isBinary(head []byte) bool {
	return filetype.IsArchive(head) || filetype.IsImage(head) || filetype.IsAudio(head) ||
		filetype.IsVideo(head) || filetype.IsDocument(head)
}

// isMarkupFile checks file name and content and detects BOM if any.
func isMarkupFile(path string) (bool, srcEncoding, error) {
	if !archive.IsMarkup(path) {
		return false, encUnknown, nil
	}
	head, err := readHeader(path)
	if err != nil {
		return false, encUnknown, err
	}
	if isBinary(head) {
		return false, encUnknown, nil
	}
	return true, detectUTF(head), nil
}

// peekEncoding reads document header from r and returns reader positioned
// at the very beginning of the document.
func peekEncoding(r io.Reader) (io.Reader, srcEncoding, bool, error) {
	head := make([]byte, headerSize)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, encUnknown, false, err
	}
	head = head[:n]
	return io.MultiReader(bytes.NewReader(head), r), detectUTF(head), !isBinary(head), nil
}

func detectUTF(buf []byte) srcEncoding {
	// order matters, UTF-32LE BOM starts with UTF-16LE one
	switch {
	case isUTF32BigEndianBOM4(buf):
		return encUTF32BigEndian
	case isUTF32LittleEndianBOM4(buf):
		return encUTF32LittleEndian
	case isUTF8BOM3(buf):
		return encUTF8
	case isUTF16BigEndianBOM2(buf):
		return encUTF16BigEndian
	case isUTF16LittleEndianBOM2(buf):
		return encUTF16LittleEndian
	}
	return encUnknown
}

func isUTF8BOM3(buf []byte) bool {
	return len(buf) >= 3 && buf[0] == 0xEF && buf[1] == 0xBB && buf[2] == 0xBF
}

func isUTF16BigEndianBOM2(buf []byte) bool {
	return len(buf) >= 2 && buf[0] == 0xFE && buf[1] == 0xFF
}

func isUTF16LittleEndianBOM2(buf []byte) bool {
	return len(buf) >= 2 && buf[0] == 0xFF && buf[1] == 0xFE
}

func isUTF32BigEndianBOM4(buf []byte) bool {
	return len(buf) >= 4 && buf[0] == 0x00 && buf[1] == 0x00 && buf[2] == 0xFE && buf[3] == 0xFF
}

func isUTF32LittleEndianBOM4(buf []byte) bool {
	return len(buf) >= 4 && buf[0] == 0xFF && buf[1] == 0xFE && buf[2] == 0x00 && buf[3] == 0x00
}

// selectReader returns UTF-8 reader for document. Documents with BOM are
// decoded accordingly, otherwise forced code page wins over charset
// detection (meta tags, then content sniffing).
func selectReader(r io.Reader, enc srcEncoding, cp encoding.Encoding) io.Reader {
	switch enc {
	case encUTF8:
		return transform.NewReader(r, unicode.UTF8BOM.NewDecoder())
	case encUTF16BigEndian:
		return transform.NewReader(r, unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder())
	case encUTF16LittleEndian:
		return transform.NewReader(r, unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder())
	case encUTF32BigEndian:
		return transform.NewReader(r, utf32.UTF32(utf32.BigEndian, utf32.ExpectBOM).NewDecoder())
	case encUTF32LittleEndian:
		return transform.NewReader(r, utf32.UTF32(utf32.LittleEndian, utf32.ExpectBOM).NewDecoder())
	case encUnknown:
		if cp != nil {
			return transform.NewReader(r, cp.NewDecoder())
		}
		if cr, err := charset.NewReader(r, "text/html"); err == nil {
			return cr
		}
	}
	return r
}
