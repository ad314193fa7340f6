package reader

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/ulikunitz/xz"
	"golang.org/x/text/encoding/charmap"
)

const smallCSV = "title;directedBy\nHeat;Michael Mann\nAlien;Ridley Scott\n"

// compress wraps data in the container named by ext
func compress(t *testing.T, ext string, data []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	var w io.WriteCloser
	var err error

	switch ext {
	case ".gz":
		w = gzip.NewWriter(&buf)
	case ".zst":
		w, err = zstd.NewWriter(&buf)
	case ".lz4":
		w = lz4.NewWriter(&buf)
	case ".br":
		w = brotli.NewWriter(&buf)
	case ".xz":
		w, err = xz.NewWriter(&buf)
	default:
		return data
	}
	if err != nil {
		t.Fatalf("failed to create %s writer: %v", ext, err)
	}

	if _, err := w.Write(data); err != nil {
		t.Fatalf("failed to compress: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to close compressor: %v", err)
	}
	return buf.Bytes()
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	return path
}

func TestOpen_Compression(t *testing.T) {
	for _, ext := range []string{"", ".gz", ".zst", ".lz4", ".br", ".xz"} {
		t.Run("movies.csv"+ext, func(t *testing.T) {
			path := writeFile(t, "movies.csv"+ext, compress(t, ext, []byte(smallCSV)))

			if got := DetectFormat(path); got != FormatDelimited {
				t.Errorf("DetectFormat() = %q, want %q", got, FormatDelimited)
			}

			tbl, err := ReadFile(path, FormatDelimited, Options{})
			if err != nil {
				t.Fatalf("ReadFile() error = %v", err)
			}
			if tbl.NumRows() != 2 || tbl.Value(1, "title") != "Alien" {
				t.Errorf("unexpected table: %v", tbl.Rows())
			}
		})
	}
}

func TestOpen_CorruptCompression(t *testing.T) {
	path := writeFile(t, "movies.csv.gz", []byte("not gzip at all"))

	if _, err := ReadFile(path, FormatDelimited, Options{}); err == nil {
		t.Error("ReadFile() expected error for corrupt gzip stream")
	}
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.csv"), "")
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Open() error = %v, want os.ErrNotExist", err)
	}
}

func TestOpen_ByteOrderMark(t *testing.T) {
	path := writeFile(t, "bom.csv", append([]byte("\xEF\xBB\xBF"), smallCSV...))

	tbl, err := ReadFile(path, FormatDelimited, Options{})
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if tbl.Columns()[0] != "title" {
		t.Errorf("first column = %q, want %q", tbl.Columns()[0], "title")
	}
}

func TestOpen_LegacyEncoding(t *testing.T) {
	text := "название;режиссёр\nСталкер;Тарковский\n"
	encoded, err := charmap.Windows1251.NewEncoder().String(text)
	if err != nil {
		t.Fatalf("failed to encode: %v", err)
	}
	path := writeFile(t, "movies.csv", []byte(encoded))

	tbl, err := ReadFile(path, FormatDelimited, Options{Encoding: "windows-1251"})
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if tbl.Value(0, "режиссёр") != "Тарковский" {
		t.Errorf("decoded row = %v", tbl.Row(0))
	}

	// Read as utf-8, the same bytes are rejected
	if _, err := ReadFile(path, FormatDelimited, Options{}); !errors.Is(err, ErrInvalidEncoding) {
		t.Errorf("ReadFile() error = %v, want ErrInvalidEncoding", err)
	}
}

func TestOpen_UnknownEncoding(t *testing.T) {
	path := writeFile(t, "movies.csv", []byte(smallCSV))

	if _, err := Open(path, "klingon-8"); !errors.Is(err, ErrUnknownEncoding) {
		t.Errorf("Open() error = %v, want ErrUnknownEncoding", err)
	}
}

func TestValidateEncoding(t *testing.T) {
	for _, label := range []string{"", "UTF-8", "utf8", "windows-1251", "latin1", "shift_jis"} {
		if err := ValidateEncoding(label); err != nil {
			t.Errorf("ValidateEncoding(%q) error = %v", label, err)
		}
	}
	if err := ValidateEncoding("klingon-8"); !errors.Is(err, ErrUnknownEncoding) {
		t.Errorf("ValidateEncoding() error = %v, want ErrUnknownEncoding", err)
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"movies.csv", FormatDelimited},
		{"MOVIES.CSV", FormatDelimited},
		{"movies.txt", FormatWhitespace},
		{"movies.tsv.gz", FormatWhitespace},
		{"movies.json", FormatJSONLines},
		{"data/movies.jsonl.zst", FormatJSONLines},
		{"movies.parquet", FormatParquet},
		{"movies.xlsx", FormatUnknown},
		{"movies.gz", FormatUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := DetectFormat(tt.path); got != tt.want {
				t.Errorf("DetectFormat(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		want    Format
		wantErr bool
	}{
		{"csv", FormatDelimited, false},
		{"TXT", FormatWhitespace, false},
		{"jsonl", FormatJSONLines, false},
		{"parquet", FormatParquet, false},
		{"xml", FormatUnknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrUnknownFormat) {
				t.Errorf("ParseFormat() error = %v, want ErrUnknownFormat", err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat() = %q, want %q", got, tt.want)
			}
		})
	}
}
