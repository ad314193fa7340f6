package reader

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies a source file encoding.
type Format string

// Supported formats.
const (
	FormatUnknown    Format = ""
	FormatDelimited  Format = "csv"
	FormatWhitespace Format = "txt"
	FormatJSONLines  Format = "json"
	FormatParquet    Format = "parquet"
)

// ErrUnknownFormat is returned for a format name or extension that no
// reader handles.
var ErrUnknownFormat = errors.New("unknown format")

// ParseFormat converts a user-supplied name to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "csv", "delimited":
		return FormatDelimited, nil
	case "txt", "text", "whitespace":
		return FormatWhitespace, nil
	case "json", "jsonl", "ndjson":
		return FormatJSONLines, nil
	case "parquet":
		return FormatParquet, nil
	default:
		return FormatUnknown, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// DetectFormat determines the format of a file from its extension,
// ignoring a trailing compression extension such as ".gz".
func DetectFormat(path string) Format {
	_, base := DetectCompression(path)
	ext := strings.ToLower(filepath.Ext(base))

	switch ext {
	case ".csv":
		return FormatDelimited
	case ".txt", ".tsv", ".dat":
		return FormatWhitespace
	case ".json", ".jsonl", ".ndjson":
		return FormatJSONLines
	case ".parquet":
		return FormatParquet
	default:
		return FormatUnknown
	}
}
