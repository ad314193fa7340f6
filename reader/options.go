package reader

import (
	"errors"
	"fmt"
	"io"

	"github.com/vegasq/tabproc/table"
)

// Default parse settings.
const (
	DefaultSeparator = ';'
	DefaultPattern   = `\s+`
	DefaultEncoding  = "utf-8"
)

var (
	// ErrEmptySource is returned when a source has no header to take column
	// names from.
	ErrEmptySource = errors.New("no columns to parse from source")

	// ErrFieldCount is returned when a record has more fields than the header.
	ErrFieldCount = errors.New("too many fields in record")

	// ErrInvalidEncoding is returned when text is not valid in the declared
	// encoding.
	ErrInvalidEncoding = errors.New("invalid text encoding")
)

// Options controls how text sources are parsed. Zero values select the
// defaults.
type Options struct {
	// Separator splits fields of delimited text.
	Separator rune

	// Pattern is the regular expression splitting whitespace text fields.
	Pattern string

	// Encoding is the WHATWG label of the source text encoding.
	Encoding string
}

func (o Options) separator() rune {
	if o.Separator == 0 {
		return DefaultSeparator
	}
	return o.Separator
}

func (o Options) pattern() string {
	if o.Pattern == "" {
		return DefaultPattern
	}
	return o.Pattern
}

// ReadFile opens path and parses it in the given format.
func ReadFile(path string, format Format, opts Options) (*table.Table, error) {
	if format == FormatParquet {
		return ReadParquet(path)
	}

	src, err := Open(path, opts.Encoding)
	if err != nil {
		return nil, err
	}
	defer func() { _ = src.Close() }()

	return Read(src, format, opts)
}

// Read parses a text source in the given format.
func Read(r io.Reader, format Format, opts Options) (*table.Table, error) {
	switch format {
	case FormatDelimited:
		return ReadDelimited(r, opts)
	case FormatWhitespace:
		return ReadWhitespace(r, opts)
	case FormatJSONLines:
		return ReadJSONLines(r, opts)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
