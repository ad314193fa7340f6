package reader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/vegasq/tabproc/table"
)

// ReadDelimited parses separator-delimited text with a header row.
//
// Quoted fields follow RFC 4180; stray quotes inside unquoted fields are
// kept literally. Blank lines are skipped.
func ReadDelimited(r io.Reader, opts Options) (*table.Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = opts.separator()
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptySource
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	line, _ := cr.FieldPos(0)

	tt, err := newTextTable(header, line, IsUTF8(opts.Encoding))
	if err != nil {
		return nil, err
	}

	for {
		record, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read record: %w", err)
		}
		line, _ := cr.FieldPos(0)
		if err := tt.add(record, line); err != nil {
			return nil, err
		}
	}

	return tt.build(), nil
}
