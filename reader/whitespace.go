package reader

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/vegasq/tabproc/table"
)

// maxLineSize bounds a single line of a line-oriented source (16MB)
const maxLineSize = 16 * 1024 * 1024

// ReadWhitespace parses text whose fields are separated by a regular
// expression, `\s+` unless opts.Pattern says otherwise. The first
// non-blank line is the header. Leading and trailing whitespace of each
// line is ignored and blank lines are skipped.
func ReadWhitespace(r io.Reader, opts Options) (*table.Table, error) {
	re, err := regexp.Compile(opts.pattern())
	if err != nil {
		return nil, fmt.Errorf("invalid separator pattern: %w", err)
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var tt *textTable
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		fields := re.Split(text, -1)
		if tt == nil {
			tt, err = newTextTable(fields, line, IsUTF8(opts.Encoding))
			if err != nil {
				return nil, err
			}
			continue
		}
		if err := tt.add(fields, line); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read line %d: %w", line+1, err)
	}

	if tt == nil {
		return nil, ErrEmptySource
	}
	return tt.build(), nil
}
