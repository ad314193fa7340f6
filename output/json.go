package output

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/segmentio/encoding/json"

	"github.com/vegasq/tabproc/table"
)

// JSONFormatter outputs rows as JSON Lines format
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON Lines formatter
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// SetOutput sets the output writer
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format writes one JSON object per row with keys in column order
func (j *JSONFormatter) Format(t *table.Table) error {
	if t == nil {
		return nil
	}

	w := bufio.NewWriter(j.writer)
	columns := t.Columns()
	keys := make([][]byte, len(columns))
	for i, col := range columns {
		b, err := json.Marshal(col)
		if err != nil {
			return fmt.Errorf("encode column %q: %w", col, err)
		}
		keys[i] = b
	}

	var buf []byte
	for n, row := range t.Rows() {
		buf = append(buf[:0], '{')
		for i, col := range columns {
			if i > 0 {
				buf = append(buf, ',')
			}
			buf = append(buf, keys[i]...)
			buf = append(buf, ':')

			v, err := json.Marshal(jsonValue(row[col]))
			if err != nil {
				return fmt.Errorf("encode row %d column %q: %w", n, col, err)
			}
			buf = append(buf, v...)
		}
		buf = append(buf, '}', '\n')
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}

	return w.Flush()
}

func jsonValue(v interface{}) interface{} {
	switch val := v.(type) {
	case time.Time:
		return val.Format(time.RFC3339Nano)
	case []byte:
		return string(val)
	default:
		return v
	}
}
