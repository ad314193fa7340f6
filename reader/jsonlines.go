package reader

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"sort"
	"unicode/utf8"

	"github.com/segmentio/encoding/json"

	"github.com/vegasq/tabproc/table"
)

// ReadJSONLines parses one JSON object per line. Keys become columns in
// order of first appearance; a row lacking a key has a missing cell there.
// Blank lines are skipped.
//
// Integral numbers are read as int64 and other numbers as float64. Nested
// objects and arrays are kept as maps and slices.
func ReadJSONLines(r io.Reader, opts Options) (*table.Table, error) {
	checkUTF8 := IsUTF8(opts.Encoding)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var columns []string
	seen := make(map[string]bool)
	rows := make([]table.Row, 0)

	line := 0
	for scanner.Scan() {
		line++
		data := bytes.TrimSpace(scanner.Bytes())
		if len(data) == 0 {
			continue
		}
		if checkUTF8 && !utf8.Valid(data) {
			return nil, fmt.Errorf("%w: line %d is not valid utf-8", ErrInvalidEncoding, line)
		}

		obj, err := decodeObject(data)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		for _, key := range objectKeys(data, obj) {
			if !seen[key] {
				seen[key] = true
				columns = append(columns, key)
			}
		}
		rows = append(rows, table.Row(obj))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read line %d: %w", line+1, err)
	}

	if len(columns) == 0 {
		return nil, ErrEmptySource
	}

	// Every row carries every column so missing cells read as nil
	for _, row := range rows {
		for _, col := range columns {
			if _, ok := row[col]; !ok {
				row[col] = nil
			}
		}
	}

	return table.New(columns, rows), nil
}

// decodeObject decodes one JSON object with numbers normalised. The line
// must hold exactly one value; trailing data is an error.
func decodeObject(data []byte) (map[string]interface{}, error) {
	if !json.Valid(data) {
		return nil, fmt.Errorf("invalid json: %q is not a single json value", truncateLine(data))
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}

	obj, ok := v.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("expected a json object, got %T", v)
	}
	for k, val := range obj {
		obj[k] = normalize(val)
	}
	return obj, nil
}

// truncateLine shortens a line for error messages
func truncateLine(data []byte) string {
	const limit = 64
	if len(data) <= limit {
		return string(data)
	}
	return string(data[:limit]) + "..."
}

// objectKeys returns the top-level keys of a JSON object in document
// order. Keys the tokenizer does not report are appended sorted.
func objectKeys(data []byte, obj map[string]interface{}) []string {
	keys := make([]string, 0, len(obj))
	listed := make(map[string]bool, len(obj))

	tok := json.NewTokenizer(data)
	for tok.Next() {
		if tok.Depth != 1 || !tok.IsKey {
			continue
		}
		var key string
		if err := json.Unmarshal(tok.Value, &key); err != nil {
			continue
		}
		if _, ok := obj[key]; ok && !listed[key] {
			listed[key] = true
			keys = append(keys, key)
		}
	}

	var rest []string
	for key := range obj {
		if !listed[key] {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)

	return append(keys, rest...)
}

// normalize converts json.Number values to int64 or float64, recursing
// into arrays and objects.
func normalize(v interface{}) interface{} {
	switch val := v.(type) {
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return i
		}
		if f, err := val.Float64(); err == nil {
			return f
		}
		return val.String()
	case map[string]interface{}:
		for k, item := range val {
			val[k] = normalize(item)
		}
		return val
	case []interface{}:
		for i, item := range val {
			val[i] = normalize(item)
		}
		return val
	default:
		return v
	}
}
