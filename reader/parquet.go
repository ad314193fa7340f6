package reader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/vegasq/tabproc/table"
)

// ParquetReader reads parquet files and returns rows as table rows.
//
// It keeps the underlying file handle (when the source is not compressed)
// alongside the parquet file handle to enable proper resource cleanup.
type ParquetReader struct {
	file   io.Closer
	pqFile *parquet.File
}

// NewParquetReader creates a new parquet reader for the specified file path.
//
// The file is opened and validated as a parquet file. A compressed source
// (for example data.parquet.gz) is decompressed into memory first. Returns
// an error if the file doesn't exist or is not a valid parquet file.
//
// Example:
//
//	r, err := NewParquetReader("movies.parquet")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
func NewParquetReader(path string) (*ParquetReader, error) {
	if c, _ := DetectCompression(path); c != CompressionNone {
		return newBufferedParquetReader(path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	stat, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pqFile, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}

	return &ParquetReader{
		file:   file,
		pqFile: pqFile,
	}, nil
}

func newBufferedParquetReader(path string) (*ParquetReader, error) {
	src, err := OpenRaw(path)
	if err != nil {
		return nil, err
	}
	data, err := io.ReadAll(src)
	closeErr := src.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to decompress file: %w", err)
	}
	if closeErr != nil {
		return nil, fmt.Errorf("failed to close file: %w", closeErr)
	}

	pqFile, err := parquet.OpenFile(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}

	return &ParquetReader{pqFile: pqFile}, nil
}

// Columns returns the top-level column names in schema order.
func (r *ParquetReader) Columns() []string {
	fields := r.pqFile.Schema().Fields()
	columns := make([]string, len(fields))
	for i, field := range fields {
		columns[i] = field.Name()
	}
	return columns
}

// ReadAll reads all rows from the parquet file into memory.
//
// The entire file is loaded into memory, so this method may not be
// suitable for very large files. Every row carries every column; null
// values are nil.
func (r *ParquetReader) ReadAll() (*table.Table, error) {
	columns := r.Columns()
	rows := make([]table.Row, 0, r.pqFile.NumRows())

	reader := parquet.NewReader(r.pqFile)
	defer func() { _ = reader.Close() }()

	for {
		row := make(map[string]interface{})
		err := reader.Read(&row)
		if err != nil {
			// Use errors.Is for proper EOF detection
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		for _, col := range columns {
			if _, ok := row[col]; !ok {
				row[col] = nil
			}
		}
		rows = append(rows, row)
	}

	return table.New(columns, rows), nil
}

// Close closes the parquet reader and releases associated resources.
//
// Should be called when done reading to avoid resource leaks. It is safe
// to call Close multiple times.
func (r *ParquetReader) Close() error {
	if r.file != nil {
		err := r.file.Close()
		r.file = nil
		return err
	}
	return nil
}

// ReadParquet reads a whole parquet file into a table.
func ReadParquet(path string) (*table.Table, error) {
	r, err := NewParquetReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	t, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if t.NumColumns() == 0 {
		return nil, ErrEmptySource
	}
	return t, nil
}
