package table

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrColumnNotFound is returned when an operation references a column
	// the table does not have.
	ErrColumnNotFound = errors.New("column not found")

	// ErrNilTable is returned when an operation is applied to a nil table.
	ErrNilTable = errors.New("table is nil")
)

// Row is a single record keyed by column name.
type Row map[string]interface{}

// Table is an ordered collection of named columns and rows.
type Table struct {
	columns []string
	rows    []Row
}

// SortKey describes one column of a multi-key sort.
type SortKey struct {
	Column    string
	Ascending bool
}

// New creates a table with the given columns and rows.
//
// The column slice is copied. Rows are kept as-is.
func New(columns []string, rows []Row) *Table {
	cols := make([]string, len(columns))
	copy(cols, columns)
	if rows == nil {
		rows = make([]Row, 0)
	}
	return &Table{columns: cols, rows: rows}
}

// Columns returns a copy of the column names in order.
func (t *Table) Columns() []string {
	if t == nil {
		return nil
	}
	cols := make([]string, len(t.columns))
	copy(cols, t.columns)
	return cols
}

// NumColumns returns the number of columns.
func (t *Table) NumColumns() int {
	if t == nil {
		return 0
	}
	return len(t.columns)
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int {
	if t == nil {
		return 0
	}
	return len(t.rows)
}

// Rows returns the rows in order.
func (t *Table) Rows() []Row {
	if t == nil {
		return nil
	}
	return t.rows
}

// Row returns the row at index i.
func (t *Table) Row(i int) Row {
	return t.rows[i]
}

// Value returns the cell at the given row and column, nil when missing.
func (t *Table) Value(row int, column string) interface{} {
	return t.rows[row][column]
}

// HasColumn reports whether the table has a column with the given name.
func (t *Table) HasColumn(name string) bool {
	if t == nil {
		return false
	}
	for _, col := range t.columns {
		if col == name {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the table's structure and row maps.
func (t *Table) Clone() *Table {
	if t == nil {
		return nil
	}
	rows := make([]Row, len(t.rows))
	for i, row := range t.rows {
		cp := make(Row, len(row))
		for k, v := range row {
			cp[k] = v
		}
		rows[i] = cp
	}
	return New(t.columns, rows)
}

// Drop returns a table without the named columns.
//
// Every name must exist; otherwise ErrColumnNotFound is returned and no
// column is removed.
func (t *Table) Drop(columns ...string) (*Table, error) {
	if t == nil {
		return nil, ErrNilTable
	}

	drop := make(map[string]bool, len(columns))
	for _, col := range columns {
		if !t.HasColumn(col) {
			return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, col)
		}
		drop[col] = true
	}

	kept := make([]string, 0, len(t.columns))
	for _, col := range t.columns {
		if !drop[col] {
			kept = append(kept, col)
		}
	}

	rows := make([]Row, len(t.rows))
	for i, row := range t.rows {
		cp := make(Row, len(kept))
		for _, col := range kept {
			if v, ok := row[col]; ok {
				cp[col] = v
			}
		}
		rows[i] = cp
	}

	return &Table{columns: kept, rows: rows}, nil
}

// SortBy returns a table whose rows are ordered by a single column.
//
// The sort is stable, so applying SortBy repeatedly yields a multi-key
// order in which the last column sorted is the dominant key.
func (t *Table) SortBy(column string, ascending bool) (*Table, error) {
	return t.SortByKeys([]SortKey{{Column: column, Ascending: ascending}})
}

// SortByKeys returns a table stably ordered by several keys, the first key
// being dominant.
func (t *Table) SortByKeys(keys []SortKey) (*Table, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	for _, key := range keys {
		if !t.HasColumn(key.Column) {
			return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, key.Column)
		}
	}

	// Copy so the original ordering is left untouched
	sorted := make([]Row, len(t.rows))
	copy(sorted, t.rows)

	sort.SliceStable(sorted, func(i, j int) bool {
		for _, key := range keys {
			a, b := sorted[i][key.Column], sorted[j][key.Column]

			// Missing values go last in both directions
			aMissing, bMissing := IsMissing(a), IsMissing(b)
			if aMissing || bMissing {
				if aMissing && bMissing {
					continue
				}
				return bMissing
			}

			cmp := Compare(a, b)
			if cmp != 0 {
				if key.Ascending {
					return cmp < 0
				}
				return cmp > 0
			}
		}
		return false
	})

	return &Table{columns: t.Columns(), rows: sorted}, nil
}

// Filter returns the rows for which pred reports true.
func (t *Table) Filter(pred func(Row) (bool, error)) (*Table, error) {
	if t == nil {
		return nil, ErrNilTable
	}

	filtered := make([]Row, 0)
	for _, row := range t.rows {
		match, err := pred(row)
		if err != nil {
			return nil, err
		}
		if match {
			filtered = append(filtered, row)
		}
	}

	return &Table{columns: t.Columns(), rows: filtered}, nil
}

// Append concatenates other below t and returns the result.
//
// A nil table on either side is treated as empty. The resulting columns
// are t's columns followed by any columns only other has; cells a row does
// not carry are missing.
func (t *Table) Append(other *Table) *Table {
	switch {
	case t == nil && other == nil:
		return New(nil, nil)
	case t == nil:
		return New(other.columns, append([]Row(nil), other.rows...))
	case other == nil:
		return New(t.columns, append([]Row(nil), t.rows...))
	}

	columns := t.Columns()
	for _, col := range other.columns {
		if !t.HasColumn(col) {
			columns = append(columns, col)
		}
	}

	rows := make([]Row, 0, len(t.rows)+len(other.rows))
	rows = append(rows, t.rows...)
	rows = append(rows, other.rows...)

	return &Table{columns: columns, rows: rows}
}
