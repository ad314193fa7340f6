// Package table provides the in-memory table used by the processors.
//
// A Table is an ordered list of named columns and an ordered list of rows.
// Rows are represented as maps keyed by column name, the same shape the
// readers and formatters work with, so a row can be passed to a filter
// expression without conversion.
//
// # Basic Usage
//
//	t := table.New([]string{"title", "directedBy"}, []table.Row{
//	    {"title": "Alien", "directedBy": "Ridley Scott"},
//	    {"title": "Heat", "directedBy": "Michael Mann"},
//	})
//
//	sorted, err := t.SortBy("title", false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Immutability
//
// Drop, SortBy, SortByKeys, Filter and Append never modify their receiver.
// They return a new Table that shares row maps with the original, so rows
// must be treated as read-only once they are part of a table.
//
// # Missing Values
//
// A nil value, or a key absent from the row map, is a missing cell. Missing
// cells sort after every present value regardless of direction.
package table
