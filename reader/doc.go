// Package reader loads tables from files.
//
// Four encodings are supported, each producing a *table.Table:
//
//   - Delimited text: a header row followed by records split on a single
//     separator rune (';' by default), parsed with encoding/csv.
//   - Whitespace text: a header row followed by records split on a regular
//     expression (`\s+` by default).
//   - JSON lines: one JSON object per line; keys become columns.
//   - Parquet: read with github.com/parquet-go/parquet-go.
//
// # Basic Usage
//
//	t, err := reader.ReadFile("movies.csv", reader.FormatDelimited, reader.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(t.Columns())
//
// # Sources
//
// Files are opened with Open, which decompresses by file extension (.gz,
// .zst, .lz4, .br, .xz) and decodes the configured text encoding. UTF-8 is
// the default; a leading byte order mark is dropped. Any WHATWG encoding
// label such as "windows-1251" is accepted as well.
//
// # Cell Values
//
// Text formats read every cell as a string and then infer one type per
// column: int64 when every present cell is an integer, float64 when every
// present cell is numeric, bool for True/False columns, string otherwise.
// Empty cells and the usual NA markers ("NA", "NaN", "null", ...) become
// nil. Header names that are empty become "Unnamed: <index>" and repeated
// names get a ".1", ".2" suffix.
package reader
