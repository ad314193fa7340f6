// Package output provides formatters for rendering result tables.
//
// All formatters consume a *table.Table and respect its column order, so
// the header of a CSV file, the key order of a JSON line and the columns of
// the console grid match what the processor produced.
//
// # Supported Formats
//
//   - table: console grid rendered with tablewriter, prefixed by a row index
//   - csv: comma-separated values with header row
//   - jsonl: one JSON object per line (suitable for streaming)
//
// # Writing to Different Destinations
//
// Change output destination dynamically:
//
//	formatter := output.NewCSVFormatter(os.Stdout)
//
//	file, err := os.Create("result.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer file.Close()
//
//	formatter.SetOutput(file)
//	if err := formatter.Format(t); err != nil {
//	    log.Fatal(err)
//	}
//
// # Type Handling
//
//   - Strings, numbers and booleans are written directly
//   - time.Time values are written as RFC 3339
//   - nil cells are empty in CSV and the grid, null in JSON
package output
