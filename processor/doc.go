// Package processor implements the read, run and print lifecycle for movie
// datasets stored in different file formats.
//
// A processor is constructed with a data source path. Read parses the
// source and must succeed before Run is called. Every Run drops a fixed set
// of columns, applies a fixed sequence of single-column sorts and appends
// the outcome to the accumulated result, which PrintResult reports.
//
// # Basic Usage
//
//	p, err := processor.ForPath("movies.csv", processor.Config{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !p.Read() {
//	    os.Exit(1)
//	}
//	if err := p.Run(); err != nil {
//	    log.Fatal(err)
//	}
//	p.PrintResult()
//
// # Sorting
//
// Sorts are stable. Sorting by directedBy and then by title therefore
// orders rows by title, with ties kept in directedBy order.
//
// # Extending
//
// A variant from another package embeds Base, calls Base.Load from Read
// and Base.Apply from Run, and composes the shared helpers SortDataByCol,
// RemoveColByName and SortByFilter:
//
//	type RatedProcessor struct {
//	    processor.Base
//	}
//
//	func (p *RatedProcessor) Read() bool { return p.Load() }
//
//	func (p *RatedProcessor) Run() error {
//	    return p.Apply(func(t *table.Table) (*table.Table, error) {
//	        return processor.SortByFilter(t, "avgRating >= 4")
//	    })
//	}
//
// Register makes it available to New under a kind name. Existing variants
// need no changes.
package processor
