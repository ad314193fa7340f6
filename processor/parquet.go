package processor

import (
	"github.com/vegasq/tabproc/reader"
	"github.com/vegasq/tabproc/table"
)

// ParquetProcessor handles parquet files, optionally compressed.
type ParquetProcessor struct {
	Base
}

// NewParquetProcessor creates a processor for the parquet file at datasource
func NewParquetProcessor(datasource string, cfg Config) *ParquetProcessor {
	return &ParquetProcessor{Base: NewBase("Parquet", reader.FormatParquet, datasource, cfg)}
}

// Read loads the whole file. Columns come from the parquet schema.
func (p *ParquetProcessor) Read() bool {
	return p.Load()
}

// Run drops dateAdded and sorts ascending by directedBy, then by title.
func (p *ParquetProcessor) Run() error {
	return p.Apply(func(t *table.Table) (*table.Table, error) {
		return dropAndSort(t, []string{ColDateAdded}, []string{ColDirectedBy, ColTitle}, true)
	})
}
