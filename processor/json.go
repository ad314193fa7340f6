package processor

import (
	"github.com/vegasq/tabproc/reader"
	"github.com/vegasq/tabproc/table"
)

// JSONProcessor handles files holding one JSON object per line.
type JSONProcessor struct {
	Base
}

// NewJSONProcessor creates a processor for the JSON lines file at datasource
func NewJSONProcessor(datasource string, cfg Config) *JSONProcessor {
	return &JSONProcessor{Base: NewBase("JSON", reader.FormatJSONLines, datasource, cfg)}
}

func (p *JSONProcessor) Read() bool {
	return p.Load()
}

// Run drops dateAdded and avgRating and sorts ascending by directedBy, then
// by title. A dataset without avgRating fails here even though Read
// accepted it.
func (p *JSONProcessor) Run() error {
	return p.Apply(func(t *table.Table) (*table.Table, error) {
		return dropAndSort(t, []string{ColDateAdded, ColAvgRating}, []string{ColDirectedBy, ColTitle}, true)
	})
}
