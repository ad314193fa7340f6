package processor

import (
	"github.com/vegasq/tabproc/reader"
	"github.com/vegasq/tabproc/table"
)

// TXTProcessor handles text whose fields are separated by runs of
// whitespace.
type TXTProcessor struct {
	Base
}

// NewTXTProcessor creates a processor for the whitespace file at datasource
func NewTXTProcessor(datasource string, cfg Config) *TXTProcessor {
	return &TXTProcessor{Base: NewBase("TXT", reader.FormatWhitespace, datasource, cfg)}
}

func (p *TXTProcessor) Read() bool {
	return p.Load()
}

// Run drops dateAdded and sorts descending by directedBy, then by title.
func (p *TXTProcessor) Run() error {
	return p.Apply(func(t *table.Table) (*table.Table, error) {
		return dropAndSort(t, []string{ColDateAdded}, []string{ColDirectedBy, ColTitle}, false)
	})
}
