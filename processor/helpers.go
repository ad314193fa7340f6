package processor

import (
	"github.com/vegasq/tabproc/query"
	"github.com/vegasq/tabproc/table"
)

// SortDataByCol returns t with every row ordered by column. The sort is
// stable.
func SortDataByCol(t *table.Table, column string, ascending bool) (*table.Table, error) {
	return t.SortBy(column, ascending)
}

// RemoveColByName returns t without the named columns. Every column must
// exist.
func RemoveColByName(t *table.Table, columns []string) (*table.Table, error) {
	return t.Drop(columns...)
}

// SortByFilter returns the rows of t satisfying expr, for example
//
//	avgRating >= 4 and directedBy != "Ridley Scott"
func SortByFilter(t *table.Table, expr string) (*table.Table, error) {
	filter, err := query.Parse(expr)
	if err != nil {
		return nil, err
	}
	return query.ApplyFilter(t, filter)
}
