package relational

import (
	"golang.org/x/exp/slices"
)

// Compare orders two columns by position; see [Column.Compare]. It has the
// signature expected by [slices.SortFunc] and friends.
func Compare(a, b Column) int {
	return a.Compare(b)
}

// SortByPosition sorts a slice of [Column] in ascending position order. The
// sort is stable, so columns that erroneously share a position keep their
// relative order instead of shuffling between runs.
func SortByPosition(columns []Column) {
	slices.SortStableFunc(columns, Compare)
}

// ByName indexes a slice of columns by their name. Within a single table
// column names are unique, so no entries are lost.
func ByName(columns []Column) map[string]Column {
	out := make(map[string]Column, len(columns))
	for _, column := range columns {
		out[column.Name()] = column
	}
	return out
}
