package relational_test

import (
	"testing"

	"github.com/peterldowns/testy/assert"
	"github.com/peterldowns/testy/check"

	"github.com/sweat123/relational"
	"github.com/sweat123/relational/sqltypes"
)

func TestSortByPosition(t *testing.T) {
	t.Parallel()
	columns := buildColumns(t, map[string]int{
		"d": 4,
		"a": 1,
		"c": 3,
		"b": 2,
	})
	relational.SortByPosition(columns)
	check.Equal(t, []string{"a", "b", "c", "d"}, names(columns))
}

func TestSortByPositionIsStable(t *testing.T) {
	t.Parallel()
	// Duplicate positions are a table-level defect, but sorting must not
	// shuffle them between runs.
	columns := buildColumns(t, map[string]int{"z": 2, "x": 1})
	dupe, err := relational.NewColumnEditor().Name("y").Position(1).Build()
	assert.Nil(t, err)
	columns = append(columns, dupe)

	relational.SortByPosition(columns)
	check.Equal(t, []string{"x", "y", "z"}, names(columns))
}

func TestByName(t *testing.T) {
	t.Parallel()
	columns := buildColumns(t, map[string]int{"id": 1, "title": 2})
	indexed := relational.ByName(columns)
	check.Equal(t, 2, len(indexed))
	check.Equal(t, 1, indexed["id"].Position())
	check.Equal(t, 2, indexed["title"].Position())
}

func TestCompareMatchesMethod(t *testing.T) {
	t.Parallel()
	columns := buildColumns(t, map[string]int{"a": 1, "b": 2})
	byName := relational.ByName(columns)
	check.Equal(t, byName["a"].Compare(byName["b"]), relational.Compare(byName["a"], byName["b"]))
}

// buildColumns constructs one column per name at the given position, in map
// iteration order, so callers get an unsorted slice to exercise sorting.
func buildColumns(t *testing.T, positions map[string]int) []relational.Column {
	t.Helper()
	columns := make([]relational.Column, 0, len(positions))
	for name, position := range positions {
		column, err := relational.NewColumnEditor().
			Name(name).
			Position(position).
			Type(sqltypes.Integer, "INT", "").
			Build()
		assert.Nil(t, err)
		columns = append(columns, column)
	}
	return columns
}

func names(columns []relational.Column) []string {
	out := make([]string, 0, len(columns))
	for _, column := range columns {
		out = append(out, column.Name())
	}
	return out
}
