package jaslet

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResultEmpty(t *testing.T) {
	res := &Result{}

	require.True(t, res.IsEmpty())
	require.Zero(t, res.RowCount())

	_, ok := res.First()
	require.False(t, ok)
}

func TestResultFirst(t *testing.T) {
	res := &Result{
		Columns: []string{"name"},
		Rows: []Row{
			newRow([]string{"name"}, []any{"Alice"}),
			newRow([]string{"name"}, []any{"Bob"}),
		},
		AffectedRows: 2,
	}

	require.False(t, res.IsEmpty())
	require.Equal(t, 2, res.RowCount())

	first, ok := res.First()
	require.True(t, ok)
	name, _ := first.GetText("name")
	require.Equal(t, "Alice", name)
}
