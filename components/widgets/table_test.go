package widgets

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func column(rows [][]string, idx int) []string {
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, row[idx])
	}
	return out
}

func TestTableSortNumericToggles(t *testing.T) {
	table := NewTable(TableConfig{
		Columns: []Column{{Label: "Name"}, {Label: "Qty"}},
		Rows: [][]string{
			{"b", "10"},
			{"a", "9"},
			{"c", "100 units"},
		},
	})

	require.True(t, table.SortBy(1))
	assert.Equal(t, []string{"9", "10", "100 units"}, column(table.Rows(), 1))
	col, dir := table.SortState()
	assert.Equal(t, 1, col)
	assert.Equal(t, SortAsc, dir)

	require.True(t, table.SortBy(1))
	assert.Equal(t, []string{"100 units", "10", "9"}, column(table.Rows(), 1))
	_, dir = table.SortState()
	assert.Equal(t, SortDesc, dir)

	require.True(t, table.SortBy(1))
	_, dir = table.SortState()
	assert.Equal(t, SortAsc, dir)
}

func TestTableSortTextUsesCollation(t *testing.T) {
	table := NewTable(TableConfig{
		Columns: []Column{{Label: "Name"}},
		Rows:    [][]string{{"banana"}, {"Apple"}, {"cherry"}, {"apple"}},
	})
	table.SortBy(0)
	rows := column(table.Rows(), 0)
	assert.Equal(t, "banana", rows[2])
	assert.Equal(t, "cherry", rows[3])
	assert.ElementsMatch(t, []string{"Apple", "apple"}, rows[:2])
}

func TestTableSwitchingColumnStartsAscending(t *testing.T) {
	table := NewTable(TableConfig{
		Columns: DefaultOrderColumns(),
		Rows:    DefaultOrderRows(),
	})
	table.SortBy(0)
	table.SortBy(0)
	table.SortBy(2)

	col, dir := table.SortState()
	assert.Equal(t, 2, col)
	assert.Equal(t, SortAsc, dir)
	assert.Equal(t, []string{"Due", "Due", "Paid", "Paid", "Paid"}, column(table.Rows(), 2))
	// stable: ties keep their previous relative order
	assert.Equal(t, "MacBook Pro", table.Rows()[0][0])
}

func TestTableRejectsUnsortableColumns(t *testing.T) {
	table := NewTable(TableConfig{Columns: DefaultOrderColumns(), Rows: DefaultOrderRows()})
	assert.False(t, table.SortBy(3))
	assert.False(t, table.SortBy(-1))
	assert.False(t, table.SortBy(9))
	col, _ := table.SortState()
	assert.Equal(t, -1, col)
}

func TestTableRenders(t *testing.T) {
	renderer := newStubRenderer()
	doc := NewMemoryDocument(ContainerTable)
	table := NewTable(TableConfig{
		Columns:   DefaultOrderColumns(),
		Rows:      DefaultOrderRows(),
		Container: lookupContainer(doc, ContainerTable),
		Renderer:  renderer,
	})
	table.SortBy(1)

	headers := renderer.last(tableTemplate)["headers"].([]map[string]any)
	assert.Equal(t, "asc", headers[1]["direction"])
	assert.Equal(t, false, headers[3]["sortable"])
	assert.Equal(t, "<table/>", doc.Content(ContainerTable))
}

func TestParseFloatPrefix(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"12px", 12, true},
		{"  -3.5e2kg", -350, true},
		{".5", 0.5, true},
		{"1e", 1, true},
		{"+7", 7, true},
		{"$120", 0, false},
		{"abc", 0, false},
		{"", 0, false},
		{"-", 0, false},
	}
	for _, tc := range cases {
		got, ok := parseFloatPrefix(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		if tc.ok {
			assert.InDelta(t, tc.want, got, 1e-9, tc.in)
		}
	}
	inf, ok := parseFloatPrefix("-Infinity")
	assert.True(t, ok)
	assert.True(t, math.IsInf(inf, -1))
}
