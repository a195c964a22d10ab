package widgets

import (
	"context"
	"math"
	"sort"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const tableTemplate = "table"

// SortDirection is the sort state of a table column.
type SortDirection string

const (
	SortNone SortDirection = ""
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Column describes a table header.
type Column struct {
	Label  string `json:"label" yaml:"label"`
	NoSort bool   `json:"no_sort,omitempty" yaml:"no_sort,omitempty"`
}

// TableConfig wires a Table.
type TableConfig struct {
	Columns   []Column
	Rows      [][]string
	Language  language.Tag
	Container Container
	Renderer  Renderer
	Telemetry Telemetry
}

// Table is a sortable grid of text cells. Sorting toggles between ascending
// and descending per column; other columns lose their sort state.
type Table struct {
	container Container
	renderer  Renderer
	telemetry Telemetry

	mu        sync.Mutex
	collator  *collate.Collator
	columns   []Column
	rows      [][]string
	sorted    int
	direction SortDirection
}

// NewTable builds a table in its original row order.
func NewTable(cfg TableConfig) *Table {
	tag := cfg.Language
	if tag == language.Und {
		tag = language.English
	}
	rows := make([][]string, len(cfg.Rows))
	for i, row := range cfg.Rows {
		rows[i] = append([]string(nil), row...)
	}
	t := &Table{
		container: cfg.Container,
		renderer:  cfg.Renderer,
		telemetry: normalizeTelemetry(cfg.Telemetry),
		collator:  collate.New(tag),
		columns:   append([]Column(nil), cfg.Columns...),
		rows:      rows,
		sorted:    -1,
	}
	t.render()
	return t
}

// SortBy sorts on column. A column already sorted ascending flips to
// descending; anything else sorts ascending. Cells that both parse as numbers
// compare numerically, the rest by collation. Unknown or unsortable columns
// report false.
func (t *Table) SortBy(column int) bool {
	t.mu.Lock()
	if column < 0 || column >= len(t.columns) || t.columns[column].NoSort {
		t.mu.Unlock()
		return false
	}
	ascending := !(t.sorted == column && t.direction == SortAsc)
	t.sorted = column
	t.direction = SortDesc
	if ascending {
		t.direction = SortAsc
	}
	sort.SliceStable(t.rows, func(i, j int) bool {
		cmp := t.compareCells(cell(t.rows[i], column), cell(t.rows[j], column))
		if ascending {
			return cmp < 0
		}
		return cmp > 0
	})
	direction := t.direction
	t.mu.Unlock()

	t.telemetry.Record(context.Background(), "widgets.table.sort", map[string]any{
		"column":    column,
		"direction": string(direction),
	})
	t.render()
	return true
}

// Rows returns a copy of the rows in display order.
func (t *Table) Rows() [][]string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([][]string, len(t.rows))
	for i, row := range t.rows {
		out[i] = append([]string(nil), row...)
	}
	return out
}

// Columns returns the column headers.
func (t *Table) Columns() []Column {
	return append([]Column(nil), t.columns...)
}

// SortState returns the sorted column (-1 when none) and its direction.
func (t *Table) SortState() (int, SortDirection) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.sorted, t.direction
}

func (t *Table) compareCells(a, b string) int {
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	an, aok := parseFloatPrefix(a)
	bn, bok := parseFloatPrefix(b)
	if aok && bok {
		switch {
		case an < bn:
			return -1
		case an > bn:
			return 1
		default:
			return 0
		}
	}
	return t.collator.CompareString(a, b)
}

func cell(row []string, column int) string {
	if column < len(row) {
		return row[column]
	}
	return ""
}

// parseFloatPrefix reads the longest leading decimal number of s, the way a
// browser's parseFloat does: "12px" is 12, "-3.5e2kg" is -350, "abc" fails.
func parseFloatPrefix(s string) (float64, bool) {
	s = strings.TrimLeft(s, " \t\n\r\f\v")
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if strings.HasPrefix(s[i:], "Infinity") {
		if s[0] == '-' {
			return math.Inf(-1), true
		}
		return math.Inf(1), true
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0, false
	}
	end := i
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		exp := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			exp++
		}
		if exp > 0 {
			end = j
		}
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		// out of range values still carry a sign and magnitude
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
			return v, true
		}
		return 0, false
	}
	return v, true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func (t *Table) render() {
	if t.container == nil || t.renderer == nil {
		return
	}
	t.mu.Lock()
	headers := make([]map[string]any, 0, len(t.columns))
	for i, column := range t.columns {
		direction := SortNone
		if i == t.sorted {
			direction = t.direction
		}
		headers = append(headers, map[string]any{
			"index":     i,
			"label":     column.Label,
			"sortable":  !column.NoSort,
			"direction": string(direction),
		})
	}
	rows := make([][]string, len(t.rows))
	copy(rows, t.rows)
	t.mu.Unlock()

	html, err := t.renderer.Render(tableTemplate, map[string]any{
		"headers": headers,
		"rows":    rows,
	})
	if err != nil {
		t.telemetry.Record(context.Background(), "widgets.table.render_error", map[string]any{
			"error": err.Error(),
		})
		return
	}
	t.container.SetContent(html)
}
