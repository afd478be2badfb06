package survey

import (
	"math"
	"strconv"
	"strings"
	"time"

	"artsdash/domain/core"
)

// Record represents one survey response as column name to raw cell value
type Record map[string]string

// Table represents the complete loaded survey dataset
type Table struct {
	SnapshotID core.SnapshotID `json:"snapshot_id"`
	Locator    string          `json:"locator"`
	Headers    []string        `json:"headers"`
	Rows       []Record        `json:"rows"`
	LoadedAt   time.Time       `json:"loaded_at"`
}

// NewTable builds a table from parsed header and cell rows.
// Cells are trimmed; short rows leave the missing columns unset.
func NewTable(locator string, headers []string, cells [][]string) *Table {
	cleaned := make([]string, len(headers))
	for i, h := range headers {
		cleaned[i] = strings.TrimSpace(h)
	}

	rows := make([]Record, 0, len(cells))
	for _, row := range cells {
		record := make(Record, len(cleaned))
		for j, cell := range row {
			if j < len(cleaned) {
				record[cleaned[j]] = strings.TrimSpace(cell)
			}
		}
		rows = append(rows, record)
	}

	return &Table{
		SnapshotID: core.SnapshotID(core.NewID()),
		Locator:    locator,
		Headers:    cleaned,
		Rows:       rows,
		LoadedAt:   time.Now(),
	}
}

// HasColumn reports whether the table carries the named column.
func (t *Table) HasColumn(name string) bool {
	for _, h := range t.Headers {
		if h == name {
			return true
		}
	}
	return false
}

// ColumnsWithPrefix returns all header names starting with the given prefix,
// in file order.
func (t *Table) ColumnsWithPrefix(prefix string) []string {
	var cols []string
	for _, h := range t.Headers {
		if strings.HasPrefix(h, prefix) {
			cols = append(cols, h)
		}
	}
	return cols
}

// Column returns the raw string values of one column, one entry per row.
func (t *Table) Column(name string) []string {
	values := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = row[name]
	}
	return values
}

// NumericColumn coerces one column to numeric, one entry per row.
// Blank or non-numeric cells become NaN.
func (t *Table) NumericColumn(name string) []float64 {
	values := make([]float64, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = ParseCell(row[name])
	}
	return values
}

// Preview returns the first n rows as ordered cell slices for table display.
func (t *Table) Preview(n int) [][]string {
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	preview := make([][]string, n)
	for i := 0; i < n; i++ {
		cells := make([]string, len(t.Headers))
		for j, h := range t.Headers {
			cells[j] = t.Rows[i][h]
		}
		preview[i] = cells
	}
	return preview
}

// ParseCell coerces one raw cell to a float, returning NaN for blank or
// non-numeric content.
func ParseCell(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// IsMissing reports whether a coerced cell value counts as missing.
func IsMissing(v float64) bool {
	return math.IsNaN(v)
}
