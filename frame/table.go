package frame

import (
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/edustat/postlasso/errs"
)

// Table is a small ordered-column numeric table: the shape of the
// selective-fit output, the persisted per-response results, and the
// on-disk coefficient caches.
type Table struct {
	names []string
	rows  [][]float64
}

// NewTable builds a Table from column names and row-major data.
//
// Returns ErrInvalidInput when a name repeats or a row's length disagrees
// with the header.
func NewTable(names []string, rows [][]float64) (*Table, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: table needs at least one column", errs.ErrInvalidInput)
	}

	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: duplicate column %q", errs.ErrInvalidInput, name)
		}
		seen[name] = struct{}{}
	}

	for i, row := range rows {
		if len(row) != len(names) {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", errs.ErrInvalidInput, i, len(row), len(names))
		}
	}

	return &Table{names: slices.Clone(names), rows: rows}, nil
}

// Names returns the column names in order. Shared; do not modify.
func (t *Table) Names() []string { return t.names }

// NumRows returns the number of data rows.
func (t *Table) NumRows() int { return len(t.rows) }

// Row returns row i without copying. Callers must not modify it.
func (t *Table) Row(i int) []float64 { return t.rows[i] }

// Col gathers the values of the named column.
func (t *Table) Col(name string) ([]float64, bool) {
	j := slices.Index(t.names, name)
	if j < 0 {
		return nil, false
	}

	out := make([]float64, len(t.rows))
	for i, row := range t.rows {
		out[i] = row[j]
	}

	return out, true
}

// Drop returns a table without the columns whose name contains marker.
// When nothing matches, the receiver is returned unchanged.
func (t *Table) Drop(marker string) *Table {
	keep := make([]int, 0, len(t.names))
	for j, name := range t.names {
		if !strings.Contains(name, marker) {
			keep = append(keep, j)
		}
	}
	if len(keep) == len(t.names) {
		return t
	}

	names := make([]string, len(keep))
	for k, j := range keep {
		names[k] = t.names[j]
	}

	rows := make([][]float64, len(t.rows))
	for i, row := range t.rows {
		nr := make([]float64, len(keep))
		for k, j := range keep {
			nr[k] = row[j]
		}
		rows[i] = nr
	}

	return &Table{names: names, rows: rows}
}

// WriteCSV writes the table with a header row. Values use the shortest
// representation that round-trips float64.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.names); err != nil {
		return err
	}

	cells := make([]string, len(t.names))
	for _, row := range t.rows {
		for j, v := range row {
			cells[j] = FormatFloat(v)
		}
		if err := cw.Write(cells); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// ReadCSV parses a numeric CSV table with a header row. Every data cell
// must parse as a float64; ragged rows are rejected by the CSV reader.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty table", errs.ErrInvalidInput)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidInput, err)
	}

	var rows [][]float64
	for line := 2; ; line++ {
		cells, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errs.ErrInvalidInput, err)
		}

		row := make([]float64, len(cells))
		for j, cell := range cells {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d column %q: %q is not numeric",
					errs.ErrInvalidInput, line, header[j], cell)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}

	return NewTable(header, rows)
}

// FormatFloat renders v with the shortest representation that round-trips
// float64. Integral values render without a decimal point.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
