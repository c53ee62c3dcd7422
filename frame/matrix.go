package frame

import (
	"fmt"
	"slices"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/edustat/postlasso/errs"
	"github.com/edustat/postlasso/internal/hash"
)

// Column-name markers recognized throughout the pipeline.
const (
	// InteractionMarker tags predictor columns holding interaction terms;
	// they receive the interaction regularization strength.
	InteractionMarker = "interaction"

	// TruncationMarker tags diagnostic columns emitted by the selective
	// fit; they are dropped before a results table is persisted.
	TruncationMarker = "trunc"

	// BookkeepingMarker tags index columns written by earlier tooling;
	// loaders strip them.
	BookkeepingMarker = "Unnamed"
)

// Matrix is an ordered collection of named predictor columns with one row
// per observation. It is immutable after construction; resampling and
// column selection build new matrices.
type Matrix struct {
	names []string
	cols  [][]float64
	index map[string]int
	rows  int
}

// NewMatrix builds a Matrix from column names and column-major data.
// It takes ownership of cols; callers must not modify the slices after.
//
// Returns ErrInvalidInput when names and cols disagree in length, a name
// repeats, or columns differ in row count.
func NewMatrix(names []string, cols [][]float64) (*Matrix, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: matrix needs at least one column", errs.ErrInvalidInput)
	}
	if len(names) != len(cols) {
		return nil, fmt.Errorf("%w: %d column names for %d columns", errs.ErrInvalidInput, len(names), len(cols))
	}

	rows := len(cols[0])
	index := make(map[string]int, len(names))
	for j, name := range names {
		if _, dup := index[name]; dup {
			return nil, fmt.Errorf("%w: duplicate column %q", errs.ErrInvalidInput, name)
		}
		index[name] = j

		if len(cols[j]) != rows {
			return nil, fmt.Errorf("%w: column %q has %d rows, want %d", errs.ErrInvalidInput, name, len(cols[j]), rows)
		}
	}

	return &Matrix{
		names: slices.Clone(names),
		cols:  cols,
		index: index,
		rows:  rows,
	}, nil
}

// Rows returns the number of observations.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of predictor columns.
func (m *Matrix) Cols() int { return len(m.cols) }

// Names returns the column names in order. The slice is shared; callers
// must not modify it.
func (m *Matrix) Names() []string { return m.names }

// Name returns the name of column j.
func (m *Matrix) Name(j int) string { return m.names[j] }

// Col returns column j without copying. Callers must not modify it.
func (m *Matrix) Col(j int) []float64 { return m.cols[j] }

// Index returns the position of the named column.
func (m *Matrix) Index(name string) (int, bool) {
	j, ok := m.index[name]
	return j, ok
}

// IsInteraction reports whether column j holds an interaction term.
func (m *Matrix) IsInteraction(j int) bool {
	return strings.Contains(m.names[j], InteractionMarker)
}

// Schema returns the xxHash64 fingerprint of the ordered column names.
// Coefficient caches are valid for exactly one schema fingerprint.
func (m *Matrix) Schema() uint64 {
	return hash.Schema(m.names)
}

// TakeRows builds a new Matrix from the given row indices, in draw order.
// Duplicate indices are allowed; bootstrap resampling depends on that.
func (m *Matrix) TakeRows(idx []int) (*Matrix, error) {
	for _, i := range idx {
		if i < 0 || i >= m.rows {
			return nil, fmt.Errorf("%w: row index %d out of range [0,%d)", errs.ErrInvalidInput, i, m.rows)
		}
	}

	cols := make([][]float64, len(m.cols))
	for j, col := range m.cols {
		taken := make([]float64, len(idx))
		for k, i := range idx {
			taken[k] = col[i]
		}
		cols[j] = taken
	}

	return &Matrix{
		names: m.names,
		cols:  cols,
		index: m.index,
		rows:  len(idx),
	}, nil
}

// Select builds a new Matrix holding only the named columns, in the given
// order. Column data is shared with the receiver, not copied.
func (m *Matrix) Select(names []string) (*Matrix, error) {
	cols := make([][]float64, len(names))
	for k, name := range names {
		j, ok := m.index[name]
		if !ok {
			return nil, fmt.Errorf("%w: no column %q", errs.ErrInvalidInput, name)
		}
		cols[k] = m.cols[j]
	}

	return NewMatrix(names, cols)
}

// Dense copies the matrix into gonum's row-major dense form.
func (m *Matrix) Dense() *mat.Dense {
	d := mat.NewDense(m.rows, len(m.cols), nil)
	for j, col := range m.cols {
		d.SetCol(j, col)
	}

	return d
}

// Vector is a response vector aligned with a Matrix by row index.
type Vector []float64

// TakeRows builds a new Vector from the given row indices, in draw order.
func (v Vector) TakeRows(idx []int) (Vector, error) {
	taken := make(Vector, len(idx))
	for k, i := range idx {
		if i < 0 || i >= len(v) {
			return nil, fmt.Errorf("%w: row index %d out of range [0,%d)", errs.ErrInvalidInput, i, len(v))
		}
		taken[k] = v[i]
	}

	return taken, nil
}
