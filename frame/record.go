package frame

import (
	"fmt"
	"slices"

	"github.com/edustat/postlasso/errs"
)

// Record is one fitted coefficient vector: a value for every predictor
// column, in matrix column order, plus the bootstrap seed that produced
// it. A fresh record is unbound (Seed() == -1) until WithSeed attaches
// the seed it was computed under.
type Record struct {
	names  []string
	values []float64
	seed   int
}

// NewRecord builds an unbound Record over the given schema.
//
// Returns ErrInvalidInput when names and values disagree in length or a
// name repeats.
func NewRecord(names []string, values []float64) (*Record, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: record needs at least one column", errs.ErrInvalidInput)
	}
	if len(names) != len(values) {
		return nil, fmt.Errorf("%w: %d values for %d columns", errs.ErrInvalidInput, len(values), len(names))
	}

	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: duplicate column %q", errs.ErrInvalidInput, name)
		}
		seen[name] = struct{}{}
	}

	return &Record{
		names:  slices.Clone(names),
		values: slices.Clone(values),
		seed:   -1,
	}, nil
}

// WithSeed returns a copy of the record bound to the given seed.
func (r *Record) WithSeed(seed int) *Record {
	return &Record{names: r.names, values: r.values, seed: seed}
}

// Seed returns the bootstrap seed, or -1 for an unbound record.
func (r *Record) Seed() int { return r.seed }

// Names returns the column names in order. Shared; do not modify.
func (r *Record) Names() []string { return r.names }

// Values returns the coefficients in column order. Shared; do not modify.
func (r *Record) Values() []float64 { return r.values }

// Value returns the coefficient for the named column.
func (r *Record) Value(name string) (float64, bool) {
	for j, n := range r.names {
		if n == name {
			return r.values[j], true
		}
	}

	return 0, false
}

// Len returns the number of columns.
func (r *Record) Len() int { return len(r.names) }
