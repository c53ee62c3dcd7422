package bootstrap

import (
	"fmt"
	"slices"

	"github.com/edustat/postlasso/errs"
	"github.com/edustat/postlasso/frame"
)

// SeedColumn is the cache column recording each record's bootstrap seed.
const SeedColumn = "seed"

// Cache accumulates the per-seed coefficient records for one response.
// Records arrive in computation order, one per seed; once appended they
// are never replaced. The zero number of records is the fresh state.
type Cache struct {
	names   []string
	records []*frame.Record
	bySeed  map[int]int
}

// NewCache creates an empty cache over the given predictor schema.
func NewCache(names []string) *Cache {
	return &Cache{
		names:  slices.Clone(names),
		bySeed: make(map[int]int),
	}
}

// Names returns the predictor schema. Shared; do not modify.
func (c *Cache) Names() []string { return c.names }

// Len returns the number of cached records.
func (c *Cache) Len() int { return len(c.records) }

// Has reports whether a record for the seed is present.
func (c *Cache) Has(seed int) bool {
	_, ok := c.bySeed[seed]
	return ok
}

// Get returns the record for the seed.
func (c *Cache) Get(seed int) (*frame.Record, bool) {
	i, ok := c.bySeed[seed]
	if !ok {
		return nil, false
	}

	return c.records[i], true
}

// Records returns the cached records in insertion order. Shared; do not
// modify.
func (c *Cache) Records() []*frame.Record { return c.records }

// Append adds a seed-bound record.
//
// Returns ErrInvalidInput when the record is unbound, its schema differs
// from the cache's, or its seed is already present.
func (c *Cache) Append(rec *frame.Record) error {
	if rec.Seed() < 0 {
		return fmt.Errorf("%w: record is not bound to a seed", errs.ErrInvalidInput)
	}
	if !slices.Equal(rec.Names(), c.names) {
		return fmt.Errorf("%w: record schema does not match cache schema", errs.ErrInvalidInput)
	}
	if c.Has(rec.Seed()) {
		return fmt.Errorf("%w: seed %d already cached", errs.ErrInvalidInput, rec.Seed())
	}

	c.bySeed[rec.Seed()] = len(c.records)
	c.records = append(c.records, rec)

	return nil
}

// table renders the cache in its on-disk layout: predictor columns in
// schema order, then the seed column.
func (c *Cache) table() (*frame.Table, error) {
	names := append(slices.Clone(c.names), SeedColumn)

	rows := make([][]float64, 0, len(c.records))
	for _, rec := range c.records {
		row := append(slices.Clone(rec.Values()), float64(rec.Seed()))
		rows = append(rows, row)
	}

	return frame.NewTable(names, rows)
}
