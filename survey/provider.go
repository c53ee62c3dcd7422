package survey

import (
	"fmt"
	"os"

	"github.com/edustat/postlasso/errs"
	"github.com/edustat/postlasso/frame"
)

// DataProvider supplies the predictor matrix and one response vector.
// Implementations must return identical predictor names and order on
// every call, whichever response is requested; coefficient caches assume
// a stable schema.
type DataProvider interface {
	PullData(resp Response) (*frame.Matrix, frame.Vector, error)
}

// CSVProvider reads the wide survey extract: one CSV holding every
// predictor column plus one column per response variable. Predictor order
// follows file order. Bookkeeping index columns are stripped on load.
type CSVProvider struct {
	path  string
	table *frame.Table
}

var _ DataProvider = (*CSVProvider)(nil)

// NewCSVProvider creates a provider over the extract at path. The file is
// read on first use and kept in memory for the following pulls.
func NewCSVProvider(path string) *CSVProvider {
	return &CSVProvider{path: path}
}

// PullData returns the predictor matrix and the requested response vector.
func (p *CSVProvider) PullData(resp Response) (*frame.Matrix, frame.Vector, error) {
	tbl, err := p.load()
	if err != nil {
		return nil, nil, err
	}

	y, ok := tbl.Col(resp.String())
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s has no %q column", errs.ErrInvalidInput, p.path, resp)
	}

	var names []string
	var cols [][]float64
	for _, name := range tbl.Names() {
		if IsResponseColumn(name) {
			continue
		}
		col, _ := tbl.Col(name)
		names = append(names, name)
		cols = append(cols, col)
	}

	X, err := frame.NewMatrix(names, cols)
	if err != nil {
		return nil, nil, err
	}

	return X, frame.Vector(y), nil
}

func (p *CSVProvider) load() (*frame.Table, error) {
	if p.table != nil {
		return p.table, nil
	}

	f, err := os.Open(p.path)
	if err != nil {
		return nil, fmt.Errorf("open survey extract: %w", err)
	}
	defer f.Close()

	tbl, err := frame.ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.path, err)
	}
	tbl = tbl.Drop(frame.BookkeepingMarker)

	if tbl.NumRows() == 0 {
		return nil, fmt.Errorf("%w: %s has no observations", errs.ErrInvalidInput, p.path)
	}

	p.table = tbl

	return tbl, nil
}
