package survey

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/edustat/postlasso/frame"
)

// ResultsPath returns the per-response results file under dir.
func ResultsPath(dir string, resp Response) string {
	return filepath.Join(dir, resp.String()+".csv")
}

// WriteResults persists the response's coefficient table, dropping the
// truncation diagnostic columns first. The results directory is created
// as needed.
func WriteResults(dir string, resp Response, tbl *frame.Table) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create results dir: %w", err)
	}

	out := tbl.Drop(frame.TruncationMarker)

	f, err := os.Create(ResultsPath(dir, resp))
	if err != nil {
		return fmt.Errorf("create results file: %w", err)
	}

	if err := out.WriteCSV(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// ReadResults loads a previously materialized results table.
func ReadResults(dir string, resp Response) (*frame.Table, error) {
	path := ResultsPath(dir, resp)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open results file: %w", err)
	}
	defer f.Close()

	tbl, err := frame.ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return tbl.Drop(frame.BookkeepingMarker), nil
}
