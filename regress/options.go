package regress

import (
	"fmt"
	"log/slog"

	"github.com/edustat/postlasso/errs"
	"github.com/edustat/postlasso/internal/options"
)

// Solver and search defaults.
const (
	// DefaultTolerance is the coordinate-descent convergence threshold:
	// the largest absolute coefficient change allowed in a converged sweep.
	DefaultTolerance = 1e-7

	// DefaultMaxSweeps caps full coordinate sweeps before the solver
	// reports non-convergence.
	DefaultMaxSweeps = 1000

	// DefaultGridSize is the number of candidate strengths per column
	// class in the grid search.
	DefaultGridSize = 5

	// DefaultFolds is the number of contiguous cross-validation folds.
	DefaultFolds = 5
)

// FitConfig holds the coordinate-descent solver settings.
type FitConfig struct {
	Tolerance float64
	MaxSweeps int
}

func defaultFitConfig() FitConfig {
	return FitConfig{
		Tolerance: DefaultTolerance,
		MaxSweeps: DefaultMaxSweeps,
	}
}

// FitOption is a functional option for SelectRefit.
type FitOption = options.Option[*FitConfig]

// WithTolerance sets the convergence threshold.
func WithTolerance(tol float64) FitOption {
	return options.New(func(cfg *FitConfig) error {
		if tol <= 0 {
			return fmt.Errorf("%w: tolerance must be positive, got %g", errs.ErrInvalidInput, tol)
		}
		cfg.Tolerance = tol

		return nil
	})
}

// WithMaxSweeps caps the solver's coordinate sweeps.
func WithMaxSweeps(n int) FitOption {
	return options.New(func(cfg *FitConfig) error {
		if n < 1 {
			return fmt.Errorf("%w: max sweeps must be at least 1, got %d", errs.ErrInvalidInput, n)
		}
		cfg.MaxSweeps = n

		return nil
	})
}

// SearchConfig holds the grid-search settings.
type SearchConfig struct {
	GridSize int
	Folds    int
	Fit      FitConfig
	Logger   *slog.Logger
}

func defaultSearchConfig() SearchConfig {
	return SearchConfig{
		GridSize: DefaultGridSize,
		Folds:    DefaultFolds,
		Fit:      defaultFitConfig(),
		Logger:   slog.Default(),
	}
}

// SearchOption is a functional option for Search.
type SearchOption = options.Option[*SearchConfig]

// WithGridSize sets the candidate count per column class.
func WithGridSize(size int) SearchOption {
	return options.New(func(cfg *SearchConfig) error {
		if size < 1 {
			return fmt.Errorf("%w: grid size must be at least 1, got %d", errs.ErrInvalidInput, size)
		}
		cfg.GridSize = size

		return nil
	})
}

// WithFolds sets the cross-validation fold count.
func WithFolds(k int) SearchOption {
	return options.New(func(cfg *SearchConfig) error {
		if k < 2 {
			return fmt.Errorf("%w: cross-validation needs at least 2 folds, got %d", errs.ErrInvalidInput, k)
		}
		cfg.Folds = k

		return nil
	})
}

// WithLogger routes the per-candidate debug lines.
func WithLogger(logger *slog.Logger) SearchOption {
	return options.New(func(cfg *SearchConfig) error {
		if logger == nil {
			return fmt.Errorf("%w: nil logger", errs.ErrInvalidInput)
		}
		cfg.Logger = logger

		return nil
	})
}
