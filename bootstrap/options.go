package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/edustat/postlasso/codec"
	"github.com/edustat/postlasso/errs"
	"github.com/edustat/postlasso/internal/options"
	"github.com/edustat/postlasso/regress"
)

// Standing defaults of the survey pipeline.
const (
	// DefaultSamples is the bootstrap resample count per response.
	DefaultSamples = 50

	// DefaultBaseSeed initializes the engine's generator at construction.
	DefaultBaseSeed int64 = 186
)

// EngineConfig holds the engine settings.
type EngineConfig struct {
	Samples  int
	BaseSeed int64
	GridSize int
	Archive  codec.Type
	Logger   *slog.Logger
}

func defaultEngineConfig() EngineConfig {
	return EngineConfig{
		Samples:  DefaultSamples,
		BaseSeed: DefaultBaseSeed,
		GridSize: regress.DefaultGridSize,
		Archive:  codec.TypeNone,
		Logger:   slog.Default(),
	}
}

// EngineOption is a functional option for NewEngine.
type EngineOption = options.Option[*EngineConfig]

// WithSamples sets the resample count.
func WithSamples(n int) EngineOption {
	return options.New(func(cfg *EngineConfig) error {
		if n < 1 {
			return fmt.Errorf("%w: sample count must be at least 1, got %d", errs.ErrInvalidInput, n)
		}
		cfg.Samples = n

		return nil
	})
}

// WithBaseSeed sets the seed the shared generator starts from.
func WithBaseSeed(seed int64) EngineOption {
	return options.NoError(func(cfg *EngineConfig) {
		cfg.BaseSeed = seed
	})
}

// WithGridSize forwards the candidate count to the grid search.
func WithGridSize(size int) EngineOption {
	return options.New(func(cfg *EngineConfig) error {
		if size < 1 {
			return fmt.Errorf("%w: grid size must be at least 1, got %d", errs.ErrInvalidInput, size)
		}
		cfg.GridSize = size

		return nil
	})
}

// WithArchive compresses a response's cache with the given codec once all
// samples are present. TypeNone leaves the cache as plain CSV.
func WithArchive(t codec.Type) EngineOption {
	return options.NoError(func(cfg *EngineConfig) {
		cfg.Archive = t
	})
}

// WithLogger routes the engine's progress lines.
func WithLogger(logger *slog.Logger) EngineOption {
	return options.New(func(cfg *EngineConfig) error {
		if logger == nil {
			return fmt.Errorf("%w: nil logger", errs.ErrInvalidInput)
		}
		cfg.Logger = logger

		return nil
	})
}
