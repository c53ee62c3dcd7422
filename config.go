package postlasso

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/edustat/postlasso/bootstrap"
	"github.com/edustat/postlasso/codec"
	"github.com/edustat/postlasso/errs"
	"github.com/edustat/postlasso/regress"
	"github.com/edustat/postlasso/survey"
)

// Config carries the full pipeline configuration. Values resolve in three
// layers: DefaultConfig, then an optional YAML file, then explicit flag
// overrides applied by the caller.
type Config struct {
	// DataPath locates the survey extract CSV.
	DataPath string `yaml:"data_path"`

	// ResultsDir roots every persisted output: results tables, the live
	// bootstrap caches, and the legacy caches.
	ResultsDir string `yaml:"results_dir"`

	// Refit recomputes and persists the full-data results tables. When
	// false, previously materialized tables are read back instead.
	Refit bool `yaml:"refit"`

	// Bootstrap runs the resampling cache engine after the refit step.
	Bootstrap bool `yaml:"bootstrap"`

	// Response selects the responses to process: "all" or a name
	// fragment such as "oral_language".
	Response string `yaml:"response"`

	// Samples is the bootstrap resample count per response.
	Samples int `yaml:"samples"`

	// GridSize is the candidate count per regularization strength in the
	// grid search.
	GridSize int `yaml:"grid_size"`

	// BaseSeed initializes the resampling generator at startup.
	BaseSeed int64 `yaml:"base_seed"`

	// Archive names the codec completed caches are compressed with:
	// none, zstd, s2, lz4 or gzip.
	Archive string `yaml:"archive"`
}

// DefaultConfig returns the standing defaults of the survey pipeline.
func DefaultConfig() Config {
	return Config{
		DataPath:   "data/survey.csv",
		ResultsDir: "results",
		Response:   survey.AllSelector,
		Samples:    bootstrap.DefaultSamples,
		GridSize:   regress.DefaultGridSize,
		BaseSeed:   bootstrap.DefaultBaseSeed,
		Archive:    codec.TypeNone.String(),
	}
}

// LoadConfig reads a YAML config file over the defaults. Keys absent from
// the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: config %s: %v", errs.ErrInvalidInput, path, err)
	}

	return cfg, nil
}

// Validate checks the configuration for values no run could succeed with.
func (c *Config) Validate() error {
	if c.DataPath == "" {
		return fmt.Errorf("%w: data path is empty", errs.ErrInvalidInput)
	}
	if c.ResultsDir == "" {
		return fmt.Errorf("%w: results directory is empty", errs.ErrInvalidInput)
	}
	if c.Samples < 1 {
		return fmt.Errorf("%w: sample count must be at least 1, got %d", errs.ErrInvalidInput, c.Samples)
	}
	if c.GridSize < 1 {
		return fmt.Errorf("%w: grid size must be at least 1, got %d", errs.ErrInvalidInput, c.GridSize)
	}
	if _, err := codec.TypeFromString(c.Archive); err != nil {
		return err
	}

	return nil
}

// archiveType returns the parsed archive codec. Call after Validate.
func (c *Config) archiveType() codec.Type {
	t, err := codec.TypeFromString(c.Archive)
	if err != nil {
		return codec.TypeNone
	}

	return t
}
