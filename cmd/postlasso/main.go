// Command postlasso runs the post-selection estimation pipeline over an
// early literacy survey extract: lasso selection with a cross-validated
// grid search, an unregularized refit, and resumable bootstrap resampling.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/edustat/postlasso"
)

// boolValue is a flag.Value that accepts the tokens yes/true/t/y/1 and
// no/false/f/n/0, case-insensitively. The stock flag.Bool only understands
// strconv.ParseBool syntax, which rejects yes/no.
type boolValue bool

func (b *boolValue) Set(s string) error {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "t", "y", "1":
		*b = true
	case "no", "false", "f", "n", "0":
		*b = false
	default:
		return fmt.Errorf("invalid boolean value %q (want yes/no, true/false, t/f, y/n, 1/0)", s)
	}

	return nil
}

func (b *boolValue) String() string { return strconv.FormatBool(bool(*b)) }

// IsBoolFlag lets the flag package treat a bare --refit as --refit=true.
func (b *boolValue) IsBoolFlag() bool { return true }

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "postlasso: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		refit     boolValue
		bootstrap boolValue
		logJSON   boolValue
	)

	configPath := flag.String("config", "", "Optional YAML config file; flags override its values")
	dataPath := flag.String("data", "", "Path to the survey extract CSV")
	resultsDir := flag.String("results", "", "Directory for result tables and the bootstrap cache")
	response := flag.String("response", "", "Response variable to estimate, or \"all\"")
	samples := flag.Int("samples", 0, "Number of bootstrap resamples")
	gridSize := flag.Int("grid-size", 0, "Candidate count per regularization strength")
	seed := flag.Int64("seed", 0, "Top-level seed for the bootstrap generator")
	archive := flag.String("archive", "", "Compress the cache after a complete run: none, zstd, s2, lz4 or gzip")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn or error")
	flag.Var(&refit, "refit", "Run the full-data selective fit and write the results table")
	flag.Var(&bootstrap, "bootstrap", "Run bootstrap resampling against the coefficient cache")
	flag.Var(&logJSON, "log-json", "Emit JSON logs instead of text")
	flag.Parse()

	cfg := postlasso.DefaultConfig()
	if *configPath != "" {
		loaded, err := postlasso.LoadConfig(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	// Only flags the user actually set override the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "data":
			cfg.DataPath = *dataPath
		case "results":
			cfg.ResultsDir = *resultsDir
		case "response":
			cfg.Response = *response
		case "refit":
			cfg.Refit = bool(refit)
		case "bootstrap":
			cfg.Bootstrap = bool(bootstrap)
		case "samples":
			cfg.Samples = *samples
		case "grid-size":
			cfg.GridSize = *gridSize
		case "seed":
			cfg.BaseSeed = *seed
		case "archive":
			cfg.Archive = *archive
		}
	})

	logger, err := newLogger(*logLevel, bool(logJSON))
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	return postlasso.Run(cfg, postlasso.WithLogger(logger))
}

func newLogger(level string, json bool) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	opts := &slog.HandlerOptions{Level: lvl}
	if json {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts)), nil
	}

	return slog.New(slog.NewTextHandler(os.Stderr, opts)), nil
}
