// Package postlasso estimates post-selection regression models for early
// literacy survey extracts.
//
// The pipeline runs lasso-regularized variable selection followed by an
// unregularized least-squares refit on the selected predictors, once per
// response variable. Bootstrap resampling quantifies the variability of the
// selected coefficients, with every completed seed cached on disk so an
// interrupted run resumes instead of recomputing.
//
// # Core Features
//
//   - L1-regularized selection with separate strengths for interaction and
//     main-effect predictors, tuned by cross-validated grid search
//   - Unregularized post-selection refit with truncation bounds for the
//     selected coefficients
//   - Resumable bootstrap resampling with an append-only per-seed cache,
//     including migration of hits from a legacy cache directory
//   - Optional cache archival (Zstd, S2, LZ4, Gzip) once a run completes
//   - Schema fingerprints (64-bit xxHash64) guarding cached coefficients
//     against predictor drift
//
// # Basic Usage
//
// Running the full pipeline over every response variable:
//
//	import "github.com/edustat/postlasso"
//
//	cfg := postlasso.DefaultConfig()
//	cfg.DataPath = "data/survey.csv"
//	cfg.ResultsDir = "results"
//	cfg.Refit = true
//	cfg.Bootstrap = true
//
//	if err := postlasso.Run(cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// Restricting the run to a single response and swapping the data source:
//
//	cfg.Response = "print_knowledge"
//	err := postlasso.Run(cfg, postlasso.WithDataProvider(myProvider))
//
// # Package Structure
//
// This package provides the configuration surface and a top-level wrapper
// around the pipeline. The underlying stages live in their own packages:
// survey (data extraction and response resolution), regress (selection,
// refit, and grid search), bootstrap (resampling engine and cache store),
// frame (column-major data containers), and codec (cache archival).
package postlasso

import (
	"github.com/edustat/postlasso/survey"
)

// Run executes the pipeline described by cfg: it resolves the configured
// response selector, pulls the survey extract once per response, and runs
// the refit and bootstrap stages that cfg enables.
//
// Parameters:
//   - cfg: Validated before use; see Config for field semantics.
//   - opts: Optional overrides (see PipelineOption).
//
// Returns an error wrapping errs.ErrInvalidInput if cfg fails validation,
// or the first stage error encountered, tagged with the response it
// belongs to.
//
// Example:
//
//	err := postlasso.Run(cfg,
//	    postlasso.WithSelectiveFitter(regress.NewRefitFitter()),
//	    postlasso.WithLogger(logger),
//	)
func Run(cfg Config, opts ...PipelineOption) error {
	p, err := NewPipeline(cfg, opts...)
	if err != nil {
		return err
	}

	return p.Run()
}

// Responses resolves a response selector into the concrete response
// variables it names. The selector "all" expands to every response;
// anything else must match exactly one variable by keyword.
//
// Returns an error wrapping errs.ErrUnknownResponse if the selector matches
// no response variable or more than one.
func Responses(selector string) ([]survey.Response, error) {
	return survey.Resolve(selector)
}
