// Package errs defines the sentinel errors shared by all postlasso packages.
//
// Call sites wrap these with fmt.Errorf("%w: ...", ...) to attach context;
// callers match them with errors.Is. Every failure mode surfaced by the
// public API belongs to exactly one of these sentinels.
package errs

import "errors"

var (
	// ErrInvalidInput indicates malformed or inconsistent input: an empty
	// design matrix, a row-count mismatch between predictors and response,
	// or an out-of-range configuration value.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNumericalFit indicates that a fitting routine could not produce a
	// usable estimate: coordinate descent exhausted its sweep budget, or
	// the post-selection system is rank deficient.
	ErrNumericalFit = errors.New("numerical fit failed")

	// ErrUnknownResponse indicates a response selector that matches zero,
	// or more than one, survey response variable.
	ErrUnknownResponse = errors.New("unknown response")

	// ErrCacheCorruption indicates an on-disk coefficient cache that does
	// not line up with the current predictor set: wrong column schema, a
	// non-numeric cell, or a duplicated seed row.
	ErrCacheCorruption = errors.New("cache corruption")

	// ErrUnsupportedCodec indicates a compression codec name or archive
	// extension this build does not recognize.
	ErrUnsupportedCodec = errors.New("unsupported codec")
)
