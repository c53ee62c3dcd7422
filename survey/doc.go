// Package survey binds the estimation pipeline to the early-literacy
// survey data: the four response variables, the selector resolution rules,
// the CSV-backed data provider and the per-response results files.
//
// # Responses
//
// The survey carries four composite response scores, identified by the
// Response enum and keyed by their snake_case names:
//
//	print_knowledge
//	literacy_resources
//	oral_language
//	print_motivation
//
// Resolve maps a user-facing selector to concrete responses: "all" expands
// to every response, anything else matches by keyword ("oral" picks
// oral_language, "print" plus "knowledge" picks print_knowledge, and so
// on). A selector matching zero or several responses fails with
// errs.ErrUnknownResponse rather than guessing.
//
// # Data Layout
//
// CSVProvider reads the wide survey extract: one CSV holding every
// predictor column plus one column per response variable. Predictor order
// follows file order, response columns are excluded from the predictor
// matrix, and bookkeeping index columns are stripped on load. The provider
// reads the file once and serves every later pull from memory, so the
// predictor schema is identical across responses within a run.
//
// # Results Files
//
// Each response's coefficient table persists to <dir>/<response>.csv via
// WriteResults, with the interval diagnostic columns dropped; ReadResults
// loads a previously materialized table back. The pipeline reads these
// tables instead of refitting when the refit step is disabled.
package survey
