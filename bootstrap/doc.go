// Package bootstrap implements the resumable bootstrap loop: per-seed
// resampling, selection-refit estimation and the append-only coefficient
// cache that survives interruption.
//
// # Seeds and Determinism
//
// Each bootstrap sample is identified by its seed, an integer in
// [0, samples). The engine reseeds its generator with the sample's own
// seed before drawing, so the rows a seed resamples depend only on that
// seed, never on how many earlier seeds ran in the same process. A run
// interrupted at seed 30 and resumed later computes seeds 30..49 exactly
// as an uninterrupted run would have.
//
// # Cache Layout and Durability
//
// The cache for one response is a CSV file with one column per predictor
// plus a seed column, one row per completed seed:
//
//	<results>/bootstrap/<response>_bootstrap_coeffs.csv
//
// The file is rewritten through a temp-file-and-rename after every seed,
// so a killed process leaves either the previous complete file or the new
// complete file, never a partial one. Records are appended only; a cached
// seed is never recomputed or replaced.
//
// A read-only legacy cache may exist under <results>/old/. Seeds found
// there are migrated into the live cache verbatim, without refitting, so
// numbers published from the legacy cache stay bit-identical.
//
// # Cache Validation
//
// Load verifies a stored cache against the live predictor schema by an
// order-sensitive fingerprint of the column names and rejects duplicate,
// negative or non-integral seeds. Any mismatch fails with
// errs.ErrCacheCorruption rather than silently mixing coefficients from
// different designs.
//
// # Archiving
//
// Once every seed is present the engine can compress the cache in place
// with a configured codec; the archive replaces the plain file, carrying
// the codec's extension. Loads transparently read through the archive,
// and a later run with a higher sample target unpacks, extends and
// re-archives it.
package bootstrap
