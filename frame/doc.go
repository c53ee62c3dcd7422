// Package frame holds the tabular data model shared across the module:
// named predictor matrices, response vectors, per-seed coefficient records
// and the ordered-column tables persisted as CSV.
//
// # Column Order
//
// Column order is load order and stays stable through the whole pipeline.
// Every coefficient record mirrors the matrix column order exactly, and
// the cache layer fingerprints the ordered names to detect drift between
// an on-disk cache and the live data. Reordering columns in the source
// extract therefore invalidates existing caches on purpose.
//
// # Name Markers
//
// Three substring markers give column names meaning:
//
//   - InteractionMarker tags interaction predictors, which receive their
//     own regularization strength
//   - TruncationMarker tags interval diagnostic columns, which are
//     stripped before a results table is persisted
//   - BookkeepingMarker tags index columns written by earlier tooling,
//     which loaders strip on read
//
// # Resampling
//
// Matrix.TakeRows and Vector.TakeRows build new values from a row index
// list, preserving draw order and permitting duplicates. Bootstrap
// resampling is expressed entirely through these two calls.
//
// # CSV Layout
//
// Table reads and writes header-first numeric CSV. Values render with the
// shortest representation that round-trips float64, so a write/read cycle
// reproduces the exact bits that were fitted.
package frame
