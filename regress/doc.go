// Package regress implements two-stage coefficient estimation for one
// response variable: L1-regularized selection picks the relevant predictor
// columns, then an unregularized least-squares refit on exactly those
// columns produces the reported coefficients.
//
// The split addresses the shrinkage bias of a plain lasso estimate. The
// L1 stage is only trusted for its support (which coefficients are
// nonzero); refitting the selected columns by ordinary least squares
// removes the penalty's pull toward zero from the reported magnitudes.
//
// # Key Features
//
//   - Class-specific regularization: interaction columns and main-effect
//     columns carry separate strengths, tuned independently
//   - Exact zeros: dropped columns report coefficient 0.0, not a small
//     number, so downstream selection counts are trustworthy
//   - Cross-validated tuning: Search picks the Penalty pair by K-fold
//     cross-validation over a two-dimensional log-spaced grid
//   - Deterministic: identical inputs produce identical selections,
//     estimates and tuning results, with no hidden randomness
//
// # Usage
//
// Tune the regularization strengths once per response, then fit:
//
//	pen, err := regress.Search(X, y)
//	if err != nil {
//	    return err
//	}
//
//	fit, err := regress.SelectRefit(X, y, pen)
//	if err != nil {
//	    return err
//	}
//	for j, name := range X.Names() {
//	    fmt.Printf("%s: %.4f\n", name, fit.Coefficients[j])
//	}
//
// A resample of the same data reuses the tuned Penalty unchanged; the
// strengths are normalized so they carry over between same-sized row sets.
//
// # Model
//
// The selection stage minimizes
//
//	(1/2n) * ||y - X b||^2 + sum_j (pen_j / n) * |b_j|
//
// by cyclic coordinate descent with exact soft-threshold updates, where
// pen_j is Penalty.Interaction for columns tagged as interactions and
// Penalty.Main for the rest. Convergence is declared when no coefficient
// moves more than the configured tolerance in a full sweep.
//
// The refit stage solves the unregularized least-squares problem on the
// selected columns via QR. An empty selection is valid and yields the
// all-zero coefficient vector without a refit.
//
// # Grid Search
//
// Search derives, per column class, the smallest strength that zeroes the
// whole class, spans log-spaced candidates between 1% of that ceiling and
// the ceiling itself, and scores every (interaction, main) pair by mean
// validation MSE over contiguous folds. Ties keep the earlier candidate.
// Candidates whose fit does not converge are skipped; Search fails only
// when no candidate converges at all.
//
// # Results Tables
//
// RefitFitter renders a fit as a one-row table for persistence: one column
// per predictor, plus interval bound columns for the selected predictors
// derived from the refit covariance. The SelectiveFitter interface lets a
// different inference method replace RefitFitter without touching the
// surrounding pipeline.
//
// # Error Handling
//
// Dimension mismatches, negative strengths and out-of-range options fail
// with errs.ErrInvalidInput. Non-convergence, rank-deficient refits and
// exhausted grids fail with errs.ErrNumericalFit.
package regress
