package regress

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/edustat/postlasso/errs"
	"github.com/edustat/postlasso/frame"
	"github.com/edustat/postlasso/internal/options"
)

// minPenaltyFraction sets the bottom of the candidate range relative to
// the strength that zeroes a whole column class.
const minPenaltyFraction = 0.01

// Search picks the Penalty pair for a response by K-fold cross-validation
// over a two-dimensional grid of candidate strengths.
//
// Per column class (interaction, main) the grid spans log-spaced values
// between the class ceiling (the smallest strength that zeroes every
// coefficient in the class) and 1% of it. Candidates are scored by mean
// validation MSE of the selection fit over contiguous folds; ties keep
// the earlier candidate, so the result is deterministic for fixed inputs.
//
// Candidates whose fit does not converge are skipped; Search fails with
// ErrNumericalFit only when no candidate converges at all.
func Search(X *frame.Matrix, y frame.Vector, opts ...SearchOption) (Penalty, error) {
	cfg := defaultSearchConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return Penalty{}, err
	}
	if err := validateDims(X, y); err != nil {
		return Penalty{}, err
	}
	if X.Rows() < cfg.Folds {
		return Penalty{}, fmt.Errorf("%w: %d rows cannot fill %d folds", errs.ErrInvalidInput, X.Rows(), cfg.Folds)
	}

	interCeil, mainCeil := penaltyCeilings(X, y)
	candInter := gridCandidates(interCeil, cfg.GridSize)
	candMain := gridCandidates(mainCeil, cfg.GridSize)
	folds := contiguousFolds(X.Rows(), cfg.Folds)

	var best Penalty
	bestScore := math.Inf(1)
	scored := false

	for _, li := range candInter {
		for _, lm := range candMain {
			pen := Penalty{Interaction: li, Main: lm}
			score, err := crossValidate(X, y, pen, folds, cfg.Fit)
			if err != nil {
				if errors.Is(err, errs.ErrNumericalFit) {
					cfg.Logger.Debug("grid candidate skipped",
						"interaction", li, "main", lm, "reason", err)
					continue
				}

				return Penalty{}, err
			}

			cfg.Logger.Debug("grid candidate scored",
				"interaction", li, "main", lm, "cv_mse", score)

			if score < bestScore {
				best = pen
				bestScore = score
				scored = true
			}
		}
	}

	if !scored {
		return Penalty{}, fmt.Errorf("%w: no grid candidate converged", errs.ErrNumericalFit)
	}

	return best, nil
}

// penaltyCeilings returns, per column class, the smallest strength that
// keeps every coefficient in the class at zero from the first sweep.
func penaltyCeilings(X *frame.Matrix, y frame.Vector) (interCeil, mainCeil float64) {
	for j := 0; j < X.Cols(); j++ {
		v := math.Abs(floats.Dot(X.Col(j), y))
		if X.IsInteraction(j) {
			interCeil = math.Max(interCeil, v)
		} else {
			mainCeil = math.Max(mainCeil, v)
		}
	}

	return interCeil, mainCeil
}

// gridCandidates spans [ceil*minPenaltyFraction, ceil] with size
// log-spaced values, ascending. A degenerate class (ceiling zero, e.g. no
// columns of that class) gets the single candidate 0.
func gridCandidates(ceil float64, size int) []float64 {
	if ceil <= 0 {
		return []float64{0}
	}
	if size == 1 {
		return []float64{ceil}
	}

	lo := math.Log(ceil * minPenaltyFraction)
	hi := math.Log(ceil)
	step := (hi - lo) / float64(size-1)

	out := make([]float64, size)
	for i := range out {
		out[i] = math.Exp(lo + float64(i)*step)
	}
	// Pin the endpoint; exp/log round-tripping drifts a few ulps.
	out[size-1] = ceil

	return out
}

// contiguousFolds splits [0, n) into k contiguous index ranges.
func contiguousFolds(n, k int) [][2]int {
	folds := make([][2]int, k)
	for i := 0; i < k; i++ {
		folds[i] = [2]int{i * n / k, (i + 1) * n / k}
	}

	return folds
}

// crossValidate scores one candidate: for every fold, fit the selection
// model on the remaining rows and accumulate squared prediction error on
// the held-out range. Returns the mean of the per-fold MSEs.
func crossValidate(X *frame.Matrix, y frame.Vector, pen Penalty, folds [][2]int, fit FitConfig) (float64, error) {
	n := X.Rows()
	total := 0.0

	for _, fold := range folds {
		lo, hi := fold[0], fold[1]

		trainIdx := make([]int, 0, n-(hi-lo))
		for i := 0; i < lo; i++ {
			trainIdx = append(trainIdx, i)
		}
		for i := hi; i < n; i++ {
			trainIdx = append(trainIdx, i)
		}

		Xt, err := X.TakeRows(trainIdx)
		if err != nil {
			return 0, err
		}
		yt, err := y.TakeRows(trainIdx)
		if err != nil {
			return 0, err
		}

		beta, err := lassoFit(Xt, yt, pen, fit)
		if err != nil {
			return 0, err
		}

		sum := 0.0
		for i := lo; i < hi; i++ {
			pred := 0.0
			for j, b := range beta {
				if b != 0 {
					pred += b * X.Col(j)[i]
				}
			}
			d := pred - y[i]
			sum += d * d
		}
		total += sum / float64(hi-lo)
	}

	return total / float64(len(folds)), nil
}
