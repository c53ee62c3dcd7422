package regress

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/edustat/postlasso/errs"
	"github.com/edustat/postlasso/frame"
	"github.com/edustat/postlasso/internal/options"
)

// Fit is the outcome of one selection and refit round.
type Fit struct {
	// Coefficients holds one value per matrix column: exact zeros for the
	// columns the lasso dropped, least-squares refit estimates for the
	// selected ones.
	Coefficients []float64

	// Selected lists the kept column indices in column order. Empty when
	// the lasso zeroed everything; the all-zero Coefficients vector is
	// still a valid result in that case.
	Selected []int
}

// SelectRefit runs the two-stage estimate for one design: an
// L1-regularized fit whose only job is picking the nonzero columns,
// followed by an ordinary least-squares refit on that subset. Columns the
// lasso dropped keep an exact zero coefficient.
//
// An empty selection is not an error; the returned Fit carries all zeros.
// Returns ErrNumericalFit when coordinate descent fails to converge or
// the selected submatrix is rank deficient.
func SelectRefit(X *frame.Matrix, y frame.Vector, pen Penalty, opts ...FitOption) (*Fit, error) {
	cfg := defaultFitConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}
	if err := validateDims(X, y); err != nil {
		return nil, err
	}
	if err := pen.validate(); err != nil {
		return nil, err
	}

	beta, err := lassoFit(X, y, pen, cfg)
	if err != nil {
		return nil, err
	}

	coeffs := make([]float64, X.Cols())
	var selected []int
	for j, b := range beta {
		if b != 0 {
			selected = append(selected, j)
		}
	}
	if len(selected) == 0 {
		return &Fit{Coefficients: coeffs}, nil
	}

	estimates, err := olsRefit(X, y, selected)
	if err != nil {
		return nil, err
	}
	for c, j := range selected {
		coeffs[j] = estimates[c]
	}

	return &Fit{Coefficients: coeffs, Selected: selected}, nil
}

// olsRefit solves the unregularized least-squares problem on the selected
// columns via QR.
func olsRefit(X *frame.Matrix, y frame.Vector, selected []int) ([]float64, error) {
	n := X.Rows()
	k := len(selected)

	xs := mat.NewDense(n, k, nil)
	for c, j := range selected {
		xs.SetCol(c, X.Col(j))
	}
	yv := mat.NewVecDense(n, y)

	var coef mat.VecDense
	if err := coef.SolveVec(xs, yv); err != nil {
		return nil, fmt.Errorf("%w: refit on %d selected columns: %v", errs.ErrNumericalFit, k, err)
	}

	out := make([]float64, k)
	for c := range out {
		out[c] = coef.AtVec(c)
	}

	return out, nil
}
