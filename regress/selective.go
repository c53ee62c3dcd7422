package regress

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/mat"

	"github.com/edustat/postlasso/errs"
	"github.com/edustat/postlasso/frame"
)

// truncZ is the two-sided 95% normal quantile used for the interval
// bounds.
const truncZ = 1.96

// SelectiveFitter produces the full-data coefficient table for one
// response: a point estimate for every predictor plus whatever diagnostic
// columns the method carries. Interval columns follow the
// "<column>_trunc_lower"/"<column>_trunc_upper" naming, so downstream
// filtering on frame.TruncationMarker strips them before persistence.
type SelectiveFitter interface {
	FitTable(X *frame.Matrix, y frame.Vector, pen Penalty) (*frame.Table, error)
}

// RefitFitter is the built-in SelectiveFitter: lasso selection, least
// squares refit, and interval bounds derived from the refit covariance.
// The bounds are a stand-in; a full selective-inference implementation
// can replace this type behind the SelectiveFitter interface without
// touching the rest of the pipeline.
type RefitFitter struct {
	opts []FitOption
}

var _ SelectiveFitter = (*RefitFitter)(nil)

// NewRefitFitter creates the built-in fitter. Options are forwarded to
// every SelectRefit call.
func NewRefitFitter(opts ...FitOption) *RefitFitter {
	return &RefitFitter{opts: opts}
}

// FitTable runs SelectRefit on the full data and renders a single-row
// table: one column per predictor, then a lower and upper bound column
// for each selected predictor. An empty selection yields the all-zero
// row with no bound columns.
func (f *RefitFitter) FitTable(X *frame.Matrix, y frame.Vector, pen Penalty) (*frame.Table, error) {
	fit, err := SelectRefit(X, y, pen, f.opts...)
	if err != nil {
		return nil, err
	}

	names := slices.Clone(X.Names())
	row := slices.Clone(fit.Coefficients)

	if len(fit.Selected) > 0 {
		se, err := refitStdErrors(X, y, fit)
		if err != nil {
			return nil, err
		}
		for c, j := range fit.Selected {
			estimate := fit.Coefficients[j]
			half := truncZ * se[c]
			names = append(names, X.Name(j)+"_trunc_lower", X.Name(j)+"_trunc_upper")
			row = append(row, estimate-half, estimate+half)
		}
	}

	return frame.NewTable(names, [][]float64{row})
}

// refitStdErrors derives standard errors for the selected refit
// coefficients from (Xs'Xs)^-1 scaled by the residual variance.
func refitStdErrors(X *frame.Matrix, y frame.Vector, fit *Fit) ([]float64, error) {
	n := X.Rows()
	k := len(fit.Selected)

	dof := n - k
	if dof <= 0 {
		return nil, fmt.Errorf("%w: %d observations leave no residual degrees of freedom for %d selected columns",
			errs.ErrNumericalFit, n, k)
	}

	rss := 0.0
	for i := 0; i < n; i++ {
		pred := 0.0
		for _, j := range fit.Selected {
			pred += fit.Coefficients[j] * X.Col(j)[i]
		}
		d := y[i] - pred
		rss += d * d
	}
	sigma2 := rss / float64(dof)

	xs := mat.NewDense(n, k, nil)
	for c, j := range fit.Selected {
		xs.SetCol(c, X.Col(j))
	}

	var xtx, inv mat.Dense
	xtx.Mul(xs.T(), xs)
	if err := inv.Inverse(&xtx); err != nil {
		return nil, fmt.Errorf("%w: selected design is singular: %v", errs.ErrNumericalFit, err)
	}

	se := make([]float64, k)
	for c := range se {
		se[c] = math.Sqrt(sigma2 * inv.At(c, c))
	}

	return se, nil
}
