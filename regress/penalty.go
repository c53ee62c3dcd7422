package regress

import (
	"fmt"

	"github.com/edustat/postlasso/errs"
	"github.com/edustat/postlasso/frame"
)

// Penalty is the pair of regularization strengths picked once per
// response: one for interaction columns, one for main-effect columns.
// Strengths are expressed in grid units (the scale of |x_j . y|) and are
// normalized by the sample size inside the fit, so a Penalty carries over
// unchanged from the full data to same-sized resamples.
type Penalty struct {
	// Interaction applies to columns tagged with frame.InteractionMarker.
	Interaction float64

	// Main applies to every other column.
	Main float64
}

func (p Penalty) validate() error {
	if p.Interaction < 0 || p.Main < 0 {
		return fmt.Errorf("%w: negative regularization strength (interaction %g, main %g)",
			errs.ErrInvalidInput, p.Interaction, p.Main)
	}

	return nil
}

// threshold returns the soft-threshold applied to column j of X.
func (p Penalty) threshold(X *frame.Matrix, j int) float64 {
	if X.IsInteraction(j) {
		return p.Interaction
	}

	return p.Main
}

func validateDims(X *frame.Matrix, y frame.Vector) error {
	if X == nil || X.Cols() == 0 {
		return fmt.Errorf("%w: design matrix has no columns", errs.ErrInvalidInput)
	}
	if X.Rows() == 0 {
		return fmt.Errorf("%w: design matrix has no rows", errs.ErrInvalidInput)
	}
	if X.Rows() != len(y) {
		return fmt.Errorf("%w: %d design rows for %d response values", errs.ErrInvalidInput, X.Rows(), len(y))
	}

	return nil
}
