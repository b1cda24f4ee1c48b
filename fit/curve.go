package fit

import (
	"fmt"

	"github.com/assaylab/dosecurve/fourpl"
)

// Point is one (concentration, response) sample of a curve.
type Point struct {
	X float64
	Y float64
}

// MeanPoint is one replicate-averaged observation: the mean response at a
// concentration plus the standard error of that mean.
type MeanPoint struct {
	X   float64
	Y   float64
	SEM float64
}

// Curve is the immutable result of one fit, either for a replicate group
// or for an individual sample column.
//
// FittedPoints is a dense, log-spaced resampling of the fitted model used
// for plotting. OriginalPoints holds the observed pairs the fit actually
// used (replicate-averaged for group curves). MeanPoints is populated only
// on group-level curves and carries the per-concentration mean ± SEM.
type Curve struct {
	// SampleName is the group or column name this curve represents.
	SampleName string

	// Top and Bottom are the fitted upper and lower asymptotes.
	Top    float64
	Bottom float64

	// EC50 is the concentration producing the half-maximal response.
	EC50 float64

	// HillSlope is the fitted steepness parameter.
	HillSlope float64

	// EC10 and EC90 are the concentrations producing 10% and 90% of the
	// response range, derived from the fitted parameters in closed form.
	EC10 float64
	EC90 float64

	// RSquared is the coefficient of determination of the winning fit.
	// It can be negative for a worse-than-mean fit and is NaN when the
	// observed responses have zero variance (degenerate fit).
	RSquared float64

	// AUC is the trapezoidal area under FittedPoints in linear x.
	AUC float64

	FittedPoints   []Point
	OriginalPoints []Point
	MeanPoints     []MeanPoint
}

// Params returns the fitted model coefficients.
func (c *Curve) Params() fourpl.Params {
	return fourpl.Params{
		Top:       c.Top,
		Bottom:    c.Bottom,
		EC50:      c.EC50,
		HillSlope: c.HillSlope,
	}
}

// Evaluate returns the fitted model's response at concentration x.
func (c *Curve) Evaluate(x float64) float64 {
	return c.Params().Evaluate(x)
}

// String returns a one-line summary of the fit for logs and debugging.
func (c *Curve) String() string {
	return fmt.Sprintf("%s: 4PL(top=%.4g, bottom=%.4g, ec50=%.4g, hill=%.4g) R²=%.4f AUC=%.4g",
		c.SampleName, c.Top, c.Bottom, c.EC50, c.HillSlope, c.RSquared, c.AUC)
}

// SkippedSeries records one series the analyzer could not fit, with the
// sentinel-wrapped reason. Skips never abort the enclosing table or batch.
type SkippedSeries struct {
	SampleName string
	Err        error
}

// TableResult is the outcome of fitting one table: the curves produced and
// the series that were skipped.
type TableResult struct {
	Curves  []*Curve
	Skipped []SkippedSeries
}

// CurveNames returns the sample names of the fitted curves in result order.
func (r *TableResult) CurveNames() []string {
	names := make([]string, len(r.Curves))
	for i, c := range r.Curves {
		names[i] = c.SampleName
	}

	return names
}
