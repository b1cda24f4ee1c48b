package fourpl

import "math"

// Params holds one set of four-parameter logistic coefficients.
//
// Admissible parameters satisfy Bottom < Top, EC50 > 0 and HillSlope > 0;
// the grid search only ever produces admissible values, but Params does not
// enforce them, so degenerate inputs degrade to NaN results rather than
// panicking.
type Params struct {
	Top       float64
	Bottom    float64
	EC50      float64
	HillSlope float64
}

// AnchorFactor returns 2^(1/hillSlope) − 1.
//
// Scaling the (EC50/x) ratio by this factor is what pins the modeled
// response at x = EC50 to the midpoint of the Top−Bottom range for any
// Hill slope.
func AnchorFactor(hillSlope float64) float64 {
	return math.Pow(2, 1.0/hillSlope) - 1.0
}

// Evaluate returns the modeled response at concentration x.
//
// x = 0 yields the Bottom asymptote (the denominator diverges). Negative
// concentrations are outside the model domain; they produce NaN for
// non-integer Hill slopes and a meaningless extrapolation otherwise.
func Evaluate(x, top, bottom, ec50, hillSlope float64) float64 {
	denom := math.Pow(1.0+AnchorFactor(hillSlope)*(ec50/x), hillSlope)

	return bottom + (top-bottom)/denom
}

// Evaluate returns the modeled response at concentration x.
func (p Params) Evaluate(x float64) float64 {
	return Evaluate(x, p.Top, p.Bottom, p.EC50, p.HillSlope)
}

// Midpoint returns the response halfway between the asymptotes, which the
// model produces exactly at x = EC50.
func (p Params) Midpoint() float64 {
	return (p.Top + p.Bottom) / 2
}

// ECAt returns the concentration at which the modeled response reaches the
// given fraction of the Top−Bottom range.
//
// Fractions outside the open interval (0, 1) have no finite preimage on the
// curve and yield NaN. The inversion depends only on EC50 and HillSlope.
func (p Params) ECAt(fraction float64) float64 {
	if fraction <= 0 || fraction >= 1 {
		return math.NaN()
	}

	return p.EC50 * AnchorFactor(p.HillSlope) / (math.Pow(fraction, -1.0/p.HillSlope) - 1.0)
}

// EC10 returns the concentration producing 10% of the response range.
func (p Params) EC10() float64 {
	return p.ECAt(0.10)
}

// EC90 returns the concentration producing 90% of the response range.
func (p Params) EC90() float64 {
	return p.ECAt(0.90)
}
