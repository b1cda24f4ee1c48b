// Package fourpl evaluates and inverts the four-parameter logistic (4PL)
// dose-response model.
//
// # Model
//
// The model maps a concentration x > 0 to a response between the Bottom and
// Top asymptotes:
//
//	Y(x) = Bottom + (Top − Bottom) / (1 + (2^(1/HillSlope) − 1)·(EC50/x))^HillSlope
//
// The 2^(1/HillSlope) − 1 term anchors the midpoint: Y(EC50) equals
// (Top+Bottom)/2 for every admissible Hill slope, which is the defining
// property of the EC50 parameter. A plain Hill denominator only has that
// property at HillSlope = 1.
//
// # Inversion
//
// Because the model is strictly monotonic in x, the concentration producing
// any response fraction p in (0, 1) of the Top−Bottom range has a closed
// form:
//
//	EC_p = EC50 · (2^(1/HillSlope) − 1) / (p^(−1/HillSlope) − 1)
//
// EC10 and EC90 are the p = 0.10 and p = 0.90 specializations. Evaluating
// the model at EC_p reproduces Bottom + p·(Top−Bottom) up to floating-point
// rounding; the inversion does not depend on Top or Bottom at all, so it
// stays well-defined even for degenerate flat fits.
//
// # Usage
//
//	p := fourpl.Params{Top: 100, Bottom: 0, EC50: 25, HillSlope: 1.2}
//	y := p.Evaluate(50)     // modeled response at concentration 50
//	x := p.ECAt(0.5)        // == p.EC50
//
// All functions are pure and safe for concurrent use.
package fourpl
