package fit

import "math"

// AUC integrates a piecewise-linear curve by the trapezoid rule on the
// untransformed X axis. Points must be ordered by ascending X; segments
// touching a NaN coordinate contribute nothing.
//
// Applied to a fitted curve's resampled points this yields the area under
// the dose-response curve over the plotted concentration window.
func AUC(points []Point) float64 {
	var area float64
	for i := 1; i < len(points); i++ {
		p0, p1 := points[i-1], points[i]
		if math.IsNaN(p0.X) || math.IsNaN(p0.Y) || math.IsNaN(p1.X) || math.IsNaN(p1.Y) {
			continue
		}

		area += (p1.X - p0.X) * (p1.Y + p0.Y) / 2
	}

	return area
}
