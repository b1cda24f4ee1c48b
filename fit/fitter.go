package fit

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/assaylab/dosecurve/errs"
	"github.com/assaylab/dosecurve/fourpl"
	"github.com/assaylab/dosecurve/internal/pool"
	"github.com/assaylab/dosecurve/internal/stats"
)

// Candidate grid layout. The search is exhaustive over the full cross
// product, evaluating roughly 41×41×40×36 ≈ 2.4M parameter combinations
// per series, with no randomness and no early termination.
const (
	asymptoteCount = 41  // Top and Bottom candidates around the observed extrema
	asymptoteSpan  = 10  // candidates cover extremum ± span
	asymptoteStep  = 0.5 // spacing between asymptote candidates

	ec50Count  = 40   // log-spaced EC50 candidates
	ec50LogMin = -3.0 // smallest candidate is 10^-3
	ec50LogMax = 3.0  // largest candidate is 10^3

	hillCount = 36  // linear Hill slope candidates
	hillMin   = 0.5 // smallest Hill slope candidate
	hillStep  = 0.1 // spacing between Hill slope candidates

	// fittedPointCount is the density of the log-spaced curve resampling
	// attached to every fit for plotting continuity.
	fittedPointCount = 101

	// minValidPoints is the smallest series the grid search accepts;
	// sparser series are skipped rather than fitted.
	minValidPoints = 3
)

// gridCandidate is one shard's winning grid cell. index is the cell's
// position in the canonical Top→Bottom→EC50→HillSlope enumeration, used to
// break R² ties deterministically: the earliest cell wins, exactly as in a
// serial scan.
type gridCandidate struct {
	r2     float64
	index  uint64
	params fourpl.Params
}

// better reports whether c beats other under the (R², enumeration order)
// rule. NaN scores never win.
func (c gridCandidate) better(other gridCandidate) bool {
	if c.r2 > other.r2 {
		return true
	}

	return c.r2 == other.r2 && c.index < other.index
}

// FitSeries fits one concentration/response series and returns the curve
// with its derived metrics. The two slices must have equal, non-zero
// length; cells may be NaN and are dropped pairwise.
//
// Series with fewer than 3 valid pairs return ErrInsufficientData, and
// series whose valid pairs contain no positive concentration return
// ErrNoPositiveConcentration; table-level fitting treats both as
// skip-and-continue conditions. The returned curve has an empty SampleName.
func (a *Analyzer) FitSeries(concentrations, responses []float64) (*Curve, error) {
	return a.fitSeries(context.Background(), "", concentrations, responses)
}

func (a *Analyzer) fitSeries(ctx context.Context, name string, concentrations, responses []float64) (*Curve, error) {
	if len(concentrations) == 0 || len(responses) == 0 {
		return nil, fmt.Errorf("%w: sample %q", errs.ErrEmptySeries, name)
	}
	if len(concentrations) != len(responses) {
		return nil, fmt.Errorf("%w: sample %q has %d concentrations and %d responses",
			errs.ErrLengthMismatch, name, len(concentrations), len(responses))
	}

	xs := make([]float64, 0, len(concentrations))
	ys := make([]float64, 0, len(responses))
	for i, x := range concentrations {
		if stats.Valid(x) && stats.Valid(responses[i]) {
			xs = append(xs, x)
			ys = append(ys, responses[i])
		}
	}
	if len(xs) < minValidPoints {
		return nil, fmt.Errorf("%w: sample %q has %d valid points, need at least %d",
			errs.ErrInsufficientData, name, len(xs), minValidPoints)
	}

	minPos, maxConc := concentrationRange(xs)
	if math.IsNaN(minPos) {
		return nil, fmt.Errorf("%w: sample %q", errs.ErrNoPositiveConcentration, name)
	}

	params, r2, err := a.searchGrid(ctx, xs, ys)
	if err != nil {
		return nil, err
	}

	return newCurve(name, params, r2, xs, ys, minPos, maxConc), nil
}

// searchGrid runs the exhaustive candidate scan and returns the winning
// parameters with their R². The scan may be sharded across gridWorkers
// goroutines; winners reduce by (R², enumeration order), so the result is
// identical at any worker count.
func (a *Analyzer) searchGrid(ctx context.Context, xs, ys []float64) (fourpl.Params, float64, error) {
	obsMin, obsMax := stats.MinMax(ys)
	seed := fourpl.Params{Top: obsMax, Bottom: obsMin, EC50: 1, HillSlope: 1}

	ssTot := stats.SSTot(ys)
	if ssTot == 0 {
		// Constant responses: every candidate scores NaN, so the scan
		// cannot discriminate. Keep the seed and let NaN flow out as the
		// degenerate-fit signal.
		return seed, math.NaN(), nil
	}

	tops := asymptoteCandidates(obsMax)
	bottoms := asymptoteCandidates(obsMin)
	ec50s := ec50Candidates()
	hills := hillCandidates()

	shapeCombos := ec50Count * hillCount
	workers := min(a.cfg.gridWorkers, shapeCombos)

	best := gridCandidate{r2: math.Inf(-1), index: math.MaxUint64}
	if workers <= 1 {
		best = scanShapes(ctx, 0, 1, xs, ys, ssTot, tops, bottoms, ec50s, hills)
	} else {
		shards := make([]gridCandidate, workers)

		var wg sync.WaitGroup
		for w := range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				shards[w] = scanShapes(ctx, w, workers, xs, ys, ssTot, tops, bottoms, ec50s, hills)
			}()
		}
		wg.Wait()

		best = shards[0]
		for _, c := range shards[1:] {
			if c.better(best) {
				best = c
			}
		}
	}

	if err := ctx.Err(); err != nil {
		return fourpl.Params{}, 0, err
	}

	if math.IsInf(best.r2, -1) {
		// No admissible candidate scored (possible only for pathological
		// inputs, e.g. negative concentrations poisoning every model
		// evaluation). Report the seed, scored as-is.
		preds := make([]float64, len(xs))
		for i, x := range xs {
			preds[i] = seed.Evaluate(x)
		}

		return seed, stats.RSquared(ys, preds), nil
	}

	return best.params, best.r2, nil
}

// scanShapes scans every (EC50, HillSlope) shape combo congruent to start
// modulo stride. The curve shape g(x) = (1 + k·EC50/x)^(−Hill) does not
// depend on the asymptotes, so it is evaluated once per shape and shared
// across all 41×41 (Top, Bottom) pairs.
func scanShapes(ctx context.Context, start, stride int, xs, ys []float64, ssTot float64, tops, bottoms, ec50s, hills []float64) gridCandidate {
	best := gridCandidate{r2: math.Inf(-1), index: math.MaxUint64}

	g, release := pool.GetFloat64Slice(len(xs))
	defer release()

	for combo := start; combo < len(ec50s)*len(hills); combo += stride {
		if ctx.Err() != nil {
			break
		}

		ei := combo / hillCount
		hi := combo % hillCount
		ec50 := ec50s[ei]
		hill := hills[hi]

		k := fourpl.AnchorFactor(hill)
		for i, x := range xs {
			g[i] = math.Pow(1.0+k*(ec50/x), -hill)
		}

		for ti, top := range tops {
			for bi, bottom := range bottoms {
				if bottom >= top {
					continue
				}

				span := top - bottom
				var ssRes float64
				for i, y := range ys {
					resid := y - (bottom + span*g[i])
					ssRes += resid * resid
				}

				cand := gridCandidate{
					r2:     1.0 - ssRes/ssTot,
					index:  canonicalIndex(ti, bi, ei, hi),
					params: fourpl.Params{Top: top, Bottom: bottom, EC50: ec50, HillSlope: hill},
				}
				if cand.better(best) {
					best = cand
				}
			}
		}
	}

	return best
}

// canonicalIndex places a grid cell in the Top→Bottom→EC50→HillSlope
// enumeration the tie-break rule is defined against.
func canonicalIndex(ti, bi, ei, hi int) uint64 {
	return ((uint64(ti)*asymptoteCount+uint64(bi))*ec50Count+uint64(ei))*hillCount + uint64(hi)
}

func asymptoteCandidates(center float64) []float64 {
	out := make([]float64, asymptoteCount)
	for i := range out {
		out[i] = center - asymptoteSpan + asymptoteStep*float64(i)
	}

	return out
}

func ec50Candidates() []float64 {
	out := make([]float64, ec50Count)
	for i := range out {
		exp := ec50LogMin + (ec50LogMax-ec50LogMin)*float64(i)/float64(ec50Count-1)
		out[i] = math.Pow(10, exp)
	}

	return out
}

func hillCandidates() []float64 {
	out := make([]float64, hillCount)
	for i := range out {
		out[i] = hillMin + hillStep*float64(i)
	}

	return out
}

// concentrationRange returns the smallest positive and the largest
// concentration among the valid pairs. minPos is NaN when no concentration
// is positive, which makes the series unfittable (the dense resampling
// lives in log-concentration space).
func concentrationRange(xs []float64) (minPos, maxConc float64) {
	minPos = math.NaN()
	maxConc = math.NaN()
	for _, x := range xs {
		if x > 0 && (math.IsNaN(minPos) || x < minPos) {
			minPos = x
		}
		if math.IsNaN(maxConc) || x > maxConc {
			maxConc = x
		}
	}

	return minPos, maxConc
}

// fittedCurvePoints resamples the fitted model at fittedPointCount points
// evenly spaced in log10 between a decade below the smallest positive
// concentration and a decade above the largest concentration.
func fittedCurvePoints(p fourpl.Params, minPos, maxConc float64) []Point {
	lo := math.Log10(0.1 * minPos)
	hi := math.Log10(10 * maxConc)
	step := (hi - lo) / float64(fittedPointCount-1)

	pts := make([]Point, fittedPointCount)
	for i := range pts {
		x := math.Pow(10, lo+float64(i)*step)
		pts[i] = Point{X: x, Y: p.Evaluate(x)}
	}

	return pts
}

// newCurve assembles the public result: dense resampling, original points,
// and the closed-form derived metrics.
func newCurve(name string, p fourpl.Params, r2 float64, xs, ys []float64, minPos, maxConc float64) *Curve {
	fitted := fittedCurvePoints(p, minPos, maxConc)

	orig := make([]Point, len(xs))
	for i := range xs {
		orig[i] = Point{X: xs[i], Y: ys[i]}
	}

	return &Curve{
		SampleName:     name,
		Top:            p.Top,
		Bottom:         p.Bottom,
		EC50:           p.EC50,
		HillSlope:      p.HillSlope,
		EC10:           p.EC10(),
		EC90:           p.EC90(),
		RSquared:       r2,
		AUC:            AUC(fitted),
		FittedPoints:   fitted,
		OriginalPoints: orig,
	}
}
