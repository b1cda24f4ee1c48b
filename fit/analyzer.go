package fit

import (
	"context"
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/assaylab/dosecurve/errs"
	"github.com/assaylab/dosecurve/internal/options"
	"github.com/assaylab/dosecurve/internal/stats"
)

// Analyzer fits four-parameter logistic curves to dose-response data. It is
// the package's entry point for single series (FitSeries), whole tables
// (FitTable) and batches of tables (FitTables).
//
// An Analyzer is immutable after construction and safe for concurrent use;
// fits share no mutable state.
type Analyzer struct {
	cfg analyzerConfig
}

// NewAnalyzer creates a new Analyzer with the given options.
//
// Parameters:
//   - opts: Optional configuration (grid/table worker counts, missing-mean
//     policy, logger)
//
// Returns:
//   - *Analyzer: New analyzer ready for fitting
//   - error: Configuration error if invalid options provided
func NewAnalyzer(opts ...Option) (*Analyzer, error) {
	cfg := defaultAnalyzerConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	return &Analyzer{cfg: cfg}, nil
}

// FitTable fits every series of one dose-response table and returns the
// curves together with any skipped series.
//
// When the table's replicate-group labels put two or more columns into the
// same group, each group is fitted on its replicate-averaged responses
// first (those curves carry MeanPoints), followed by every individual
// column on its own values. Otherwise each column is fitted on its own,
// labeled by its group tag, sample name, or position, in that precedence.
//
// Series with too few valid points, or with no positive concentration, are
// recorded in TableResult.Skipped and do not abort the table. An empty
// table yields an empty result and no error.
func (a *Analyzer) FitTable(table Table) (*TableResult, error) {
	return a.fitTable(context.Background(), table)
}

func (a *Analyzer) fitTable(ctx context.Context, table Table) (*TableResult, error) {
	result := &TableResult{}

	cols := table.Columns()
	if len(table) == 0 || cols == 0 {
		return result, nil
	}

	names := table.SampleNames()
	tags := table.ReplicateGroupLabels()
	if len(tags) > 0 && len(tags) != cols {
		a.cfg.logger.Warn("replicate group labels ignored, count does not match sample columns",
			zap.Int("columns", cols),
			zap.Int("labels", len(tags)))
	}

	groups, averaged := ResolveGroups(names, tags)
	concs := table.Concentrations()

	if !averaged {
		for _, g := range groups {
			if err := a.fitInto(ctx, result, g.Label, concs, table.responseColumn(g.Columns[0]), nil); err != nil {
				return nil, err
			}
		}

		return result, nil
	}

	for _, g := range groups {
		xs, means, meanPts := a.groupMeans(table, g, concs)
		if err := a.fitInto(ctx, result, g.Label, xs, means, meanPts); err != nil {
			return nil, err
		}
	}

	// Second pass: each column on its own, so per-replicate scatter stays
	// inspectable next to the averaged group curves.
	for j := range cols {
		if err := a.fitInto(ctx, result, columnLabel(names, tags, j, false), concs, table.responseColumn(j), nil); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// fitInto fits one named series and appends the outcome to result: the
// curve on success, a skip record when the series is unfittable (too few
// valid points, no positive concentration). A MissingMeanDrop group whose
// every row was dropped arrives empty and counts as having no valid
// points. Any other failure aborts.
func (a *Analyzer) fitInto(ctx context.Context, result *TableResult, name string, concs, resps []float64, meanPts []MeanPoint) error {
	curve, err := a.fitSeries(ctx, name, concs, resps)
	if err != nil {
		if errors.Is(err, errs.ErrEmptySeries) {
			err = fmt.Errorf("%w: sample %q has 0 valid points, need at least %d",
				errs.ErrInsufficientData, name, minValidPoints)
		}
		if errors.Is(err, errs.ErrInsufficientData) || errors.Is(err, errs.ErrNoPositiveConcentration) {
			a.cfg.logger.Warn("series skipped", zap.String("sample", name), zap.Error(err))
			result.Skipped = append(result.Skipped, SkippedSeries{SampleName: name, Err: err})

			return nil
		}

		return err
	}

	curve.MeanPoints = meanPts
	result.Curves = append(result.Curves, curve)

	return nil
}

// groupMeans builds the replicate-averaged series for one group: per row,
// the mean and SEM over the group's non-NaN cells. Rows whose cells are all
// missing follow the configured MissingMeanPolicy: zero-filled (mean 0,
// SEM 0) or dropped from the series and the reported points.
func (a *Analyzer) groupMeans(table Table, g Group, concs []float64) (xs, means []float64, pts []MeanPoint) {
	xs = make([]float64, 0, len(table))
	means = make([]float64, 0, len(table))
	pts = make([]MeanPoint, 0, len(table))

	cells := make([]float64, len(g.Columns))
	for i, row := range table {
		for k, j := range g.Columns {
			cells[k] = row.response(j)
		}

		mean, sem := stats.MeanSEM(cells)
		if math.IsNaN(mean) {
			if a.cfg.missingMean == MissingMeanDrop {
				continue
			}
			mean, sem = 0, 0
		}

		xs = append(xs, concs[i])
		means = append(means, mean)
		pts = append(pts, MeanPoint{X: concs[i], Y: mean, SEM: sem})
	}

	return xs, means, pts
}
