// Package fit fits four-parameter logistic (4PL) dose-response curves to
// concentration/response data using a deterministic, exhaustive grid search.
//
// This package is the primary interface for turning raw assay tables into
// fitted curves with their derived potency and quality metrics (EC10, EC50,
// EC90, R², AUC). It works at three granularities: a single series, a whole
// table with replicate-group averaging, and batches of tables.
//
// # Core Types
//
// **Inputs**: Plain-data tables
//   - Table / DataPoint: rows of one concentration plus the response of
//     every sample column, with column names and optional replicate-group
//     labels denormalized onto the rows
//
// **Results**: Immutable fit outcomes
//   - Curve: fitted parameters, derived metrics, dense resampled points,
//     the observed points, and (for group curves) mean ± SEM points
//   - TableResult: the curves of one table plus its skipped series
//
// **Orchestration**:
//   - Analyzer: the configured fitting engine (worker counts, missing-mean
//     policy, logger); safe for concurrent use
//
// # Fitting Workflow
//
// The analyzer follows a simple pattern:
//
//	analyzer, err := fit.NewAnalyzer(
//	    fit.WithGridWorkers(4),
//	    fit.WithTableWorkers(2),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Single series
//	curve, err := analyzer.FitSeries(concentrations, responses)
//
//	// Whole table (replicate groups averaged, then individual columns)
//	result, err := analyzer.FitTable(table)
//
//	// Batch with progress reporting
//	results, err := analyzer.FitTables(tables, func(f float64) {
//	    fmt.Printf("%.0f%%\n", f*100)
//	})
//
// # Determinism
//
// The grid search is exhaustive and tie-breaks on a canonical enumeration
// order, so identical inputs produce bit-identical curves at any
// WithGridWorkers or WithTableWorkers setting. There is no randomness and
// no iterative optimizer to diverge.
//
// # Degraded Inputs
//
// Unfittable series never abort a table: series with fewer than 3 valid
// points or without a positive concentration are recorded in
// TableResult.Skipped. Constant-response series fit with RSquared = NaN as
// the degenerate-fit signal. Structural problems (replicate labels that do
// not match the column count) fall back to per-column fitting with a
// warning through the injected logger.
package fit
