// Package dosecurve fits four-parameter logistic (4PL) dose-response curves
// to concentration/response measurements from multi-well assay plates.
//
// The fitter runs a deterministic grid search over an anchored 4PL
// parameterization, so identical inputs always produce identical curves, on
// any machine and at any worker-pool size. Each fitted curve carries the
// model parameters, potency metrics (EC10/EC50/EC90), goodness of fit, area
// under the curve, and dense resampled points ready for plotting.
//
// # Core Features
//
//   - Deterministic grid-search 4PL fitting over an anchored parameterization
//   - Replicate-group averaging with per-concentration mean ± SEM points
//   - Derived metrics per curve: EC10, EC50, EC90, R², trapezoidal AUC
//   - Batch fitting across many tables with progress reporting
//   - Optional worker pools with bit-identical results at any pool size
//   - Compact binary snapshots with optional compression (None, Zstd, S2, LZ4)
//   - Hash-based curve identification (64-bit xxHash64) for O(1) lookups
//
// # Basic Usage
//
// Fitting one table of assay data:
//
//	import (
//	    "github.com/assaylab/dosecurve"
//	    "github.com/assaylab/dosecurve/fit"
//	)
//
//	names := []string{"Compound A", "Compound B"}
//	table := fit.Table{
//	    {Concentration: 10000, Responses: []float64{99, 98}, SampleNames: names},
//	    {Concentration: 1000, Responses: []float64{97, 91}, SampleNames: names},
//	    {Concentration: 100, Responses: []float64{75, 60}, SampleNames: names},
//	    {Concentration: 10, Responses: []float64{25, 12}, SampleNames: names},
//	    {Concentration: 1, Responses: []float64{3, 2}, SampleNames: names},
//	}
//
//	curves, err := dosecurve.FitTable(table)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, curve := range curves {
//	    fmt.Printf("%s: EC50=%.4g R²=%.4f\n", curve.SampleName, curve.EC50, curve.RSquared)
//	}
//
// Snapshotting fitted curves for caching or interchange:
//
//	data, err := dosecurve.EncodeSnapshot(curves,
//	    snapshot.WithCompression(snapshot.CompressionZstd),
//	)
//
//	decoder, err := dosecurve.DecodeSnapshot(data)
//	curve, ok := decoder.AtName("Compound A")
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the fit and
// snapshot packages, simplifying the most common use cases. For replicate
// grouping control, missing-data policies, worker pools, cancellation, and
// skip reporting, use the fit package directly.
package dosecurve

import (
	"github.com/assaylab/dosecurve/fit"
	"github.com/assaylab/dosecurve/internal/hash"
	"github.com/assaylab/dosecurve/snapshot"
)

// NewAnalyzer creates a curve-fitting analyzer with custom options.
//
// This is the most flexible entry point, allowing full control over worker
// pools, replicate handling, and logging. Use this when the plain FitTable /
// FitTables wrappers are not enough.
//
// Parameters:
//   - opts: Optional configuration functions (see fit.Option)
//
// Returns:
//   - *fit.Analyzer: The created analyzer.
//   - error: An error if the configuration is invalid.
//
// Available options:
//   - fit.WithGridWorkers(n)
//   - fit.WithTableWorkers(n)
//   - fit.WithMissingMeanPolicy(fit.MissingMeanZero | fit.MissingMeanDrop)
//   - fit.WithLogger(logger)
//
// Example:
//
//	analyzer, err := dosecurve.NewAnalyzer(
//	    fit.WithGridWorkers(runtime.GOMAXPROCS(0)),
//	    fit.WithTableWorkers(4),
//	)
func NewAnalyzer(opts ...fit.Option) (*fit.Analyzer, error) {
	return fit.NewAnalyzer(opts...)
}

// FitTable fits a 4PL curve to every replicate group and sample column of
// one table using default settings.
//
// Columns sharing a replicate group label are averaged per concentration
// and fitted as a group curve first, followed by each member column fitted
// individually. Series with fewer than three valid points, or with no
// positive concentration, are skipped rather than failing the table; use
// fit.Analyzer.FitTable directly when the skip records matter.
//
// Parameters:
//   - table: Sample columns sharing one concentration series
//
// Returns:
//   - []*fit.Curve: Fitted curves in deterministic order (group curve
//     before its member columns).
//   - error: An error if the table is structurally unusable.
//
// Example:
//
//	curves, err := dosecurve.FitTable(table)
//	for _, curve := range curves {
//	    fmt.Println(curve)
//	}
func FitTable(table fit.Table) ([]*fit.Curve, error) {
	analyzer, err := fit.NewAnalyzer()
	if err != nil {
		return nil, err
	}

	result, err := analyzer.FitTable(table)
	if err != nil {
		return nil, err
	}

	return result.Curves, nil
}

// FitSeries fits a 4PL curve to a single concentration/response series
// using default settings.
//
// Non-finite pairs are dropped before fitting. The series must keep at
// least three valid points and at least one positive concentration;
// otherwise an error wrapping errs.ErrInsufficientData or
// errs.ErrNoPositiveConcentration is returned.
//
// Parameters:
//   - concentrations: Dose values, one per response
//   - responses: Measured response values
//
// Returns:
//   - *fit.Curve: The fitted curve.
//   - error: errs.ErrEmptySeries, errs.ErrLengthMismatch, or a fit error.
//
// Example:
//
//	curve, err := dosecurve.FitSeries(
//	    []float64{10000, 1000, 100, 10, 1},
//	    []float64{99, 97, 75, 25, 3},
//	)
//	fmt.Printf("EC50 = %.4g\n", curve.EC50)
func FitSeries(concentrations, responses []float64) (*fit.Curve, error) {
	analyzer, err := fit.NewAnalyzer()
	if err != nil {
		return nil, err
	}

	return analyzer.FitSeries(concentrations, responses)
}

// FitTables fits every table of a batch sequentially and reports progress.
//
// After each table completes, onProgress receives the completed fraction
// (1/total, 2/total, ... 1.0). A nil onProgress disables reporting. The
// returned slice has one curve set per input table, in input order.
//
// For concurrent batches, cancellation, or per-table skip records, use
// fit.Analyzer.FitTables directly.
//
// Parameters:
//   - tables: Input tables, fitted independently
//   - onProgress: Progress callback, may be nil
//
// Returns:
//   - [][]*fit.Curve: Curves per table, in input order.
//   - error: The first error that aborted the batch.
//
// Example:
//
//	curveSets, err := dosecurve.FitTables(tables, func(fraction float64) {
//	    fmt.Printf("fitted %.0f%%\n", fraction*100)
//	})
func FitTables(tables []fit.Table, onProgress func(fraction float64)) ([][]*fit.Curve, error) {
	analyzer, err := fit.NewAnalyzer()
	if err != nil {
		return nil, err
	}

	results, err := analyzer.FitTables(tables, onProgress)
	if err != nil {
		return nil, err
	}

	curveSets := make([][]*fit.Curve, len(results))
	for i, result := range results {
		curveSets[i] = result.Curves
	}

	return curveSets, nil
}

// EncodeSnapshot serializes fitted curves into a binary snapshot.
//
// Parameters:
//   - curves: Curves to store; sample names must be unique
//   - opts: Optional configuration (see snapshot.EncoderOption)
//
// Returns:
//   - []byte: The complete snapshot.
//   - error: An error if the configuration or a curve is invalid.
//
// Example:
//
//	data, err := dosecurve.EncodeSnapshot(curves,
//	    snapshot.WithCompression(snapshot.CompressionS2),
//	)
func EncodeSnapshot(curves []*fit.Curve, opts ...snapshot.EncoderOption) ([]byte, error) {
	encoder, err := snapshot.NewEncoder(opts...)
	if err != nil {
		return nil, err
	}

	for _, curve := range curves {
		if err := encoder.AddCurve(curve); err != nil {
			return nil, err
		}
	}

	return encoder.Finish()
}

// DecodeSnapshot parses a binary snapshot produced by EncodeSnapshot.
//
// The snapshot's byte order and compression are detected from its header.
//
// Parameters:
//   - data: The raw snapshot bytes
//
// Returns:
//   - *snapshot.Decoder: Decoder with every curve loaded.
//   - error: An error if the snapshot is malformed or corrupted.
//
// Example:
//
//	decoder, err := dosecurve.DecodeSnapshot(data)
//	for curve := range decoder.All() {
//	    fmt.Println(curve)
//	}
func DecodeSnapshot(data []byte) (*snapshot.Decoder, error) {
	return snapshot.NewDecoder(data)
}

// CurveID converts a sample name to its 64-bit hash identifier.
//
// Snapshots use xxHash64 to convert sample names to fixed-size IDs for fast
// lookups and compact index entries. The hash is deterministic, so an ID
// computed once can be stored and used against any later snapshot.
//
// Example:
//
//	id := dosecurve.CurveID("Compound A")
//	curve, ok := decoder.At(id)
func CurveID(name string) uint64 {
	return hash.ID(name)
}
