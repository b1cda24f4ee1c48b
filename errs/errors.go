// Package errs defines the sentinel error values shared across dosecurve
// packages.
//
// All errors are plain sentinel values created with errors.New. Call sites
// wrap them with additional context using fmt.Errorf and the %w verb, so
// callers can match on the sentinel with errors.Is:
//
//	curve, err := analyzer.FitSeries(concs, resps)
//	if errors.Is(err, errs.ErrInsufficientData) {
//		// series was too sparse to fit; not a hard failure
//	}
package errs

import "errors"

// Fitting errors.
var (
	// ErrEmptySeries is returned when a series fit is requested with no
	// concentrations or no responses at all.
	ErrEmptySeries = errors.New("empty series")

	// ErrLengthMismatch is returned when the concentration and response
	// slices passed to a series fit have different lengths.
	ErrLengthMismatch = errors.New("concentration and response length mismatch")

	// ErrInsufficientData marks a series with fewer than 3 valid
	// (non-NaN) observation pairs. Table-level fitting records the series
	// as skipped and continues; it never aborts the batch.
	ErrInsufficientData = errors.New("insufficient valid data points")

	// ErrNoPositiveConcentration marks a series whose valid observations
	// contain no positive concentration, so the fitted curve cannot be
	// sampled in log-concentration space.
	ErrNoPositiveConcentration = errors.New("no positive concentration")
)

// Configuration errors.
var (
	// ErrInvalidWorkerCount is returned when a worker-count option is
	// configured with a value below 1.
	ErrInvalidWorkerCount = errors.New("invalid worker count")

	// ErrInvalidMissingMeanPolicy is returned when an unknown missing-mean
	// policy is configured.
	ErrInvalidMissingMeanPolicy = errors.New("invalid missing mean policy")

	// ErrNilLogger is returned when a nil logger is injected.
	ErrNilLogger = errors.New("nil logger")
)

// Snapshot encoding and decoding errors.
var (
	// ErrInvalidSnapshotSize indicates the snapshot byte slice is too
	// short to contain a complete header, index and payload.
	ErrInvalidSnapshotSize = errors.New("invalid snapshot size")

	// ErrInvalidMagicNumber indicates the header magic bits do not match
	// the snapshot format.
	ErrInvalidMagicNumber = errors.New("invalid magic number")

	// ErrInvalidCompressionType indicates an unknown compression type in
	// the snapshot header or encoder options.
	ErrInvalidCompressionType = errors.New("invalid compression type")

	// ErrDuplicateCurve is returned when two curves with the same sample
	// name are added to one snapshot.
	ErrDuplicateCurve = errors.New("duplicate curve name")

	// ErrNilCurve is returned when a nil curve is added to a snapshot.
	ErrNilCurve = errors.New("nil curve")

	// ErrCurveNameTooLong is returned when a curve's sample name exceeds
	// the 64 KiB the snapshot name prefix can address.
	ErrCurveNameTooLong = errors.New("curve name too long")

	// ErrSnapshotFinished is returned when curves are added to an encoder
	// whose Finish method has already been called.
	ErrSnapshotFinished = errors.New("snapshot already finished")

	// ErrCorruptedSnapshot indicates the payload does not decode back
	// into the curves announced by the header and index.
	ErrCorruptedSnapshot = errors.New("corrupted snapshot payload")
)
