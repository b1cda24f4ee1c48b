package fit

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/assaylab/dosecurve/errs"
	"github.com/assaylab/dosecurve/internal/options"
)

// MissingMeanPolicy selects what happens to a replicate-group row whose
// cells are all missing, i.e. whose group mean is NaN.
type MissingMeanPolicy uint8

const (
	// MissingMeanZero substitutes 0 for the missing mean (SEM stays 0)
	// and keeps the row in the fit input and the reported points. This
	// matches the historical behavior of upstream analysis tools; note
	// that it pulls the fitted curve toward the baseline.
	MissingMeanZero MissingMeanPolicy = iota + 1

	// MissingMeanDrop removes the row entirely: it is excluded from the
	// fit input, from MeanPoints and from OriginalPoints.
	MissingMeanDrop
)

// String returns the policy name.
func (p MissingMeanPolicy) String() string {
	switch p {
	case MissingMeanZero:
		return "ZeroFill"
	case MissingMeanDrop:
		return "Drop"
	default:
		return "Unknown"
	}
}

type analyzerConfig struct {
	gridWorkers  int
	tableWorkers int
	missingMean  MissingMeanPolicy
	logger       *zap.Logger
}

// Option configures an Analyzer.
type Option = options.Option[*analyzerConfig]

func defaultAnalyzerConfig() analyzerConfig {
	return analyzerConfig{
		gridWorkers:  1,
		tableWorkers: 1,
		missingMean:  MissingMeanZero,
		logger:       zap.NewNop(),
	}
}

// WithGridWorkers sets how many goroutines scan the candidate grid of a
// single series fit. The default of 1 scans serially; any worker count
// produces bit-identical results because shard winners are reduced by
// (R², enumeration order).
func WithGridWorkers(n int) Option {
	return options.New(func(cfg *analyzerConfig) error {
		if n < 1 {
			return fmt.Errorf("%w: grid workers %d", errs.ErrInvalidWorkerCount, n)
		}
		cfg.gridWorkers = n

		return nil
	})
}

// WithTableWorkers sets how many tables of a batch are fitted
// concurrently. The default of 1 fits tables sequentially. Results are
// re-sequenced to input order regardless of completion order.
func WithTableWorkers(n int) Option {
	return options.New(func(cfg *analyzerConfig) error {
		if n < 1 {
			return fmt.Errorf("%w: table workers %d", errs.ErrInvalidWorkerCount, n)
		}
		cfg.tableWorkers = n

		return nil
	})
}

// WithMissingMeanPolicy sets the handling of all-missing replicate rows.
// The default is MissingMeanZero.
func WithMissingMeanPolicy(p MissingMeanPolicy) Option {
	return options.New(func(cfg *analyzerConfig) error {
		if p != MissingMeanZero && p != MissingMeanDrop {
			return fmt.Errorf("%w: %d", errs.ErrInvalidMissingMeanPolicy, p)
		}
		cfg.missingMean = p

		return nil
	})
}

// WithLogger injects the structured logger used for degraded-input
// warnings (structural mismatches, skipped series). The default is a
// no-op logger; the numeric hot path never logs.
func WithLogger(logger *zap.Logger) Option {
	return options.New(func(cfg *analyzerConfig) error {
		if logger == nil {
			return errs.ErrNilLogger
		}
		cfg.logger = logger

		return nil
	})
}
