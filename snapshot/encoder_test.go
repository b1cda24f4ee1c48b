package snapshot

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/assaylab/dosecurve/errs"
	"github.com/assaylab/dosecurve/fit"
)

// makeCurve builds a realistic fit result without running the fitter. The
// seed offsets every value so curves built from different seeds differ in
// all fields.
func makeCurve(name string, seed float64) *fit.Curve {
	return &fit.Curve{
		SampleName: name,
		Top:        100.5 + seed,
		Bottom:     0.5 + seed,
		EC50:       170.125 + seed,
		HillSlope:  1.1 + seed*0.01,
		EC10:       21.0 + seed,
		EC90:       1485.7 + seed,
		RSquared:   0.9973 - seed*0.001,
		AUC:        9943939.26 + seed,
		FittedPoints: []fit.Point{
			{X: 1.4, Y: 1.2 + seed},
			{X: 14, Y: 8.9 + seed},
			{X: 140, Y: 44.6 + seed},
			{X: 1400, Y: 89.2 + seed},
		},
		OriginalPoints: []fit.Point{
			{X: 10, Y: 5 + seed},
			{X: 100, Y: 45 + seed},
			{X: 1000, Y: 92 + seed},
		},
	}
}

// makeGroupCurve builds a replicate-group fit result with mean ± SEM points.
func makeGroupCurve(name string, seed float64) *fit.Curve {
	curve := makeCurve(name, seed)
	curve.MeanPoints = []fit.MeanPoint{
		{X: 10, Y: 5 + seed, SEM: 0.5},
		{X: 100, Y: 45 + seed, SEM: 1.2},
		{X: 1000, Y: 92 + seed, SEM: 0},
	}

	return curve
}

func TestNewEncoder(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		encoder, err := NewEncoder()
		require.NoError(t, err)
		require.Equal(t, 0, encoder.Len())

		data, err := encoder.Finish()
		require.NoError(t, err)

		decoder, err := NewDecoder(data)
		require.NoError(t, err)
		require.Equal(t, CompressionNone, decoder.Compression())
	})

	t.Run("Invalid compression option", func(t *testing.T) {
		encoder, err := NewEncoder(WithCompression(Compression(0x7F)))
		require.ErrorIs(t, err, errs.ErrInvalidCompressionType)
		require.Nil(t, encoder)
	})
}

func TestEncoder_AddCurve(t *testing.T) {
	t.Run("Tracks length", func(t *testing.T) {
		encoder, err := NewEncoder()
		require.NoError(t, err)

		require.NoError(t, encoder.AddCurve(makeCurve("Compound A", 0)))
		require.NoError(t, encoder.AddCurve(makeCurve("Compound B", 1)))
		require.Equal(t, 2, encoder.Len())
	})

	t.Run("Nil curve", func(t *testing.T) {
		encoder, err := NewEncoder()
		require.NoError(t, err)

		require.ErrorIs(t, encoder.AddCurve(nil), errs.ErrNilCurve)
	})

	t.Run("Duplicate sample name", func(t *testing.T) {
		encoder, err := NewEncoder()
		require.NoError(t, err)

		require.NoError(t, encoder.AddCurve(makeCurve("Compound A", 0)))

		err = encoder.AddCurve(makeCurve("Compound A", 1))
		require.ErrorIs(t, err, errs.ErrDuplicateCurve)
		require.Contains(t, err.Error(), "Compound A")
	})

	t.Run("Name too long", func(t *testing.T) {
		encoder, err := NewEncoder()
		require.NoError(t, err)

		curve := makeCurve(strings.Repeat("n", math.MaxUint16+1), 0)
		require.ErrorIs(t, encoder.AddCurve(curve), errs.ErrCurveNameTooLong)
	})
}

func TestEncoder_SingleUse(t *testing.T) {
	encoder, err := NewEncoder()
	require.NoError(t, err)
	require.NoError(t, encoder.AddCurve(makeCurve("Compound A", 0)))

	_, err = encoder.Finish()
	require.NoError(t, err)

	require.ErrorIs(t, encoder.AddCurve(makeCurve("Compound B", 1)), errs.ErrSnapshotFinished)

	_, err = encoder.Finish()
	require.ErrorIs(t, err, errs.ErrSnapshotFinished)
}

func TestEncoder_EmptySnapshot(t *testing.T) {
	for _, compression := range []Compression{CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4} {
		t.Run(compression.String(), func(t *testing.T) {
			encoder, err := NewEncoder(WithCompression(compression))
			require.NoError(t, err)

			data, err := encoder.Finish()
			require.NoError(t, err)
			require.GreaterOrEqual(t, len(data), HeaderSize)

			decoder, err := NewDecoder(data)
			require.NoError(t, err)
			require.Equal(t, 0, decoder.Len())
			require.Empty(t, decoder.Curves())

			for range decoder.All() {
				t.Fatal("empty snapshot should yield no curves")
			}
		})
	}
}
