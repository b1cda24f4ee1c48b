package stats

import (
	"math"
	"testing"
)

func TestMeanSEM(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		wantMean float64
		wantSEM  float64
	}{
		{
			name:     "two replicates",
			values:   []float64{100, 98},
			wantMean: 99,
			wantSEM:  1, // stddev sqrt(2), sem sqrt(2)/sqrt(2)
		},
		{
			name:     "single replicate",
			values:   []float64{42},
			wantMean: 42,
			wantSEM:  0,
		},
		{
			name:     "ignores NaN cells",
			values:   []float64{10, math.NaN(), 20},
			wantMean: 15,
			wantSEM:  5, // stddev sqrt(50), sem sqrt(50)/sqrt(2)
		},
		{
			name:     "identical replicates",
			values:   []float64{7, 7, 7},
			wantMean: 7,
			wantSEM:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mean, sem := MeanSEM(tt.values)
			if math.Abs(mean-tt.wantMean) > 1e-12 {
				t.Errorf("mean = %v, want %v", mean, tt.wantMean)
			}
			if math.Abs(sem-tt.wantSEM) > 1e-12 {
				t.Errorf("sem = %v, want %v", sem, tt.wantSEM)
			}
		})
	}
}

func TestMeanSEMAllMissing(t *testing.T) {
	mean, sem := MeanSEM([]float64{math.NaN(), math.NaN()})
	if !math.IsNaN(mean) {
		t.Errorf("mean = %v, want NaN", mean)
	}
	if sem != 0 {
		t.Errorf("sem = %v, want 0", sem)
	}
}

func TestMinMax(t *testing.T) {
	minv, maxv := MinMax([]float64{3, math.NaN(), -2, 8, 0})
	if minv != -2 {
		t.Errorf("min = %v, want -2", minv)
	}
	if maxv != 8 {
		t.Errorf("max = %v, want 8", maxv)
	}

	minv, maxv = MinMax([]float64{math.NaN()})
	if !math.IsNaN(minv) || !math.IsNaN(maxv) {
		t.Errorf("MinMax of all-NaN = (%v, %v), want (NaN, NaN)", minv, maxv)
	}
}

func TestFiltered(t *testing.T) {
	got := Filtered([]float64{1, math.NaN(), 3})
	if len(got) != 2 || got[0] != 1 || got[1] != 3 {
		t.Errorf("Filtered = %v, want [1 3]", got)
	}
}

func TestRSquared(t *testing.T) {
	obs := []float64{2, 4, 6, 8}

	t.Run("perfect fit", func(t *testing.T) {
		r2 := RSquared(obs, []float64{2, 4, 6, 8})
		if r2 != 1.0 {
			t.Errorf("R² = %v, want 1.0", r2)
		}
	})

	t.Run("mean predictor scores zero", func(t *testing.T) {
		r2 := RSquared(obs, []float64{5, 5, 5, 5})
		if math.Abs(r2) > 1e-12 {
			t.Errorf("R² = %v, want 0", r2)
		}
	})

	t.Run("worse than mean is negative", func(t *testing.T) {
		r2 := RSquared(obs, []float64{8, 6, 4, 2})
		if r2 >= 0 {
			t.Errorf("R² = %v, want negative", r2)
		}
	})

	t.Run("zero variance yields NaN", func(t *testing.T) {
		r2 := RSquared([]float64{5, 5, 5}, []float64{5, 5, 5})
		if !math.IsNaN(r2) {
			t.Errorf("R² = %v, want NaN", r2)
		}
	})

	t.Run("empty observations yield NaN", func(t *testing.T) {
		r2 := RSquared(nil, nil)
		if !math.IsNaN(r2) {
			t.Errorf("R² = %v, want NaN", r2)
		}
	})
}

func TestSSTot(t *testing.T) {
	if got := SSTot([]float64{2, 4, 6, 8}); math.Abs(got-20) > 1e-12 {
		t.Errorf("SSTot = %v, want 20", got)
	}
	if got := SSTot([]float64{5, 5, 5}); got != 0 {
		t.Errorf("SSTot = %v, want 0", got)
	}
	if got := SSTot(nil); got != 0 {
		t.Errorf("SSTot = %v, want 0", got)
	}
}
