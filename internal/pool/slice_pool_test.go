package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetFloat64Slice(t *testing.T) {
	t.Run("Returns requested length", func(t *testing.T) {
		for _, size := range []int{0, 1, 7, 101, 4096} {
			slice, cleanup := GetFloat64Slice(size)
			require.Len(t, slice, size)
			cleanup()
		}
	})

	t.Run("Slice is fully writable", func(t *testing.T) {
		slice, cleanup := GetFloat64Slice(101)
		defer cleanup()

		for i := range slice {
			slice[i] = float64(i)
		}
		require.Equal(t, 0.0, slice[0])
		require.Equal(t, 100.0, slice[100])
	})

	t.Run("Concurrent borrowers get independent slices", func(t *testing.T) {
		const goroutines = 16

		done := make(chan []float64, goroutines)
		for g := range goroutines {
			go func() {
				slice, cleanup := GetFloat64Slice(64)
				defer cleanup()

				for i := range slice {
					slice[i] = float64(g)
				}
				out := make([]float64, len(slice))
				copy(out, slice)
				done <- out
			}()
		}

		for range goroutines {
			slice := <-done
			require.Len(t, slice, 64)
			for _, v := range slice {
				require.Equal(t, slice[0], v, "slice must not be shared while borrowed")
			}
		}
	})
}
