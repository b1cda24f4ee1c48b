package hash

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestID_Deterministic(t *testing.T) {
	names := []string{"", "Compound A", "Compound B", "Treatment X rep 2", "样品-7"}

	for _, name := range names {
		require.Equal(t, ID(name), ID(name), "ID must be stable for %q", name)
	}
}

func TestID_KnownVector(t *testing.T) {
	// The canonical xxHash64 test vector: empty input, seed 0.
	require.Equal(t, uint64(0xef46db3751d8e999), ID(""))
}

func TestID_DistinctNames(t *testing.T) {
	seen := make(map[uint64]string)
	for i := range 1000 {
		name := fmt.Sprintf("Sample %d", i)
		id := ID(name)

		prev, dup := seen[id]
		require.False(t, dup, "ID collision between %q and %q", name, prev)
		seen[id] = name
	}
}
