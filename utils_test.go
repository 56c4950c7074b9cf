package chainmap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEntriesFromSize(t *testing.T) {
	const keyLen, valueSize = 8, 16

	perEntry := entryFootprint(keyLen, valueSize)
	minSlots := slotsFootprint(minCapacity())

	tests := []struct {
		name string
		size uintptr
		want int
	}{
		{"zero", 0, 0},
		{"less than the slot array", minSlots - 1, 0},
		{"slot array only", minSlots, 0},
		{"five entries", minSlots + 5*perEntry, 5},
		{"capped by grow threshold", minSlots + 24*perEntry, 23},
		{"1GB", 1 << 30, min(int((1<<30-slotsFootprint(1147921))/perEntry), growThreshold(1147921))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, EntriesFromSize(tt.size, keyLen, valueSize))
		})
	}
}

func TestFootprint(t *testing.T) {
	require.Equal(t, 31*sizeOfSlot, slotsFootprint(31))
	require.Equal(t, sizeOfEntry+4+8, entryFootprint(4, 8))
}
