package chainmap

import (
	"math"
	"unsafe"
)

// Slot array sizes, roughly doubling primes. A map always has one of
// these capacities.
var capacities = [...]int{
	31,
	67,
	137,
	277,
	557,
	1117,
	2237,
	4481,
	8963,
	17929,
	35863,
	71741,
	143483,
	286973,
	573953,
	1147921,
}

// Largest slot array the platform can address.
const maxSlots = math.MaxInt / int(unsafe.Sizeof(uintptr(0)))

func minCapacity() int {
	return capacities[0]
}

// nextCapacity returns the first size in the sequence above capacity.
func nextCapacity(capacity int) (int, error) {
	for _, c := range capacities {
		if c > capacity {
			if c > maxSlots {
				return 0, ErrCapacityExhausted
			}

			return c, nil
		}
	}

	return 0, ErrCapacityExhausted
}

// prevCapacity returns the last size in the sequence below capacity.
func prevCapacity(capacity int) (int, error) {
	if capacity <= capacities[0] {
		return 0, ErrCapacityExhausted
	}

	prev := capacities[0]
	for _, c := range capacities {
		if c >= capacity {
			break
		}

		prev = c
	}

	return prev, nil
}

func growThreshold(capacity int) int {
	return capacity * 3 / 4
}

func shrinkThreshold(capacity int) int {
	return capacity / 4
}
