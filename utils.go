package chainmap

import "unsafe"

var (
	sizeOfSlot  = unsafe.Sizeof((*entry)(nil))
	sizeOfEntry = unsafe.Sizeof(entry{})
)

// Accounted bytes of a slot array with the given capacity.
func slotsFootprint(capacity int) uintptr {
	return uintptr(capacity) * sizeOfSlot
}

// Accounted bytes of one entry, its key and its value.
func entryFootprint(keyLen, valueSize int) uintptr {
	return sizeOfEntry + uintptr(keyLen) + uintptr(valueSize)
}

// Estimates how many entries with keys of keyLen bytes fit into size bytes,
// including the slot array they need. The transient cost of a resize, when
// two slot arrays are live at once, is not included.
func EntriesFromSize(size uintptr, keyLen, valueSize int) int {
	perEntry := entryFootprint(keyLen, valueSize)

	var best int
	for _, c := range capacities {
		slots := slotsFootprint(c)
		if slots > size {
			break
		}

		n := int((size - slots) / perEntry)
		// A map at this capacity holds fewer entries than its grow threshold
		// allows, otherwise the next Put would resize it.
		n = min(n, growThreshold(c))
		best = max(best, n)
	}

	return best
}
