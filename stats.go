package chainmap

type Stats struct {
	Size         int
	Capacity     int
	UsedSlots    int
	LongestChain int
	LoadFactor   float32
	// Bytes accounted against WithMemoryLimit.
	Bytes uintptr
}

func (t *table) stats() Stats {
	s := Stats{
		Size:     t.count,
		Capacity: t.capacity,
		Bytes:    t.memUsed,
	}

	if t.capacity == 0 {
		return s
	}

	for _, e := range t.slots {
		if e == nil {
			continue
		}

		s.UsedSlots++

		n := 0
		for ; e != nil; e = e.next {
			n++
		}

		s.LongestChain = max(s.LongestChain, n)
	}

	s.LoadFactor = float32(t.count) / float32(t.capacity)

	return s
}
