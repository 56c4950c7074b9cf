package chainmap

// Map associates byte-string keys with values of a size fixed at creation.
// Collisions are chained per slot, and the slot array grows and shrinks
// along a fixed sequence of prime sizes as the load factor crosses 3/4 and
// 1/4.
//
// Keys and values are copied in and out, the map never aliases caller
// memory. A Map is not safe for concurrent use.
type Map struct {
	table
}

// Returns a new map holding values of exactly valueSize bytes.
func New(valueSize int, opts ...Option) (*Map, error) {
	var m Map
	if err := m.init(valueSize, opts...); err != nil {
		return nil, err
	}

	return &m, nil
}

func (m *Map) valid() bool {
	return m != nil && !m.freed()
}

// Stores a copy of key and value. The value must be exactly ValueSize bytes.
// Returns ErrExists if the key is already stored; the stored value is kept.
func (m *Map) Put(key, value []byte) error {
	if !m.valid() {
		return ErrInvalidArgument
	}

	return m.put(key, value)
}

// Copies the value stored under key into out, which must hold at least
// ValueSize bytes.
func (m *Map) Get(key, out []byte) error {
	if !m.valid() {
		return ErrInvalidArgument
	}

	return m.get(key, out)
}

// Has reports whether key is stored.
func (m *Map) Has(key []byte) bool {
	return m.valid() && m.has(key)
}

// Removes key, copying its value into out first. The map may shrink
// afterwards.
func (m *Map) Remove(key, out []byte) error {
	if !m.valid() {
		return ErrInvalidArgument
	}

	return m.remove(key, out)
}

// Number of entries.
func (m *Map) Len() int {
	if !m.valid() {
		return 0
	}

	return m.count
}

func (m *Map) ValueSize() int {
	if m == nil {
		return 0
	}

	return m.valueSize
}

func (m *Map) Stats() Stats {
	if !m.valid() {
		return Stats{}
	}

	return m.stats()
}

// Free releases every entry and the slot array. Any later call on the map
// fails with ErrInvalidArgument, including a second Free.
func (m *Map) Free() error {
	if !m.valid() {
		return ErrInvalidArgument
	}

	m.free()

	return nil
}
