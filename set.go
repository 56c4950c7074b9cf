package chainmap

// Set is a Map without values. It shares the map's hashing, chaining and
// resize policy; only keys are stored.
type Set struct {
	table
}

func NewSet(opts ...Option) (*Set, error) {
	var s Set
	if err := s.init(0, opts...); err != nil {
		return nil, err
	}

	return &s, nil
}

func (s *Set) valid() bool {
	return s != nil && !s.freed()
}

// Adds a copy of key. Returns ErrExists if it is already in the set.
func (s *Set) Add(key []byte) error {
	if !s.valid() {
		return ErrInvalidArgument
	}

	return s.put(key, nil)
}

// Checks whether a key is in the set.
func (s *Set) Has(key []byte) bool {
	return s.valid() && s.has(key)
}

func (s *Set) Delete(key []byte) error {
	if !s.valid() {
		return ErrInvalidArgument
	}

	return s.remove(key, nil)
}

func (s *Set) Len() int {
	if !s.valid() {
		return 0
	}

	return s.count
}

func (s *Set) Stats() Stats {
	if !s.valid() {
		return Stats{}
	}

	return s.stats()
}

func (s *Set) Free() error {
	if !s.valid() {
		return ErrInvalidArgument
	}

	s.free()

	return nil
}
