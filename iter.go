package chainmap

import "iter"

// Iterator walks a map's entries in slot order, then chain order within a
// slot. Entries within a slot therefore come newest first.
//
// An iterator holds no copy of the map. Putting into or removing from the
// map while an iterator is open is undefined: entries may be skipped or
// repeated, since a resize rearranges every chain. Close the iterator, or
// finish it, before mutating.
type Iterator struct {
	m       *Map
	index   int
	current *entry
}

// Iter returns an iterator positioned at the first entry.
func (m *Map) Iter() (*Iterator, error) {
	if !m.valid() {
		return nil, ErrInvalidArgument
	}

	it := &Iterator{m: m}
	it.seek(0)

	return it, nil
}

// seek positions the iterator at the first non-empty slot at or after
// index, or at the end of the map.
func (it *Iterator) seek(index int) {
	slots := it.m.slots
	for index < len(slots) && slots[index] == nil {
		index++
	}

	it.index = index
	it.current = nil
	if index < len(slots) {
		it.current = slots[index]
	}
}

// Next copies the current value into value and returns the current key
// appended to keyBuf[:0], then advances. Passing the previous key back as
// keyBuf avoids an allocation per entry. Returns ErrNoMoreElements once
// every entry has been produced.
func (it *Iterator) Next(keyBuf, value []byte) ([]byte, error) {
	if it == nil || !it.m.valid() || len(value) < it.m.valueSize {
		return nil, ErrInvalidArgument
	}

	if it.current == nil {
		return nil, ErrNoMoreElements
	}

	e := it.current
	key := append(keyBuf[:0], e.key...)
	copy(value, e.value)

	if e.next != nil {
		it.current = e.next
	} else {
		it.seek(it.index + 1)
	}

	return key, nil
}

// Close detaches the iterator from its map.
func (it *Iterator) Close() error {
	if it == nil || it.m == nil {
		return ErrInvalidArgument
	}

	it.m = nil
	it.current = nil

	return nil
}

// All yields a copy of every key and value, in iterator order. The same
// mutation rules as for Iterator apply inside the loop body.
func (m *Map) All() iter.Seq2[[]byte, []byte] {
	return func(yield func([]byte, []byte) bool) {
		it, err := m.Iter()
		if err != nil {
			return
		}
		defer it.Close()

		for {
			value := make([]byte, m.valueSize)

			key, err := it.Next(nil, value)
			if err != nil {
				return
			}

			if !yield(key, value) {
				return
			}
		}
	}
}
