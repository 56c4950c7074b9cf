package chainmap

import (
	"bytes"
	"fmt"
)

// MaxKeyLen is the longest key, in bytes, a map accepts.
const MaxKeyLen = 128

type entry struct {
	next *entry
	hash uint32

	// key and value are two views of a single allocation, so an entry
	// costs one make besides the node itself.
	key   []byte
	value []byte
}

func (e *entry) matches(hash uint32, key []byte) bool {
	return e.hash == hash && bytes.Equal(e.key, key)
}

type table struct {
	// slots[i] heads the chain of entries whose hash % capacity is i.
	slots     []*entry
	capacity  int
	count     int
	valueSize int

	hashFunc HashFunc

	memLimit uintptr
	memUsed  uintptr
}

type Option func(t *table)

// Override the default hash function (MurmurHash2).
func WithHashFunc(f HashFunc) Option {
	return func(t *table) {
		t.hashFunc = f
	}
}

// Caps the bytes accounted to the slot array and the entries. Allocations
// above the limit fail with ErrOutOfMemory. Zero or less means no limit.
func WithMemoryLimit(limit int) Option {
	return func(t *table) {
		t.memLimit = uintptr(max(limit, 0))
	}
}

func (t *table) init(valueSize int, opts ...Option) error {
	if valueSize < 0 {
		return fmt.Errorf("%w: negative value size %d", ErrInvalidArgument, valueSize)
	}

	for _, opt := range opts {
		opt(t)
	}

	if t.hashFunc == nil {
		t.hashFunc = MurmurHash2
	}

	capacity := minCapacity()
	if !t.reserve(slotsFootprint(capacity)) {
		return ErrOutOfMemory
	}

	t.slots = make([]*entry, capacity)
	t.capacity = capacity
	t.valueSize = valueSize
	t.count = 0

	return nil
}

func (t *table) reserve(n uintptr) bool {
	if t.memLimit != 0 && t.memUsed+n > t.memLimit {
		return false
	}

	t.memUsed += n
	return true
}

func (t *table) release(n uintptr) {
	t.memUsed -= n
}

func (t *table) slotIndex(hash uint32) int {
	return int(hash % uint32(t.capacity))
}

func (t *table) put(key, value []byte) error {
	if len(key) == 0 || len(value) != t.valueSize {
		return ErrInvalidArgument
	}

	if len(key) > MaxKeyLen {
		return fmt.Errorf("%w: %d bytes, at most %d allowed", ErrKeyTooLong, len(key), MaxKeyLen)
	}

	// Grow before touching any chain, even if the key turns out to exist.
	if t.count >= growThreshold(t.capacity) {
		capacity, err := nextCapacity(t.capacity)
		if err != nil {
			return err
		}

		if err := t.resize(capacity); err != nil {
			return err
		}
	}

	hash := t.hashFunc(key)
	idx := t.slotIndex(hash)

	for e := t.slots[idx]; e != nil; e = e.next {
		if e.matches(hash, key) {
			return ErrExists
		}
	}

	if !t.reserve(entryFootprint(len(key), t.valueSize)) {
		return ErrOutOfMemory
	}

	data := make([]byte, len(key)+t.valueSize)
	copy(data, key)
	copy(data[len(key):], value)

	t.slots[idx] = &entry{
		next:  t.slots[idx],
		hash:  hash,
		key:   data[:len(key):len(key)],
		value: data[len(key):],
	}
	t.count++

	return nil
}

func (t *table) get(key, out []byte) error {
	if len(key) == 0 || len(out) < t.valueSize {
		return ErrInvalidArgument
	}

	hash := t.hashFunc(key)

	for e := t.slots[t.slotIndex(hash)]; e != nil; e = e.next {
		if e.matches(hash, key) {
			copy(out, e.value)
			return nil
		}
	}

	return ErrNotFound
}

func (t *table) has(key []byte) bool {
	if len(key) == 0 {
		return false
	}

	hash := t.hashFunc(key)
	for e := t.slots[t.slotIndex(hash)]; e != nil; e = e.next {
		if e.matches(hash, key) {
			return true
		}
	}

	return false
}

func (t *table) remove(key, out []byte) error {
	if len(key) == 0 || len(out) < t.valueSize {
		return ErrInvalidArgument
	}

	var (
		hash = t.hashFunc(key)
		idx  = t.slotIndex(hash)
		prev *entry
	)

	for e := t.slots[idx]; e != nil; prev, e = e, e.next {
		if !e.matches(hash, key) {
			continue
		}

		copy(out, e.value)

		if prev == nil {
			t.slots[idx] = e.next
		} else {
			prev.next = e.next
		}

		e.next = nil
		t.release(entryFootprint(len(e.key), t.valueSize))
		t.count--

		t.shrink()

		return nil
	}

	return ErrNotFound
}

// Best effort: the removal that triggered it has already succeeded, so
// a failed shrink keeps the current capacity.
func (t *table) shrink() {
	if t.count >= shrinkThreshold(t.capacity) || t.capacity <= minCapacity() {
		return
	}

	capacity, err := prevCapacity(t.capacity)
	if err != nil {
		return
	}

	_ = t.resize(capacity)
}

// resize moves every entry onto a new slot array of the given capacity.
// Entries are relinked, not copied, and keep their stored hash. Nothing is
// moved unless the new array could be allocated.
func (t *table) resize(capacity int) error {
	if capacity <= 0 || capacity > maxSlots {
		return ErrCapacityExhausted
	}

	// Both arrays are live until the migration is done.
	if !t.reserve(slotsFootprint(capacity)) {
		return ErrOutOfMemory
	}

	slots := make([]*entry, capacity)

	for i, e := range t.slots {
		for e != nil {
			next := e.next
			idx := e.hash % uint32(capacity)

			e.next = slots[idx]
			slots[idx] = e
			e = next
		}

		t.slots[i] = nil
	}

	t.release(slotsFootprint(t.capacity))
	t.slots = slots
	t.capacity = capacity

	return nil
}

// free unlinks every chain and drops the slot array. The table is unusable
// afterwards.
func (t *table) free() {
	for i, e := range t.slots {
		for e != nil {
			next := e.next
			e.next = nil
			e = next
		}

		t.slots[i] = nil
	}

	t.slots = nil
	t.capacity = 0
	t.count = 0
	t.memUsed = 0
}

func (t *table) freed() bool {
	return t.slots == nil
}
