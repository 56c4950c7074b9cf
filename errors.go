package chainmap

import "errors"

var (
	// ErrInvalidArgument is returned for empty keys, wrongly sized value
	// buffers, and nil or freed handles.
	ErrInvalidArgument = errors.New("chainmap: invalid argument")

	// ErrNotFound is returned when a key is absent.
	ErrNotFound = errors.New("chainmap: not found")

	// ErrNoMoreElements is returned by an exhausted iterator.
	ErrNoMoreElements = ErrNotFound

	// ErrExists is returned when putting a key that is already stored.
	// Put never overwrites.
	ErrExists = errors.New("chainmap: key already exists")

	// ErrKeyTooLong is returned for keys longer than MaxKeyLen.
	ErrKeyTooLong = errors.New("chainmap: key too long")

	// ErrOutOfMemory is returned when an allocation would exceed the
	// memory limit configured with WithMemoryLimit.
	ErrOutOfMemory = errors.New("chainmap: out of memory")

	// ErrCapacityExhausted is returned when the map has to grow but the
	// capacity sequence has no larger size.
	ErrCapacityExhausted = errors.New("chainmap: capacity exhausted")
)
