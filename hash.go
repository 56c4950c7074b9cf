package chainmap

import (
	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
)

// HashFunc hashes a key into the 32-bit value used to pick its slot.
// It must be deterministic for a map's lifetime.
type HashFunc func(key []byte) uint32

const (
	murmurM = 0x5bd1e995
	murmurR = 24
)

// MurmurHash2 is the default hash: a seedless Murmur2 over 4-byte
// little-endian words.
func MurmurHash2(key []byte) uint32 {
	var h uint32

	for len(key) >= 4 {
		k := uint32(key[0]) | uint32(key[1])<<8 | uint32(key[2])<<16 | uint32(key[3])<<24

		k *= murmurM
		k ^= k >> murmurR
		k *= murmurM

		h *= murmurM
		h ^= k

		key = key[4:]
	}

	switch len(key) {
	case 3:
		h ^= uint32(key[2]) << 16
		fallthrough
	case 2:
		h ^= uint32(key[1]) << 8
		fallthrough
	case 1:
		h ^= uint32(key[0])
		h *= murmurM
	}

	h ^= h >> 13
	h *= murmurM
	h ^= h >> 15

	return h
}

// Murmur3 hashes with 32-bit MurmurHash3.
func Murmur3(key []byte) uint32 {
	return murmur3.Sum32(key)
}

// XXHash folds the 64-bit xxHash of the key to its low 32 bits.
func XXHash(key []byte) uint32 {
	return uint32(xxhash.Sum64(key))
}
