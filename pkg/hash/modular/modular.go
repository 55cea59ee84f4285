package modular

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Index reduces key into [0, capacity) by plain modulo, with no mixing step.
// Go's % operator truncates toward zero, so a negative key produces a
// remainder in (-capacity, 0]; Index folds that back into range by adding
// capacity. Callers should treat the placement of negative keys as an
// implementation detail, not a contract.
func Index(key int64, capacity int) int {
	i := int(key % int64(capacity))
	if i < 0 {
		i += capacity
	}
	return i
}

// MixedIndex runs the key's 8-byte little-endian form through xxhash64
// before reducing mod capacity. It is not the default anywhere; it exists to
// be injected through the table constructors when a caller's keys cluster
// badly under plain modulo (sequential ids with a stride, for instance).
func MixedIndex(key int64, capacity int) int {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(key))
	return int(xxhash.Sum64(buf[:]) % uint64(capacity))
}
