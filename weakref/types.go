// Package weakref declares the shared control block and the process
// allocation-serial generator backing Strong and Weak handles.
package weakref

import (
	"encoding/binary"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
)

// nextSerial generates lineage serials. Serials start at 1 so that 0
// is reserved for "refers to nothing" (the zero-value Weak).
var nextSerial atomic.Uint64

// ExpiredHash is the hash shared by every expired or zero-value weak
// reference: the hash of the reserved nothing-serial.
var ExpiredHash = hashSerial(0)

// block is the control record shared by all handles of one ownership
// lineage. It outlives the value: weak handles keep the block (not the
// value) reachable, which is what makes identity stable after expiry.
type block[T any] struct {
	// serial is unique and never reused within the process.
	serial uint64

	// strong counts current owners; 0 means the lineage has expired.
	strong atomic.Int64

	// value is discarded when the last owner releases.
	value *T
}

// hashSerial is the single hashing primitive for lineage identity:
// xxhash over the serial's 8-byte little-endian encoding.
func hashSerial(serial uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], serial)

	return xxhash.Sum64(buf[:])
}
