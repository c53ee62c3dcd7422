package hash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Schema computes an order-sensitive fingerprint of a column-name list.
// Names are length-prefixed before hashing so that {"ab","c"} and
// {"a","bc"} produce distinct fingerprints.
func Schema(names []string) uint64 {
	d := xxhash.New()

	var lenBuf [4]byte
	for _, name := range names {
		binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(name)))
		_, _ = d.Write(lenBuf[:])
		_, _ = d.WriteString(name)
	}

	return d.Sum64()
}
