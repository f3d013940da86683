package utils

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"time"
)

// RandomSeed draws a seed from the operating system's entropy source,
// falling back to the clock if that fails.
func RandomSeed() uint64 {
	var buf [8]byte
	if _, err := cryptorand.Read(buf[:]); err != nil {
		return uint64(time.Now().UnixNano())
	}
	return binary.LittleEndian.Uint64(buf[:])
}
