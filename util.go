package huffpack

import (
	mathbits "math/bits"
)

func log2uint32(x uint32) uint32 {
	if x == 0 {
		x = 1
	}
	return uint32(32 - mathbits.LeadingZeros32(x))
}

// bytesForBits returns ceil(n / 8) without overflowing for huge n.
func bytesForBits(n uint64) uint64 {
	whole := n >> 3
	if n&7 != 0 {
		whole++
	}
	return whole
}
