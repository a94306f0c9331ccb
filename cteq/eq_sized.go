package cteq

// Fixed-size variants for the common digest and key widths. Taking array
// pointers makes the length part of the type, so a caller can never pass
// a short buffer, and the constant bound lets the compiler unroll the
// fold while the barrier keeps it from turning the unrolled form back
// into an early exit.

// Eq16 reports whether two 16-byte values are equal in constant time.
// Sized for 128-bit MAC tags and cipher blocks.
func Eq16(a, b *[16]byte) bool {
	return diff16(a, b) == 0
}

// Eq32 reports whether two 32-byte values are equal in constant time.
// Sized for 256-bit keys and SHA-256 or BLAKE2b-256 digests.
func Eq32(a, b *[32]byte) bool {
	return diff32(a, b) == 0
}

// Eq64 reports whether two 64-byte values are equal in constant time.
// Sized for 512-bit digests such as SHA-512 and BLAKE2b-512.
func Eq64(a, b *[64]byte) bool {
	return diff64(a, b) == 0
}

func diff16(a, b *[16]byte) byte {
	var v byte
	for i := 0; i < 16; i++ {
		v |= a[i] ^ b[i]
	}
	return optimizerBarrier(v)
}

func diff32(a, b *[32]byte) byte {
	var v byte
	for i := 0; i < 32; i++ {
		v |= a[i] ^ b[i]
	}
	return optimizerBarrier(v)
}

func diff64(a, b *[64]byte) byte {
	var v byte
	for i := 0; i < 64; i++ {
		v |= a[i] ^ b[i]
	}
	return optimizerBarrier(v)
}
