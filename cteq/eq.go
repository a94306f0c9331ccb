package cteq

// Eq reports whether a and b have the same contents. For inputs of equal
// length the time taken depends only on the length, not on the contents or
// on the position of the first difference. A nil slice and an empty slice
// compare equal.
//
// The length comparison itself is NOT constant time: when the lengths
// differ, Eq returns false immediately. Only same-length comparisons are
// timing-safe. Callers that must also hide the length should compare
// fixed-size digests of both sides (see the token subpackage).
func Eq(a, b []byte) bool {
	return len(a) == len(b) && diff(a, b) == 0
}

// EqString is Eq for strings, without copying them into byte slices.
// The same caveat applies: a length mismatch returns false immediately
// and only same-length comparisons are timing-safe.
func EqString(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	var v byte
	for i := 0; i < len(a); i++ {
		v |= a[i] ^ b[i]
	}
	return optimizerBarrier(v) == 0
}

// IsZero reports whether every byte of b is zero, in time that depends
// only on len(b). It is the constant-time replacement for comparing
// against a slice of zeros, useful for spotting all-zero keys or IVs.
func IsZero(b []byte) bool {
	var v byte
	for i := 0; i < len(b); i++ {
		v |= b[i]
	}
	return optimizerBarrier(v) == 0
}

// diff folds a[i] XOR b[i] over every index and routes the accumulator
// through the optimizer barrier, so the result is zero exactly when the
// slices match. The compare against zero must stay in the caller, on the
// far side of the barrier. Lengths must already agree; diff panics rather
// than silently comparing a prefix.
func diff(a, b []byte) byte {
	if len(a) != len(b) {
		panic("cteq: diff on slices of different length")
	}
	var v byte
	for i := 0; i < len(a); i++ {
		v |= a[i] ^ b[i]
	}
	return optimizerBarrier(v)
}
