// Package mac produces and checks fixed-size message authentication tags.
// Tags come from keyed BLAKE2b-256, which takes the key natively and runs
// fast without hardware support, or from HMAC-SHA-256 where
// interoperability demands it. Both verifiers compare in constant time.
package mac

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"

	"golang.org/x/crypto/blake2b"

	"github.com/venlock/cteq/cteq"
)

// TagSize is the size, in bytes, of a tag produced by this package.
const TagSize = 32

// MaxKeySize is the longest key BLAKE2b accepts. HMAC has no such limit;
// see SumHMAC.
const MaxKeySize = 64

var ErrKeyTooLong = errors.New("mac: key longer than 64 bytes")

// Sum computes the keyed BLAKE2b-256 tag for msg. The key may be up to
// MaxKeySize bytes; longer keys return ErrKeyTooLong.
func Sum(msg, key []byte) ([]byte, error) {
	h, err := blake2b.New256(key)
	if err != nil {
		return nil, ErrKeyTooLong
	}
	h.Write(msg)
	return h.Sum(nil), nil
}

// Verify reports whether tag authenticates msg under key. The tag
// comparison is constant time; a tag of the wrong length, or a key Sum
// would reject, counts as a mismatch.
func Verify(tag, msg, key []byte) bool {
	if len(tag) != TagSize {
		return false
	}
	want, err := Sum(msg, key)
	if err != nil {
		return false
	}
	return cteq.Eq32((*[TagSize]byte)(tag), (*[TagSize]byte)(want))
}

// SumHMAC computes the HMAC-SHA-256 tag for msg. Unlike Sum it accepts
// keys of any length.
func SumHMAC(msg, key []byte) []byte {
	h := hmac.New(sha256.New, key)
	h.Write(msg)
	return h.Sum(nil)
}

// VerifyHMAC reports whether tag authenticates msg under key as an
// HMAC-SHA-256 tag, comparing in constant time.
func VerifyHMAC(tag, msg, key []byte) bool {
	if len(tag) != TagSize {
		return false
	}
	want := SumHMAC(msg, key)
	return cteq.Eq32((*[TagSize]byte)(tag), (*[TagSize]byte)(want))
}
