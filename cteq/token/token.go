// Package token checks bearer tokens and other variable-length secrets
// without leaking their contents or length through timing. Servers store
// the digest a token hashes to, never the token, and verification
// compares digests of fixed size.
package token

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/venlock/cteq/cteq"
)

// DigestSize is the size, in bytes, of a token digest before hex encoding.
const DigestSize = 32

// Hash returns the hex-encoded SHA3-256 digest of tok. Store this form;
// it is what Verify expects.
func Hash(tok string) string {
	sum := sha3.Sum256([]byte(tok))
	return hex.EncodeToString(sum[:])
}

// Verify reports whether tok matches stored, where stored was produced
// by Hash. The presented token is hashed before comparing, so the time
// taken reveals neither the token's length nor how much of it matched.
// A stored value of the wrong length fails immediately.
func Verify(tok, stored string) bool {
	sum := sha3.Sum256([]byte(tok))
	return cteq.EqString(hex.EncodeToString(sum[:]), stored)
}

// Eq compares two plaintext tokens of possibly different lengths in
// constant time by comparing their digests. Matching digests are
// confirmed with a direct comparison, so a digest collision alone cannot
// pass; that final check only runs for inputs that already share a
// SHA3-256 digest.
func Eq(a, b string) bool {
	asum := sha3.Sum256([]byte(a))
	bsum := sha3.Sum256([]byte(b))
	if !cteq.Eq32(&asum, &bsum) {
		return false
	}
	return a == b
}
