// Package cteq compares byte strings in constant time.
//
// The usual early-exit comparison (bytes.Equal, ==) leaks how many leading
// bytes matched through how long it takes. When the compared value is a MAC
// tag, a session token or a password digest, that leak lets an attacker
// recover the secret one byte at a time. cteq instead XORs every byte pair
// into a single accumulator and tests the accumulator once at the end, so
// for equal-length inputs the work performed never depends on the contents.
//
// Design goals:
//   - Timing a function of input length alone, never of contents
//   - An optimizer barrier the compiler cannot see through, so the fold
//     can never be rewritten back into an early-exit loop
//   - Zero allocations, no locks, safe for concurrent use
//
// The length check in Eq and EqString is deliberately not constant time:
// mismatched lengths return false immediately. Only same-length
// comparisons are timing-safe. Callers whose secrets vary in length
// should compare fixed-size digests of both sides instead; the token
// subpackage does exactly that.
package cteq
