// Package wipe clears key material from buffers that are done being
// secret. Go gives no hard guarantee that a value was never copied by
// the runtime, so wiping is best effort, but it keeps dead keys out of
// heap dumps and reused buffers.
package wipe

import "runtime"

// Bytes overwrites b with zeros. Wiping usually happens right before b
// goes out of scope, exactly when the compiler would love to drop the
// stores as dead; noinline plus KeepAlive keeps them in.
//
//go:noinline
func Bytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}

// Array32 overwrites a 32-byte key array with zeros.
//
//go:noinline
func Array32(b *[32]byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
