//go:build !((386 || amd64 || arm || arm64 || riscv64) && gc && !purego)

package cteq

import "runtime"

// optimizerBarrier returns v unchanged while denying the compiler any
// view inside: the function never inlines, and the load through p plus
// runtime.KeepAlive pins the value as observable, the closest Go gets to
// a volatile read. Weaker than the assembly barrier in principle, since
// a future compiler could still inline across noinline or elide the
// KeepAlive, but it is the strongest portable form available.
//
//go:noinline
func optimizerBarrier(v byte) byte {
	p := &v
	x := *p
	runtime.KeepAlive(p)
	return x
}
