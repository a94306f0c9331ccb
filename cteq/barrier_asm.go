//go:build (386 || amd64 || arm || arm64 || riscv64) && gc && !purego

package cteq

// optimizerBarrier returns v unchanged through a register round trip
// written in assembly. The gc compiler treats assembly bodies as opaque,
// so it cannot prove the accumulator is only ever compared against zero
// and cannot rewrite the fold feeding the barrier into a short-circuiting
// loop. 386 and amd64 route through a byte register; arm, arm64 and
// riscv64 have no byte sub-registers and use byte-sized moves on a full
// register instead.
func optimizerBarrier(v byte) byte
