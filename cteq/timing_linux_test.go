//go:build linux

package cteq

import (
	"testing"

	"golang.org/x/sys/unix"
)

// pinThread binds the calling thread to one CPU so a timing run does not
// migrate between cores partway through. The caller must already hold
// runtime.LockOSThread.
func pinThread(t *testing.T) {
	var set unix.CPUSet
	set.Zero()
	set.Set(0)
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		t.Logf("SchedSetaffinity: %v (continuing unpinned)", err)
	}
}
