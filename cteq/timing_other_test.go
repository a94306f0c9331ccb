//go:build !linux

package cteq

import "testing"

// pinThread is a no-op on platforms where thread affinity is not exposed.
func pinThread(t *testing.T) {}
