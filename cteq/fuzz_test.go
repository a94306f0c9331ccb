package cteq

import (
	"bytes"
	"testing"
)

// FuzzEq checks Eq against bytes.Equal on arbitrary inputs, including a
// mutated copy so the corpus always exercises the equal-length unequal
// path.
func FuzzEq(f *testing.F) {
	f.Add([]byte("foo"), []byte("foo"))
	f.Add([]byte("foo"), []byte("bar"))
	f.Add([]byte("foo"), []byte("quux"))
	f.Add([]byte{}, []byte{})
	f.Add([]byte{0x00}, []byte{0x80})
	f.Add(bytes.Repeat([]byte{3}, 64), bytes.Repeat([]byte{7}, 64))

	f.Fuzz(func(t *testing.T, a, b []byte) {
		if got, want := Eq(a, b), bytes.Equal(a, b); got != want {
			t.Fatalf("Eq(%x, %x) = %v, bytes.Equal = %v", a, b, got, want)
		}
		if Eq(a, b) != Eq(b, a) {
			t.Fatalf("Eq not symmetric on %x, %x", a, b)
		}
		if !Eq(a, a) {
			t.Fatalf("Eq(a, a) = false for %x", a)
		}

		if len(a) > 0 {
			c := append([]byte(nil), a...)
			c[len(c)/2] ^= 0x01
			if Eq(a, c) {
				t.Fatalf("single-bit change in %x not detected", a)
			}
		}
	})
}

// FuzzEqString mirrors FuzzEq for the string form.
func FuzzEqString(f *testing.F) {
	f.Add("foo", "foo")
	f.Add("foo", "bar")
	f.Add("", "")
	f.Add("foo", "quux")

	f.Fuzz(func(t *testing.T, a, b string) {
		if got, want := EqString(a, b), a == b; got != want {
			t.Fatalf("EqString(%q, %q) = %v, want %v", a, b, got, want)
		}
	})
}
