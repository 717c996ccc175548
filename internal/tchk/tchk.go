// Package tchk extends gosl/chk's test-assertion style to complex128
// slices, which gosl/chk does not itself compare.
package tchk

import (
	"math/cmplx"
	"testing"
)

// ArrayC checks that actual and expected agree entrywise within tol,
// in the same spirit as gosl/chk.Array but for complex128 values.
func ArrayC(tst *testing.T, name string, tol float64, actual, expected []complex128) {
	if len(actual) != len(expected) {
		tst.Fatalf("%s: length mismatch: %d != %d", name, len(actual), len(expected))
		return
	}
	for i := range actual {
		if cmplx.Abs(actual[i]-expected[i]) > tol {
			tst.Fatalf("%s[%d] = %v, want %v (tol=%v)", name, i, actual[i], expected[i], tol)
		}
	}
}
