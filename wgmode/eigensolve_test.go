package wgmode

import (
	"math/cmplx"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/waveguide/sparse"
)

func TestShiftInvertEigsDiagonal(t *testing.T) {
	chk.PrintTitle("ShiftInvertEigs: diagonal matrix, known eigenvalues")

	// A 3x3 diagonal complex matrix has its eigenvalues on the diagonal.
	d := []complex128{1 + 0.1i, 3 + 0.2i, 5 + 0.05i}
	a := sparse.NewDiag(d)

	eigs, err := ShiftInvertEigs(a, 1, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(eigs) != 1 {
		t.Fatalf("expected 1 eigenpair, got %d", len(eigs))
	}
	got := eigs[0].Value
	want := complex128(5 + 0.05i)
	if cmplx.Abs(got-want) > 1e-6 {
		t.Fatalf("expected eigenvalue near %v, got %v", want, got)
	}
}

func TestShiftInvertEigsTopTwo(t *testing.T) {
	chk.PrintTitle("ShiftInvertEigs: recovers the two eigenvalues nearest the shift")

	d := []complex128{1, 2, 10, 11}
	a := sparse.NewDiag(d)

	eigs, err := ShiftInvertEigs(a, 2, 10.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(eigs) != 2 {
		t.Fatalf("expected 2 eigenpairs, got %d", len(eigs))
	}
	for _, e := range eigs {
		if cmplx.Abs(e.Value-10) > 1e-6 && cmplx.Abs(e.Value-11) > 1e-6 {
			t.Fatalf("unexpected eigenvalue %v, expected near 10 or 11", e.Value)
		}
	}
}
