package wgmode

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestAssembleDiagonalShape(t *testing.T) {
	chk.PrintTitle("AssembleDiagonal: matrix shape is 2N x 2N")

	nx, ny := 3, 2
	n := nx * ny
	dl := []float64{1, 1, 1}
	dly := []float64{1, 1}
	dlf := [2][]float64{dl, dly}
	dlb := [2][]float64{dl, dly}
	d := BuildDerivatives(nx, ny, dlf, dlb, [2]bool{false, false})

	eps := make([]complex128, n)
	for i := range eps {
		eps[i] = 2
	}
	epsT := NewDiagonalTensor(eps, eps, eps)
	muT := IdentityMuTensor(n)

	sys := AssembleDiagonal(epsT, muT, d)
	nrow, ncol := sys.Mat.Dims()
	if nrow != 2*n || ncol != 2*n {
		t.Fatalf("expected %dx%d, got %dx%d", 2*n, 2*n, nrow, ncol)
	}
}

func TestAssembleTensorialShape(t *testing.T) {
	chk.PrintTitle("AssembleTensorial: matrix shape is 4N x 4N")

	nx, ny := 3, 2
	n := nx * ny
	dl := []float64{1, 1, 1}
	dly := []float64{1, 1}
	dlf := [2][]float64{dl, dly}
	dlb := [2][]float64{dl, dly}
	d := BuildDerivatives(nx, ny, dlf, dlb, [2]bool{false, false})

	eps := make([]complex128, n)
	offd := make([]complex128, n)
	for i := range eps {
		eps[i] = 2
		offd[i] = 0.1
	}
	epsT := NewDiagonalTensor(eps, eps, eps)
	epsT.Set(0, 1, 0, offd[0])
	epsT.Set(1, 0, 0, offd[0])
	muT := IdentityMuTensor(n)

	sys := AssembleTensorial(epsT, muT, d)
	nrow, ncol := sys.Mat.Dims()
	if nrow != 4*n || ncol != 4*n {
		t.Fatalf("expected %dx%d, got %dx%d", 4*n, 4*n, nrow, ncol)
	}
}
