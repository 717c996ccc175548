package wgmode

import (
	"math/cmplx"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestPMLStretchNoPML(t *testing.T) {
	chk.PrintTitle("pmlStretch: numPML=0 leaves unit factors")
	dl := []float64{1, 1, 1, 1}
	s := pmlStretch(dl, 0, true, 2 * 3.141592653589793 * 2e14)
	for i, v := range s {
		if cmplx.Abs(v-1) > 1e-12 {
			t.Fatalf("expected unit stretch at %d, got %v", i, v)
		}
	}
}

func TestPMLStretchDminDisablesNearEdge(t *testing.T) {
	chk.PrintTitle("pmlStretch: dminPML=false skips the near edge only")
	dl := make([]float64, 10)
	for i := range dl {
		dl[i] = 1
	}
	omega := 2 * 3.141592653589793 * 2e14
	s := pmlStretch(dl, 2, false, omega)
	if cmplx.Abs(s[0]-1) > 1e-12 || cmplx.Abs(s[1]-1) > 1e-12 {
		t.Fatalf("near edge should be undisturbed when dminPML=false, got %v %v", s[0], s[1])
	}
	if cmplx.Abs(s[len(dl)-1]-1) < 1e-9 {
		t.Fatalf("far edge should always be stretched, got %v", s[len(dl)-1])
	}
}

func TestPMLStretchGradesToEdge(t *testing.T) {
	chk.PrintTitle("pmlStretch: far-edge stretch magnitude grows toward the boundary")
	dl := make([]float64, 10)
	for i := range dl {
		dl[i] = 1
	}
	omega := 2 * 3.141592653589793 * 2e14
	s := pmlStretch(dl, 3, true, omega)
	innerDepth := cmplx.Abs(1/s[len(dl)-3] - 1)
	outerEdge := cmplx.Abs(1/s[len(dl)-1] - 1)
	if !(outerEdge > innerDepth) {
		t.Fatalf("expected stretch magnitude to grow toward the domain edge: inner=%v outer=%v", innerDepth, outerEdge)
	}
}

func TestBuildPMLMatricesShape(t *testing.T) {
	chk.PrintTitle("BuildPMLMatrices: diagonal shapes match Nx*Ny")
	nx, ny := 4, 3
	dl := []float64{1, 1, 1, 1}
	dly := []float64{1, 1, 1}
	dlf := [2][]float64{dl, dly}
	dlb := [2][]float64{dl, dly}
	omega := 2 * 3.141592653589793 * 2e14
	m := BuildPMLMatrices(omega, nx, ny, [2]int{1, 1}, dlf, dlb, [2]bool{true, true})
	nrow, ncol := m.Sxf.Dims()
	if nrow != nx*ny || ncol != nx*ny {
		t.Fatalf("expected %dx%d, got %dx%d", nx*ny, nx*ny, nrow, ncol)
	}
}
