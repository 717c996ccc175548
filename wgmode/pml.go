package wgmode

import (
	"math"

	"github.com/cpmech/waveguide/sparse"
)

// pmlOrder is the polynomial grading order of the conductivity profile
// (spec §4.B: "order-3 polynomial by default").
const pmlOrder = 3.0

// pmlSigmaScale tunes the peak conductivity relative to the textbook
// optimal-reflection estimate (order+1)/(2*eta0*dlMin); 1.0 matches that
// estimate directly.
const pmlSigmaScale = 1.0

// PMLMats bundles the four diagonal stretching operators, one per
// derivative direction (component B).
type PMLMats struct {
	Sxf, Sxb, Syf, Syb *sparse.CSR
}

// BuildPMLMatrices assembles the PML S-matrices for a cross-section of
// shape (nx,ny). dlf/dlb are the primal/dual step sequences per axis;
// numPML is the PML cell count per axis (both near and far edge); a false
// dminPML[a] disables the near-edge PML on axis a, for an axis whose near
// edge coincides with a symmetry plane (spec §4.B).
func BuildPMLMatrices(omega float64, nx, ny int, numPML [2]int, dlf, dlb [2][]float64, dminPML [2]bool) *PMLMats {
	sxf := pmlStretch(dlf[0], numPML[0], dminPML[0], omega)
	sxb := pmlStretch(dlb[0], numPML[0], dminPML[0], omega)
	syf := pmlStretch(dlf[1], numPML[1], dminPML[1], omega)
	syb := pmlStretch(dlb[1], numPML[1], dminPML[1], omega)

	return &PMLMats{
		Sxf: broadcastAxisDiag(sxf, nx, ny, true),
		Sxb: broadcastAxisDiag(sxb, nx, ny, true),
		Syf: broadcastAxisDiag(syf, nx, ny, false),
		Syb: broadcastAxisDiag(syb, nx, ny, false),
	}
}

// pmlStretch returns, for a single axis, the element-wise inverse of the
// complex stretching factor s(x) = 1 + sigma(x)/(i*omega*eps0) at every
// grid point along that axis (spec §4.B).
func pmlStretch(dl []float64, numPML int, dminPML bool, omega float64) []complex128 {
	n := len(dl)
	pos := make([]float64, n)
	acc := 0.0
	for i, d := range dl {
		pos[i] = acc
		acc += d
	}
	total := acc

	s := make([]complex128, n)
	for i := range s {
		s[i] = 1
	}
	if numPML <= 0 || numPML > n {
		return invert(s)
	}

	sigmaMax := pmlSigmaScale * (pmlOrder + 1) / (2 * Eta0 * minStep(dl))

	if dminPML {
		thickness := sumFirst(dl, numPML)
		if thickness > 0 {
			for i := 0; i < numPML; i++ {
				t := (thickness - pos[i]) / thickness
				s[i] = stretchFactor(sigmaMax*math.Pow(t, pmlOrder), omega)
			}
		}
	}

	thicknessFar := sumLast(dl, numPML)
	if thicknessFar > 0 {
		for i := n - numPML; i < n; i++ {
			distFromRight := total - pos[i] - dl[i]
			t := (thicknessFar - distFromRight) / thicknessFar
			s[i] *= stretchFactor(sigmaMax*math.Pow(t, pmlOrder), omega)
		}
	}

	return invert(s)
}

func stretchFactor(sigma, omega float64) complex128 {
	return complex(1, 0) + complex(0, -sigma/(omega*Eps0))
}

func invert(s []complex128) []complex128 {
	out := make([]complex128, len(s))
	for i, v := range s {
		out[i] = 1 / v
	}
	return out
}

func minStep(dl []float64) float64 {
	m := dl[0]
	for _, d := range dl[1:] {
		if d < m {
			m = d
		}
	}
	return m
}

func sumFirst(dl []float64, k int) float64 {
	s := 0.0
	for i := 0; i < k; i++ {
		s += dl[i]
	}
	return s
}

func sumLast(dl []float64, k int) float64 {
	s := 0.0
	for i := len(dl) - k; i < len(dl); i++ {
		s += dl[i]
	}
	return s
}

// broadcastAxisDiag spreads a length-Nx (alongX) or length-Ny (!alongX)
// per-axis factor sequence across the full N=Nx*Ny diagonal.
func broadcastAxisDiag(axisVals []complex128, nx, ny int, alongX bool) *sparse.CSR {
	n := nx * ny
	d := make([]complex128, n)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			var v complex128
			if alongX {
				v = axisVals[i]
			} else {
				v = axisVals[j]
			}
			d[ravel(i, j, nx)] = v
		}
	}
	return sparse.NewDiag(d)
}

// ApplyPML normalizes a raw derivative operator by its PML stretching and
// by the free-space wavenumber k0, producing the operator the eigenvalue
// assembler actually uses: D' = S.D/k0 (spec §4.B).
func ApplyPML(s, d *sparse.CSR, k0 float64) *sparse.CSR {
	return s.Dot(d).Scale(complex(1/k0, 0))
}
