// Package medium implements the background-material collaborator contract
// (spec §6: Medium.eps_model, Medium.eps_complex_to_nk) that the NF2FF
// projector depends on but does not itself define.
package medium

import (
	"math"
	"math/cmplx"

	"github.com/cpmech/gosl/fun/dbf"
)

// Medium gives the frequency-domain complex permittivity of a background
// or cladding material. A single Medium is queried at one frequency at a
// time by the NF2FF projector (to compute the background wavenumber and
// the resampling wavelength). The mode solver does not use it: it takes
// permittivity samples directly through wgmode.CrossSection.
type Medium interface {
	// EpsModel returns the relative complex permittivity at frequency (Hz).
	EpsModel(freqHz float64) complex128
}

// EpsComplexToNK splits a complex relative permittivity into refractive
// index n and extinction coefficient k, following eps = (n + i k)^2 with
// the branch that keeps n >= 0.
func EpsComplexToNK(eps complex128) (n, k float64) {
	root := cmplx.Sqrt(eps)
	return real(root), imag(root)
}

// ConstantMedium is a non-dispersive medium: eps(omega) does not depend on
// omega. It exists to give the scenarios in spec §8 (S1-S6) a concrete,
// runnable Medium without reintroducing the "dispersive materials in the
// eigenproblem" non-goal -- a constant-index medium's eps genuinely has no
// frequency dependence, so nothing dispersive is being modeled.
type ConstantMedium struct {
	N float64 // refractive index
	K float64 // extinction coefficient (0 for lossless)
}

// NewConstantMedium builds a ConstantMedium from a named parameter bundle,
// following the teacher's fun/dbf.Params convention for small configuration
// bags instead of a bespoke options struct.
func NewConstantMedium(prms dbf.Params) *ConstantMedium {
	m := &ConstantMedium{N: 1}
	for _, p := range prms {
		switch p.N {
		case "n":
			m.N = p.V
		case "k":
			m.K = p.V
		}
	}
	return m
}

// EpsModel implements Medium.
func (m *ConstantMedium) EpsModel(freqHz float64) complex128 {
	_ = freqHz
	n := complex(m.N, m.K)
	return n * n
}

// Vacuum is the trivial background medium (n=1, lossless).
var Vacuum = &ConstantMedium{N: 1}

// IsFinite reports whether a float64 is neither NaN nor +-Inf. Nothing in
// this module calls it: NewNear2Far accepts its origin without checking
// that the coordinates are finite.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
