package nearfar

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/cmplxs"

	"github.com/cpmech/waveguide/fields"
	"github.com/cpmech/waveguide/medium"
	"github.com/cpmech/waveguide/wgmode"
)

// Angle is one (theta, phi) far-field observation direction, in radians,
// using the physics convention: theta measured from +z, phi measured from
// +x toward +y (spec §4.I).
type Angle struct {
	Theta, Phi float64
}

// directionCosines returns (sin(theta)cos(phi), sin(theta)sin(phi), cos(theta)).
func (a Angle) directionCosines() [3]float64 {
	st, ct := math.Sincos(a.Theta)
	sp, cp := math.Sincos(a.Phi)
	return [3]float64{st * cp, st * sp, ct}
}

// RadiationVectors holds the far-field radiation vector components N, L
// (spec's "Radiation-vector result"), one value per (frequency, angle)
// pair.
type RadiationVectors struct {
	Freqs  []float64
	Angles []Angle
	Ntheta [][]complex128 // [freqIdx][angleIdx]
	Nphi   [][]complex128
	Ltheta [][]complex128
	Lphi   [][]complex128
}

// NewRadiationVectors allocates a zeroed result over the given frequencies
// and angles, ready to accumulate across surfaces.
func NewRadiationVectors(freqs []float64, angles []Angle) *RadiationVectors {
	r := &RadiationVectors{Freqs: freqs, Angles: angles}
	for _, name := range []*[][]complex128{&r.Ntheta, &r.Nphi, &r.Ltheta, &r.Lphi} {
		*name = make([][]complex128, len(freqs))
		for i := range *name {
			(*name)[i] = make([]complex128, len(angles))
		}
	}
	return r
}

// IntegrateSurface implements component I for a single resampled surface:
// the equivalent currents are translated by -origin, multiplied by the
// outgoing-wave phase kernel, trapezoidally integrated over the surface,
// and combined into the spherical radiation-vector components via the
// Stratton-Chu/Balanis relations (8.33)-(8.34). Results are added into acc,
// one entry per (frequency, angle) -- callers integrate every surface of a
// projector into the same accumulator.
func IntegrateSurface(s Surface, r Resampled, origin [3]float64, bg medium.Medium, acc *RadiationVectors) {
	axis := s.Axis()
	tang := tangentialAxes(axis)

	coords := [3][]float64{r.X, r.Y, r.Z}
	var shifted [3][]float64
	for a := 0; a < 3; a++ {
		shifted[a] = make([]float64, len(coords[a]))
		for i, c := range coords[a] {
			shifted[a][i] = c - origin[a]
		}
	}

	w0 := trapWeights(shifted[tang[0]])
	w1 := trapWeights(shifted[tang[1]])
	normalCoord := shifted[axis][0]

	for fi, f := range acc.Freqs {
		eps := bg.EpsModel(f)
		n, _ := medium.EpsComplexToNK(eps)
		k := 2 * math.Pi * f / wgmode.C0 * n
		fidx := r.Currents.Jx.FreqIndex(f)

		for ai, ang := range acc.Angles {
			dc := ang.directionCosines()
			phase0 := phaseFactor(shifted[tang[0]], dc[tang[0]], k)
			phase1 := phaseFactor(shifted[tang[1]], dc[tang[1]], k)
			phaseNormal := cmplx.Exp(complex(0, -k*dc[axis]*normalCoord))

			nx := integrate2D(r.Currents.Jx, axis, fidx, phase0, phase1, w0, w1) * phaseNormal
			ny := integrate2D(r.Currents.Jy, axis, fidx, phase0, phase1, w0, w1) * phaseNormal
			nz := integrate2D(r.Currents.Jz, axis, fidx, phase0, phase1, w0, w1) * phaseNormal
			lx := integrate2D(r.Currents.Mx, axis, fidx, phase0, phase1, w0, w1) * phaseNormal
			ly := integrate2D(r.Currents.My, axis, fidx, phase0, phase1, w0, w1) * phaseNormal
			lz := integrate2D(r.Currents.Mz, axis, fidx, phase0, phase1, w0, w1) * phaseNormal

			st, ct := math.Sincos(ang.Theta)
			sp, cp := math.Sincos(ang.Phi)
			thetaProj := []complex128{complex(ct*cp, 0), complex(ct*sp, 0), complex(-st, 0)}
			phiProj := []complex128{complex(-sp, 0), complex(cp, 0), 0}
			// cmplxs.Dot conjugates its first argument, so the real
			// projection goes first to leave the currents unconjugated.
			ntheta := cmplxs.Dot(thetaProj, []complex128{nx, ny, nz})
			nphi := cmplxs.Dot(phiProj, []complex128{nx, ny, nz})
			ltheta := cmplxs.Dot(thetaProj, []complex128{lx, ly, lz})
			lphi := cmplxs.Dot(phiProj, []complex128{lx, ly, lz})

			acc.Ntheta[fi][ai] += ntheta
			acc.Nphi[fi][ai] += nphi
			acc.Ltheta[fi][ai] += ltheta
			acc.Lphi[fi][ai] += lphi
		}
	}
}

// tangentialAxes returns the two axis indices other than axis, in
// ascending order.
func tangentialAxes(axis int) [2]int {
	var out [2]int
	k := 0
	for a := 0; a < 3; a++ {
		if a == axis {
			continue
		}
		out[k] = a
		k++
	}
	return out
}

func phaseFactor(coords []float64, dirCos, k float64) []complex128 {
	out := make([]complex128, len(coords))
	for i, c := range coords {
		out[i] = cmplx.Exp(complex(0, -k*dirCos*c))
	}
	return out
}

// trapWeights returns the composite trapezoidal quadrature weight for each
// point of a (possibly non-uniform) 1D grid.
func trapWeights(coords []float64) []float64 {
	n := len(coords)
	w := make([]float64, n)
	if n == 1 {
		w[0] = 1
		return w
	}
	for i := 0; i < n; i++ {
		switch i {
		case 0:
			w[i] = 0.5 * (coords[1] - coords[0])
		case n - 1:
			w[i] = 0.5 * (coords[n-1] - coords[n-2])
		default:
			w[i] = 0.5 * (coords[i+1] - coords[i-1])
		}
	}
	return w
}

// axisLen returns the number of grid points of s along axis ax.
func axisLen(s fields.ScalarArray, ax int) int {
	switch ax {
	case 0:
		return len(s.X)
	case 1:
		return len(s.Y)
	default:
		return len(s.Z)
	}
}

// integrate2D performs the 2D trapezoidal integral of a single field
// component, sampled on the tangentialAxes(axis) grid at the surface's
// fixed normal coordinate, against the separable in-plane phase kernel.
func integrate2D(s fields.ScalarArray, axis, fidx int, phase0, phase1 []complex128, w0, w1 []float64) complex128 {
	tang := tangentialAxes(axis)
	n0, n1 := axisLen(s, tang[0]), axisLen(s, tang[1])
	var sum complex128
	var idx [3]int
	for i0 := 0; i0 < n0; i0++ {
		idx[tang[0]] = i0
		for i1 := 0; i1 < n1; i1++ {
			idx[tang[1]] = i1
			v := s.Values[idx[0]][idx[1]][idx[2]][fidx]
			sum += v * phase0[i0] * phase1[i1] * complex(w0[i0]*w1[i1], 0)
		}
	}
	return sum
}
