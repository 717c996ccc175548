package wgmode

import (
	"math"
	"sort"
)

// ModeFields holds one solved mode's six field components (each length N,
// the cross-section point count) plus its complex effective index split
// into real/imaginary parts. solveDiagonal and solveTensorial produce them
// in the solver's own (possibly transformed) coordinate frame;
// TransformFieldsBack, and hence ComputeModes, returns them on the
// original cross-section axes.
type ModeFields struct {
	E, H       [3][]complex128
	Neff, Keff float64
}

// solveDiagonal runs solver_diagonal: eigenvalues of the assembled system
// are -(neff+i*keff)^2; H, Ez, Hz are reconstructed from the eigenvectors
// (spec §4.D/§4.E).
func solveDiagonal(eps, mu *Tensor, d *DerivMats, numModes int, neffGuess float64) ([]ModeFields, error) {
	sys := AssembleDiagonal(eps, mu, d)
	n := eps.N

	guess := complex(-(neffGuess * neffGuess), 0)
	eigs, err := ShiftInvertEigs(sys.Mat, numModes, guess)
	if err != nil {
		return nil, err
	}

	type raw struct {
		vre, vim float64
		vec      []complex128
	}
	raws := make([]raw, len(eigs))
	for i, e := range eigs {
		raws[i] = raw{vre: -real(e.Value), vim: -imag(e.Value), vec: e.Vector}
	}
	sort.Slice(raws, func(i, j int) bool { return raws[i].vre > raws[j].vre })

	out := make([]ModeFields, len(raws))
	for i, r := range raws {
		neff := math.Sqrt(r.vre/2 + math.Sqrt(r.vre*r.vre+r.vim*r.vim)/2)
		keff := r.vim / 2 / (neff + 1e-10)

		ex := r.vec[:n]
		ey := r.vec[n:]

		hfield := sys.QMat.MulVec(r.vec)
		denom := complex(0, neff) - complex(keff, 0)
		hx := scaleVec(hfield[:n], 1/denom)
		hy := scaleVec(hfield[n:], 1/denom)

		hz := sys.InvMuZZ.MulVec(subVec(d.Dxf.MulVec(ey), d.Dyf.MulVec(ex)))
		ez := sys.InvEpsZZ.MulVec(subVec(d.Dxb.MulVec(hy), d.Dyb.MulVec(hx)))

		hConv := complex(0, -1) / complex(Eta0, 0)
		out[i] = ModeFields{
			E:    [3][]complex128{ex, ey, ez},
			H:    [3][]complex128{scaleVec(hx, hConv), scaleVec(hy, hConv), scaleVec(hz, hConv)},
			Neff: neff,
			Keff: keff,
		}
	}
	return out, nil
}

// solveTensorial runs solver_tensorial: eigenvalues are i*(neff+i*keff)
// directly (spec §4.D/§4.E).
func solveTensorial(eps, mu *Tensor, d *DerivMats, numModes int, neffGuess float64) ([]ModeFields, error) {
	sys := AssembleTensorial(eps, mu, d)
	n := eps.N

	guess := complex(0, 1) * complex(neffGuess, 0)
	eigs, err := ShiftInvertEigs(sys.Mat, numModes, guess)
	if err != nil {
		return nil, err
	}

	type raw struct {
		neff, keff float64
		vec        []complex128
	}
	raws := make([]raw, len(eigs))
	for i, e := range eigs {
		raws[i] = raw{neff: imag(e.Value), keff: -real(e.Value), vec: e.Vector}
	}
	sort.Slice(raws, func(i, j int) bool { return raws[i].neff > raws[j].neff })

	out := make([]ModeFields, len(raws))
	for i, r := range raws {
		ex := r.vec[:n]
		ey := r.vec[n : 2*n]
		hx := r.vec[2*n : 3*n]
		hy := r.vec[3*n:]

		hxyTerm := subVec(scaleVec(mulVec(mu.Plane(2, 0), hx), -1), mulVec(mu.Plane(2, 1), hy))
		hz := sys.InvMuZZ.MulVec(addVec(subVec(d.Dxf.MulVec(ey), d.Dyf.MulVec(ex)), hxyTerm))
		exyTerm := subVec(scaleVec(mulVec(eps.Plane(2, 0), ex), -1), mulVec(eps.Plane(2, 1), ey))
		ez := sys.InvEpsZZ.MulVec(addVec(subVec(d.Dxb.MulVec(hy), d.Dyb.MulVec(hx)), exyTerm))

		hConv := complex(0, -1) / complex(Eta0, 0)
		out[i] = ModeFields{
			E:    [3][]complex128{ex, ey, ez},
			H:    [3][]complex128{scaleVec(hx, hConv), scaleVec(hy, hConv), scaleVec(hz, hConv)},
			Neff: r.neff,
			Keff: r.keff,
		}
	}
	return out, nil
}

func scaleVec(v []complex128, s complex128) []complex128 {
	out := make([]complex128, len(v))
	for i, x := range v {
		out[i] = s * x
	}
	return out
}

func mulVec(a, b []complex128) []complex128 {
	out := make([]complex128, len(a))
	for i := range a {
		out[i] = a[i] * b[i]
	}
	return out
}

func subVec(a, b []complex128) []complex128 {
	out := make([]complex128, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}
	return out
}

func addVec(a, b []complex128) []complex128 {
	out := make([]complex128, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}
	return out
}
