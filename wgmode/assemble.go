package wgmode

import "github.com/cpmech/waveguide/sparse"

// offDiagThreshold is the magnitude above which eps/mu are treated as
// genuinely tensorial rather than diagonal (spec §4.D).
const offDiagThreshold = 1e-6

// diag wraps a Tensor plane as a diagonal sparse operator.
func diag(plane []complex128) *sparse.CSR { return sparse.NewDiag(plane) }

// diagInv wraps the element-wise reciprocal of a Tensor plane.
func diagInv(plane []complex128) *sparse.CSR {
	inv := make([]complex128, len(plane))
	for i, v := range plane {
		inv[i] = 1 / v
	}
	return sparse.NewDiag(inv)
}

// diagRatio wraps the element-wise ratio a/b as a diagonal operator.
func diagRatio(a, b []complex128) *sparse.CSR {
	out := make([]complex128, len(a))
	for i := range a {
		out[i] = a[i] / b[i]
	}
	return sparse.NewDiag(out)
}

// DiagonalSystem holds the assembled blocks for the diagonal eps/mu regime
// (spec §4.D, solver_diagonal). Mat = P.Q is what the eigensolver
// diagonalizes; QMat is kept to recover H from the eigenvectors afterwards.
type DiagonalSystem struct {
	Mat, QMat    *sparse.CSR
	InvEpsZZ     *sparse.CSR
	InvMuZZ      *sparse.CSR
}

// AssembleDiagonal builds the diagonal-regime system (solver_diagonal).
func AssembleDiagonal(eps, mu *Tensor, d *DerivMats) *DiagonalSystem {
	invEpsZZ := diagInv(eps.Plane(2, 2))
	invMuZZ := diagInv(mu.Plane(2, 2))
	muYY := diag(mu.Plane(1, 1))
	muXX := diag(mu.Plane(0, 0))
	epsYY := diag(eps.Plane(1, 1))
	epsXX := diag(eps.Plane(0, 0))

	p11 := d.Dxf.Dot(invEpsZZ).Dot(d.Dyb).Scale(-1)
	p12 := d.Dxf.Dot(invEpsZZ).Dot(d.Dxb).Add(muYY)
	p21 := d.Dyf.Dot(invEpsZZ).Dot(d.Dyb).Scale(-1).Sub(muXX)
	p22 := d.Dyf.Dot(invEpsZZ).Dot(d.Dxb)

	q11 := d.Dxb.Dot(invMuZZ).Dot(d.Dyf).Scale(-1)
	q12 := d.Dxb.Dot(invMuZZ).Dot(d.Dxf).Add(epsYY)
	q21 := d.Dyb.Dot(invMuZZ).Dot(d.Dyf).Scale(-1).Sub(epsXX)
	q22 := d.Dyb.Dot(invMuZZ).Dot(d.Dxf)

	pmat := sparse.Block([][]*sparse.CSR{{p11, p12}, {p21, p22}})
	qmat := sparse.Block([][]*sparse.CSR{{q11, q12}, {q21, q22}})

	return &DiagonalSystem{
		Mat:      pmat.Dot(qmat),
		QMat:     qmat,
		InvEpsZZ: invEpsZZ,
		InvMuZZ:  invMuZZ,
	}
}

// TensorialSystem holds the assembled 4N x 4N system for the general
// tensorial eps/mu regime (spec §4.D, solver_tensorial).
type TensorialSystem struct {
	Mat             *sparse.CSR
	InvEpsZZ        *sparse.CSR
	InvMuZZ         *sparse.CSR
}

// AssembleTensorial builds the tensorial-regime system (solver_tensorial).
func AssembleTensorial(eps, mu *Tensor, d *DerivMats) *TensorialSystem {
	invEpsZZ := diagInv(eps.Plane(2, 2))
	invMuZZ := diagInv(mu.Plane(2, 2))

	epsR := func(i, j int) *sparse.CSR { return diagRatio(eps.Plane(i, j), eps.Plane(2, 2)) }
	muR := func(i, j int) *sparse.CSR { return diagRatio(mu.Plane(i, j), mu.Plane(2, 2)) }

	// crossTerm(t,row,col) = t[row,col] - t[row,2]*t[2,col]/t[2,2], the
	// zz-elimination term appearing in every off-diagonal coupling block.
	crossTerm := func(t *Tensor, row, col int) []complex128 {
		a, b, c, zz := t.Plane(row, col), t.Plane(row, 2), t.Plane(2, col), t.Plane(2, 2)
		out := make([]complex128, len(a))
		for n := range a {
			out[n] = a[n] - b[n]*c[n]/zz[n]
		}
		return out
	}

	axax := d.Dxf.Dot(epsR(2, 0)).Scale(-1).Sub(muR(1, 2).Dot(d.Dyf))
	axay := d.Dxf.Dot(epsR(2, 1)).Scale(-1).Add(muR(1, 2).Dot(d.Dxf))
	axbx := d.Dxf.Dot(invEpsZZ).Dot(d.Dyb).Scale(-1).Add(diag(crossTerm(mu, 1, 0)))
	axby := d.Dxf.Dot(invEpsZZ).Dot(d.Dxb).Add(diag(crossTerm(mu, 1, 1)))

	ayax := d.Dyf.Dot(epsR(2, 0)).Scale(-1).Add(muR(0, 2).Dot(d.Dyf))
	ayay := d.Dyf.Dot(epsR(2, 1)).Scale(-1).Sub(muR(0, 2).Dot(d.Dxf))
	aybx := d.Dyf.Dot(invEpsZZ).Dot(d.Dyb).Scale(-1).Add(diag(negPlane(crossTerm(mu, 0, 0))))
	ayby := d.Dyf.Dot(invEpsZZ).Dot(d.Dxb).Add(diag(negPlane(crossTerm(mu, 0, 1))))

	bxbx := d.Dxb.Dot(muR(2, 0)).Scale(-1).Sub(epsR(1, 2).Dot(d.Dyb))
	bxby := d.Dxb.Dot(muR(2, 1)).Scale(-1).Add(epsR(1, 2).Dot(d.Dxb))
	bxax := d.Dxb.Dot(invMuZZ).Dot(d.Dyf).Scale(-1).Add(diag(crossTerm(eps, 1, 0)))
	bxay := d.Dxb.Dot(invMuZZ).Dot(d.Dxf).Add(diag(crossTerm(eps, 1, 1)))

	bybx := d.Dyb.Dot(muR(2, 0)).Scale(-1).Add(epsR(0, 2).Dot(d.Dyb))
	byby := d.Dyb.Dot(muR(2, 1)).Scale(-1).Sub(epsR(0, 2).Dot(d.Dxb))
	byax := d.Dyb.Dot(invMuZZ).Dot(d.Dyf).Scale(-1).Add(diag(negPlane(crossTerm(eps, 0, 0))))
	byay := d.Dyb.Dot(invMuZZ).Dot(d.Dxf).Add(diag(negPlane(crossTerm(eps, 0, 1))))

	mat := sparse.Block([][]*sparse.CSR{
		{axax, axay, axbx, axby},
		{ayax, ayay, aybx, ayby},
		{bxax, bxay, bxbx, bxby},
		{byax, byay, bybx, byby},
	})

	return &TensorialSystem{Mat: mat, InvEpsZZ: invEpsZZ, InvMuZZ: invMuZZ}
}

func negPlane(p []complex128) []complex128 {
	out := make([]complex128, len(p))
	for i, v := range p {
		out[i] = -v
	}
	return out
}
