package wgmode

import "github.com/cpmech/waveguide/sparse"

// DerivMats bundles the four finite-difference operators used throughout
// the eigen-problem assembler (component D): Dxf, Dxb along the x axis and
// Dyf, Dyb along the y axis, each N x N with N = Nx*Ny.
type DerivMats struct {
	Dxf, Dxb, Dyf, Dyb *sparse.CSR
}

// ravel returns the column-major index j*Nx+i used throughout the solver.
func ravel(i, j, nx int) int { return j*nx + i }

// BuildDerivatives assembles the four forward/backward difference
// operators (component A). dlf and dlb are the primal and dual step
// sequences per axis (gridspec.StepsForward/StepsBackward); dminPMC[a]
// requests a PMC boundary at the near edge of axis a instead of the
// default PEC.
func BuildDerivatives(nx, ny int, dlf, dlb [2][]float64, dminPMC [2]bool) *DerivMats {
	n := nx * ny
	return &DerivMats{
		Dxf: buildForward(nx, ny, n, dlf[0], true),
		Dyf: buildForward(nx, ny, n, dlf[1], false),
		Dxb: buildBackward(nx, ny, n, dlb[0], true, dminPMC[0]),
		Dyb: buildBackward(nx, ny, n, dlb[1], false, dminPMC[1]),
	}
}

// buildForward assembles Dxf (alongX=true) or Dyf (alongX=false). PEC at
// the far boundary forces the field to zero there, so the out-of-domain
// neighbor term is simply dropped (spec §4.A).
func buildForward(nx, ny, n int, dl []float64, alongX bool) *sparse.CSR {
	t := sparse.NewTriplet(n, n, 2*n)
	nAxis := nx
	if !alongX {
		nAxis = ny
	}
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			row := ravel(i, j, nx)
			var k int
			if alongX {
				k = i
			} else {
				k = j
			}
			inv := 1 / dl[k]
			t.Put(row, row, -inv)
			if k < nAxis-1 {
				var col int
				if alongX {
					col = ravel(i+1, j, nx)
				} else {
					col = ravel(i, j+1, nx)
				}
				t.Put(row, col, inv)
			}
			// k == nAxis-1: far-boundary PEC, neighbor term dropped.
		}
	}
	return t.ToCSR()
}

// buildBackward assembles Dxb (alongX=true) or Dyb (alongX=false). At the
// near boundary the missing neighbor is either dropped (PEC, default) or
// mirrored (PMC), which cancels the diagonal term entirely (spec §4.A).
func buildBackward(nx, ny, n int, dl []float64, alongX bool, pmc bool) *sparse.CSR {
	t := sparse.NewTriplet(n, n, 2*n)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			row := ravel(i, j, nx)
			var k int
			if alongX {
				k = i
			} else {
				k = j
			}
			inv := 1 / dl[k]
			if k == 0 {
				if pmc {
					// mirrored neighbor equals the cell itself: the
					// difference, and hence this row, vanishes.
					continue
				}
				t.Put(row, row, inv)
				continue
			}
			t.Put(row, row, inv)
			var col int
			if alongX {
				col = ravel(i-1, j, nx)
			} else {
				col = ravel(i, j-1, nx)
			}
			t.Put(row, col, -inv)
		}
	}
	return t.ToCSR()
}
