package wgmode

import (
	"math"
	"math/cmplx"

	"github.com/cpmech/gosl/io"

	"github.com/cpmech/waveguide/gridspec"
)

// ComputeModes solves for the eigenmodes of a waveguide cross-section
// (spec §4, the compute_modes orchestration of components A-F). coords
// holds the two corner-coordinate arrays (length Nx+1 and Ny+1); symmetry
// selects a PMC (1) vs PEC (0, default) condition at the near edge of each
// transverse axis.
func ComputeModes(cs CrossSection, coords [2][]float64, freqHz float64, spec Spec, symmetry [2]int) ([]ModeFields, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if err := cs.validate(); err != nil {
		return nil, err
	}
	if len(coords[0]) != cs.Nx+1 || len(coords[1]) != cs.Ny+1 {
		return nil, errCoordsMismatch("wgmode: coords sizes %d,%d do not match eps_cross shape %d,%d",
			len(coords[0]), len(coords[1]), cs.Nx, cs.Ny)
	}

	nx, ny := cs.Nx, cs.Ny
	n := nx * ny
	omega := 2 * math.Pi * freqHz
	k0 := omega / C0

	epsTensor := NewDiagonalTensor(cs.EpsXX, cs.EpsYY, cs.EpsZZ)
	muTensor := IdentityMuTensor(n)

	jacE := IdentityMuTensor(n)
	jacH := IdentityMuTensor(n)
	newCoords := coords

	if spec.BendRadius != nil {
		otherAxis := 1 - spec.BendAxis
		centers := gridspec.CellCenters(newCoords[otherAxis])
		centersPerPoint := broadcastCenters(centers, nx, ny, otherAxis)
		var bendJacE, bendJacH *Tensor
		newCoords, bendJacE, bendJacH = RadialTransform(newCoords, centersPerPoint, *spec.BendRadius, spec.BendAxis)
		jacE = bendJacE.MatMul(jacE)
		jacH = bendJacH.MatMul(jacH)
	}

	kpToK := [3]float64{0, 1, 0}
	if spec.AngleTheta > 0 {
		angJacE, angJacH := AngledTransform(n, spec.AngleTheta, spec.AnglePhi)
		jacE = angJacE.MatMul(jacE)
		jacH = angJacH.MatMul(jacH)
		kpToK = KpToK(spec.AngleTheta, spec.AnglePhi)
	}

	epsTensor = Sandwich(jacE, epsTensor)
	muTensor = Sandwich(jacH, muTensor)

	dminPMC := [2]bool{symmetry[0] == 1, symmetry[1] == 1}
	if !dminPMC[0] {
		for j := 0; j < ny; j++ {
			idx := ravel(0, j, nx)
			epsTensor.Set(1, 1, idx, complex(PECVal, 0))
			epsTensor.Set(2, 2, idx, complex(PECVal, 0))
		}
	}
	if ny > 1 && !dminPMC[1] {
		for i := 0; i < nx; i++ {
			idx := ravel(i, 0, nx)
			epsTensor.Set(0, 0, idx, complex(PECVal, 0))
			epsTensor.Set(2, 2, idx, complex(PECVal, 0))
		}
	}

	dlf := [2][]float64{gridspec.StepsForward(newCoords[0]), gridspec.StepsForward(newCoords[1])}
	dlb := [2][]float64{gridspec.StepsBackward(dlf[0]), gridspec.StepsBackward(dlf[1])}

	deriv := BuildDerivatives(nx, ny, dlf, dlb, dminPMC)
	dminPML := [2]bool{symmetry[0] == 0, symmetry[1] == 0}
	pml := BuildPMLMatrices(omega, nx, ny, spec.NumPML, dlf, dlb, dminPML)

	dPrime := &DerivMats{
		Dxf: ApplyPML(pml.Sxf, deriv.Dxf, k0),
		Dxb: ApplyPML(pml.Sxb, deriv.Dxb, k0),
		Dyf: ApplyPML(pml.Syf, deriv.Dyf, k0),
		Dyb: ApplyPML(pml.Syb, deriv.Dyb, k0),
	}

	target := targetNeff(spec, cs)
	targetNeffP := target / norm3(kpToK)

	tensorial := epsTensor.MaxOffDiagAbs() > offDiagThreshold || muTensor.MaxOffDiagAbs() > offDiagThreshold
	if spec.Verbose {
		io.Pf("wgmode: solving %d-cell cross-section for %d mode(s), target_neff=%v, tensorial=%v\n",
			n, spec.NumModes, target, tensorial)
	}

	var modes []ModeFields
	var err error
	if tensorial {
		modes, err = solveTensorial(epsTensor, muTensor, dPrime, spec.NumModes, targetNeffP)
	} else {
		modes, err = solveDiagonal(epsTensor, muTensor, dPrime, spec.NumModes, targetNeffP)
	}
	if err != nil {
		return nil, err
	}
	if spec.Verbose {
		io.Pf("wgmode: converged %d mode(s)\n", len(modes))
	}

	modes = SortModes(modes, spec.SortBy)
	modes = TransformFieldsBack(modes, jacE, jacH, kpToK)
	return modes, nil
}

// targetNeff picks the shift-invert initial guess: the user-supplied value,
// or sqrt(max|eps|) over the finite (non-PEC-tagged) permittivity samples.
func targetNeff(spec Spec, cs CrossSection) float64 {
	if spec.TargetNeff != nil {
		return *spec.TargetNeff
	}
	maxAbs := 0.0
	for _, plane := range [][]complex128{cs.EpsXX, cs.EpsYY, cs.EpsZZ} {
		for _, v := range plane {
			if cmplx.Abs(v) >= math.Abs(PECVal) {
				continue
			}
			if a := cmplx.Abs(v); a > maxAbs {
				maxAbs = a
			}
		}
	}
	return math.Sqrt(maxAbs)
}

// broadcastCenters spreads the per-axis cell-center sequence across the
// full N=Nx*Ny grid, matching the other axis's broadcast in BuildPMLMatrices.
func broadcastCenters(centers []float64, nx, ny, axis int) []float64 {
	out := make([]float64, nx*ny)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			var v float64
			if axis == 0 {
				v = centers[i]
			} else {
				v = centers[j]
			}
			out[ravel(i, j, nx)] = v
		}
	}
	return out
}
