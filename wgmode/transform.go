package wgmode

import "math"

// RadialTransform restores translational invariance along a bent waveguide
// by substituting the coordinate along bendAxis with arc length w = R*phi,
// treating the incoming bendAxis coordinate array as an angle in radians
// (spec §4.C). centersOther holds the cell-center coordinate of the
// non-bend axis at every point of the N-point grid, measured from the bend
// center; it sets the (1+u/R) metric factor on the bend-axis row of the
// Jacobian.
func RadialTransform(coords [2][]float64, centersOther []float64, bendRadius float64, bendAxis int) (newCoords [2][]float64, jacE, jacH *Tensor) {
	newCoords = coords
	newCoords[bendAxis] = make([]float64, len(coords[bendAxis]))
	for i, phi := range coords[bendAxis] {
		newCoords[bendAxis][i] = bendRadius * phi
	}

	n := len(centersOther)
	j := IdentityMuTensor(n)
	for p, u := range centersOther {
		j.Set(bendAxis, bendAxis, p, complex(1+u/bendRadius, 0))
	}
	return newCoords, j, j.Clone()
}

// AngledTransform tilts the invariance (propagation) axis by polar angle
// theta and azimuth phi via a constant shear Jacobian identical at every
// grid point (spec §4.C): the in-plane axes are left alone and the
// propagation axis picks up a secant scaling plus an in-plane shear so
// that a plane wave along the tilted axis appears, in the transformed
// frame, as one propagating along z with wavevector (kxy*sin(phi),
// kxy*cos(phi), kz) -- see KpToK below.
func AngledTransform(n int, angleTheta, anglePhi float64) (jacE, jacH *Tensor) {
	j := NewTensor(n)
	tanT := math.Tan(angleTheta)
	secT := 1 / math.Cos(angleTheta)
	for p := 0; p < n; p++ {
		j.Set(0, 0, p, 1)
		j.Set(1, 1, p, 1)
		j.Set(0, 2, p, complex(-tanT*math.Cos(anglePhi), 0))
		j.Set(1, 2, p, complex(-tanT*math.Sin(anglePhi), 0))
		j.Set(2, 2, p, complex(secT, 0))
	}
	return j, j.Clone()
}

// KpToK returns the transformed-frame-to-original-frame wavevector scaling
// used to rescale target_neff into the transformed coordinates and to
// rescale the solved neff back at the end (spec §4.C, solver.go's
// compute_modes).
func KpToK(angleTheta, anglePhi float64) [3]float64 {
	kxy := math.Cos(angleTheta) * math.Cos(angleTheta)
	kz := math.Cos(angleTheta) * math.Sin(angleTheta)
	return [3]float64{kxy * math.Sin(anglePhi), kxy * math.Cos(anglePhi), kz}
}

func norm3(v [3]float64) float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}
