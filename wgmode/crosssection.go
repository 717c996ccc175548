package wgmode

// CrossSection holds the relative permittivity samples at the Ex, Ey, Ez
// Yee-grid locations of a waveguide cross-section (spec §3, "eps_cross").
// Each slice has Nx*Ny entries in the column-major order ravel(i,j,nx) =
// j*nx+i used throughout this package.
type CrossSection struct {
	Nx, Ny               int
	EpsXX, EpsYY, EpsZZ []complex128
}

// NewUniformCrossSection builds a CrossSection with the same scalar
// permittivity at every Yee location, the common case for a step-index
// waveguide built from ConstantMedium collaborators.
func NewUniformCrossSection(nx, ny int, eps complex128) CrossSection {
	n := nx * ny
	xx := make([]complex128, n)
	yy := make([]complex128, n)
	zz := make([]complex128, n)
	for i := range xx {
		xx[i], yy[i], zz[i] = eps, eps, eps
	}
	return CrossSection{Nx: nx, Ny: ny, EpsXX: xx, EpsYY: yy, EpsZZ: zz}
}

// validate checks the CrossSection's internal shape invariants.
func (c CrossSection) validate() error {
	n := c.Nx * c.Ny
	if len(c.EpsXX) != n || len(c.EpsYY) != n || len(c.EpsZZ) != n {
		return errInvalidPermittivityShape(
			"wgmode: eps_cross components must each have Nx*Ny=%d entries, got %d/%d/%d",
			n, len(c.EpsXX), len(c.EpsYY), len(c.EpsZZ))
	}
	return nil
}
