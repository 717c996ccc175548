package wgmode

// SortBy selects how ComputeModes orders the returned modes (component F).
type SortBy int

const (
	// LargestNeff sorts by descending effective index: in the diagonal
	// regime by descending -Re(lambda) = neff^2-keff^2, in the tensorial
	// regime by descending Im(lambda) = neff.
	LargestNeff SortBy = iota
	// TEFraction sorts by descending sum|Ex|^2 / sum|Exy|^2.
	TEFraction
	// TMFraction sorts by descending sum|Ey|^2 / sum|Exy|^2.
	TMFraction
)

// Spec configures the mode solver (spec §3, "ModeSpec"). Zero value is not
// meaningful on its own -- construct via NewSpec and call Validate.
type Spec struct {
	NumModes int // number of eigenmodes requested, > 0

	// TargetNeff is the shift-invert initial guess. Nil means "derive it
	// from the max |eps| in the cross-section", mirroring the optional
	// numeric-parameter convention the teacher uses for stage parameters
	// that default when unset.
	TargetNeff *float64

	NumPML [2]int // PML cell count per transverse axis (x, y)

	// BendRadius is nil for a straight waveguide; otherwise the bend
	// radius (same length unit as the grid coordinates).
	BendRadius *float64
	BendAxis   int // 0 or 1: which in-plane axis is the bend axis

	AngleTheta float64 // polar tilt, radians (0 = normal incidence)
	AnglePhi   float64 // azimuth, radians

	SortBy SortBy

	// Verbose turns on gosl/io progress printing in ComputeModes, matching
	// the teacher's domain-level Verbose convention.
	Verbose bool
}

// NewSpec returns a Spec for numModes modes with the common defaults: no
// PML, no bend, no tilt, sorted by largest neff.
func NewSpec(numModes int) Spec {
	return Spec{NumModes: numModes, SortBy: LargestNeff}
}

// Validate checks the structural invariants of a Spec; this is the single
// entry point design notes §9 calls for instead of scattered field checks.
func (s Spec) Validate() error {
	if s.NumModes <= 0 {
		return errInvalidPermittivityShape("wgmode: num_modes must be positive, got %d", s.NumModes)
	}
	if s.NumPML[0] < 0 || s.NumPML[1] < 0 {
		return errInvalidPermittivityShape("wgmode: num_pml entries must be non-negative, got %v", s.NumPML)
	}
	if s.BendAxis != 0 && s.BendAxis != 1 {
		return errInvalidPermittivityShape("wgmode: bend_axis must be 0 or 1, got %d", s.BendAxis)
	}
	return nil
}
