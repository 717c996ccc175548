package wgmode

// Physical constants, reproduced to the precision spec §6 requires. They
// live next to the models that use them rather than in a shared constants
// grab-bag, matching how the teacher keeps material constants beside the
// models that consume them.
const (
	// C0 is the speed of light in the solver's internal length unit
	// (micrometers), i.e. micrometers*Hz (spec §6).
	C0 = 299792458580946.8
	// Eta0 is the impedance of free space, in Ohms.
	Eta0 = 376.730313668
	// PECVal is the sentinel permittivity denoting a perfect-electric-conductor cell.
	PECVal = -1e11
	// FpEps is the floating point epsilon used as the eigensolver convergence scale.
	FpEps = 2.220446049250313e-16
)

// Eps0 is the permittivity of free space, derived from Eta0 and C0.
var Eps0 = 1.0 / (Eta0 * C0)
