package wgmode

import "fmt"

// Kind identifies one of the mode-solver error taxonomy members from spec §7.
type Kind int

const (
	// InvalidPermittivityShape: eps_cross is neither a single 2D array nor
	// a matching 3-tuple of 2D arrays. Spec.Validate also reports invalid
	// num_modes, num_pml and bend_axis values under this kind.
	InvalidPermittivityShape Kind = iota
	// CoordsMismatch: coords[0].size != Nx+1 or coords[1].size != Ny+1.
	CoordsMismatch
	// NoEigenmodesFound: the eigensolver returned zero eigenpairs.
	NoEigenmodesFound
)

func (k Kind) String() string {
	switch k {
	case InvalidPermittivityShape:
		return "InvalidPermittivityShape"
	case CoordsMismatch:
		return "CoordsMismatch"
	case NoEigenmodesFound:
		return "NoEigenmodesFound"
	default:
		return "UnknownKind"
	}
}

// Error is the mode solver's fail-fast error type. All component-boundary
// failures (spec §7) surface as one of these; none are partial results.
type Error struct {
	Kind Kind
	msg  string
}

func (e *Error) Error() string { return e.msg }

func newError(k Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: k, msg: fmt.Sprintf(format, args...)}
}

func errInvalidPermittivityShape(format string, args ...interface{}) *Error {
	return newError(InvalidPermittivityShape, format, args...)
}

func errCoordsMismatch(format string, args ...interface{}) *Error {
	return newError(CoordsMismatch, format, args...)
}

func errNoEigenmodesFound(targetNeff float64) *Error {
	return newError(NoEigenmodesFound, "no eigenmodes found near target_neff=%g", targetNeff)
}
