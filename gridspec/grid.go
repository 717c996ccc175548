// Package gridspec builds the non-uniform rectilinear grid coordinates
// (spec §3, "Grid-plane") that the mode solver's cross-section and the
// NF2FF projector's surfaces are both defined on.
package gridspec

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/floats"
)

// Plane holds the two 1D arrays of primal cell-edge coordinates for a
// waveguide cross-section: Cx has Nx+1 entries, Cy has Ny+1 entries, both
// monotonically increasing.
type Plane struct {
	Cx, Cy []float64
}

// Dims returns the number of cells (Nx, Ny) implied by the coordinates.
func (p *Plane) Dims() (nx, ny int) {
	return len(p.Cx) - 1, len(p.Cy) - 1
}

// N returns Nx*Ny, the size of the raveled in-plane grid.
func (p *Plane) N() int {
	nx, ny := p.Dims()
	return nx * ny
}

// Validate checks the monotonicity invariant and that both axes describe
// at least one cell.
func (p *Plane) Validate() error {
	if len(p.Cx) < 2 || len(p.Cy) < 2 {
		return chk.Err("gridspec: coordinate arrays must have at least 2 entries, got %d and %d",
			len(p.Cx), len(p.Cy))
	}
	for _, c := range [][]float64{p.Cx, p.Cy} {
		for i := 1; i < len(c); i++ {
			if c[i] <= c[i-1] {
				return chk.Err("gridspec: coordinates must be strictly increasing, got %v at index %d", c, i)
			}
		}
	}
	return nil
}

// Linspace returns n evenly spaced points from start to stop, inclusive,
// mirroring numpy.linspace; UniformCoords builds on it.
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		chk.Panic("gridspec: Linspace requires n > 0, got %d", n)
	}
	return utl.LinSpace(start, stop, n)
}

// UniformCoords returns n+1 cell-edge coordinates evenly spaced in [start,stop],
// a convenience constructor for test fixtures and simple scripted cross
// sections (mirroring tidy3d's own hand-built test grids).
func UniformCoords(start, stop float64, n int) []float64 {
	return Linspace(start, stop, n+1)
}

// StepsForward returns dl_f, the primal grid step sequence coords[1:]-coords[:-1].
func StepsForward(coords []float64) []float64 {
	n := len(coords) - 1
	return floats.SubTo(make([]float64, n), coords[1:], coords[:n])
}

// CellCenters returns the midpoint of every cell defined by coords (length
// len(coords)-1), used by the bent-waveguide coordinate transform to find
// each point's offset from the bend center.
func CellCenters(coords []float64) []float64 {
	out := make([]float64, len(coords)-1)
	for i := range out {
		out[i] = (coords[i] + coords[i+1]) / 2
	}
	return out
}

// StepsBackward returns dl_b, the dual step sequence used by the backward
// derivative operators: the first dual step reuses the first primal step
// (spec §4.A's explicit tie-break convention), the rest are averages of
// adjacent primal steps.
func StepsBackward(dlf []float64) []float64 {
	n := len(dlf)
	out := make([]float64, n)
	out[0] = dlf[0]
	for i := 1; i < n; i++ {
		out[i] = (dlf[i-1] + dlf[i]) / 2
	}
	return out
}
