package nearfar

import (
	"math"

	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/floats"

	"github.com/cpmech/waveguide/medium"
	"github.com/cpmech/waveguide/wgmode"
)

// defaultPtsPerWavelength is the sampling density used when the projector's
// Resample flag is set and the caller does not override it (spec §4.H).
const defaultPtsPerWavelength = 10.0

// Resampled holds a Currents record together with the grid it was sampled
// on, since a resampled surface's grid differs from the Yee grid its
// FieldData originally carried.
type Resampled struct {
	X, Y, Z  []float64
	Currents Currents
}

// ResampleAtCenters implements the resample=false branch of component H:
// the currents are left exactly where the Yee grid already colocated them,
// with no further interpolation.
func ResampleAtCenters(c Currents) Resampled {
	x, y, z := c.Jx.X, c.Jx.Y, c.Jx.Z
	if len(x) == 0 {
		x, y, z = c.Jy.X, c.Jy.Y, c.Jy.Z
	}
	return Resampled{X: x, Y: y, Z: z, Currents: c}
}

// ResampleRegular implements the resample=true branch of component H: the
// currents are regridded onto a regular lattice of density
// ptsPerWavelength samples per wavelength in the background medium
// (c0/f/n) at the surface's highest recorded frequency, clipped to the
// overlap of the monitor and
// the simulation bounding boxes.
func ResampleRegular(s Surface, c Currents, simCenter, simSize [3]float64, bg medium.Medium, ptsPerWavelength float64) Resampled {
	if ptsPerWavelength <= 0 {
		ptsPerWavelength = defaultPtsPerWavelength
	}
	fMax := maxFreq(s.Monitor.Freqs)
	eps := bg.EpsModel(fMax)
	n, _ := medium.EpsComplexToNK(eps)
	lambda := wgmode.C0 / fMax / n

	axis := s.Axis()
	grids := make([][]float64, 3)
	for ax := 0; ax < 3; ax++ {
		if ax == axis {
			grids[ax] = []float64{s.Monitor.Center[ax]}
			continue
		}
		lo := utl.Max(s.Monitor.Center[ax]-s.Monitor.Size[ax]/2, simCenter[ax]-simSize[ax]/2)
		hi := utl.Min(s.Monitor.Center[ax]+s.Monitor.Size[ax]/2, simCenter[ax]+simSize[ax]/2)
		n := numSamples(ptsPerWavelength, hi-lo, lambda)
		grids[ax] = linspace(lo, hi, n)
	}

	rc := Currents{
		Jx: c.Jx.Colocate(grids[0], grids[1], grids[2]),
		Jy: c.Jy.Colocate(grids[0], grids[1], grids[2]),
		Jz: c.Jz.Colocate(grids[0], grids[1], grids[2]),
		Mx: c.Mx.Colocate(grids[0], grids[1], grids[2]),
		My: c.My.Colocate(grids[0], grids[1], grids[2]),
		Mz: c.Mz.Colocate(grids[0], grids[1], grids[2]),
	}
	return Resampled{X: grids[0], Y: grids[1], Z: grids[2], Currents: rc}
}

func maxFreq(freqs []float64) float64 {
	m, _ := floats.Max(freqs)
	return m
}

// numSamples rounds up pts_per_wavelength*(span/lambda) to the nearest
// integer, with at least one sample (spec §4.H).
func numSamples(ptsPerWavelength, span, lambda float64) int {
	return int(utl.Max(1, math.Ceil(ptsPerWavelength*span/lambda)))
}

func linspace(lo, hi float64, n int) []float64 {
	if n <= 1 {
		return []float64{lo}
	}
	return utl.LinSpace(lo, hi, n)
}
