// Package fields provides concrete implementations of the field-data
// collaborators the near-field-to-far-field projector is handed by the
// surrounding simulation framework (spec §6): ScalarArray, FieldData,
// FieldMonitor and SimulationData, grounded on tidy3d's
// components/data/monitor_data.py DataArray-based field records.
package fields

import (
	"sort"

	"github.com/cpmech/gosl/chk"
)

// ScalarArray is one named field component sampled on a rectilinear
// (x,y,z,freq) grid -- the Go analogue of a ScalarFieldDataArray.
type ScalarArray struct {
	X, Y, Z []float64
	Freqs   []float64
	Values  [][][][]complex128 // indexed [xi][yi][zi][fi]
}

// NewScalarArray allocates a zeroed array over the given coordinates.
func NewScalarArray(x, y, z, freqs []float64) ScalarArray {
	vals := make([][][][]complex128, len(x))
	for i := range vals {
		vals[i] = make([][][]complex128, len(y))
		for j := range vals[i] {
			vals[i][j] = make([][]complex128, len(z))
			for k := range vals[i][j] {
				vals[i][j][k] = make([]complex128, len(freqs))
			}
		}
	}
	return ScalarArray{X: x, Y: y, Z: z, Freqs: freqs, Values: vals}
}

// Copy deep-copies the array (mirroring ScalarArray.copy(update=...), used
// here without the update since this port keeps field records immutable).
func (s ScalarArray) Copy() ScalarArray {
	out := NewScalarArray(append([]float64(nil), s.X...), append([]float64(nil), s.Y...),
		append([]float64(nil), s.Z...), append([]float64(nil), s.Freqs...))
	for i := range s.Values {
		for j := range s.Values[i] {
			for k := range s.Values[i][j] {
				copy(out.Values[i][j][k], s.Values[i][j][k])
			}
		}
	}
	return out
}

// Scale returns a copy of s with every value multiplied by factor (used by
// the surface-current extractor's sign conventions).
func (s ScalarArray) Scale(factor float64) ScalarArray {
	out := s.Copy()
	f := complex(factor, 0)
	for i := range out.Values {
		for j := range out.Values[i] {
			for k := range out.Values[i][j] {
				for l := range out.Values[i][j][k] {
					out.Values[i][j][k][l] *= f
				}
			}
		}
	}
	return out
}

// ZerosLike returns a zero-valued array with the same coordinates as s.
func (s ScalarArray) ZerosLike() ScalarArray {
	return NewScalarArray(append([]float64(nil), s.X...), append([]float64(nil), s.Y...),
		append([]float64(nil), s.Z...), append([]float64(nil), s.Freqs...))
}

// FreqIndex returns the index of the stored frequency matching freqHz
// within 1 Hz, panicking otherwise: callers are expected to only ask for
// frequencies the monitor was actually recorded at.
func (s ScalarArray) FreqIndex(freqHz float64) int {
	for i, f := range s.Freqs {
		if abs64(f-freqHz) < 1 {
			return i
		}
	}
	chk.Panic("fields: frequency %g Hz not present in this monitor's recorded frequencies %v", freqHz, s.Freqs)
	return -1
}

func abs64(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Colocate linearly interpolates the array onto new x,y,z coordinates,
// keeping all recorded frequencies (spec's ".colocate(x,y,z)"). Points
// outside the original bounds are clamped to the nearest edge.
func (s ScalarArray) Colocate(x, y, z []float64) ScalarArray {
	out := NewScalarArray(x, y, z, s.Freqs)
	for fi := range s.Freqs {
		for xi, xv := range x {
			i0, i1, tx := locate(s.X, xv)
			for yi, yv := range y {
				j0, j1, ty := locate(s.Y, yv)
				for zi, zv := range z {
					k0, k1, tz := locate(s.Z, zv)
					out.Values[xi][yi][zi][fi] = trilerp(s.Values, i0, i1, tx, j0, j1, ty, k0, k1, tz, fi)
				}
			}
		}
	}
	return out
}

// locate finds the bracketing indices and interpolation weight of v within
// a sorted coordinate axis, clamping to the domain edges.
func locate(axis []float64, v float64) (lo, hi int, t float64) {
	if len(axis) == 1 {
		return 0, 0, 0
	}
	idx := sort.SearchFloat64s(axis, v)
	if idx <= 0 {
		return 0, 0, 0
	}
	if idx >= len(axis) {
		return len(axis) - 1, len(axis) - 1, 0
	}
	lo, hi = idx-1, idx
	span := axis[hi] - axis[lo]
	if span == 0 {
		return lo, hi, 0
	}
	t = (v - axis[lo]) / span
	return lo, hi, t
}

func trilerp(v [][][][]complex128, i0, i1 int, tx float64, j0, j1 int, ty float64, k0, k1 int, tz float64, fi int) complex128 {
	c00 := v[i0][j0][k0][fi]*complex(1-tx, 0) + v[i1][j0][k0][fi]*complex(tx, 0)
	c01 := v[i0][j0][k1][fi]*complex(1-tx, 0) + v[i1][j0][k1][fi]*complex(tx, 0)
	c10 := v[i0][j1][k0][fi]*complex(1-tx, 0) + v[i1][j1][k0][fi]*complex(tx, 0)
	c11 := v[i0][j1][k1][fi]*complex(1-tx, 0) + v[i1][j1][k1][fi]*complex(tx, 0)
	c0 := c00*complex(1-ty, 0) + c10*complex(ty, 0)
	c1 := c01*complex(1-ty, 0) + c11*complex(ty, 0)
	return c0*complex(1-tz, 0) + c1*complex(tz, 0)
}
