package wgmode

import (
	"sort"

	"gonum.org/v1/gonum/cmplxs"
)

// SortModes reorders solved modes by TE/TM fraction when requested;
// LargestNeff is a no-op since solveDiagonal/solveTensorial already return
// modes sorted by descending neff (spec §4.F).
func SortModes(modes []ModeFields, sortBy SortBy) []ModeFields {
	if sortBy == LargestNeff {
		return modes
	}
	out := append([]ModeFields(nil), modes...)
	sort.SliceStable(out, func(i, j int) bool {
		return fraction(out[i], sortBy) > fraction(out[j], sortBy)
	})
	return out
}

func fraction(m ModeFields, sortBy SortBy) float64 {
	var num float64
	denom := sumSqAbs(m.E[0]) + sumSqAbs(m.E[1])
	if sortBy == TEFraction {
		num = sumSqAbs(m.E[0])
	} else {
		num = sumSqAbs(m.E[1])
	}
	if denom == 0 {
		return 0
	}
	return num / denom
}

func sumSqAbs(v []complex128) float64 {
	n := cmplxs.Norm(v, 2)
	return n * n
}

// TransformFieldsBack maps each mode's E,H from the solver's (possibly
// bent/tilted) coordinate frame back to the original cross-section axes,
// E = J_E^T.E' and H = J_H^T.H' (spec §4.C/§4.F), and rescales neff by the
// norm of the k-vector transform; keff is left untouched, matching the
// original solver's convention of only rescaling the real part.
func TransformFieldsBack(modes []ModeFields, jacE, jacH *Tensor, kpToK [3]float64) []ModeFields {
	scale := norm3(kpToK)
	out := make([]ModeFields, len(modes))
	for mi, m := range modes {
		out[mi] = ModeFields{
			E:    transformField(m.E, jacE),
			H:    transformField(m.H, jacH),
			Neff: m.Neff * scale,
			Keff: m.Keff,
		}
	}
	return out
}

func transformField(comp [3][]complex128, jac *Tensor) [3][]complex128 {
	n := jac.N
	var out [3][]complex128
	for j := 0; j < 3; j++ {
		out[j] = make([]complex128, n)
	}
	for i := 0; i < 3; i++ {
		src := comp[i]
		for j := 0; j < 3; j++ {
			plane := jac.Plane(i, j)
			dst := out[j]
			for p := 0; p < n; p++ {
				dst[p] += plane[p] * src[p]
			}
		}
	}
	return out
}
