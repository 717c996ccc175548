package nearfar

import "github.com/cpmech/waveguide/fields"

// Currents holds the equivalent electric and magnetic surface currents
// derived from a surface's tangential E/H fields (spec §4.G), sampled on
// whatever grid the source FieldData was sampled on (the Yee grid, before
// any resampling).
type Currents struct {
	Jx, Jy, Jz fields.ScalarArray
	Mx, My, Mz fields.ScalarArray
}

// tangentialNames returns the two in-plane component letters, in the order
// PopAxis would return them (the remaining axes in their natural order with
// the normal axis removed).
func tangentialNames(axis int) (c1, c2 string) {
	names := [3]string{"x", "y", "z"}
	k := 0
	var pair [2]string
	for i, n := range names {
		if i == axis {
			continue
		}
		pair[k] = n
		k++
	}
	return pair[0], pair[1]
}

// ExtractCurrents implements the surface-current extractor (spec §4.G): a
// pure function of a surface's tangential E and H, with no dependence on
// simulation state beyond the surface's own axis and normal_dir. The
// normal-direction E/H components play no part in the result and are
// reported as zero-valued arrays of the same shape.
//
// Sign factors: s = (-1, +1); negated if axis is odd; negated again if
// normal_dir is Minus. J_{c2}=s[1]*H_{c1}, J_{c1}=s[0]*H_{c2},
// M_{c2}=s[0]*E_{c1}, M_{c1}=s[1]*E_{c2} (Balanis equivalence theorem,
// J = n x H, M = -n x E, with n the outward surface normal).
func ExtractCurrents(s Surface, fd fields.FieldData) Currents {
	axis := s.Axis()
	c1, c2 := tangentialNames(axis)

	sign := [2]float64{-1, 1}
	if axis%2 != 0 {
		sign[0], sign[1] = -sign[0], -sign[1]
	}
	if s.NormalDir == Minus {
		sign[0], sign[1] = -sign[0], -sign[1]
	}

	eC1, eC2 := fd.Component("E"+c1), fd.Component("E"+c2)
	hC1, hC2 := fd.Component("H"+c1), fd.Component("H"+c2)

	jC1 := hC2.Scale(sign[0])
	jC2 := hC1.Scale(sign[1])
	mC1 := eC2.Scale(sign[1])
	mC2 := eC1.Scale(sign[0])

	zero := eC1.ZerosLike()

	out := Currents{}
	setComponent(&out.Jx, &out.Jy, &out.Jz, c1, jC1)
	setComponent(&out.Jx, &out.Jy, &out.Jz, c2, jC2)
	setComponent(&out.Mx, &out.My, &out.Mz, c1, mC1)
	setComponent(&out.Mx, &out.My, &out.Mz, c2, mC2)
	switch axis {
	case 0:
		out.Jx, out.Mx = zero, zero
	case 1:
		out.Jy, out.My = zero, zero
	case 2:
		out.Jz, out.Mz = zero, zero
	}
	return out
}

func setComponent(x, y, z *fields.ScalarArray, name string, v fields.ScalarArray) {
	switch name {
	case "x":
		*x = v
	case "y":
		*y = v
	case "z":
		*z = v
	}
}
