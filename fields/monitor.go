package fields

// FieldMonitor describes where and at which frequencies a FieldData record
// was sampled (spec §6's "given" FieldMonitor collaborator).
type FieldMonitor struct {
	Name   string
	Center [3]float64
	Size   [3]float64
	Freqs  []float64
}

// PopAxis splits a 3-vector into its component along axis (the "normal")
// and the remaining two components in their original relative order
// (tidy3d's geometry.base.pop_axis convention).
func PopAxis(v [3]float64, axis int) (normal float64, inPlane [2]float64) {
	normal = v[axis]
	k := 0
	for i := 0; i < 3; i++ {
		if i == axis {
			continue
		}
		inPlane[k] = v[i]
		k++
	}
	return normal, inPlane
}

// PlanarAxis returns the axis along which Size is (numerically) zero, i.e.
// the monitor's normal direction, or -1 if no axis qualifies (the monitor
// is not planar).
func (m FieldMonitor) PlanarAxis() int {
	for axis, s := range m.Size {
		if s == 0 {
			return axis
		}
	}
	return -1
}
