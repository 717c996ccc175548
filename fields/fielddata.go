package fields

import "github.com/cpmech/gosl/chk"

// FieldData bundles the six tangential/normal E and H components recorded
// by a field monitor on a Yee-aligned rectilinear grid (spec §6's "given"
// FieldData collaborator; tidy3d's components/data/monitor_data.FieldData).
type FieldData struct {
	Ex, Ey, Ez ScalarArray
	Hx, Hy, Hz ScalarArray
}

// DataDict exposes the six components by name, mirroring
// FieldData.data_dict[name].
func (f FieldData) DataDict() map[string]ScalarArray {
	return map[string]ScalarArray{
		"Ex": f.Ex, "Ey": f.Ey, "Ez": f.Ez,
		"Hx": f.Hx, "Hy": f.Hy, "Hz": f.Hz,
	}
}

// Component looks up one named component, panicking on an unknown name
// since callers only ever ask for the six fixed field names.
func (f FieldData) Component(name string) ScalarArray {
	d, ok := f.DataDict()[name]
	if !ok {
		chk.Panic("fields: unknown field component %q", name)
	}
	return d
}

// Copy deep-copies every component.
func (f FieldData) Copy() FieldData {
	return FieldData{
		Ex: f.Ex.Copy(), Ey: f.Ey.Copy(), Ez: f.Ez.Copy(),
		Hx: f.Hx.Copy(), Hy: f.Hy.Copy(), Hz: f.Hz.Copy(),
	}
}

// Colocate interpolates all six components onto the same new x,y,z grid
// (FieldData.colocate(x,y,z)).
func (f FieldData) Colocate(x, y, z []float64) FieldData {
	return FieldData{
		Ex: f.Ex.Colocate(x, y, z), Ey: f.Ey.Colocate(x, y, z), Ez: f.Ez.Colocate(x, y, z),
		Hx: f.Hx.Colocate(x, y, z), Hy: f.Hy.Colocate(x, y, z), Hz: f.Hz.Colocate(x, y, z),
	}
}
