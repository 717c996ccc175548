package nearfar

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/waveguide/fields"
	"github.com/cpmech/waveguide/medium"
)

func buildTestSimData(name string) fields.SimulationData {
	x := []float64{-0.5, 0.5}
	y := []float64{-0.5, 0.5}
	z := []float64{0}
	freqs := []float64{1e14}
	one := fields.NewScalarArray(x, y, z, freqs)
	for i := range x {
		for j := range y {
			one.Values[i][j][0][0] = 1
		}
	}
	zero := one.ZerosLike()
	fd := fields.FieldData{Ex: one, Ey: zero, Ez: zero.Copy(), Hx: zero.Copy(), Hy: one.Copy(), Hz: zero.Copy()}
	mon := fields.FieldMonitor{Name: name, Center: [3]float64{0, 0, 0}, Size: [3]float64{1, 1, 0}, Freqs: freqs}
	return fields.SimulationData{
		MonitorData: map[string]fields.FieldData{name: fd},
		Monitors:    map[string]fields.FieldMonitor{name: mon},
		Medium:      medium.Vacuum,
		Center:      [3]float64{0, 0, 0},
		Size:        [3]float64{2, 2, 2},
		Grid:        fields.Grid{BoundaryX: []float64{-1, 0, 1}, BoundaryY: []float64{-1, 0, 1}, BoundaryZ: []float64{-1, 1}},
	}
}

func TestNewNear2FarRejectsMissingMonitor(t *testing.T) {
	chk.PrintTitle("NewNear2Far: rejects a surface whose monitor is absent from sim_data")

	simData := buildTestSimData("top")
	other := fields.FieldMonitor{Name: "bottom", Size: [3]float64{1, 1, 0}, Freqs: []float64{1e14}}
	surf, err := NewSurface(other, Minus)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = NewNear2Far(simData, []Surface{surf}, [3]float64{0, 0, 0}, medium.Vacuum)
	if err == nil {
		t.Fatal("expected MissingMonitor error")
	}
	if nfErr, ok := err.(*Error); !ok || nfErr.Kind != MissingMonitor {
		t.Fatalf("expected MissingMonitor, got %v", err)
	}
}

func TestNear2FarRadiationVectorsSmoke(t *testing.T) {
	chk.PrintTitle("Near2Far.RadiationVectors: end-to-end smoke test on one surface")

	simData := buildTestSimData("top")
	mon := simData.Monitors["top"]
	surf, err := NewSurface(mon, Plus)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	proj, err := NewNear2Far(simData, []Surface{surf}, [3]float64{0, 0, 0}, medium.Vacuum)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rv, err := proj.RadiationVectors([]float64{1e14}, []Angle{{Theta: 0, Phi: 0}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rv.Ntheta) != 1 || len(rv.Ntheta[0]) != 1 {
		t.Fatalf("unexpected result shape: %+v", rv)
	}
}

func TestNear2FarRadiationVectorsFrequencyNotFound(t *testing.T) {
	chk.PrintTitle("Near2Far.RadiationVectors: rejects an unrecorded frequency")

	simData := buildTestSimData("top")
	mon := simData.Monitors["top"]
	surf, err := NewSurface(mon, Plus)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	proj, err := NewNear2Far(simData, []Surface{surf}, [3]float64{0, 0, 0}, medium.Vacuum)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = proj.RadiationVectors([]float64{2e14}, []Angle{{Theta: 0, Phi: 0}})
	if err == nil {
		t.Fatal("expected FrequencyNotFound error")
	}
	if nfErr, ok := err.(*Error); !ok || nfErr.Kind != FrequencyNotFound {
		t.Fatalf("expected FrequencyNotFound, got %v", err)
	}
}
