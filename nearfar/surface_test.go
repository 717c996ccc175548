package nearfar

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/waveguide/fields"
)

func TestNewSurfaceRejectsNonPlanarMonitor(t *testing.T) {
	chk.PrintTitle("NewSurface: rejects a monitor with no zero-sized axis")
	mon := fields.FieldMonitor{Name: "box", Size: [3]float64{1, 1, 1}}
	_, err := NewSurface(mon, Plus)
	if err == nil {
		t.Fatal("expected an error for a non-planar monitor")
	}
	nfErr, ok := err.(*Error)
	if !ok || nfErr.Kind != NonPlanarMonitor {
		t.Fatalf("expected NonPlanarMonitor, got %v", err)
	}
}

func TestNewSurfaceDerivesAxis(t *testing.T) {
	chk.PrintTitle("NewSurface: derives axis from the zero-sized dimension")
	mon := fields.FieldMonitor{Name: "top", Size: [3]float64{2, 2, 0}}
	s, err := NewSurface(mon, Plus)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Axis() != 2 {
		t.Fatalf("expected axis 2, got %d", s.Axis())
	}
}

func TestNewSurfacesCountMismatch(t *testing.T) {
	chk.PrintTitle("NewSurfaces: rejects mismatched monitor/direction counts")
	mon := fields.FieldMonitor{Name: "top", Size: [3]float64{2, 2, 0}}
	_, err := NewSurfaces([]fields.FieldMonitor{mon}, []NormalDir{Plus, Minus})
	if err == nil {
		t.Fatal("expected an error")
	}
	nfErr, ok := err.(*Error)
	if !ok || nfErr.Kind != MonitorCountMismatch {
		t.Fatalf("expected MonitorCountMismatch, got %v", err)
	}
}
