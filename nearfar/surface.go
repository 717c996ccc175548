package nearfar

import "github.com/cpmech/waveguide/fields"

// NormalDir is the outward-normal sense of a Near2FarSurface relative to
// its monitor's own axis orientation (spec §3, "Near2FarSurface").
type NormalDir int

const (
	Plus NormalDir = iota
	Minus
)

// Surface pairs a planar field monitor with the outward-normal direction
// to use when converting its tangential fields into equivalent currents.
type Surface struct {
	Monitor   fields.FieldMonitor
	NormalDir NormalDir
}

// NewSurface validates that monitor is planar (spec §3: "size has exactly
// one zero component"); the derived axis is then available from Axis.
func NewSurface(monitor fields.FieldMonitor, dir NormalDir) (Surface, error) {
	zeros := 0
	for _, sz := range monitor.Size {
		if sz == 0 {
			zeros++
		}
	}
	if zeros != 1 {
		return Surface{}, errNonPlanarMonitor(monitor.Name)
	}
	return Surface{Monitor: monitor, NormalDir: dir}, nil
}

// Axis returns the index of the monitor's zero-size (normal) component.
func (s Surface) Axis() int { return s.Monitor.PlanarAxis() }

// NewSurfaces pairs up monitors and directions, enforcing MonitorCountMismatch.
func NewSurfaces(monitors []fields.FieldMonitor, dirs []NormalDir) ([]Surface, error) {
	if len(monitors) != len(dirs) {
		return nil, errMonitorCountMismatch(len(monitors), len(dirs))
	}
	out := make([]Surface, len(monitors))
	for i, m := range monitors {
		s, err := NewSurface(m, dirs[i])
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}
