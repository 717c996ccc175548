package fields

import "github.com/cpmech/waveguide/medium"

// SimulationData bundles a simulation's recorded monitor data with enough
// of the originating simulation to resolve a medium and a grid (spec §6's
// "given" SimulationData collaborator).
type SimulationData struct {
	MonitorData map[string]FieldData
	Monitors    map[string]FieldMonitor
	Medium      medium.Medium
	Center      [3]float64
	Size        [3]float64
	Grid        Grid
}

// AtCenters colocates the named monitor's field data onto the simulation
// grid's cell centers restricted to the monitor's own bounding box
// (SimulationData.at_centers(name)).
func (s SimulationData) AtCenters(name string) FieldData {
	fd, ok := s.MonitorData[name]
	if !ok {
		return FieldData{}
	}
	mon := s.Monitors[name]
	cx, cy, cz := s.Grid.Centers()
	x := within(cx, mon.Center[0], mon.Size[0])
	y := within(cy, mon.Center[1], mon.Size[1])
	z := within(cz, mon.Center[2], mon.Size[2])
	return fd.Colocate(x, y, z)
}

// within returns the subset of coords falling inside [center-size/2,
// center+size/2], or the single value center when size is zero (a planar
// monitor's normal axis).
func within(coords []float64, center, size float64) []float64 {
	if size == 0 {
		return []float64{center}
	}
	lo, hi := center-size/2, center+size/2
	var out []float64
	for _, c := range coords {
		if c >= lo && c <= hi {
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		out = []float64{center}
	}
	return out
}
