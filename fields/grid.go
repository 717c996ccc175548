package fields

// Grid holds the primal Yee cell-boundary coordinates of the full
// simulation domain along each axis (spec §6's "given" Grid collaborator).
type Grid struct {
	BoundaryX, BoundaryY, BoundaryZ []float64
}

// Centers returns the cell-center coordinates along each axis.
func (g Grid) Centers() (cx, cy, cz []float64) {
	return centers1D(g.BoundaryX), centers1D(g.BoundaryY), centers1D(g.BoundaryZ)
}

func centers1D(b []float64) []float64 {
	if len(b) < 2 {
		return append([]float64(nil), b...)
	}
	out := make([]float64, len(b)-1)
	for i := range out {
		out[i] = (b[i] + b[i+1]) / 2
	}
	return out
}
