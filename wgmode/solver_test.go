package wgmode

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/waveguide/gridspec"
)

func TestComputeModesStraightWaveguideSmoke(t *testing.T) {
	chk.PrintTitle("ComputeModes: straight waveguide produces the requested mode count")

	nx, ny := 8, 1
	cs := NewUniformCrossSection(nx, ny, complex(4, 0))
	coords := [2][]float64{
		gridspec.UniformCoords(0, 1, nx),
		gridspec.UniformCoords(0, 1, ny),
	}
	sp := NewSpec(1)

	modes, err := ComputeModes(cs, coords, 2e14, sp, [2]int{0, 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(modes) != 1 {
		t.Fatalf("expected 1 mode, got %d", len(modes))
	}
	if modes[0].Neff <= 0 {
		t.Fatalf("expected a positive effective index, got %v", modes[0].Neff)
	}
}

func TestComputeModesCoordsMismatch(t *testing.T) {
	chk.PrintTitle("ComputeModes: coords/eps_cross shape mismatch is rejected")

	cs := NewUniformCrossSection(4, 1, complex(2, 0))
	coords := [2][]float64{
		gridspec.UniformCoords(0, 1, 3), // wrong size
		gridspec.UniformCoords(0, 1, 1),
	}
	_, err := ComputeModes(cs, coords, 2e14, NewSpec(1), [2]int{0, 0})
	if err == nil {
		t.Fatalf("expected a CoordsMismatch error")
	}
	wgErr, ok := err.(*Error)
	if !ok || wgErr.Kind != CoordsMismatch {
		t.Fatalf("expected CoordsMismatch, got %v", err)
	}
}
