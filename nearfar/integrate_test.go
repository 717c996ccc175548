package nearfar

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/waveguide/fields"
	"github.com/cpmech/waveguide/medium"
)

func TestTrapWeightsUniformGridSumsToSpan(t *testing.T) {
	chk.PrintTitle("trapWeights: weights sum to the grid span on a uniform grid")
	coords := []float64{0, 1, 2, 3}
	w := trapWeights(coords)
	sum := 0.0
	for _, v := range w {
		sum += v
	}
	if math.Abs(sum-3) > 1e-12 {
		t.Fatalf("expected weights to sum to 3, got %v", sum)
	}
}

func TestIntegrateSurfaceBroadsideNormalIncidence(t *testing.T) {
	chk.PrintTitle("IntegrateSurface: broadside (theta=0) collapses the phase kernel")

	mon := fields.FieldMonitor{
		Name:   "top",
		Center: [3]float64{0, 0, 0},
		Size:   [3]float64{2, 2, 0},
		Freqs:  []float64{1e14},
	}
	surf, err := NewSurface(mon, Plus)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	x := []float64{-0.5, 0.5}
	y := []float64{-0.5, 0.5}
	z := []float64{0}
	jx := fields.NewScalarArray(x, y, z, []float64{1e14})
	jy := fields.NewScalarArray(x, y, z, []float64{1e14})
	jz := fields.NewScalarArray(x, y, z, []float64{1e14})
	for i := range x {
		for j := range y {
			jx.Values[i][j][0][0] = 1
		}
	}
	zero := jx.ZerosLike()

	r := Resampled{
		X: x, Y: y, Z: z,
		Currents: Currents{Jx: jx, Jy: jy, Jz: jz, Mx: zero, My: zero.Copy(), Mz: zero.Copy()},
	}

	acc := NewRadiationVectors([]float64{1e14}, []Angle{{Theta: 0, Phi: 0}})
	IntegrateSurface(surf, r, [3]float64{0, 0, 0}, medium.Vacuum, acc)

	got := acc.Ntheta[0][0]
	want := complex(1.0, 0) // integral of Jx=1 over a 1x1 area, times cos(0)cos(0)
	if cabs(got-want) > 1e-9 {
		t.Fatalf("expected Ntheta~%v, got %v", want, got)
	}
}

func cabs(z complex128) float64 {
	return math.Hypot(real(z), imag(z))
}
