package nearfar

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/waveguide/fields"
)

func constScalar(v complex128) fields.ScalarArray {
	s := fields.NewScalarArray([]float64{0}, []float64{0}, []float64{0}, []float64{1e14})
	s.Values[0][0][0][0] = v
	return s
}

func TestExtractCurrentsTopSurfaceSignConvention(t *testing.T) {
	chk.PrintTitle("ExtractCurrents: J=n x H, M=-n x E on a +z top surface")

	mon := fields.FieldMonitor{Name: "top", Size: [3]float64{2, 2, 0}, Freqs: []float64{1e14}}
	surf, err := NewSurface(mon, Plus)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fd := fields.FieldData{
		Ex: constScalar(1), Ey: constScalar(2), Ez: constScalar(99),
		Hx: constScalar(3), Hy: constScalar(4), Hz: constScalar(99),
	}

	c := ExtractCurrents(surf, fd)

	if got := c.Jx.Values[0][0][0][0]; real(got) != -4 {
		t.Fatalf("Jx: expected -4, got %v", got)
	}
	if got := c.Jy.Values[0][0][0][0]; real(got) != 3 {
		t.Fatalf("Jy: expected 3, got %v", got)
	}
	if got := c.Jz.Values[0][0][0][0]; got != 0 {
		t.Fatalf("Jz: expected 0 (normal component discarded), got %v", got)
	}
	if got := c.Mx.Values[0][0][0][0]; real(got) != 2 {
		t.Fatalf("Mx: expected 2, got %v", got)
	}
	if got := c.My.Values[0][0][0][0]; real(got) != -1 {
		t.Fatalf("My: expected -1, got %v", got)
	}
	if got := c.Mz.Values[0][0][0][0]; got != 0 {
		t.Fatalf("Mz: expected 0 (normal component discarded), got %v", got)
	}
}

func TestExtractCurrentsMinusFlipsSign(t *testing.T) {
	chk.PrintTitle("ExtractCurrents: normal_dir=Minus flips both sign factors")

	mon := fields.FieldMonitor{Name: "bottom", Size: [3]float64{2, 2, 0}, Freqs: []float64{1e14}}
	surfPlus, _ := NewSurface(mon, Plus)
	surfMinus, _ := NewSurface(mon, Minus)

	fd := fields.FieldData{
		Ex: constScalar(1), Ey: constScalar(2), Ez: constScalar(0),
		Hx: constScalar(3), Hy: constScalar(4), Hz: constScalar(0),
	}

	cPlus := ExtractCurrents(surfPlus, fd)
	cMinus := ExtractCurrents(surfMinus, fd)

	if real(cPlus.Jx.Values[0][0][0][0]) != -real(cMinus.Jx.Values[0][0][0][0]) {
		t.Fatalf("expected Jx to flip sign between Plus and Minus")
	}
}
