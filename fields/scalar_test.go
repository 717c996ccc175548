package fields

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestScalarArrayColocateMidpoint(t *testing.T) {
	chk.PrintTitle("ScalarArray.Colocate: linear interpolation at the midpoint")

	s := NewScalarArray([]float64{0, 1}, []float64{0}, []float64{0}, []float64{1e14})
	s.Values[0][0][0][0] = 0
	s.Values[1][0][0][0] = 2

	out := s.Colocate([]float64{0.5}, []float64{0}, []float64{0})
	got := out.Values[0][0][0][0]
	if real(got) != 1 {
		t.Fatalf("expected 1, got %v", got)
	}
}

func TestScalarArrayColocateClampsOutOfBounds(t *testing.T) {
	chk.PrintTitle("ScalarArray.Colocate: out-of-bounds points clamp to the edge")

	s := NewScalarArray([]float64{0, 1}, []float64{0}, []float64{0}, []float64{1e14})
	s.Values[0][0][0][0] = 3
	s.Values[1][0][0][0] = 9

	out := s.Colocate([]float64{-5, 10}, []float64{0}, []float64{0})
	if real(out.Values[0][0][0][0]) != 3 {
		t.Fatalf("expected clamp to left edge value 3, got %v", out.Values[0][0][0][0])
	}
	if real(out.Values[1][0][0][0]) != 9 {
		t.Fatalf("expected clamp to right edge value 9, got %v", out.Values[1][0][0][0])
	}
}

func TestPopAxis(t *testing.T) {
	chk.PrintTitle("PopAxis: splits normal from in-plane components")

	normal, inPlane := PopAxis([3]float64{1, 2, 3}, 1)
	if normal != 2 || inPlane[0] != 1 || inPlane[1] != 3 {
		t.Fatalf("unexpected split: normal=%v inPlane=%v", normal, inPlane)
	}
}
