package wgmode

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestRadialTransformMetric(t *testing.T) {
	chk.PrintTitle("RadialTransform: (1+u/R) metric on the bend axis")
	coords := [2][]float64{{0, 0.1, 0.2}, {-1, 0, 1}}
	centersOther := []float64{-0.5, 0.5}
	R := 10.0
	_, jacE, _ := RadialTransform(coords, centersOther, R, 0)
	got := real(jacE.Get(0, 0, 0))
	want := 1 + centersOther[0]/R
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if real(jacE.Get(1, 1, 0)) != 1 {
		t.Fatalf("non-bend-axis diagonal should stay 1")
	}
}

func TestAngledTransformNormalIncidenceIsIdentity(t *testing.T) {
	chk.PrintTitle("AngledTransform: theta=0 reduces to identity")
	jacE, _ := AngledTransform(4, 0, 0)
	for p := 0; p < 4; p++ {
		if jacE.Get(2, 2, p) != 1 || jacE.Get(0, 2, p) != 0 || jacE.Get(1, 2, p) != 0 {
			t.Fatalf("expected identity shear at theta=0, point %d", p)
		}
	}
}

func TestKpToKNormEqualsCosTheta(t *testing.T) {
	chk.PrintTitle("KpToK: norm equals cos(theta)")
	theta := math.Pi / 6
	k := KpToK(theta, 0.3)
	got := norm3(k)
	want := math.Cos(theta)
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSandwichIdentityJacobianIsNoop(t *testing.T) {
	chk.PrintTitle("Sandwich: identity Jacobian leaves eps unchanged")
	eps := NewDiagonalTensor([]complex128{2, 3, 4}, []complex128{2, 3, 4}, []complex128{2, 3, 4})
	// use only the first point's worth of data
	eps = NewDiagonalTensor([]complex128{2}, []complex128{3}, []complex128{4})
	j := IdentityMuTensor(1)
	out := Sandwich(j, eps)
	if out.Get(0, 0, 0) != 2 || out.Get(1, 1, 0) != 3 || out.Get(2, 2, 0) != 4 {
		t.Fatalf("expected eps unchanged under identity Jacobian, got %v %v %v",
			out.Get(0, 0, 0), out.Get(1, 1, 0), out.Get(2, 2, 0))
	}
}
