package sparse

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/waveguide/internal/tchk"
)

func TestDiagMulVec(tst *testing.T) {
	chk.PrintTitle("DiagMulVec")
	d := NewDiag([]complex128{1, 2, 3})
	y := d.MulVec([]complex128{1, 1, 1})
	tchk.ArrayC(tst, "y", 1e-15, y, []complex128{1, 2, 3})
}

func TestDot(tst *testing.T) {
	chk.PrintTitle("Dot")
	a := NewTriplet(2, 2, 4)
	a.Put(0, 0, 1)
	a.Put(0, 1, 2)
	a.Put(1, 0, 3)
	a.Put(1, 1, 4)
	A := a.ToCSR()
	B := Identity(2)
	C := A.Dot(B)
	tchk.ArrayC(tst, "row0", 1e-15, C.ToDense()[0:2], []complex128{1, 2})
	tchk.ArrayC(tst, "row1", 1e-15, C.ToDense()[2:4], []complex128{3, 4})
}

func TestBlock(tst *testing.T) {
	chk.PrintTitle("Block")
	a := NewDiag([]complex128{1, 1})
	z := NewDiag([]complex128{2, 2})
	blk := Block([][]*CSR{{a, nil}, {nil, z}})
	nrow, ncol := blk.Dims()
	if nrow != 4 || ncol != 4 {
		tst.Fatalf("expected 4x4, got %dx%d", nrow, ncol)
	}
	dense := blk.ToDense()
	tchk.ArrayC(tst, "diag", 1e-15, []complex128{dense[0], dense[5], dense[10], dense[15]},
		[]complex128{1, 1, 2, 2})
}
