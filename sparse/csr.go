package sparse

import "github.com/cpmech/gosl/chk"

// CSR is a row-compressed complex128 sparse matrix. Rows are stored with
// sorted column indices.
type CSR struct {
	nrow, ncol int
	rowPtr     []int
	colIdx     []int
	vals       []complex128
}

// Dims returns the matrix shape.
func (c *CSR) Dims() (nrow, ncol int) { return c.nrow, c.ncol }

// NNZ returns the number of stored (structurally nonzero) entries.
func (c *CSR) NNZ() int { return len(c.vals) }

// NewDiag builds a diagonal matrix from d.
func NewDiag(d []complex128) *CSR {
	n := len(d)
	c := &CSR{nrow: n, ncol: n, rowPtr: make([]int, n+1)}
	for i, v := range d {
		c.rowPtr[i] = i
		if v != 0 {
			c.colIdx = append(c.colIdx, i)
			c.vals = append(c.vals, v)
			continue
		}
		// keep the diagonal entry explicit even when zero so later Add/Dot
		// passes see a structural nonzero there; cheap at these grid sizes.
		c.colIdx = append(c.colIdx, i)
		c.vals = append(c.vals, 0)
	}
	c.rowPtr[n] = len(c.vals)
	return c
}

// Identity builds the n x n identity matrix.
func Identity(n int) *CSR {
	d := make([]complex128, n)
	for i := range d {
		d[i] = 1
	}
	return NewDiag(d)
}

// row returns the column indices and values for row i.
func (c *CSR) row(i int) ([]int, []complex128) {
	a, b := c.rowPtr[i], c.rowPtr[i+1]
	return c.colIdx[a:b], c.vals[a:b]
}

// Scale returns s*c.
func (c *CSR) Scale(s complex128) *CSR {
	out := &CSR{nrow: c.nrow, ncol: c.ncol, rowPtr: append([]int(nil), c.rowPtr...),
		colIdx: append([]int(nil), c.colIdx...), vals: make([]complex128, len(c.vals))}
	for i, v := range c.vals {
		out.vals[i] = s * v
	}
	return out
}

// Add returns c+b, both must have identical shape.
func (c *CSR) Add(b *CSR) *CSR {
	if c.nrow != b.nrow || c.ncol != b.ncol {
		chk.Panic("sparse: shape mismatch in Add: %dx%d vs %dx%d", c.nrow, c.ncol, b.nrow, b.ncol)
	}
	t := NewTriplet(c.nrow, c.ncol, c.NNZ()+b.NNZ())
	for i := 0; i < c.nrow; i++ {
		cols, vals := c.row(i)
		for k, j := range cols {
			t.Put(i, j, vals[k])
		}
		cols, vals = b.row(i)
		for k, j := range cols {
			t.Put(i, j, vals[k])
		}
	}
	return t.ToCSR()
}

// Sub returns c-b.
func (c *CSR) Sub(b *CSR) *CSR { return c.Add(b.Scale(-1)) }

// Dot returns the matrix product c*b via sparse row-by-row accumulation.
func (c *CSR) Dot(b *CSR) *CSR {
	if c.ncol != b.nrow {
		chk.Panic("sparse: shape mismatch in Dot: %dx%d times %dx%d", c.nrow, c.ncol, b.nrow, b.ncol)
	}
	t := NewTriplet(c.nrow, b.ncol, c.NNZ()+b.NNZ())
	acc := make(map[int]complex128, 32)
	for i := 0; i < c.nrow; i++ {
		for k := range acc {
			delete(acc, k)
		}
		cols, vals := c.row(i)
		for ci, cv := range vals {
			k := cols[ci]
			bcols, bvals := b.row(k)
			for bi, bv := range bvals {
				acc[bcols[bi]] += cv * bv
			}
		}
		for j, v := range acc {
			if v != 0 {
				t.Put(i, j, v)
			}
		}
	}
	return t.ToCSR()
}

// MulVec returns c*x.
func (c *CSR) MulVec(x []complex128) []complex128 {
	if len(x) != c.ncol {
		chk.Panic("sparse: MulVec length mismatch: matrix has %d cols, x has %d", c.ncol, len(x))
	}
	out := make([]complex128, c.nrow)
	for i := 0; i < c.nrow; i++ {
		cols, vals := c.row(i)
		var s complex128
		for k, j := range cols {
			s += vals[k] * x[j]
		}
		out[i] = s
	}
	return out
}

// MulDense returns c*X where X is a dense matrix stored column-major as a
// slice of columns (each of length c.ncol); used to push whole eigenvector
// blocks through a derivative/constitutive operator at once.
func (c *CSR) MulDense(cols [][]complex128) [][]complex128 {
	out := make([][]complex128, len(cols))
	for k, col := range cols {
		out[k] = c.MulVec(col)
	}
	return out
}

// ToDense expands the matrix to a row-major dense buffer, consumed only by
// the shift-invert driver right before eigendecomposition (component E);
// the sparse form is discarded immediately afterwards to bound peak memory.
func (c *CSR) ToDense() []complex128 {
	out := make([]complex128, c.nrow*c.ncol)
	for i := 0; i < c.nrow; i++ {
		cols, vals := c.row(i)
		for k, j := range cols {
			out[i*c.ncol+j] = vals[k]
		}
	}
	return out
}

// Block assembles a block matrix from a grid of sub-blocks, mirroring
// scipy.sparse.bmat as used by the original solver_diagonal/solver_tensorial
// assembly. nil entries are treated as all-zero blocks of the shape implied
// by their row/column neighbors.
func Block(blocks [][]*CSR) *CSR {
	nbr := len(blocks)
	nbc := len(blocks[0])
	rowHeights := make([]int, nbr)
	colWidths := make([]int, nbc)
	for bi := 0; bi < nbr; bi++ {
		for bj := 0; bj < nbc; bj++ {
			b := blocks[bi][bj]
			if b == nil {
				continue
			}
			rowHeights[bi] = b.nrow
			colWidths[bj] = b.ncol
		}
	}
	totalRows, totalCols := 0, 0
	rowOff := make([]int, nbr)
	for bi, h := range rowHeights {
		rowOff[bi] = totalRows
		totalRows += h
	}
	colOff := make([]int, nbc)
	for bj, w := range colWidths {
		colOff[bj] = totalCols
		totalCols += w
	}
	t := NewTriplet(totalRows, totalCols, totalRows*4)
	for bi := 0; bi < nbr; bi++ {
		for bj := 0; bj < nbc; bj++ {
			b := blocks[bi][bj]
			if b == nil {
				continue
			}
			for i := 0; i < b.nrow; i++ {
				cols, vals := b.row(i)
				for k, j := range cols {
					t.Put(rowOff[bi]+i, colOff[bj]+j, vals[k])
				}
			}
		}
	}
	return t.ToCSR()
}
