// Package sparse implements a small complex-valued sparse-matrix kit: a
// Triplet accumulator and a compressed-row matrix, following the
// Triplet-then-compress workflow of gosl/la (Triplet -> CCMatrix) adapted to
// complex128 entries, which gosl/la's real-only Triplet/CCMatrix does not
// support.
package sparse

import "github.com/cpmech/gosl/chk"

// Triplet accumulates (row, col, value) entries before compression. Entries
// with repeated (i,j) are summed on compression, mirroring gosl/la.Triplet.
type Triplet struct {
	nrow, ncol int
	i, j       []int
	x          []complex128
}

// NewTriplet allocates a Triplet for an nrow x ncol matrix with room for
// `cap` entries. More entries may be added beyond cap; cap is a hint only.
func NewTriplet(nrow, ncol, cap int) *Triplet {
	if nrow <= 0 || ncol <= 0 {
		chk.Panic("sparse: invalid triplet shape %d x %d", nrow, ncol)
	}
	return &Triplet{
		nrow: nrow,
		ncol: ncol,
		i:    make([]int, 0, cap),
		j:    make([]int, 0, cap),
		x:    make([]complex128, 0, cap),
	}
}

// Put appends an entry. Duplicates are summed when the triplet is compressed.
func (t *Triplet) Put(i, j int, val complex128) {
	if i < 0 || i >= t.nrow || j < 0 || j >= t.ncol {
		chk.Panic("sparse: index (%d,%d) out of range for %d x %d matrix", i, j, t.nrow, t.ncol)
	}
	t.i = append(t.i, i)
	t.j = append(t.j, j)
	t.x = append(t.x, val)
}

// Len returns the number of recorded (possibly duplicate) entries.
func (t *Triplet) Len() int { return len(t.x) }

// ToCSR compresses the triplet into row-compressed form, summing duplicates.
func (t *Triplet) ToCSR() *CSR {
	// accumulate into per-row maps first; a dense grid (Nx*Ny up to a few
	// thousand) keeps this cheap without needing a sort-based dedup pass.
	rows := make([]map[int]complex128, t.nrow)
	for k := range t.i {
		i, j, v := t.i[k], t.j[k], t.x[k]
		if rows[i] == nil {
			rows[i] = make(map[int]complex128)
		}
		rows[i][j] += v
	}
	nnz := 0
	for _, m := range rows {
		nnz += len(m)
	}
	c := &CSR{
		nrow:    t.nrow,
		ncol:    t.ncol,
		rowPtr:  make([]int, t.nrow+1),
		colIdx:  make([]int, 0, nnz),
		vals:    make([]complex128, 0, nnz),
	}
	for i := 0; i < t.nrow; i++ {
		c.rowPtr[i] = len(c.colIdx)
		cols := sortedKeys(rows[i])
		for _, j := range cols {
			c.colIdx = append(c.colIdx, j)
			c.vals = append(c.vals, rows[i][j])
		}
	}
	c.rowPtr[t.nrow] = len(c.colIdx)
	return c
}

func sortedKeys(m map[int]complex128) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	// simple insertion sort: rows in this solver have a handful of nonzeros
	for i := 1; i < len(keys); i++ {
		k := keys[i]
		j := i - 1
		for j >= 0 && keys[j] > k {
			keys[j+1] = keys[j]
			j--
		}
		keys[j+1] = k
	}
	return keys
}
