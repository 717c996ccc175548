package wgmode

import (
	"math/cmplx"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/waveguide/sparse"
	"gonum.org/v1/gonum/mat"
)

// Eigenpair is one solved mode of the assembled system before un-sorting
// and field reconstruction (component E).
type Eigenpair struct {
	Value  complex128 // lambda, in the assembler's native eigenvalue convention
	Vector []complex128
}

// ShiftInvertEigs finds the numModes eigenpairs of mat nearest to shift, by
// shift-invert: it factors (mat - shift*I)^-1 and keeps the eigenpairs with
// the largest-magnitude eigenvalue mu, recovering lambda = shift + 1/mu
// (gonum has no complex-matrix LAPACK bindings in this codebase's module
// set, so the MxM complex problem is "realified" into a 2M x 2M real one
// that gonum's mat.Eigen and mat.Dense.Solve can handle directly -- see
// realify's doc comment for the embedding and how genuine eigenpairs are
// told apart from the conjugate half of the resulting spectrum).
func ShiftInvertEigs(a *sparse.CSR, numModes int, shift complex128) ([]Eigenpair, error) {
	nrow, ncol := a.Dims()
	if nrow != ncol {
		chk.Panic("wgmode: ShiftInvertEigs requires a square matrix, got %dx%d", nrow, ncol)
	}
	m := nrow

	shiftDiag := make([]complex128, m)
	for i := range shiftDiag {
		shiftDiag[i] = shift
	}
	shifted := a.Sub(sparse.NewDiag(shiftDiag))

	breal := realify(shifted.ToDense(), m)

	id := mat.NewDense(2*m, 2*m, nil)
	for i := 0; i < 2*m; i++ {
		id.Set(i, i, 1)
	}
	var binv mat.Dense
	if err := binv.Solve(breal, id); err != nil {
		return nil, newError(NoEigenmodesFound, "wgmode: shift-invert factorization failed: %v", err)
	}

	var eig mat.Eigen
	if !eig.Factorize(&binv, false, true) {
		return nil, newError(NoEigenmodesFound, "wgmode: eigendecomposition of the shift-inverted operator failed")
	}
	mus := eig.Values(nil)
	var vecs mat.CDense
	eig.VectorsTo(&vecs)

	type candidate struct {
		mu  complex128
		vec []complex128
	}
	var candidates []candidate
	for k := 0; k < 2*m; k++ {
		top := make([]complex128, m)
		bottom := make([]complex128, m)
		for i := 0; i < m; i++ {
			top[i] = vecs.At(i, k)
			bottom[i] = vecs.At(m+i, k)
		}
		// Genuine eigenpairs of the complex operator satisfy bottom = -i*top
		// (see realify); the conjugate-family half satisfies bottom = +i*top.
		// Exactly one of the two residuals is (near) zero for any column
		// with a non-degenerate top block, so keep whichever side wins.
		var residGenuine, residConjugate float64
		for i := range top {
			residGenuine += cmplx.Abs(bottom[i] + complex(0, 1)*top[i])
			residConjugate += cmplx.Abs(bottom[i] - complex(0, 1)*top[i])
		}
		if residGenuine <= residConjugate {
			candidates = append(candidates, candidate{mu: mus[k], vec: top})
		}
		// else: this column belongs to conj(A); its genuine counterpart
		// lambda = conj(mus[k]) is recovered from a different column.
	}

	sort.Slice(candidates, func(i, j int) bool {
		return cmplx.Abs(candidates[i].mu) > cmplx.Abs(candidates[j].mu)
	})

	if len(candidates) == 0 {
		return nil, errNoEigenmodesFound(real(shift))
	}
	if numModes > len(candidates) {
		numModes = len(candidates)
	}

	out := make([]Eigenpair, numModes)
	for i := 0; i < numModes; i++ {
		c := candidates[i]
		out[i] = Eigenpair{
			Value:  shift + 1/c.mu,
			Vector: c.vec,
		}
	}
	return out, nil
}

// realify embeds an MxM complex matrix (given as a row-major flat buffer)
// as a 2M x 2M real block matrix [[Ar,-Ai],[Ai,Ar]]. This embedding C ->
// M_2(R) is an injective ring homomorphism, so it commutes with matrix
// inversion: the real embedding of A^-1 equals the inverse of the real
// embedding of A. That lets ShiftInvertEigs invert the shifted complex
// operator using only gonum's real Dense.Solve.
//
// Eigen-decomposing the embedding of a complex matrix A yields, for every
// eigenpair (lambda, v) of A with v = p + i*q, a 2M-real-dimensional
// invariant subspace spanned by [p;q] and [-q;p] on which the embedding
// acts as the 2x2 real representation of lambda; gonum's Eigen reports
// this subspace as one genuinely complex eigenvalue lambda with complex
// eigenvector z = [p;q] - i*[-q;p] = [v; -i*v]. So among the 2M columns
// gonum returns, a column belongs to A itself exactly when its bottom
// M-block equals -i times its top M-block; the remaining columns instead
// satisfy bottom = +i*top and belong to conj(A) (i.e. their eigenvalue is
// the conjugate of a genuine one, with eigenvector conj(v)).
func realify(flat []complex128, m int) *mat.Dense {
	out := mat.NewDense(2*m, 2*m, nil)
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			v := flat[i*m+j]
			ar, ai := real(v), imag(v)
			out.Set(i, j, ar)
			out.Set(i, j+m, -ai)
			out.Set(i+m, j, ai)
			out.Set(i+m, j+m, ar)
		}
	}
	return out
}
