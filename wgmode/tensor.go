package wgmode

import "math/cmplx"

// Tensor is a (3,3,N) complex permittivity/permeability/Jacobian field:
// a contiguous 9*N buffer indexed row-major (i,j,n) so that per-point
// dot-products over the first two indices are stride-N apart but each
// individual (i,j) plane is stride-1 in n, matching design notes §9's
// guidance to keep inner loops over n stride-1.
type Tensor struct {
	N    int
	data [9]complex128Plane
}

// complex128Plane is one (i,j) plane of a Tensor: N contiguous values.
type complex128Plane []complex128

func idx(i, j int) int { return i*3 + j }

// NewTensor allocates a zeroed (3,3,N) tensor.
func NewTensor(n int) *Tensor {
	t := &Tensor{N: n}
	for k := range t.data {
		t.data[k] = make(complex128Plane, n)
	}
	return t
}

// Get returns component (i,j) at point n.
func (t *Tensor) Get(i, j, n int) complex128 { return t.data[idx(i, j)][n] }

// Set assigns component (i,j) at point n.
func (t *Tensor) Set(i, j, n int, v complex128) { t.data[idx(i, j)][n] = v }

// Plane returns the raw backing slice for component (i,j), for bulk ops.
func (t *Tensor) Plane(i, j int) []complex128 { return t.data[idx(i, j)] }

// NewDiagonalTensor builds a tensor with only the diagonal populated from
// three length-N component slices (the initial state before any
// coordinate transform is applied, per solver.go's compute_modes).
func NewDiagonalTensor(xx, yy, zz []complex128) *Tensor {
	n := len(xx)
	t := NewTensor(n)
	copy(t.data[idx(0, 0)], xx)
	copy(t.data[idx(1, 1)], yy)
	copy(t.data[idx(2, 2)], zz)
	return t
}

// IdentityMuTensor builds a (3,3,N) tensor equal to the identity at every
// point -- the initial mu and the initial Jacobian before any transform.
func IdentityMuTensor(n int) *Tensor {
	t := NewTensor(n)
	for p := 0; p < n; p++ {
		t.Set(0, 0, p, 1)
		t.Set(1, 1, p, 1)
		t.Set(2, 2, p, 1)
	}
	return t
}

// Clone deep-copies the tensor.
func (t *Tensor) Clone() *Tensor {
	out := NewTensor(t.N)
	for k := range t.data {
		copy(out.data[k], t.data[k])
	}
	return out
}

// MatMul returns the per-point 3x3 matrix product t*other (component C's
// Jacobian composition, J_new = J_transform . J_prev).
func (t *Tensor) MatMul(other *Tensor) *Tensor {
	out := NewTensor(t.N)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			dst := out.Plane(i, j)
			for k := 0; k < 3; k++ {
				a := t.Plane(i, k)
				b := other.Plane(k, j)
				for n := 0; n < t.N; n++ {
					dst[n] += a[n] * b[n]
				}
			}
		}
	}
	return out
}

// Transpose returns the per-point transpose.
func (t *Tensor) Transpose() *Tensor {
	out := NewTensor(t.N)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			copy(out.Plane(j, i), t.Plane(i, j))
		}
	}
	return out
}

// Det returns the per-point determinant of the 3x3 tensor.
func (t *Tensor) Det() []complex128 {
	out := make([]complex128, t.N)
	a00, a01, a02 := t.Plane(0, 0), t.Plane(0, 1), t.Plane(0, 2)
	a10, a11, a12 := t.Plane(1, 0), t.Plane(1, 1), t.Plane(1, 2)
	a20, a21, a22 := t.Plane(2, 0), t.Plane(2, 1), t.Plane(2, 2)
	for n := 0; n < t.N; n++ {
		out[n] = a00[n]*(a11[n]*a22[n]-a12[n]*a21[n]) -
			a01[n]*(a10[n]*a22[n]-a12[n]*a20[n]) +
			a02[n]*(a10[n]*a21[n]-a11[n]*a20[n])
	}
	return out
}

// Sandwich returns (J.X.J^T)/det(J) point-wise, the constitutive-tensor
// transform rule applied to eps and mu under a coordinate Jacobian
// (solver.py's compute_modes: eps_tensor = J.dot(eps).dot(J.T) / det(J)).
func Sandwich(j, x *Tensor) *Tensor {
	jt := j.Transpose()
	out := j.MatMul(x).MatMul(jt)
	det := j.Det()
	for i := 0; i < 3; i++ {
		for k := 0; k < 3; k++ {
			p := out.Plane(i, k)
			for n := range p {
				p[n] /= det[n]
			}
		}
	}
	return out
}

// MaxOffDiagAbs returns the largest magnitude among the six off-diagonal
// planes, used by the diagonal/tensorial regime switch (component D).
func (t *Tensor) MaxOffDiagAbs() float64 {
	max := 0.0
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i == j {
				continue
			}
			for _, v := range t.data[idx(i, j)] {
				if a := cmplx.Abs(v); a > max {
					max = a
				}
			}
		}
	}
	return max
}
