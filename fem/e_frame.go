// Copyright 2016 The Gofra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/gofra/inp"
)

// FrameElement represents a 3D frame element (Euler-Bernoulli, linear
// elastic) connecting two nodes, with 6 DOFs per node:
//
//	  y (local)
//	  ^
//	  |
//	 (a)============================(b)-----> x (local)
//	 /
//	z (local)
//
// Local axes: x along the element; z defaults to global-z unless the element
// is near-vertical, in which case z defaults to global-x to avoid a
// degenerate cross product. Stiffness matrices are pure functions of
// (material, section, geometry) and are recomputed on demand, never cached.
type FrameElement struct {

	// basic data
	Cell *inp.Element  // input data
	Na   int           // index of start node in the domain's node arena
	Nb   int           // index of end node in the domain's node arena
	Mat  *inp.Material // material (defaults already applied)
	Sec  *inp.Section  // section (defaults already applied)

	// derived geometry
	L float64    // length of element
	T *mat.Dense // [12][12] global-to-local transformation (4 copies of the rotation on the diagonal)

	// assembly map
	Umap []int // [12] global equation numbers of the element DOFs; Restrained when fixed
}

// newFrameElement computes length, local axes and the transformation matrix.
// A length smaller than 1e-6 is a fatal model integrity error.
func newFrameElement(cell *inp.Element, ia, ib int, a, b *inp.Node, m *inp.Material, s *inp.Section) (o *FrameElement, err error) {

	// basic data
	o = new(FrameElement)
	o.Cell = cell
	o.Na, o.Nb = ia, ib
	o.Mat = m
	o.Sec = s

	// length and unit vector along element
	dx := b.X - a.X
	dy := b.Y - a.Y
	dz := b.Z - a.Z
	o.L = math.Sqrt(dx*dx + dy*dy + dz*dz)
	if o.L < 1e-6 {
		return nil, &ModelIntegrityError{"element", cell.Id, "has zero length"}
	}
	vx := []float64{dx / o.L, dy / o.L, dz / o.L}

	// reference local-z: global-z, or global-x for near-vertical elements
	// (|vx·ez| > 0.9 is about 25° from vertical)
	vz := []float64{0, 0, 1}
	if math.Abs(vx[2]) > 0.9 {
		vz = []float64{1, 0, 0}
	}

	// vy := vz × vx (normalized), then vz := vx × vy completes the
	// right-handed local axis set
	vy := cross(vz, vx)
	ny := math.Sqrt(vy[0]*vy[0] + vy[1]*vy[1] + vy[2]*vy[2])
	for i := 0; i < 3; i++ {
		vy[i] /= ny
	}
	vz = cross(vx, vy)

	// global-to-local transformation: rows of each 3x3 block are the local
	// axes expressed in global coordinates
	o.T = mat.NewDense(12, 12, nil)
	for k := 0; k < 4; k++ {
		for j := 0; j < 3; j++ {
			o.T.Set(3*k+0, 3*k+j, vx[j])
			o.T.Set(3*k+1, 3*k+j, vy[j])
			o.T.Set(3*k+2, 3*k+j, vz[j])
		}
	}
	return
}

// SetEqs sets the assembly map from the start/end node equation numbers
func (o *FrameElement) SetEqs(eqsA, eqsB []int) {
	o.Umap = make([]int, 12)
	copy(o.Umap[:6], eqsA)
	copy(o.Umap[6:], eqsB)
}

// KlMatrix computes the [12][12] stiffness matrix in the local system using
// the classical Euler-Bernoulli frame terms: axial EA/L, torsional GJ/L and
// the 12/6/4/2 bending pattern about both transverse axes
func (o *FrameElement) KlMatrix() (kl *mat.Dense) {

	// constants
	EA := o.Mat.E * o.Sec.A
	GJ := o.Mat.G * o.Sec.J
	EIy := o.Mat.E * o.Sec.Iy
	EIz := o.Mat.E * o.Sec.Iz
	l := o.L
	ll := l * l
	lll := l * ll

	kl = mat.NewDense(12, 12, nil)
	set := func(i, j int, v float64) {
		kl.Set(i, j, v)
		kl.Set(j, i, v)
	}

	// axial terms
	set(0, 0, EA/l)
	set(6, 6, EA/l)
	set(0, 6, -EA/l)

	// torsional terms
	set(3, 3, GJ/l)
	set(9, 9, GJ/l)
	set(3, 9, -GJ/l)

	// bending in the local x-y plane (about local z)
	set(1, 1, 12.0*EIz/lll)
	set(7, 7, 12.0*EIz/lll)
	set(1, 7, -12.0*EIz/lll)
	set(1, 5, 6.0*EIz/ll)
	set(1, 11, 6.0*EIz/ll)
	set(7, 5, -6.0*EIz/ll)
	set(7, 11, -6.0*EIz/ll)
	set(5, 5, 4.0*EIz/l)
	set(11, 11, 4.0*EIz/l)
	set(5, 11, 2.0*EIz/l)

	// bending in the local x-z plane (about local y)
	set(2, 2, 12.0*EIy/lll)
	set(8, 8, 12.0*EIy/lll)
	set(2, 8, -12.0*EIy/lll)
	set(2, 4, -6.0*EIy/ll)
	set(2, 10, -6.0*EIy/ll)
	set(8, 4, 6.0*EIy/ll)
	set(8, 10, 6.0*EIy/ll)
	set(4, 4, 4.0*EIy/l)
	set(10, 10, 4.0*EIy/l)
	set(4, 10, 2.0*EIy/l)
	return
}

// KMatrix computes the stiffness matrix in the global system:
// K := trans(T) * Kl * T
func (o *FrameElement) KMatrix() (k *mat.Dense) {
	k = mat.NewDense(12, 12, nil)
	k.Product(o.T.T(), o.KlMatrix(), o.T)
	return
}

// GlMatrix computes the [12][12] geometric stiffness matrix in the local
// system for the given axial force N (positive in tension), using the N/L
// scaling of the transverse DOF couplings
func (o *FrameElement) GlMatrix(N float64) (gl *mat.Dense) {
	gl = mat.NewDense(12, 12, nil)
	if math.Abs(N) < 1e-6 {
		return
	}
	f := 1.2 * N / o.L
	for _, i := range []int{1, 2} {
		gl.Set(i, i, f)
		gl.Set(i+6, i+6, f)
		gl.Set(i, i+6, -f)
		gl.Set(i+6, i, -f)
	}
	return
}

// GMatrix computes the geometric stiffness matrix in the global system
func (o *FrameElement) GMatrix(N float64) (g *mat.Dense) {
	g = mat.NewDense(12, 12, nil)
	g.Product(o.T.T(), o.GlMatrix(N), o.T)
	return
}

// GatherDisp extracts the element displacement vector [12] in the global
// system from the full free-DOF solution vector; restrained slots are zero
func (o *FrameElement) GatherDisp(u *mat.VecDense) (ue *mat.VecDense) {
	ue = mat.NewVecDense(12, nil)
	for i, I := range o.Umap {
		if I != Restrained {
			ue.SetVec(i, u.AtVec(I))
		}
	}
	return
}

// LocalForces computes the element end forces in the local system:
// f := Kl * T * ue
func (o *FrameElement) LocalForces(u *mat.VecDense) (fl *mat.VecDense) {
	ul := mat.NewVecDense(12, nil)
	ul.MulVec(o.T, o.GatherDisp(u))
	fl = mat.NewVecDense(12, nil)
	fl.MulVec(o.KlMatrix(), ul)
	return
}

// GlobalEndForces computes the element end forces in the global system:
// f := K * ue. Entries at restrained DOFs are the element's contribution to
// the support reactions.
func (o *FrameElement) GlobalEndForces(u *mat.VecDense) (fg *mat.VecDense) {
	fg = mat.NewVecDense(12, nil)
	fg.MulVec(o.KMatrix(), o.GatherDisp(u))
	return
}

// AxialForce recovers the net axial force in the element under the given
// displacement vector, using the far-end minus near-end convention
func (o *FrameElement) AxialForce(u *mat.VecDense) float64 {
	fl := o.LocalForces(u)
	return fl.AtVec(6) - fl.AtVec(0)
}

// cross returns a × b for 3-component vectors
func cross(a, b []float64) []float64 {
	return []float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}
