// Copyright 2016 The Gofra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

func Test_frame01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("frame01. local stiffness of element along x")

	dom, err := NewDomain(cantilever_model(2.0, 1.0), chk.Verbose)
	if err != nil {
		tst.Errorf("NewDomain failed:\n%v", err)
		return
	}
	e := dom.Elems[0]
	E, G := e.Mat.E, e.Mat.G
	A, Iy, Iz, J := e.Sec.A, e.Sec.Iy, e.Sec.Iz, e.Sec.J
	l := e.L
	chk.Float64(tst, "L", 1e-15, l, 2.0)

	// classical terms
	kl := e.KlMatrix()
	chk.Float64(tst, "kl[0][0] = EA/L", 1e-12, kl.At(0, 0), E*A/l)
	chk.Float64(tst, "kl[0][6] = -EA/L", 1e-12, kl.At(0, 6), -E*A/l)
	chk.Float64(tst, "kl[3][3] = GJ/L", 1e-12, kl.At(3, 3), G*J/l)
	chk.Float64(tst, "kl[1][1] = 12EIz/L3", 1e-12, kl.At(1, 1), 12.0*E*Iz/(l*l*l))
	chk.Float64(tst, "kl[1][5] = 6EIz/L2", 1e-12, kl.At(1, 5), 6.0*E*Iz/(l*l))
	chk.Float64(tst, "kl[5][5] = 4EIz/L", 1e-12, kl.At(5, 5), 4.0*E*Iz/l)
	chk.Float64(tst, "kl[5][11] = 2EIz/L", 1e-12, kl.At(5, 11), 2.0*E*Iz/l)
	chk.Float64(tst, "kl[2][2] = 12EIy/L3", 1e-12, kl.At(2, 2), 12.0*E*Iy/(l*l*l))
	chk.Float64(tst, "kl[2][4] = -6EIy/L2", 1e-12, kl.At(2, 4), -6.0*E*Iy/(l*l))
	chk.Float64(tst, "kl[4][4] = 4EIy/L", 1e-12, kl.At(4, 4), 4.0*E*Iy/l)
	check_sym(tst, "kl", 1e-12, kl)

	// element along x has the identity transformation
	for i := 0; i < 12; i++ {
		for j := 0; j < 12; j++ {
			v := 0.0
			if i == j {
				v = 1.0
			}
			if math.Abs(e.T.At(i, j)-v) > 1e-15 {
				tst.Errorf("T is not the identity at (%d,%d)", i, j)
				return
			}
		}
	}

	// global stiffness equals local stiffness here
	k := e.KMatrix()
	for i := 0; i < 12; i++ {
		for j := 0; j < 12; j++ {
			if math.Abs(k.At(i, j)-kl.At(i, j)) > 1e-9 {
				tst.Errorf("K != Kl at (%d,%d)", i, j)
				return
			}
		}
	}
}

func Test_frame02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("frame02. transformation of skewed and vertical elements")

	model := cantilever_model(2.0, 1.0)
	model.Nodes[1].X = 1.0
	model.Nodes[1].Y = 2.0
	model.Nodes[1].Z = 2.0
	if err := model.Prepare(); err != nil {
		tst.Errorf("Prepare failed:\n%v", err)
		return
	}
	dom, err := NewDomain(model, chk.Verbose)
	if err != nil {
		tst.Errorf("NewDomain failed:\n%v", err)
		return
	}
	e := dom.Elems[0]
	chk.Float64(tst, "L", 1e-15, e.L, 3.0)

	// rows of T are orthonormal: T * trans(T) = I
	var tt mat.Dense
	tt.Mul(e.T, e.T.T())
	for i := 0; i < 12; i++ {
		for j := 0; j < 12; j++ {
			v := 0.0
			if i == j {
				v = 1.0
			}
			chk.Float64(tst, io.Sf("TTt[%d][%d]", i, j), 1e-14, tt.At(i, j), v)
		}
	}

	// round trip: T * K * trans(T) = Kl
	var back mat.Dense
	back.Product(e.T, e.KMatrix(), e.T.T())
	kl := e.KlMatrix()
	for i := 0; i < 12; i++ {
		for j := 0; j < 12; j++ {
			if math.Abs(back.At(i, j)-kl.At(i, j)) > 1e-9*(1.0+math.Abs(kl.At(i, j))) {
				tst.Errorf("T K Tt != Kl at (%d,%d): %g != %g", i, j, back.At(i, j), kl.At(i, j))
				return
			}
		}
	}
	check_sym(tst, "K", 1e-9, e.KMatrix())

	// vertical element switches the reference axis to global x
	model = cantilever_model(2.0, 1.0)
	model.Nodes[1].X = 0
	model.Nodes[1].Z = 3.0
	if err := model.Prepare(); err != nil {
		tst.Errorf("Prepare failed:\n%v", err)
		return
	}
	dom, err = NewDomain(model, chk.Verbose)
	if err != nil {
		tst.Errorf("NewDomain failed:\n%v", err)
		return
	}
	e = dom.Elems[0]

	// local x is global z; local y = ex × x = -global y; local z = x × y = global x
	chk.Array(tst, "vx", 1e-15, []float64{e.T.At(0, 0), e.T.At(0, 1), e.T.At(0, 2)}, []float64{0, 0, 1})
	chk.Array(tst, "vy", 1e-15, []float64{e.T.At(1, 0), e.T.At(1, 1), e.T.At(1, 2)}, []float64{0, -1, 0})
	chk.Array(tst, "vz", 1e-15, []float64{e.T.At(2, 0), e.T.At(2, 1), e.T.At(2, 2)}, []float64{1, 0, 0})
}

func Test_frame03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("frame03. geometric stiffness")

	dom, err := NewDomain(cantilever_model(2.0, 1.0), chk.Verbose)
	if err != nil {
		tst.Errorf("NewDomain failed:\n%v", err)
		return
	}
	e := dom.Elems[0]

	// negligible axial force yields a zero matrix
	gl := e.GlMatrix(1e-8)
	for i := 0; i < 12; i++ {
		for j := 0; j < 12; j++ {
			if gl.At(i, j) != 0 {
				tst.Errorf("Gl should be zero for negligible axial force")
				return
			}
		}
	}

	// tension stiffens the transverse DOFs
	N := 10.0
	f := 1.2 * N / e.L
	gl = e.GlMatrix(N)
	chk.Float64(tst, "gl[1][1]", 1e-14, gl.At(1, 1), f)
	chk.Float64(tst, "gl[2][2]", 1e-14, gl.At(2, 2), f)
	chk.Float64(tst, "gl[7][7]", 1e-14, gl.At(7, 7), f)
	chk.Float64(tst, "gl[8][8]", 1e-14, gl.At(8, 8), f)
	chk.Float64(tst, "gl[1][7]", 1e-14, gl.At(1, 7), -f)
	chk.Float64(tst, "gl[2][8]", 1e-14, gl.At(2, 8), -f)
	check_sym(tst, "gl", 1e-14, gl)

	// compression destabilizes
	gl = e.GlMatrix(-N)
	chk.Float64(tst, "gl[1][1] compression", 1e-14, gl.At(1, 1), -f)
}
