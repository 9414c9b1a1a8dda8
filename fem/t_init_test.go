// Copyright 2016 The Gofra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/gofra/inp"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// get_nids_eqs collects node ids and equation numbers for comparison
func get_nids_eqs(dom *Domain) (nids, eqs []int) {
	for _, nod := range dom.Nodes {
		nids = append(nids, nod.Vert.Id)
		eqs = append(eqs, nod.Eqs...)
	}
	return
}

// check_vec compares a gonum vector against expected values
func check_vec(tst *testing.T, msg string, tol float64, v *mat.VecDense, correct []float64) {
	res := make([]float64, v.Len())
	for i := 0; i < v.Len(); i++ {
		res[i] = v.AtVec(i)
	}
	chk.Array(tst, msg, tol, res, correct)
}

// check_sym checks that a matrix is symmetric
func check_sym(tst *testing.T, msg string, tol float64, m *mat.Dense) {
	nr, nc := m.Dims()
	for i := 0; i < nr; i++ {
		for j := i + 1; j < nc; j++ {
			chk.Float64(tst, io.Sf("%s[%d][%d]", msg, i, j), tol, m.At(i, j), m.At(j, i))
		}
	}
}

// fixed returns a restraint map over the given DOF keys
func fixed(keys ...string) map[string]bool {
	r := make(map[string]bool)
	for _, k := range keys {
		r[k] = true
	}
	return r
}

// allfixed returns a fully restrained node
func allfixed() map[string]bool {
	return fixed(inp.DofKeys...)
}

// rod_model builds a 2-node axial rod along x: node 0 fully fixed, node 1
// free in dx only, loaded with fx = P
func rod_model(l, p float64) *inp.Model {
	m := &inp.Model{
		Nodes: []*inp.Node{
			{Id: 0, X: 0, Restraints: allfixed()},
			{Id: 1, X: l, Restraints: fixed("dy", "dz", "rx", "ry", "rz")},
		},
		Elements:  []*inp.Element{{Id: 0, Type: "brace", Na: 0, Nb: 1, Mat: "steel", Sec: "rod"}},
		Materials: []*inp.Material{{Name: "steel"}},
		Sections:  []*inp.Section{{Name: "rod"}},
		LoadCases: []*inp.LoadCase{{
			Name:  "P",
			Type:  "live",
			Loads: []*inp.Load{{Type: "nodal", Node: 1, Fx: p}},
		}},
	}
	if err := m.Prepare(); err != nil {
		chk.Panic("cannot prepare rod model: %v", err)
	}
	return m
}

// cantilever_model builds a 2-node cantilever along x: node 0 fully fixed,
// node 1 free, loaded with fy = P at the tip
func cantilever_model(l, p float64) *inp.Model {
	m := &inp.Model{
		Nodes: []*inp.Node{
			{Id: 0, X: 0, Restraints: allfixed()},
			{Id: 1, X: l},
		},
		Elements:  []*inp.Element{{Id: 0, Type: "beam", Na: 0, Nb: 1, Mat: "steel", Sec: "beam"}},
		Materials: []*inp.Material{{Name: "steel"}},
		Sections:  []*inp.Section{{Name: "beam"}},
		LoadCases: []*inp.LoadCase{{
			Name:  "tip",
			Type:  "live",
			Loads: []*inp.Load{{Type: "nodal", Node: 1, Fy: p}},
		}},
	}
	if err := m.Prepare(); err != nil {
		chk.Panic("cannot prepare cantilever model: %v", err)
	}
	return m
}

// ssbeam_model builds a 3-node simply supported beam along x with a point
// load fy = -P at the middle node. Torsion is restrained at the left support.
func ssbeam_model(l, p float64) *inp.Model {
	m := &inp.Model{
		Nodes: []*inp.Node{
			{Id: 0, X: 0, Restraints: fixed("dx", "dy", "dz", "rx")},
			{Id: 1, X: l / 2.0},
			{Id: 2, X: l, Restraints: fixed("dy", "dz")},
		},
		Elements: []*inp.Element{
			{Id: 0, Type: "beam", Na: 0, Nb: 1, Mat: "steel", Sec: "beam"},
			{Id: 1, Type: "beam", Na: 1, Nb: 2, Mat: "steel", Sec: "beam"},
		},
		Materials: []*inp.Material{{Name: "steel"}},
		Sections:  []*inp.Section{{Name: "beam"}},
		LoadCases: []*inp.LoadCase{{
			Name:  "mid",
			Type:  "live",
			Loads: []*inp.Load{{Type: "nodal", Node: 1, Fy: -p}},
		}},
	}
	if err := m.Prepare(); err != nil {
		chk.Panic("cannot prepare simply supported beam model: %v", err)
	}
	return m
}
