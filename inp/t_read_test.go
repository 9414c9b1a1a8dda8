// Copyright 2016 The Gofra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_read01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read01. portal frame model file")

	model, err := ReadModel("data/frame01.json")
	if err != nil {
		tst.Errorf("ReadModel failed:\n%v", err)
		return
	}
	chk.String(tst, model.Desc, "one-bay portal frame")
	chk.Int(tst, "number of nodes", len(model.Nodes), 4)
	chk.Int(tst, "number of elements", len(model.Elements), 3)
	chk.Int(tst, "number of load cases", len(model.LoadCases), 2)

	// restraints
	if !model.Id2node[0].Fixed("dx") {
		tst.Errorf("node 0 should be fixed in dx")
		return
	}
	if model.Id2node[1].Fixed("dx") {
		tst.Errorf("node 1 should be free in dx")
		return
	}

	// material defaults fill in what the file leaves out
	m := model.MatDb["A36"]
	chk.Float64(tst, "E", 1e-15, m.E, 200000.0)
	chk.Float64(tst, "G", 1e-15, m.G, 80000.0)
	chk.Float64(tst, "nu", 1e-15, m.Nu, 0.3)
	chk.Float64(tst, "rho", 1e-15, m.Rho, 7850.0)
	chk.Float64(tst, "fy", 1e-15, m.Fy, 250.0)
	chk.Float64(tst, "fu", 1e-15, m.Fu, 400.0)
	chk.String(tst, m.Type, "steel")

	// section values and derived radii of gyration
	s := model.SecDb["W200"]
	chk.Float64(tst, "A", 1e-15, s.A, 0.0058)
	chk.Float64(tst, "ry", 1e-10, s.Ry, 0.0953215972199)
	chk.Float64(tst, "rz", 1e-10, s.Rz, 0.0553982447126)

	// identities are assigned during preparation
	for _, n := range model.Nodes {
		if n.Uid == "" {
			tst.Errorf("node %d has no uid", n.Id)
			return
		}
	}

	// load case lookup
	lc := model.GetLoadCase("WIND")
	if lc == nil {
		tst.Errorf("load case WIND not found")
		return
	}
	chk.Array(tst, "wind components", 1e-15, lc.Loads[0].Components(), []float64{5, 0, 0, 0, 0, 0})
	if model.GetLoadCase("EQ") != nil {
		tst.Errorf("load case EQ should not exist")
		return
	}
}

func Test_read02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read02. defaults for empty section and material")

	model := &Model{
		Materials: []*Material{{Name: "default"}},
		Sections:  []*Section{{Name: "unit"}},
	}
	if err := model.Prepare(); err != nil {
		tst.Errorf("Prepare failed:\n%v", err)
		return
	}
	s := model.SecDb["unit"]
	chk.Array(tst, "unit section", 1e-15,
		[]float64{s.A, s.Iy, s.Iz, s.J, s.Sy, s.Sz}, []float64{1, 1, 1, 1, 1, 1})
	chk.Float64(tst, "ry", 1e-15, s.Ry, 1.0)
	chk.Float64(tst, "rz", 1e-15, s.Rz, 1.0)
}

func Test_read03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read03. duplicate definitions are rejected")

	model := &Model{Nodes: []*Node{{Id: 7}, {Id: 7}}}
	if err := model.Prepare(); err == nil {
		tst.Errorf("duplicate node id should have been rejected")
		return
	}
	model = &Model{Materials: []*Material{{Name: "a"}, {Name: "a"}}}
	if err := model.Prepare(); err == nil {
		tst.Errorf("duplicate material name should have been rejected")
		return
	}
	model = &Model{Sections: []*Section{{Name: "s"}, {Name: "s"}}}
	if err := model.Prepare(); err == nil {
		tst.Errorf("duplicate section name should have been rejected")
		return
	}
	model = &Model{Elements: []*Element{{Id: 1}, {Id: 1}}}
	if err := model.Prepare(); err == nil {
		tst.Errorf("duplicate element id should have been rejected")
		return
	}
}

func Test_read04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read04. missing input files are recoverable errors")

	if _, err := ReadModel("data/doesnotexist.json"); err == nil {
		tst.Errorf("missing model file should return an error")
		return
	}
	if _, err := ReadSettings("data/doesnotexist.json"); err == nil {
		tst.Errorf("missing settings file should return an error")
		return
	}
}

func Test_sets01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sets01. settings file with partial overrides")

	sets, err := ReadSettings("data/settings01.json")
	if err != nil {
		tst.Errorf("ReadSettings failed:\n%v", err)
		return
	}
	chk.String(tst, sets.Analysis.Type, "nonlinear")
	chk.Int(tst, "max iterations", sets.Analysis.NmaxIt, 30)
	chk.Float64(tst, "tolerance", 1e-15, sets.Analysis.Tol, 1e-8)
	chk.Int(tst, "load steps", sets.Analysis.NloadSteps, 5)
	if !sets.Analysis.GeomNonlin {
		tst.Errorf("geometric nonlinearity should be on")
		return
	}
	if sets.Analysis.MatNonlin {
		tst.Errorf("material nonlinearity should be off")
		return
	}
	chk.Float64(tst, "condition tolerance default", 1e-15, sets.Analysis.CondTol, 1e12)

	// design overrides with fallbacks
	chk.Float64(tst, "phi tension", 1e-15, sets.Design.Phi("tension", 0.9), 0.85)
	chk.Float64(tst, "phi flexure default", 1e-15, sets.Design.Phi("flexure", 0.9), 0.9)
	chk.Float64(tst, "Kx", 1e-15, sets.Design.K("Kx"), 1.2)
	chk.Float64(tst, "Ky default", 1e-15, sets.Design.K("Ky"), 1.0)
	chk.Float64(tst, "net area factor", 1e-15, sets.Design.NetAreaFactor, 0.8)
	chk.Float64(tst, "shear Cv default", 1e-15, sets.Design.ShearCv, 1.0)
}

func Test_sets02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sets02. settings validation")

	sets := NewSettings()
	if err := sets.Analysis.Validate(); err != nil {
		tst.Errorf("default settings should be valid:\n%v", err)
		return
	}
	sets.Analysis.Type = "modal"
	if err := sets.Analysis.Validate(); err == nil {
		tst.Errorf("unknown analysis type should be invalid")
		return
	}
	sets = NewSettings()
	sets.Analysis.NmaxIt = -1
	if err := sets.Analysis.Validate(); err == nil {
		tst.Errorf("negative max iterations should be invalid")
		return
	}
	sets = NewSettings()
	sets.Analysis.Tol = -1e-6
	if err := sets.Analysis.Validate(); err == nil {
		tst.Errorf("negative tolerance should be invalid")
		return
	}
}
