// Copyright 2016 The Gofra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_dofs01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dofs01. DOF assignment. rod model")

	dom, err := NewDomain(rod_model(1.0, 1.0), chk.Verbose)
	if err != nil {
		tst.Errorf("NewDomain failed:\n%v", err)
		return
	}

	// node 0 fully fixed; node 1 has only dx free
	nids, eqs := get_nids_eqs(dom)
	io.Pforan("nids = %v\n", nids)
	io.Pforan("eqs  = %v\n", eqs)
	chk.Ints(tst, "nids", nids, []int{0, 1})
	chk.Ints(tst, "eqs", eqs, []int{-1, -1, -1, -1, -1, -1, 0, -1, -1, -1, -1, -1})
	chk.Int(tst, "Ny", dom.Ny, 1)
	chk.Int(tst, "NfixDofs", dom.NfixDofs, 11)
	chk.Ints(tst, "FreeEqs", dom.FreeEqs, []int{0})

	// element assembly map follows node order
	chk.Ints(tst, "Umap", dom.Elems[0].Umap, []int{-1, -1, -1, -1, -1, -1, 0, -1, -1, -1, -1, -1})
}

func Test_dofs02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dofs02. DOF assignment. simply supported beam")

	dom, err := NewDomain(ssbeam_model(2.0, 1.0), chk.Verbose)
	if err != nil {
		tst.Errorf("NewDomain failed:\n%v", err)
		return
	}

	// counter walks nodes in model order and slots in dx..rz order
	nids, eqs := get_nids_eqs(dom)
	io.Pforan("nids = %v\n", nids)
	io.Pforan("eqs  = %v\n", eqs)
	chk.Ints(tst, "nids", nids, []int{0, 1, 2})
	chk.Ints(tst, "eqs", eqs, []int{
		-1, -1, -1, -1, 0, 1,
		2, 3, 4, 5, 6, 7,
		8, -1, -1, 9, 10, 11,
	})
	chk.Int(tst, "Ny", dom.Ny, 12)
	chk.Int(tst, "NfixDofs", dom.NfixDofs, 6)

	// GetEq by key
	chk.Int(tst, "node1 dy", dom.Nodes[1].GetEq("dy"), 3)
	chk.Int(tst, "node2 dy", dom.Nodes[2].GetEq("dy"), -1)
	chk.Int(tst, "bad key", dom.Nodes[1].GetEq("xx"), -1)
}

func Test_dofs03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dofs03. DOF assignment is deterministic")

	model := ssbeam_model(2.0, 1.0)
	dom1, err := NewDomain(model, false)
	if err != nil {
		tst.Errorf("NewDomain failed:\n%v", err)
		return
	}
	dom2, err := NewDomain(model, false)
	if err != nil {
		tst.Errorf("NewDomain failed:\n%v", err)
		return
	}
	_, eqs1 := get_nids_eqs(dom1)
	_, eqs2 := get_nids_eqs(dom2)
	chk.Ints(tst, "eqs repeatable", eqs1, eqs2)
}

func Test_dofs04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dofs04. model integrity errors")

	// dangling end node
	model := rod_model(1.0, 1.0)
	model.Elements[0].Nb = 123
	_, err := NewDomain(model, false)
	if err == nil {
		tst.Errorf("NewDomain should have failed with a dangling node reference")
		return
	}
	if _, ok := err.(*ModelIntegrityError); !ok {
		tst.Errorf("wrong error type: %v", err)
		return
	}
	io.Pforan("OK: %v\n", err)

	// missing material
	model = rod_model(1.0, 1.0)
	model.Elements[0].Mat = "unobtainium"
	_, err = NewDomain(model, false)
	if err == nil {
		tst.Errorf("NewDomain should have failed with a missing material")
		return
	}
	io.Pforan("OK: %v\n", err)

	// zero-length element
	model = rod_model(1.0, 1.0)
	model.Nodes[1].X = 0
	_, err = NewDomain(model, false)
	if err == nil {
		tst.Errorf("NewDomain should have failed with a zero-length element")
		return
	}
	io.Pforan("OK: %v\n", err)
}
