// Copyright 2016 The Gofra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the analysis engine: DOF management, stiffness
// assembly and the linear/nonlinear solvers for 3D frame structures
package fem

import (
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/gofra/inp"
)

// Restrained marks a DOF slot fixed by a support condition. It is distinct
// from any valid equation number.
const Restrained = -1

// Node holds one structural node during analysis: the input vertex plus the
// global equation numbers of its 6 DOFs
type Node struct {
	Vert *inp.Node // input data
	Eqs  []int     // [6] global equation numbers ordered as inp.DofKeys; Restrained when fixed
}

// GetEq returns the equation number of the DOF with given key ("dx" ... "rz")
//
//	Note: returns Restrained if the DOF is fixed or the key is unknown
func (o *Node) GetEq(key string) int {
	for i, k := range inp.DofKeys {
		if k == key {
			return o.Eqs[i]
		}
	}
	return Restrained
}

// Domain holds all nodes and elements of one model together with the DOF
// numbering. It owns all matrices for the duration of one run; nothing is
// cached between runs.
type Domain struct {

	// init
	Model   *inp.Model // input data
	Verbose bool       // show messages

	// nodes and elements
	Nodes   []*Node               // all nodes; same order as Model.Nodes
	Elems   []*FrameElement       // all frame elements
	Id2idx  map[int]int           // node id => index into Nodes (arena index)
	Id2elem map[int]*FrameElement // element id => element

	// DOF numbering
	Ny       int   // total number of free DOFs == dimension of the global system
	FreeEqs  []int // equation numbers of free DOFs == 0 .. Ny-1
	NfixDofs int   // total number of restrained DOF slots
}

// NewDomain builds the analysis domain from a prepared model. It validates
// model integrity (element lengths, node/material/section references) and
// assigns the DOF equation numbers.
func NewDomain(model *inp.Model, verbose bool) (o *Domain, err error) {

	// domain and nodes
	o = new(Domain)
	o.Model = model
	o.Verbose = verbose
	o.Nodes = make([]*Node, len(model.Nodes))
	o.Id2idx = make(map[int]int)
	for i, v := range model.Nodes {
		o.Nodes[i] = &Node{Vert: v, Eqs: make([]int, 6)}
		o.Id2idx[v.Id] = i
	}

	// elements
	o.Elems = make([]*FrameElement, 0, len(model.Elements))
	o.Id2elem = make(map[int]*FrameElement)
	for _, c := range model.Elements {
		ia, ok := o.Id2idx[c.Na]
		if !ok {
			return nil, &ModelIntegrityError{"element", c.Id, io.Sf("start node %d does not exist", c.Na)}
		}
		ib, ok := o.Id2idx[c.Nb]
		if !ok {
			return nil, &ModelIntegrityError{"element", c.Id, io.Sf("end node %d does not exist", c.Nb)}
		}
		m, ok := model.MatDb[c.Mat]
		if !ok {
			return nil, &ModelIntegrityError{"element", c.Id, io.Sf("material %q does not exist", c.Mat)}
		}
		s, ok := model.SecDb[c.Sec]
		if !ok {
			return nil, &ModelIntegrityError{"element", c.Id, io.Sf("section %q does not exist", c.Sec)}
		}
		e, err := newFrameElement(c, ia, ib, o.Nodes[ia].Vert, o.Nodes[ib].Vert, m, s)
		if err != nil {
			return nil, err
		}
		o.Elems = append(o.Elems, e)
		o.Id2elem[c.Id] = e
	}

	// DOF numbering
	o.assignDofs()
	if o.Verbose {
		io.Pf(">> number of nodes     = %d\n", len(o.Nodes))
		io.Pf(">> number of elements  = %d\n", len(o.Elems))
		io.Pf(">> number of equations = %d\n", o.Ny)
	}

	// equation maps of elements
	for _, e := range o.Elems {
		e.SetEqs(o.Nodes[e.Na].Eqs, o.Nodes[e.Nb].Eqs)
	}
	return
}

// assignDofs assigns sequential equation numbers to unrestrained DOF slots.
// Nodes are visited in model order and the 6 slots of each node in the fixed
// dx,dy,dz,rx,ry,rz order, so the numbering is deterministic.
func (o *Domain) assignDofs() {
	var eq int
	for _, nod := range o.Nodes {
		for j, key := range inp.DofKeys {
			if nod.Vert.Fixed(key) {
				nod.Eqs[j] = Restrained
				o.NfixDofs++
			} else {
				nod.Eqs[j] = eq
				o.FreeEqs = append(o.FreeEqs, eq)
				eq++
			}
		}
	}
	o.Ny = eq
}

// AssembleStiffness assembles the global linear stiffness matrix [Ny][Ny].
// Element contributions at restrained DOFs are dropped, which is equivalent
// to static condensation against zero-displacement boundary conditions.
func (o *Domain) AssembleStiffness() (K *mat.Dense) {
	K = mat.NewDense(o.Ny, o.Ny, nil)
	for _, e := range o.Elems {
		ke := e.KMatrix()
		for i, I := range e.Umap {
			if I == Restrained {
				continue
			}
			for j, J := range e.Umap {
				if J == Restrained {
					continue
				}
				K.Set(I, J, K.At(I, J)+ke.At(i, j))
			}
		}
	}
	return
}

// AssembleGeometric assembles the global geometric (P-Delta) stiffness from
// the axial force each element carries under the given displacement vector
func (o *Domain) AssembleGeometric(u *mat.VecDense) (Kg *mat.Dense) {
	Kg = mat.NewDense(o.Ny, o.Ny, nil)
	for _, e := range o.Elems {
		kg := e.GMatrix(e.AxialForce(u))
		for i, I := range e.Umap {
			if I == Restrained {
				continue
			}
			for j, J := range e.Umap {
				if J == Restrained {
					continue
				}
				Kg.Set(I, J, Kg.At(I, J)+kg.At(i, j))
			}
		}
	}
	return
}
