// Copyright 2016 The Gofra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/gofra/inp"
)

// AssembleLoadVector assembles the global load vector [Ny] for one load case.
// Nodal loads add into the free DOF slots; components on restrained DOFs pass
// straight into the supports and are dropped. Element and distributed load
// entries are rejected with UnsupportedLoadError.
func (o *Domain) AssembleLoadVector(lc *inp.LoadCase) (F *mat.VecDense, err error) {
	F = mat.NewVecDense(o.Ny, nil)
	for _, l := range lc.Loads {
		switch l.Type {
		case "nodal":
			idx, ok := o.Id2idx[l.Node]
			if !ok {
				return nil, &ModelIntegrityError{"node", l.Node, "referenced by a load does not exist"}
			}
			nod := o.Nodes[idx]
			for j, v := range l.Components() {
				if eq := nod.Eqs[j]; eq != Restrained {
					F.SetVec(eq, F.AtVec(eq)+v)
				}
			}
		default:
			return nil, &UnsupportedLoadError{lc.Name, l.Type}
		}
	}
	return
}
