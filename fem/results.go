// Copyright 2016 The Gofra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"
	"time"

	"gonum.org/v1/gonum/mat"
)

// NodeResult holds the recovered values at one node for one load case
type NodeResult struct {
	Displacements []float64 `json:"displacements"` // [6] dx,dy,dz,rx,ry,rz
	Reactions     []float64 `json:"reactions"`     // [6] support reactions; zero at free DOFs
}

// ElementResult holds the recovered end forces and stresses of one element.
// Forces follow the net (far-end minus near-end) convention for axial, shear
// and torsion components; moments are taken at the far end.
type ElementResult struct {
	AxialForce float64 `json:"axial_force"` // net axial force; positive in tension
	ShearY     float64 `json:"shear_y"`     // net shear along local y
	ShearZ     float64 `json:"shear_z"`     // net shear along local z
	Torsion    float64 `json:"torsion"`     // net torsional moment
	MomentY    float64 `json:"moment_y"`    // bending moment about local y at far end
	MomentZ    float64 `json:"moment_z"`    // bending moment about local z at far end

	AxialStress    float64 `json:"axial_stress"`     // AxialForce / A
	BendingStressY float64 `json:"bending_stress_y"` // MomentY / Sy
	BendingStressZ float64 `json:"bending_stress_z"` // MomentZ / Sz
	ShearStressY   float64 `json:"shear_stress_y"`   // ShearY / A
	ShearStressZ   float64 `json:"shear_stress_z"`   // ShearZ / A
}

// StepRecord holds the outcome of one nonlinear load step
type StepRecord struct {
	Step       int     `json:"step"`        // 1-based step number
	LoadFactor float64 `json:"load_factor"` // fraction of the total load applied through this step
	Converged  bool    `json:"converged"`   // whether the step converged
	Iterations int     `json:"iterations"`  // Newton-Raphson iterations spent
	Residual   float64 `json:"residual"`    // residual norm at exit
}

// ConvergenceInfo summarizes the iteration history of a nonlinear solve
type ConvergenceInfo struct {
	Converged  bool          `json:"converged"`  // whether all load steps converged
	Iterations int           `json:"iterations"` // total iterations over all steps
	Residual   float64       `json:"residual"`   // residual norm of the last step attempted
	LoadSteps  []*StepRecord `json:"load_steps"` // per-step history, including a failed final step
}

// CaseResults holds everything recovered for one load case
type CaseResults struct {
	NodeResults    map[int]*NodeResult    `json:"node_results"`     // node id => result
	ElementResults map[int]*ElementResult `json:"element_results"`  // element id => result
	MaxDisp        float64                `json:"max_displacement"` // max |translation| component over all nodes
	MaxStress      float64                `json:"max_stress"`       // max |stress| component over all elements
	MaxReact       float64                `json:"max_reaction"`     // max |reaction force| component over all supports
	AnalysisTime   time.Duration          `json:"analysis_time"`    // wall-clock time of the solve
	Convergence    *ConvergenceInfo       `json:"convergence"`      // nil for linear analyses
	IllConditioned bool                   `json:"ill_conditioned"`  // condition number exceeded the tolerance
	Cond           float64                `json:"condition_number"` // 1-norm condition number estimate of the stiffness
}

// RecoverResults builds per-node and per-element results from the solved
// displacement vector. Reactions are recovered by scattering each element's
// global end forces into the restrained slots of its nodes.
func (o *Domain) RecoverResults(u *mat.VecDense) (res *CaseResults) {
	res = &CaseResults{
		NodeResults:    make(map[int]*NodeResult),
		ElementResults: make(map[int]*ElementResult),
	}

	// nodal displacements
	for _, nod := range o.Nodes {
		nr := &NodeResult{
			Displacements: make([]float64, 6),
			Reactions:     make([]float64, 6),
		}
		for j, eq := range nod.Eqs {
			if eq != Restrained {
				nr.Displacements[j] = u.AtVec(eq)
			}
		}
		for j := 0; j < 3; j++ {
			res.MaxDisp = math.Max(res.MaxDisp, math.Abs(nr.Displacements[j]))
		}
		res.NodeResults[nod.Vert.Id] = nr
	}

	// element forces, stresses and reaction contributions
	for _, e := range o.Elems {
		fl := e.LocalForces(u)
		er := &ElementResult{
			AxialForce: fl.AtVec(6) - fl.AtVec(0),
			ShearY:     fl.AtVec(7) - fl.AtVec(1),
			ShearZ:     fl.AtVec(8) - fl.AtVec(2),
			Torsion:    fl.AtVec(9) - fl.AtVec(3),
			MomentY:    fl.AtVec(10),
			MomentZ:    fl.AtVec(11),
		}
		er.AxialStress = er.AxialForce / e.Sec.A
		er.BendingStressY = er.MomentY / e.Sec.Sy
		er.BendingStressZ = er.MomentZ / e.Sec.Sz
		er.ShearStressY = er.ShearY / e.Sec.A
		er.ShearStressZ = er.ShearZ / e.Sec.A
		for _, s := range []float64{er.AxialStress, er.BendingStressY, er.BendingStressZ, er.ShearStressY, er.ShearStressZ} {
			res.MaxStress = math.Max(res.MaxStress, math.Abs(s))
		}
		res.ElementResults[e.Cell.Id] = er

		// reactions
		fg := e.GlobalEndForces(u)
		na, nb := res.NodeResults[e.Cell.Na], res.NodeResults[e.Cell.Nb]
		for j := 0; j < 6; j++ {
			if o.Nodes[e.Na].Eqs[j] == Restrained {
				na.Reactions[j] += fg.AtVec(j)
			}
			if o.Nodes[e.Nb].Eqs[j] == Restrained {
				nb.Reactions[j] += fg.AtVec(6 + j)
			}
		}
	}

	// summary over reaction forces
	for _, nr := range res.NodeResults {
		for j := 0; j < 3; j++ {
			res.MaxReact = math.Max(res.MaxReact, math.Abs(nr.Reactions[j]))
		}
	}
	return
}
