// Copyright 2016 The Gofra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"
	"time"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/gofra/inp"
)

// NonlinearSolver implements incremental-iterative (Newton-Raphson) analysis
// with equal load increments. At every iteration the tangent stiffness is the
// linear stiffness, augmented with the geometric (P-Delta) stiffness and/or
// reassembled from the current state according to the settings. A failed step
// stops the stepping; the history up to and including the failed step is
// retained in the results.
type NonlinearSolver struct {

	// init
	dom     *Domain
	sets    *inp.AnalysisSettings
	verbose bool

	// derived
	klin *mat.Dense // linear stiffness; reused when material nonlinearity is off

	// Checkpoint, when set, is called after every load step with the step
	// record and the current displacement vector. Returning false stops the
	// stepping, allowing a host to cancel cooperatively at step boundaries.
	Checkpoint func(rec *StepRecord, u *mat.VecDense) bool
}

// add to the database of solvers
func init() {
	solverallocators["nonlinear"] = func() Solver { return new(NonlinearSolver) }
}

// Init assembles the linear stiffness matrix shared by all load cases
func (o *NonlinearSolver) Init(dom *Domain, sets *inp.AnalysisSettings, verbose bool) error {
	o.dom = dom
	o.sets = sets
	o.verbose = verbose
	if dom.Ny < 1 {
		return &ModelIntegrityError{"model", 0, "has no free degrees of freedom"}
	}
	o.klin = dom.AssembleStiffness()
	return nil
}

// tangent computes the tangent stiffness at the current displacement state
func (o *NonlinearSolver) tangent(u *mat.VecDense) (kt *mat.Dense) {
	if o.sets.MatNonlin {
		kt = o.dom.AssembleStiffness()
	} else {
		kt = mat.DenseCopyOf(o.klin)
	}
	if o.sets.GeomNonlin {
		kt.Add(kt, o.dom.AssembleGeometric(u))
	}
	return
}

// SolveCase runs the load stepping for one load case
func (o *NonlinearSolver) SolveCase(lc *inp.LoadCase) (res *CaseResults, err error) {

	// total load vector and state
	t0 := time.Now()
	Ftot, err := o.dom.AssembleLoadVector(lc)
	if err != nil {
		return nil, err
	}
	ny := o.dom.Ny
	u := mat.NewVecDense(ny, nil)
	du := mat.NewVecDense(ny, nil)
	r := mat.NewVecDense(ny, nil)
	fint := mat.NewVecDense(ny, nil)
	cvg := &ConvergenceInfo{Converged: true}

	// load stepping with equal increments
	nst := o.sets.NloadSteps
	factors := utl.LinSpace(1.0/float64(nst), 1.0, nst)
	var lu mat.LU
	for istep, f := range factors {
		rec := &StepRecord{Step: istep + 1, LoadFactor: f}

		// Newton-Raphson iterations
		for it := 1; it <= o.sets.NmaxIt; it++ {
			rec.Iterations = it
			kt := o.tangent(u)

			// residual := f·Ftot - kt·u
			fint.MulVec(kt, u)
			r.ScaleVec(f, Ftot)
			r.SubVec(r, fint)
			rec.Residual = mat.Norm(r, 2)
			if o.verbose {
				io.Pf("   step %2d (factor=%.3f) it %2d: residual = %e\n", rec.Step, f, it, rec.Residual)
			}
			if rec.Residual < o.sets.Tol {
				rec.Converged = true
				break
			}

			// solve kt·du = r and update
			lu.Factorize(kt)
			err := lu.SolveVecTo(du, false, r)
			if err != nil {
				if _, near := err.(mat.Condition); !near {
					rec.Converged = false
					break
				}
			}
			singular := false
			for i := 0; i < ny; i++ {
				if v := du.AtVec(i); math.IsNaN(v) || math.IsInf(v, 0) {
					singular = true
					break
				}
			}
			if singular {
				rec.Converged = false
				break
			}
			u.AddVec(u, du)
		}

		// bookkeeping; a failed step ends the stepping
		cvg.LoadSteps = append(cvg.LoadSteps, rec)
		cvg.Iterations += rec.Iterations
		cvg.Residual = rec.Residual
		if o.Checkpoint != nil && !o.Checkpoint(rec, u) {
			cvg.Converged = false
			break
		}
		if !rec.Converged {
			cvg.Converged = false
			if o.verbose {
				io.Pfyel(">> load case %q: step %d did not converge after %d iterations (residual = %e)\n",
					lc.Name, rec.Step, rec.Iterations, rec.Residual)
			}
			break
		}
	}

	// recover results at the last equilibrium state reached
	res = o.dom.RecoverResults(u)
	res.AnalysisTime = time.Since(t0)
	res.Convergence = cvg
	if o.verbose && cvg.Converged {
		io.Pf(">> load case %-12q solved in %v (%d steps, %d iterations)\n",
			lc.Name, res.AnalysisTime, len(cvg.LoadSteps), cvg.Iterations)
	}
	return
}
