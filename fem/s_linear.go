// Copyright 2016 The Gofra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"
	"time"

	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/gofra/inp"
)

// LinearSolver implements direct linear static analysis. The stiffness matrix
// is assembled and factorized once and the factorization is reused across all
// load cases of the run.
type LinearSolver struct {

	// init
	dom     *Domain
	sets    *inp.AnalysisSettings
	verbose bool

	// derived
	lu   mat.LU  // shared LU factorization of the stiffness matrix
	cond float64 // 1-norm condition number estimate
	ill  bool    // condition number exceeded the tolerance
}

// add to the database of solvers
func init() {
	solverallocators["linear"] = func() Solver { return new(LinearSolver) }
}

// Init assembles and factorizes the global stiffness matrix and estimates its
// condition number. An excessive condition number is a warning, not a
// failure; singularity surfaces per load case during SolveCase.
func (o *LinearSolver) Init(dom *Domain, sets *inp.AnalysisSettings, verbose bool) error {
	o.dom = dom
	o.sets = sets
	o.verbose = verbose
	if dom.Ny < 1 {
		return &ModelIntegrityError{"model", 0, "has no free degrees of freedom"}
	}
	K := dom.AssembleStiffness()
	o.cond = mat.Cond(K, 1)
	o.ill = math.IsInf(o.cond, 1) || o.cond > sets.CondTol
	if o.ill && o.verbose {
		io.Pfyel(">> warning: stiffness matrix is ill-conditioned (cond = %g); results may be inaccurate\n", o.cond)
	}
	o.lu.Factorize(K)
	return nil
}

// SolveCase solves K·u = F for one load case and recovers the results
func (o *LinearSolver) SolveCase(lc *inp.LoadCase) (res *CaseResults, err error) {
	t0 := time.Now()
	F, err := o.dom.AssembleLoadVector(lc)
	if err != nil {
		return nil, err
	}
	u := mat.NewVecDense(o.dom.Ny, nil)
	err = o.lu.SolveVecTo(u, false, F)
	if err != nil {
		if _, near := err.(mat.Condition); !near {
			return nil, &NumericalError{lc.Name, o.cond, "cannot solve linear system"}
		}
		// near-singularity is tolerated; exact singularity is not
		err = nil
		if math.IsInf(o.cond, 1) {
			return nil, &NumericalError{lc.Name, o.cond, "stiffness matrix is singular"}
		}
	}
	for i := 0; i < o.dom.Ny; i++ {
		if v := u.AtVec(i); math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &NumericalError{lc.Name, o.cond, "stiffness matrix is singular"}
		}
	}
	res = o.dom.RecoverResults(u)
	res.AnalysisTime = time.Since(t0)
	res.IllConditioned = o.ill
	res.Cond = o.cond
	if o.verbose {
		io.Pf(">> load case %-12q solved in %v\n", lc.Name, res.AnalysisTime)
	}
	return
}
