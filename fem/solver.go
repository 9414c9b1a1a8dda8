// Copyright 2016 The Gofra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gofra/inp"
)

// Solver solves the equilibrium equations of one domain, one load case at a
// time. Init is called once per run; SolveCase once per load case, so a
// solver may precompute whatever is shared between cases.
type Solver interface {
	Init(dom *Domain, sets *inp.AnalysisSettings, verbose bool) error
	SolveCase(lc *inp.LoadCase) (*CaseResults, error)
}

// solverallocators holds the registered solver allocators [analysis type => allocator]
var solverallocators = make(map[string]func() Solver)

// NewSolver allocates a solver by analysis type; e.g. "linear", "nonlinear"
func NewSolver(atype string) (Solver, error) {
	allocator, ok := solverallocators[atype]
	if !ok {
		return nil, chk.Err("cannot find solver with analysis type %q", atype)
	}
	return allocator(), nil
}
