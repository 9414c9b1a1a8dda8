// Copyright 2016 The Gofra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gofra/inp"
)

// Report collects the outcome of one analysis run over all load cases. A
// numerical failure in one case does not abort the others; failed cases are
// listed in Failed and absent from Cases.
type Report struct {
	Cases  map[string]*CaseResults // load case name => results
	Failed map[string]error        // load case name => error
}

// Analysis drives one complete run: domain preparation, solver allocation and
// the loop over load cases
type Analysis struct {

	// input
	Model   *inp.Model    // the prepared structural model
	Sets    *inp.Settings // analysis and design settings
	Verbose bool          // show messages

	// derived
	Dom    *Domain // the analysis domain
	solver Solver  // allocated according to Sets.Analysis.Type
}

// NewAnalysis validates the settings, builds the domain and initializes the
// solver. All model integrity errors surface here, before any solve.
func NewAnalysis(model *inp.Model, sets *inp.Settings, verbose bool) (o *Analysis, err error) {
	if err = sets.Analysis.Validate(); err != nil {
		return
	}
	o = &Analysis{Model: model, Sets: sets, Verbose: verbose}
	if o.Dom, err = NewDomain(model, verbose); err != nil {
		return nil, err
	}
	if o.solver, err = NewSolver(sets.Analysis.Type); err != nil {
		return nil, err
	}
	if err = o.solver.Init(o.Dom, &sets.Analysis, verbose); err != nil {
		return nil, err
	}
	return
}

// Run solves all load cases of the model. Load cases are independent: the
// error of a failing case is recorded in the report and the run continues.
// Run itself returns an error only when no load case is defined.
func (o *Analysis) Run() (rep *Report, err error) {
	if len(o.Model.LoadCases) < 1 {
		return nil, chk.Err("model has no load cases to solve")
	}
	rep = &Report{
		Cases:  make(map[string]*CaseResults),
		Failed: make(map[string]error),
	}
	for _, lc := range o.Model.LoadCases {
		res, err := o.solver.SolveCase(lc)
		if err != nil {
			rep.Failed[lc.Name] = err
			if o.Verbose {
				io.Pfyel(">> load case %-12q failed: %v\n", lc.Name, err)
			}
			continue
		}
		rep.Cases[lc.Name] = res
	}
	return
}

// RunCase solves a single load case by name
func (o *Analysis) RunCase(name string) (*CaseResults, error) {
	lc := o.Model.GetLoadCase(name)
	if lc == nil {
		return nil, chk.Err("load case %q does not exist", name)
	}
	return o.solver.SolveCase(lc)
}
