// Copyright 2016 The Gofra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package design

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gofra/fem"
	"github.com/cpmech/gofra/inp"
)

// Checker checks one analyzed element against a design code
type Checker interface {
	CheckElement(e *fem.FrameElement, forces *fem.ElementResult, sets *inp.DesignSettings) *ElementResult
}

// checkerallocators holds the registered checker allocators
// [material type + "/" + design code => allocator]
var checkerallocators = make(map[string]func() Checker)

// defaultChecker keys the fallback when no checker matches the pair exactly
const defaultChecker = "steel/AISC-360"

// NewChecker allocates a checker for a material type and design code,
// falling back to the AISC 360 steel checker
func NewChecker(matType, code string) (Checker, error) {
	if allocator, ok := checkerallocators[matType+"/"+code]; ok {
		return allocator(), nil
	}
	allocator, ok := checkerallocators[defaultChecker]
	if !ok {
		return nil, chk.Err("cannot find design checker for material %q and code %q", matType, code)
	}
	return allocator(), nil
}

// Engine runs design checks over all elements of an analyzed domain
type Engine struct {
	Dom     *fem.Domain         // the analyzed domain
	Sets    *inp.DesignSettings // design options
	Verbose bool                // show messages
}

// NewEngine returns a design engine over one domain
func NewEngine(dom *fem.Domain, sets *inp.DesignSettings, verbose bool) *Engine {
	return &Engine{Dom: dom, Sets: sets, Verbose: verbose}
}

// CheckAll checks every element of the domain against the results of one
// load case. The checker is selected per element from its material type.
func (o *Engine) CheckAll(res *fem.CaseResults) (results map[int]*ElementResult, err error) {
	results = make(map[int]*ElementResult)
	for _, e := range o.Dom.Elems {
		forces, ok := res.ElementResults[e.Cell.Id]
		if !ok {
			return nil, chk.Err("element %d has no analysis results to check", e.Cell.Id)
		}
		checker, err := NewChecker(e.Mat.Type, o.Sets.Code)
		if err != nil {
			return nil, err
		}
		r := checker.CheckElement(e, forces, o.Sets)
		results[e.Cell.Id] = r
		if o.Verbose {
			io.Pf(">> element %3d: %-7s (controlling: %s, ratio = %.3f)\n",
				e.Cell.Id, r.Status, r.ControllingCheck, r.ControllingRatio)
		}
	}
	return
}
