// Copyright 2016 The Gofra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package design implements code-based design checking of analyzed frame
// elements. Checkers are registered per (material type, design code) pair;
// the AISC 360 steel checker is the default.
package design

import (
	"math"
)

// status labels of a design check
const (
	StatusPass = "PASS"
	StatusWarn = "WARNING"
	StatusFail = "FAIL"
)

// Check holds one demand-vs-capacity comparison. Ratio is +Inf when the
// capacity is not positive, which forces a FAIL.
type Check struct {
	Type     string             `json:"check_type"`         // "tension", "compression", "flexure", "combined" or "shear"
	Demand   float64            `json:"demand"`             // required strength
	Capacity float64            `json:"capacity"`           // design strength φ·Rn
	Ratio    float64            `json:"ratio"`              // Demand / Capacity
	Status   string             `json:"status"`             // PASS, WARNING or FAIL
	Equation string             `json:"governing_equation"` // e.g. "AISC 360 E3"
	Details  map[string]float64 `json:"details"`            // intermediate quantities
}

// newCheck builds a check with the ratio and status derived from demand and
// capacity. Utilization in [0.9, 1.0] is a WARNING; above 1.0 a FAIL.
func newCheck(ctype string, demand, capacity float64, equation string, details map[string]float64) *Check {
	ratio := math.Inf(1)
	if capacity > 0 {
		ratio = demand / capacity
	}
	status := StatusPass
	switch {
	case ratio > 1.0:
		status = StatusFail
	case ratio >= 0.9:
		status = StatusWarn
	}
	return &Check{
		Type:     ctype,
		Demand:   demand,
		Capacity: capacity,
		Ratio:    ratio,
		Status:   status,
		Equation: equation,
		Details:  details,
	}
}

// ElementResult holds all checks of one element for one load case, with the
// controlling (largest ratio) check identified
type ElementResult struct {
	ElemId           int      `json:"element_id"`        // user-facing element number
	ElemType         string   `json:"element_type"`      // "beam", "column" or "brace"
	Section          string   `json:"section_name"`      // section name
	Material         string   `json:"material_name"`     // material name
	Checks           []*Check `json:"design_checks"`     // all checks performed
	ControllingRatio float64  `json:"controlling_ratio"` // max ratio over all checks; 0 when no check applies
	ControllingCheck string   `json:"controlling_check"` // type of the controlling check; "" when none
	Status           string   `json:"overall_status"`    // status of the controlling check
	Recommendations  []string `json:"recommendations"`   // follow-up suggestions for WARNING/FAIL
}

// finish computes the controlling check, overall status and recommendations
func (o *ElementResult) finish() {
	o.Status = StatusPass
	for _, c := range o.Checks {
		if c.Ratio > o.ControllingRatio || o.ControllingCheck == "" {
			o.ControllingRatio = c.Ratio
			o.ControllingCheck = c.Type
		}
	}
	switch {
	case o.ControllingRatio > 1.0:
		o.Status = StatusFail
		o.Recommendations = append(o.Recommendations, "Consider increasing section size")
	case o.ControllingRatio >= 0.9:
		o.Status = StatusWarn
		o.Recommendations = append(o.Recommendations, "Section utilization is high")
	}
}

// Summary aggregates the outcome over all checked elements
type Summary struct {
	NumPass  int     `json:"num_pass"`         // elements with PASS
	NumWarn  int     `json:"num_warning"`      // elements with WARNING
	NumFail  int     `json:"num_fail"`         // elements with FAIL
	MaxRatio float64 `json:"max_ratio"`        // largest controlling ratio
	Critical int     `json:"critical_element"` // element id with the largest ratio; -1 when none
}

// Summarize computes the summary of a set of element results
func Summarize(results map[int]*ElementResult) (s *Summary) {
	s = &Summary{Critical: -1}
	for id, r := range results {
		switch r.Status {
		case StatusFail:
			s.NumFail++
		case StatusWarn:
			s.NumWarn++
		default:
			s.NumPass++
		}
		if r.ControllingRatio > s.MaxRatio {
			s.MaxRatio = r.ControllingRatio
			s.Critical = id
		}
	}
	return
}
