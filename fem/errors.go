// Copyright 2016 The Gofra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import "github.com/cpmech/gosl/io"

// ModelIntegrityError indicates a fatal model defect found during
// preparation, before any solve is attempted; e.g. a zero-length element or a
// dangling node/material/section reference
type ModelIntegrityError struct {
	Entity string // "node", "element", "material" or "section"
	Id     int    // id of the offending entity
	Reason string // what is wrong
}

func (o *ModelIntegrityError) Error() string {
	return io.Sf("model integrity: %s %d: %s", o.Entity, o.Id, o.Reason)
}

// NumericalError indicates a singular or numerically unusable stiffness
// matrix during a linear or nonlinear solve. It is fatal for the load case
// being solved; other load cases in the same run proceed independently.
type NumericalError struct {
	LoadCase string  // name of the load case being solved
	Cond     float64 // condition number estimate (0 when unavailable)
	Reason   string  // what failed
}

func (o *NumericalError) Error() string {
	if o.Cond > 0 {
		return io.Sf("numerical failure in load case %q: %s (condition number = %g)", o.LoadCase, o.Reason, o.Cond)
	}
	return io.Sf("numerical failure in load case %q: %s", o.LoadCase, o.Reason)
}

// UnsupportedLoadError indicates an "element" or "distributed" load entry for
// which no conversion to equivalent nodal loads is implemented. These entries
// are rejected explicitly, never silently ignored.
type UnsupportedLoadError struct {
	LoadCase string // name of the load case
	Type     string // load entry type
}

func (o *UnsupportedLoadError) Error() string {
	return io.Sf("load case %q: load type %q is not supported; convert it to equivalent nodal loads first", o.LoadCase, o.Type)
}
