// Copyright 2016 The Gofra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import "math"

// SimplySupportedBeam computes the closed-form response of a simply supported
// beam with a point load P at midspan
type SimplySupportedBeam struct {
	E float64 // Young's modulus
	I float64 // moment of inertia about the bending axis
	L float64 // span
	P float64 // point load at midspan
}

// DeflMidspan returns the midspan deflection P·L³/(48·E·I)
func (o *SimplySupportedBeam) DeflMidspan() float64 {
	return o.P * math.Pow(o.L, 3) / (48.0 * o.E * o.I)
}

// MomentMidspan returns the midspan bending moment P·L/4
func (o *SimplySupportedBeam) MomentMidspan() float64 {
	return o.P * o.L / 4.0
}

// Reaction returns the reaction at each support P/2
func (o *SimplySupportedBeam) Reaction() float64 {
	return o.P / 2.0
}

// CantileverBeam computes the closed-form response of a cantilever with a
// point load P at the free end
type CantileverBeam struct {
	E float64 // Young's modulus
	I float64 // moment of inertia about the bending axis
	L float64 // length
	P float64 // point load at the tip
}

// DeflTip returns the tip deflection P·L³/(3·E·I)
func (o *CantileverBeam) DeflTip() float64 {
	return o.P * math.Pow(o.L, 3) / (3.0 * o.E * o.I)
}

// RotTip returns the tip rotation P·L²/(2·E·I)
func (o *CantileverBeam) RotTip() float64 {
	return o.P * o.L * o.L / (2.0 * o.E * o.I)
}

// MomentFixed returns the bending moment at the fixed end P·L
func (o *CantileverBeam) MomentFixed() float64 {
	return o.P * o.L
}

// AxialRod computes the closed-form response of a rod under axial load
type AxialRod struct {
	E float64 // Young's modulus
	A float64 // cross-sectional area
	L float64 // length
	P float64 // axial load (positive in tension)
}

// Elongation returns the elongation P·L/(E·A)
func (o *AxialRod) Elongation() float64 {
	return o.P * o.L / (o.E * o.A)
}

// Stress returns the axial stress P/A
func (o *AxialRod) Stress() float64 {
	return o.P / o.A
}

// EulerColumn computes the elastic critical load of a pin-ended column
type EulerColumn struct {
	E float64 // Young's modulus
	I float64 // minor moment of inertia
	L float64 // length
	K float64 // effective length factor
}

// CriticalLoad returns π²·E·I/(K·L)²
func (o *EulerColumn) CriticalLoad() float64 {
	kl := o.K * o.L
	return math.Pi * math.Pi * o.E * o.I / (kl * kl)
}
