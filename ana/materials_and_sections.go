// Copyright 2016 The Gofra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana provides analytical solutions and reference data: typical
// cross-section properties, reference steel grades and closed-form beam
// solutions used to verify the finite element results
package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gofra/inp"
)

// CrossSection computes cross-sectional properties of typical shapes
//
//	typ : rectangle
//	      circle                             tw
//	      I-beam                         -->| |<--
//	                                 ___    | |     ___
//	^ y       +-------+            tf |   ########   |
//	|         |       |              ---  ########   |
//	|         |       |                      ##      |
//	+----> z  |       | h = hei              ##      | h = hei
//	          |       |                      ##      |
//	          |       |              ---  ########   |
//	          +-------+            tf_|_  ########  ---
//	           b = wid                    b = wid
type CrossSection struct {

	// input
	Type string  // "rectangle", "I-beam" or "circle"
	Wid  float64 // width (b) if not circular
	Hei  float64 // height (h) if not circular
	Tf   float64 // flange thickness if I-beam
	Tw   float64 // web thickness if I-beam
	R    float64 // radius if circular

	// derived
	A  float64 // cross-sectional area
	Iy float64 // major moment of inertia (bending about the strong axis)
	Iz float64 // minor moment of inertia
	J  float64 // torsional constant
	Sy float64 // elastic section modulus about the strong axis
	Sz float64 // elastic section modulus about the weak axis
	Ry float64 // radius of gyration == √(Iy/A)
	Rz float64 // radius of gyration == √(Iz/A)
}

// Init initialises the structure and computes all derived properties
func (o *CrossSection) Init(typ string, wid, hei, tf, tw, rad float64) {

	// input data
	o.Type, o.Wid, o.Hei, o.Tf, o.Tw, o.R = typ, wid, hei, tf, tw, rad

	// area, inertias and torsional constant
	switch typ {
	case "rectangle":
		b, h := wid, hei
		b3 := b * b * b
		h3 := h * h * h
		o.A = b * h
		o.Iy = b * h3 / 12.0
		o.Iz = b3 * h / 12.0
		o.Sy = b * h * h / 6.0
		o.Sz = b * b * h / 6.0
		if b == h {
			o.J = 9.0 * b3 * b / 64.0
		} else {
			if b > h {
				b, h = h, b
			}
			o.J = h * b3 * (1.0/3.0 - 0.21*(b/h)*(1.0-b*b3/(12.0*h*h3))) // approximate
		}

	case "I-beam":
		b, h := wid, hei
		b3 := b * b * b
		h3 := h * h * h
		tf3 := tf * tf * tf
		tw3 := tw * tw * tw
		l := h - 2.0*tf
		l3 := l * l * l
		o.A = b*h - l*(b-tw)
		o.Iy = b*h3/12.0 - (b-tw)*l3/12.0
		o.Iz = l*tw3/12.0 + tf*b3/6.0
		o.J = (2.0*b*tf3 + (h-2.0*tf)*tw3) / 3.0
		o.Sy = o.Iy / (h / 2.0)
		o.Sz = o.Iz / (b / 2.0)

	case "circle":
		r2 := rad * rad
		o.A = math.Pi * r2
		o.Iy = math.Pi * r2 * r2 / 4.0
		o.Iz = o.Iy
		o.J = o.Iy + o.Iz
		o.Sy = o.Iy / rad
		o.Sz = o.Sy

	default:
		chk.Panic("cross-section type %q is unavailable", typ)
	}

	// radii of gyration
	o.Ry = math.Sqrt(o.Iy / o.A)
	o.Rz = math.Sqrt(o.Iz / o.A)
}

// ToInp converts the computed properties into an input section with the
// given name
func (o *CrossSection) ToInp(name string) *inp.Section {
	s := &inp.Section{Name: name, A: o.A, Iy: o.Iy, Iz: o.Iz, J: o.J, Sy: o.Sy, Sz: o.Sz}
	s.SetDefaults()
	return s
}

// Material holds parameters of reference structural steel grades [MPa]
type Material struct {

	// input
	Type string // grade; e.g. "A36"

	// derived
	Desc string  // description
	E    float64 // Young's modulus
	Nu   float64 // Poisson's coefficient
	Rho  float64 // density [kg/m³]
	Fy   float64 // yield strength
	Fu   float64 // ultimate strength
}

// Init initialises material parameters for a reference grade
func (o *Material) Init(typ string) {
	o.Type = typ
	switch typ {
	case "A36":
		o.Desc = "Steel: structural A36"
		o.E = 200000.0
		o.Nu = 0.3
		o.Rho = 7850.0
		o.Fy = 250.0
		o.Fu = 400.0
	case "A572-50":
		o.Desc = "Steel: A572 grade 50"
		o.E = 200000.0
		o.Nu = 0.3
		o.Rho = 7850.0
		o.Fy = 345.0
		o.Fu = 450.0
	case "A992":
		o.Desc = "Steel: A992 wide-flange"
		o.E = 200000.0
		o.Nu = 0.3
		o.Rho = 7850.0
		o.Fy = 345.0
		o.Fu = 450.0
	default:
		chk.Panic("material type %q is unavailable", typ)
	}
}

// ToInp converts the reference grade into an input material with the given
// name. The shear modulus follows from E and ν.
func (o *Material) ToInp(name string) *inp.Material {
	m := &inp.Material{
		Name: name,
		Type: "steel",
		E:    o.E,
		G:    o.E / (2.0 * (1.0 + o.Nu)),
		Nu:   o.Nu,
		Rho:  o.Rho,
		Fy:   o.Fy,
		Fu:   o.Fu,
	}
	m.SetDefaults()
	return m
}
