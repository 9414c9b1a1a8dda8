// Copyright 2016 The Gofra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the structural model input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	"math"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/google/uuid"
)

// DofKeys holds the fixed ordering of the 6 degrees of freedom at each node:
// 3 translations followed by 3 rotations
var DofKeys = []string{"dx", "dy", "dz", "rx", "ry", "rz"}

// ForceKeys holds the force/moment component names matching DofKeys
var ForceKeys = []string{"fx", "fy", "fz", "mx", "my", "mz"}

// Node holds input data of one structural node
type Node struct {

	// input
	Id         int             `json:"id"`         // user-facing node number
	X          float64         `json:"x"`          // x-coordinate
	Y          float64         `json:"y"`          // y-coordinate
	Z          float64         `json:"z"`          // z-coordinate
	Restraints map[string]bool `json:"restraints"` // fixed DOFs; e.g. {"dx":true, "dy":true}

	// derived
	Uid string // internal identity assigned during preparation
}

// Coords returns the coordinates of this node as a slice
func (o *Node) Coords() []float64 {
	return []float64{o.X, o.Y, o.Z}
}

// Fixed tells whether the DOF with given key is restrained or not
func (o *Node) Fixed(key string) bool {
	if o.Restraints == nil {
		return false
	}
	return o.Restraints[key]
}

// Element holds input data of one frame element (beam, column or brace; all
// are modeled as 3D frame elements with 6 DOFs per node)
type Element struct {

	// input
	Id   int    `json:"id"`   // user-facing element number
	Type string `json:"type"` // "beam", "column" or "brace"
	Na   int    `json:"na"`   // id of start node
	Nb   int    `json:"nb"`   // id of end node
	Mat  string `json:"mat"`  // material name
	Sec  string `json:"sec"`  // section name

	// derived
	Uid string // internal identity assigned during preparation
}

// Material holds material data. Zero-valued properties receive the documented
// defaults during Prepare so all consumers see fully-populated values.
type Material struct {

	// input
	Name string  `json:"name"` // name of material
	Type string  `json:"type"` // type of material; e.g. "steel", "concrete"
	E    float64 `json:"E"`    // Young's modulus [MPa]
	G    float64 `json:"G"`    // shear modulus [MPa]
	Nu   float64 `json:"nu"`   // Poisson's coefficient
	Rho  float64 `json:"rho"`  // density [kg/m³]
	Fy   float64 `json:"fy"`   // yield strength [MPa]
	Fu   float64 `json:"fu"`   // ultimate strength [MPa]

	// derived
	Uid string // internal identity assigned during preparation
}

// Section holds cross-section data. Zero-valued properties default to 1.0
// during Prepare.
type Section struct {

	// input
	Name string  `json:"name"` // name of section
	A    float64 `json:"A"`    // cross-sectional area
	Iy   float64 `json:"Iy"`   // moment of inertia about local y-axis
	Iz   float64 `json:"Iz"`   // moment of inertia about local z-axis
	J    float64 `json:"J"`    // torsional constant
	Sy   float64 `json:"Sy"`   // section modulus about local y-axis
	Sz   float64 `json:"Sz"`   // section modulus about local z-axis

	// derived
	Uid string  // internal identity assigned during preparation
	Ry  float64 // radius of gyration about y-axis == √(Iy/A)
	Rz  float64 // radius of gyration about z-axis == √(Iz/A)
}

// Load holds one load entry of a load case. Only "nodal" loads are fully
// supported; "element" and "distributed" entries are recognized but must be
// converted to statically-equivalent nodal loads before solving.
type Load struct {
	Type string  `json:"type"` // "nodal", "element" or "distributed"
	Node int     `json:"node"` // node id (nodal loads)
	Elem int     `json:"elem"` // element id (element/distributed loads)
	Fx   float64 `json:"fx"`   // force along x
	Fy   float64 `json:"fy"`   // force along y
	Fz   float64 `json:"fz"`   // force along z
	Mx   float64 `json:"mx"`   // moment about x
	My   float64 `json:"my"`   // moment about y
	Mz   float64 `json:"mz"`   // moment about z
}

// Components returns the 6 force/moment components ordered as DofKeys
func (o *Load) Components() []float64 {
	return []float64{o.Fx, o.Fy, o.Fz, o.Mx, o.My, o.Mz}
}

// LoadCase holds a named, independent set of applied loads
type LoadCase struct {

	// input
	Name  string  `json:"name"`  // name of load case; e.g. "DL"
	Type  string  `json:"type"`  // type tag; e.g. "dead", "live", "wind", "seismic"
	Loads []*Load `json:"loads"` // ordered load entries

	// derived
	Uid string // internal identity assigned during preparation
}

// Model holds the complete analysis-ready structural model. After Prepare
// returns successfully the model is treated as immutable by the solvers.
type Model struct {

	// input
	Desc      string      `json:"desc"`      // description of model
	Nodes     []*Node     `json:"nodes"`     // all nodes
	Elements  []*Element  `json:"elements"`  // all frame elements
	Materials []*Material `json:"materials"` // all materials
	Sections  []*Section  `json:"sections"`  // all sections
	LoadCases []*LoadCase `json:"loadcases"` // all load cases

	// derived
	Id2node map[int]*Node        // node id => node
	Id2elem map[int]*Element     // element id => element
	MatDb   map[string]*Material // material name => material
	SecDb   map[string]*Section  // section name => section
}

// ReadModel reads a structural model from a JSON file and prepares it
func ReadModel(fnamepath string) (o *Model, err error) {
	if _, errStat := os.Stat(fnamepath); errStat != nil {
		return nil, chk.Err("cannot read model file %q:\n%v", fnamepath, errStat)
	}
	b := io.ReadFile(fnamepath)
	o = new(Model)
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot parse model file %q:\n%v", fnamepath, err)
	}
	err = o.Prepare()
	if err != nil {
		return nil, err
	}
	return
}

// Prepare applies material/section defaults, assigns internal identities and
// builds the auxiliary maps. Defaults are applied here, once, and never
// silently at use-time.
func (o *Model) Prepare() (err error) {

	// materials
	o.MatDb = make(map[string]*Material)
	for _, m := range o.Materials {
		m.SetDefaults()
		if m.Uid == "" {
			m.Uid = uuid.NewString()
		}
		if _, ok := o.MatDb[m.Name]; ok {
			return chk.Err("material %q is defined more than once", m.Name)
		}
		o.MatDb[m.Name] = m
	}

	// sections
	o.SecDb = make(map[string]*Section)
	for _, s := range o.Sections {
		s.SetDefaults()
		if s.Uid == "" {
			s.Uid = uuid.NewString()
		}
		if _, ok := o.SecDb[s.Name]; ok {
			return chk.Err("section %q is defined more than once", s.Name)
		}
		o.SecDb[s.Name] = s
	}

	// nodes
	o.Id2node = make(map[int]*Node)
	for _, n := range o.Nodes {
		if n.Uid == "" {
			n.Uid = uuid.NewString()
		}
		if _, ok := o.Id2node[n.Id]; ok {
			return chk.Err("node id %d is defined more than once", n.Id)
		}
		o.Id2node[n.Id] = n
	}

	// elements
	o.Id2elem = make(map[int]*Element)
	for _, e := range o.Elements {
		if e.Uid == "" {
			e.Uid = uuid.NewString()
		}
		if _, ok := o.Id2elem[e.Id]; ok {
			return chk.Err("element id %d is defined more than once", e.Id)
		}
		o.Id2elem[e.Id] = e
	}

	// load cases
	for _, lc := range o.LoadCases {
		if lc.Uid == "" {
			lc.Uid = uuid.NewString()
		}
	}
	return
}

// GetLoadCase returns a load case by name
//
//	Note: returns nil if not found
func (o *Model) GetLoadCase(name string) *LoadCase {
	for _, lc := range o.LoadCases {
		if lc.Name == name {
			return lc
		}
	}
	return nil
}

// SetDefaults applies the documented defaults to zero-valued properties:
// E=200000 MPa, G=80000 MPa, ν=0.3, ρ=7850 kg/m³, Fy=250 MPa, Fu=400 MPa
func (o *Material) SetDefaults() {
	if o.Type == "" {
		o.Type = "steel"
	}
	if o.E == 0 {
		o.E = 200000.0
	}
	if o.G == 0 {
		o.G = 80000.0
	}
	if o.Nu == 0 {
		o.Nu = 0.3
	}
	if o.Rho == 0 {
		o.Rho = 7850.0
	}
	if o.Fy == 0 {
		o.Fy = 250.0
	}
	if o.Fu == 0 {
		o.Fu = 400.0
	}
}

// SetDefaults applies the documented default (1.0) to zero-valued properties
// and computes the radii of gyration
func (o *Section) SetDefaults() {
	if o.A == 0 {
		o.A = 1.0
	}
	if o.Iy == 0 {
		o.Iy = 1.0
	}
	if o.Iz == 0 {
		o.Iz = 1.0
	}
	if o.J == 0 {
		o.J = 1.0
	}
	if o.Sy == 0 {
		o.Sy = 1.0
	}
	if o.Sz == 0 {
		o.Sz = 1.0
	}
	o.Ry = math.Sqrt(o.Iy / o.A)
	o.Rz = math.Sqrt(o.Iz / o.A)
}
