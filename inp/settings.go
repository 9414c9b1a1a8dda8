// Copyright 2016 The Gofra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// AnalysisSettings holds options controlling the analysis run
type AnalysisSettings struct {
	Type       string  `json:"analysis_type"`                  // "linear" or "nonlinear"
	NmaxIt     int     `json:"max_iterations"`                 // max Newton-Raphson iterations per load step (≥ 1)
	Tol        float64 `json:"convergence_tolerance"`          // residual norm tolerance (> 0)
	NloadSteps int     `json:"num_load_steps"`                 // number of equal load increments (≥ 1)
	GeomNonlin bool    `json:"include_geometric_nonlinearity"` // include geometric (P-Delta) stiffness
	MatNonlin  bool    `json:"include_material_nonlinearity"`  // recompute material stiffness each iteration
	CondTol    float64 `json:"condition_tolerance"`            // condition number above which an ill-conditioning warning is emitted
}

// SetDefaults fills unset values with defaults
func (o *AnalysisSettings) SetDefaults() {
	if o.Type == "" {
		o.Type = "linear"
	}
	if o.NmaxIt == 0 {
		o.NmaxIt = 100
	}
	if o.Tol == 0 {
		o.Tol = 1e-6
	}
	if o.NloadSteps == 0 {
		o.NloadSteps = 10
	}
	if o.CondTol == 0 {
		o.CondTol = 1e12
	}
}

// Validate checks settings consistency
func (o *AnalysisSettings) Validate() error {
	if o.Type != "linear" && o.Type != "nonlinear" {
		return chk.Err("analysis type %q is invalid; options are \"linear\" and \"nonlinear\"", o.Type)
	}
	if o.NmaxIt < 1 {
		return chk.Err("max_iterations must be at least 1. %d is invalid", o.NmaxIt)
	}
	if o.Tol <= 0 {
		return chk.Err("convergence_tolerance must be positive. %g is invalid", o.Tol)
	}
	if o.NloadSteps < 1 {
		return chk.Err("num_load_steps must be at least 1. %d is invalid", o.NloadSteps)
	}
	return nil
}

// DesignSettings holds options controlling the design checks.
// NetAreaFactor and ShearCv are simplified placeholders of the full
// code-compliant formulas (which depend on connection geometry and web
// slenderness) and are therefore configurable rather than hardcoded.
type DesignSettings struct {
	Code          string             `json:"design_code"`              // e.g. "AISC-360"
	PhiFactors    map[string]float64 `json:"resistance_factors"`       // limit-state name => φ
	KFactors      map[string]float64 `json:"effective_length_factors"` // "Kx" and "Ky"
	NetAreaFactor float64            `json:"net_area_factor"`          // Ae = NetAreaFactor · A for tension rupture
	ShearCv       float64            `json:"shear_coefficient"`        // web shear coefficient Cv
}

// SetDefaults fills unset values with AISC-360 steel defaults
func (o *DesignSettings) SetDefaults() {
	if o.Code == "" {
		o.Code = "AISC-360"
	}
	if o.PhiFactors == nil {
		o.PhiFactors = make(map[string]float64)
	}
	if o.KFactors == nil {
		o.KFactors = make(map[string]float64)
	}
	if o.NetAreaFactor == 0 {
		o.NetAreaFactor = 0.85
	}
	if o.ShearCv == 0 {
		o.ShearCv = 1.0
	}
}

// Phi returns the resistance factor for a limit state, or the given default
// when the settings do not override it
func (o *DesignSettings) Phi(limitState string, defaultValue float64) float64 {
	if v, ok := o.PhiFactors[limitState]; ok {
		return v
	}
	return defaultValue
}

// K returns the effective length factor with given key ("Kx" or "Ky"),
// defaulting to 1.0
func (o *DesignSettings) K(key string) float64 {
	if v, ok := o.KFactors[key]; ok {
		return v
	}
	return 1.0
}

// Settings groups analysis and design options
type Settings struct {
	Analysis AnalysisSettings `json:"analysis"` // analysis options
	Design   DesignSettings   `json:"design"`   // design options
}

// NewSettings returns settings with defaults applied
func NewSettings() (o *Settings) {
	o = new(Settings)
	o.Analysis.SetDefaults()
	o.Design.SetDefaults()
	return
}

// ReadSettings reads settings from a JSON file and applies defaults
func ReadSettings(fnamepath string) (o *Settings, err error) {
	if _, errStat := os.Stat(fnamepath); errStat != nil {
		return nil, chk.Err("cannot read settings file %q:\n%v", fnamepath, errStat)
	}
	b := io.ReadFile(fnamepath)
	o = new(Settings)
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot parse settings file %q:\n%v", fnamepath, err)
	}
	o.Analysis.SetDefaults()
	o.Design.SetDefaults()
	err = o.Analysis.Validate()
	if err != nil {
		return nil, err
	}
	return
}
