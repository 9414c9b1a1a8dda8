// Copyright 2016 The Gofra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package design

import (
	"math"

	"github.com/cpmech/gofra/fem"
	"github.com/cpmech/gofra/inp"
)

// AISC implements steel design checks per AISC 360 (LRFD):
// tension (Chapter D), compression (Chapter E), flexure (Chapter F),
// combined loading (Chapter H) and shear (Chapter G). Section-level
// simplifications are documented on each check: compact sections are
// assumed throughout and the web shear coefficient comes from the settings.
type AISC struct{}

// add to the database of checkers
func init() {
	checkerallocators["steel/AISC-360"] = func() Checker { return new(AISC) }
}

// CheckElement selects and runs the checks applicable to the element's
// loading: pure tension, pure compression, pure flexure or combined, plus
// shear whenever a shear force is present
func (o *AISC) CheckElement(e *fem.FrameElement, forces *fem.ElementResult, sets *inp.DesignSettings) (res *ElementResult) {
	res = &ElementResult{
		ElemId:   e.Cell.Id,
		ElemType: e.Cell.Type,
		Section:  e.Sec.Name,
		Material: e.Mat.Name,
	}

	// loading classification
	P := forces.AxialForce
	Mx := math.Abs(forces.MomentY)
	My := math.Abs(forces.MomentZ)
	Vx := math.Abs(forces.ShearY)
	Vy := math.Abs(forces.ShearZ)
	hasAxial := math.Abs(P) > 1e-6
	hasMoment := math.Max(Mx, My) > 1e-6

	switch {
	case hasAxial && !hasMoment && P > 0:
		res.Checks = append(res.Checks, o.checkTension(P, e, sets)...)
	case hasAxial && !hasMoment:
		res.Checks = append(res.Checks, o.checkCompression(math.Abs(P), e, sets)...)
	case hasMoment && !hasAxial:
		res.Checks = append(res.Checks, o.checkFlexure(Mx, My, e, sets)...)
	case hasAxial && hasMoment:
		res.Checks = append(res.Checks, o.checkCombined(P, Mx, My, e, sets)...)
	}
	if math.Max(Vx, Vy) > 1e-6 {
		res.Checks = append(res.Checks, o.checkShear(Vx, Vy, e, sets)...)
	}
	res.finish()
	return
}

// checkTension checks yielding of the gross section (D2-1) and rupture of
// the effective net area (D2-2). The net area is NetAreaFactor·Ag, standing
// in for a connection-specific shear lag computation.
func (o *AISC) checkTension(P float64, e *fem.FrameElement, sets *inp.DesignSettings) []*Check {
	phiY := sets.Phi("tension", 0.9)
	PnYield := e.Mat.Fy * e.Sec.A
	yield := newCheck("tension", P, phiY*PnYield, "AISC 360 D2-1", map[string]float64{
		"Pn":  PnYield,
		"phi": phiY,
	})

	phiR := sets.Phi("rupture", 0.75)
	Ae := sets.NetAreaFactor * e.Sec.A
	PnRupture := e.Mat.Fu * Ae
	rupture := newCheck("tension", P, phiR*PnRupture, "AISC 360 D2-2", map[string]float64{
		"Pn":  PnRupture,
		"phi": phiR,
		"Ae":  Ae,
	})
	return []*Check{yield, rupture}
}

// checkCompression checks flexural buckling (E3). The governing slenderness
// is the larger KL/r over both axes; inelastic vs elastic buckling switches
// at λc = 1.5.
func (o *AISC) checkCompression(P float64, e *fem.FrameElement, sets *inp.DesignSettings) []*Check {
	phi := sets.Phi("compression", 0.9)
	klr := math.Max(sets.K("Kx")*e.L/e.Sec.Ry, sets.K("Ky")*e.L/e.Sec.Rz)
	Fe := math.Pi * math.Pi * e.Mat.E / (klr * klr)
	lambdaC := math.Sqrt(e.Mat.Fy / Fe)
	var Fcr float64
	if lambdaC <= 1.5 {
		Fcr = math.Pow(0.658, lambdaC*lambdaC) * e.Mat.Fy // E3-2
	} else {
		Fcr = 0.877 * Fe // E3-3
	}
	Pn := Fcr * e.Sec.A
	return []*Check{newCheck("compression", P, phi*Pn, "AISC 360 E3", map[string]float64{
		"Pn":       Pn,
		"phi":      phi,
		"Fcr":      Fcr,
		"KL_r":     klr,
		"lambda_c": lambdaC,
		"Fe":       Fe,
	})}
}

// checkFlexure checks yielding (F2) about each axis carrying a moment,
// assuming a compact, laterally braced section so Mn is the plastic moment
func (o *AISC) checkFlexure(Mx, My float64, e *fem.FrameElement, sets *inp.DesignSettings) (checks []*Check) {
	phi := sets.Phi("flexure", 0.9)
	if Mx > 1e-6 {
		Mn := e.Mat.Fy * e.Sec.Sy
		checks = append(checks, newCheck("flexure", Mx, phi*Mn, "AISC 360 F2", map[string]float64{
			"Mn":  Mn,
			"phi": phi,
		}))
	}
	if My > 1e-6 {
		Mn := e.Mat.Fy * e.Sec.Sz
		checks = append(checks, newCheck("flexure", My, phi*Mn, "AISC 360 F2", map[string]float64{
			"Mn":  Mn,
			"phi": phi,
		}))
	}
	return
}

// checkCombined checks the axial-flexure interaction (H1-1a / H1-1b). The
// interaction value itself becomes the demand against a unit capacity, so
// ratio and status follow the same rule as every other check.
func (o *AISC) checkCombined(P, Mx, My float64, e *fem.FrameElement, sets *inp.DesignSettings) []*Check {

	// axial capacity from the governing tension or compression check
	var Pr float64
	if P > 0 {
		Pr = math.Inf(1)
		for _, c := range o.checkTension(math.Abs(P), e, sets) {
			Pr = math.Min(Pr, c.Capacity)
		}
	} else {
		Pr = o.checkCompression(math.Abs(P), e, sets)[0].Capacity
	}

	// flexural capacities; an axis with no moment cannot contribute
	Mrx, Mry := math.Inf(1), math.Inf(1)
	phi := sets.Phi("flexure", 0.9)
	if Mx > 1e-6 {
		Mrx = phi * e.Mat.Fy * e.Sec.Sy
	}
	if My > 1e-6 {
		Mry = phi * e.Mat.Fy * e.Sec.Sz
	}

	// interaction equations
	var value float64
	var equation string
	if math.Abs(P)/Pr >= 0.2 {
		value = math.Abs(P)/Pr + (8.0/9.0)*(Mx/Mrx+My/Mry)
		equation = "AISC 360 H1-1a"
	} else {
		value = math.Abs(P)/(2.0*Pr) + (Mx/Mrx + My/Mry)
		equation = "AISC 360 H1-1b"
	}
	return []*Check{newCheck("combined", value, 1.0, equation, map[string]float64{
		"P":   P,
		"Pr":  Pr,
		"Mx":  Mx,
		"Mrx": Mrx,
		"My":  My,
		"Mry": Mry,
	})}
}

// checkShear checks the resultant shear against the web strength (G2) with
// the gross area standing in for the web area
func (o *AISC) checkShear(Vx, Vy float64, e *fem.FrameElement, sets *inp.DesignSettings) []*Check {
	phi := sets.Phi("shear", 0.9)
	Vn := 0.6 * e.Mat.Fy * e.Sec.A * sets.ShearCv
	V := math.Sqrt(Vx*Vx + Vy*Vy)
	return []*Check{newCheck("shear", V, phi*Vn, "AISC 360 G2", map[string]float64{
		"Vn":  Vn,
		"phi": phi,
		"Cv":  sets.ShearCv,
		"Vx":  Vx,
		"Vy":  Vy,
	})}
}
