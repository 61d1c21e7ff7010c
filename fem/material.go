// Copyright 2017 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the density-dependent finite element analysis:
// SIMP-scaled assembly of the global stiffness matrix, the linear solve for
// nodal displacements, and the per-element compliance and Von Mises fields
package fem

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Material holds the elastic constants and the SIMP interpolation data.
// The element Young's modulus is E(ρ) = Emin + ρ^p (E0 - Emin) where
// Emin = 1e-9 E0 keeps void elements from producing a singular system.
type Material struct {
	E0     float64 // Young's modulus of solid material
	Nu     float64 // Poisson's coefficient
	P      float64 // SIMP penalisation exponent
	Q      float64 // redistribution exponent
	RhoMin float64 // lower density bound
	RhoMax float64 // upper density bound
	Emin   float64 // modulus of void material == 1e-9 E0
}

// Init initialises the material from a set of parameters
func (o *Material) Init(prms dbf.Params) (err error) {
	o.E0, o.Nu = 1, 0.3
	o.P, o.Q = 3, 2
	o.RhoMin, o.RhoMax = 1e-3, 1
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E0 = p.V
		case "nu":
			o.Nu = p.V
		case "p":
			o.P = p.V
		case "q":
			o.Q = p.V
		case "rhomin":
			o.RhoMin = p.V
		case "rhomax":
			o.RhoMax = p.V
		}
	}
	if o.E0 <= 0 {
		return chk.Err("Young's modulus must be positive. E=%g is invalid", o.E0)
	}
	if o.Nu <= -1 || o.Nu >= 0.5 {
		return chk.Err("Poisson's coefficient must be in (-1, 0.5). nu=%g is invalid", o.Nu)
	}
	if o.P < 1 {
		return chk.Err("SIMP exponent must be at least 1. p=%g is invalid", o.P)
	}
	if o.RhoMin <= 0 || o.RhoMin >= o.RhoMax {
		return chk.Err("density bounds must satisfy 0 < rhomin < rhomax. rhomin=%g rhomax=%g is invalid", o.RhoMin, o.RhoMax)
	}
	o.Emin = 1e-9 * o.E0
	return
}

// GetPrms gets (an example) of parameters
func (o Material) GetPrms() dbf.Params {
	return []*dbf.P{
		{N: "E", V: 1.0},
		{N: "nu", V: 0.3},
		{N: "p", V: 3.0},
		{N: "q", V: 2.0},
		{N: "rhomin", V: 1e-3},
		{N: "rhomax", V: 1.0},
	}
}

// Emodulus returns the SIMP-interpolated Young's modulus for density ρ
func (o *Material) Emodulus(ρ float64) float64 {
	return o.Emin + math.Pow(ρ, o.P)*(o.E0-o.Emin)
}

// Clamp returns ρ limited to the density bounds
func (o *Material) Clamp(ρ float64) float64 {
	if ρ < o.RhoMin {
		return o.RhoMin
	}
	if ρ > o.RhoMax {
		return o.RhoMax
	}
	return ρ
}
