// Copyright 2017 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/gosl/la"
)

// ElemCompliance computes the per-element compliance
//   C_e = E(ρ_e) ue' Ke ue
// with the element's own unit stiffness matrix. Results go into C.
func (o *Domain) ElemCompliance(ρ, U, C []float64) {
	for e := 0; e < o.Grid.Nel; e++ {
		dofs := o.Grid.ElemDofs(e)
		for i, d := range dofs {
			o.ue[i] = U[d]
		}
		la.MatVecMul(o.we, 1, o.keM, o.ue)
		C[e] = o.Mat.Emodulus(ρ[e]) * la.VecDot(o.ue, o.we)
	}
}

// ElemStress computes the per-element Von Mises stress at the centroid,
//   σ = E(ρ_e) D0 B ue
// with B evaluated at the reference origin; this is the centroidal stress,
// not a Gauss-point average. Results go into σvm.
func (o *Domain) ElemStress(ρ, U, σvm []float64) {
	for e := 0; e < o.Grid.Nel; e++ {
		dofs := o.Grid.ElemDofs(e)
		for i, d := range dofs {
			o.ue[i] = U[d]
		}
		la.MatVecMul(o.eps, 1, o.b0M, o.ue)
		la.MatVecMul(o.sig, o.Mat.Emodulus(ρ[e]), o.dM, o.eps)
		σvm[e] = vonMises(o.sig)
	}
}

// vonMises combines the stress components into the Von Mises scalar;
// 2D uses the plane-stress form, 3D the full combination
func vonMises(σ []float64) float64 {
	if len(σ) == 3 {
		sx, sy, txy := σ[0], σ[1], σ[2]
		return math.Sqrt(sx*sx + sy*sy - sx*sy + 3.0*txy*txy)
	}
	sx, sy, sz := σ[0], σ[1], σ[2]
	txy, tyz, tzx := σ[3], σ[4], σ[5]
	return math.Sqrt(0.5*((sx-sy)*(sx-sy)+(sy-sz)*(sy-sz)+(sz-sx)*(sz-sx)) + 3.0*(txy*txy+tyz*tyz+tzx*tzx))
}

// MaxStress returns the maximum entry of σvm restricted to the design mask
func (o *Domain) MaxStress(σvm []float64) (σmax float64) {
	for e, in := range o.Mask {
		if in && σvm[e] > σmax {
			σmax = σvm[e]
		}
	}
	return
}

// TotalCompliance returns the sum of the per-element compliances
func TotalCompliance(C []float64) (sum float64) {
	for _, c := range C {
		sum += c
	}
	return
}

// Volume returns the total density restricted to the design mask
func Volume(ρ []float64, mask []bool) (sum float64) {
	for e, in := range mask {
		if in {
			sum += ρ[e]
		}
	}
	return
}
