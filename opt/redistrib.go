// Copyright 2017 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package opt implements the proportional material-redistribution
// optimizer: the two non-sensitivity redistributors, the move-limited
// density update, the convergence state machine, and the outer loop
package opt

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gopto/fem"
	"github.com/cpmech/gopto/msh"
)

// bisection settings of the compliance redistributor
const (
	bisTol   = 1e-6 // relative tolerance on the achieved total
	bisMaxIt = 200  // cap on bisection iterations
)

// Redistributor distributes an amount rm of material over the design
// elements, proportionally to the given scalar field, adding the result
// into ρ while respecting the density bounds. It returns the material
// actually absorbed, which is less than rm when elements saturate at the
// upper bound. Neither variant computes gradients.
type Redistributor interface {
	Redistribute(field []float64, rm float64, ρ []float64) (absorbed float64)
}

// allocators holds all available redistributors
var allocators = map[string]func(mask msh.Mask, mat *fem.Material) Redistributor{
	"compliance": func(mask msh.Mask, mat *fem.Material) Redistributor {
		return &Compliance{mask, mat}
	},
	"stress": func(mask msh.Mask, mat *fem.Material) Redistributor {
		return &Stress{mask, mat}
	},
}

// NewRedistributor returns a redistributor by variant name:
// "compliance" or "stress"
func NewRedistributor(variant string, mask msh.Mask, mat *fem.Material) (Redistributor, error) {
	alloc, ok := allocators[variant]
	if !ok {
		return nil, chk.Err("variant %q is not available; use \"compliance\" or \"stress\"", variant)
	}
	return alloc(mask, mat), nil
}

// Compliance implements the optimality-criteria redistributor: it finds, by
// bisection, the Lagrange multiplier λ such that the clamped candidate
// densities (C_e/λ)^(1/q) sum to rm over the design region. It overwrites ρ
// and absorbs (to within the bisection tolerance) all of rm in one call.
type Compliance struct {
	mask msh.Mask
	mat  *fem.Material
}

// Redistribute implements the Redistributor interface
func (o *Compliance) Redistribute(field []float64, rm float64, ρ []float64) (absorbed float64) {

	// largest compliance over the design region
	cmax := 0.0
	nd := 0
	for e, in := range o.mask {
		if !in {
			ρ[e] = 0
			continue
		}
		nd++
		if field[e] > cmax {
			cmax = field[e]
		}
	}
	if nd == 0 {
		return 0
	}

	// degenerate field: share rm uniformly
	if cmax <= 0 {
		val := o.mat.Clamp(rm / float64(nd))
		for e, in := range o.mask {
			if in {
				ρ[e] = val
				absorbed += val
			}
		}
		return
	}

	// candidate total for a given λ; increasing λ strictly decreases it
	total := func(λ float64) (sum float64) {
		for e, in := range o.mask {
			if in {
				ρ[e] = o.mat.Clamp(math.Pow(field[e]/λ, 1.0/o.mat.Q))
				sum += ρ[e]
			}
		}
		return
	}

	// bisection on λ ∈ [0, cmax/ρmin^q]
	λlo, λhi := 0.0, cmax/math.Pow(o.mat.RhoMin, o.mat.Q)
	for it := 0; it < bisMaxIt; it++ {
		λ := (λlo + λhi) / 2.0
		absorbed = total(λ)
		if math.Abs(absorbed-rm) <= bisTol*rm {
			return
		}
		if absorbed > rm {
			λlo = λ // too much material: tighten
		} else {
			λhi = λ
		}
	}
	io.Pfred("opt: OC bisection hit the %d-iteration cap; returning best-effort total %g for target %g\n", bisMaxIt, absorbed, rm)
	return
}

// Stress implements the proportional redistributor: each design element
// receives a share of rm proportional to its stress raised to the power q.
// Allocation is capped at the upper density bound, so saturated elements
// absorb less than their share; the caller must re-invoke with the leftover
// material (see Solver.redistribute).
type Stress struct {
	mask msh.Mask
	mat  *fem.Material
}

// Redistribute implements the Redistributor interface. Elements already at
// the upper bound are excluded from the weight normalisation so the leftover
// material is re-offered only to elements that can still absorb it.
func (o *Stress) Redistribute(field []float64, rm float64, ρ []float64) (absorbed float64) {

	// weights; ε avoids zero-weight degeneracy
	const ε = 1e-9
	wsum := 0.0
	for e, in := range o.mask {
		if !in {
			ρ[e] = 0
			continue
		}
		if ρ[e] >= o.mat.RhoMax {
			continue // saturated
		}
		σ := field[e]
		if σ < ε {
			σ = ε
		}
		wsum += math.Pow(σ, o.mat.Q)
	}
	if wsum <= 0 {
		return 0
	}

	// proportional allocation capped at the upper bound
	for e, in := range o.mask {
		if !in || ρ[e] >= o.mat.RhoMax {
			continue
		}
		σ := field[e]
		if σ < ε {
			σ = ε
		}
		add := rm * math.Pow(σ, o.mat.Q) / wsum
		if ρ[e]+add > o.mat.RhoMax {
			add = o.mat.RhoMax - ρ[e]
		}
		ρ[e] += add
		absorbed += add
	}
	return
}
