// Copyright 2017 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opt

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gopto/fem"
	"github.com/cpmech/gopto/flt"
)

// settings of the inner saturation loop (stress variant)
const (
	innerTol = 1e-6 // stop when the remaining material falls below innerTol*TM
	innerCap = 20   // cap on redistribution passes
)

// TMPolicy maps the current maximum stress and the allowable stress to a
// multiplicative adjustment of the target material. It is a replaceable
// policy because the repository variants of this method disagree on the
// step size and on strict-versus-inclusive comparison.
type TMPolicy func(σmax, σallow float64) float64

// FixedStepTM returns the default policy: grow the target material by the
// fixed relative step when the stress is at or above the allowable value,
// shrink it otherwise
func FixedStepTM(coef float64) TMPolicy {
	return func(σmax, σallow float64) float64 {
		if σmax >= σallow {
			return 1.0 + coef
		}
		return 1.0 - coef
	}
}

// Settings holds the optimization parameters
type Settings struct {
	Variant  string  // "compliance" or "stress"
	Volfrac  float64 // material volume fraction (compliance variant target)
	Rmin     float64 // physical filter radius
	Alpha    float64 // move limit in [0,1]; larger is more damped
	RhoInit  float64 // initial uniform density; defaults to Volfrac
	MaxIt    int     // outer iteration cap
	Tol      float64 // tolerance on the maximum density change
	SigAllow float64 // allowable stress (stress variant)
	TolBand  float64 // relative half-width of the allowed stress band
	TM0      float64 // initial target material (stress variant); defaults to Volfrac * ndesign
	StepTM   float64 // relative step of the default TM policy; defaults to 0.05
	Verbose  bool    // print per-iteration progress
}

// Record holds the results of one outer iteration. Records are appended to
// the history and never mutated afterwards.
type Record struct {
	It        int     `json:"it"`        // iteration index
	C         float64 `json:"c"`         // total compliance
	V         float64 `json:"v"`         // total density over the design region
	SigMax    float64 `json:"sigmax"`    // maximum Von Mises stress (stress variant)
	TM        float64 `json:"tm"`        // target material for this iteration
	MaxChange float64 `json:"maxchange"` // maximum density change
}

// Results holds the outcome of Run
type Results struct {
	Density    []float64 // final density field
	History    []*Record // one record per outer iteration
	Converged  bool      // true only if the convergence criteria were met
	State      State     // Converged or Exhausted
	Iterations int       // number of outer iterations run
	Stress     []float64 // Von Mises field of the final density (stress variant; nil otherwise)
}

// Solver owns the density field and the target material and runs the outer
// optimization loop: solve, evaluate field, redistribute, filter, update,
// check convergence. No other component keeps a reference to the density
// across iterations.
type Solver struct {

	// components
	Dom *fem.Domain   // finite element domain
	Flt *flt.Filter   // density filter
	Red Redistributor // material redistributor selected at setup
	Mon *Monitor      // convergence monitor
	Pol TMPolicy      // target-material adjustment policy (stress variant)
	Set *Settings     // parameters

	// state owned by the loop
	Rho []float64 // current density field
	TM  float64   // current target material

	// derived
	stress     bool // stress variant
	singleShot bool // redistributor absorbs the whole target in one call
}

// NewSolver returns a new Solver with validated settings and the
// redistributor selected once by variant name
func NewSolver(dom *fem.Domain, set *Settings) (o *Solver, err error) {

	// validate settings
	if set.Variant != "compliance" && set.Variant != "stress" {
		return nil, chk.Err("variant %q is not available; use \"compliance\" or \"stress\"", set.Variant)
	}
	if set.Alpha < 0 || set.Alpha > 1 {
		return nil, chk.Err("move limit must be in [0,1]. alpha=%g is invalid", set.Alpha)
	}
	if set.Volfrac <= 0 || set.Volfrac > 1 {
		return nil, chk.Err("volume fraction must be in (0,1]. volfrac=%g is invalid", set.Volfrac)
	}
	if set.MaxIt < 1 {
		return nil, chk.Err("iteration cap must be at least 1. maxit=%d is invalid", set.MaxIt)
	}
	if set.Tol <= 0 {
		return nil, chk.Err("convergence tolerance must be positive. tol=%g is invalid", set.Tol)
	}
	if set.Variant == "stress" {
		if set.SigAllow <= 0 {
			return nil, chk.Err("allowable stress must be positive. sigallow=%g is invalid", set.SigAllow)
		}
		if set.TolBand <= 0 {
			return nil, chk.Err("stress tolerance band must be positive. tolband=%g is invalid", set.TolBand)
		}
	}
	if set.RhoInit == 0 {
		set.RhoInit = set.Volfrac
	}
	if set.StepTM == 0 {
		set.StepTM = 0.05
	}

	// new solver
	o = new(Solver)
	o.Dom = dom
	o.Set = set
	o.stress = set.Variant == "stress"
	o.singleShot = !o.stress
	o.Flt, err = flt.New(dom.Grid, set.Rmin)
	if err != nil {
		return nil, err
	}
	o.Red, err = NewRedistributor(set.Variant, dom.Mask, dom.Mat)
	if err != nil {
		return nil, err
	}
	o.Mon = &Monitor{
		Stress:   o.stress,
		Tol:      set.Tol,
		MaxIt:    set.MaxIt,
		SigAllow: set.SigAllow,
		TolBand:  set.TolBand,
	}
	o.Pol = FixedStepTM(set.StepTM)

	// initial state
	nd := float64(dom.Mask.Ndesign())
	o.TM = set.Volfrac * nd
	if o.stress && set.TM0 > 0 {
		o.TM = set.TM0
	}
	o.Rho = make([]float64, dom.Grid.Nel)
	for e, in := range dom.Mask {
		if in {
			o.Rho[e] = dom.Mat.Clamp(set.RhoInit)
		}
	}
	return
}

// redistribute runs the redistributor until the target material has been
// placed. The compliance variant absorbs everything in one internal
// bisection; the stress variant needs the fixed-point loop because
// saturated elements absorb less than their proportional share and the
// leftover must be re-offered to the rest.
func (o *Solver) redistribute(field, ρraw []float64) {
	for e := range ρraw {
		ρraw[e] = 0
	}
	rm := o.TM
	if o.singleShot {
		o.Red.Redistribute(field, rm, ρraw)
		return
	}
	for pass := 0; pass < innerCap; pass++ {
		absorbed := o.Red.Redistribute(field, rm, ρraw)
		rm -= absorbed
		if rm <= innerTol*o.TM {
			return
		}
		if absorbed <= 0 {
			break // every design element saturated; nothing can absorb more
		}
	}
	if rm > innerTol*o.TM {
		io.Pfred("opt: saturation loop left %g of %g undistributed after %d passes\n", rm, o.TM, innerCap)
	}
}

// Run executes the optimization loop until convergence or exhaustion of the
// iteration budget. Exhaustion is a normal return with Converged=false, not
// an error; only linear-solve failures abort.
func (o *Solver) Run() (res *Results, err error) {

	// allocate
	nel := o.Dom.Grid.Nel
	C := make([]float64, nel)
	σvm := make([]float64, nel)
	ρraw := make([]float64, nel)
	ρflt := make([]float64, nel)
	ρnew := make([]float64, nel)
	res = new(Results)
	state := Running

	// outer loop
	it := 0
	for ; it < o.Set.MaxIt; it++ {

		// solve for displacements
		err = o.Dom.SolveU(o.Rho)
		if err != nil {
			return nil, chk.Err("iteration %d:\n%v", it, err)
		}

		// evaluate fields
		o.Dom.ElemCompliance(o.Rho, o.Dom.U, C)
		field := C
		σmax := 0.0
		if o.stress {
			o.Dom.ElemStress(o.Rho, o.Dom.U, σvm)
			σmax = o.Dom.MaxStress(σvm)
			field = σvm
		}

		// redistribute, filter, update
		o.redistribute(field, ρraw)
		o.Flt.Apply(ρraw, ρflt)
		UpdateDensity(ρnew, o.Rho, ρflt, o.Set.Alpha, o.Dom.Mat, o.Dom.Mask)

		// record
		rec := &Record{
			It:        it,
			C:         fem.TotalCompliance(C),
			V:         fem.Volume(ρnew, o.Dom.Mask),
			SigMax:    σmax,
			TM:        o.TM,
			MaxChange: MaxChange(ρnew, o.Rho, o.Dom.Mask),
		}
		res.History = append(res.History, rec)
		if o.Set.Verbose {
			if o.stress {
				io.Pf("it=%4d C=%13.6e V=%10.4f σmax=%13.6e TM=%10.4f Δρ=%10.4e\n", rec.It, rec.C, rec.V, rec.SigMax, rec.TM, rec.MaxChange)
			} else {
				io.Pf("it=%4d C=%13.6e V=%10.4f Δρ=%10.4e\n", rec.It, rec.C, rec.V, rec.MaxChange)
			}
		}

		// check convergence and adjust the target material
		state = o.Mon.Check(it, ρnew, o.Rho, o.Dom.Mask, σmax)
		if o.stress && state == Running {
			o.TM *= o.Pol(σmax, o.Set.SigAllow)
		}

		// accept the new density
		copy(o.Rho, ρnew)
		if state != Running {
			it++
			break
		}
	}

	// results. the stress field is re-evaluated so that it corresponds to
	// the final density, not to the density of the last iteration's solve
	res.Density = make([]float64, nel)
	copy(res.Density, o.Rho)
	res.Converged = state == Converged
	res.State = state
	res.Iterations = it
	if o.stress {
		err = o.Dom.SolveU(o.Rho)
		if err != nil {
			return nil, chk.Err("final stress evaluation:\n%v", err)
		}
		o.Dom.ElemStress(o.Rho, o.Dom.U, σvm)
		res.Stress = make([]float64, nel)
		copy(res.Stress, σvm)
	}
	return
}
