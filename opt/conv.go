// Copyright 2017 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opt

import "github.com/cpmech/gopto/msh"

// State is the verdict of the convergence monitor
type State int

// states; Converged and Exhausted are terminal
const (
	Running   State = iota // keep iterating
	Converged              // termination criteria satisfied
	Exhausted              // iteration cap reached without convergence
)

// String returns a readable state name
func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Converged:
		return "converged"
	case Exhausted:
		return "exhausted"
	}
	return "unknown"
}

// Monitor decides termination. The check is a pure function of its
// arguments so repeated calls on the same data give the same verdict.
type Monitor struct {
	Stress   bool    // stress variant: require the stress band in addition to density stagnation
	Tol      float64 // tolerance on the maximum density change
	MaxIt    int     // outer iteration cap
	SigAllow float64 // allowable stress (stress variant)
	TolBand  float64 // relative half-width τ of the allowed stress band
}

// Check returns the state after outer iteration it (0-based). The density
// condition is maxΔρ < Tol over the design mask. The stress variant
// additionally requires σmax inside [(1-τ)σallow, (1+τ)σallow]; a plateaued
// density with the stress outside the band keeps the loop running so the
// target material can continue adjusting. Band membership is inclusive.
func (o *Monitor) Check(it int, ρnew, ρold []float64, mask msh.Mask, σmax float64) State {
	stable := MaxChange(ρnew, ρold, mask) < o.Tol
	ok := stable
	if o.Stress {
		inBand := σmax >= (1.0-o.TolBand)*o.SigAllow && σmax <= (1.0+o.TolBand)*o.SigAllow
		ok = stable && inBand
	}
	if ok {
		return Converged
	}
	if it+1 >= o.MaxIt {
		return Exhausted
	}
	return Running
}
