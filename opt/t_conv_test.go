// Copyright 2017 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opt

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gopto/msh"
)

func Test_conv01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("conv01. compliance variant state machine")

	g := msh.NewGrid2d(2, 1, 1, 1)
	mask := msh.NewMaskFull(g)
	mon := &Monitor{Tol: 0.01, MaxIt: 10}

	ρold := []float64{0.5, 0.5}
	moving := []float64{0.6, 0.5}
	settled := []float64{0.505, 0.5}

	if s := mon.Check(0, moving, ρold, mask, 0); s != Running {
		tst.Errorf("expected running, got %v", s)
		return
	}
	if s := mon.Check(0, settled, ρold, mask, 0); s != Converged {
		tst.Errorf("expected converged, got %v", s)
		return
	}

	// iteration cap: still-moving density at the last iteration exhausts
	if s := mon.Check(9, moving, ρold, mask, 0); s != Exhausted {
		tst.Errorf("expected exhausted, got %v", s)
		return
	}

	// idempotence: the same inputs give the same verdict
	s1 := mon.Check(3, settled, ρold, mask, 0)
	s2 := mon.Check(3, settled, ρold, mask, 0)
	if s1 != s2 {
		tst.Errorf("verdict changed between identical calls: %v then %v", s1, s2)
	}
}

func Test_conv02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("conv02. stress variant needs band AND plateau")

	g := msh.NewGrid2d(2, 1, 1, 1)
	mask := msh.NewMaskFull(g)
	mon := &Monitor{Stress: true, Tol: 0.01, MaxIt: 100, SigAllow: 10, TolBand: 0.1}

	ρold := []float64{0.5, 0.5}
	settled := []float64{0.505, 0.5}
	moving := []float64{0.6, 0.5}

	// plateaued density with stress outside the band keeps running
	if s := mon.Check(0, settled, ρold, mask, 20); s != Running {
		tst.Errorf("plateau outside the band should keep running, got %v", s)
		return
	}

	// stress inside the band but still-moving density keeps running
	if s := mon.Check(0, moving, ρold, mask, 10); s != Running {
		tst.Errorf("moving density inside the band should keep running, got %v", s)
		return
	}

	// both conditions met
	if s := mon.Check(0, settled, ρold, mask, 10); s != Converged {
		tst.Errorf("expected converged, got %v", s)
		return
	}

	// the band is inclusive at both edges
	if s := mon.Check(0, settled, ρold, mask, 9); s != Converged {
		tst.Errorf("σmax = (1-τ)σallow should converge, got %v", s)
		return
	}
	if s := mon.Check(0, settled, ρold, mask, 11); s != Converged {
		tst.Errorf("σmax = (1+τ)σallow should converge, got %v", s)
		return
	}
	if s := mon.Check(0, settled, ρold, mask, 11.0001); s != Running {
		tst.Errorf("σmax just above the band should keep running, got %v", s)
	}
}

func Test_tm01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("tm01. fixed-step target-material policy")

	pol := FixedStepTM(0.05)
	chk.Float64(tst, "σ above", 1e-15, pol(20, 10), 1.05)
	chk.Float64(tst, "σ below", 1e-15, pol(5, 10), 0.95)
	chk.Float64(tst, "σ equal", 1e-15, pol(10, 10), 1.05) // inclusive comparison grows
}
