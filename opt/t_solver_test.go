// Copyright 2017 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opt

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gopto/fem"
	"github.com/cpmech/gopto/msh"
)

// newCantilever builds a small cantilever domain: left edge fully fixed,
// downward unit load at the bottom-right node
func newCantilever(tst *testing.T, nelx, nely int) *fem.Domain {
	g := msh.NewGrid2d(nelx, nely, 1, 1)
	mask := msh.NewMaskFull(g)
	mat := newTestMat(tst)
	ebcs := new(fem.EssentialBcs)
	for j := 0; j < g.Nny; j++ {
		n := g.NodeID(0, j, 0)
		ebcs.Fixed = append(ebcs.Fixed, 2*n, 2*n+1)
	}
	tip := g.NodeID(g.Nelx, 0, 0)
	nbcs := &fem.PtNaturalBcs{Dofs: []int{2*tip + 1}, Vals: []float64{-1}}
	dom, err := fem.NewDomain(g, mask, mat, ebcs, nbcs, "umfpack")
	if err != nil {
		tst.Fatalf("NewDomain failed: %v\n", err)
	}
	return dom
}

func Test_sol01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sol01. compliance variant on a 10x5 cantilever")

	dom := newCantilever(tst, 10, 5)
	defer dom.Free()
	sol, err := NewSolver(dom, &Settings{
		Variant: "compliance",
		Volfrac: 0.5,
		Rmin:    1.5,
		Alpha:   0.5,
		MaxIt:   60,
		Tol:     1e-2,
		Verbose: chk.Verbose,
	})
	if err != nil {
		tst.Errorf("NewSolver failed: %v\n", err)
		return
	}
	res, err := sol.Run()
	if err != nil {
		tst.Errorf("Run failed: %v\n", err)
		return
	}

	// a terminal state must be reached and reported consistently
	if res.State != Converged && res.State != Exhausted {
		tst.Errorf("unexpected final state %v", res.State)
		return
	}
	if res.Converged != (res.State == Converged) {
		tst.Errorf("Converged flag disagrees with state %v", res.State)
		return
	}
	chk.IntAssert(len(res.History), res.Iterations)

	// bounds invariant on the final density
	mat := dom.Mat
	for e, in := range dom.Mask {
		if !in {
			continue
		}
		if res.Density[e] < mat.RhoMin || res.Density[e] > mat.RhoMax {
			tst.Errorf("ρ[%d]=%g violates the bounds", e, res.Density[e])
			return
		}
	}

	// the history is sane: positive compliance, volume inside the
	// physical range, fixed target material
	nd := float64(dom.Mask.Ndesign())
	for _, rec := range res.History {
		if rec.C <= 0 {
			tst.Errorf("iteration %d has non-positive compliance %g", rec.It, rec.C)
			return
		}
		if rec.V < nd*mat.RhoMin || rec.V > nd*mat.RhoMax {
			tst.Errorf("iteration %d has volume %g outside the physical range", rec.It, rec.V)
			return
		}
		chk.Float64(tst, io.Sf("TM it%d", rec.It), 1e-15, rec.TM, 0.5*nd)
	}

	// compliance should drop from the uniform initial guess
	first := res.History[0].C
	last := res.History[len(res.History)-1].C
	io.Pforan("C: %v -> %v in %d iterations (%v)\n", first, last, res.Iterations, res.State)
	if last >= first {
		tst.Errorf("compliance did not improve: %g -> %g", first, last)
	}
}

func Test_sol02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sol02. stress variant adjusts the target material")

	// maximum stress far below the allowable: TM must strictly decrease
	dom := newCantilever(tst, 8, 4)
	set := &Settings{
		Variant:  "stress",
		Volfrac:  0.5,
		Rmin:     1.2,
		Alpha:    0.5,
		MaxIt:    2,
		Tol:      1e-12, // force both iterations to run
		SigAllow: 1e12,
		TolBand:  0.05,
	}
	sol, err := NewSolver(dom, set)
	if err != nil {
		tst.Errorf("NewSolver failed: %v\n", err)
		return
	}
	res, err := sol.Run()
	if err != nil {
		tst.Errorf("Run failed: %v\n", err)
		return
	}
	dom.Free()
	chk.IntAssert(len(res.History), 2)
	if res.History[1].TM >= res.History[0].TM {
		tst.Errorf("TM should decrease below the allowable stress: %g -> %g", res.History[0].TM, res.History[1].TM)
		return
	}
	chk.Float64(tst, "TM step down", 1e-12, res.History[1].TM, 0.95*res.History[0].TM)
	if res.Stress == nil {
		tst.Errorf("stress variant must return the final stress field")
		return
	}

	// maximum stress far above the allowable: TM must strictly increase
	dom = newCantilever(tst, 8, 4)
	defer dom.Free()
	set.SigAllow = 1e-12
	sol, err = NewSolver(dom, set)
	if err != nil {
		tst.Errorf("NewSolver failed: %v\n", err)
		return
	}
	res, err = sol.Run()
	if err != nil {
		tst.Errorf("Run failed: %v\n", err)
		return
	}
	if res.History[1].TM <= res.History[0].TM {
		tst.Errorf("TM should increase above the allowable stress: %g -> %g", res.History[0].TM, res.History[1].TM)
		return
	}
	chk.Float64(tst, "TM step up", 1e-12, res.History[1].TM, 1.05*res.History[0].TM)
}

func Test_sol03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sol03. returned stress corresponds to the returned density")

	dom := newCantilever(tst, 6, 3)
	defer dom.Free()
	sol, err := NewSolver(dom, &Settings{
		Variant:  "stress",
		Volfrac:  0.5,
		Rmin:     1.2,
		Alpha:    0.5,
		MaxIt:    3,
		Tol:      1e-12, // force all iterations to run
		SigAllow: 1e12,
		TolBand:  0.05,
	})
	if err != nil {
		tst.Errorf("NewSolver failed: %v\n", err)
		return
	}
	res, err := sol.Run()
	if err != nil {
		tst.Errorf("Run failed: %v\n", err)
		return
	}

	// the stress of the final density must match the returned field; the
	// last recorded stress belongs to the pre-update density and differs
	err = dom.SolveU(res.Density)
	if err != nil {
		tst.Errorf("SolveU failed: %v\n", err)
		return
	}
	σvm := make([]float64, dom.Grid.Nel)
	dom.ElemStress(res.Density, dom.U, σvm)
	chk.Array(tst, "σvm", 1e-12, res.Stress, σvm)
}
