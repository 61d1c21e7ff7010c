// Copyright 2017 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gopto/inp"
	"github.com/cpmech/gopto/out"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".top", true)
	verbose := io.ArgToBool(1, true)
	doplot := io.ArgToBool(2, false)
	dostl := io.ArgToBool(3, false)
	dirout := io.ArgToString(4, "/tmp/gopto")

	// message
	if verbose {
		io.PfWhite("\nGopto -- Proportional Topology Optimization\n\n")
		io.Pf("%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"plot density and history", "doplot", doplot,
			"export STL (3D only)", "dostl", dostl,
			"output directory", "dirout", dirout,
		))
	}

	// read problem and build solver
	prob, err := inp.ReadProb(fnamepath)
	if err != nil {
		chk.Panic("cannot read problem:\n%v", err)
	}
	sol, err := prob.NewSolver(verbose)
	if err != nil {
		chk.Panic("cannot build solver:\n%v", err)
	}
	defer sol.Dom.Free()

	// run optimization
	res, err := sol.Run()
	if err != nil {
		chk.Panic("optimization failed:\n%v", err)
	}
	if verbose {
		io.Pf("\nstate      = %v\n", res.State)
		io.Pf("iterations = %d\n", res.Iterations)
		last := res.History[len(res.History)-1]
		io.Pf("compliance = %g\n", last.C)
		io.Pf("volume     = %g\n", last.V)
	}

	// save results
	err = out.SaveHistory(dirout, prob.Key+"-history.json", res.History)
	if err != nil {
		chk.Panic("cannot save history:\n%v", err)
	}
	err = out.SaveDensity(dirout, prob.Key+"-density.json", res.Density)
	if err != nil {
		chk.Panic("cannot save density:\n%v", err)
	}
	if doplot && prob.Ndim == 2 {
		err = out.PlotDensity2d(sol.Dom.Grid, res.Density, dirout, prob.Key+"-density")
		if err != nil {
			chk.Panic("cannot plot density:\n%v", err)
		}
		out.PlotHistory(res.History, dirout, prob.Key+"-history")
	}
	if dostl && prob.Ndim == 3 {
		err = out.WriteStl(sol.Dom.Grid, res.Density, 0.5, dirout, prob.Key+".stl")
		if err != nil {
			chk.Panic("cannot export STL:\n%v", err)
		}
	}
}
