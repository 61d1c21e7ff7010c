// Copyright 2017 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the reading of problem (.top) files and the
// built-in benchmark problems
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gopto/fem"
	"github.com/cpmech/gopto/msh"
	"github.com/cpmech/gopto/opt"
)

// Disc defines a circular region carved out of the design mask (2D)
type Disc struct {
	Xc float64 `json:"xc"` // centre x
	Yc float64 `json:"yc"` // centre y
	R  float64 `json:"r"`  // radius
}

// Problem holds all data defining one optimization problem. Boundary
// conditions come either from a named benchmark or from explicit DOF lists.
type Problem struct {

	// general
	Name   string `json:"name"`   // problem name
	Key    string `json:"-"`      // filename key, set by ReadProb
	LinSol string `json:"linsol"` // linear solver name; default "umfpack"

	// grid
	Ndim int     `json:"ndim"` // 2 or 3
	Nelx int     `json:"nelx"` // elements along x
	Nely int     `json:"nely"` // elements along y
	Nelz int     `json:"nelz"` // elements along z (3D only)
	Dx   float64 `json:"dx"`   // element size along x; default 1
	Dy   float64 `json:"dy"`   // element size along y; default 1
	Dz   float64 `json:"dz"`   // element size along z; default 1

	// boundary conditions
	Bench     string    `json:"bench"`     // benchmark name; empty means explicit DOFs
	FixedDofs []int     `json:"fixeddofs"` // explicit fixed DOFs
	LoadDofs  []int     `json:"loaddofs"`  // explicit load DOFs
	LoadVals  []float64 `json:"loadvals"`  // explicit load values
	Discs     []Disc    `json:"discs"`     // passive void discs carved from the mask

	// material
	Prms dbf.Params `json:"prms"` // material parameters: E, nu, p, q, rhomin, rhomax

	// optimization
	Variant  string  `json:"variant"`  // "compliance" or "stress"
	Volfrac  float64 `json:"volfrac"`  // volume fraction
	Rmin     float64 `json:"rmin"`     // filter radius
	Alpha    float64 `json:"alpha"`    // move limit
	RhoInit  float64 `json:"rhoinit"`  // initial density; default volfrac
	MaxIt    int     `json:"maxit"`    // outer iteration cap
	Tol      float64 `json:"tol"`      // density-change tolerance
	SigAllow float64 `json:"sigallow"` // allowable stress (stress variant)
	TolBand  float64 `json:"tolband"`  // stress band half-width (stress variant)
	TM0      float64 `json:"tm0"`      // initial target material (stress variant)
	StepTM   float64 `json:"steptm"`   // TM adjustment step; default 0.05
}

// SetDefault sets default values
func (o *Problem) SetDefault() {
	o.LinSol = "umfpack"
	o.Dx, o.Dy, o.Dz = 1, 1, 1
	o.Variant = "compliance"
	o.Volfrac = 0.5
	o.Rmin = 1.5
	o.Alpha = 0.5
	o.MaxIt = 200
	o.Tol = 1e-3
}

// ReadProb reads a problem (.top) file
func ReadProb(path string) (o *Problem, err error) {
	if _, err = os.Stat(path); err != nil {
		return nil, chk.Err("cannot read problem file %q:\n%v", path, err)
	}
	b := io.ReadFile(path)
	o = new(Problem)
	o.SetDefault()
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot unmarshal problem file %q:\n%v", path, err)
	}
	o.Key = io.FnKey(filepath.Base(path))
	return
}

// Derive builds the grid, design mask and boundary conditions
func (o *Problem) Derive() (g *msh.Grid, mask msh.Mask, ebcs *fem.EssentialBcs, nbcs *fem.PtNaturalBcs, err error) {

	// grid
	switch o.Ndim {
	case 2:
		g = msh.NewGrid2d(o.Nelx, o.Nely, o.Dx, o.Dy)
	case 3:
		g = msh.NewGrid3d(o.Nelx, o.Nely, o.Nelz, o.Dx, o.Dy, o.Dz)
	default:
		err = chk.Err("ndim must be 2 or 3. ndim=%d is invalid", o.Ndim)
		return
	}

	// boundary conditions
	if o.Bench != "" {
		ebcs, nbcs, err = Benchmark(o.Bench, g)
		if err != nil {
			return
		}
	} else {
		ebcs = &fem.EssentialBcs{Fixed: o.FixedDofs}
		nbcs = &fem.PtNaturalBcs{Dofs: o.LoadDofs, Vals: o.LoadVals}
	}

	// mask
	mask = msh.NewMaskFull(g)
	for _, d := range o.Discs {
		if g.Ndim != 2 {
			err = chk.Err("void discs are only available for 2D problems")
			return
		}
		mask.CarveDisc(g, d.Xc, d.Yc, d.R)
	}
	return
}

// NewSolver builds the complete solver for this problem
func (o *Problem) NewSolver(verbose bool) (sol *opt.Solver, err error) {
	g, mask, ebcs, nbcs, err := o.Derive()
	if err != nil {
		return
	}
	mat := new(fem.Material)
	err = mat.Init(o.Prms)
	if err != nil {
		return
	}
	dom, err := fem.NewDomain(g, mask, mat, ebcs, nbcs, o.LinSol)
	if err != nil {
		return
	}
	set := &opt.Settings{
		Variant:  o.Variant,
		Volfrac:  o.Volfrac,
		Rmin:     o.Rmin,
		Alpha:    o.Alpha,
		RhoInit:  o.RhoInit,
		MaxIt:    o.MaxIt,
		Tol:      o.Tol,
		SigAllow: o.SigAllow,
		TolBand:  o.TolBand,
		TM0:      o.TM0,
		StepTM:   o.StepTM,
		Verbose:  verbose,
	}
	return opt.NewSolver(dom, set)
}
