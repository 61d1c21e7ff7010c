// Copyright 2017 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gopto/msh"
)

// EssentialBcs holds the essential (displacement) boundary conditions:
// the listed DOFs are held at exactly zero
type EssentialBcs struct {
	Fixed []int // global DOF numbers with zero prescribed displacement
}

// PtNaturalBcs holds point loads: parallel arrays of DOF numbers and
// load magnitudes
type PtNaturalBcs struct {
	Dofs []int     // global DOF numbers with applied load
	Vals []float64 // load magnitudes, one per entry in Dofs
}

// CheckBcs validates the boundary conditions against a grid. It catches the
// ill-posed configurations that would otherwise surface as a cryptic linear
// solver failure: out-of-range or repeated DOF indices, loads applied to
// fixed DOFs, mismatched load arrays, and too few constraints to restrain
// rigid-body motion. A full rank check is left to the factorisation.
func CheckBcs(g *msh.Grid, ebcs *EssentialBcs, nbcs *PtNaturalBcs) (err error) {
	if ebcs == nil || nbcs == nil {
		return chk.Err("essential and natural boundary conditions must both be given")
	}
	fixed := make(map[int]bool)
	for _, d := range ebcs.Fixed {
		if d < 0 || d >= g.Ndof {
			return chk.Err("fixed DOF %d is outside the valid range [0, %d)", d, g.Ndof)
		}
		if fixed[d] {
			return chk.Err("fixed DOF %d is repeated", d)
		}
		fixed[d] = true
	}
	if len(nbcs.Dofs) != len(nbcs.Vals) {
		return chk.Err("load DOFs and load values must be parallel arrays. %d != %d", len(nbcs.Dofs), len(nbcs.Vals))
	}
	for _, d := range nbcs.Dofs {
		if d < 0 || d >= g.Ndof {
			return chk.Err("load DOF %d is outside the valid range [0, %d)", d, g.Ndof)
		}
		if fixed[d] {
			return chk.Err("load DOF %d is also fixed", d)
		}
	}
	nrigid := 3 // 2D: two translations and one rotation
	if g.Ndim == 3 {
		nrigid = 6
	}
	if len(ebcs.Fixed) < nrigid {
		return chk.Err("%d fixed DOFs cannot restrain the %d rigid-body modes", len(ebcs.Fixed), nrigid)
	}
	return
}
