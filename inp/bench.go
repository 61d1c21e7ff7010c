// Copyright 2017 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gopto/fem"
	"github.com/cpmech/gopto/msh"
)

// benchmarks holds the built-in boundary-condition generators
var benchmarks = map[string]func(g *msh.Grid) (*fem.EssentialBcs, *fem.PtNaturalBcs, error){
	"cantilever2d": Cantilever2d,
	"mbb2d":        Mbb2d,
	"cantilever3d": Cantilever3d,
}

// Benchmark returns the boundary conditions of a named benchmark
func Benchmark(name string, g *msh.Grid) (*fem.EssentialBcs, *fem.PtNaturalBcs, error) {
	gen, ok := benchmarks[name]
	if !ok {
		return nil, nil, chk.Err("benchmark %q is not available", name)
	}
	return gen(g)
}

// Cantilever2d fixes the whole left edge and applies a downward unit load
// at the bottom-right node
func Cantilever2d(g *msh.Grid) (ebcs *fem.EssentialBcs, nbcs *fem.PtNaturalBcs, err error) {
	if g.Ndim != 2 {
		return nil, nil, chk.Err("cantilever2d needs a 2D grid")
	}
	ebcs = new(fem.EssentialBcs)
	for j := 0; j < g.Nny; j++ {
		n := g.NodeID(0, j, 0)
		ebcs.Fixed = append(ebcs.Fixed, 2*n, 2*n+1)
	}
	tip := g.NodeID(g.Nelx, 0, 0)
	nbcs = &fem.PtNaturalBcs{Dofs: []int{2*tip + 1}, Vals: []float64{-1}}
	return
}

// Mbb2d models half of the simply supported MBB beam: symmetry (ux=0) on
// the left edge, a vertical roller at the bottom-right corner, and a
// downward unit load at the top-left node
func Mbb2d(g *msh.Grid) (ebcs *fem.EssentialBcs, nbcs *fem.PtNaturalBcs, err error) {
	if g.Ndim != 2 {
		return nil, nil, chk.Err("mbb2d needs a 2D grid")
	}
	ebcs = new(fem.EssentialBcs)
	for j := 0; j < g.Nny; j++ {
		n := g.NodeID(0, j, 0)
		ebcs.Fixed = append(ebcs.Fixed, 2*n)
	}
	roller := g.NodeID(g.Nelx, 0, 0)
	ebcs.Fixed = append(ebcs.Fixed, 2*roller+1)
	top := g.NodeID(0, g.Nely, 0)
	nbcs = &fem.PtNaturalBcs{Dofs: []int{2*top + 1}, Vals: []float64{-1}}
	return
}

// Cantilever3d fixes the whole x=0 face and applies a downward unit load
// at the bottom-right edge midpoint
func Cantilever3d(g *msh.Grid) (ebcs *fem.EssentialBcs, nbcs *fem.PtNaturalBcs, err error) {
	if g.Ndim != 3 {
		return nil, nil, chk.Err("cantilever3d needs a 3D grid")
	}
	ebcs = new(fem.EssentialBcs)
	for k := 0; k < g.Nnz; k++ {
		for j := 0; j < g.Nny; j++ {
			n := g.NodeID(0, j, k)
			ebcs.Fixed = append(ebcs.Fixed, 3*n, 3*n+1, 3*n+2)
		}
	}
	tip := g.NodeID(g.Nelx, 0, g.Nelz/2)
	nbcs = &fem.PtNaturalBcs{Dofs: []int{3*tip + 1}, Vals: []float64{-1}}
	return
}
