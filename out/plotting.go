// Copyright 2017 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/gopto/msh"
	"github.com/cpmech/gopto/opt"
)

// PlotDensity2d draws the density field of a 2D grid as a filled contour
// over element centroids and saves <dirout>/<fnkey>.png
func PlotDensity2d(g *msh.Grid, ρ []float64, dirout, fnkey string) (err error) {
	if g.Ndim != 2 {
		return chk.Err("density plots are only available for 2D grids")
	}
	X := utl.Alloc(g.Nely, g.Nelx)
	Y := utl.Alloc(g.Nely, g.Nelx)
	Z := utl.Alloc(g.Nely, g.Nelx)
	for ely := 0; ely < g.Nely; ely++ {
		for elx := 0; elx < g.Nelx; elx++ {
			X[ely][elx] = (float64(elx) + 0.5) * g.Dx
			Y[ely][elx] = (float64(ely) + 0.5) * g.Dy
			Z[ely][elx] = ρ[g.ElemID(elx, ely, 0)]
		}
	}
	plt.Reset(true, &plt.A{Prop: float64(g.Nely) / float64(g.Nelx), Dpi: 150})
	plt.ContourF(X, Y, Z, &plt.A{CmapIdx: 4, NoLines: true, NoLabels: true, NoCbar: true})
	plt.Equal()
	plt.Gll("x", "y", nil)
	plt.Save(dirout, fnkey)
	return
}

// PlotHistory draws compliance and volume versus iteration and saves
// <dirout>/<fnkey>.png
func PlotHistory(history []*opt.Record, dirout, fnkey string) {
	n := len(history)
	it := make([]float64, n)
	c := make([]float64, n)
	v := make([]float64, n)
	for i, rec := range history {
		it[i] = float64(rec.It)
		c[i] = rec.C
		v[i] = rec.V
	}
	plt.Reset(true, &plt.A{Prop: 0.75, Dpi: 150})
	plt.Subplot(2, 1, 1)
	plt.Plot(it, c, &plt.A{C: "b", M: "."})
	plt.Gll("iteration", "compliance", nil)
	plt.Subplot(2, 1, 2)
	plt.Plot(it, v, &plt.A{C: "r", M: "."})
	plt.Gll("iteration", "volume", nil)
	plt.Save(dirout, fnkey)
}
