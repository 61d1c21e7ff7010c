// Copyright 2017 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package flt implements the cone-kernel density filter that prevents
// checkerboard patterns and enforces mesh-independent results
package flt

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gopto/msh"
)

// Filter convolves a density field with a normalised cone kernel of physical
// radius Rmin. The kernel weight of offset (i,j,k) is max(0, Rmin - dist)
// where dist is the physical distance between element centroids; weights are
// normalised once to sum to 1 so the kernel preserves mass. Boundary
// handling is zero-padded "same": edge elements see a truncated
// neighbourhood and there is no per-element renormalisation.
type Filter struct {

	// input
	Grid *msh.Grid // structured grid
	Rmin float64   // physical filter radius

	// derived
	R        int       // kernel half-width in elements
	Identity bool      // true if the kernel degenerated to a Dirac delta
	kern     []float64 // [(2R+1)^ndim] normalised weights
}

// New returns a new Filter with the kernel built and normalised. If Rmin is
// too small for any offset to receive a positive weight, the kernel falls
// back to the identity and filtering becomes a no-op; a warning is printed
// because this usually means Rmin was mis-specified.
func New(g *msh.Grid, rmin float64) (o *Filter, err error) {
	if rmin < 0 {
		return nil, chk.Err("filter radius must be non-negative. rmin=%g is invalid", rmin)
	}
	o = new(Filter)
	o.Grid, o.Rmin = g, rmin
	o.R = int(math.Ceil(rmin / g.MinSize()))

	// build cone weights
	nz := o.R
	if g.Ndim == 2 {
		nz = 0
	}
	n := 2*o.R + 1
	if g.Ndim == 2 {
		o.kern = make([]float64, n*n)
	} else {
		o.kern = make([]float64, n*n*n)
	}
	sum := 0.0
	for k := -nz; k <= nz; k++ {
		for j := -o.R; j <= o.R; j++ {
			for i := -o.R; i <= o.R; i++ {
				x := float64(i) * g.Dx
				y := float64(j) * g.Dy
				z := float64(k) * g.Dz
				w := rmin - math.Sqrt(x*x+y*y+z*z)
				if w > 0 {
					o.kern[o.kidx(i, j, k)] = w
					sum += w
				}
			}
		}
	}

	// normalise; fall back to the identity kernel if degenerate
	if sum <= 0 {
		io.Pfred("flt: radius rmin=%g produced an empty kernel; falling back to identity\n", rmin)
		o.Identity = true
		o.R = 0
		o.kern = []float64{1}
		return
	}
	for i := range o.kern {
		o.kern[i] /= sum
	}
	return
}

// kidx maps a kernel offset to its index in the flattened weight array
func (o *Filter) kidx(i, j, k int) int {
	n := 2*o.R + 1
	if o.Grid.Ndim == 2 {
		return (i + o.R) + (j+o.R)*n
	}
	return (i + o.R) + (j+o.R)*n + (k+o.R)*n*n
}

// Apply convolves src with the kernel and stores the result in dst.
// src is not modified; src and dst must not alias.
func (o *Filter) Apply(src, dst []float64) {
	g := o.Grid
	if o.Identity {
		copy(dst, src)
		return
	}
	nz := o.R
	zmax := g.Nelz
	if g.Ndim == 2 {
		nz = 0
		zmax = 1
	}
	for elz := 0; elz < zmax; elz++ {
		for ely := 0; ely < g.Nely; ely++ {
			for elx := 0; elx < g.Nelx; elx++ {
				sum := 0.0
				for k := -nz; k <= nz; k++ {
					for j := -o.R; j <= o.R; j++ {
						for i := -o.R; i <= o.R; i++ {
							w := o.kern[o.kidx(i, j, k)]
							if w == 0 {
								continue
							}
							x, y, z := elx+i, ely+j, elz+k
							if x < 0 || x >= g.Nelx || y < 0 || y >= g.Nely || z < 0 || z >= zmax {
								continue
							}
							sum += w * src[g.ElemID(x, y, z)]
						}
					}
				}
				dst[g.ElemID(elx, ely, elz)] = sum
			}
		}
	}
}
