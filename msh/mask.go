// Copyright 2017 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

// Mask is a boolean field over elements marking which ones belong to the
// design region. false entries are permanently void: density is forced to
// zero there and they are excluded from material totals and change metrics.
// The mask must not be modified after problem setup.
type Mask []bool

// NewMaskFull returns a mask with every element in the design region
func NewMaskFull(g *Grid) (mask Mask) {
	mask = make([]bool, g.Nel)
	for i := range mask {
		mask[i] = true
	}
	return
}

// Ndesign returns the number of design elements
func (o Mask) Ndesign() (n int) {
	for _, in := range o {
		if in {
			n++
		}
	}
	return
}

// CarveDisc removes from the design region all elements whose centroid lies
// within radius r of the physical point (xc,yc). 2D grids only.
func (o Mask) CarveDisc(g *Grid, xc, yc, r float64) {
	for ely := 0; ely < g.Nely; ely++ {
		for elx := 0; elx < g.Nelx; elx++ {
			x := (float64(elx) + 0.5) * g.Dx
			y := (float64(ely) + 0.5) * g.Dy
			dx, dy := x-xc, y-yc
			if dx*dx+dy*dy <= r*r {
				o[g.ElemID(elx, ely, 0)] = false
			}
		}
	}
}
