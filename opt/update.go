// Copyright 2017 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opt

import (
	"github.com/cpmech/gopto/fem"
	"github.com/cpmech/gopto/msh"
)

// UpdateDensity performs the move-limited density update
//   ρnew = α ρold + (1-α) ρflt
// elementwise, clamped to the density bounds inside the mask and forced to
// zero outside it. Larger α means a smaller step: more stable, slower.
// Works identically on 2D and 3D fields.
func UpdateDensity(ρnew, ρold, ρflt []float64, α float64, mat *fem.Material, mask msh.Mask) {
	for e, in := range mask {
		if !in {
			ρnew[e] = 0
			continue
		}
		ρnew[e] = mat.Clamp(α*ρold[e] + (1.0-α)*ρflt[e])
	}
}

// MaxChange returns the maximum elementwise |ρnew - ρold| restricted to
// the design mask
func MaxChange(ρnew, ρold []float64, mask msh.Mask) (dmax float64) {
	for e, in := range mask {
		if !in {
			continue
		}
		d := ρnew[e] - ρold[e]
		if d < 0 {
			d = -d
		}
		if d > dmax {
			dmax = d
		}
	}
	return
}
