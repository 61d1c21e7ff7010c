// Copyright 2017 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// GaussPoints returns the points and weights of the one-dimensional
// Gauss-Legendre rule with n points. The n-point rule integrates
// polynomials up to degree 2n-1 exactly on [-1,1].
func GaussPoints(n int) (pts, wts []float64) {
	switch n {
	case 1:
		return []float64{0}, []float64{2}
	case 2:
		d := 1.0 / math.Sqrt(3.0)
		return []float64{-d, d}, []float64{1, 1}
	case 3:
		d := math.Sqrt(3.0 / 5.0)
		return []float64{-d, 0, d}, []float64{5.0 / 9.0, 8.0 / 9.0, 5.0 / 9.0}
	}
	chk.Panic("there is no %d-point Gauss-Legendre rule; use n = 1, 2 or 3", n)
	return
}
