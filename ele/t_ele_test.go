// Copyright 2017 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_gauss01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("gauss01. Gauss-Legendre rules")

	for _, n := range []int{1, 2, 3} {
		pts, wts := GaussPoints(n)
		chk.IntAssert(len(pts), n)
		sum := 0.0
		for _, w := range wts {
			sum += w
		}
		if n > 1 {
			chk.Float64(tst, io.Sf("Σw (n=%d)", n), 1e-15, sum, 2)
		}
	}

	// the 2-point rule integrates x² on [-1,1] exactly
	pts, wts := GaussPoints(2)
	res := 0.0
	for i := range pts {
		res += wts[i] * pts[i] * pts[i]
	}
	chk.Float64(tst, "∫x²", 1e-15, res, 2.0/3.0)
}

func Test_quad01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("quad01. unit square. Ke properties")

	q := NewQuad4(1, 1, 0.3)
	Ke := q.UnitKe()

	// corner diagonal entry of the plane-stress bilinear square
	chk.Float64(tst, "Ke[0][0]", 1e-14, Ke[0][0], (0.5-0.3/6.0)/(1.0-0.3*0.3))

	// symmetry
	for i := 0; i < 8; i++ {
		for j := i + 1; j < 8; j++ {
			chk.Float64(tst, io.Sf("Ke[%d][%d]", i, j), 1e-14, Ke[i][j], Ke[j][i])
		}
	}

	// rigid-body translations produce zero force
	for r := 0; r < 2; r++ {
		for i := 0; i < 8; i++ {
			sum := 0.0
			for n := 0; n < 4; n++ {
				sum += Ke[i][2*n+r]
			}
			chk.Float64(tst, io.Sf("row %d, translation %d", i, r), 1e-13, sum, 0)
		}
	}

	// modulus matrix
	D := q.UnitD()
	c := 1.0 / (1.0 - 0.09)
	chk.Float64(tst, "D[0][0]", 1e-15, D[0][0], c)
	chk.Float64(tst, "D[0][1]", 1e-15, D[0][1], 0.3*c)
	chk.Float64(tst, "D[2][2]", 1e-15, D[2][2], 0.35*c)
}

func Test_quad02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("quad02. centroidal B reproduces uniform strain")

	// ux = 0.01 x over a 2x0.5 element gives εx = 0.01 at the centroid
	q := NewQuad4(2, 0.5, 0.25)
	ue := []float64{0, 0, 0.02, 0, 0.02, 0, 0, 0}
	B := q.CentroidB()
	eps := make([]float64, 3)
	for k := 0; k < 3; k++ {
		for j := 0; j < 8; j++ {
			eps[k] += B[k][j] * ue[j]
		}
	}
	chk.Array(tst, "ε", 1e-15, eps, []float64{0.01, 0, 0})
}

func Test_hex01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("hex01. unit cube. Ke properties")

	h := NewHex8(1, 1, 1, 0.3)
	Ke := h.UnitKe()

	// symmetry
	for i := 0; i < 24; i++ {
		for j := i + 1; j < 24; j++ {
			chk.Float64(tst, io.Sf("Ke[%d][%d]", i, j), 1e-13, Ke[i][j], Ke[j][i])
		}
	}

	// rigid-body translations produce zero force
	for r := 0; r < 3; r++ {
		for i := 0; i < 24; i++ {
			sum := 0.0
			for n := 0; n < 8; n++ {
				sum += Ke[i][3*n+r]
			}
			chk.Float64(tst, io.Sf("row %d, translation %d", i, r), 1e-13, sum, 0)
		}
	}

	// modulus matrix
	D := h.UnitD()
	a := 1.0 / ((1.0 + 0.3) * (1.0 - 0.6))
	chk.Float64(tst, "D[0][0]", 1e-15, D[0][0], a*0.7)
	chk.Float64(tst, "D[0][1]", 1e-15, D[0][1], a*0.3)
	chk.Float64(tst, "D[3][3]", 1e-15, D[3][3], a*0.2)
}

func Test_hex02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("hex02. centroidal B reproduces uniform strain")

	// uz = 0.1 z over the unit cube gives εz = 0.1 at the centroid
	h := NewHex8(1, 1, 1, 0.3)
	ue := make([]float64, 24)
	for n := 4; n < 8; n++ { // top-face nodes
		ue[3*n+2] = 0.1
	}
	B := h.CentroidB()
	eps := make([]float64, 6)
	for k := 0; k < 6; k++ {
		for j := 0; j < 24; j++ {
			eps[k] += B[k][j] * ue[j]
		}
	}
	chk.Array(tst, "ε", 1e-15, eps, []float64{0, 0, 0.1, 0, 0, 0})
}

func Test_new01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("new01. element factory")

	e2, err := New(2, 1, 1, 0, 0.3)
	if err != nil {
		tst.Errorf("New(2) failed: %v\n", err)
		return
	}
	chk.IntAssert(e2.Nnodes(), 4)
	chk.IntAssert(e2.Ndofs(), 8)
	chk.IntAssert(e2.Nsig(), 3)

	e3, err := New(3, 1, 1, 1, 0.3)
	if err != nil {
		tst.Errorf("New(3) failed: %v\n", err)
		return
	}
	chk.IntAssert(e3.Nnodes(), 8)
	chk.IntAssert(e3.Ndofs(), 24)
	chk.IntAssert(e3.Nsig(), 6)

	_, err = New(1, 1, 1, 1, 0.3)
	if err == nil {
		tst.Errorf("New(1) should have failed")
	}
}
