// Copyright 2017 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/gosl/utl"
)

// Quad4 implements the bilinear quadrilateral under plane stress with unit
// thickness. Local node order is counter-clockwise starting at (-1,-1):
//
//   3 ------- 2
//   |         |      η
//   |    +    |      |
//   |         |      +--- ξ
//   0 ------- 1
type Quad4 struct {

	// input
	Dx float64 // element size along x
	Dy float64 // element size along y
	Nu float64 // Poisson's coefficient

	// derived
	Ke [][]float64 // [8][8] stiffness matrix for unit Young's modulus
	D  [][]float64 // [3][3] plane-stress modulus matrix for unit Young's modulus
	B0 [][]float64 // [3][8] strain-displacement matrix at ξ=η=0
}

// NewQuad4 returns a new Quad4 with all matrices computed
func NewQuad4(dx, dy, nu float64) (o *Quad4) {

	o = new(Quad4)
	o.Dx, o.Dy, o.Nu = dx, dy, nu

	// plane-stress modulus matrix (unit E)
	c := 1.0 / (1.0 - nu*nu)
	o.D = utl.Alloc(3, 3)
	o.D[0][0], o.D[0][1] = c, c*nu
	o.D[1][0], o.D[1][1] = c*nu, c
	o.D[2][2] = c * (1.0 - nu) / 2.0

	// strain-displacement matrix at the centroid
	o.B0 = utl.Alloc(3, 8)
	o.CalcB(0, 0, o.B0)

	// stiffness matrix by 2x2 Gauss quadrature
	o.Ke = utl.Alloc(8, 8)
	pts, wts := GaussPoints(2)
	B := utl.Alloc(3, 8)
	detJ := dx * dy / 4.0
	for ip, ξ := range pts {
		for jp, η := range pts {
			o.CalcB(ξ, η, B)
			coef := wts[ip] * wts[jp] * detJ
			for i := 0; i < 8; i++ {
				for j := 0; j < 8; j++ {
					for k := 0; k < 3; k++ {
						for l := 0; l < 3; l++ {
							o.Ke[i][j] += coef * B[k][i] * o.D[k][l] * B[l][j]
						}
					}
				}
			}
		}
	}
	return
}

// CalcB computes the [3][8] strain-displacement matrix at natural
// coordinates (ξ,η). The Jacobian of the rectangular element is constant
// and diagonal: diag(dx/2, dy/2).
func (o *Quad4) CalcB(ξ, η float64, B [][]float64) {
	ξn := []float64{-1, 1, 1, -1}
	ηn := []float64{-1, -1, 1, 1}
	for i := 0; i < 4; i++ {
		dNdx := ξn[i] * (1.0 + ηn[i]*η) / 4.0 * 2.0 / o.Dx
		dNdy := ηn[i] * (1.0 + ξn[i]*ξ) / 4.0 * 2.0 / o.Dy
		B[0][2*i], B[0][2*i+1] = dNdx, 0
		B[1][2*i], B[1][2*i+1] = 0, dNdy
		B[2][2*i], B[2][2*i+1] = dNdy, dNdx
	}
}

// Nnodes returns the number of nodes
func (o *Quad4) Nnodes() int { return 4 }

// Ndofs returns the number of element DOFs
func (o *Quad4) Ndofs() int { return 8 }

// Nsig returns the number of stress components
func (o *Quad4) Nsig() int { return 3 }

// UnitKe returns the stiffness matrix for unit Young's modulus
func (o *Quad4) UnitKe() [][]float64 { return o.Ke }

// UnitD returns the modulus matrix for unit Young's modulus
func (o *Quad4) UnitD() [][]float64 { return o.D }

// CentroidB returns the strain-displacement matrix at ξ=η=0
func (o *Quad4) CentroidB() [][]float64 { return o.B0 }
