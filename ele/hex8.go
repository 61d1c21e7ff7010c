// Copyright 2017 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/gosl/utl"
)

// Hex8 implements the trilinear 8-node hexahedron. Local node order follows
// the bottom face counter-clockwise then the top face counter-clockwise,
// starting at (-1,-1,-1). Stress/strain components are ordered
// {εx, εy, εz, γxy, γyz, γzx}.
type Hex8 struct {

	// input
	Dx float64 // element size along x
	Dy float64 // element size along y
	Dz float64 // element size along z
	Nu float64 // Poisson's coefficient

	// derived
	Ke [][]float64 // [24][24] stiffness matrix for unit Young's modulus
	D  [][]float64 // [6][6] modulus matrix for unit Young's modulus
	B0 [][]float64 // [6][24] strain-displacement matrix at ξ=η=ζ=0
}

// natural coordinates of the eight nodes
var (
	hexξ = []float64{-1, 1, 1, -1, -1, 1, 1, -1}
	hexη = []float64{-1, -1, 1, 1, -1, -1, 1, 1}
	hexζ = []float64{-1, -1, -1, -1, 1, 1, 1, 1}
)

// NewHex8 returns a new Hex8 with all matrices computed
func NewHex8(dx, dy, dz, nu float64) (o *Hex8) {

	o = new(Hex8)
	o.Dx, o.Dy, o.Dz, o.Nu = dx, dy, dz, nu

	// 3D modulus matrix (unit E)
	a := 1.0 / ((1.0 + nu) * (1.0 - 2.0*nu))
	o.D = utl.Alloc(6, 6)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i == j {
				o.D[i][j] = a * (1.0 - nu)
			} else {
				o.D[i][j] = a * nu
			}
		}
		o.D[3+i][3+i] = a * (1.0 - 2.0*nu) / 2.0
	}

	// strain-displacement matrix at the centroid
	o.B0 = utl.Alloc(6, 24)
	o.CalcB(0, 0, 0, o.B0)

	// stiffness matrix by 2x2x2 Gauss quadrature
	o.Ke = utl.Alloc(24, 24)
	pts, wts := GaussPoints(2)
	B := utl.Alloc(6, 24)
	detJ := dx * dy * dz / 8.0
	for ip, ξ := range pts {
		for jp, η := range pts {
			for kp, ζ := range pts {
				o.CalcB(ξ, η, ζ, B)
				coef := wts[ip] * wts[jp] * wts[kp] * detJ
				for i := 0; i < 24; i++ {
					for j := 0; j < 24; j++ {
						for k := 0; k < 6; k++ {
							for l := 0; l < 6; l++ {
								o.Ke[i][j] += coef * B[k][i] * o.D[k][l] * B[l][j]
							}
						}
					}
				}
			}
		}
	}
	return
}

// CalcB computes the [6][24] strain-displacement matrix at natural
// coordinates (ξ,η,ζ). The Jacobian of the box-shaped element is constant
// and diagonal: diag(dx/2, dy/2, dz/2).
func (o *Hex8) CalcB(ξ, η, ζ float64, B [][]float64) {
	for i := 0; i < 8; i++ {
		dNdx := hexξ[i] * (1.0 + hexη[i]*η) * (1.0 + hexζ[i]*ζ) / 8.0 * 2.0 / o.Dx
		dNdy := hexη[i] * (1.0 + hexξ[i]*ξ) * (1.0 + hexζ[i]*ζ) / 8.0 * 2.0 / o.Dy
		dNdz := hexζ[i] * (1.0 + hexξ[i]*ξ) * (1.0 + hexη[i]*η) / 8.0 * 2.0 / o.Dz
		for k := 0; k < 6; k++ {
			B[k][3*i], B[k][3*i+1], B[k][3*i+2] = 0, 0, 0
		}
		B[0][3*i] = dNdx
		B[1][3*i+1] = dNdy
		B[2][3*i+2] = dNdz
		B[3][3*i], B[3][3*i+1] = dNdy, dNdx
		B[4][3*i+1], B[4][3*i+2] = dNdz, dNdy
		B[5][3*i], B[5][3*i+2] = dNdz, dNdx
	}
}

// Nnodes returns the number of nodes
func (o *Hex8) Nnodes() int { return 8 }

// Ndofs returns the number of element DOFs
func (o *Hex8) Ndofs() int { return 24 }

// Nsig returns the number of stress components
func (o *Hex8) Nsig() int { return 6 }

// UnitKe returns the stiffness matrix for unit Young's modulus
func (o *Hex8) UnitKe() [][]float64 { return o.Ke }

// UnitD returns the modulus matrix for unit Young's modulus
func (o *Hex8) UnitD() [][]float64 { return o.D }

// CentroidB returns the strain-displacement matrix at ξ=η=ζ=0
func (o *Hex8) CentroidB() [][]float64 { return o.B0 }
