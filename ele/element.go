// Copyright 2017 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ele implements the reference finite elements: a bilinear
// quadrilateral for 2D grids and an 8-node hexahedron for 3D grids. All
// matrices correspond to unit Young's modulus; the density-dependent modulus
// scales them during assembly and stress recovery.
package ele

import "github.com/cpmech/gosl/chk"

// Element defines what reference elements must implement
type Element interface {
	Nnodes() int            // number of nodes
	Ndofs() int             // number of element DOFs
	UnitKe() [][]float64    // stiffness matrix for unit Young's modulus
	UnitD() [][]float64     // elastic modulus matrix for unit Young's modulus
	CentroidB() [][]float64 // strain-displacement matrix at the reference origin
	Nsig() int              // number of stress components: 3 in 2D, 6 in 3D
}

// New returns the reference element matching the space dimension; the
// element size dz is ignored in 2D
func New(ndim int, dx, dy, dz, nu float64) (Element, error) {
	switch ndim {
	case 2:
		return NewQuad4(dx, dy, nu), nil
	case 3:
		return NewHex8(dx, dy, dz, nu), nil
	}
	return nil, chk.Err("there is no reference element for ndim=%d", ndim)
}
