// Copyright 2017 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msh implements structured grids of quadrilaterals (2D) and
// hexahedra (3D) with closed-form node and DOF numbering
package msh

import (
	"github.com/cpmech/gosl/chk"
)

// Grid holds a structured grid of nelx * nely (2D) or nelx * nely * nelz (3D)
// equal-sized elements. Nodes are numbered row-major:
//   node(i,j,k) = i + j*(nelx+1) + k*(nelx+1)*(nely+1)
// and each node carries ndim DOFs: dof(n,r) = ndim*n + r
type Grid struct {

	// input
	Nelx int     // number of elements along x
	Nely int     // number of elements along y
	Nelz int     // number of elements along z; 0 in 2D
	Dx   float64 // element size along x
	Dy   float64 // element size along y
	Dz   float64 // element size along z; 0 in 2D

	// derived
	Ndim int // space dimension: 2 or 3
	Nnx  int // number of nodes along x == nelx+1
	Nny  int // number of nodes along y == nely+1
	Nnz  int // number of nodes along z == nelz+1; 1 in 2D
	Nel  int // total number of elements
	Nnod int // total number of nodes
	Ndof int // total number of DOFs == ndim * nnod
}

// NewGrid2d returns a new 2D grid
func NewGrid2d(nelx, nely int, dx, dy float64) (o *Grid) {
	if nelx < 1 || nely < 1 {
		chk.Panic("grid needs at least one element per direction. nelx=%d nely=%d is invalid", nelx, nely)
	}
	if dx <= 0 || dy <= 0 {
		chk.Panic("element sizes must be positive. dx=%g dy=%g is invalid", dx, dy)
	}
	o = new(Grid)
	o.Nelx, o.Nely = nelx, nely
	o.Dx, o.Dy = dx, dy
	o.Ndim = 2
	o.Nnx, o.Nny, o.Nnz = nelx+1, nely+1, 1
	o.Nel = nelx * nely
	o.Nnod = o.Nnx * o.Nny
	o.Ndof = o.Ndim * o.Nnod
	return
}

// NewGrid3d returns a new 3D grid
func NewGrid3d(nelx, nely, nelz int, dx, dy, dz float64) (o *Grid) {
	if nelx < 1 || nely < 1 || nelz < 1 {
		chk.Panic("grid needs at least one element per direction. nelx=%d nely=%d nelz=%d is invalid", nelx, nely, nelz)
	}
	if dx <= 0 || dy <= 0 || dz <= 0 {
		chk.Panic("element sizes must be positive. dx=%g dy=%g dz=%g is invalid", dx, dy, dz)
	}
	o = new(Grid)
	o.Nelx, o.Nely, o.Nelz = nelx, nely, nelz
	o.Dx, o.Dy, o.Dz = dx, dy, dz
	o.Ndim = 3
	o.Nnx, o.Nny, o.Nnz = nelx+1, nely+1, nelz+1
	o.Nel = nelx * nely * nelz
	o.Nnod = o.Nnx * o.Nny * o.Nnz
	o.Ndof = o.Ndim * o.Nnod
	return
}

// NodeID returns the node id of grid coordinates (i,j,k); k is ignored in 2D
func (o *Grid) NodeID(i, j, k int) int {
	if o.Ndim == 2 {
		return i + j*o.Nnx
	}
	return i + j*o.Nnx + k*o.Nnx*o.Nny
}

// NodeDofs returns the DOF numbers of node n
func (o *Grid) NodeDofs(n int) (dofs []int) {
	dofs = make([]int, o.Ndim)
	for r := 0; r < o.Ndim; r++ {
		dofs[r] = o.Ndim*n + r
	}
	return
}

// ElemID returns the element id of element coordinates (elx,ely,elz);
// elz is ignored in 2D
func (o *Grid) ElemID(elx, ely, elz int) int {
	if o.Ndim == 2 {
		return elx + ely*o.Nelx
	}
	return elx + ely*o.Nelx + elz*o.Nelx*o.Nely
}

// ElemCoords returns the element coordinates (elx,ely,elz) of element eid;
// elz is 0 in 2D
func (o *Grid) ElemCoords(eid int) (elx, ely, elz int) {
	elx = eid % o.Nelx
	ely = (eid / o.Nelx) % o.Nely
	if o.Ndim == 3 {
		elz = eid / (o.Nelx * o.Nely)
	}
	return
}

// ElemNodes returns the node ids of element eid; counter-clockwise for
// quadrilaterals, bottom-face-then-top-face counter-clockwise for hexahedra
func (o *Grid) ElemNodes(eid int) (nodes []int) {
	elx, ely, elz := o.ElemCoords(eid)
	if o.Ndim == 2 {
		return []int{
			o.NodeID(elx, ely, 0),
			o.NodeID(elx+1, ely, 0),
			o.NodeID(elx+1, ely+1, 0),
			o.NodeID(elx, ely+1, 0),
		}
	}
	return []int{
		o.NodeID(elx, ely, elz),
		o.NodeID(elx+1, ely, elz),
		o.NodeID(elx+1, ely+1, elz),
		o.NodeID(elx, ely+1, elz),
		o.NodeID(elx, ely, elz+1),
		o.NodeID(elx+1, ely, elz+1),
		o.NodeID(elx+1, ely+1, elz+1),
		o.NodeID(elx, ely+1, elz+1),
	}
}

// ElemDofs returns the global DOF numbers of element eid, ordered node by
// node following ElemNodes
func (o *Grid) ElemDofs(eid int) (dofs []int) {
	nodes := o.ElemNodes(eid)
	dofs = make([]int, 0, o.Ndim*len(nodes))
	for _, n := range nodes {
		for r := 0; r < o.Ndim; r++ {
			dofs = append(dofs, o.Ndim*n+r)
		}
	}
	return
}

// MinSize returns the smallest element size
func (o *Grid) MinSize() float64 {
	h := o.Dx
	if o.Dy < h {
		h = o.Dy
	}
	if o.Ndim == 3 && o.Dz < h {
		h = o.Dz
	}
	return h
}
