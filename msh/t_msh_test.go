// Copyright 2017 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_grid01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("grid01. 2D numbering against hand-computed ids")

	// 3x2 grid of 1x1 elements:
	//   8 --- 9 --- 10 --- 11
	//   |  3  |  4  |  5   |
	//   4 --- 5 --- 6 ---- 7
	//   |  0  |  1  |  2   |
	//   0 --- 1 --- 2 ---- 3
	g := NewGrid2d(3, 2, 1, 1)
	chk.IntAssert(g.Ndim, 2)
	chk.IntAssert(g.Nel, 6)
	chk.IntAssert(g.Nnod, 12)
	chk.IntAssert(g.Ndof, 24)
	chk.IntAssert(g.NodeID(0, 0, 0), 0)
	chk.IntAssert(g.NodeID(3, 0, 0), 3)
	chk.IntAssert(g.NodeID(1, 2, 0), 9)
	chk.IntAssert(g.ElemID(1, 1, 0), 4)

	elx, ely, elz := g.ElemCoords(4)
	chk.IntAssert(elx, 1)
	chk.IntAssert(ely, 1)
	chk.IntAssert(elz, 0)

	chk.Ints(tst, "nodes of element 4", g.ElemNodes(4), []int{5, 6, 10, 9})
	chk.Ints(tst, "dofs of element 4", g.ElemDofs(4), []int{10, 11, 12, 13, 20, 21, 18, 19})
	chk.Ints(tst, "dofs of node 9", g.NodeDofs(9), []int{18, 19})
}

func Test_grid02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("grid02. 3D numbering against hand-computed ids")

	g := NewGrid3d(2, 2, 2, 1, 1, 1)
	chk.IntAssert(g.Ndim, 3)
	chk.IntAssert(g.Nel, 8)
	chk.IntAssert(g.Nnod, 27)
	chk.IntAssert(g.Ndof, 81)
	chk.IntAssert(g.NodeID(1, 1, 1), 13)
	chk.IntAssert(g.NodeID(2, 2, 2), 26)
	chk.IntAssert(g.ElemID(1, 1, 1), 7)

	elx, ely, elz := g.ElemCoords(7)
	chk.IntAssert(elx, 1)
	chk.IntAssert(ely, 1)
	chk.IntAssert(elz, 1)

	chk.Ints(tst, "nodes of element 7", g.ElemNodes(7), []int{13, 14, 17, 16, 22, 23, 26, 25})
	chk.Ints(tst, "dofs of node 13", g.NodeDofs(13), []int{39, 40, 41})

	// first three dofs of the element belong to its first node
	dofs := g.ElemDofs(7)
	chk.IntAssert(len(dofs), 24)
	chk.Ints(tst, "first node dofs", dofs[:3], []int{39, 40, 41})
}

func Test_mask01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mask01. full mask and carved disc")

	g := NewGrid2d(10, 10, 1, 1)
	mask := NewMaskFull(g)
	chk.IntAssert(mask.Ndesign(), 100)

	// disc of radius 1.2 centred on the centroid of element (5,5) covers
	// that element and its four edge neighbours but not the diagonals
	mask.CarveDisc(g, 5.5, 5.5, 1.2)
	chk.IntAssert(mask.Ndesign(), 95)
	if mask[g.ElemID(5, 5, 0)] {
		tst.Errorf("element (5,5) should be void")
		return
	}
	if !mask[g.ElemID(3, 5, 0)] {
		tst.Errorf("element (3,5) should remain in the design region")
	}
}
