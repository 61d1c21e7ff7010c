// Copyright 2017 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"
	"encoding/binary"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gopto/msh"
)

// stlTri is one binary STL record: normal, three vertices, attribute
type stlTri struct {
	N    [3]float32
	V    [3][3]float32
	Attr uint16
}

// WriteStl exports the solid part of a 3D density field as a binary STL
// file: every element with ρ ≥ threshold becomes a voxel and each voxel
// face not shared with another solid voxel is emitted as two triangles
// with outward normal
func WriteStl(g *msh.Grid, ρ []float64, threshold float64, dirout, fname string) (err error) {
	if g.Ndim != 3 {
		return chk.Err("STL export needs a 3D grid")
	}

	solid := func(elx, ely, elz int) bool {
		if elx < 0 || elx >= g.Nelx || ely < 0 || ely >= g.Nely || elz < 0 || elz >= g.Nelz {
			return false
		}
		return ρ[g.ElemID(elx, ely, elz)] >= threshold
	}

	// voxel face templates: outward normal, neighbour offset and the four
	// face corners in counter-clockwise order seen from outside, as offsets
	// (0 or 1) from the voxel origin
	type face struct {
		n   [3]float32
		off [3]int
		c   [4][3]int
	}
	faces := []face{
		{[3]float32{-1, 0, 0}, [3]int{-1, 0, 0}, [4][3]int{{0, 0, 0}, {0, 0, 1}, {0, 1, 1}, {0, 1, 0}}},
		{[3]float32{1, 0, 0}, [3]int{1, 0, 0}, [4][3]int{{1, 0, 0}, {1, 1, 0}, {1, 1, 1}, {1, 0, 1}}},
		{[3]float32{0, -1, 0}, [3]int{0, -1, 0}, [4][3]int{{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1}}},
		{[3]float32{0, 1, 0}, [3]int{0, 1, 0}, [4][3]int{{0, 1, 0}, {0, 1, 1}, {1, 1, 1}, {1, 1, 0}}},
		{[3]float32{0, 0, -1}, [3]int{0, 0, -1}, [4][3]int{{0, 0, 0}, {0, 1, 0}, {1, 1, 0}, {1, 0, 0}}},
		{[3]float32{0, 0, 1}, [3]int{0, 0, 1}, [4][3]int{{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1}}},
	}

	// collect exposed faces
	var tris []stlTri
	corner := func(elx, ely, elz int, c [3]int) (v [3]float32) {
		v[0] = float32(float64(elx+c[0]) * g.Dx)
		v[1] = float32(float64(ely+c[1]) * g.Dy)
		v[2] = float32(float64(elz+c[2]) * g.Dz)
		return
	}
	for elz := 0; elz < g.Nelz; elz++ {
		for ely := 0; ely < g.Nely; ely++ {
			for elx := 0; elx < g.Nelx; elx++ {
				if !solid(elx, ely, elz) {
					continue
				}
				for _, f := range faces {
					if solid(elx+f.off[0], ely+f.off[1], elz+f.off[2]) {
						continue
					}
					v0 := corner(elx, ely, elz, f.c[0])
					v1 := corner(elx, ely, elz, f.c[1])
					v2 := corner(elx, ely, elz, f.c[2])
					v3 := corner(elx, ely, elz, f.c[3])
					tris = append(tris,
						stlTri{N: f.n, V: [3][3]float32{v0, v1, v2}},
						stlTri{N: f.n, V: [3][3]float32{v0, v2, v3}},
					)
				}
			}
		}
	}

	// binary STL: 80-byte header, triangle count, 50-byte records
	var buf bytes.Buffer
	var header [80]byte
	copy(header[:], "gopto voxel surface")
	buf.Write(header[:])
	err = binary.Write(&buf, binary.LittleEndian, uint32(len(tris)))
	if err != nil {
		return chk.Err("cannot encode STL triangle count:\n%v", err)
	}
	for _, t := range tris {
		err = binary.Write(&buf, binary.LittleEndian, t)
		if err != nil {
			return chk.Err("cannot encode STL record:\n%v", err)
		}
	}
	io.WriteFileVD(dirout, fname, &buf)
	return
}
