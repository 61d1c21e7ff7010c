// Copyright 2017 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/gopto/ele"
	"github.com/cpmech/gopto/msh"
)

// Domain holds the grid, boundary conditions, reference element and the
// linear system workspace. It produces the displacement field for a given
// density field; it never retains the density between calls.
type Domain struct {

	// input
	Grid *msh.Grid     // structured grid
	Mask msh.Mask      // design mask
	Mat  *Material     // material constants and SIMP data
	Ebcs *EssentialBcs // essential boundary conditions
	Nbcs *PtNaturalBcs // point loads
	Elem ele.Element   // reference element

	// derived: fixed/free DOF partition
	FreeDofs []int // global DOF numbers of free DOFs, ascending
	dof2free []int // [ndof] global DOF => index in FreeDofs; -1 if fixed

	// derived: linear system
	Kb       la.Triplet      // global stiffness matrix of free DOFs
	Fb       la.Vector       // load vector of free DOFs
	Wb       la.Vector       // solution workspace of free DOFs
	U        la.Vector       // [ndof] full displacement field; fixed DOFs stay zero
	Sol      la.SparseSolver // sparse linear solver
	InitLSol bool            // flag telling that the linear solver needs initialisation

	// workspaces
	keM *la.Matrix // copy of the unit stiffness matrix
	dM  *la.Matrix // copy of the unit modulus matrix
	b0M *la.Matrix // copy of the centroidal strain-displacement matrix
	ue  la.Vector  // element displacements
	we  la.Vector  // Ke * ue
	eps la.Vector  // element strains at centroid
	sig la.Vector  // element stresses at centroid
}

// NewDomain returns a new Domain. The boundary conditions are validated
// here; an ill-posed configuration is a fatal error, not something to be
// recovered during the solve.
func NewDomain(g *msh.Grid, mask msh.Mask, mat *Material, ebcs *EssentialBcs, nbcs *PtNaturalBcs, linsol string) (o *Domain, err error) {

	// validate input
	if len(mask) != g.Nel {
		return nil, chk.Err("design mask has %d entries but the grid has %d elements", len(mask), g.Nel)
	}
	err = CheckBcs(g, ebcs, nbcs)
	if err != nil {
		return nil, err
	}

	// new domain
	o = new(Domain)
	o.Grid, o.Mask, o.Mat = g, mask, mat
	o.Ebcs, o.Nbcs = ebcs, nbcs
	o.Elem, err = ele.New(g.Ndim, g.Dx, g.Dy, g.Dz, mat.Nu)
	if err != nil {
		return nil, err
	}

	// fixed/free DOF partition
	o.dof2free = make([]int, g.Ndof)
	for _, d := range ebcs.Fixed {
		o.dof2free[d] = -1
	}
	o.FreeDofs = make([]int, 0, g.Ndof-len(ebcs.Fixed))
	for d := 0; d < g.Ndof; d++ {
		if o.dof2free[d] < 0 {
			continue
		}
		o.dof2free[d] = len(o.FreeDofs)
		o.FreeDofs = append(o.FreeDofs, d)
	}

	// linear system
	if linsol != "umfpack" && linsol != "mumps" {
		return nil, chk.Err("linear solver %q is not available; use \"umfpack\" or \"mumps\"", linsol)
	}
	nfree := len(o.FreeDofs)
	nde := o.Elem.Ndofs()
	o.Kb.Init(nfree, nfree, g.Nel*nde*nde)
	o.Fb = la.NewVector(nfree)
	o.Wb = la.NewVector(nfree)
	o.U = la.NewVector(g.Ndof)
	for i, d := range nbcs.Dofs {
		o.Fb[o.dof2free[d]] += nbcs.Vals[i]
	}
	o.Sol = la.NewSparseSolver(linsol)
	o.InitLSol = true

	// workspaces
	o.keM = la.NewMatrixDeep2(o.Elem.UnitKe())
	o.dM = la.NewMatrixDeep2(o.Elem.UnitD())
	o.b0M = la.NewMatrixDeep2(o.Elem.CentroidB())
	o.ue = la.NewVector(nde)
	o.we = la.NewVector(nde)
	o.eps = la.NewVector(o.Elem.Nsig())
	o.sig = la.NewVector(o.Elem.Nsig())
	return
}

// Free frees the linear solver resources. The solver only holds resources
// after the first solve. The domain must not be used after calling Free.
func (o *Domain) Free() {
	if !o.InitLSol {
		o.Sol.Free()
	}
}

// assembleKb fills the triplet with the SIMP-scaled element stiffnesses.
// Entries involving fixed DOFs are dropped, which is equivalent to holding
// those DOFs at exactly zero.
func (o *Domain) assembleKb(ρ []float64) {
	Ke := o.Elem.UnitKe()
	nde := o.Elem.Ndofs()
	o.Kb.Start()
	for e := 0; e < o.Grid.Nel; e++ {
		E := o.Mat.Emodulus(ρ[e])
		dofs := o.Grid.ElemDofs(e)
		for i := 0; i < nde; i++ {
			I := o.dof2free[dofs[i]]
			if I < 0 {
				continue
			}
			for j := 0; j < nde; j++ {
				J := o.dof2free[dofs[j]]
				if J < 0 {
					continue
				}
				o.Kb.Put(I, J, E*Ke[i][j])
			}
		}
	}
}

// SolveU assembles the global stiffness matrix for the given density field
// and solves for the nodal displacements, storing them in U. A singular or
// indefinite reduced system surfaces as an error here; the solution is also
// rejected if it contains non-finite entries. The sparse solvers panic on
// failure, so the panic is recovered and converted into the error return.
func (o *Domain) SolveU(ρ []float64) (err error) {
	if len(ρ) != o.Grid.Nel {
		return chk.Err("density field has %d entries but the grid has %d elements", len(ρ), o.Grid.Nel)
	}
	defer func() {
		if r := recover(); r != nil {
			err = chk.Err("linear solve failed; check that the fixed DOFs restrain all rigid-body modes:\n%v", r)
		}
	}()
	o.assembleKb(ρ)
	if o.InitLSol {
		o.Sol.Init(&o.Kb, &la.SpArgs{Symmetric: true})
		o.InitLSol = false
	}
	o.Sol.Fact()
	o.Sol.Solve(o.Wb, o.Fb, false)
	for i := range o.U {
		o.U[i] = 0
	}
	for i, d := range o.FreeDofs {
		if math.IsNaN(o.Wb[i]) || math.IsInf(o.Wb[i], 0) {
			return chk.Err("linear solve produced a non-finite displacement at DOF %d", d)
		}
		o.U[d] = o.Wb[i]
	}
	return
}
