// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package solid implements structural elements and point loads for explicit dynamics
package solid

import (
	"math"

	"github.com/cpmech/exdyn/dof"
	"github.com/cpmech/exdyn/ele"
	"github.com/cpmech/exdyn/inp"
	"github.com/cpmech/exdyn/mdl/solid"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ElastRod represents a structural rod element (for axial loads only) with 2 nodes only and
// simply implemented with constant stiffness matrix; i.e. no numerical integration is needed
type ElastRod struct {

	// basic data
	Cell   *inp.Cell   // the cell structure
	X      [][]float64 // matrix of nodal coordinates [ndim][nnode]
	Nu     int         // total number of unknowns == 2 * ndim
	Ndim   int         // space dimension
	Active bool        // element contributes to the residual

	// parameters and properties
	Mdl solid.OneD // material model with: E, A and Rho
	L   float64    // length of rod

	// vectors and matrices
	T []float64  // [ndim] direction cosines
	K *mat.Dense // [nu][nu] element K matrix
	M *mat.Dense // [nu][nu] element M matrix (consistent)

	// problem variables
	Dofs []*dof.Dof // [nu] dofs ordered as {ux0, uy0, ux1, uy1}
	Umap []int      // assembly map (location array/element equations)

	// scratchpad
	ue []float64 // [nu] element displacements
}

// register element
func init() {

	// information allocator
	ele.SetInfoFunc("elastrod", func(sim *inp.Simulation, cell *inp.Cell, edat *inp.ElemData) *ele.Info {
		var info ele.Info
		ykeys := UKeys(sim.Ndim)
		info.Dofs = make([][]string, 2)
		for m := 0; m < 2; m++ {
			info.Dofs[m] = ykeys
		}
		info.T2vars = ykeys
		return &info
	})

	// element allocator
	ele.SetAllocator("elastrod", func(sim *inp.Simulation, cell *inp.Cell, edat *inp.ElemData, nodes []*dof.Node) (ele.Element, error) {

		// parameters
		matdata := sim.Materials.Get(edat.Mat)
		if matdata == nil {
			return nil, chk.Err("cannot get materials data for elastic rod element {tag=%d id=%d material=%q}", cell.Tag, cell.Id, edat.Mat)
		}
		mdl, ok := matdata.Sld.(solid.OneD)
		if !ok {
			return nil, chk.Err("model of material %q cannot be used with elastic rods", edat.Mat)
		}
		return NewElastRod(cell, mdl, sim.Ndim, nodes, !edat.Inact)
	})
}

// NewElastRod returns a new rod connecting two nodes
func NewElastRod(cell *inp.Cell, mdl solid.OneD, ndim int, nodes []*dof.Node, active bool) (o *ElastRod, err error) {

	// check
	if len(nodes) != 2 {
		return nil, chk.Err("elastrod requires 2 nodes. %d is invalid", len(nodes))
	}
	if ndim < 1 || ndim > 3 {
		return nil, chk.Err("elastrod works with ndim = 1, 2 or 3. ndim=%d is invalid", ndim)
	}

	// basic data
	o = new(ElastRod)
	o.Cell = cell
	o.Ndim = ndim
	o.Nu = 2 * ndim
	o.Mdl = mdl
	o.Active = active
	o.X = ele.BuildCoordsMatrix(ndim, nodes)
	o.Dofs = ele.CollectDofs(nodes, UVars(ndim))
	o.Umap = make([]int, o.Nu)
	o.ue = make([]float64, o.Nu)

	// matrices
	o.T = make([]float64, ndim)
	o.K = mat.NewDense(o.Nu, o.Nu, nil)
	o.M = mat.NewDense(o.Nu, o.Nu, nil)
	err = o.compute(true)
	if err != nil {
		return nil, err
	}
	return
}

// implementation ///////////////////////////////////////////////////////////////////////////////////

// Id returns the cell Id
func (o *ElastRod) Id() int { return o.Cell.Id }

// IsActive tells whether this element contributes to the residual or not
func (o *ElastRod) IsActive() bool { return o.Active }

// SetActive sets the activation flag
func (o *ElastRod) SetActive(active bool) { o.Active = active }

// GetDofList returns the dofs of this element
func (o *ElastRod) GetDofList() []*dof.Dof { return o.Dofs }

// CalculateMassMatrix returns the consistent mass matrix
func (o *ElastRod) CalculateMassMatrix() (*mat.Dense, error) {
	return mat.DenseCopyOf(o.M), nil
}

// AddExplicitContribution adds -fi = -K u to the reactions
func (o *ElastRod) AddExplicitContribution(rhs *dof.Set, sol *ele.Solution) (err error) {
	err = rhs.Eqs(o.Umap, o.Dofs)
	if err != nil {
		return
	}
	for i, I := range o.Umap {
		o.ue[i] = sol.Y[I]
	}
	for i, d := range o.Dofs {
		fi := floats.Dot(o.K.RawRowView(i), o.ue)
		err = rhs.AddReaction(d, -fi)
		if err != nil {
			return
		}
	}
	return
}

// specific methods /////////////////////////////////////////////////////////////////////////////////

// CalcSig computes the axial stress for given nodal displacements
//  Note: Umap must have been set by AddExplicitContribution
func (o *ElastRod) CalcSig(sol *ele.Solution) float64 {
	var δ float64 // axial elongation
	for i := 0; i < o.Ndim; i++ {
		δ += o.T[i] * (sol.Y[o.Umap[o.Ndim+i]] - sol.Y[o.Umap[i]])
	}
	εa := δ / o.L // axial strain
	return o.Mdl.CalcSig(εa)
}

// Recompute re-compute matrices after dimensions or parameters are externally changed
func (o *ElastRod) Recompute(withM bool) {
	if err := o.compute(withM); err != nil {
		chk.Panic("%v", err)
	}
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

// compute computes geometry, K and M
func (o *ElastRod) compute(withM bool) (err error) {

	// geometry
	var l2 float64
	for i := 0; i < o.Ndim; i++ {
		o.T[i] = o.X[i][1] - o.X[i][0]
		l2 += o.T[i] * o.T[i]
	}
	o.L = math.Sqrt(l2)
	if o.L < 1e-14 {
		return chk.Err("elastrod %d has zero length", o.Cell.Id)
	}
	for i := 0; i < o.Ndim; i++ {
		o.T[i] /= o.L
	}

	// K matrix: α [cc, -cc; -cc, cc]
	α := o.Mdl.GetE() * o.Mdl.GetA() / o.L
	nd := o.Ndim
	for i := 0; i < nd; i++ {
		for j := 0; j < nd; j++ {
			kij := α * o.T[i] * o.T[j]
			o.K.Set(i, j, kij)
			o.K.Set(i, nd+j, -kij)
			o.K.Set(nd+i, j, -kij)
			o.K.Set(nd+i, nd+j, kij)
		}
	}

	// M matrix: β [2I, I; I, 2I]
	if withM {
		β := o.Mdl.GetRho() * o.Mdl.GetA() * o.L / 6.0
		o.M.Zero()
		for i := 0; i < nd; i++ {
			o.M.Set(i, i, 2.0*β)
			o.M.Set(nd+i, nd+i, 2.0*β)
			o.M.Set(i, nd+i, β)
			o.M.Set(nd+i, i, β)
		}
	}
	return
}
