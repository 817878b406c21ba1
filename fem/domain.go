// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/exdyn/dof"
	"github.com/cpmech/exdyn/ele"
	"github.com/cpmech/exdyn/ele/mpc"
	"github.com/cpmech/exdyn/ele/solid"
	"github.com/cpmech/exdyn/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Domain holds all Nodes, Elements, Conditions and Constraints of a region during a stage in
// addition to the Solution at nodes and the explicit builder that numbers the equations
type Domain struct {

	// init: auxiliary variables
	ShowMsg bool            // show messages
	Sim     *inp.Simulation // [from FEM] input data
	Reg     *inp.Region     // region data
	Msh     *inp.Mesh       // mesh data

	// stage: nodes, elements, conditions and constraints
	Nodes       []*dof.Node      // nodes connected to cells (for each stage). Note: indices in Nodes do NOT correpond to Ids => use Vid2node to access Nodes using Ids.
	Elems       []ele.Element    // all elements (for each stage), active or not
	Conds       []ele.Condition  // point loads
	Constraints []ele.Constraint // master-slave constraints
	Model       *Model           // entities given to the builder

	// stage: auxiliary maps for nodes and elements
	Vid2node   []*dof.Node   // [nverts] VertexId => node. Vertices without cells are 'nil'
	Cid2elem   []ele.Element // [ncells] CellId => element
	Cid2active []bool        // [ncells] CellId => whether cell is active or not

	// stage: prescribed values
	EssenBcs EssentialBcs // prescribed displacements

	// stage: solution and builder
	Builder *ExplicitBuilder // explicit builder
	Sol     *ele.Solution    // solution state
	Fb      []float64        // residual (copy of reactions)
}

// NewDomains returns domains
func NewDomains(sim *inp.Simulation, verbose bool) (doms []*Domain) {
	doms = make([]*Domain, len(sim.Regions))
	for i, reg := range sim.Regions {
		doms[i] = NewDomain(sim, reg, verbose)
	}
	return
}

// NewDomain returns a new domain of a region
func NewDomain(sim *inp.Simulation, reg *inp.Region, verbose bool) (o *Domain) {
	o = new(Domain)
	o.ShowMsg = verbose
	o.Sim = sim
	o.Reg = reg
	o.Msh = reg.Msh
	o.Vid2node = make([]*dof.Node, len(o.Msh.Verts))
	o.Cid2active = make([]bool, len(o.Msh.Cells))
	for _, cell := range o.Msh.Cells {
		if edat := reg.Etag2data(cell.Tag); edat != nil {
			o.Cid2active[cell.Id] = !edat.Inact
		}
	}
	o.Builder = NewExplicitBuilder(sim.Data.Nthreads)
	o.Builder.SetEchoLevel(sim.Data.EchoLevel)
	o.Builder.SetCalculateReactionsFlag(sim.Data.Reactions)
	o.Builder.SetReshapeMatrixFlag(sim.Data.Reshape)
	return
}

// SetStage sets nodes, elements, conditions and constraints; then sets up the dof set,
// equation numbers and lumped masses. Solution values of dofs that exist in the previous
// stage are kept
func (o *Domain) SetStage(stgidx int) (err error) {

	// pointer to stage structure
	stg := o.Sim.Stages[stgidx]

	// activation flags
	err = o.fix_inact_flags(stg.Activate, false)
	if err != nil {
		return
	}
	err = o.fix_inact_flags(stg.Deactivate, true)
	if err != nil {
		return
	}

	// nodes and elements ---------------------------------------------------------------------------

	o.Nodes = make([]*dof.Node, 0)
	o.Elems = make([]ele.Element, 0)
	o.Cid2elem = make([]ele.Element, len(o.Msh.Cells))
	for _, cell := range o.Msh.Cells {

		// get element info
		info, _, err := ele.GetInfo(cell, o.Reg, o.Sim)
		if err != nil {
			return chk.Err("get element information failed:\n%v", err)
		}
		if len(info.Dofs) != len(cell.Verts) {
			return chk.Err("element {tag=%d, id=%d} info has %d dof lists for %d vertices", cell.Tag, cell.Id, len(info.Dofs), len(cell.Verts))
		}

		// nodes and dofs of this element
		nodes := make([]*dof.Node, len(cell.Verts))
		for j, v := range cell.Verts {
			if o.Vid2node[v] == nil {
				vert := o.Msh.Verts[v]
				o.Vid2node[v] = dof.NewNode(vert.Id, vert.Tag, vert.C)
			}
			nod := o.Vid2node[v]
			for _, key := range info.Dofs[j] {
				vr, err := dof.GetVar(key)
				if err != nil {
					return chk.Err("element {tag=%d, id=%d} requires an unknown dof:\n%v", cell.Tag, cell.Id, err)
				}
				nod.AddDof(vr)
			}
			nodes[j] = nod
		}

		// allocate element
		e, err := ele.New(cell, o.Reg, o.Sim, nodes)
		if err != nil {
			return chk.Err("new element failed:\n%v", err)
		}
		if s, ok := e.(ele.CanBeActivated); ok {
			s.SetActive(o.Cid2active[cell.Id])
		}
		o.Cid2elem[cell.Id] = e
		o.Elems = append(o.Elems, e)
	}
	for _, nod := range o.Vid2node {
		if nod != nil {
			o.Nodes = append(o.Nodes, nod)
		}
	}

	// conditions -----------------------------------------------------------------------------------

	o.Conds = make([]ele.Condition, 0)
	o.EssenBcs.Init()
	for _, nbc := range stg.NodeBcs {
		nodes := o.tag2nodes(nbc.Tag)
		if len(nodes) == 0 {
			if o.ShowMsg {
				io.Pfyel("warning: there are no nodes with tag %d in region %q\n", nbc.Tag, o.Reg.Desc)
			}
			continue
		}
		for j, key := range nbc.Keys {
			fcn, err := o.Sim.Functions.Get(nbc.Funcs[j])
			if err != nil {
				return chk.Err("cannot find function for node bc with tag %d:\n%v", nbc.Tag, err)
			}
			if _, err = dof.GetVar(key); err == nil {
				err = o.EssenBcs.Set(key, nodes, fcn)
				if err != nil {
					return chk.Err("cannot set essential bc with tag %d:\n%v", nbc.Tag, err)
				}
				continue
			}
			v := dof.ReacToVar(key)
			if v == nil {
				return chk.Err("key %q of node bc with tag %d is neither a dof nor a reaction", key, nbc.Tag)
			}
			for _, nod := range nodes {
				d := nod.GetDof(v.Name)
				if d == nil {
					return chk.Err("cannot apply %q at node %d because it has no %q dof", key, nod.Id, v.Name)
				}
				o.Conds = append(o.Conds, solid.NewPointLoad(len(o.Conds), d, fcn, 1))
			}
		}
	}

	// constraints ----------------------------------------------------------------------------------

	o.Constraints = make([]ele.Constraint, 0)
	for i, tie := range stg.Ties {
		mnod, snod := o.vid2node(tie.Master), o.vid2node(tie.Slave)
		if mnod == nil || snod == nil {
			return chk.Err("tie %d: vertices %d and %d must be connected to cells", i, tie.Master, tie.Slave)
		}
		for _, key := range tie.Keys {
			m, s := mnod.GetDof(key), snod.GetDof(key)
			if m == nil || s == nil {
				return chk.Err("tie %d: both vertices must have dof %q", i, key)
			}
			c, err := mpc.NewLinearConstraint(len(o.Constraints), []*dof.Dof{m}, s, []float64{tie.Coef})
			if err != nil {
				return chk.Err("tie %d: %v", i, err)
			}
			o.Constraints = append(o.Constraints, c)
		}
	}

	// builder --------------------------------------------------------------------------------------

	o.Model = &Model{Elements: o.Elems, Conditions: o.Conds, Constraints: o.Constraints}
	if code := o.Builder.Check(o.Model); code != CheckOK {
		return chk.Err("model of region %q is not valid. check code = %d", o.Reg.Desc, code)
	}
	err = o.Rebuild()
	if err != nil {
		return
	}
	if o.ShowMsg {
		io.Pf(">> Stage %d set: %d nodes, %d elements, %d conditions, %d constraints, %d equations\n",
			stgidx, len(o.Nodes), len(o.Elems), len(o.Conds), len(o.Constraints), o.Builder.GetEquationSystemSize())
	}
	return
}

// Rebuild sets up the dof set, the equation numbers and the lumped masses again, keeping the
// solution values of the dofs that exist before and after rebuilding
func (o *Domain) Rebuild() (err error) {
	vals := o.backup()
	err = o.Builder.SetUpDofSet(o.Model)
	if err != nil {
		return chk.Err("cannot set up dof set:\n%v", err)
	}
	err = o.Builder.SetUpDofSetEquationIds()
	if err != nil {
		return
	}
	err = o.Builder.SetUpLumpedMassMatrixVector(o.Model)
	if err != nil {
		return chk.Err("cannot assemble lumped mass vector:\n%v", err)
	}
	ny := o.Builder.GetEquationSystemSize()
	sol := ele.NewSolution(ny)
	if o.Sol != nil {
		sol.T, sol.Dt = o.Sol.T, o.Sol.Dt
	}
	o.Sol = sol
	o.Fb = make([]float64, ny)
	o.restore(vals)
	return
}

// SetIniVals sets/resets initial values
func (o *Domain) SetIniVals(stgidx int, zeroSol bool) (err error) {
	stg := o.Sim.Stages[stgidx]
	if zeroSol {
		o.Sol.Reset()
	}
	err = o.EssenBcs.Apply(o.Builder.GetDofSet(), o.Sol, o.Sol.T, 0)
	if err != nil {
		return
	}
	err = o.ApplyConstraints()
	if err != nil {
		return
	}
	if o.ShowMsg && o.Sim.Data.EchoLevel > 1 {
		io.Pf("%v", o.EssenBcs.List(stg.Control.Tf))
	}
	return
}

// ApplyConstraints sets the values of slave dofs
func (o *Domain) ApplyConstraints() (err error) {
	set := o.Builder.GetDofSet()
	for _, c := range o.Constraints {
		err = c.Apply(set, o.Sol)
		if err != nil {
			return chk.Err("cannot apply constraint %d:\n%v", c.Id(), err)
		}
	}
	return
}

// Clean releases the dof set
func (o *Domain) Clean() {
	o.Builder.Clear()
}

// auxiliary functions //////////////////////////////////////////////////////////////////////////////

// tag2nodes returns the nodes of vertices with given tag
func (o *Domain) tag2nodes(tag int) (nodes []*dof.Node) {
	for _, v := range o.Msh.VertTag2verts[tag] {
		if nod := o.Vid2node[v.Id]; nod != nil {
			nodes = append(nodes, nod)
		}
	}
	return
}

// vid2node returns the node of a vertex or nil
func (o *Domain) vid2node(vid int) *dof.Node {
	if vid < 0 || vid >= len(o.Vid2node) {
		return nil
	}
	return o.Vid2node[vid]
}

// fix_inact_flags sets inactive flags for new active/inactive elements
func (o *Domain) fix_inact_flags(eids_or_tags []int, deactivate bool) (err error) {
	for _, tag := range eids_or_tags {
		if tag >= 0 { // this meahs that tag == cell.Id
			if tag >= len(o.Msh.Cells) {
				return chk.Err("cannot find cell with id=%d", tag)
			}
			o.Cid2active[tag] = !deactivate
			continue
		}
		cells, ok := o.Msh.CellTag2cells[tag]
		if !ok {
			return chk.Err("cannot find cells with etag=%d", tag)
		}
		for _, cell := range cells {
			o.Cid2active[cell.Id] = !deactivate
		}
	}
	return
}

// backup saves a copy of the solution by dof identity
func (o *Domain) backup() (vals map[dof.Key][3]float64) {
	set := o.Builder.GetDofSet()
	if o.Sol == nil || set == nil {
		return
	}
	vals = make(map[dof.Key][3]float64, set.Size())
	for i, d := range set.Slice() {
		vals[d.Key()] = [3]float64{o.Sol.Y[i], o.Sol.Dydt[i], o.Sol.D2ydt2[i]}
	}
	return
}

// restore restores solution values saved by backup
func (o *Domain) restore(vals map[dof.Key][3]float64) {
	if vals == nil {
		return
	}
	for i, d := range o.Builder.GetDofSet().Slice() {
		if v, ok := vals[d.Key()]; ok {
			o.Sol.Y[i], o.Sol.Dydt[i], o.Sol.D2ydt2[i] = v[0], v[1], v[2]
		}
	}
}
