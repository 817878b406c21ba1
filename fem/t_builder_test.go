// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/cpmech/exdyn/dof"
	"github.com/cpmech/exdyn/ele"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// synthetic entities //////////////////////////////////////////////////////////////////////////////

type testElem struct {
	id       int
	dofs     []*dof.Dof
	M        *mat.Dense
	f        []float64 // contribution to each dof
	inactive bool
}

func (o *testElem) Id() int                                  { return o.id }
func (o *testElem) GetDofList() []*dof.Dof                   { return o.dofs }
func (o *testElem) CalculateMassMatrix() (*mat.Dense, error) { return o.M, nil }
func (o *testElem) IsActive() bool                           { return !o.inactive }
func (o *testElem) AddExplicitContribution(rhs *dof.Set, sol *ele.Solution) error {
	for i, d := range o.dofs {
		if err := rhs.AddReaction(d, o.f[i]); err != nil {
			return err
		}
	}
	return nil
}

type testCond struct {
	id       int
	dofs     []*dof.Dof
	f        []float64
	inactive bool
}

func (o *testCond) Id() int                { return o.id }
func (o *testCond) GetDofList() []*dof.Dof { return o.dofs }
func (o *testCond) IsActive() bool         { return !o.inactive }
func (o *testCond) AddExplicitContribution(rhs *dof.Set, sol *ele.Solution) error {
	for i, d := range o.dofs {
		if err := rhs.AddReaction(d, o.f[i]); err != nil {
			return err
		}
	}
	return nil
}

type testConstraint struct {
	id            int
	master, slave []*dof.Dof
}

func (o *testConstraint) Id() int                                     { return o.id }
func (o *testConstraint) GetDofList() (master, slave []*dof.Dof)      { return o.master, o.slave }
func (o *testConstraint) Apply(set *dof.Set, sol *ele.Solution) error { return nil }

// newChain returns nn nodes along x with dofs ux and 1D elements connecting them
func newChain(nn int, me float64) (nodes []*dof.Node, elems []ele.Element) {
	nodes = make([]*dof.Node, nn)
	for i := 0; i < nn; i++ {
		nodes[i] = dof.NewNode(i, 0, []float64{float64(i)})
		nodes[i].AddDof(dof.Ux)
	}
	for i := 0; i < nn-1; i++ {
		elems = append(elems, &testElem{
			id:   i,
			dofs: []*dof.Dof{nodes[i].Dofs[0], nodes[i+1].Dofs[0]},
			M:    mat.NewDense(2, 2, []float64{me / 2, me / 2, me / 2, me / 2}),
			f:    []float64{1, 1},
		})
	}
	return
}

// setUp runs all steps up to FullyInitialized
func setUp(tst *testing.T, b *ExplicitBuilder, m *Model) {
	require.NoError(tst, b.SetUpDofSet(m))
	require.NoError(tst, b.SetUpDofSetEquationIds())
	require.NoError(tst, b.SetUpLumpedMassMatrixVector(m))
}

// tests ///////////////////////////////////////////////////////////////////////////////////////////

func Test_builder01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("builder01. three nodes and two elements")

	nodes, elems := newChain(3, 1.0)
	m := &Model{Elements: elems}
	b := NewExplicitBuilder(2)
	chk.String(tst, b.State().String(), "Uninitialized")

	require.NoError(tst, b.SetUpDofSet(m))
	chk.String(tst, b.State().String(), "DofSetReady")
	assert.True(tst, b.GetDofSetIsInitializedFlag())
	chk.Int(tst, "ndofs", b.GetDofSet().Size(), 3)

	require.NoError(tst, b.SetUpDofSetEquationIds())
	chk.String(tst, b.State().String(), "EquationIdsReady")
	chk.Int(tst, "neq", b.GetEquationSystemSize(), 3)
	for i, nod := range nodes {
		chk.Int(tst, io.Sf("eq of node %d", i), nod.GetEq("ux"), i)
	}

	require.NoError(tst, b.SetUpLumpedMassMatrixVector(m))
	chk.String(tst, b.State().String(), "FullyInitialized")
	mass := b.GetLumpedMassMatrixVector()
	io.Pforan("mass = %v\n", mass.RawVector().Data)
	chk.Array(tst, "mass", 1e-15, mass.RawVector().Data, []float64{1, 2, 1})

	sol := ele.NewSolution(3)
	require.NoError(tst, b.BuildRHSNoDirichlet(m, sol))
	chk.String(tst, b.State().String(), "StepReady")
	res := make([]float64, 3)
	require.NoError(tst, b.GetReactions(res))
	chk.Array(tst, "R", 1e-15, res, []float64{1, 2, 1})

	// row-sum lumping of unscaled matrices
	for _, e := range elems {
		e.(*testElem).M = mat.NewDense(2, 2, []float64{1, 1, 1, 1})
	}
	require.NoError(tst, b.SetUpLumpedMassMatrixVector(m))
	chk.Array(tst, "mass", 1e-15, b.GetLumpedMassMatrixVector().RawVector().Data, []float64{2, 4, 2})

	// clear
	b.Clear()
	chk.String(tst, b.State().String(), "Uninitialized")
	assert.Nil(tst, b.GetDofSet())
	assert.Nil(tst, b.GetLumpedMassMatrixVector())
	chk.Int(tst, "neq", b.GetEquationSystemSize(), 0)
	chk.Int(tst, "eq of node 1", nodes[1].GetEq("ux"), -1)
	b.Clear()
	chk.String(tst, b.State().String(), "Uninitialized")
}

func Test_builder02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("builder02. determinism and density")

	// 2D mesh of elements given in random order; conditions and constraints share dofs
	nx := 40
	rnd := rand.New(rand.NewSource(1234))
	nodes := make([]*dof.Node, nx*nx)
	for i := range nodes {
		nodes[i] = dof.NewNode(i, 0, []float64{float64(i % nx), float64(i / nx)})
		nodes[i].AddDof(dof.Uy)
		nodes[i].AddDof(dof.Ux)
	}
	var elems []ele.Element
	for j := 0; j < nx-1; j++ {
		for i := 0; i < nx-1; i++ {
			a, b, c, d := i+j*nx, i+1+j*nx, i+1+(j+1)*nx, i+(j+1)*nx
			var dofs []*dof.Dof
			for _, n := range []int{a, b, c, d} {
				dofs = append(dofs, nodes[n].GetDof("ux"), nodes[n].GetDof("uy"))
			}
			M := mat.NewDense(8, 8, nil)
			for r := 0; r < 8; r++ {
				for s := 0; s < 8; s++ {
					M.Set(r, s, rnd.Float64())
				}
			}
			elems = append(elems, &testElem{id: len(elems), dofs: dofs, M: M, f: make([]float64, 8)})
		}
	}
	rnd.Shuffle(len(elems), func(i, j int) { elems[i], elems[j] = elems[j], elems[i] })
	conds := []ele.Condition{&testCond{id: 0, dofs: []*dof.Dof{nodes[5].Dofs[0]}, f: []float64{1}}}
	cons := []ele.Constraint{&testConstraint{id: 0, master: []*dof.Dof{nodes[0].Dofs[1]}, slave: []*dof.Dof{nodes[1].Dofs[1]}}}
	m := &Model{Elements: elems, Conditions: conds, Constraints: cons}

	// total mass
	var total float64
	for _, e := range elems {
		total += floats.Sum(e.(*testElem).M.RawMatrix().Data)
	}

	// run with several numbers of threads
	var refKeys []dof.Key
	var refMass []float64
	for _, nthreads := range []int{1, 2, 3, 4, 7, 16, 0} {
		b := NewExplicitBuilder(nthreads)
		b.SetEchoLevel(0)
		setUp(tst, b, m)
		set := b.GetDofSet()
		chk.Int(tst, "ndofs", set.Size(), 2*nx*nx)

		// dense and unique numbers in canonical order
		keys := make([]dof.Key, set.Size())
		seen := make(map[dof.Key]bool)
		for i, d := range set.Slice() {
			chk.IntAssert(d.Eq, i)
			keys[i] = d.Key()
			require.False(tst, seen[keys[i]], "duplicated dof %v", d)
			seen[keys[i]] = true
			if i > 0 {
				require.True(tst, set.At(i-1).Less(d), "dofs are not sorted")
			}
		}

		// mass conservation
		mass := b.GetLumpedMassMatrixVector().RawVector().Data
		chk.Float64(tst, io.Sf("total mass (nthreads=%d)", nthreads), 1e-9, floats.Sum(mass), total)

		// same results regardless of number of threads
		if refKeys == nil {
			refKeys, refMass = keys, append([]float64{}, mass...)
			continue
		}
		assert.Equal(tst, refKeys, keys)
		chk.Array(tst, io.Sf("mass (nthreads=%d)", nthreads), 1e-12, mass, refMass)
	}

	// same builder twice with Clear in between and another number of threads
	b := NewExplicitBuilder(1)
	b.SetEchoLevel(0)
	for pass, nthreads := range []int{1, 5} {
		b.Clear()
		b.Nthreads = nthreads
		setUp(tst, b, m)
		keys := make([]dof.Key, b.GetDofSet().Size())
		for i, d := range b.GetDofSet().Slice() {
			chk.IntAssert(d.Eq, i)
			keys[i] = d.Key()
		}
		assert.Equal(tst, refKeys, keys, "pass %d", pass)
		chk.Array(tst, io.Sf("mass (pass=%d)", pass), 1e-12, b.GetLumpedMassMatrixVector().RawVector().Data, refMass)
	}
}

func Test_builder03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("builder03. residual assembly")

	nodes, elems := newChain(4, 1.0)
	elems[1].(*testElem).f = []float64{10, 20}
	elems[2].(*testElem).inactive = true
	d3 := nodes[3].Dofs[0]
	conds := []ele.Condition{
		&testCond{id: 0, dofs: []*dof.Dof{d3}, f: []float64{-5}},
		&testCond{id: 1, dofs: []*dof.Dof{nodes[0].Dofs[0]}, f: []float64{7}, inactive: true},
	}
	m := &Model{Elements: elems, Conditions: conds}
	res := make([]float64, 4)

	for _, nthreads := range []int{1, 2, 5} {
		b := NewExplicitBuilder(nthreads)
		b.SetCalculateReactionsFlag(true)
		assert.True(tst, b.GetCalculateReactionsFlag())
		setUp(tst, b, m)

		// contributions only from active entities
		sol := ele.NewSolution(4)
		for step := 0; step < 3; step++ {
			require.NoError(tst, b.BuildRHSNoDirichlet(m, sol))
			require.NoError(tst, b.GetReactions(res))
			chk.Array(tst, io.Sf("R (nthreads=%d, step=%d)", nthreads, step), 1e-15, res, []float64{1, 11, 20, -5})
			chk.Array(tst, "reactions vector", 1e-15, b.GetReactionsVector().RawVector().Data, res)
		}

		// owner of node 3 is inactive => only the condition
		chk.Float64(tst, "R3", 1e-15, d3.Reaction(), -5)

		// reset idempotence
		require.NoError(tst, b.InitializeDofSetReactions())
		require.NoError(tst, b.InitializeDofSetReactions())
		for _, d := range b.GetDofSet().Slice() {
			chk.Float64(tst, "reaction after reset", 0, d.Reaction(), 0)
		}
		chk.String(tst, b.State().String(), "FullyInitialized")
		err := b.GetReactions(res)
		var nie *NotInitializedError
		require.True(tst, errors.As(err, &nie))

		// alias
		require.NoError(tst, b.BuildRHS(m, sol))
		require.Error(tst, b.GetReactions(make([]float64, 3)))
	}
}

func Test_builder04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("builder04. missing reaction and empty sets")

	temp := dof.Register("temp", "")
	nodes, elems := newChain(3, 1.0)
	nodes[2].AddDof(temp)
	elems[1].(*testElem).dofs = append(elems[1].(*testElem).dofs, nodes[2].GetDof("temp"))
	m := &Model{Elements: elems}

	b := NewExplicitBuilder(2)
	b.SetEchoLevel(0)
	assert.NotEqual(tst, CheckOK, b.Check(m))

	// previous dof set is discarded too
	setUp(tst, b, &Model{Elements: elems[:1]})
	err := b.SetUpDofSet(m)
	var mre *MissingReactionError
	require.True(tst, errors.As(err, &mre), "wrong error: %v", err)
	chk.Int(tst, "node", mre.NodeId, 2)
	chk.String(tst, mre.Var, "temp")
	chk.String(tst, b.State().String(), "Uninitialized")
	assert.Nil(tst, b.GetDofSet())
	assert.Nil(tst, b.GetLumpedMassMatrixVector())
	assert.False(tst, b.GetDofSetIsInitializedFlag())

	// empty
	var ede *EmptyDofSetError
	for _, mdl := range []*Model{nil, {}, {Elements: []ele.Element{&testElem{id: 0}}}} {
		err = b.SetUpDofSet(mdl)
		require.True(tst, errors.As(err, &ede), "wrong error: %v", err)
		chk.String(tst, b.State().String(), "Uninitialized")
	}
}

func Test_builder05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("builder05. mass matrix shape")

	_, elems := newChain(3, 1.0)
	elems[1].(*testElem).M = mat.NewDense(3, 2, nil)
	m := &Model{Elements: elems}
	b := NewExplicitBuilder(2)
	require.NoError(tst, b.SetUpDofSet(m))
	require.NoError(tst, b.SetUpDofSetEquationIds())
	err := b.SetUpLumpedMassMatrixVector(m)
	var mse *MassMatrixShapeError
	require.True(tst, errors.As(err, &mse), "wrong error: %v", err)
	chk.Ints(tst, "shape", []int{mse.ElemId, mse.Rows, mse.Cols, mse.Ndof}, []int{1, 3, 2, 2})
	assert.Nil(tst, b.GetLumpedMassMatrixVector())
	chk.String(tst, b.State().String(), "EquationIdsReady")

	// square but wrong size
	elems[1].(*testElem).M = mat.NewDense(3, 3, nil)
	require.True(tst, errors.As(b.SetUpLumpedMassMatrixVector(m), &mse))

	// missing matrix
	elems[1].(*testElem).M = nil
	require.True(tst, errors.As(b.SetUpLumpedMassMatrixVector(m), &mse))

	// residual cannot be computed without masses
	var nie *NotInitializedError
	require.True(tst, errors.As(b.BuildRHSNoDirichlet(m, ele.NewSolution(3)), &nie))
	chk.String(tst, nie.Op, "BuildRHSNoDirichlet")
}

func Test_builder06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("builder06. unregistered dofs")

	nodes, elems := newChain(3, 1.0)
	m := &Model{Elements: elems}
	b := NewExplicitBuilder(3)
	setUp(tst, b, m)

	// condition pointing to a node that is not in the model
	extra := dof.NewNode(9, 0, []float64{9})
	m.Conditions = []ele.Condition{&testCond{id: 4, dofs: []*dof.Dof{extra.AddDof(dof.Ux)}, f: []float64{1}}}
	err := b.BuildRHSNoDirichlet(m, ele.NewSolution(3))
	var ude *dof.UnregisteredDofError
	require.True(tst, errors.As(err, &ude), "wrong error: %v", err)
	chk.String(tst, ude.Entity, "condition")
	chk.Int(tst, "entity", ude.EntityId, 4)
	chk.Int(tst, "node", ude.NodeId, 9)
	assert.True(tst, IsRebuildRequired(err))
	assert.False(tst, IsRebuildRequired(&EmptyDofSetError{}))
	chk.String(tst, b.State().String(), "FullyInitialized")
	for _, nod := range nodes {
		chk.Float64(tst, "reaction after failure", 0, nod.Dofs[0].Reaction(), 0)
	}
	require.Error(tst, b.GetReactions(make([]float64, 3)))

	// rebuild fixes it
	setUp(tst, b, m)
	require.NoError(tst, b.BuildRHSNoDirichlet(m, ele.NewSolution(4)))
	chk.Float64(tst, "R(extra)", 1e-15, extra.Dofs[0].Reaction(), 1)

	// element with an unregistered dof during mass assembly
	small := &Model{Elements: elems[:1]}
	require.NoError(tst, b.SetUpDofSet(small))
	require.NoError(tst, b.SetUpDofSetEquationIds())
	err = b.SetUpLumpedMassMatrixVector(m)
	require.True(tst, errors.As(err, &ude), "wrong error: %v", err)
	chk.String(tst, ude.Entity, "element")
	chk.Int(tst, "entity", ude.EntityId, 1)
}

func Test_builder07(tst *testing.T) {

	//verbose()
	chk.PrintTitle("builder07. preconditions")

	_, elems := newChain(3, 1.0)
	m := &Model{Elements: elems}
	b := NewExplicitBuilder(1)
	var nie *NotInitializedError
	for _, c := range []struct {
		op  string
		err error
	}{
		{"SetUpDofSetEquationIds", b.SetUpDofSetEquationIds()},
		{"SetUpLumpedMassMatrixVector", b.SetUpLumpedMassMatrixVector(m)},
		{"InitializeDofSetReactions", b.InitializeDofSetReactions()},
		{"BuildRHSNoDirichlet", b.BuildRHSNoDirichlet(m, nil)},
		{"GetReactions", b.GetReactions(nil)},
	} {
		require.True(tst, errors.As(c.err, &nie), "%s: wrong error: %v", c.op, c.err)
		chk.String(tst, nie.Op, c.op)
		chk.String(tst, nie.State.String(), "Uninitialized")
	}

	// reset is allowed once the dof set exists
	require.NoError(tst, b.SetUpDofSet(m))
	require.NoError(tst, b.InitializeDofSetReactions())
	require.True(tst, errors.As(b.SetUpLumpedMassMatrixVector(m), &nie))

	// flags
	assert.False(tst, b.GetReshapeMatrixFlag())
	b.SetReshapeMatrixFlag(true)
	assert.True(tst, b.GetReshapeMatrixFlag())
	chk.Int(tst, "echo level", b.GetEchoLevel(), 1)
	chk.String(tst, BuilderState(99).String(), "Unknown")
}

func Test_builder08(tst *testing.T) {

	//verbose()
	chk.PrintTitle("builder08. check")

	nodes, elems := newChain(3, 1.0)
	b := NewExplicitBuilder(1)
	chk.Int(tst, "ok", b.Check(&Model{Elements: elems}), CheckOK)
	chk.Int(tst, "nil model", b.Check(nil), CheckNoEntities)
	chk.Int(tst, "empty model", b.Check(&Model{}), CheckNoEntities)
	chk.Int(tst, "nil element", b.Check(&Model{Elements: []ele.Element{elems[0], nil}}), CheckNilEntity)
	chk.Int(tst, "nil condition", b.Check(&Model{Conditions: []ele.Condition{nil}}), CheckNilEntity)
	chk.Int(tst, "nil dof", b.Check(&Model{Conditions: []ele.Condition{&testCond{dofs: []*dof.Dof{nil}}}}), CheckNilEntity)
	nodes[0].AddDof(dof.Register("pl", ""))
	k := &testConstraint{master: []*dof.Dof{nodes[1].Dofs[0]}, slave: []*dof.Dof{nodes[0].GetDof("pl")}}
	chk.Int(tst, "missing reaction", b.Check(&Model{Constraints: []ele.Constraint{k}}), CheckMissingReaction)
}

func Test_builder09(tst *testing.T) {

	//verbose()
	chk.PrintTitle("builder09. invalid entities and duplicated handles")

	// dof without variable
	_, elems := newChain(3, 1.0)
	elems[1].(*testElem).dofs[1] = &dof.Dof{NodeId: 1, Eq: -1}
	m := &Model{Elements: elems}
	var iee *InvalidEntityError
	for _, nthreads := range []int{1, 2} {
		b := NewExplicitBuilder(nthreads)
		b.SetEchoLevel(0)
		err := b.SetUpDofSet(m)
		require.True(tst, errors.As(err, &iee), "wrong error: %v", err)
		chk.String(tst, iee.Entity, "element")
		chk.Ints(tst, "index and position", []int{iee.Index, iee.Pos}, []int{1, 1})
		chk.String(tst, b.State().String(), "Uninitialized")
		assert.Nil(tst, b.GetDofSet())
	}

	// nil dof
	_, elems = newChain(3, 1.0)
	cons := []ele.Constraint{&testConstraint{master: []*dof.Dof{elems[0].GetDofList()[0]}, slave: []*dof.Dof{nil}}}
	b := NewExplicitBuilder(2)
	err := b.SetUpDofSet(&Model{Elements: elems, Constraints: cons})
	require.True(tst, errors.As(err, &iee), "wrong error: %v", err)
	chk.String(tst, iee.Entity, "constraint")
	chk.Ints(tst, "index and position", []int{iee.Index, iee.Pos}, []int{0, 1})

	// nil entities
	for _, c := range []struct {
		entity string
		model  *Model
	}{
		{"element", &Model{Elements: []ele.Element{elems[0], nil}}},
		{"condition", &Model{Elements: elems, Conditions: []ele.Condition{nil}}},
		{"constraint", &Model{Elements: elems, Constraints: []ele.Constraint{nil}}},
	} {
		err = b.SetUpDofSet(c.model)
		require.True(tst, errors.As(err, &iee), "%s: wrong error: %v", c.entity, err)
		chk.String(tst, iee.Entity, c.entity)
		chk.Int(tst, "pos", iee.Pos, -1)
		chk.String(tst, b.State().String(), "Uninitialized")
	}

	// twins collapse onto the first handle in model order
	nodes, elems := newChain(5, 1.0)
	first := nodes[2].Dofs[0]
	first.Fixed = true
	for _, e := range elems[2:] {
		for i, d := range e.(*testElem).dofs {
			if d == first {
				e.(*testElem).dofs[i] = dof.New(2, dof.Ux)
			}
		}
	}
	m = &Model{Elements: elems}
	for _, nthreads := range []int{1, 2, 3, 4} {
		b = NewExplicitBuilder(nthreads)
		setUp(tst, b, m)
		d := b.GetDofSet().Find(2, dof.Ux)
		if d != first {
			tst.Errorf("nthreads=%d: registered dof must be the handle of element 1", nthreads)
		}
		require.True(tst, d.Fixed)
		chk.Array(tst, io.Sf("mass (nthreads=%d)", nthreads), 1e-15, b.GetLumpedMassMatrixVector().RawVector().Data, []float64{0.5, 1, 1, 1, 0.5})
	}
}

func Test_partition01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("partition01")

	pm := NewPartitionMap(3, 10)
	var sizes []int
	var kMax0 int
	for np := 0; np < pm.ParallelDegree; np++ {
		kMin, kMax := pm.GetBucketRange(np)
		chk.IntAssert(kMin, kMax0)
		kMax0 = kMax
		sizes = append(sizes, pm.GetBucketDimension(np))
	}
	chk.Ints(tst, "sizes", sizes, []int{4, 3, 3})
	chk.Int(tst, "last", kMax0, 10)

	pm = NewPartitionMap(4, 2)
	chk.Ints(tst, "sizes", []int{pm.GetBucketDimension(0), pm.GetBucketDimension(1), pm.GetBucketDimension(2), pm.GetBucketDimension(3)}, []int{1, 1, 0, 0})
	chk.Int(tst, "degree", NewPartitionMap(0, 5).ParallelDegree, 1)

	chk.Int(tst, "pd", GetParallelDegree(8, 3), 3)
	chk.Int(tst, "pd", GetParallelDegree(2, 30), 2)
	chk.Int(tst, "pd", GetParallelDegree(5, 0), 1)
	if GetParallelDegree(0, 1<<20) < 1 {
		tst.Errorf("parallel degree must be positive")
	}

	// every index visited once
	visits := make([]int, 1000)
	err := runBuckets(7, len(visits), func(np, kMin, kMax int) error {
		for k := kMin; k < kMax; k++ {
			visits[k]++
		}
		return nil
	})
	require.NoError(tst, err)
	for k, v := range visits {
		if v != 1 {
			tst.Errorf("index %d visited %d times", k, v)
		}
	}

	// first error is returned after all workers finish
	err = runBuckets(4, 8, func(np, kMin, kMax int) error {
		if np == 2 {
			return errors.New("failed")
		}
		return nil
	})
	require.Error(tst, err)
}
