// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"sync"

	"github.com/cpmech/exdyn/dof"
	"github.com/cpmech/exdyn/ele"
	"github.com/cpmech/gosl/chk"
	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// BuilderState defines the lifecycle states of ExplicitBuilder
type BuilderState int

const (
	Uninitialized    BuilderState = iota // nothing built
	DofSetReady                          // dof set collected and sorted
	EquationIdsReady                     // equation numbers assigned
	FullyInitialized                     // lumped mass vector assembled
	StepReady                            // residual assembled; reactions can be consumed
)

var stateNames = [...]string{"Uninitialized", "DofSetReady", "EquationIdsReady", "FullyInitialized", "StepReady"}

// String returns the name of the state
func (s BuilderState) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "Unknown"
	}
	return stateNames[s]
}

// codes returned by Check
const (
	CheckOK              = 0 // model is ready to be used
	CheckNoEntities      = 1 // model is nil or has no entities
	CheckNilEntity       = 2 // model has a nil entity or an entity with a nil dof
	CheckMissingReaction = 3 // some dof has no reaction variable
)

// ExplicitBuilder collects the dofs of a model, numbers them, assembles the lumped mass
// vector and assembles the explicit residual into the dofs' reactions.
//
//  Lifecycle:
//   Uninitialized -> SetUpDofSet -> DofSetReady -> SetUpDofSetEquationIds -> EquationIdsReady ->
//   SetUpLumpedMassMatrixVector -> FullyInitialized -> BuildRHSNoDirichlet -> StepReady
//   Clear can be called at any time and brings the builder back to Uninitialized.
//
//  Note: the methods of ExplicitBuilder must not be called concurrently; each of them runs
//        its own workers and returns after all of them have finished.
type ExplicitBuilder struct {
	Nthreads int // number of workers; <= 0 means all CPUs

	// flags
	calculateReactions bool // keep a copy of the reactions after each assembly
	reshapeMatrix      bool // rebuild the dof set and masses before each step

	// state
	state        BuilderState  // current state
	dofSet       *dof.Set      // ordered dofs; position == equation number
	mass         *mat.VecDense // [eqSystemSize] lumped masses
	reactions    *mat.VecDense // [eqSystemSize] copy of reactions; if calculateReactions
	eqSystemSize int           // number of equations
	echoLevel    int           // 0 mute, 1 info, 2 details, 3 debug
	log          *logrus.Entry // logger
}

// NewExplicitBuilder returns a new builder
//  nthreads -- number of workers; <= 0 means all CPUs
func NewExplicitBuilder(nthreads int) (o *ExplicitBuilder) {
	o = new(ExplicitBuilder)
	o.Nthreads = nthreads
	o.echoLevel = 1
	o.log = logrus.WithField("builder", "ExplicitBuilder")
	return
}

// SetUpDofSet collects the dofs of all elements, conditions and constraints into the ordered
// dof set. Any previous dof set is discarded, even if this call fails
//  Note: distinct handles with the same (node, variable) collapse onto the one that appears
//        first in model order: elements, then conditions, then constraints
func (o *ExplicitBuilder) SetUpDofSet(m *Model) (err error) {

	// discard previous data
	o.logf(1, "setting up the dofs")
	o.discard()
	if m == nil {
		return &EmptyDofSetError{}
	}

	// each worker collects into a private map and merges it into the global one once
	sizes := []int{len(m.Elements), len(m.Conditions), len(m.Constraints)}
	o.logf(2, "number of threads = %d", GetParallelDegree(o.Nthreads, max(sizes[0], sizes[1], sizes[2])))
	var mu sync.Mutex
	global := make(map[dof.Key]candidate)
	err = runSlices(o.Nthreads, sizes, func(np int, r [][2]int) (err error) {
		local := make(map[dof.Key]candidate)
		for i := r[0][0]; i < r[0][1]; i++ {
			e := m.Elements[i]
			if e == nil {
				return &InvalidEntityError{Entity: "element", Index: i, Pos: -1}
			}
			if err = addDofs(local, "element", i, 0, e.GetDofList()); err != nil {
				return
			}
		}
		for i := r[1][0]; i < r[1][1]; i++ {
			c := m.Conditions[i]
			if c == nil {
				return &InvalidEntityError{Entity: "condition", Index: i, Pos: -1}
			}
			if err = addDofs(local, "condition", i, 0, c.GetDofList()); err != nil {
				return
			}
		}
		for i := r[2][0]; i < r[2][1]; i++ {
			k := m.Constraints[i]
			if k == nil {
				return &InvalidEntityError{Entity: "constraint", Index: i, Pos: -1}
			}
			master, slave := k.GetDofList()
			if err = addDofs(local, "constraint", i, 0, master); err != nil {
				return
			}
			if err = addDofs(local, "constraint", i, len(master), slave); err != nil {
				return
			}
		}
		mu.Lock()
		for key, c := range local {
			if g, ok := global[key]; !ok || c.before(g) {
				global[key] = c
			}
		}
		mu.Unlock()
		return
	})
	if err != nil {
		return
	}
	if len(global) == 0 {
		return &EmptyDofSetError{}
	}
	o.logf(3, "initializing ordered array filling")

	// sort
	dofs := make([]*dof.Dof, 0, len(global))
	for _, c := range global {
		dofs = append(dofs, c.d)
	}
	set := dof.NewSet(dofs)

	// all dofs must be able to hold the residual
	for _, d := range set.Slice() {
		if !d.HasReaction() {
			return &MissingReactionError{NodeId: d.NodeId, Var: d.Var.Name}
		}
	}

	// results
	o.dofSet = set
	o.state = DofSetReady
	o.logf(2, "number of dofs = %d", set.Size())
	o.logf(1, "finished setting up the dofs")
	return
}

// SetUpDofSetEquationIds assigns the equation numbers; equal to the positions in the dof set
func (o *ExplicitBuilder) SetUpDofSetEquationIds() (err error) {
	if o.state < DofSetReady {
		return &NotInitializedError{Op: "SetUpDofSetEquationIds", State: o.state}
	}
	dofs := o.dofSet.Slice()
	err = runBuckets(o.Nthreads, len(dofs), func(_, kMin, kMax int) error {
		for i := kMin; i < kMax; i++ {
			dofs[i].Eq = i
		}
		return nil
	})
	if err != nil {
		return
	}
	o.eqSystemSize = len(dofs)
	if o.state < EquationIdsReady {
		o.state = EquationIdsReady
	}
	o.logf(2, "equation system size = %d", o.eqSystemSize)
	return
}

// SetUpLumpedMassMatrixVector assembles the lumped mass vector: the row sums of all element
// mass matrices are added to the corresponding equations
func (o *ExplicitBuilder) SetUpLumpedMassMatrixVector(m *Model) (err error) {

	// check
	if o.state < EquationIdsReady {
		return &NotInitializedError{Op: "SetUpLumpedMassMatrixVector", State: o.state}
	}
	o.mass = nil
	o.state = EquationIdsReady

	// assemble
	o.logf(1, "assembling the lumped mass vector")
	slots := make([]atomic.Float64, o.dofSet.Size())
	var elements []ele.Element
	if m != nil {
		elements = m.Elements
	}
	err = runBuckets(o.Nthreads, len(elements), func(_, kMin, kMax int) error {
		var eqs []int
		for _, e := range elements[kMin:kMax] {
			M, err := e.CalculateMassMatrix()
			if err != nil {
				return chk.Err("cannot compute mass matrix of element %d:\n%v", e.Id(), err)
			}
			dofs := e.GetDofList()
			var nr, nc int
			if M != nil {
				nr, nc = M.Dims()
			}
			if M == nil || nr != nc || nr != len(dofs) {
				return &MassMatrixShapeError{ElemId: e.Id(), Rows: nr, Cols: nc, Ndof: len(dofs)}
			}
			if cap(eqs) < nr {
				eqs = make([]int, nr)
			}
			eqs = eqs[:nr]
			if err = o.dofSet.Eqs(eqs, dofs); err != nil {
				return tagUnregistered(err, "element", e.Id())
			}
			for i, I := range eqs {
				slots[I].Add(floats.Sum(M.RawRowView(i)))
			}
		}
		return nil
	})
	if err != nil {
		return
	}

	// results
	mass := mat.NewVecDense(len(slots), nil)
	for i := range slots {
		mass.SetVec(i, slots[i].Load())
	}
	o.mass = mass
	o.state = FullyInitialized
	o.logf(1, "finished assembling the lumped mass vector")
	return
}

// InitializeDofSetReactions zeroes the reactions of all dofs
func (o *ExplicitBuilder) InitializeDofSetReactions() (err error) {
	if o.state < DofSetReady {
		return &NotInitializedError{Op: "InitializeDofSetReactions", State: o.state}
	}
	dofs := o.dofSet.Slice()
	err = runBuckets(o.Nthreads, len(dofs), func(_, kMin, kMax int) error {
		for i := kMin; i < kMax; i++ {
			dofs[i].SetReaction(0)
		}
		return nil
	})
	if o.state == StepReady {
		o.state = FullyInitialized
	}
	return
}

// BuildRHSNoDirichlet assembles the explicit residual of all active elements and conditions
// into the reactions of the dofs. Essential boundary conditions are not applied here
//  Note: the sums are accumulated atomically in any order; results may differ in the last
//        bits when the number of threads changes
func (o *ExplicitBuilder) BuildRHSNoDirichlet(m *Model, sol *ele.Solution) (err error) {

	// check
	if o.state < FullyInitialized {
		return &NotInitializedError{Op: "BuildRHSNoDirichlet", State: o.state}
	}
	o.reactions = nil

	// reset; returns after all reactions are zero
	err = o.InitializeDofSetReactions()
	if err != nil {
		return
	}

	// elements and conditions share the index range [0, ne+nc)
	var elements []ele.Element
	var conditions []ele.Condition
	if m != nil {
		elements, conditions = m.Elements, m.Conditions
	}
	ne := len(elements)
	err = runBuckets(o.Nthreads, ne+len(conditions), func(_, kMin, kMax int) error {
		for k := kMin; k < kMax; k++ {
			if k < ne {
				e := elements[k]
				if !ele.IsActive(e) {
					continue
				}
				if err := e.AddExplicitContribution(o.dofSet, sol); err != nil {
					return tagUnregistered(err, "element", e.Id())
				}
				continue
			}
			c := conditions[k-ne]
			if !ele.IsActive(c) {
				continue
			}
			if err := c.AddExplicitContribution(o.dofSet, sol); err != nil {
				return tagUnregistered(err, "condition", c.Id())
			}
		}
		return nil
	})

	// partial sums must not be consumed
	if err != nil {
		o.InitializeDofSetReactions()
		return
	}

	// results
	o.state = StepReady
	if o.calculateReactions {
		o.reactions = mat.NewVecDense(o.dofSet.Size(), nil)
		o.dofSet.Reactions(o.reactions.RawVector().Data)
	}
	return
}

// BuildRHS is the same as BuildRHSNoDirichlet
func (o *ExplicitBuilder) BuildRHS(m *Model, sol *ele.Solution) (err error) {
	return o.BuildRHSNoDirichlet(m, sol)
}

// GetReactions copies the reactions (residual) into res, indexed by equation number
func (o *ExplicitBuilder) GetReactions(res []float64) (err error) {
	if o.state < StepReady {
		return &NotInitializedError{Op: "GetReactions", State: o.state}
	}
	if len(res) != o.dofSet.Size() {
		return chk.Err("size of reactions array must be equal to %d. %d is invalid", o.dofSet.Size(), len(res))
	}
	o.dofSet.Reactions(res)
	return
}

// Clear discards the dof set, the lumped mass vector and the reactions vector
func (o *ExplicitBuilder) Clear() {
	o.logf(1, "clear function called")
	o.discard()
}

// Check checks the model; returns CheckOK (0) if the model can be used by this builder
func (o *ExplicitBuilder) Check(m *Model) int {
	fail := func(code int, format string, args ...interface{}) int {
		o.log.WithField("code", code).Errorf(format, args...)
		return code
	}
	if m == nil || m.Nentities() == 0 {
		return fail(CheckNoEntities, "model has no elements, conditions or constraints")
	}
	check := func(kind string, idx int, dofs []*dof.Dof) int {
		for _, d := range dofs {
			if d == nil || d.Var == nil {
				return fail(CheckNilEntity, "%s #%d has a nil dof", kind, idx)
			}
			if !d.HasReaction() {
				return fail(CheckMissingReaction, "%s #%d: reaction variable of dof (node=%d, var=%q) is not set", kind, idx, d.NodeId, d.Var.Name)
			}
		}
		return CheckOK
	}
	for i, e := range m.Elements {
		if e == nil {
			return fail(CheckNilEntity, "element #%d is nil", i)
		}
		if code := check("element", i, e.GetDofList()); code != CheckOK {
			return code
		}
	}
	for i, c := range m.Conditions {
		if c == nil {
			return fail(CheckNilEntity, "condition #%d is nil", i)
		}
		if code := check("condition", i, c.GetDofList()); code != CheckOK {
			return code
		}
	}
	for i, k := range m.Constraints {
		if k == nil {
			return fail(CheckNilEntity, "constraint #%d is nil", i)
		}
		master, slave := k.GetDofList()
		if code := check("constraint", i, master); code != CheckOK {
			return code
		}
		if code := check("constraint", i, slave); code != CheckOK {
			return code
		}
	}
	return CheckOK
}

// accessors ///////////////////////////////////////////////////////////////////////////////////////

// State returns the current state
func (o *ExplicitBuilder) State() BuilderState { return o.state }

// GetDofSet returns the dof set or nil if not set up
func (o *ExplicitBuilder) GetDofSet() *dof.Set { return o.dofSet }

// GetLumpedMassMatrixVector returns the lumped mass vector or nil if not assembled
func (o *ExplicitBuilder) GetLumpedMassMatrixVector() *mat.VecDense { return o.mass }

// GetReactionsVector returns a copy of the reactions after the last successful assembly or nil.
// It is only available with CalculateReactionsFlag on
func (o *ExplicitBuilder) GetReactionsVector() *mat.VecDense { return o.reactions }

// GetEquationSystemSize returns the number of equations
func (o *ExplicitBuilder) GetEquationSystemSize() int { return o.eqSystemSize }

// GetDofSetIsInitializedFlag tells whether the dof set has been set up
func (o *ExplicitBuilder) GetDofSetIsInitializedFlag() bool { return o.state >= DofSetReady }

// SetCalculateReactionsFlag sets the flag to keep a copy of the reactions after assembly
func (o *ExplicitBuilder) SetCalculateReactionsFlag(flag bool) { o.calculateReactions = flag }

// GetCalculateReactionsFlag gets the flag to keep a copy of the reactions after assembly
func (o *ExplicitBuilder) GetCalculateReactionsFlag() bool { return o.calculateReactions }

// SetReshapeMatrixFlag sets the flag to rebuild the dof set and masses before each step
func (o *ExplicitBuilder) SetReshapeMatrixFlag(flag bool) { o.reshapeMatrix = flag }

// GetReshapeMatrixFlag gets the flag to rebuild the dof set and masses before each step
func (o *ExplicitBuilder) GetReshapeMatrixFlag() bool { return o.reshapeMatrix }

// SetEchoLevel sets the verbosity: 0 mute, 1 info, 2 details, 3 debug
func (o *ExplicitBuilder) SetEchoLevel(level int) { o.echoLevel = level }

// GetEchoLevel gets the verbosity
func (o *ExplicitBuilder) GetEchoLevel() int { return o.echoLevel }

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// discard drops all data and invalidates the equation numbers of the previous dof set
func (o *ExplicitBuilder) discard() {
	if o.dofSet != nil {
		for _, d := range o.dofSet.Slice() {
			d.Eq = -1
		}
	}
	o.dofSet = nil
	o.mass = nil
	o.reactions = nil
	o.eqSystemSize = 0
	o.state = Uninitialized
}

// logf logs a message if the echo level is at least level
func (o *ExplicitBuilder) logf(level int, format string, args ...interface{}) {
	if o.echoLevel < level {
		return
	}
	if level >= 3 {
		o.log.Debugf(format, args...)
		return
	}
	o.log.Infof(format, args...)
}

// candidate holds a dof handle and the place where it first appears in the model
type candidate struct {
	d    *dof.Dof
	rank [3]int // kind of entity, index of entity, position in dof list
}

// before tells whether c appears before b in model order
func (c candidate) before(b candidate) bool {
	for i := 0; i < 3; i++ {
		if c.rank[i] != b.rank[i] {
			return c.rank[i] < b.rank[i]
		}
	}
	return false
}

// entityKinds gives the order of entities in the model
var entityKinds = map[string]int{"element": 0, "condition": 1, "constraint": 2}

// addDofs inserts dofs into a map keyed by identity. Among handles with the same identity,
// the one appearing first in model order is kept
func addDofs(set map[dof.Key]candidate, entity string, idx, pos0 int, dofs []*dof.Dof) error {
	for j, d := range dofs {
		if d == nil || d.Var == nil {
			return &InvalidEntityError{Entity: entity, Index: idx, Pos: pos0 + j}
		}
		c := candidate{d, [3]int{entityKinds[entity], idx, pos0 + j}}
		key := d.Key()
		if g, ok := set[key]; !ok || c.before(g) {
			set[key] = c
		}
	}
	return nil
}
