// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dof

import (
	"sort"

	"github.com/cpmech/gosl/chk"
)

// Set is an ordered and deduplicated collection of dofs
//  Note: the position of a dof in Slice() is its equation number once numbered. Other handles
//        with the same identity resolve to the registered dof; their Eq and Fixed fields
//        are not used
type Set struct {
	dofs  []*Dof      // sorted in canonical order
	index map[Key]int // identity => position
}

// NewSet sorts dofs in canonical order and returns a new set
//  Note: dofs must not contain two entries with the same identity
func NewSet(dofs []*Dof) *Set {
	o := &Set{dofs: dofs, index: make(map[Key]int, len(dofs))}
	sort.Sort(DofArray(o.dofs))
	for i, d := range o.dofs {
		o.index[d.Key()] = i
	}
	return o
}

// Size returns the number of dofs
func (o *Set) Size() int { return len(o.dofs) }

// At returns the i-th dof in canonical order
func (o *Set) At(i int) *Dof { return o.dofs[i] }

// Slice returns the underlying slice; read only
func (o *Set) Slice() []*Dof { return o.dofs }

// Index returns the position of d in this set. Handles with the same identity as a
// registered dof resolve to the same position
func (o *Set) Index(d *Dof) (idx int, ok bool) {
	if d == nil || d.Var == nil {
		return -1, false
	}
	if d.Eq >= 0 && d.Eq < len(o.dofs) && o.dofs[d.Eq] == d {
		return d.Eq, true
	}
	idx, ok = o.index[d.Key()]
	if !ok {
		idx = -1
	}
	return
}

// Contains tells whether d is registered in this set
func (o *Set) Contains(d *Dof) bool {
	_, ok := o.Index(d)
	return ok
}

// Find returns the dof of node with variable v or nil
func (o *Set) Find(nodeId int, v *Var) *Dof {
	if v == nil {
		return nil
	}
	if i, ok := o.index[Key{nodeId, v.Key}]; ok {
		return o.dofs[i]
	}
	return nil
}

// Eqs fills eqs with the positions of dofs in this set
func (o *Set) Eqs(eqs []int, dofs []*Dof) error {
	if len(eqs) != len(dofs) {
		return chk.Err("size of eqs (%d) must be equal to the number of dofs (%d)", len(eqs), len(dofs))
	}
	for i, d := range dofs {
		idx, ok := o.Index(d)
		if !ok {
			return newUnregistered(d)
		}
		eqs[i] = idx
	}
	return nil
}

// AddReaction atomically adds val to the reaction of the registered dof with the identity of d
func (o *Set) AddReaction(d *Dof, val float64) error {
	idx, ok := o.Index(d)
	if !ok {
		return newUnregistered(d)
	}
	o.dofs[idx].addReaction(val)
	return nil
}

// Reactions copies all reactions to res; len(res) must be equal to Size()
func (o *Set) Reactions(res []float64) {
	for i, d := range o.dofs {
		res[i] = d.Reaction()
	}
}

func newUnregistered(d *Dof) *UnregisteredDofError {
	e := &UnregisteredDofError{EntityId: -1, NodeId: -1}
	if d != nil {
		e.NodeId = d.NodeId
		if d.Var != nil {
			e.Var = d.Var.Name
		}
	}
	return e
}
