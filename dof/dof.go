// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dof

import (
	"github.com/cpmech/gosl/io"
	"go.uber.org/atomic"
)

// Key is the value identity of a Dof: (node, variable)
type Key struct {
	NodeId int // id of node
	VarKey int // key of variable
}

// Dof holds one scalar unknown of a node
//  Note: dofs are owned by nodes; registries only hold references to them
type Dof struct {
	NodeId int  // id of node owning this dof
	Var    *Var // physical variable
	Eq     int  // equation number; -1 means not numbered yet
	Fixed  bool // essential boundary condition (prescribed value)

	reac atomic.Float64 // reaction accumulator; holds the explicit residual
}

// New returns a new dof that is not numbered yet
func New(nodeId int, v *Var) *Dof {
	return &Dof{NodeId: nodeId, Var: v, Eq: -1}
}

// Key returns the identity of this dof
func (o *Dof) Key() Key {
	return Key{o.NodeId, o.Var.Key}
}

// HasReaction tells whether this dof has a reaction variable bound to it
func (o *Dof) HasReaction() bool {
	return o.Var.Reac != ""
}

// Reaction returns the current value of the reaction accumulator
func (o *Dof) Reaction() float64 {
	return o.reac.Load()
}

// SetReaction sets the reaction accumulator
func (o *Dof) SetReaction(val float64) {
	o.reac.Store(val)
}

// addReaction adds val to the reaction accumulator (fetch-add)
func (o *Dof) addReaction(val float64) {
	o.reac.Add(val)
}

// Less compares dofs in canonical order: node id first, then variable key
func (o *Dof) Less(b *Dof) bool {
	if o.NodeId == b.NodeId {
		return o.Var.Key < b.Var.Key
	}
	return o.NodeId < b.NodeId
}

// String returns a short representation of this dof
func (o *Dof) String() string {
	return io.Sf("{node:%d var:%s eq:%d fixed:%v}", o.NodeId, o.Var.Name, o.Eq, o.Fixed)
}

// DofArray implements sort.Interface using the canonical order
type DofArray []*Dof

func (o DofArray) Len() int           { return len(o) }
func (o DofArray) Swap(i, j int)      { o[i], o[j] = o[j], o[i] }
func (o DofArray) Less(i, j int) bool { return o[i].Less(o[j]) }
