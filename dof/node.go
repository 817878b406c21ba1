// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dof

// Node holds node data and owns the degrees of freedom of a vertex
type Node struct {
	Id   int       // vertex id
	Tag  int       // vertex tag
	X    []float64 // coordinates
	Dofs []*Dof    // degrees of freedom of this node
}

// NewNode returns a new node without dofs
func NewNode(id, tag int, x []float64) *Node {
	return &Node{Id: id, Tag: tag, X: x}
}

// AddDof adds a new dof with variable v if not existent yet. It returns the dof
// corresponding to v in any case
func (o *Node) AddDof(v *Var) *Dof {
	for _, d := range o.Dofs {
		if d.Var == v {
			return d
		}
	}
	d := New(o.Id, v)
	o.Dofs = append(o.Dofs, d)
	return d
}

// GetDof returns the dof with variable named name or nil if not found
func (o *Node) GetDof(name string) *Dof {
	for _, d := range o.Dofs {
		if d.Var.Name == name {
			return d
		}
	}
	return nil
}

// GetEq returns the equation number of dof named name or -1 if not found
func (o *Node) GetEq(name string) int {
	if d := o.GetDof(name); d != nil {
		return d.Eq
	}
	return -1
}
