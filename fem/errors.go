// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"errors"

	"github.com/cpmech/exdyn/dof"
	"github.com/cpmech/gosl/io"
)

// NotInitializedError is returned when an operation is called before its prerequisites
type NotInitializedError struct {
	Op    string       // operation that was called
	State BuilderState // state of the builder when Op was called
}

func (o *NotInitializedError) Error() string {
	return io.Sf("%s cannot be called in state %v: dof set is not initialized", o.Op, o.State)
}

// EmptyDofSetError is returned when the model does not provide any dof
type EmptyDofSetError struct{}

func (o *EmptyDofSetError) Error() string {
	return "no degrees of freedom were found in the model. check that elements, conditions or constraints provide dofs"
}

// MissingReactionError is returned when a dof has no reaction variable
type MissingReactionError struct {
	NodeId int    // node of dof
	Var    string // variable name of dof
}

func (o *MissingReactionError) Error() string {
	return io.Sf("reaction variable of dof (node=%d, var=%q) is not set", o.NodeId, o.Var)
}

// InvalidEntityError is returned when an entity is nil or lists a nil dof or a dof without
// variable
type InvalidEntityError struct {
	Entity string // kind of entity; e.g. "element"
	Index  int    // position of entity in the model
	Pos    int    // position of dof in the dof list; -1 if the entity is nil
}

func (o *InvalidEntityError) Error() string {
	if o.Pos < 0 {
		return io.Sf("%s #%d is nil", o.Entity, o.Index)
	}
	return io.Sf("%s #%d has an invalid dof at position %d: dof or its variable is nil", o.Entity, o.Index, o.Pos)
}

// MassMatrixShapeError is returned when an element mass matrix does not match its dof list
type MassMatrixShapeError struct {
	ElemId int // element id
	Rows   int // number of rows of mass matrix
	Cols   int // number of columns of mass matrix
	Ndof   int // number of dofs of element
}

func (o *MassMatrixShapeError) Error() string {
	return io.Sf("mass matrix of element %d is %dx%d but element has %d dofs", o.ElemId, o.Rows, o.Cols, o.Ndof)
}

// IsRebuildRequired tells whether err can only be fixed by rebuilding the dof set
func IsRebuildRequired(err error) bool {
	var ue *dof.UnregisteredDofError
	return errors.As(err, &ue)
}

// tagUnregistered sets the entity data in unregistered-dof errors
func tagUnregistered(err error, entity string, id int) error {
	var ue *dof.UnregisteredDofError
	if errors.As(err, &ue) && ue.Entity == "" {
		ue.Entity = entity
		ue.EntityId = id
	}
	return err
}
