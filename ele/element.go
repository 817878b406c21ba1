// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ele implements finite elements, conditions and constraints for explicit dynamics
package ele

import (
	"github.com/cpmech/exdyn/dof"
	"gonum.org/v1/gonum/mat"
)

// Element defines what all elements must implement
//  Note: GetDofList must return the dofs in the same order as the rows of the mass matrix
type Element interface {

	// information
	Id() int                // returns the cell Id
	GetDofList() []*dof.Dof // returns the dofs of this element

	// called once per dof set setup
	CalculateMassMatrix() (M *mat.Dense, err error) // computes the (consistent) element mass matrix

	// called for each time step
	AddExplicitContribution(rhs *dof.Set, sol *Solution) (err error) // adds this element's residual to the reactions in rhs
}

// Condition defines loads and other boundary entities contributing to the residual only
type Condition interface {
	Id() int                                                         // returns the condition Id
	GetDofList() []*dof.Dof                                          // returns the dofs of this condition
	AddExplicitContribution(rhs *dof.Set, sol *Solution) (err error) // adds this condition's residual to the reactions in rhs
}

// Constraint defines master-slave relations between dofs
type Constraint interface {
	Id() int                                       // returns the constraint Id
	GetDofList() (master, slave []*dof.Dof)        // returns the dofs involved in this constraint
	Apply(set *dof.Set, sol *Solution) (err error) // enforces the constraint on the solution
}

// CanBeInactive defines entities that can be switched off; entities without IsActive are active
type CanBeInactive interface {
	IsActive() bool // tells whether this entity contributes to the residual or not
}

// CanBeActivated defines entities that stages can switch on and off
type CanBeActivated interface {
	CanBeInactive
	SetActive(active bool) // sets the activation flag
}

// WithFixedKM defines elements with fixed K,M matrices; to be recomputed if prms are changed
type WithFixedKM interface {
	Recompute(withM bool) // recompute K and M
}

// IsActive tells whether entity is active or not
func IsActive(entity interface{}) bool {
	if e, ok := entity.(CanBeInactive); ok {
		return e.IsActive()
	}
	return true
}
