// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mpc implements multi-point constraints between dofs
package mpc

import (
	"github.com/cpmech/exdyn/dof"
	"github.com/cpmech/exdyn/ele"
	"github.com/cpmech/gosl/chk"
)

// LinearConstraint implements y_slave = Σ coef_i * y_master_i for displacements, velocities
// and accelerations
type LinearConstraint struct {
	Cid    int        // constraint id
	Master []*dof.Dof // master dofs
	Slave  *dof.Dof   // slave dof
	Coefs  []float64  // [len(Master)] coefficients

	// scratchpad
	eqs []int // [len(Master)] master equations
}

// NewLinearConstraint returns a new constraint
func NewLinearConstraint(cid int, master []*dof.Dof, slave *dof.Dof, coefs []float64) (o *LinearConstraint, err error) {
	if len(master) == 0 || len(master) != len(coefs) {
		return nil, chk.Err("constraint %d: number of masters (%d) must be positive and equal to number of coefficients (%d)", cid, len(master), len(coefs))
	}
	if slave == nil {
		return nil, chk.Err("constraint %d: slave dof is missing", cid)
	}
	for _, m := range master {
		if m == nil {
			return nil, chk.Err("constraint %d: master dof is missing", cid)
		}
		if m.Key() == slave.Key() {
			return nil, chk.Err("constraint %d: dof (node=%d var=%q) cannot be master and slave", cid, m.NodeId, m.Var.Name)
		}
	}
	return &LinearConstraint{Cid: cid, Master: master, Slave: slave, Coefs: coefs, eqs: make([]int, len(master))}, nil
}

// Id returns the constraint Id
func (o *LinearConstraint) Id() int { return o.Cid }

// GetDofList returns the master and slave dofs
func (o *LinearConstraint) GetDofList() (master, slave []*dof.Dof) {
	return o.Master, []*dof.Dof{o.Slave}
}

// Apply sets the slave values from the master values
func (o *LinearConstraint) Apply(set *dof.Set, sol *ele.Solution) (err error) {
	err = set.Eqs(o.eqs, o.Master)
	if err != nil {
		return
	}
	s, ok := set.Index(o.Slave)
	if !ok {
		return set.AddReaction(o.Slave, 0) // reports the unregistered dof
	}
	var y, v, a float64
	for i, I := range o.eqs {
		y += o.Coefs[i] * sol.Y[I]
		v += o.Coefs[i] * sol.Dydt[I]
		a += o.Coefs[i] * sol.D2ydt2[I]
	}
	sol.Y[s], sol.Dydt[s], sol.D2ydt2[s] = y, v, a
	return
}
