// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"github.com/cpmech/exdyn/dof"
	"github.com/cpmech/exdyn/ele"
	"github.com/cpmech/exdyn/inp"
)

// PointLoad implements a prescribed force at one dof: f(t) = Mult * Fcn(t)
type PointLoad struct {
	Cid  int          // condition id
	Dof  *dof.Dof     // loaded dof
	Fcn  inp.TimeFunc // function of time
	Mult float64      // multiplier
}

// NewPointLoad returns a new point load
func NewPointLoad(cid int, d *dof.Dof, fcn inp.TimeFunc, mult float64) *PointLoad {
	return &PointLoad{Cid: cid, Dof: d, Fcn: fcn, Mult: mult}
}

// Id returns the condition Id
func (o *PointLoad) Id() int { return o.Cid }

// GetDofList returns the loaded dof
func (o *PointLoad) GetDofList() []*dof.Dof { return []*dof.Dof{o.Dof} }

// AddExplicitContribution adds the external force at time sol.T
func (o *PointLoad) AddExplicitContribution(rhs *dof.Set, sol *ele.Solution) (err error) {
	return rhs.AddReaction(o.Dof, o.Mult*o.Fcn.F(sol.T))
}
