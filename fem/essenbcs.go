// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"sort"

	"github.com/cpmech/exdyn/dof"
	"github.com/cpmech/exdyn/ele"
	"github.com/cpmech/exdyn/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// EssentialBc holds a prescribed value at one dof: y(t) = Fcn(t)
type EssentialBc struct {
	Key string       // key such as 'ux', 'uy'
	Dof *dof.Dof     // prescribed dof
	Fcn inp.TimeFunc // function that gives the prescribed value
}

// EbcArray is an array of EssentialBc's
type EbcArray []*EssentialBc

// EssentialBcs implements a structure to record the definition of essential bcs.
// Prescribed dofs are marked as fixed; the explicit solver does not integrate them
type EssentialBcs struct {
	Bcs EbcArray // active essential bcs
}

// Init initialises this structure
func (o *EssentialBcs) Init() {
	for _, bc := range o.Bcs {
		bc.Dof.Fixed = false
	}
	o.Bcs = make([]*EssentialBc, 0)
}

// Set sets a constraint if it does NOT exist yet.
//  key   -- can be Dof key such as "ux", "uy", "uz"
//  nodes -- nodes to be prescribed
//  fcn   -- function that gives the prescribed value
func (o *EssentialBcs) Set(key string, nodes []*dof.Node, fcn inp.TimeFunc) (err error) {
	if len(nodes) == 0 {
		return chk.Err("list of nodes for essential bc %q is empty", key)
	}
	for _, nod := range nodes {
		d := nod.GetDof(key)
		if d == nil {
			return chk.Err("cannot find dof named %q at node %d", key, nod.Id)
		}
		d.Fixed = true
		o.set_dof(key, d, fcn)
	}
	return
}

// Apply sets the prescribed values of displacements, velocities and accelerations at time t
//  Note: velocities and accelerations are computed with backward differences of Fcn
func (o *EssentialBcs) Apply(set *dof.Set, sol *ele.Solution, t, dt float64) (err error) {
	for _, bc := range o.Bcs {
		eq, ok := set.Index(bc.Dof)
		if !ok {
			return set.AddReaction(bc.Dof, 0) // reports the unregistered dof
		}
		y := bc.Fcn.F(t)
		sol.Y[eq] = y
		if dt > 0 {
			y1, y2 := bc.Fcn.F(t-dt), bc.Fcn.F(t-2*dt)
			sol.Dydt[eq] = (y - y1) / dt
			sol.D2ydt2[eq] = (y - 2*y1 + y2) / (dt * dt)
		}
	}
	return
}

// List returns a simple list logging bcs at time t
func (o *EssentialBcs) List(t float64) (l string) {
	l = "\n==================================================================\n"
	l += io.Sf("%8s%8s%8s%21s%21s\n", "node", "eq", "key", "value @ t=0", io.Sf("value @ t=%g", t))
	l += "------------------------------------------------------------------\n"
	sort.Sort(o.Bcs)
	for _, bc := range o.Bcs {
		l += io.Sf("%8d%8d%8s%21.13f%21.13f\n", bc.Dof.NodeId, bc.Dof.Eq, bc.Key, bc.Fcn.F(0), bc.Fcn.F(t))
	}
	l += "==================================================================\n"
	return
}

// auxiliary /////////////////////////////////////////////////////////////////////////////////////////

// set_dof sets/replace constraint of dof
func (o *EssentialBcs) set_dof(key string, d *dof.Dof, fcn inp.TimeFunc) {
	for _, bc := range o.Bcs {
		if bc.Dof == d {
			bc.Key, bc.Fcn = key, fcn
			return
		}
	}
	o.Bcs = append(o.Bcs, &EssentialBc{key, d, fcn})
}

// functions to implement Sort interface
func (o EbcArray) Len() int           { return len(o) }
func (o EbcArray) Swap(i, j int)      { o[i], o[j] = o[j], o[i] }
func (o EbcArray) Less(i, j int) bool { return o[i].Dof.Less(o[j].Dof) }
