// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dof

import "github.com/cpmech/gosl/io"

// UnregisteredDofError is returned when an entity references a dof that is not in the registry.
// The dof set must be rebuilt to recover
type UnregisteredDofError struct {
	Entity   string // kind of entity; e.g. "element". may be empty
	EntityId int    // id of entity or -1 if unknown
	NodeId   int    // node of dof
	Var      string // variable name of dof
}

func (o *UnregisteredDofError) Error() string {
	if o.Entity == "" {
		return io.Sf("dof (node=%d, var=%q) is not registered in the dof set", o.NodeId, o.Var)
	}
	return io.Sf("dof (node=%d, var=%q) referenced by %s %d is not registered in the dof set", o.NodeId, o.Var, o.Entity, o.EntityId)
}
