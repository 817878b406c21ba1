// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/exdyn/dof"
	"github.com/cpmech/gosl/utl"
)

// BuildCoordsMatrix returns the coordinate matrix [ndim][nnode] of a set of nodes
func BuildCoordsMatrix(ndim int, nodes []*dof.Node) (x [][]float64) {
	x = utl.Alloc(ndim, len(nodes))
	for i := 0; i < ndim; i++ {
		for j, nod := range nodes {
			x[i][j] = nod.X[i]
		}
	}
	return
}

// CollectDofs returns the dofs of nodes with the given variables per node
func CollectDofs(nodes []*dof.Node, vars []*dof.Var) (dofs []*dof.Dof) {
	dofs = make([]*dof.Dof, 0, len(nodes)*len(vars))
	for _, nod := range nodes {
		for _, v := range vars {
			dofs = append(dofs, nod.AddDof(v))
		}
	}
	return
}
