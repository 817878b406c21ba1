// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import "github.com/cpmech/exdyn/dof"

// UKeys returns the displacement keys for a given space dimension
func UKeys(ndim int) []string {
	return []string{"ux", "uy", "uz"}[:ndim]
}

// UVars returns the displacement variables for a given space dimension
func UVars(ndim int) []*dof.Var {
	return []*dof.Var{dof.Ux, dof.Uy, dof.Uz}[:ndim]
}
