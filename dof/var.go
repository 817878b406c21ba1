// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package dof implements degrees of freedom (nodal unknowns) and their ordered registry
package dof

import (
	"sync"

	"github.com/cpmech/gosl/chk"
)

// Var defines a physical variable carried by nodes; e.g. displacement-x
//  Note: Reac is the name of the reaction variable that stores the explicit
//        residual of dofs with this variable. An empty Reac means that dofs with
//        this variable cannot be used by the explicit builder.
type Var struct {
	Key  int    // canonical sorting key
	Name string // e.g. "ux"
	Reac string // e.g. "fx"
}

// predefined variables
var (
	Ux = Register("ux", "fx")
	Uy = Register("uy", "fy")
	Uz = Register("uz", "fz")
	Rx = Register("rx", "mx")
	Ry = Register("ry", "my")
	Rz = Register("rz", "mz")
)

// Register adds a new variable to the database or returns the existent one with the same name
func Register(name, reac string) *Var {
	vdb.Lock()
	defer vdb.Unlock()
	if v, ok := vdb.byName[name]; ok {
		if v.Reac != reac {
			chk.Panic("variable %q exists already with reaction %q != %q", name, v.Reac, reac)
		}
		return v
	}
	v := &Var{Key: len(vdb.byName), Name: name, Reac: reac}
	vdb.byName[name] = v
	return v
}

// GetVar returns the variable with given name
func GetVar(name string) (v *Var, err error) {
	vdb.Lock()
	defer vdb.Unlock()
	v, ok := vdb.byName[name]
	if !ok {
		err = chk.Err("cannot find variable named %q", name)
	}
	return
}

// ReacToVar returns the variable whose reaction is named reac; e.g. "fx" => ux
func ReacToVar(reac string) *Var {
	vdb.Lock()
	defer vdb.Unlock()
	for _, v := range vdb.byName {
		if reac != "" && v.Reac == reac {
			return v
		}
	}
	return nil
}

// vdb holds all variables
var vdb = struct {
	sync.Mutex
	byName map[string]*Var
}{byName: make(map[string]*Var)}
