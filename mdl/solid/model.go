// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package solid implements material models for solids used by structural elements
package solid

import "github.com/cpmech/gosl/chk"

// Model defines the interface for solid models
type Model interface {
	Init(ndim int, prms Prms) error // initialises model
	GetPrms() Prms                  // gets (an example) of parameters
	GetRho() float64                // returns density
}

// OneD specialises Model to 1D (rods and bars)
type OneD interface {
	Model
	GetE() float64              // returns Young's modulus
	GetA() float64              // returns cross-sectional area
	CalcSig(εa float64) float64 // computes the axial stress for a given axial strain
}

// New returns new solid model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'solid' database", name)
	}
	return allocator(), nil
}

// allocators holds all available solid models; modelname => allocator
var allocators = map[string]func() Model{}
