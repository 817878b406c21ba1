// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

// Solution holds the solution data @ nodes; all arrays are indexed by equation number
type Solution struct {

	// current state
	T      float64   // current time
	Y      []float64 // displacements
	Dydt   []float64 // velocities
	D2ydt2 []float64 // accelerations

	// auxiliary
	Dt float64 // current time increment
}

// NewSolution allocates a new solution with ny equations
func NewSolution(ny int) *Solution {
	return &Solution{
		Y:      make([]float64, ny),
		Dydt:   make([]float64, ny),
		D2ydt2: make([]float64, ny),
	}
}

// Reset clear values
func (o *Solution) Reset() {
	o.T = 0
	o.Dt = 0
	for i := 0; i < len(o.Y); i++ {
		o.Y[i] = 0
		o.Dydt[i] = 0
		o.D2ydt2[i] = 0
	}
}
