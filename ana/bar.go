// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"math"

	"github.com/cpmech/exdyn/mdl/solid"
	"github.com/cpmech/gosl/chk"
)

// BarStepLoad computes the axial vibration of an undamped elastic bar fixed at x=0 and
// loaded at x=L by a constant force applied at t=0
//
//     |
//     |/o===========================o ---> F
//     |/        E, A, ρ
//     |<------------ L ------------>|
//
//  u(x,t) = F x / (E A) - 8 F L / (π² E A) Σ_{n odd} (-1)^((n-1)/2) / n² sin(n π x / 2L) cos(ωn t)
//  ωn = n π c / (2 L)   and   c = sqrt(E/ρ)
type BarStepLoad struct {

	// input
	E   float64 // Young's modulus
	A   float64 // cross-sectional area
	Rho float64 // density
	L   float64 // length
	F   float64 // force at x=L

	// derived
	C float64 // wave speed
}

// Init initialises this structure
func (o *BarStepLoad) Init(prms solid.Prms) (err error) {
	prms.ConnectOrDefault(&o.E, "E", 1000)
	prms.ConnectOrDefault(&o.A, "A", 1)
	prms.ConnectOrDefault(&o.Rho, "rho", 1)
	prms.ConnectOrDefault(&o.L, "L", 1)
	prms.ConnectOrDefault(&o.F, "F", 1)
	if o.E <= 0 || o.A <= 0 || o.Rho <= 0 || o.L <= 0 {
		return chk.Err("E, A, rho and L must be positive. E=%g A=%g rho=%g L=%g is invalid", o.E, o.A, o.Rho, o.L)
	}
	o.C = math.Sqrt(o.E / o.Rho)
	return
}

// Static returns the static displacement at x
func (o BarStepLoad) Static(x float64) float64 {
	return o.F * x / (o.E * o.A)
}

// Period returns the period of the fundamental mode
func (o BarStepLoad) Period() float64 {
	return 4.0 * o.L / o.C
}

// Disp computes the displacement at x and time t using nterms odd terms of the series
func (o BarStepLoad) Disp(x, t float64, nterms int) float64 {
	var sum float64
	sgn := 1.0
	for j := 0; j < nterms; j++ {
		n := float64(2*j + 1)
		ωn := n * math.Pi * o.C / (2.0 * o.L)
		sum += sgn / (n * n) * math.Sin(n*math.Pi*x/(2.0*o.L)) * math.Cos(ωn*t)
		sgn = -sgn
	}
	return o.Static(x) - 8.0*o.F*o.L/(math.Pi*math.Pi*o.E*o.A)*sum
}
