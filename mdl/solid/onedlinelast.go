// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import "github.com/cpmech/gosl/chk"

// OnedLinElast implements a linear elastic model for 1D elements
type OnedLinElast struct {
	E   float64 // Young's modulus
	A   float64 // cross-sectional area
	Rho float64 // density
}

// add model to factory
func init() {
	allocators["oned-elast"] = func() Model { return new(OnedLinElast) }
}

// GetRho returns density
func (o *OnedLinElast) GetRho() float64 {
	return o.Rho
}

// GetE returns Young's modulus
func (o *OnedLinElast) GetE() float64 {
	return o.E
}

// GetA returns cross-sectional area
func (o *OnedLinElast) GetA() float64 {
	return o.A
}

// Init initialises model
func (o *OnedLinElast) Init(ndim int, prms Prms) (err error) {
	for _, c := range []struct {
		v *float64
		n string
	}{{&o.E, "E"}, {&o.A, "A"}, {&o.Rho, "rho"}} {
		err = prms.Connect(c.v, c.n, "oned-elast model")
		if err != nil {
			return
		}
	}
	if o.E <= 0 || o.A <= 0 {
		return chk.Err("oned-elast model: E and A must be positive. E=%g A=%g is invalid", o.E, o.A)
	}
	if o.Rho < 0 {
		return chk.Err("oned-elast model: rho must be non-negative. rho=%g is invalid", o.Rho)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o OnedLinElast) GetPrms() Prms {
	return []*Prm{
		&Prm{N: "E", V: 2.0000e+08},
		&Prm{N: "A", V: 1.0000e-02},
		&Prm{N: "rho", V: 7.8500e+00},
	}
}

// CalcSig computes the axial stress
func (o OnedLinElast) CalcSig(εa float64) float64 {
	return o.E * εa
}
