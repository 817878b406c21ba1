// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// TimeFunc defines functions of time; e.g. loads and time step sizes
type TimeFunc interface {
	F(t float64) float64 // returns f(t)
}

// FuncData holds function definition
type FuncData struct {
	Name string             `yaml:"name"` // name of function. ex: zero, load, myfunction1, etc.
	Type string             `yaml:"type"` // type of function. ex: cte, lin, rmp, sin
	Prms map[string]float64 `yaml:"prms"` // parameters
}

// Funcs holds functions
type FuncsData []*FuncData

// Get returns function by name
func (o FuncsData) Get(name string) (fcn TimeFunc, err error) {
	if name == "zero" || name == "none" {
		return Zero{}, nil
	}
	for _, f := range o {
		if f.Name == name {
			fcn, err = NewFunc(f.Type, f.Prms)
			if err != nil {
				err = chk.Err("cannot get function named %q because of the following error:\n%v", name, err)
			}
			return
		}
	}
	return nil, chk.Err("cannot find function named %q", name)
}

// NewFunc allocates a function of time
//  cte: f = c
//  lin: f = m (t - ts)
//  rmp: f = ca + (cb - ca) (t - ta) / (tb - ta) for ta < t < tb; ca before ta; cb after tb
//  sin: f = a sin(b t) + c
func NewFunc(kind string, prms map[string]float64) (TimeFunc, error) {
	get := func(key string) (float64, error) {
		v, ok := prms[key]
		if !ok {
			return 0, chk.Err("parameter %q of %q function is missing", key, kind)
		}
		return v, nil
	}
	switch kind {
	case "zero":
		return Zero{}, nil
	case "cte":
		c, err := get("c")
		return Cte{C: c}, err
	case "lin":
		m, err := get("m")
		if err != nil {
			return nil, err
		}
		return Lin{M: m, Ts: prms["ts"]}, nil
	case "rmp":
		var f Rmp
		var err error
		for _, p := range []struct {
			v *float64
			k string
		}{{&f.Ca, "ca"}, {&f.Cb, "cb"}, {&f.Ta, "ta"}, {&f.Tb, "tb"}} {
			if *p.v, err = get(p.k); err != nil {
				return nil, err
			}
		}
		if f.Tb <= f.Ta {
			return nil, chk.Err("rmp function requires tb > ta. ta=%g tb=%g is invalid", f.Ta, f.Tb)
		}
		return f, nil
	case "sin":
		a, err := get("a")
		if err != nil {
			return nil, err
		}
		b, err := get("b")
		if err != nil {
			return nil, err
		}
		return Sin{A: a, B: b, C: prms["c"]}, nil
	}
	return nil, chk.Err("function type %q is not available", kind)
}

// Zero implements f = 0
type Zero struct{}

// F returns f(t)
func (o Zero) F(t float64) float64 { return 0 }

// Cte implements f = c
type Cte struct{ C float64 }

// F returns f(t)
func (o Cte) F(t float64) float64 { return o.C }

// Lin implements f = m (t - ts)
type Lin struct{ M, Ts float64 }

// F returns f(t)
func (o Lin) F(t float64) float64 { return o.M * (t - o.Ts) }

// Rmp implements a ramp
type Rmp struct{ Ca, Cb, Ta, Tb float64 }

// F returns f(t)
func (o Rmp) F(t float64) float64 {
	if t < o.Ta {
		return o.Ca
	}
	if t < o.Tb {
		return o.Ca + (o.Cb-o.Ca)*(t-o.Ta)/(o.Tb-o.Ta)
	}
	return o.Cb
}

// Sin implements f = a sin(b t) + c
type Sin struct{ A, B, C float64 }

// F returns f(t)
func (o Sin) F(t float64) float64 { return o.A*math.Sin(o.B*t) + o.C }
