// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/exdyn/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// SolverExplicit implements the explicit (central difference) time integration with lumped masses
//  a = R/m ; v += Δt·a ; u += Δt·v
type SolverExplicit struct {
	doms []*Domain // domains
	sum  *Summary  // summary of results; may be nil
}

// set factory
func init() {
	allocators["exp"] = func(doms []*Domain, sum *Summary) Solver {
		return &SolverExplicit{doms, sum}
	}
}

// Run runs the time loop until tf
func (o *SolverExplicit) Run(tf float64, dtFunc, dtoFunc inp.TimeFunc, verbose bool) (err error) {

	// check
	if len(o.doms) == 0 {
		return chk.Err("explicit solver needs at least one domain")
	}
	if dtFunc == nil || dtoFunc == nil {
		return chk.Err("explicit solver needs the time step functions")
	}

	// first output
	t := o.doms[0].Sol.T
	if o.sum != nil {
		err = o.sum.Record(o.doms, t)
		if err != nil {
			return
		}
	}
	tout := t + dtoFunc.F(t)

	// time loop
	var dt float64
	var nsteps int
	for t < tf {

		// time increment
		dt = dtFunc.F(t)
		if dt <= 0 {
			return chk.Err("time step size must be positive. dt=%g @ t=%g is invalid", dt, t)
		}
		if t+dt > tf {
			dt = tf - t
		}

		// step in all domains
		for _, d := range o.doms {
			err = o.step(d, t, dt)
			if err != nil {
				return chk.Err("explicit step failed @ t=%g:\n%v", t, err)
			}
		}
		t += dt
		nsteps++

		// output
		if t >= tout || math.Abs(t-tf) < 1e-14 {
			if o.sum != nil {
				err = o.sum.Record(o.doms, t)
				if err != nil {
					return
				}
			}
			if verbose {
				io.Pf("> t = %g\n", t)
			}
			for tout <= t {
				tout += dtoFunc.F(t)
			}
		}
	}
	if verbose {
		io.Pf("> %d explicit steps computed\n", nsteps)
	}
	return
}

// step advances the solution of domain d from t to t+dt
func (o *SolverExplicit) step(d *Domain, t, dt float64) (err error) {

	// recompute the dof set when the topology may change
	if d.Builder.GetReshapeMatrixFlag() {
		err = d.Rebuild()
		if err != nil {
			return
		}
	}

	// residual R = fext - fint
	d.Sol.T, d.Sol.Dt = t, dt
	err = d.Builder.BuildRHSNoDirichlet(d.Model, d.Sol)
	if err != nil {
		return
	}
	err = d.Builder.GetReactions(d.Fb)
	if err != nil {
		return
	}

	// update free dofs
	set := d.Builder.GetDofSet()
	mass := d.Builder.GetLumpedMassMatrixVector().RawVector().Data
	err = runBuckets(d.Builder.Nthreads, set.Size(), func(_, kMin, kMax int) error {
		for i := kMin; i < kMax; i++ {
			if set.At(i).Fixed {
				continue
			}
			if mass[i] <= 0 {
				return chk.Err("lumped mass of %v must be positive. m=%g is invalid", set.At(i), mass[i])
			}
			d.Sol.D2ydt2[i] = d.Fb[i] / mass[i]
			d.Sol.Dydt[i] += dt * d.Sol.D2ydt2[i]
			d.Sol.Y[i] += dt * d.Sol.Dydt[i]
		}
		return nil
	})
	if err != nil {
		return
	}

	// prescribed values and constraints
	d.Sol.T = t + dt
	err = d.EssenBcs.Apply(set, d.Sol, d.Sol.T, dt)
	if err != nil {
		return
	}
	return d.ApplyConstraints()
}
