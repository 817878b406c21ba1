// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the explicit dynamic finite element solver
package fem

import (
	"time"

	"github.com/cpmech/exdyn/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Main holds all data for a simulation using the finite element method
type Main struct {
	Sim     *inp.Simulation // simulation data
	Summary *Summary        // summary structure
	Domains []*Domain       // all domains
	Solver  Solver          // finite element method solver; e.g. explicit
	ShowMsg bool            // show messages
}

// NewMain returns a new Main structure
//  Input:
//   simfilepath -- simulation (.yaml) filename including full path
//   alias       -- word to be appended to simulation key; e.g. when running multiple FE solutions
//   erasePrev   -- erase previous results files
//   saveSummary -- save summary
//   verbose     -- show messages
func NewMain(simfilepath, alias string, erasePrev, saveSummary, verbose bool) (o *Main, err error) {

	// new Main object
	o = new(Main)
	o.ShowMsg = verbose

	// read input data
	o.Sim, err = inp.ReadSim(simfilepath, alias, erasePrev, saveSummary)
	if err != nil {
		return nil, chk.Err("cannot read simulation input data:\n%v", err)
	}
	if o.ShowMsg {
		io.Pf("> Simulation (.yaml) file read\n")
	}
	return o, o.init(saveSummary)
}

// NewMainFromSim returns a new Main structure using simulation data already in memory
func NewMainFromSim(sim *inp.Simulation, saveSummary, verbose bool) (o *Main, err error) {
	o = &Main{Sim: sim, ShowMsg: verbose}
	return o, o.init(saveSummary)
}

// Run runs FE simulation
func (o *Main) Run() (err error) {

	// exit commands
	cputime := time.Now()
	defer func() { err = o.onexit(cputime, err) }()

	// message
	if o.ShowMsg {
		io.Pf("> Solving stages\n")
	}

	// loop over stages
	first := true
	for stgidx, stg := range o.Sim.Stages {

		// skip stage?
		if stg.Skip {
			continue
		}

		// set stage
		err = o.SetStage(stgidx)
		if err != nil {
			return
		}

		// initialise solution vectors; later stages continue from the previous state
		err = o.ZeroStage(stgidx, first)
		if err != nil {
			return
		}
		first = false

		// message
		if o.ShowMsg {
			io.Pf("> Running FE solver\n")
		}

		// time loop
		err = o.Solver.Run(stg.Control.Tf, stg.Control.DtFunc, stg.Control.DtoFunc, o.ShowMsg)
		if err != nil {
			return
		}
	}
	return
}

// SetStage sets stage for all domains
//  Input:
//   stgidx -- stage index (in o.Sim.Stages)
func (o *Main) SetStage(stgidx int) (err error) {
	if stgidx < 0 || stgidx >= len(o.Sim.Stages) {
		return chk.Err("stage index %d is out of range [0,%d)", stgidx, len(o.Sim.Stages))
	}
	if o.ShowMsg {
		io.Pf("> Setting stage %d\n", stgidx)
	}
	for _, d := range o.Domains {
		err = d.SetStage(stgidx)
		if err != nil {
			return
		}
	}
	return
}

// ZeroStage sets the initial values of the solution in all domains
//  Input:
//   stgidx  -- stage index (in o.Sim.Stages)
//   zeroSol -- zero vectors in domains.Sol
func (o *Main) ZeroStage(stgidx int, zeroSol bool) (err error) {
	if o.ShowMsg {
		io.Pf("> Zeroing stage %d\n", stgidx)
	}
	for _, d := range o.Domains {
		err = d.SetIniVals(stgidx, zeroSol)
		if err != nil {
			return
		}
	}
	return
}

// SolveOneStage solves one stage that was already set
//  Input:
//   stgidx    -- stage index (in o.Sim.Stages)
//   zerostage -- zero vectors in domains.Sol => call ZeroStage
func (o *Main) SolveOneStage(stgidx int, zerostage bool) (err error) {

	// exit commands
	cputime := time.Now()
	defer func() { err = o.onexit(cputime, err) }()

	// zero stage
	if zerostage {
		err = o.ZeroStage(stgidx, true)
		if err != nil {
			return
		}
	}

	// run
	stg := o.Sim.Stages[stgidx]
	err = o.Solver.Run(stg.Control.Tf, stg.Control.DtFunc, stg.Control.DtoFunc, o.ShowMsg)
	return
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// init allocates domains, summary and solver
func (o *Main) init(saveSummary bool) (err error) {
	if saveSummary {
		o.Summary = new(Summary)
	}
	o.Domains = NewDomains(o.Sim, o.ShowMsg)
	alloc, ok := allocators[o.Sim.Solver.Type]
	if !ok {
		return chk.Err("cannot find solver type named %q", o.Sim.Solver.Type)
	}
	o.Solver = alloc(o.Domains, o.Summary)
	return
}

// onexit clean domains, prints final message with simulation and cpu times and save summary
func (o *Main) onexit(cputime time.Time, prevErr error) (err error) {

	// show final message
	if o.ShowMsg {
		if prevErr == nil {
			io.PfGreen("> Success\n")
			io.Pf("> CPU time = %v\n", time.Since(cputime))
		} else {
			io.PfRed("> Failed\n")
		}
	}

	// save summary
	if o.Summary != nil && o.Sim.DirOut != "" {
		err = o.Summary.Save(o.Sim.DirOut, o.Sim.Key)
		if err != nil && prevErr == nil {
			return
		}
	}

	// skip if previous error is not nil
	if prevErr != nil {
		err = prevErr
	}
	return
}
