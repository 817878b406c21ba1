// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tests implements structures and functions to test elements and FE simulations
package tests

import (
	"testing"

	"github.com/cpmech/exdyn/fem"
	"github.com/cpmech/exdyn/inp"
	"github.com/cpmech/exdyn/mdl/solid"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// RunSim reads and runs a simulation; results are saved in a temporary directory
func RunSim(tst *testing.T, simfilepath, alias string, nthreads int, verbose bool) *fem.Main {
	sim, err := inp.ReadSim(simfilepath, alias, false, false)
	if err != nil {
		chk.Panic("cannot read simulation:\n%v", err)
	}
	sim.DirOut = tst.TempDir()
	if nthreads > 0 {
		sim.Data.Nthreads = nthreads
	}
	analysis, err := fem.NewMainFromSim(sim, true, verbose)
	if err != nil {
		chk.Panic("cannot allocate FE solver:\n%v", err)
	}
	err = analysis.Run()
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
	}
	return analysis
}

// BarSim returns a simulation of a bar along x with ne rods: fixed at x=0 and loaded by a
// constant force F at x=L. The bar's material is given by E, A and rho
func BarSim(tst *testing.T, ne int, L, E, A, rho, F, tf, dt, dtout float64) *inp.Simulation {

	// mesh
	msh := new(inp.Mesh)
	for i := 0; i <= ne; i++ {
		tag := 0
		switch i {
		case 0:
			tag = -100
		case ne:
			tag = -200
		}
		msh.Verts = append(msh.Verts, &inp.Vert{Id: i, Tag: tag, C: []float64{L * float64(i) / float64(ne)}})
	}
	for i := 0; i < ne; i++ {
		msh.Cells = append(msh.Cells, &inp.Cell{Id: i, Tag: -1, Type: "lin2", Verts: []int{i, i + 1}})
	}

	// simulation
	sim := &inp.Simulation{
		Data:      inp.Data{Desc: io.Sf("bar with %d rods", ne)},
		Functions: inp.FuncsData{{Name: "load", Type: "cte", Prms: map[string]float64{"c": F}}},
		Materials: inp.MatsData{{Name: "rod", Type: "solid", Model: "oned-elast", Prms: solid.Prms{
			{N: "E", V: E}, {N: "A", V: A}, {N: "rho", V: rho},
		}}},
		Regions: []*inp.Region{{
			Desc:      "bar",
			Mesh:      msh,
			ElemsData: []*inp.ElemData{{Tag: -1, Mat: "rod", Type: "elastrod"}},
		}},
		Solver: inp.SolverData{Type: "exp"},
		Stages: []*inp.Stage{{
			Desc: "step load",
			NodeBcs: []*inp.NodeBc{
				{Tag: -100, Keys: []string{"ux"}, Funcs: []string{"zero"}},
				{Tag: -200, Keys: []string{"fx"}, Funcs: []string{"load"}},
			},
			Control: inp.TimeControl{Tf: tf, Dt: dt, DtOut: dtout},
		}},
	}
	err := sim.PostProcess()
	if err != nil {
		chk.Panic("cannot set simulation of bar:\n%v", err)
	}
	sim.Key = io.Sf("bar%d", ne)
	sim.DirOut = tst.TempDir()
	return sim
}
