// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/require"
)

func Test_msh01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("msh01")

	msh, err := ReadMsh("data", "bar2.msh.yaml")
	require.NoError(tst, err)
	io.Pforan("%v\n", msh)
	chk.Int(tst, "ndim", msh.Ndim, 1)
	chk.Float64(tst, "xmin", 1e-17, msh.Xmin, 0)
	chk.Float64(tst, "xmax", 1e-17, msh.Xmax, 2)
	chk.Int(tst, "nverts(-100)", len(msh.VertTag2verts[-100]), 1)
	chk.Int(tst, "ncells(-1)", len(msh.CellTag2cells[-1]), 2)
	chk.Ints(tst, "cell 1 verts", msh.Cells[1].Verts, []int{1, 2})
}

func Test_msh02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("msh02. invalid meshes")

	bad := []*Mesh{
		{Verts: []*Vert{{Id: 0, C: []float64{0}}}, Cells: []*Cell{{Id: 0, Tag: -1, Verts: []int{0, 0}}}},
		{Verts: []*Vert{{Id: 0, C: []float64{0}}, {Id: 2, C: []float64{1}}}, Cells: []*Cell{{Id: 0, Tag: -1, Verts: []int{0, 1}}}},
		{Verts: []*Vert{{Id: 0, C: []float64{0}}, {Id: 1, C: []float64{1, 0}}}, Cells: []*Cell{{Id: 0, Tag: -1, Verts: []int{0, 1}}}},
		{Verts: []*Vert{{Id: 0, C: []float64{0}}, {Id: 1, C: []float64{1}}}, Cells: []*Cell{{Id: 0, Tag: -1, Verts: []int{0, 5}}}},
		{Verts: []*Vert{{Id: 0, C: []float64{0}}, {Id: 1, C: []float64{1}}}, Cells: []*Cell{{Id: 0, Tag: 1, Verts: []int{0, 1}}}},
	}
	for i, msh := range bad {
		if err := msh.Init(); err == nil {
			tst.Errorf("mesh %d should have failed", i)
		}
	}
}

func Test_sim01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim01")

	sim, err := ReadSim("data/bar2.yaml", "alias", false, false)
	require.NoError(tst, err)
	chk.String(tst, sim.Key, "bar2-alias")
	chk.String(tst, sim.DirOut, "/tmp/exdyn/bar2")
	chk.String(tst, sim.Solver.Type, "exp")
	chk.Int(tst, "ndim", sim.Ndim, 1)
	chk.Int(tst, "nthreads", sim.Data.Nthreads, 2)

	// region
	reg := sim.Regions[0]
	require.NotNil(tst, reg.Msh)
	edat := reg.Etag2data(-1)
	require.NotNil(tst, edat)
	chk.String(tst, edat.Type, "elastrod")
	if reg.Etag2data(-2) != nil {
		tst.Errorf("Etag2data must return nil for unknown tags")
	}

	// materials
	mat := sim.Materials.Get("steel")
	require.NotNil(tst, mat)
	require.NotNil(tst, mat.Sld)
	chk.Float64(tst, "rho", 1e-17, mat.Sld.GetRho(), 1)

	// stage
	stg := sim.Stages[0]
	chk.Float64(tst, "tf", 1e-17, stg.Control.Tf, 0.5)
	chk.Float64(tst, "dt", 1e-17, stg.Control.DtFunc.F(0.3), 0.001)
	chk.Float64(tst, "dtout", 1e-17, stg.Control.DtoFunc.F(0.3), 0.01)
	nbc := stg.GetNodeBc(-200)
	require.NotNil(tst, nbc)
	chk.Strings(tst, "keys", nbc.Keys, []string{"fx"})
}

func Test_sim02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim02. invalid simulations")

	mesh := `
regions:
  - mesh:
      verts: [{id: 0, c: [0]}, {id: 1, c: [1]}]
      cells: [{id: 0, tag: -1, verts: [0, 1]}]
    elemsdata: [{tag: -1, mat: %s, type: elastrod}]
materials:
  - {name: m, model: oned-elast, prms: [{n: E, v: 1}, {n: A, v: 1}, {n: rho, v: 1}]}
`
	for i, src := range []string{
		io.Sf(mesh, "m"),                               // no stages
		io.Sf(mesh, "unknown") + "stages: [{desc: s}]", // unknown material
		io.Sf(mesh, "m") + "stages: [{nodebcs: [{tag: -1, keys: [fx], funcs: [nonexistent]}]}]",
		io.Sf(mesh, "m") + "stages: [{control: {dtfcn: nonexistent}}]",
		"stages: [{desc: s}]", // no regions
	} {
		sim, err := ParseSim([]byte(src))
		require.NoError(tst, err, "case %d", i)
		if err = sim.PostProcess(); err == nil {
			tst.Errorf("case %d should have failed", i)
		}
	}

	// valid one with defaults
	sim, err := ParseSim([]byte(io.Sf(mesh, "m") + "stages: [{desc: s}]"))
	require.NoError(tst, err)
	require.NoError(tst, sim.PostProcess())
	chk.Float64(tst, "tf", 1e-17, sim.Stages[0].Control.Tf, 1)
	chk.Float64(tst, "dt", 1e-17, sim.Stages[0].Control.Dt, 0.01)
	chk.Float64(tst, "dtout", 1e-17, sim.Stages[0].Control.DtOut, 0.01)
}

func Test_func01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("func01")

	funcs := FuncsData{
		{Name: "c", Type: "cte", Prms: map[string]float64{"c": 3}},
		{Name: "l", Type: "lin", Prms: map[string]float64{"m": 2, "ts": 1}},
		{Name: "r", Type: "rmp", Prms: map[string]float64{"ca": 0, "cb": 1, "ta": 1, "tb": 3}},
		{Name: "s", Type: "sin", Prms: map[string]float64{"a": 2, "b": 0, "c": 1}},
		{Name: "bad", Type: "rmp", Prms: map[string]float64{"ca": 0, "cb": 1, "ta": 1, "tb": 1}},
		{Name: "unknown", Type: "exp"},
	}
	for _, c := range []struct {
		name string
		t, f float64
	}{
		{"zero", 5, 0}, {"c", 5, 3}, {"l", 2, 2}, {"r", 0, 0}, {"r", 2, 0.5}, {"r", 4, 1}, {"s", 7, 1},
	} {
		fcn, err := funcs.Get(c.name)
		require.NoError(tst, err)
		chk.Float64(tst, io.Sf("%s(%g)", c.name, c.t), 1e-15, fcn.F(c.t), c.f)
	}
	for _, name := range []string{"bad", "unknown", "nonexistent"} {
		_, err := funcs.Get(name)
		require.Error(tst, err, name)
	}
}

func Test_files01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("files01. missing files")

	_, err := ReadMsh("data", "nonexistent.msh.yaml")
	require.Error(tst, err)
	_, err = ReadMat("data", "nonexistent.mat.yaml")
	require.Error(tst, err)
	_, err = ReadSim("data/nonexistent.yaml", "", false, false)
	require.Error(tst, err)

	// simulation pointing to a missing mesh file
	src := "regions: [{mshfile: nonexistent.msh.yaml}]\nstages: [{desc: s}]\n"
	fn := filepath.Join(tst.TempDir(), "nomesh.yaml")
	require.NoError(tst, os.WriteFile(fn, []byte(src), 0644))
	_, err = ReadSim(fn, "", false, false)
	require.Error(tst, err)
}
