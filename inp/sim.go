// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.yaml) simulation file
package inp

import (
	goio "io"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gopkg.in/yaml.v3"
)

// Data holds global data for simulations
type Data struct {
	Desc      string `yaml:"desc"`      // description of simulation
	Matfile   string `yaml:"matfile"`   // materials file path; if empty, "materials" in the simulation file is used
	DirOut    string `yaml:"dirout"`    // directory for output; e.g. /tmp/exdyn
	Nthreads  int    `yaml:"nthreads"`  // number of workers; 0 means all CPUs
	EchoLevel int    `yaml:"echolevel"` // echo level of the builder: 0 mute, 1 info, 2 details, 3 debug
	Reactions bool   `yaml:"reactions"` // keep a copy of the reactions (residual) after each assembly
	Reshape   bool   `yaml:"reshape"`   // rebuild dof set and lumped masses at every time step
}

// SolverData holds FEM solver data
type SolverData struct {
	Type string `yaml:"type"` // solver type: "exp" => explicit central differences
}

// ElemData holds element data
type ElemData struct {
	Tag   int    `yaml:"tag"`   // tag of element
	Mat   string `yaml:"mat"`   // material name
	Type  string `yaml:"type"`  // type of element. ex: elastrod
	Extra string `yaml:"extra"` // extra flags
	Inact bool   `yaml:"inact"` // whether element starts inactive or not
}

// Region holds region data
type Region struct {

	// input data
	Desc      string      `yaml:"desc"`      // description of region. ex: ground, indenter, etc.
	Mshfile   string      `yaml:"mshfile"`   // file path of file with mesh data; if empty, "mesh" is used
	Mesh      *Mesh       `yaml:"mesh"`      // inline mesh
	ElemsData []*ElemData `yaml:"elemsdata"` // list of elements data
	AbsPath   bool        `yaml:"abspath"`   // mesh filename is given in absolute path

	// derived
	Msh *Mesh `yaml:"-"` // the mesh
}

// NodeBc holds node boundary condition
//  Note: keys are either dof names (e.g. "ux") which are prescribed by the function
//        or reaction names (e.g. "fx") which become point loads
type NodeBc struct {
	Tag   int      `yaml:"tag"`   // tag of node
	Keys  []string `yaml:"keys"`  // key indicating type of bcs. ex: ux, uy, fx, fy
	Funcs []string `yaml:"funcs"` // name of function. ex: zero, load, myfunction1, etc.
}

// TieData holds a master-slave relation between two vertices: u_slave = coef * u_master
type TieData struct {
	Master int      `yaml:"master"` // id of master vertex
	Slave  int      `yaml:"slave"`  // id of slave vertex
	Keys   []string `yaml:"keys"`   // dofs to be tied; e.g. ux, uy
	Coef   float64  `yaml:"coef"`   // coefficient; 0 means 1
}

// TimeControl holds data for defining the simulation time stepping
type TimeControl struct {
	Tf     float64 `yaml:"tf"`     // final time
	Dt     float64 `yaml:"dt"`     // time step size (if constant)
	DtOut  float64 `yaml:"dtout"`  // time step size for output
	DtFcn  string  `yaml:"dtfcn"`  // time step size (function name)
	DtoFcn string  `yaml:"dtofcn"` // time step size for output (function name)

	// derived
	DtFunc  TimeFunc `yaml:"-"` // time step function
	DtoFunc TimeFunc `yaml:"-"` // output time step function
}

// Stage holds stage data
type Stage struct {

	// main
	Desc       string `yaml:"desc"`       // description of simulation stage. ex: activation of top layer
	Activate   []int  `yaml:"activate"`   // array of tags of elements to be activated
	Deactivate []int  `yaml:"deactivate"` // array of tags of elements to be deactivated
	Skip       bool   `yaml:"skip"`       // do not run stage

	// conditions
	NodeBcs []*NodeBc  `yaml:"nodebcs"` // node boundary conditions
	Ties    []*TieData `yaml:"ties"`    // master-slave constraints

	// timecontrol
	Control TimeControl `yaml:"control"` // time control
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data      Data       `yaml:"data"`      // stores global simulation data
	Functions FuncsData  `yaml:"functions"` // stores all boundary condition functions
	Materials MatsData   `yaml:"materials"` // stores all materials
	Regions   []*Region  `yaml:"regions"`   // stores all regions
	Solver    SolverData `yaml:"solver"`    // FEM solver data
	Stages    []*Stage   `yaml:"stages"`    // stores all stages

	// derived
	DirOut string `yaml:"-"` // directory to save results
	Key    string `yaml:"-"` // simulation key; e.g. mysim01.yaml => mysim01 or mysim01-alias
	Ndim   int    `yaml:"-"` // space dimension
}

// Simulation //////////////////////////////////////////////////////////////////////////////////////

// ReadSim reads all simulation data from a .yaml file
func ReadSim(simfilepath, alias string, erasePrev, createDirOut bool) (*Simulation, error) {

	// read file
	b, err := os.ReadFile(simfilepath)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot read simulation file %q:\n%v", simfilepath, err)
	}

	// decode
	o, err := ParseSim(b)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot load simulation file %q:\n%v", simfilepath, err)
	}

	// input directory and filename key
	dir := os.ExpandEnv(filepath.Dir(simfilepath))
	fnkey := io.FnKey(filepath.Base(simfilepath))
	o.Key = fnkey
	if alias != "" {
		o.Key += "-" + alias
	}

	// output directory
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/exdyn/" + fnkey
	}

	// create directory
	if createDirOut {
		err = os.MkdirAll(o.DirOut, 0777)
		if err != nil {
			return nil, chk.Err("cannot create directory for output results (%s): %v", o.DirOut, err)
		}
	}

	// erase previous simulation results
	if erasePrev {
		io.RemoveAll(io.Sf("%s/%s*", o.DirOut, o.Key))
	}

	// external meshes and materials
	for _, reg := range o.Regions {
		if reg.Mesh != nil {
			continue
		}
		if reg.Mshfile == "" {
			return nil, chk.Err("ReadSim: region %q has neither an inline mesh nor a mesh file", reg.Desc)
		}
		ddir := dir
		if reg.AbsPath {
			ddir = ""
		}
		reg.Mesh, err = ReadMsh(ddir, reg.Mshfile)
		if err != nil {
			return nil, chk.Err("ReadSim: cannot read mesh file:\n%v", err)
		}
	}
	if o.Data.Matfile != "" {
		o.Materials, err = ReadMat(dir, o.Data.Matfile)
		if err != nil {
			return nil, chk.Err("ReadSim: %v", err)
		}
	}

	// derived data
	err = o.PostProcess()
	if err != nil {
		return nil, chk.Err("ReadSim: %v", err)
	}
	return o, nil
}

// ParseSim decodes a simulation from YAML bytes without post-processing it
func ParseSim(b []byte) (*Simulation, error) {
	var o Simulation
	o.Solver.SetDefault()
	err := yaml.Unmarshal(b, &o)
	if err != nil {
		return nil, chk.Err("cannot unmarshal simulation:\n%v", err)
	}
	return &o, nil
}

// PostProcess checks the input and computes all derived data
func (o *Simulation) PostProcess() (err error) {

	// regions
	if len(o.Regions) == 0 {
		return chk.Err("simulation must have at least one region")
	}
	for i, reg := range o.Regions {
		if reg.Mesh == nil {
			return chk.Err("region %d has no mesh", i)
		}
		if reg.Mesh.VertTag2verts == nil {
			err = reg.Mesh.Init()
			if err != nil {
				return chk.Err("mesh of region %d is invalid:\n%v", i, err)
			}
		}
		reg.Msh = reg.Mesh
		if i == 0 {
			o.Ndim = reg.Msh.Ndim
		} else if reg.Msh.Ndim != o.Ndim {
			return chk.Err("Ndim value is inconsistent: %d != %d", reg.Msh.Ndim, o.Ndim)
		}
		for _, edat := range reg.ElemsData {
			if o.Materials.Get(edat.Mat) == nil && edat.Mat != "" {
				return chk.Err("cannot find material %q of element with tag %d", edat.Mat, edat.Tag)
			}
		}
	}

	// materials
	err = o.Materials.Init(o.Ndim)
	if err != nil {
		return
	}

	// stages
	if len(o.Stages) == 0 {
		return chk.Err("simulation must have at least one stage")
	}
	for i, stg := range o.Stages {
		err = stg.Control.init(o.Functions)
		if err != nil {
			return chk.Err("stage %d: %v", i, err)
		}
		for _, nbc := range stg.NodeBcs {
			if len(nbc.Keys) != len(nbc.Funcs) {
				return chk.Err("stage %d: node bc with tag %d must have the same number of keys and funcs", i, nbc.Tag)
			}
			for _, fname := range nbc.Funcs {
				if _, err = o.Functions.Get(fname); err != nil {
					return chk.Err("stage %d: %v", i, err)
				}
			}
		}
		for _, tie := range stg.Ties {
			if tie.Coef == 0 {
				tie.Coef = 1
			}
		}
	}
	return
}

// GetInfo writes the simulation data in YAML format
func (o *Simulation) GetInfo(w goio.Writer) (err error) {
	b, err := yaml.Marshal(o)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// Etag2data returns the ElemData corresponding to element tag
//  Note: returns nil if not found
func (o *Region) Etag2data(etag int) *ElemData {
	for _, edat := range o.ElemsData {
		if edat.Tag == etag {
			return edat
		}
	}
	return nil
}

// GetNodeBc returns node boundary condition structure by giving a node tag
//  Note: returns nil if not found
func (o Stage) GetNodeBc(nodetag int) *NodeBc {
	for _, nbc := range o.NodeBcs {
		if nodetag == nbc.Tag {
			return nbc
		}
	}
	return nil
}

// extra settings //////////////////////////////////////////////////////////////////////////////////

// SetDefault set defaults values
func (o *SolverData) SetDefault() {
	o.Type = "exp"
}

// init fixes time control values and sets the time step functions
func (o *TimeControl) init(funcs FuncsData) (err error) {

	// fix Tf
	if o.Tf < 1e-14 {
		o.Tf = 1
	}

	// fix Dt
	if o.DtFcn == "" {
		if o.Dt < 1e-14 {
			o.Dt = o.Tf / 100
		}
		o.DtFunc = Cte{C: o.Dt}
	} else {
		o.DtFunc, err = funcs.Get(o.DtFcn)
		if err != nil {
			return
		}
		o.Dt = o.DtFunc.F(0)
		if o.Dt <= 0 {
			return chk.Err("time step function %q must give positive values. dt(0)=%g is invalid", o.DtFcn, o.Dt)
		}
	}

	// fix DtOut
	if o.DtoFcn == "" {
		if o.DtOut < 1e-14 {
			o.DtOut = o.Dt
			o.DtoFunc = o.DtFunc
		} else {
			if o.DtOut < o.Dt {
				o.DtOut = o.Dt
			}
			o.DtoFunc = Cte{C: o.DtOut}
		}
	} else {
		o.DtoFunc, err = funcs.Get(o.DtoFcn)
		if err != nil {
			return
		}
		o.DtOut = o.DtoFunc.F(0)
	}
	return
}
