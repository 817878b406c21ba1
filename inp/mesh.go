// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gopkg.in/yaml.v3"
)

// Vert holds vertex data
type Vert struct {
	Id  int       `yaml:"id"`  // id
	Tag int       `yaml:"tag"` // tag
	C   []float64 `yaml:"c"`   // coordinates (size==2 or 3)
}

// Cell holds cell data
type Cell struct {
	Id    int    `yaml:"id"`    // id
	Tag   int    `yaml:"tag"`   // tag
	Type  string `yaml:"type"`  // geometry type; e.g. "lin2"
	Verts []int  `yaml:"verts"` // vertices
}

// Mesh holds a mesh for FE analyses
type Mesh struct {

	// from YAML
	Verts []*Vert `yaml:"verts"` // vertices
	Cells []*Cell `yaml:"cells"` // cells

	// derived
	Ndim          int             `yaml:"-"` // space dimension
	VertTag2verts map[int][]*Vert `yaml:"-"` // vertex tag => set of vertices
	CellTag2cells map[int][]*Cell `yaml:"-"` // cell tag => set of cells
	Xmin, Xmax    float64         `yaml:"-"` // limits
}

// ReadMsh reads a mesh from a YAML file
func ReadMsh(dir, fn string) (o *Mesh, err error) {
	b, err := os.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, chk.Err("cannot read mesh file %q:\n%v", fn, err)
	}
	o = new(Mesh)
	err = yaml.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot unmarshal mesh file %q:\n%v", fn, err)
	}
	err = o.Init()
	return
}

// Init checks the mesh and computes derived data
func (o *Mesh) Init() (err error) {
	if len(o.Verts) < 2 {
		return chk.Err("mesh must have at least 2 vertices")
	}
	if len(o.Cells) < 1 {
		return chk.Err("mesh must have at least 1 cell")
	}
	o.Ndim = len(o.Verts[0].C)
	if o.Ndim < 1 || o.Ndim > 3 {
		return chk.Err("space dimension must be 1, 2 or 3. ndim=%d is invalid", o.Ndim)
	}
	o.VertTag2verts = make(map[int][]*Vert)
	o.CellTag2cells = make(map[int][]*Cell)
	o.Xmin, o.Xmax = o.Verts[0].C[0], o.Verts[0].C[0]
	for i, v := range o.Verts {
		if v.Id != i {
			return chk.Err("vertices ids must coincide with order in \"verts\" list. %d != %d", v.Id, i)
		}
		if len(v.C) != o.Ndim {
			return chk.Err("all vertices must have the same number of coordinates. vertex %d has %d; %d were expected", v.Id, len(v.C), o.Ndim)
		}
		if v.Tag < 0 {
			o.VertTag2verts[v.Tag] = append(o.VertTag2verts[v.Tag], v)
		}
		o.Xmin = min(o.Xmin, v.C[0])
		o.Xmax = max(o.Xmax, v.C[0])
	}
	for i, c := range o.Cells {
		if c.Id != i {
			return chk.Err("cells ids must coincide with order in \"cells\" list. %d != %d", c.Id, i)
		}
		if c.Tag >= 0 {
			return chk.Err("cells tags must be negative. cell %d has tag %d", c.Id, c.Tag)
		}
		for _, vid := range c.Verts {
			if vid < 0 || vid >= len(o.Verts) {
				return chk.Err("cell %d refers to vertex %d which does not exist", c.Id, vid)
			}
		}
		o.CellTag2cells[c.Tag] = append(o.CellTag2cells[c.Tag], c)
	}
	return
}

// String returns a short description of the mesh
func (o *Mesh) String() string {
	return io.Sf("mesh{ndim=%d nverts=%d ncells=%d}", o.Ndim, len(o.Verts), len(o.Cells))
}
