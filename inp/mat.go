// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"os"
	"path/filepath"

	"github.com/cpmech/exdyn/mdl/solid"
	"github.com/cpmech/gosl/chk"
	"gopkg.in/yaml.v3"
)

// Material holds material data
type Material struct {

	// input
	Name  string     `yaml:"name"`  // name of material
	Type  string     `yaml:"type"`  // type of material; e.g. "solid"
	Model string     `yaml:"model"` // name of model; e.g. "oned-elast"
	Prms  solid.Prms `yaml:"prms"`  // prms holds all model parameters for this material

	// derived
	Sld solid.Model `yaml:"-"` // pointer to actual solid model
}

// Mats holds materials
type MatsData []*Material

// Get returns material by name or nil if not found
func (o MatsData) Get(name string) *Material {
	for _, mat := range o {
		if mat.Name == name {
			return mat
		}
	}
	return nil
}

// Init allocates and initialises all models
func (o MatsData) Init(ndim int) (err error) {
	names := make(map[string]bool)
	for _, mat := range o {
		if names[mat.Name] {
			return chk.Err("material named %q is duplicated", mat.Name)
		}
		names[mat.Name] = true
		switch mat.Type {
		case "solid", "":
			mat.Sld, err = solid.New(mat.Model)
			if err != nil {
				return chk.Err("cannot allocate model for material %q:\n%v", mat.Name, err)
			}
			err = mat.Sld.Init(ndim, mat.Prms)
			if err != nil {
				return chk.Err("cannot initialise model for material %q:\n%v", mat.Name, err)
			}
		default:
			return chk.Err("material type %q of material %q is not available", mat.Type, mat.Name)
		}
	}
	return
}

// ReadMat reads materials from a YAML file with a "materials" list
func ReadMat(dir, fn string) (mats MatsData, err error) {
	b, err := os.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, chk.Err("cannot read materials file %q:\n%v", fn, err)
	}
	var db struct {
		Materials MatsData `yaml:"materials"`
	}
	err = yaml.Unmarshal(b, &db)
	if err != nil {
		return nil, chk.Err("cannot unmarshal materials file %q:\n%v", fn, err)
	}
	return db.Materials, nil
}
