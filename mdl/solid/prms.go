// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import "github.com/cpmech/gosl/chk"

// Prm holds a material parameter
type Prm struct {
	N string  `yaml:"n"` // name
	V float64 `yaml:"v"` // value
}

// Prms holds many parameters
type Prms []*Prm

// Find returns the parameter with given name or nil
func (o Prms) Find(name string) *Prm {
	for _, p := range o {
		if p.N == name {
			return p
		}
	}
	return nil
}

// Connect sets v with the value of parameter named name
func (o Prms) Connect(v *float64, name, caller string) error {
	p := o.Find(name)
	if p == nil {
		return chk.Err("%s: cannot find parameter named %q", caller, name)
	}
	*v = p.V
	return nil
}

// ConnectOrDefault sets v with the value of parameter named name or with a default value
func (o Prms) ConnectOrDefault(v *float64, name string, dflt float64) {
	*v = dflt
	if p := o.Find(name); p != nil {
		*v = p.V
	}
}
