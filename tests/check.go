// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tests

import (
	"os"
	"testing"

	"github.com/cpmech/exdyn/fem"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gopkg.in/yaml.v3"
)

// NodeResults holds the values of one variable at one node
type NodeResults struct {
	Id   int       `yaml:"id"`   // node id
	Var  string    `yaml:"var"`  // variable; e.g. "ux"
	Vals []float64 `yaml:"vals"` // [ntimes] values
}

// Reference holds reference results at output times
type Reference struct {
	Times []float64      `yaml:"times"` // output times
	Nodes []*NodeResults `yaml:"nodes"` // nodal results
}

// ReadReference reads reference results from a YAML file
func ReadReference(fn string) (o *Reference, err error) {
	b, err := os.ReadFile(fn)
	if err != nil {
		return nil, chk.Err("cannot read reference file:\n%v", err)
	}
	o = new(Reference)
	err = yaml.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot decode reference file %q:\n%v", fn, err)
	}
	return
}

// CompareResults compares the summary of a simulation (first domain) with reference results
func CompareResults(tst *testing.T, sum *fem.Summary, cmpfname string, tolt, tolu float64, verbose bool) {

	// read reference results
	ref, err := ReadReference(cmpfname)
	if err != nil {
		tst.Errorf("%v", err)
		return
	}
	if sum == nil {
		tst.Errorf("summary is not available")
		return
	}

	// times
	chk.Array(tst, "times", tolt, sum.OutTimes, ref.Times)

	// nodal values
	for _, res := range ref.Nodes {
		vals := sum.Get(0, res.Id, res.Var)
		if verbose {
			io.Pfyel("node %d: %s\n", res.Id, res.Var)
		}
		chk.Array(tst, io.Sf("%s @ node %d", res.Var, res.Id), tolu, vals, res.Vals)
	}
}
