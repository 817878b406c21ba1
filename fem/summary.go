// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/floats"
	"gopkg.in/yaml.v3"
)

// Summary records the output times, the nodal values and the residual norms of a simulation
type Summary struct {
	OutTimes []float64              `yaml:"times"`  // [nOutTimes] output times
	Series   []map[string][]float64 `yaml:"series"` // [ndomains] "node:var" => [nOutTimes] values
	Rnorms   []float64              `yaml:"rnorms"` // [nOutTimes] norm of residual of all domains
}

// Record appends the current state of all domains
func (o *Summary) Record(doms []*Domain, t float64) (err error) {
	if len(o.Series) == 0 {
		o.Series = make([]map[string][]float64, len(doms))
	}
	if len(o.Series) != len(doms) {
		return chk.Err("summary has %d domains but %d were given", len(o.Series), len(doms))
	}
	norms := make([]float64, len(doms))
	for i, d := range doms {
		if o.Series[i] == nil {
			o.Series[i] = make(map[string][]float64)
		}
		for eq, dd := range d.Builder.GetDofSet().Slice() {
			key := seriesKey(dd.NodeId, dd.Var.Name)
			o.Series[i][key] = append(o.Series[i][key], d.Sol.Y[eq])
		}
		if d.Builder.State() == StepReady {
			norms[i] = floats.Norm(d.Fb, 2)
		}
	}
	o.OutTimes = append(o.OutTimes, t)
	o.Rnorms = append(o.Rnorms, floats.Norm(norms, 2))
	return
}

// Get returns the recorded values of a variable at a node of a domain
func (o *Summary) Get(domIdx, nodeId int, varName string) []float64 {
	if domIdx < 0 || domIdx >= len(o.Series) {
		return nil
	}
	return o.Series[domIdx][seriesKey(nodeId, varName)]
}

// Save saves summary as <dirout>/<fnkey>.sum.yaml
func (o *Summary) Save(dirout, fnkey string) (err error) {
	b, err := yaml.Marshal(o)
	if err != nil {
		return chk.Err("cannot encode summary:\n%v", err)
	}
	err = os.MkdirAll(dirout, 0777)
	if err != nil {
		return chk.Err("cannot create output directory:\n%v", err)
	}
	err = os.WriteFile(filepath.Join(dirout, fnkey+".sum.yaml"), b, 0644)
	if err != nil {
		return chk.Err("cannot save summary:\n%v", err)
	}
	return
}

// ReadSummary reads summary saved by Save
func ReadSummary(dirout, fnkey string) (o *Summary, err error) {
	b, err := os.ReadFile(filepath.Join(dirout, fnkey+".sum.yaml"))
	if err != nil {
		return nil, chk.Err("cannot read summary:\n%v", err)
	}
	o = new(Summary)
	err = yaml.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot decode summary:\n%v", err)
	}
	return
}

// seriesKey returns the key of a nodal series
func seriesKey(nodeId int, varName string) string {
	return io.Sf("%d:%s", nodeId, varName)
}
