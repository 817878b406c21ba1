// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"testing"

	"github.com/cpmech/exdyn/mdl/solid"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/require"
)

func Test_bar01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bar01")

	var sol BarStepLoad
	err := sol.Init(solid.Prms{
		&solid.Prm{N: "E", V: 1000},
		&solid.Prm{N: "rho", V: 1},
		&solid.Prm{N: "L", V: 2},
		&solid.Prm{N: "F", V: 10},
	})
	require.NoError(tst, err)
	chk.Float64(tst, "A", 1e-17, sol.A, 1)
	chk.Float64(tst, "c", 1e-13, sol.C, math.Sqrt(1000))
	chk.Float64(tst, "static", 1e-17, sol.Static(2), 0.02)

	// at rest at t=0; twice the static value after half period
	T := sol.Period()
	io.Pforan("T = %v\n", T)
	chk.Float64(tst, "u(L,0)", 1e-4, sol.Disp(2, 0, 400), 0)
	chk.Float64(tst, "u(L,T/2)", 2e-5, sol.Disp(2, T/2, 400), 0.04)
	chk.Float64(tst, "u(L,T)", 1e-4, sol.Disp(2, T, 400), 0)
	chk.Float64(tst, "u(0,t)", 1e-17, sol.Disp(0, 0.3*T, 400), 0)

	// invalid
	err = sol.Init(solid.Prms{&solid.Prm{N: "L", V: 0}})
	require.Error(tst, err)
}
