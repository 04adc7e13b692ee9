// Copyright 2021 The BMCS Group Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frag

import (
	"testing"

	"github.com/bmcs-group/bmcs-fragmentation/mdl"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/plt"
)

func Test_frag01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("frag01. cracking history up to saturation")

	// reference scenario
	var par mdl.ModelParams
	err := par.Init(nil) // Em=28000, Ef=180000, vf=0.01, T=8, n_x=5000, L_x=500, sig_cu=20, sig_mu=10, m=4
	if err != nil {
		tst.Errorf("cannot initialise parameters: %v\n", err)
		return
	}
	var tracer Tracer
	err = tracer.Init(&par)
	if err != nil {
		tst.Errorf("cannot initialise tracer: %v\n", err)
		return
	}
	tracer.Seed = 1234

	ncalls := 0
	hist := tracer.Trace(func(sigC float64) {
		ncalls++
	})

	// the history starts unloaded and ends pinned at the ultimate stress
	ns := len(hist.SigC)
	chk.Float64(tst, "sig_c first", 1e-17, hist.SigC[0], 0)
	chk.Float64(tst, "sig_c last", 1e-17, hist.SigC[ns-1], 20.0)

	// strictly increasing up to the final sentinel
	for i := 1; i < ns-1; i++ {
		if hist.SigC[i] <= hist.SigC[i-1] {
			tst.Errorf("sig_c must be strictly increasing: state %d: %v <= %v\n", i, hist.SigC[i], hist.SigC[i-1])
			return
		}
	}
	if hist.SigC[ns-1] < hist.SigC[ns-2] {
		tst.Errorf("final sig_c must not decrease: %v < %v\n", hist.SigC[ns-1], hist.SigC[ns-2])
		return
	}

	// one entry per state in every sequence; one crack per state transition
	chk.IntAssert(len(hist.EpsC), ns)
	chk.IntAssert(len(hist.CS), ns)
	chk.IntAssert(len(hist.XK), ns-2)
	chk.IntAssert(len(hist.SigMxK), len(hist.XK)+1)

	// at most one crack per discretisation point
	if hist.Ncracks() > par.Nx {
		tst.Errorf("too many cracks: %d > %d\n", hist.Ncracks(), par.Nx)
		return
	}

	// crack positions lie on the specimen
	for _, xk := range hist.XK {
		if xk < 0 || xk > par.Lx {
			tst.Errorf("crack position off specimen: %v\n", xk)
			return
		}
	}

	// strains grow with the load
	for i := 1; i < ns; i++ {
		if hist.EpsC[i] < hist.EpsC[i-1] {
			tst.Errorf("eps_c must be non-decreasing: state %d: %v < %v\n", i, hist.EpsC[i], hist.EpsC[i-1])
			return
		}
	}

	// spacing shrinks as cracks accumulate
	for i := 1; i < len(hist.CS); i++ {
		if hist.CS[i] > hist.CS[i-1] {
			tst.Errorf("crack spacing must not grow: state %d: %v > %v\n", i, hist.CS[i], hist.CS[i-1])
			return
		}
	}
	chk.Float64(tst, "CS bootstrap 0", 1e-15, hist.CS[0], par.Lx)
	chk.Float64(tst, "CS bootstrap 1", 1e-15, hist.CS[1], par.Lx/2.0)
	chk.Float64(tst, "CS final repeat", 1e-15, hist.CS[len(hist.CS)-1], hist.CS[len(hist.CS)-2])

	// progress callback: once per crack formed after the first, plus the
	// saturation call
	chk.IntAssert(ncalls, hist.Ncracks())

	if chk.Verbose {
		plt.Reset(false, nil)
		plt.Plot(hist.EpsC, hist.SigC, &plt.A{C: "b", M: "."})
		plt.Gll("$\\varepsilon_c$", "$\\sigma_c$", nil)
		plt.Save("/tmp/fragmentation", "frag01")
	}
}

func Test_frag02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("frag02. determinism under a fixed seed")

	prms := dbf.Params{
		&dbf.P{N: "n_x", V: 400},
		&dbf.P{N: "L_x", V: 100},
	}

	run := func(nworkers int) *History {
		var par mdl.ModelParams
		err := par.Init(prms)
		if err != nil {
			tst.Fatalf("cannot initialise parameters: %v\n", err)
		}
		var tracer Tracer
		err = tracer.Init(&par)
		if err != nil {
			tst.Fatalf("cannot initialise tracer: %v\n", err)
		}
		tracer.Seed = 42
		tracer.Nworkers = nworkers
		return tracer.Trace(nil)
	}

	a := run(1)
	b := run(1)
	chk.Array(tst, "XK", 1e-17, a.XK, b.XK)
	chk.Array(tst, "sig_c_K", 1e-17, a.SigC, b.SigC)
	chk.Array(tst, "eps_c_K", 1e-17, a.EpsC, b.EpsC)
	chk.Array(tst, "CS", 1e-17, a.CS, b.CS)

	// the parallel candidate search must not change the history
	c := run(4)
	chk.Array(tst, "XK (parallel)", 1e-17, a.XK, c.XK)
	chk.Array(tst, "sig_c_K (parallel)", 1e-17, a.SigC, c.SigC)
	chk.Array(tst, "eps_c_K (parallel)", 1e-17, a.EpsC, c.EpsC)
	chk.Array(tst, "CS (parallel)", 1e-17, a.CS, c.CS)
}

func Test_frag03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("frag03. saturation with a short stiff specimen")

	// two points only: the first crack shields the whole specimen and the
	// loop must terminate immediately with the sentinel state
	var par mdl.ModelParams
	err := par.Init(dbf.Params{
		&dbf.P{N: "n_x", V: 2},
		&dbf.P{N: "L_x", V: 0.01},
	})
	if err != nil {
		tst.Errorf("cannot initialise parameters: %v\n", err)
		return
	}
	var tracer Tracer
	err = tracer.Init(&par)
	if err != nil {
		tst.Errorf("cannot initialise tracer: %v\n", err)
		return
	}
	tracer.Seed = 7

	hist := tracer.Trace(nil)
	if hist.Ncracks() < 1 || hist.Ncracks() > par.Nx {
		tst.Errorf("invalid number of cracks: %d\n", hist.Ncracks())
		return
	}
	chk.Float64(tst, "sig_c last", 1e-17, hist.SigC[len(hist.SigC)-1], par.SigCu)
	chk.IntAssert(len(hist.SigC), hist.Ncracks()+2)
}
