// Copyright 2021 The BMCS Group Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Run one fragmentation simulation with the default scenario and plot the
// composite response, the crack spacing evolution and the matrix stress
// profiles.
package main

import (
	"runtime"

	"github.com/bmcs-group/bmcs-fragmentation/frag"
	"github.com/bmcs-group/bmcs-fragmentation/mdl"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// input data
	var par mdl.ModelParams
	err := par.Init(nil)
	if err != nil {
		chk.Panic("cannot initialise parameters:\n%v", err)
	}

	// tracer
	var tracer frag.Tracer
	err = tracer.Init(&par)
	if err != nil {
		chk.Panic("cannot initialise tracer:\n%v", err)
	}
	tracer.Seed = 1234
	tracer.Nworkers = runtime.NumCPU()

	// run
	hist := tracer.Trace(func(sigC float64) {
		io.Pf("new crack at sig_c = %8.4f\n", sigC)
	})
	io.Pforan("number of cracks      = %v\n", hist.Ncracks())
	io.Pforan("final crack spacing   = %v\n", hist.CS[len(hist.CS)-1])
	io.Pforan("strain at saturation  = %v\n", hist.EpsC[len(hist.EpsC)-1])

	// composite response and crack spacing
	plt.Reset(false, nil)
	plt.Subplot(2, 1, 1)
	plt.Plot(hist.EpsC, hist.SigC, &plt.A{C: "b", M: ".", L: "composite"})
	plt.Gll("$\\varepsilon_c$", "$\\sigma_c\\;\\mathrm{[MPa]}$", nil)
	plt.Subplot(2, 1, 2)
	plt.Plot(hist.SigC, hist.CS, &plt.A{C: "r", M: "."})
	plt.Gll("$\\sigma_c\\;\\mathrm{[MPa]}$", "$\\mathrm{crack\\;spacing\\;[mm]}$", nil)
	plt.Save("/tmp/fragmentation", "cracking_history")

	// matrix stress profiles over the crack states
	plt.Reset(false, nil)
	for _, prof := range hist.SigMxK {
		plt.Plot(hist.X, prof, &plt.A{C: "grey", Lw: 0.5})
	}
	plt.Plot(hist.X, hist.SigMuX, &plt.A{C: "b", Lw: 0.5, L: "matrix strength"})
	plt.Gll("$x\\;\\mathrm{[mm]}$", "$\\sigma_m\\;\\mathrm{[MPa]}$", nil)
	plt.Save("/tmp/fragmentation", "stress_profiles")

	// crack bridge profile
	var cbr mdl.CrackBridgeRespSurf
	cbr.Init(&par)
	np := 100
	Z := utl.LinSpace(-2, 2, np)
	S := make([]float64, np)
	for i, z := range Z {
		S[i] = cbr.SigM(z, 10)
	}
	plt.Reset(false, nil)
	plt.Plot(Z, S, &plt.A{C: "b"})
	plt.Gll("$z\\;\\mathrm{[mm]}$", "$\\sigma_m\\;\\mathrm{[MPa]}$", nil)
	plt.Save("/tmp/fragmentation", "crack_bridge")
}
