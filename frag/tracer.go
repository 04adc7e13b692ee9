// Copyright 2021 The BMCS Group Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frag

import (
	"math"
	"sync"

	"github.com/bmcs-group/bmcs-fragmentation/mdl"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/num"
	"github.com/cpmech/gosl/rnd"
	"github.com/cpmech/gosl/utl"
)

// Tracer implements the global crack tracing algorithm based on the crack
// bridge response surface: starting from the uncracked specimen it repeatedly
// finds the next crack to form and the load level at which it forms, until
// the specimen is saturated.
type Tracer struct {

	// configuration
	Seed     int // seed for the strength field generator; 0 uses the clock
	Nworkers int // concurrent candidate searches; values < 2 run sequentially

	// access
	par *mdl.ModelParams
	cbr *mdl.CrackBridgeRespSurf
}

// Init validates the parameter record and prepares the tracer
func (o *Tracer) Init(par *mdl.ModelParams) (err error) {
	err = par.Validate()
	if err != nil {
		return
	}
	o.par = par
	o.cbr = new(mdl.CrackBridgeRespSurf)
	o.cbr.Init(par)
	o.Nworkers = 1
	return
}

// crackLoad finds the remote composite stress at which the matrix stress at
// distance z from the nearest crack reaches the local strength sigMu; i.e.
// the root of
//
//   f(sig_c) = sig_mu - sig_m(z, sig_c)
//
// by Newton iteration seeded with the stress of the previous crack state.
// shielded is true when the iteration cannot converge: the point sits close
// enough to existing cracks that the frictional ramp caps the matrix stress
// below its strength at any finite load. This is an expected physical
// outcome, not an error, and is never propagated to the caller.
func (o *Tracer) crackLoad(sigMu, z, sigCpre float64) (sigC float64, shielded bool) {
	defer func() {
		if r := recover(); r != nil { // numerical instability: shielded
			sigC, shielded = o.par.SigCu, true
		}
	}()
	var nls num.NlSolver
	defer nls.Free()
	ffcn := func(fx, y la.Vector) {
		fx[0] = sigMu - o.cbr.SigM(z, y[0])
	}
	Jfcn := func(dfdx *la.Matrix, y la.Vector) {
		dfdx.Set(0, 0, -o.cbr.DSigMDSigC(z, y[0]))
	}
	useDn, numJ := true, false
	nls.Init(1, ffcn, nil, Jfcn, useDn, numJ, nil)
	res := la.Vector{sigCpre}
	silent := true
	nls.Solve(res, silent) // panics on non-convergence; recovered above
	sigC = res[0]
	if math.IsNaN(sigC) || math.IsInf(sigC, 0) {
		return o.par.SigCu, true
	}
	return sigC, false
}

// crackLoads computes candidate crack-initiation loads for the points with
// indices in [lo,hi), collapsing shielded outcomes to the sentinel sig_cu
func (o *Tracer) crackLoads(cands, sigMuX, zX []float64, sigCpre float64, lo, hi int) {
	for i := lo; i < hi; i++ {
		sigC, shielded := o.crackLoad(sigMuX[i], zX[i], sigCpre)
		if shielded {
			cands[i] = o.par.SigCu
		} else {
			cands[i] = sigC
		}
	}
}

// nextCrack evaluates the crack-initiation load at every discretisation point
// and selects the weakest link: the point with the lowest candidate load.
// At equal minima the lowest index wins, regardless of Nworkers, so that runs
// are reproducible. The history sequences are never touched here; only the
// caller mutates them.
func (o *Tracer) nextCrack(zX, x, sigMuX []float64, sigCpre float64) (sigC, pos float64) {
	n := len(x)
	cands := make([]float64, n)
	if o.Nworkers < 2 {
		o.crackLoads(cands, sigMuX, zX, sigCpre, 0, n)
	} else {
		// workers fill disjoint chunks of cands; the reduction below runs
		// after Wait, on this goroutine, in index order
		csz := (n + o.Nworkers - 1) / o.Nworkers
		var wg sync.WaitGroup
		for lo := 0; lo < n; lo += csz {
			hi := lo + csz
			if hi > n {
				hi = n
			}
			wg.Add(1)
			go func(lo, hi int) {
				defer wg.Done()
				o.crackLoads(cands, sigMuX, zX, sigCpre, lo, hi)
			}(lo, hi)
		}
		wg.Wait()
	}
	imin := 0
	for i := 1; i < n; i++ {
		if cands[i] < cands[imin] {
			imin = i
		}
	}
	return cands[imin], x[imin]
}

// avgStrain computes the composite strain at stress sigC for the crack set
// xK: the fibre strain field averaged over the specimen length (trapezoidal
// integration over x)
func (o *Tracer) avgStrain(x, xK []float64, sigC float64) float64 {
	n := len(x)
	zX := make([]float64, n)
	DistField(zX, x, xK)
	eps := make([]float64, n)
	for i := 0; i < n; i++ {
		eps[i] = o.cbr.EpsF(zX[i], sigC)
	}
	return num.QuadDiscreteTrapzXY(x, eps) / x[n-1]
}

// Trace runs the crack tracing loop until saturation and returns the full
// cracking history. updateProgress (may be nil) is called once per newly
// formed crack with the corresponding composite stress, and once more when
// saturation is detected; it is purely observational and runs in-line on
// the tracing goroutine.
func (o *Tracer) Trace(updateProgress func(sigC float64)) (hist *History) {

	// specimen discretisation and matrix strength field
	par := o.par
	rnd.Init(o.Seed)
	x := utl.LinSpace(0, par.Lx, par.Nx)
	sigMuX := SampleStrength(par, par.Nx)

	// bootstrap: uncracked state
	hist = &History{
		X:      x,
		SigMuX: sigMuX,
		SigC:   []float64{0},
		EpsC:   []float64{0},
		CS:     []float64{par.Lx, par.Lx / 2.0}, // initial crack spacing
		SigMxK: [][]float64{make([]float64, par.Nx)},
	}

	// the first crack forms at the weakest point of the pristine specimen
	idx0 := 0
	for i := 1; i < par.Nx; i++ {
		if sigMuX[i] < sigMuX[idx0] {
			idx0 = i
		}
	}
	hist.XK = append(hist.XK, x[idx0])
	hist.SigC = append(hist.SigC, sigMuX[idx0]*par.Ec/par.Em)
	hist.EpsC = append(hist.EpsC, sigMuX[idx0]/par.Em)

	zX := make([]float64, par.Nx)
	var sigCk float64
	for {

		// matrix stress profile at the current state
		DistField(zX, x, hist.XK)
		prof := make([]float64, par.Nx)
		sigCpre := hist.SigC[len(hist.SigC)-1]
		o.cbr.CalcSigM(prof, zX, sigCpre)
		hist.SigMxK = append(hist.SigMxK, prof)

		// identify the next crack
		var pos float64
		sigCk, pos = o.nextCrack(zX, x, sigMuX, sigCpre)
		if sigCk == par.SigCu { // every surviving point is shielded: saturation
			break
		}
		if updateProgress != nil {
			updateProgress(sigCk)
		}

		// record the new crack state
		hist.XK = append(hist.XK, pos)
		hist.SigC = append(hist.SigC, sigCk)
		hist.EpsC = append(hist.EpsC, o.avgStrain(x, hist.XK, sigCk))
		hist.CS = append(hist.CS, AvgSpacing(hist.XK, par.Lx))
	}

	// ultimate state pinned at the composite strength
	hist.SigC = append(hist.SigC, par.SigCu)
	hist.EpsC = append(hist.EpsC, o.avgStrain(x, hist.XK, par.SigCu))
	hist.CS = append(hist.CS, hist.CS[len(hist.CS)-1])
	if updateProgress != nil {
		updateProgress(sigCk)
	}
	return
}
