// Copyright 2021 The BMCS Group Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package frag implements the crack tracing algorithm for sequential multiple
// cracking of brittle-matrix fibre-reinforced composites under monotonically
// increasing load
package frag

import (
	"math"

	"github.com/bmcs-group/bmcs-fragmentation/mdl"
	"github.com/cpmech/gosl/rnd"
)

// SampleStrength draws one realisation of the matrix strength field: n
// independent samples from a Weibull distribution with shape m and scale
// sig_mu, by inverse transform of uniform deviates. The field represents the
// intrinsic flaw structure of the matrix and is sampled once per run.
func SampleStrength(par *mdl.ModelParams, n int) (res []float64) {
	res = make([]float64, n)
	for i := 0; i < n; i++ {
		u := rnd.Float64(0, 1)
		res[i] = par.SigMu * math.Pow(-math.Log(1.0-u), 1.0/par.M)
	}
	return
}

// DistField computes, for every point of x, the distance to the nearest crack
// in xK. With no cracks yet every distance is +Inf and the far-field plateau
// of the crack bridge governs alone. xK need not be sorted.
//  Output:
//   res -- distances; len(res) must equal len(x)
func DistField(res, x, xK []float64) {
	for i, xi := range x {
		d := math.Inf(1)
		for _, xk := range xK {
			if e := math.Abs(xi - xk); e < d {
				d = e
			}
		}
		res[i] = d
	}
}
