// Copyright 2021 The BMCS Group Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frag

import "sort"

// History records the full cracking history of one specimen realisation: one
// entry per crack state, from the uncracked state to saturation. All
// sequences are owned by the Tracer while tracing and are immutable once
// Trace returns.
type History struct {
	X      []float64   // specimen discretisation
	SigMuX []float64   // sampled matrix strength field
	XK     []float64   // crack positions, in order of formation
	SigC   []float64   // composite stress, one entry per state
	EpsC   []float64   // composite strain, one entry per state
	CS     []float64   // average crack spacing, one entry per state
	SigMxK [][]float64 // matrix stress profiles, one per state
}

// Ncracks returns the number of cracks formed before saturation
func (o History) Ncracks() int {
	return len(o.XK)
}

// AvgSpacing computes the mean gap between consecutive cracks, including
// virtual boundary cracks at x=0 and x=lx. xK need not be sorted.
func AvgSpacing(xK []float64, lx float64) float64 {
	xs := make([]float64, 0, len(xK)+2)
	xs = append(xs, 0)
	xs = append(xs, xK...)
	xs = append(xs, lx)
	sort.Float64s(xs)
	sum := 0.0
	for i := 1; i < len(xs); i++ {
		sum += xs[i] - xs[i-1]
	}
	return sum / float64(len(xs)-1)
}
