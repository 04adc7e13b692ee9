// Copyright 2021 The BMCS Group Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"github.com/cpmech/gosl/utl"
)

// CrackBridgeRespSurf computes the matrix stress ahead of a crack and the
// corresponding fibre strain for a given remote composite stress. The surface
// is a pure function of the distance z to the nearest crack and the remote
// stress sigC; it carries no state and is safe for concurrent use.
//
//   sig_m(z, sig_c) = min( z・T・vf/(1-vf) , Em・sig_c/Ec )
//
// Near a crack the matrix is debonded and picks up stress through interface
// friction only (ramp, first term); far from any crack it carries the stress
// of the fully bonded composite (plateau, second term). The lesser of the two
// bounds governs.
type CrackBridgeRespSurf struct {
	par *ModelParams
}

// Init sets the parameter record
func (o *CrackBridgeRespSurf) Init(par *ModelParams) {
	o.par = par
}

// SigM computes the matrix stress at distance z from the nearest crack under
// the remote composite stress sigC. z may be +Inf (no crack anywhere); then
// the plateau alone governs.
func (o CrackBridgeRespSurf) SigM(z, sigC float64) float64 {
	ramp := z * o.par.T * o.par.Vf / (1.0 - o.par.Vf)
	plateau := o.par.Em * sigC / o.par.Ec
	return utl.Min(ramp, plateau)
}

// CalcSigM computes the matrix stress profile for a whole distance field.
//  Input:
//   z    -- distances to the nearest crack
//   sigC -- remote composite stress
//  Output:
//   res -- matrix stresses; len(res) must equal len(z)
func (o CrackBridgeRespSurf) CalcSigM(res, z []float64, sigC float64) {
	for i := 0; i < len(z); i++ {
		res[i] = o.SigM(z[i], sigC)
	}
}

// DSigMDSigC computes the derivative of SigM with respect to the remote
// stress: the plateau slope Em/Ec where the plateau binds, zero on the
// frictional ramp
func (o CrackBridgeRespSurf) DSigMDSigC(z, sigC float64) float64 {
	ramp := z * o.par.T * o.par.Vf / (1.0 - o.par.Vf)
	plateau := o.par.Em * sigC / o.par.Ec
	if plateau < ramp {
		return o.par.Em / o.par.Ec
	}
	return 0
}

// EpsF computes the fibre strain at distance z from the nearest crack via
// force balance with the matrix stress
func (o CrackBridgeRespSurf) EpsF(z, sigC float64) float64 {
	sigM := o.SigM(z, sigC)
	return (sigC - sigM*(1.0-o.par.Vf)) / (o.par.Vf * o.par.Ef)
}
