// Copyright 2021 The BMCS Group Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mdl implements the material parameter record and the crack bridge
// response surface of a brittle-matrix fibre-reinforced composite
package mdl

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// ModelParams holds all material and discretisation parameters of the
// composite. The model components (CrackBridgeRespSurf, frag.Tracer) are all
// linked to one record and access the parameters they require. The record is
// immutable during a run.
type ModelParams struct {

	// material data
	Em    float64 // matrix Young's modulus [MPa]
	Ef    float64 // fibre Young's modulus [MPa]
	Vf    float64 // fibre volume fraction [-]
	T     float64 // bond shear intensity [MPa/mm]
	SigCu float64 // ultimate composite stress [MPa]
	SigMu float64 // scale of matrix strength [MPa]
	M     float64 // Weibull shape of matrix strength [-]

	// discretisation
	Nx int     // number of points along specimen
	Lx float64 // specimen length [mm]

	// derived
	Ec float64 // composite stiffness: mixture rule [MPa]
}

// Init initialises the record with default values, overrides them with prms
// and computes derived quantities
func (o *ModelParams) Init(prms dbf.Params) (err error) {

	// default values
	o.Em = 28000
	o.Ef = 180000
	o.Vf = 0.01
	o.T = 8
	o.SigCu = 20
	o.SigMu = 10
	o.M = 4
	o.Nx = 5000
	o.Lx = 500

	// parameters
	for _, p := range prms {
		switch p.N {
		case "Em":
			o.Em = p.V
		case "Ef":
			o.Ef = p.V
		case "vf":
			o.Vf = p.V
		case "T":
			o.T = p.V
		case "sig_cu":
			o.SigCu = p.V
		case "sig_mu":
			o.SigMu = p.V
		case "m":
			o.M = p.V
		case "n_x":
			o.Nx = int(p.V)
		case "L_x":
			o.Lx = p.V
		}
	}

	// check
	err = o.Validate()
	if err != nil {
		return
	}

	// derived
	o.Ec = o.Em*(1.0-o.Vf) + o.Ef*o.Vf // [MPa] mixture rule
	return
}

// Validate checks the ranges of all parameters. Degenerate values that would
// lead to division by zero during tracing are rejected here.
func (o ModelParams) Validate() (err error) {
	for _, v := range []struct {
		name string
		val  float64
	}{
		{"Em", o.Em}, {"Ef", o.Ef}, {"T", o.T}, {"sig_cu", o.SigCu},
		{"sig_mu", o.SigMu}, {"m", o.M}, {"L_x", o.Lx},
	} {
		if math.IsNaN(v.val) || math.IsInf(v.val, 0) {
			return chk.Err("parameter %q must be finite. %v is invalid", v.name, v.val)
		}
		if v.val <= 0 {
			return chk.Err("parameter %q must be positive. %v is invalid", v.name, v.val)
		}
	}
	if math.IsNaN(o.Vf) || o.Vf <= 0 || o.Vf >= 1 {
		return chk.Err("fibre volume fraction must be within (0,1). vf=%v is invalid", o.Vf)
	}
	if o.Nx < 2 {
		return chk.Err("discretisation needs at least two points. n_x=%d is invalid", o.Nx)
	}
	return
}

// GetPrms gets the current parameters
func (o ModelParams) GetPrms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "Em", V: o.Em},
		&dbf.P{N: "Ef", V: o.Ef},
		&dbf.P{N: "vf", V: o.Vf},
		&dbf.P{N: "T", V: o.T},
		&dbf.P{N: "sig_cu", V: o.SigCu},
		&dbf.P{N: "sig_mu", V: o.SigMu},
		&dbf.P{N: "m", V: o.M},
		&dbf.P{N: "n_x", V: float64(o.Nx)},
		&dbf.P{N: "L_x", V: o.Lx},
	}
}
