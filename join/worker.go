// Copyright 2025 go-polygcd Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package join

import (
	"math/big"

	"github.com/ajroetker/go-polygcd/merge"
	"github.com/ajroetker/go-polygcd/poly"
)

// Result is one worker's private output: the disjoint slice of G,
// Abar, and Bbar terms it merged, plus the running magnitude tallies
// the top-level orchestrator's divisibility check needs, kept separate
// per polynomial since the bound check compares G's tallies against
// Abar's and against Bbar's independently.
type Result struct {
	G, Abar, Bbar    *poly.PolyU
	GMax, GSum       *big.Int
	AbarMax, AbarSum *big.Int
	BbarMax, BbarSum *big.Int
}

// RunWorker claims exponents from base until none remain, merging each
// via the exponent-level merger into this worker's own private output.
func (b *Base) RunWorker() *Result {
	gOut := poly.NewBuilderU(nvarsOf(b.GImages))
	abarOut := poly.NewBuilderU(nvarsOf(b.AbarImages))
	bbarOut := poly.NewBuilderU(nvarsOf(b.BbarImages))
	gMax, gSum := big.NewInt(0), big.NewInt(0)
	abarMax, abarSum := big.NewInt(0), big.NewInt(0)
	bbarMax, bbarSum := big.NewInt(0), big.NewInt(0)

	for {
		k, exp, ok := b.claim()
		if !ok {
			break
		}
		switch k {
		case kindG:
			merge.CRTExp(b.Prog, gMax, gSum, gOut, exp, b.GImages)
		case kindAbar:
			merge.CRTExp(b.Prog, abarMax, abarSum, abarOut, exp, b.AbarImages)
		case kindBbar:
			merge.CRTExp(b.Prog, bbarMax, bbarSum, bbarOut, exp, b.BbarImages)
		}
	}

	return &Result{
		G:       gOut.Build(),
		Abar:    abarOut.Build(),
		Bbar:    bbarOut.Build(),
		GMax:    gMax,
		GSum:    gSum,
		AbarMax: abarMax,
		AbarSum: abarSum,
		BbarMax: bbarMax,
		BbarSum: bbarSum,
	}
}
