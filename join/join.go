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
	"sync"

	"github.com/ajroetker/go-polygcd/poly"
	"github.com/ajroetker/go-polygcd/threadpool"
)

// Run drives workerCount workers against base (the calling goroutine
// always plays worker 0) and performs the final trivial join: each
// worker's output covers a disjoint exponent subset of the same
// polynomial, so the combined G, Abar, Bbar is produced by a top-level
// merge that repeatedly advances whichever piece currently has the
// greatest head exponent.
func Run(base *Base, workerCount int, pool *threadpool.Pool) *Result {
	if workerCount < 1 {
		workerCount = 1
	}

	results := make([]*Result, workerCount)
	var handles []threadpool.Handle
	var wg sync.WaitGroup
	if workerCount > 1 && pool != nil {
		handles = pool.Request(workerCount - 1)
	}
	for i := 1; i < workerCount; i++ {
		i := i
		if i-1 >= len(handles) {
			results[i] = base.RunWorker()
			continue
		}
		h := handles[i-1]
		wg.Add(1)
		pool.Wake(h, func() {
			defer wg.Done()
			results[i] = base.RunWorker()
		})
	}

	results[0] = base.RunWorker()

	for _, h := range handles {
		pool.Wait(h)
		pool.GiveBack(h)
	}
	wg.Wait()

	gPieces := make([]*poly.PolyU, workerCount)
	abarPieces := make([]*poly.PolyU, workerCount)
	bbarPieces := make([]*poly.PolyU, workerCount)
	gMax, gSum := big.NewInt(0), big.NewInt(0)
	abarMax, abarSum := big.NewInt(0), big.NewInt(0)
	bbarMax, bbarSum := big.NewInt(0), big.NewInt(0)

	for i, r := range results {
		gPieces[i] = r.G
		abarPieces[i] = r.Abar
		bbarPieces[i] = r.Bbar
		if r.GMax.Cmp(gMax) > 0 {
			gMax.Set(r.GMax)
		}
		gSum.Add(gSum, r.GSum)
		if r.AbarMax.Cmp(abarMax) > 0 {
			abarMax.Set(r.AbarMax)
		}
		abarSum.Add(abarSum, r.AbarSum)
		if r.BbarMax.Cmp(bbarMax) > 0 {
			bbarMax.Set(r.BbarMax)
		}
		bbarSum.Add(bbarSum, r.BbarSum)
	}

	return &Result{
		G:       mergeDisjointU(gPieces),
		Abar:    mergeDisjointU(abarPieces),
		Bbar:    mergeDisjointU(bbarPieces),
		GMax:    gMax,
		GSum:    gSum,
		AbarMax: abarMax,
		AbarSum: abarSum,
		BbarMax: bbarMax,
		BbarSum: bbarSum,
	}
}

// mergeDisjointU concatenates pieces, each already in strictly
// decreasing exponent order and covering disjoint exponents, into one
// PolyU in overall decreasing order.
func mergeDisjointU(pieces []*poly.PolyU) *poly.PolyU {
	nvars := 0
	for _, p := range pieces {
		if p != nil {
			nvars = p.NVars
			break
		}
	}
	idx := make([]int, len(pieces))
	out := poly.NewBuilderU(nvars)
	for {
		best := -1
		bestExp := -1
		for i, p := range pieces {
			if p == nil || idx[i] >= len(p.Terms) {
				continue
			}
			if e := p.Terms[idx[i]].Exp; e > bestExp {
				bestExp = e
				best = i
			}
		}
		if best == -1 {
			break
		}
		out.Append(pieces[best].Terms[idx[best]].Exp, pieces[best].Terms[idx[best]].Coeff)
		idx[best]++
	}
	return out.Build()
}
