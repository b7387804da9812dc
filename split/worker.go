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

package split

import (
	"math/big"
	"sort"

	"github.com/ajroetker/go-polygcd/crt"
	"github.com/ajroetker/go-polygcd/merge"
	"github.com/ajroetker/go-polygcd/modprime"
	"github.com/ajroetker/go-polygcd/poly"
	"github.com/ajroetker/go-polygcd/threadpool"
)

// RunWorker runs one worker's loop against the shared Base until it
// has folded in `required` images, the word-prime range is exhausted,
// or some worker (possibly this one) has published gcd_is_one. A
// non-nil pool with a non-empty handles slice makes every modular GCD
// in this loop use the intra-image-threaded path.
func (b *Base) RunWorker(required int, pool *threadpool.Pool, handles []threadpool.Handle) (*Accumulator, Status) {
	acc := newAccumulator(b.A.NVars)
	for acc.ImageCount < required {
		if b.gcdIsOne.Load() {
			return acc, StatusGCDIsOne
		}

		p, ok := b.nextPrime()
		if !ok {
			return acc, StatusExhausted
		}

		gammaBar := reduceGammaModP(b.Gamma, p)
		if gammaBar == 0 {
			continue
		}

		Ap := poly.ReduceU(b.A, p)
		Bp := poly.ReduceU(b.B, p)

		var Gp, Abarp, Bbarp *poly.PolyP
		var gok bool
		if pool != nil && len(handles) > 0 {
			Gp, Abarp, Bbarp, gok = modprime.GcdAtPrimeThreaded(Ap, Bp, pool, handles)
		} else {
			Gp, Abarp, Bbarp, gok = modprime.GcdAtPrime(Ap, Bp)
		}
		if !gok {
			continue
		}

		if Gp.IsConstant() {
			b.gcdIsOne.Store(true)
			return acc, StatusGCDIsOne
		}

		if acc.ImageCount > 0 {
			aExp, aMono := shapeOfU(acc.G)
			pExp, pMono := shapeOfP(Gp)
			switch compareShape(pExp, pMono, aExp, aMono) {
			case -1:
				continue // unlucky: this image is worse than what we have
			case 1:
				acc = newAccumulator(b.A.NVars) // better: restart from this image
			}
		}

		normalizeModularImage(Gp, Abarp, Bbarp, gammaBar, p)
		foldImage(acc, Gp, Abarp, Bbarp, p)
	}
	return acc, StatusOK
}

func reduceGammaModP(gamma *big.Int, p uint64) uint64 {
	m := new(big.Int).SetUint64(p)
	return new(big.Int).Mod(gamma, m).Uint64()
}

// normalizeModularImage rescales the image triple so that Gp's overall
// leading coefficient equals gammaBar while Abarp and Bbarp become the
// exact quotients of Ap and Bp by the monic image of G. The lifts then
// stabilize under CRT: G lifts to (gamma/lc(g))*g and the cofactors to
// lc(g)*abar and lc(g)*bbar, all with integer coefficients.
func normalizeModularImage(Gp, Abarp, Bbarp *poly.PolyP, gammaBar, p uint64) {
	lt, _ := Gp.LeadCoeff().LeadTerm()
	cur := lt.Coeff
	curInv, _ := poly.InvMod(cur, p)
	Gp.ScalarMul(poly.MulMod(gammaBar, curInv, p))
	Abarp.ScalarMul(cur)
	Bbarp.ScalarMul(cur)
}

// shapeOfU and shapeOfP extract the (leading outer exponent, leading
// inner monomial) pair the unlucky-prime tie-break compares, from an
// integer lift and a modular image respectively.
func shapeOfU(u *poly.PolyU) (exp int, mono poly.Monomial) {
	exp = u.LeadExp()
	t, ok := u.LeadTerm()
	if !ok {
		return exp, nil
	}
	lt, ok := t.Coeff.LeadTerm()
	if !ok {
		return exp, nil
	}
	return exp, lt.Exp
}

func shapeOfP(p *poly.PolyP) (exp int, mono poly.Monomial) {
	exp = p.LeadExp()
	lt, ok := p.LeadCoeff().LeadTerm()
	if !ok {
		return exp, nil
	}
	return exp, lt.Exp
}

// compareShape returns +1 if (exp1, mono1) is "better" (should replace
// the other), -1 if "worse", 0 on a tie. The outer exponent decides
// first, the leading inner monomial breaks ties.
func compareShape(exp1 int, mono1 poly.Monomial, exp2 int, mono2 poly.Monomial) int {
	if exp1 != exp2 {
		if exp1 > exp2 {
			return 1
		}
		return -1
	}
	return mono1.Compare(mono2)
}

// crtMergeU combines two integer PolyUs, each valid modulo one of
// prog's two compiled moduli, into one PolyU valid modulo their
// product.
func crtMergeU(prog *crt.Prog, a, b *poly.PolyU) *poly.PolyU {
	expSet := make(map[int]bool)
	for _, t := range a.Terms {
		expSet[t.Exp] = true
	}
	for _, t := range b.Terms {
		expSet[t.Exp] = true
	}
	exps := make([]int, 0, len(expSet))
	for e := range expSet {
		exps = append(exps, e)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(exps)))

	out := poly.NewBuilderU(a.NVars)
	amax, asum := big.NewInt(0), big.NewInt(0)
	images := []*poly.PolyU{a, b}
	for _, e := range exps {
		merge.CRTExp(prog, amax, asum, out, e, images)
	}
	return out.Build()
}

// mergeAccumulators combines two independently-accumulated partial
// lifts over coprime moduli into one, by CRT-merging G, Abar, and
// Bbar in lockstep, the same way a single worker folds one more image
// into its own accumulator.
func mergeAccumulators(a, b *Accumulator) *Accumulator {
	prog := crt.Compile([]*big.Int{a.Modulus, b.Modulus})
	return &Accumulator{
		G:          crtMergeU(prog, a.G, b.G),
		Abar:       crtMergeU(prog, a.Abar, b.Abar),
		Bbar:       crtMergeU(prog, a.Bbar, b.Bbar),
		Modulus:    new(big.Int).Mul(a.Modulus, b.Modulus),
		ImageCount: a.ImageCount + b.ImageCount,
	}
}

// foldImage folds one more prime's modular image into acc in place.
func foldImage(acc *Accumulator, Gp, Abarp, Bbarp *poly.PolyP, p uint64) {
	next := &Accumulator{
		G:          poly.LiftU(Gp),
		Abar:       poly.LiftU(Abarp),
		Bbar:       poly.LiftU(Bbarp),
		Modulus:    new(big.Int).SetUint64(p),
		ImageCount: 1,
	}
	if acc.ImageCount == 0 {
		*acc = *next
		return
	}
	*acc = *mergeAccumulators(acc, next)
}
