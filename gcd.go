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

package polygcd

import (
	"math/big"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-polygcd/bigz"
	"github.com/ajroetker/go-polygcd/crt"
	"github.com/ajroetker/go-polygcd/divider"
	"github.com/ajroetker/go-polygcd/frontend"
	"github.com/ajroetker/go-polygcd/join"
	"github.com/ajroetker/go-polygcd/poly"
	"github.com/ajroetker/go-polygcd/primes"
	"github.com/ajroetker/go-polygcd/split"
	"github.com/ajroetker/go-polygcd/threadpool"
)

// boundWidenShift is 2*wordBits: the bound-widening factor applied
// every time the rational-reconstruction check fails. Deliberately
// aggressive, leaving headroom for pathological coefficient height
// growth under CRT.
const boundWidenShift = 128

// Gcd computes G, Abar, and Bbar for two integer multivariate
// polynomials A and B, such that A = G*Abar and B = G*Bbar, G has
// positive leading coefficient and primitive content, and
// gcd(cont(Abar), cont(Bbar)) shares no prime with cont(G) beyond the
// content A and B already had in common. ok is false only on a
// precondition violation (a nil input or mismatched variable counts) or on exhausting
// the word-sized prime range, which this package treats as a hard
// failure of the whole attempt rather than retrying with a wider
// range. threadLimit bounds the total OS-thread budget handed to the
// split and join engines; it is clamped to at least 1.
func Gcd(A, B *poly.Poly, threadLimit int) (G, Abar, Bbar *poly.Poly, ok bool) {
	if err := frontend.Validate(A, B); err != nil {
		return nil, nil, nil, false
	}
	if g, abar, bbar, triv := frontend.TrivialZero(A, B); triv {
		return g, abar, bbar, true
	}
	if g, abar, bbar, triv := frontend.TrivialConstant(A, B); triv {
		return g, abar, bbar, true
	}
	if A.NVars == 1 {
		g, abar, bbar := frontend.UnivariateGCD(A, B)
		return g, abar, bbar, true
	}
	if threadLimit < 1 {
		threadLimit = 1
	}
	return gcdMultivariate(A, B, threadLimit)
}

// gcdMultivariate runs the split-join-lift loop for the nvars >= 2
// case, after content strip and joint deflation.
func gcdMultivariate(A, B *poly.Poly, threadLimit int) (G, Abar, Bbar *poly.Poly, ok bool) {
	cA, pA := frontend.StripContent(A)
	cB, pB := frontend.StripContent(B)
	cG := new(big.Int).GCD(nil, nil, cA, cB)
	if cG.Sign() == 0 {
		cG = big.NewInt(1)
	}
	cAbar := new(big.Int).Div(cA, cG)
	cBbar := new(big.Int).Div(cB, cG)

	dA, dB, strides := frontend.JointDeflate(pA, pB)

	Au := frontend.ToMainVariable(dA)
	Bu := frontend.ToMainVariable(dB)

	gamma := new(big.Int).GCD(nil, nil, absBig(leadCoeffInt(Au)), absBig(leadCoeffInt(Bu)))
	if gamma.Sign() == 0 {
		gamma = big.NewInt(1)
	}

	height := Au.Height()
	if bh := Bu.Height(); bh.Cmp(height) > 0 {
		height = bh
	}
	bound := new(big.Int).Mul(big.NewInt(2), gamma)
	bound.Mul(bound, height)
	if bound.Sign() == 0 {
		bound = big.NewInt(1)
	}

	base := split.NewBase(Au, Bu, gamma)

	modulus := big.NewInt(1)
	var carry *split.Accumulator
	gcdIsOne := false

	for {
		required := requiredImages(bound, modulus)
		fracs := divider.DivideMasterThreads(required, threadLimit)
		imagesPer := divider.Images(fracs)
		workersPer := divider.Workers(fracs)
		l := len(fracs)

		pool := threadpool.New(threadLimit)

		accs := make([]*split.Accumulator, l)
		statuses := make([]split.Status, l)
		var eg errgroup.Group
		for i := 1; i < l; i++ {
			i := i
			eg.Go(func() error {
				accs[i], statuses[i] = split.RunMaster(base, imagesPer[i], workersPer[i], pool)
				return nil
			})
		}
		accs[0], statuses[0] = split.RunMaster(base, imagesPer[0], workersPer[0], pool)
		_ = eg.Wait()

		if base.GCDIsOne() {
			gcdIsOne = true
			pool.Close()
			break
		}
		for _, s := range statuses {
			if s == split.StatusExhausted {
				pool.Close()
				return nil, nil, nil, false
			}
		}

		candidates := make([]*split.Accumulator, 0, l+1)
		if carry != nil {
			candidates = append(candidates, carry)
		}
		for _, a := range accs {
			if a != nil && a.ImageCount > 0 {
				candidates = append(candidates, a)
			}
		}
		kept := bestAccumulators(candidates)

		gImages := lo.Map(kept, func(c *split.Accumulator, _ int) *poly.PolyU { return c.G })
		abarImages := lo.Map(kept, func(c *split.Accumulator, _ int) *poly.PolyU { return c.Abar })
		bbarImages := lo.Map(kept, func(c *split.Accumulator, _ int) *poly.PolyU { return c.Bbar })
		moduli := lo.Map(kept, func(c *split.Accumulator, _ int) *big.Int { return c.Modulus })
		total := lo.SumBy(kept, func(c *split.Accumulator) int { return c.ImageCount })

		prog := crt.Compile(moduli)
		jbase := join.NewBase(prog, gImages, abarImages, bbarImages)
		result := join.Run(jbase, threadLimit, pool)
		pool.Close()

		newModulus := lo.Reduce(moduli, func(agg *big.Int, m *big.Int, _ int) *big.Int {
			return new(big.Int).Mul(agg, m)
		}, big.NewInt(1))

		carry = &split.Accumulator{
			G: result.G, Abar: result.Abar, Bbar: result.Bbar,
			Modulus: newModulus, ImageCount: total,
		}
		modulus = newModulus

		if modulus.Cmp(bound) <= 0 {
			continue
		}

		if reconstructionOK(result, modulus) {
			break
		}
		bound = new(big.Int).Mul(modulus, new(big.Int).Lsh(big.NewInt(1), boundWidenShift))
	}

	var Gu, Abaru, Bbaru *poly.PolyU
	if gcdIsOne {
		Gu = oneConstU(Au.NVars)
		Abaru = Au
		Bbaru = Bu
	} else {
		Gu, Abaru, Bbaru = carry.G, carry.Abar, carry.Bbar
	}

	Gu, Abaru, Bbaru = finalize(Gu, Abaru, Bbaru, cG, cAbar, cBbar)

	G = frontend.Inflate(frontend.FromMainVariable(Gu), strides)
	Abar = frontend.Inflate(frontend.FromMainVariable(Abaru), strides)
	Bbar = frontend.Inflate(frontend.FromMainVariable(Bbaru), strides)
	return G, Abar, Bbar, true
}

// requiredImages computes ceil_log_p((bound/modulus)+2) with p fixed
// at the split engine's word-sized prime magnitude: the number of new
// prime images a round must collect before its CRT product can clear
// the bound.
func requiredImages(bound, modulus *big.Int) int {
	ratio := new(big.Int).Div(bound, modulus)
	ratio.Add(ratio, big.NewInt(2))
	n := int(bigz.ClogUI(ratio, primes.InitialCursor))
	if n < 1 {
		n = 1
	}
	return n
}

// bestAccumulators returns the subset of cands whose G tie for the
// best (exponent, monomial) shape: a strictly better shape discards
// every earlier candidate, an equal shape is kept alongside it.
// Candidates with a worse shape were built from unlucky primes.
func bestAccumulators(cands []*split.Accumulator) []*split.Accumulator {
	if len(cands) == 0 {
		return cands
	}
	best := cands[0].G
	for _, c := range cands[1:] {
		if c.G.TieBreak(best) > 0 {
			best = c.G
		}
	}
	out := make([]*split.Accumulator, 0, len(cands))
	for _, c := range cands {
		if c.G.TieBreak(best) == 0 {
			out = append(out, c)
		}
	}
	return out
}

// reconstructionOK is the early-termination rational-reconstruction
// bound check over the current join Result's magnitude tallies: both
// cofactor products must fit with a factor-of-two margin under the
// accumulated modulus.
func reconstructionOK(r *join.Result, modulus *big.Int) bool {
	two := big.NewInt(2)
	lhs1 := maxBig(mulBig(r.AbarSum, r.GMax), mulBig(r.AbarMax, r.GSum))
	lhs1.Mul(lhs1, two)
	lhs2 := maxBig(mulBig(r.BbarSum, r.GMax), mulBig(r.BbarMax, r.GSum))
	lhs2.Mul(lhs2, two)
	return lhs1.Cmp(modulus) < 0 && lhs2.Cmp(modulus) < 0
}

// finalize applies the acceptance step: divide G by its integer
// content, divide Abar and Bbar by the leading coefficient of the
// now-primitive G, normalize G's leading coefficient positive
// (flipping all three in lockstep to preserve both cofactor
// identities), then reattach the original common content. The lifted
// G is (gamma/lc(g))*g and the lifted cofactors are lc(g)*abar and
// lc(g)*bbar, so the content division leaves lc(G) == lc(g), exactly
// the factor the cofactors carry.
func finalize(Gu, Abaru, Bbaru *poly.PolyU, cG, cAbar, cBbar *big.Int) (*poly.PolyU, *poly.PolyU, *poly.PolyU) {
	content := Gu.Content()
	if content.Sign() != 0 {
		Gu.DivExact(content)
	}
	if lcG := leadCoeffInt(Gu); lcG.Sign() != 0 {
		Abaru.DivExact(lcG)
		Bbaru.DivExact(lcG)
	}
	if leadCoeffInt(Gu).Sign() < 0 {
		neg := big.NewInt(-1)
		Gu.MulScalar(neg)
		Abaru.MulScalar(neg)
		Bbaru.MulScalar(neg)
	}
	Gu.MulScalar(cG)
	Abaru.MulScalar(cAbar)
	Bbaru.MulScalar(cBbar)
	return Gu, Abaru, Bbaru
}

// leadCoeffInt returns the integer coefficient of u's overall leading
// term (the same scalar scale normalizeModularImage pins to gamma on
// the modular side), or zero if u is the zero polynomial.
func leadCoeffInt(u *poly.PolyU) *big.Int {
	t, ok := u.LeadTerm()
	if !ok {
		return big.NewInt(0)
	}
	lt, ok := t.Coeff.LeadTerm()
	if !ok {
		return big.NewInt(0)
	}
	return lt.Coeff
}

// oneConstU returns the constant PolyU "1" over nvars non-main
// variables, substituted for G when the split engine's gcd_is_one
// short circuit fires.
func oneConstU(nvars int) *poly.PolyU {
	inner := poly.NewBuilder(nvars)
	inner.Append(make(poly.Monomial, nvars), big.NewInt(1))
	b := poly.NewBuilderU(nvars)
	b.Append(0, inner.Build())
	return b.Build()
}

func absBig(a *big.Int) *big.Int {
	return new(big.Int).Abs(a)
}

func mulBig(a, b *big.Int) *big.Int {
	return new(big.Int).Mul(a, b)
}

func maxBig(a, b *big.Int) *big.Int {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}
