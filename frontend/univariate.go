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

package frontend

import (
	"math/big"

	"github.com/ajroetker/go-polygcd/poly"
)

// UnivariateGCD computes (G, Abar, Bbar) for two single-variable
// polynomials via a pseudo-remainder sequence directly over Z: the
// integer-coefficient analogue of modprime's field-coefficient PRS,
// used for the one-variable case, where the split/join/CRT core adds
// nothing over a direct Euclidean-style computation.
func UnivariateGCD(a, b *poly.Poly) (g, abar, bbar *poly.Poly) {
	ca, pa := StripContent(a)
	cb, pb := StripContent(b)
	cg := new(big.Int).GCD(nil, nil, ca, cb)
	if cg.Sign() == 0 {
		cg = big.NewInt(1)
	}

	x, y := pa, pb
	for !y.IsZero() {
		r := pseudoRemainder1(x, y)
		if !r.IsZero() {
			_, r = StripContent(r)
		}
		x, y = y, r
	}
	gp := x
	if gp.IsZero() {
		gp = onePoly(1)
	}
	if univariateLead(gp).Sign() < 0 {
		gp.MulScalar(big.NewInt(-1))
	}

	g = gp.Clone()
	g.MulScalar(cg)
	abar, _ = divExact1(a, g)
	bbar, _ = divExact1(b, g)
	return g, abar, bbar
}

func univariateDegree(p *poly.Poly) int {
	if p.IsZero() {
		return -1
	}
	return p.Terms[0].Exp[0]
}

func univariateLead(p *poly.Poly) *big.Int {
	if p.IsZero() {
		return big.NewInt(0)
	}
	return p.Terms[0].Coeff
}

func scalePoly1(p *poly.Poly, factor *big.Int) *poly.Poly {
	return p.Clone().MulScalar(factor)
}

func shiftScalePoly1(p *poly.Poly, shift int, factor *big.Int) *poly.Poly {
	b := poly.NewBuilder(1)
	for _, t := range p.Terms {
		c := new(big.Int).Mul(t.Coeff, factor)
		b.Append(poly.Monomial{t.Exp[0] + shift}, c)
	}
	return b.Build()
}

func subPoly1(a, b *poly.Poly) *poly.Poly {
	out := poly.NewBuilder(1)
	ia, ib := 0, 0
	for ia < len(a.Terms) || ib < len(b.Terms) {
		switch {
		case ib >= len(b.Terms) || (ia < len(a.Terms) && a.Terms[ia].Exp[0] > b.Terms[ib].Exp[0]):
			out.Append(a.Terms[ia].Exp, new(big.Int).Set(a.Terms[ia].Coeff))
			ia++
		case ia >= len(a.Terms) || b.Terms[ib].Exp[0] > a.Terms[ia].Exp[0]:
			out.Append(b.Terms[ib].Exp, new(big.Int).Neg(b.Terms[ib].Coeff))
			ib++
		default:
			c := new(big.Int).Sub(a.Terms[ia].Coeff, b.Terms[ib].Coeff)
			if c.Sign() != 0 {
				out.Append(a.Terms[ia].Exp, c)
			}
			ia++
			ib++
		}
	}
	return out.Build()
}

// pseudoRemainder1 computes the pseudo-remainder of a by b, mirroring
// modprime's pseudoRemainderPolyP but over Z rather than GF(p).
func pseudoRemainder1(a, b *poly.Poly) *poly.Poly {
	rem := a.Clone()
	bLeadExp := univariateDegree(b)
	bLead := univariateLead(b)
	for !rem.IsZero() && univariateDegree(rem) >= bLeadExp {
		remExp := univariateDegree(rem)
		remLead := univariateLead(rem)
		scaled := scalePoly1(rem, bLead)
		shifted := shiftScalePoly1(b, remExp-bLeadExp, remLead)
		rem = subPoly1(scaled, shifted)
	}
	return rem
}

// divExact1 divides a by b exactly (single-variable, over Z), and
// reports ok = false if b does not divide a exactly.
func divExact1(a, b *poly.Poly) (*poly.Poly, bool) {
	if b.IsZero() {
		return nil, false
	}
	rem := a.Clone()
	bLeadExp := univariateDegree(b)
	bLead := univariateLead(b)
	quot := poly.NewBuilder(1)
	for !rem.IsZero() {
		remExp := univariateDegree(rem)
		shift := remExp - bLeadExp
		if shift < 0 {
			return nil, false
		}
		remLead := univariateLead(rem)
		qc, r := new(big.Int).QuoRem(remLead, bLead, new(big.Int))
		if r.Sign() != 0 {
			return nil, false
		}
		quot.Append(poly.Monomial{shift}, qc)
		rem = subPoly1(rem, shiftScalePoly1(b, shift, qc))
	}
	return quot.Build(), true
}
