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

package poly

import "math/big"

// UTerm is one (outer exponent, inner Poly) pair of a PolyU. Coeff is
// never the zero polynomial inside a well-formed PolyU.
type UTerm struct {
	Exp   int
	Coeff *Poly
}

// PolyU is a Poly-coefficient polynomial in the distinguished main
// variable X. Terms are held in strictly decreasing exponent order
// and no term carries a zero inner polynomial.
type PolyU struct {
	NVars int // variables other than X
	Terms []UTerm
}

// ZeroU returns the empty PolyU over nvars non-main variables.
func ZeroU(nvars int) *PolyU {
	return &PolyU{NVars: nvars}
}

// IsZero reports whether p has no terms.
func (p *PolyU) IsZero() bool {
	return p == nil || len(p.Terms) == 0
}

// BuilderU appends terms to a PolyU in strictly decreasing exponent
// order, dropping zero inner polynomials.
type BuilderU struct {
	p *PolyU
}

// NewBuilderU starts building a PolyU over nvars non-main variables.
func NewBuilderU(nvars int) *BuilderU {
	return &BuilderU{p: ZeroU(nvars)}
}

// Append adds one term. Coeff is retained by reference.
func (b *BuilderU) Append(exp int, coeff *Poly) {
	if coeff.IsZero() {
		return
	}
	if n := len(b.p.Terms); n > 0 && b.p.Terms[n-1].Exp <= exp {
		panic("poly: BuilderU.Append called out of decreasing order")
	}
	b.p.Terms = append(b.p.Terms, UTerm{Exp: exp, Coeff: coeff})
}

// Build returns the finished PolyU.
func (b *BuilderU) Build() *PolyU {
	return b.p
}

// LeadExp returns the greatest outer exponent, or -1 if p is zero.
func (p *PolyU) LeadExp() int {
	if p.IsZero() {
		return -1
	}
	return p.Terms[0].Exp
}

// CoeffAt returns the inner Poly at outer exponent exp, or the zero
// Poly (over p.NVars variables) if exp is absent.
func (p *PolyU) CoeffAt(exp int) *Poly {
	for _, t := range p.Terms {
		if t.Exp == exp {
			return t.Coeff
		}
	}
	return Zero(p.NVars)
}

// LeadCoeff returns the inner Poly of the leading term, or the zero
// Poly if p itself is zero.
func (p *PolyU) LeadCoeff() *Poly {
	if p.IsZero() {
		return Zero(p.NVars)
	}
	return p.Terms[0].Coeff
}

// Content returns the GCD of the content of every inner Poly.
func (p *PolyU) Content() *big.Int {
	c := big.NewInt(0)
	for _, t := range p.Terms {
		c.GCD(nil, nil, c, t.Coeff.Content())
	}
	return c
}

// DivExact divides every coefficient throughout p by d in place.
func (p *PolyU) DivExact(d *big.Int) *PolyU {
	for _, t := range p.Terms {
		t.Coeff.DivExact(d)
	}
	return p
}

// MulScalar multiplies every coefficient throughout p by c in place.
func (p *PolyU) MulScalar(c *big.Int) *PolyU {
	for _, t := range p.Terms {
		t.Coeff.MulScalar(c)
	}
	return p
}

// Height returns the maximum absolute value of any coefficient
// appearing anywhere in p.
func (p *PolyU) Height() *big.Int {
	h := big.NewInt(0)
	abs := new(big.Int)
	for _, t := range p.Terms {
		for _, c := range t.Coeff.Terms {
			abs.Abs(c.Coeff)
			if abs.Cmp(h) > 0 {
				h.Set(abs)
			}
		}
	}
	return h
}

// Clone returns a deep copy of p.
func (p *PolyU) Clone() *PolyU {
	out := &PolyU{NVars: p.NVars, Terms: make([]UTerm, len(p.Terms))}
	for i, t := range p.Terms {
		out.Terms[i] = UTerm{Exp: t.Exp, Coeff: t.Coeff.Clone()}
	}
	return out
}

// TieBreak compares the leading (exponent, monomial) pair of p against
// that of q, the way the split engine's worse/better/equal decision
// requires: compare leading outer exponents first; if equal, compare
// the leading inner monomials of the leading outer coefficients. The
// main-variable degree needs no separate comparison because PolyU's
// outer exponent already is that degree, so ties at this point are
// true ties.
//
// Returns +1 if p is "better" (should replace q), -1 if p is "worse"
// (should be discarded in favor of q), 0 if they tie.
func (p *PolyU) TieBreak(q *PolyU) int {
	pe, qe := p.LeadExp(), q.LeadExp()
	if pe != qe {
		if pe > qe {
			return 1
		}
		return -1
	}
	pm, pOk := p.LeadTerm()
	qm, qOk := q.LeadTerm()
	if !pOk || !qOk {
		return 0
	}
	return pm.leadMonomial().Compare(qm.leadMonomial())
}

func (t UTerm) leadMonomial() Monomial {
	lt, ok := t.Coeff.LeadTerm()
	if !ok {
		return nil
	}
	return lt.Exp
}

// LeadTerm returns the leading UTerm, or the zero value and false if p
// is zero.
func (p *PolyU) LeadTerm() (UTerm, bool) {
	if p.IsZero() {
		return UTerm{}, false
	}
	return p.Terms[0], true
}
