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

// Term is one (monomial, coefficient) pair of a Poly. Coeff is never
// zero inside a well-formed Poly.
type Term struct {
	Exp   Monomial
	Coeff *big.Int
}

// Poly is a sparse multivariate polynomial over Z: either a caller's
// flat polynomial in all of its variables, or the inner coefficient of
// a PolyU in the variables other than the main variable. Terms are held in
// strictly decreasing Monomial order and never carry a zero
// coefficient.
type Poly struct {
	NVars int
	Terms []Term
}

// Zero returns the empty polynomial over nvars variables.
func Zero(nvars int) *Poly {
	return &Poly{NVars: nvars}
}

// IsZero reports whether p has no terms.
func (p *Poly) IsZero() bool {
	return p == nil || len(p.Terms) == 0
}

// Builder appends terms to a Poly in strictly decreasing order,
// silently dropping any term with a zero coefficient. It panics if
// terms are appended out of order, since that signals a programming
// error in the caller rather than a recoverable condition.
type Builder struct {
	p *Poly
}

// NewBuilder starts building a Poly over nvars variables.
func NewBuilder(nvars int) *Builder {
	return &Builder{p: Zero(nvars)}
}

// Append adds one term. coeff is retained by reference, not copied.
func (b *Builder) Append(exp Monomial, coeff *big.Int) {
	if coeff.Sign() == 0 {
		return
	}
	if n := len(b.p.Terms); n > 0 {
		if b.p.Terms[n-1].Exp.Compare(exp) <= 0 {
			panic("poly: Builder.Append called out of decreasing order")
		}
	}
	b.p.Terms = append(b.p.Terms, Term{Exp: exp.Clone(), Coeff: coeff})
}

// Build returns the finished Poly. The Builder must not be reused.
func (b *Builder) Build() *Poly {
	return b.p
}

// LeadTerm returns the greatest-monomial term, or the zero value and
// false if p is zero.
func (p *Poly) LeadTerm() (Term, bool) {
	if p.IsZero() {
		return Term{}, false
	}
	return p.Terms[0], true
}

// Content returns the GCD of the absolute values of every coefficient,
// or zero for the zero polynomial.
func (p *Poly) Content() *big.Int {
	c := big.NewInt(0)
	for _, t := range p.Terms {
		c.GCD(nil, nil, c, new(big.Int).Abs(t.Coeff))
	}
	return c
}

// DivExact divides every coefficient of p by d in place and returns p.
// d must exactly divide every coefficient.
func (p *Poly) DivExact(d *big.Int) *Poly {
	for i := range p.Terms {
		q := new(big.Int)
		q.Div(p.Terms[i].Coeff, d)
		p.Terms[i].Coeff = q
	}
	return p
}

// MulScalar multiplies every coefficient of p by c in place and
// returns p.
func (p *Poly) MulScalar(c *big.Int) *Poly {
	for i := range p.Terms {
		p.Terms[i].Coeff = new(big.Int).Mul(p.Terms[i].Coeff, c)
	}
	return p
}

// Clone returns a deep copy of p.
func (p *Poly) Clone() *Poly {
	out := &Poly{NVars: p.NVars, Terms: make([]Term, len(p.Terms))}
	for i, t := range p.Terms {
		out.Terms[i] = Term{Exp: t.Exp.Clone(), Coeff: new(big.Int).Set(t.Coeff)}
	}
	return out
}
