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

// MTerm is one (monomial, coefficient) pair of an MPoly. Coeff is
// always in [0, Mod).
type MTerm struct {
	Exp   Monomial
	Coeff uint64
}

// MPoly is the modular-image analogue of Poly: a sparse multivariate
// polynomial with coefficients in GF(Mod), terms in strictly
// decreasing Monomial order, never a zero coefficient.
type MPoly struct {
	NVars int
	Mod   uint64
	Terms []MTerm
}

// ZeroM returns the empty MPoly over nvars variables mod p.
func ZeroM(nvars int, p uint64) *MPoly {
	return &MPoly{NVars: nvars, Mod: p}
}

// IsZero reports whether p has no terms.
func (p *MPoly) IsZero() bool {
	return p == nil || len(p.Terms) == 0
}

// BuilderM appends terms to an MPoly in strictly decreasing order.
type BuilderM struct {
	p *MPoly
}

// NewBuilderM starts building an MPoly over nvars variables mod mod.
func NewBuilderM(nvars int, mod uint64) *BuilderM {
	return &BuilderM{p: ZeroM(nvars, mod)}
}

// Append adds one term, dropping zero coefficients.
func (b *BuilderM) Append(exp Monomial, coeff uint64) {
	coeff %= b.p.Mod
	if coeff == 0 {
		return
	}
	if n := len(b.p.Terms); n > 0 {
		if b.p.Terms[n-1].Exp.Compare(exp) <= 0 {
			panic("poly: BuilderM.Append called out of decreasing order")
		}
	}
	b.p.Terms = append(b.p.Terms, MTerm{Exp: exp.Clone(), Coeff: coeff})
}

// Build returns the finished MPoly.
func (b *BuilderM) Build() *MPoly {
	return b.p
}

// LeadTerm returns the greatest-monomial term, or false if p is zero.
func (p *MPoly) LeadTerm() (MTerm, bool) {
	if p.IsZero() {
		return MTerm{}, false
	}
	return p.Terms[0], true
}

// ScalarMul multiplies every coefficient of p by c mod p.Mod in place.
func (p *MPoly) ScalarMul(c uint64) *MPoly {
	for i := range p.Terms {
		p.Terms[i].Coeff = MulMod(p.Terms[i].Coeff, c, p.Mod)
	}
	return p
}

// Reduce reduces an integer Poly modulo p into an MPoly.
func Reduce(a *Poly, p uint64) *MPoly {
	out := NewBuilderM(a.NVars, p)
	mp := new(big.Int).SetUint64(p)
	r := new(big.Int)
	for _, t := range a.Terms {
		r.Mod(t.Coeff, mp)
		out.Append(t.Exp, r.Uint64())
	}
	return out.Build()
}

// Lift returns the balanced-residue big.Int for a coefficient reduced
// modulo p: the unique integer in (-p/2, p/2] congruent to v.
func Lift(v uint64, p uint64) *big.Int {
	if v > p/2 {
		return new(big.Int).SetInt64(int64(v) - int64(p))
	}
	return new(big.Int).SetUint64(v)
}

// PTerm is one (outer exponent, inner MPoly) pair of a PolyP.
type PTerm struct {
	Exp   int
	Coeff *MPoly
}

// PolyP is the modular-image analogue of PolyU: an MPoly-coefficient
// polynomial in the main variable X, terms in strictly decreasing
// exponent order, never a zero inner polynomial.
type PolyP struct {
	NVars int
	Mod   uint64
	Terms []PTerm
}

// ZeroP returns the empty PolyP over nvars non-main variables mod p.
func ZeroP(nvars int, p uint64) *PolyP {
	return &PolyP{NVars: nvars, Mod: p}
}

// IsZero reports whether p has no terms.
func (p *PolyP) IsZero() bool {
	return p == nil || len(p.Terms) == 0
}

// BuilderP appends terms to a PolyP in strictly decreasing exponent
// order, dropping zero inner polynomials.
type BuilderP struct {
	p *PolyP
}

// NewBuilderP starts building a PolyP over nvars non-main variables
// mod mod.
func NewBuilderP(nvars int, mod uint64) *BuilderP {
	return &BuilderP{p: ZeroP(nvars, mod)}
}

// Append adds one term.
func (b *BuilderP) Append(exp int, coeff *MPoly) {
	if coeff.IsZero() {
		return
	}
	if n := len(b.p.Terms); n > 0 && b.p.Terms[n-1].Exp <= exp {
		panic("poly: BuilderP.Append called out of decreasing order")
	}
	b.p.Terms = append(b.p.Terms, PTerm{Exp: exp, Coeff: coeff})
}

// Build returns the finished PolyP.
func (b *BuilderP) Build() *PolyP {
	return b.p
}

// LeadExp returns the greatest outer exponent, or -1 if p is zero.
func (p *PolyP) LeadExp() int {
	if p.IsZero() {
		return -1
	}
	return p.Terms[0].Exp
}

// LeadCoeff returns the inner MPoly of the leading term, or the zero
// MPoly if p is itself zero.
func (p *PolyP) LeadCoeff() *MPoly {
	if p.IsZero() {
		return ZeroM(p.NVars, p.Mod)
	}
	return p.Terms[0].Coeff
}

// IsConstant reports whether p is a single term of degree zero on
// every remaining variable, i.e. a nonzero constant of GF(p).
func (p *PolyP) IsConstant() bool {
	if len(p.Terms) != 1 {
		return false
	}
	if p.Terms[0].Exp != 0 {
		return false
	}
	lt, ok := p.Terms[0].Coeff.LeadTerm()
	return ok && len(p.Terms) == 1 && lt.Exp.IsZero() && len(p.Terms[0].Coeff.Terms) == 1
}

// ScalarMul multiplies every coefficient throughout p by c mod p.Mod.
func (p *PolyP) ScalarMul(c uint64) *PolyP {
	for _, t := range p.Terms {
		t.Coeff.ScalarMul(c)
	}
	return p
}

// ReduceU reduces an integer PolyU modulo p into a PolyP.
func ReduceU(a *PolyU, p uint64) *PolyP {
	out := NewBuilderP(a.NVars, p)
	for _, t := range a.Terms {
		out.Append(t.Exp, Reduce(t.Coeff, p))
	}
	return out.Build()
}

// LiftM lifts a modular MPoly to an integer Poly via balanced
// residues, the inverse of Reduce.
func LiftM(a *MPoly) *Poly {
	out := NewBuilder(a.NVars)
	for _, t := range a.Terms {
		out.Append(t.Exp, Lift(t.Coeff, a.Mod))
	}
	return out.Build()
}

// LiftU lifts a modular PolyP to an integer PolyU via balanced
// residues, the inverse of ReduceU.
func LiftU(a *PolyP) *PolyU {
	out := NewBuilderU(a.NVars)
	for _, t := range a.Terms {
		out.Append(t.Exp, LiftM(t.Coeff))
	}
	return out.Build()
}
