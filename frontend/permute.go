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

// ToMainVariable extracts p's first variable as the distinguished main
// variable X, producing a PolyU whose inner Poly coefficients carry
// the remaining variables in their original relative order. This
// repo's fixed monomial order (Monomial.Compare, most-significant
// index first) already makes variable 0 the most significant, so no
// additional permutation of term order is needed: the input's
// existing decreasing order is exactly the order ToMainVariable needs
// to walk once and group by contiguous leading exponent.
func ToMainVariable(p *poly.Poly) *poly.PolyU {
	if p.NVars < 1 {
		panic("frontend: ToMainVariable requires at least one variable")
	}
	out := poly.NewBuilderU(p.NVars - 1)
	i := 0
	for i < len(p.Terms) {
		mainExp := p.Terms[i].Exp[0]
		inner := poly.NewBuilder(p.NVars - 1)
		j := i
		for j < len(p.Terms) && p.Terms[j].Exp[0] == mainExp {
			inner.Append(p.Terms[j].Exp[1:], p.Terms[j].Coeff)
			j++
		}
		out.Append(mainExp, inner.Build())
		i = j
	}
	return out.Build()
}

// FromMainVariable is the inverse of ToMainVariable: it reinserts the
// outer exponent as variable 0 of a flat sparse polynomial.
func FromMainVariable(u *poly.PolyU) *poly.Poly {
	out := poly.NewBuilder(u.NVars + 1)
	for _, t := range u.Terms {
		for _, it := range t.Coeff.Terms {
			full := make(poly.Monomial, u.NVars+1)
			full[0] = t.Exp
			copy(full[1:], it.Exp)
			out.Append(full, it.Coeff)
		}
	}
	return out.Build()
}

// Deflate divides every variable's exponents throughout p by the GCD
// of that variable's exponents across every term (minimum 1), and
// returns the deflated polynomial together with the per-variable
// strides Inflate needs to undo it. Dividing every exponent in a
// coordinate by a fixed positive stride never changes the relative
// (decreasing) order of terms, so no re-sort is needed.
func Deflate(p *poly.Poly) (*poly.Poly, []int) {
	strides := make([]int, p.NVars)
	for i := range strides {
		g := 0
		for _, t := range p.Terms {
			g = gcdInt(g, t.Exp[i])
		}
		if g == 0 {
			g = 1
		}
		strides[i] = g
	}

	out := poly.NewBuilder(p.NVars)
	for _, t := range p.Terms {
		exp := make(poly.Monomial, p.NVars)
		for i := range exp {
			exp[i] = t.Exp[i] / strides[i]
		}
		out.Append(exp, new(big.Int).Set(t.Coeff))
	}
	return out.Build(), strides
}

// Inflate multiplies every variable's exponents throughout p by the
// corresponding stride, undoing a prior Deflate.
func Inflate(p *poly.Poly, strides []int) *poly.Poly {
	out := poly.NewBuilder(p.NVars)
	for _, t := range p.Terms {
		exp := make(poly.Monomial, p.NVars)
		for i := range exp {
			exp[i] = t.Exp[i] * strides[i]
		}
		out.Append(exp, new(big.Int).Set(t.Coeff))
	}
	return out.Build()
}

// JointDeflate deflates a and b by the same per-variable strides: the
// GCD of each variable's exponents across every term of BOTH
// polynomials, rather than each independently, so the pair shares one
// exponent lattice throughout the core computation. A common factor of
// the deflated pair inflates back (via Inflate, with these strides)
// into a common factor of the original pair, the same substitution
// FLINT's permute/deflate preprocessing relies on.
func JointDeflate(a, b *poly.Poly) (ad, bd *poly.Poly, strides []int) {
	strides = make([]int, a.NVars)
	for i := range strides {
		g := 0
		for _, t := range a.Terms {
			g = gcdInt(g, t.Exp[i])
		}
		for _, t := range b.Terms {
			g = gcdInt(g, t.Exp[i])
		}
		if g == 0 {
			g = 1
		}
		strides[i] = g
	}
	return deflateWith(a, strides), deflateWith(b, strides), strides
}

func deflateWith(p *poly.Poly, strides []int) *poly.Poly {
	out := poly.NewBuilder(p.NVars)
	for _, t := range p.Terms {
		exp := make(poly.Monomial, p.NVars)
		for i := range exp {
			exp[i] = t.Exp[i] / strides[i]
		}
		out.Append(exp, new(big.Int).Set(t.Coeff))
	}
	return out.Build()
}

func gcdInt(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
