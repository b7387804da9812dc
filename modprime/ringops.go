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

package modprime

import (
	"fmt"
	"sort"

	"github.com/ajroetker/go-polygcd/poly"
)

// negM negates every coefficient of a.
func negM(a *poly.MPoly) *poly.MPoly {
	out := &poly.MPoly{NVars: a.NVars, Mod: a.Mod, Terms: make([]poly.MTerm, len(a.Terms))}
	for i, t := range a.Terms {
		out.Terms[i] = poly.MTerm{Exp: t.Exp.Clone(), Coeff: poly.NegMod(t.Coeff, a.Mod)}
	}
	return out
}

// addM merges two MPolys, summing coefficients of equal monomials.
func addM(a, b *poly.MPoly) *poly.MPoly {
	mod := a.Mod
	i, j := 0, 0
	out := poly.NewBuilderM(a.NVars, mod)
	for i < len(a.Terms) || j < len(b.Terms) {
		switch {
		case j >= len(b.Terms) || (i < len(a.Terms) && a.Terms[i].Exp.Compare(b.Terms[j].Exp) > 0):
			out.Append(a.Terms[i].Exp, a.Terms[i].Coeff)
			i++
		case i >= len(a.Terms) || b.Terms[j].Exp.Compare(a.Terms[i].Exp) > 0:
			out.Append(b.Terms[j].Exp, b.Terms[j].Coeff)
			j++
		default:
			s := poly.AddMod(a.Terms[i].Coeff, b.Terms[j].Coeff, mod)
			if s != 0 {
				out.Append(a.Terms[i].Exp, s)
			}
			i++
			j++
		}
	}
	return out.Build()
}

func subM(a, b *poly.MPoly) *poly.MPoly {
	return addM(a, negM(b))
}

func addExp(a, b poly.Monomial) poly.Monomial {
	out := make(poly.Monomial, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}
	return out
}

// mulM computes the full convolution product of a and b.
func mulM(a, b *poly.MPoly) *poly.MPoly {
	if a.IsZero() || b.IsZero() {
		return poly.ZeroM(a.NVars, a.Mod)
	}
	mod := a.Mod
	acc := make(map[string]uint64, len(a.Terms)*len(b.Terms))
	keys := make(map[string]poly.Monomial, len(acc))
	for _, ta := range a.Terms {
		for _, tb := range b.Terms {
			exp := addExp(ta.Exp, tb.Exp)
			key := fmt.Sprint([]int(exp))
			acc[key] = poly.AddMod(acc[key], poly.MulMod(ta.Coeff, tb.Coeff, mod), mod)
			if _, ok := keys[key]; !ok {
				keys[key] = exp
			}
		}
	}
	terms := make([]poly.MTerm, 0, len(acc))
	for key, c := range acc {
		if c == 0 {
			continue
		}
		terms = append(terms, poly.MTerm{Exp: keys[key], Coeff: c})
	}
	sort.Slice(terms, func(i, j int) bool { return terms[i].Exp.Compare(terms[j].Exp) > 0 })
	out := poly.NewBuilderM(a.NVars, mod)
	for _, t := range terms {
		out.Append(t.Exp, t.Coeff)
	}
	return out.Build()
}

func fieldVal(m *poly.MPoly) uint64 {
	if m.IsZero() {
		return 0
	}
	return m.Terms[0].Coeff
}

func oneTermM(nvars int, mod uint64, coeff uint64) *poly.MPoly {
	out := poly.NewBuilderM(nvars, mod)
	out.Append(make(poly.Monomial, nvars), coeff)
	return out.Build()
}

func oneM(nvars int, mod uint64) *poly.MPoly {
	return oneTermM(nvars, mod, 1)
}

// isUnitM reports whether m is the constant polynomial 1, the only
// unit of GF(p)[y1..yk] that the content reductions below ever need to
// recognize (coefficient contents are only ever divided out, never
// multiplied by an arbitrary unit).
func isUnitM(m *poly.MPoly) bool {
	return len(m.Terms) == 1 && m.Terms[0].Exp.IsZero() && m.Terms[0].Coeff == 1
}

func cloneM(m *poly.MPoly) *poly.MPoly {
	out := &poly.MPoly{NVars: m.NVars, Mod: m.Mod, Terms: make([]poly.MTerm, len(m.Terms))}
	for i, t := range m.Terms {
		out.Terms[i] = poly.MTerm{Exp: t.Exp.Clone(), Coeff: t.Coeff}
	}
	return out
}

// distributeM peels the first variable off a, producing the
// PolyP-shaped distributed form used to recurse the PRS engine one
// variable deeper. a.NVars must be at least 1.
func distributeM(a *poly.MPoly) *poly.PolyP {
	out := poly.NewBuilderP(a.NVars-1, a.Mod)
	i := 0
	for i < len(a.Terms) {
		head := a.Terms[i].Exp[0]
		j := i
		cb := poly.NewBuilderM(a.NVars-1, a.Mod)
		for j < len(a.Terms) && a.Terms[j].Exp[0] == head {
			cb.Append(a.Terms[j].Exp[1:], a.Terms[j].Coeff)
			j++
		}
		out.Append(head, cb.Build())
		i = j
	}
	return out.Build()
}

// undistributeM is the inverse of distributeM, reattaching the peeled
// variable's exponent as the leading coordinate of every surviving
// monomial.
func undistributeM(p *poly.PolyP, nvars int, mod uint64) *poly.MPoly {
	out := poly.NewBuilderM(nvars, mod)
	for _, t := range p.Terms {
		for _, ct := range t.Coeff.Terms {
			exp := make(poly.Monomial, 0, nvars)
			exp = append(exp, t.Exp)
			exp = append(exp, ct.Exp...)
			out.Append(exp, ct.Coeff)
		}
	}
	return out.Build()
}

// gcdMPoly computes a GCD of a and b (up to a unit of GF(p)[y1..yk]) by
// peeling one variable into a PolyP and recursing the PRS engine;
// GF(p) itself (NVars == 0) is the base case, where every nonzero
// element is a unit and the GCD is degenerate.
func gcdMPoly(a, b *poly.MPoly) *poly.MPoly {
	if a.NVars == 0 {
		if a.IsZero() {
			return cloneM(b)
		}
		if b.IsZero() {
			return cloneM(a)
		}
		return oneM(0, a.Mod)
	}
	ap := distributeM(a)
	bp := distributeM(b)
	g := gcdPolyP(ap, bp, nil)
	return undistributeM(g, a.NVars, a.Mod)
}

// divExactMPoly divides a by b, which must divide it exactly; ok is
// false if that assumption turns out to be wrong (a bad-prime symptom
// surfacing at the coefficient-ring level).
func divExactMPoly(a, b *poly.MPoly) (*poly.MPoly, bool) {
	if a.NVars == 0 {
		bv := fieldVal(b)
		if bv == 0 {
			return nil, false
		}
		inv, ok := poly.InvMod(bv, a.Mod)
		if !ok {
			return nil, false
		}
		return oneTermM(0, a.Mod, poly.MulMod(fieldVal(a), inv, a.Mod)), true
	}
	ap := distributeM(a)
	bp := distributeM(b)
	q, ok := divExactPolyP(ap, bp)
	if !ok {
		return nil, false
	}
	return undistributeM(q, a.NVars, a.Mod), true
}
