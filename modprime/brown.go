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
	"github.com/ajroetker/go-polygcd/poly"
	"github.com/ajroetker/go-polygcd/threadpool"
)

// engine carries the optional worker pool used to parallelize the one
// step of the PRS that is an associative fold over many independent
// coefficients: taking the content of a PolyP's terms. A nil engine
// (or one with no pool) runs that fold serially. Only the outermost
// call (the main-variable X level) is ever given a non-nil engine;
// the recursive coefficient-ring GCDs a few variables deeper run
// serially, since by then there are rarely enough terms to be worth
// the dispatch overhead.
type engine struct {
	pool    *threadpool.Pool
	handles []threadpool.Handle
}

func foldContent(coeffs []*poly.MPoly, eng *engine) *poly.MPoly {
	if eng == nil || eng.pool == nil || len(eng.handles) < 2 || len(coeffs) < 2*len(eng.handles) {
		c := coeffs[0]
		for _, m := range coeffs[1:] {
			c = gcdMPoly(c, m)
		}
		return c
	}

	n := len(eng.handles)
	chunks := make([][]*poly.MPoly, n)
	for i, c := range coeffs {
		chunks[i%n] = append(chunks[i%n], c)
	}
	partial := make([]*poly.MPoly, n)
	for i, chunk := range chunks {
		if len(chunk) == 0 {
			continue
		}
		i, chunk := i, chunk
		eng.pool.Wake(eng.handles[i], func() {
			c := chunk[0]
			for _, m := range chunk[1:] {
				c = gcdMPoly(c, m)
			}
			partial[i] = c
		})
	}
	for i, chunk := range chunks {
		if len(chunk) == 0 {
			continue
		}
		eng.pool.Wait(eng.handles[i])
	}

	var c *poly.MPoly
	for _, p := range partial {
		if p == nil {
			continue
		}
		if c == nil {
			c = p
		} else {
			c = gcdMPoly(c, p)
		}
	}
	return c
}

// contentPolyP computes the GCD of every coefficient of a over the
// coefficient ring GF(p)[y1..yk].
func contentPolyP(a *poly.PolyP, eng *engine) *poly.MPoly {
	coeffs := make([]*poly.MPoly, len(a.Terms))
	for i, t := range a.Terms {
		coeffs[i] = t.Coeff
	}
	return foldContent(coeffs, eng)
}

// dividePolyPByContent divides every coefficient of a by content,
// which divides each of them by construction.
func dividePolyPByContent(a *poly.PolyP, content *poly.MPoly) *poly.PolyP {
	if isUnitM(content) {
		return a
	}
	out := poly.NewBuilderP(a.NVars, a.Mod)
	for _, t := range a.Terms {
		q, ok := divExactMPoly(t.Coeff, content)
		if !ok {
			// content was computed from these very coefficients, so
			// this only happens on programmer error, not a bad prime.
			q = t.Coeff
		}
		out.Append(t.Exp, q)
	}
	return out.Build()
}

// primitivePolyP divides out the GCD of every coefficient in a,
// leaving a polynomial whose coefficients share no common factor.
func primitivePolyP(a *poly.PolyP, eng *engine) *poly.PolyP {
	if a.IsZero() {
		return a
	}
	return dividePolyPByContent(a, contentPolyP(a, eng))
}

func scalePolyP(a *poly.PolyP, factor *poly.MPoly) *poly.PolyP {
	out := poly.NewBuilderP(a.NVars, a.Mod)
	for _, t := range a.Terms {
		c := mulM(t.Coeff, factor)
		if !c.IsZero() {
			out.Append(t.Exp, c)
		}
	}
	return out.Build()
}

func shiftScalePolyP(a *poly.PolyP, shift int, factor *poly.MPoly) *poly.PolyP {
	out := poly.NewBuilderP(a.NVars, a.Mod)
	for _, t := range a.Terms {
		c := mulM(t.Coeff, factor)
		if !c.IsZero() {
			out.Append(t.Exp+shift, c)
		}
	}
	return out.Build()
}

func subPolyP(a, b *poly.PolyP) *poly.PolyP {
	i, j := 0, 0
	out := poly.NewBuilderP(a.NVars, a.Mod)
	for i < len(a.Terms) || j < len(b.Terms) {
		switch {
		case j >= len(b.Terms) || (i < len(a.Terms) && a.Terms[i].Exp > b.Terms[j].Exp):
			out.Append(a.Terms[i].Exp, a.Terms[i].Coeff)
			i++
		case i >= len(a.Terms) || b.Terms[j].Exp > a.Terms[i].Exp:
			out.Append(b.Terms[j].Exp, negM(b.Terms[j].Coeff))
			j++
		default:
			d := subM(a.Terms[i].Coeff, b.Terms[j].Coeff)
			if !d.IsZero() {
				out.Append(a.Terms[i].Exp, d)
			}
			i++
			j++
		}
	}
	return out.Build()
}

// pseudoRemainderPolyP computes the pseudo-remainder of a divided by
// b in the main variable: at each elimination step it scales the
// whole dividend by b's leading coefficient before subtracting a
// shifted multiple of b, which is always exact since the coefficient
// ring (GF(p)[y1..yk]) need not be a field.
func pseudoRemainderPolyP(a, b *poly.PolyP) *poly.PolyP {
	bLeadExp := b.LeadExp()
	bLeadCoeff := b.LeadCoeff()
	rem := a
	for !rem.IsZero() && rem.LeadExp() >= bLeadExp {
		origLeadExp := rem.LeadExp()
		remLead := rem.LeadCoeff()
		scaled := scalePolyP(rem, bLeadCoeff)
		shift := origLeadExp - bLeadExp
		shifted := shiftScalePolyP(b, shift, remLead)
		rem = subPolyP(scaled, shifted)
	}
	return rem
}

// gcdPolyP computes the GCD of a and b up to a unit of GF(p): the
// primitive pseudo-remainder sequence (repeatedly replace (a, b) with
// (b, primitive-part-of-pseudo-remainder(a, b)) until the second
// element vanishes) times the GCD of the two coefficient-ring
// contents, which the primitive parts no longer carry.
func gcdPolyP(a, b *poly.PolyP, eng *engine) *poly.PolyP {
	if a.IsZero() {
		return b
	}
	if b.IsZero() {
		return a
	}
	ca := contentPolyP(a, eng)
	cb := contentPolyP(b, eng)
	ap := dividePolyPByContent(a, ca)
	bp := dividePolyPByContent(b, cb)
	for !bp.IsZero() {
		r := pseudoRemainderPolyP(ap, bp)
		if !r.IsZero() {
			r = primitivePolyP(r, eng)
		}
		ap, bp = bp, r
	}
	cg := gcdMPoly(ca, cb)
	if isUnitM(cg) {
		return ap
	}
	return scalePolyP(ap, cg)
}

// divExactPolyP divides a by b, which must divide it exactly in the
// main variable; ok is false if a remainder is left over, which only
// happens when the caller's assumption of exact divisibility was
// wrong.
func divExactPolyP(a, b *poly.PolyP) (*poly.PolyP, bool) {
	quotient := poly.NewBuilderP(a.NVars, a.Mod)
	rem := a
	bLeadExp := b.LeadExp()
	for !rem.IsZero() {
		shift := rem.LeadExp() - bLeadExp
		if shift < 0 {
			return nil, false
		}
		qc, ok := divExactMPoly(rem.LeadCoeff(), b.LeadCoeff())
		if !ok {
			return nil, false
		}
		quotient.Append(shift, qc)
		rem = subPolyP(rem, shiftScalePolyP(b, shift, qc))
	}
	return quotient.Build(), true
}

// GcdAtPrime computes a dense modular GCD of Ap and Bp and their exact
// cofactors. ok is false whenever Ap or Bp is zero, or the GCD turns
// out not to divide one of them exactly, both bad-prime symptoms the
// split engine treats as "try the next prime".
func GcdAtPrime(Ap, Bp *poly.PolyP) (Gp, Abarp, Bbarp *poly.PolyP, ok bool) {
	return gcdAtPrime(Ap, Bp, nil)
}

// GcdAtPrimeThreaded is GcdAtPrime with the content-folding step of
// the PRS spread across the given pool handles, for use inside a
// split worker that owns more than one thread for its current image.
func GcdAtPrimeThreaded(Ap, Bp *poly.PolyP, pool *threadpool.Pool, handles []threadpool.Handle) (Gp, Abarp, Bbarp *poly.PolyP, ok bool) {
	return gcdAtPrime(Ap, Bp, &engine{pool: pool, handles: handles})
}

func gcdAtPrime(Ap, Bp *poly.PolyP, eng *engine) (Gp, Abarp, Bbarp *poly.PolyP, ok bool) {
	if Ap.IsZero() || Bp.IsZero() {
		return nil, nil, nil, false
	}
	g := gcdPolyP(Ap, Bp, eng)
	if g.IsZero() {
		return nil, nil, nil, false
	}
	abar, ok1 := divExactPolyP(Ap, g)
	if !ok1 {
		return nil, nil, nil, false
	}
	bbar, ok2 := divExactPolyP(Bp, g)
	if !ok2 {
		return nil, nil, nil, false
	}
	return g, abar, bbar, true
}
