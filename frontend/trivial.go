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

// onePoly returns the constant polynomial 1 over nvars variables.
func onePoly(nvars int) *poly.Poly {
	b := poly.NewBuilder(nvars)
	b.Append(make(poly.Monomial, nvars), big.NewInt(1))
	return b.Build()
}

// TrivialZero handles the case where either input is the zero
// polynomial, for which gcd(0, p) = p by convention, sign-normalized
// so the returned g has a positive leading coefficient. ok is false if
// neither input is zero.
func TrivialZero(a, b *poly.Poly) (g, abar, bbar *poly.Poly, ok bool) {
	switch {
	case a.IsZero() && b.IsZero():
		return poly.Zero(a.NVars), poly.Zero(a.NVars), poly.Zero(a.NVars), true
	case a.IsZero():
		g, unit := positivized(b)
		return g, poly.Zero(a.NVars), unit, true
	case b.IsZero():
		g, unit := positivized(a)
		return g, unit, poly.Zero(a.NVars), true
	default:
		return nil, nil, nil, false
	}
}

// positivized clones p with a positive leading coefficient and returns
// the matching unit cofactor (1 or -1).
func positivized(p *poly.Poly) (g, unit *poly.Poly) {
	g = p.Clone()
	unit = onePoly(p.NVars)
	if lt, ok := g.LeadTerm(); ok && lt.Coeff.Sign() < 0 {
		g.MulScalar(big.NewInt(-1))
		unit.MulScalar(big.NewInt(-1))
	}
	return g, unit
}

// TrivialConstant handles the zero-variable case, where a and b are
// plain integers and the GCD is the ordinary integer GCD. ok is false
// if a does not have zero variables.
func TrivialConstant(a, b *poly.Poly) (g, abar, bbar *poly.Poly, ok bool) {
	if a.NVars != 0 {
		return nil, nil, nil, false
	}
	av, bv := constVal(a), constVal(b)
	gv := new(big.Int).GCD(nil, nil, new(big.Int).Abs(av), new(big.Int).Abs(bv))
	if gv.Sign() == 0 {
		gv = big.NewInt(1)
	}
	return constPoly(gv), constPoly(new(big.Int).Div(av, gv)), constPoly(new(big.Int).Div(bv, gv)), true
}

func constVal(p *poly.Poly) *big.Int {
	if p.IsZero() {
		return big.NewInt(0)
	}
	return p.Terms[0].Coeff
}

func constPoly(v *big.Int) *poly.Poly {
	b := poly.NewBuilder(0)
	b.Append(poly.Monomial{}, new(big.Int).Set(v))
	return b.Build()
}
