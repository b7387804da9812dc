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

import (
	"math/big"
	"testing"
)

func TestMonomialCompare(t *testing.T) {
	a := Monomial{2, 0}
	b := Monomial{1, 5}
	if a.Compare(b) <= 0 {
		t.Fatalf("expected {2,0} to sort before {1,5}")
	}
	if b.Compare(a) >= 0 {
		t.Fatalf("expected {1,5} to sort after {2,0}")
	}
	if a.Compare(a) != 0 {
		t.Fatalf("expected equal monomials to compare 0")
	}
}

func TestBuilderRejectsOutOfOrder(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on out-of-order append")
		}
	}()
	b := NewBuilder(1)
	b.Append(Monomial{1}, big.NewInt(1))
	b.Append(Monomial{2}, big.NewInt(1))
}

func TestBuilderDropsZero(t *testing.T) {
	b := NewBuilder(1)
	b.Append(Monomial{2}, big.NewInt(0))
	b.Append(Monomial{1}, big.NewInt(5))
	p := b.Build()
	if len(p.Terms) != 1 {
		t.Fatalf("expected zero term dropped, got %d terms", len(p.Terms))
	}
}

func TestContentAndDivExact(t *testing.T) {
	b := NewBuilder(1)
	b.Append(Monomial{1}, big.NewInt(6))
	b.Append(Monomial{0}, big.NewInt(10))
	p := b.Build()
	c := p.Content()
	if c.Cmp(big.NewInt(2)) != 0 {
		t.Fatalf("Content() = %v, want 2", c)
	}
	p.DivExact(c)
	if p.Terms[0].Coeff.Cmp(big.NewInt(3)) != 0 || p.Terms[1].Coeff.Cmp(big.NewInt(5)) != 0 {
		t.Fatalf("DivExact gave %v, %v", p.Terms[0].Coeff, p.Terms[1].Coeff)
	}
}

func TestPolyUTieBreak(t *testing.T) {
	mkU := func(exp int, lead int) *PolyU {
		cb := NewBuilder(1)
		cb.Append(Monomial{lead}, big.NewInt(1))
		ub := NewBuilderU(1)
		ub.Append(exp, cb.Build())
		return ub.Build()
	}
	hi := mkU(3, 0)
	lo := mkU(2, 0)
	if hi.TieBreak(lo) <= 0 {
		t.Fatalf("expected higher outer exponent to be better")
	}
	if lo.TieBreak(hi) >= 0 {
		t.Fatalf("expected lower outer exponent to be worse")
	}

	a := mkU(3, 5)
	bb := mkU(3, 2)
	if a.TieBreak(bb) <= 0 {
		t.Fatalf("expected higher inner monomial to be better when outer exps tie")
	}
}

func TestReduceAndLiftRoundTrip(t *testing.T) {
	b := NewBuilder(1)
	b.Append(Monomial{0}, big.NewInt(-7))
	p := b.Build()
	p64 := Reduce(p, 101)
	lt, ok := p64.LeadTerm()
	if !ok {
		t.Fatalf("expected nonzero reduction")
	}
	back := Lift(lt.Coeff, 101)
	if back.Cmp(big.NewInt(-7)) != 0 {
		t.Fatalf("Lift(Reduce(-7)) = %v, want -7", back)
	}
}
