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

package join

import (
	"math/big"
	"testing"

	"github.com/ajroetker/go-polygcd/crt"
	"github.com/ajroetker/go-polygcd/poly"
	"github.com/ajroetker/go-polygcd/threadpool"
)

// univariateU builds a 0-extra-variable PolyU from an outer exponent
// -> integer coefficient map.
func univariateU(coeffs map[int]int64) *poly.PolyU {
	exps := make([]int, 0, len(coeffs))
	for e := range coeffs {
		exps = append(exps, e)
	}
	for i := 1; i < len(exps); i++ {
		for j := i; j > 0 && exps[j-1] < exps[j]; j-- {
			exps[j-1], exps[j] = exps[j], exps[j-1]
		}
	}
	b := poly.NewBuilderU(0)
	for _, e := range exps {
		inner := poly.NewBuilder(0)
		inner.Append(poly.Monomial{}, big.NewInt(coeffs[e]))
		b.Append(e, inner.Build())
	}
	return b.Build()
}

func int64Coeff(p *poly.PolyU, exp int) int64 {
	c := p.CoeffAt(exp)
	if c.IsZero() {
		return 0
	}
	return c.Terms[0].Coeff.Int64()
}

func TestRunSingleWorkerReconstructsExactCRT(t *testing.T) {
	// Two images of the same integer polynomial 5X+7, mod 11 and mod 13:
	// CRT over {11,13} (modulus 143) should reconstruct it exactly.
	imgMod11 := univariateU(map[int]int64{1: 5, 0: 7})
	imgMod13 := univariateU(map[int]int64{1: 5, 0: 7})
	prog := crt.Compile([]*big.Int{big.NewInt(11), big.NewInt(13)})

	base := NewBase(prog, []*poly.PolyU{imgMod11, imgMod13}, nil, nil)
	result := Run(base, 1, nil)

	if got := int64Coeff(result.G, 1); got != 5 {
		t.Fatalf("coeff(X) = %d, want 5", got)
	}
	if got := int64Coeff(result.G, 0); got != 7 {
		t.Fatalf("coeff(1) = %d, want 7", got)
	}
}

func TestRunMultipleWorkersMatchesSingleWorker(t *testing.T) {
	imgMod11 := univariateU(map[int]int64{2: 3, 1: 5, 0: 7})
	imgMod13 := univariateU(map[int]int64{2: 3, 1: 5, 0: 7})
	prog := crt.Compile([]*big.Int{big.NewInt(11), big.NewInt(13)})

	baseSingle := NewBase(prog, []*poly.PolyU{imgMod11, imgMod13}, nil, nil)
	single := Run(baseSingle, 1, nil)

	pool := threadpool.New(4)
	defer pool.Close()
	baseMulti := NewBase(prog, []*poly.PolyU{imgMod11, imgMod13}, nil, nil)
	multi := Run(baseMulti, 3, pool)

	for _, exp := range []int{2, 1, 0} {
		if a, b := int64Coeff(single.G, exp), int64Coeff(multi.G, exp); a != b {
			t.Fatalf("coeff(X^%d): single=%d multi=%d", exp, a, b)
		}
	}
}

func TestRunMergesGAbarBbarIndependently(t *testing.T) {
	gImg := univariateU(map[int]int64{1: 1, 0: 2})
	abarImg := univariateU(map[int]int64{1: 1, 0: 3})
	bbarImg := univariateU(map[int]int64{1: 1, 0: 4})
	prog := crt.Compile([]*big.Int{big.NewInt(101)})

	base := NewBase(prog, []*poly.PolyU{gImg}, []*poly.PolyU{abarImg}, []*poly.PolyU{bbarImg})
	result := Run(base, 2, nil)

	if got := int64Coeff(result.G, 0); got != 2 {
		t.Fatalf("G coeff(1) = %d, want 2", got)
	}
	if got := int64Coeff(result.Abar, 0); got != 3 {
		t.Fatalf("Abar coeff(1) = %d, want 3", got)
	}
	if got := int64Coeff(result.Bbar, 0); got != 4 {
		t.Fatalf("Bbar coeff(1) = %d, want 4", got)
	}
}

func TestMergeDisjointUConcatenatesInOrder(t *testing.T) {
	a := univariateU(map[int]int64{5: 1, 3: 2})
	b := univariateU(map[int]int64{4: 9, 1: 7})
	out := mergeDisjointU([]*poly.PolyU{a, b})
	wantExps := []int{5, 4, 3, 1}
	if len(out.Terms) != len(wantExps) {
		t.Fatalf("term count = %d, want %d", len(out.Terms), len(wantExps))
	}
	for i, e := range wantExps {
		if out.Terms[i].Exp != e {
			t.Fatalf("term %d exponent = %d, want %d", i, out.Terms[i].Exp, e)
		}
	}
}
