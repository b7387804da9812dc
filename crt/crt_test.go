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

package crt

import (
	"math/big"
	"testing"
)

func bigs(vs ...int64) []*big.Int {
	out := make([]*big.Int, len(vs))
	for i, v := range vs {
		out[i] = big.NewInt(v)
	}
	return out
}

func runOnce(t *testing.T, moduli, residues []*big.Int) *big.Int {
	t.Helper()
	prog := Compile(moduli)
	if !prog.Good {
		t.Fatalf("Compile reported Good=false for %v", moduli)
	}
	scratch := NewScratch(prog)
	Run(scratch, prog, residues)
	return new(big.Int).Set(scratch[0])
}

func TestSingleModulus(t *testing.T) {
	got := runOnce(t, bigs(97), bigs(12))
	if got.Cmp(big.NewInt(12)) != 0 {
		t.Fatalf("got %v, want 12", got)
	}
}

func TestRoundTripAndBalanced(t *testing.T) {
	moduli := bigs(5, 7, 11, 13)
	residues := bigs(3, 4, 2, 9)

	got := runOnce(t, moduli, residues)

	M := big.NewInt(1)
	for _, m := range moduli {
		M.Mul(M, m)
	}
	half := new(big.Int).Rsh(M, 1)
	if got.CmpAbs(half) > 0 {
		t.Fatalf("|%v| should not exceed M/2 = %v", got, half)
	}

	for i, m := range moduli {
		r := new(big.Int).Mod(got, m)
		want := new(big.Int).Mod(residues[i], m)
		if r.Cmp(want) != 0 {
			t.Errorf("result mod %v = %v, want %v", m, r, want)
		}
	}
}

func TestOrderInvariance(t *testing.T) {
	moduli := bigs(5, 7, 11, 13)
	residues := bigs(3, 4, 2, 9)

	forward := runOnce(t, moduli, residues)

	revModuli := make([]*big.Int, len(moduli))
	revResidues := make([]*big.Int, len(residues))
	for i := range moduli {
		revModuli[i] = moduli[len(moduli)-1-i]
		revResidues[i] = residues[len(residues)-1-i]
	}
	backward := runOnce(t, revModuli, revResidues)

	if forward.Cmp(backward) != 0 {
		t.Fatalf("forward %v != backward %v", forward, backward)
	}
}

func TestNotCoprimeIsNotGood(t *testing.T) {
	prog := Compile(bigs(6, 10, 15))
	if prog.Good {
		t.Fatalf("expected Good=false for pairwise non-coprime moduli")
	}
}

func TestNegativeResidue(t *testing.T) {
	// x = 2 mod 3, x = 3 mod 5 => x = -7 (since -7 mod 15 == 8, and
	// 8 > 15/2 so the balanced residue is 8-15=-7).
	got := runOnce(t, bigs(3, 5), bigs(2, 3))
	if got.Cmp(big.NewInt(-7)) != 0 {
		t.Fatalf("got %v, want -7", got)
	}
}

func TestManyModuliLargeProduct(t *testing.T) {
	// Exercise the balanced tree over enough moduli that the merge
	// tree has several levels of intermediate products.
	primes := []int64{
		1000000007, 1000000009, 1000000021, 1000000033, 1000000087,
		1000000093, 1000000097, 1000000103, 1000000123, 1000000181,
		1000000207, 1000000223,
	}
	moduli := make([]*big.Int, len(primes))
	residues := make([]*big.Int, len(primes))
	for i, p := range primes {
		moduli[i] = big.NewInt(p)
		residues[i] = big.NewInt(int64(i) * 12345)
	}

	got := runOnce(t, moduli, residues)

	for i, m := range moduli {
		r := new(big.Int).Mod(got, m)
		want := new(big.Int).Mod(residues[i], m)
		if r.Cmp(want) != 0 {
			t.Errorf("result mod %v = %v, want %v", m, r, want)
		}
	}
}
