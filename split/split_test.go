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

package split

import (
	"math/big"
	"testing"

	"github.com/ajroetker/go-polygcd/poly"
	"github.com/ajroetker/go-polygcd/primes"
	"github.com/ajroetker/go-polygcd/threadpool"
)

// univariateU builds a 0-extra-variable PolyU (a plain Z[X]
// polynomial) from exponent -> integer coefficient pairs.
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
		v := coeffs[e]
		inner := poly.NewBuilder(0)
		inner.Append(poly.Monomial{}, big.NewInt(v))
		b.Append(e, inner.Build())
	}
	return b.Build()
}

func TestRunWorkerReachesRequiredImages(t *testing.T) {
	// A = (X-1)(X-2), B = (X-1)(X-3): gcd is X-1, degree 1.
	A := univariateU(map[int]int64{2: 1, 1: -3, 0: 2})
	B := univariateU(map[int]int64{2: 1, 1: -4, 0: 3})
	base := NewBase(A, B, big.NewInt(1))

	acc, status := base.RunWorker(3, nil, nil)
	if status != StatusOK {
		t.Fatalf("status = %v, want StatusOK", status)
	}
	if acc.ImageCount != 3 {
		t.Fatalf("ImageCount = %d, want 3", acc.ImageCount)
	}
	if acc.G.LeadExp() != 1 {
		t.Fatalf("G lead exponent = %d, want 1", acc.G.LeadExp())
	}
}

func TestRunWorkerDetectsGCDIsOne(t *testing.T) {
	// A = X-1, B = X-2: coprime.
	A := univariateU(map[int]int64{1: 1, 0: -1})
	B := univariateU(map[int]int64{1: 1, 0: -2})
	base := NewBase(A, B, big.NewInt(1))

	_, status := base.RunWorker(5, nil, nil)
	if status != StatusGCDIsOne {
		t.Fatalf("status = %v, want StatusGCDIsOne", status)
	}
	if !base.GCDIsOne() {
		t.Fatal("expected Base.GCDIsOne() to report true")
	}
}

func TestRunWorkerSkipsUnluckyLeadingCoefficientPrimes(t *testing.T) {
	// Gamma = 6: any prime dividing 6 (namely 2 or 3) must be skipped
	// by reduceGammaModP, but the cursor starts far above those, so
	// this only exercises that a nonzero Gamma doesn't itself break
	// anything and every folded image keeps the gcd's leading
	// coefficient fixed at Gamma.
	A := univariateU(map[int]int64{2: 1, 1: -3, 0: 2})
	B := univariateU(map[int]int64{2: 1, 1: -4, 0: 3})
	base := NewBase(A, B, big.NewInt(6))

	acc, status := base.RunWorker(2, nil, nil)
	if status != StatusOK {
		t.Fatalf("status = %v, want StatusOK", status)
	}
	lt, ok := acc.G.LeadTerm()
	if !ok {
		t.Fatal("expected a nonzero accumulated G")
	}
	ct, ok := lt.Coeff.LeadTerm()
	if !ok || ct.Coeff.Cmp(big.NewInt(6)) != 0 {
		t.Fatalf("accumulated G's leading coefficient = %v, want 6", ct.Coeff)
	}
}

func TestRunWorkerSkipsPrimeDividingGamma(t *testing.T) {
	// Gamma is itself the first prime the cursor will claim, so that
	// prime reduces Gamma to zero and must be skipped; the image must
	// come from a later prime.
	A := univariateU(map[int]int64{2: 1, 1: -3, 0: 2})
	B := univariateU(map[int]int64{2: 1, 1: -4, 0: 3})
	q, ok := primes.NextPrime(primes.InitialCursor)
	if !ok {
		t.Fatal("no prime above the initial cursor")
	}
	gamma := new(big.Int).SetUint64(q)
	base := NewBase(A, B, gamma)

	acc, status := base.RunWorker(1, nil, nil)
	if status != StatusOK {
		t.Fatalf("status = %v, want StatusOK", status)
	}
	if acc.ImageCount != 1 {
		t.Fatalf("ImageCount = %d, want 1", acc.ImageCount)
	}
	if acc.Modulus.Cmp(gamma) == 0 {
		t.Fatalf("the prime dividing gamma was folded in instead of skipped")
	}
}

func TestRunWorkerReportsExhaustedOnImpossibleTarget(t *testing.T) {
	A := univariateU(map[int]int64{2: 1, 1: -3, 0: 2})
	B := univariateU(map[int]int64{2: 1, 1: -4, 0: 3})
	base := NewBase(A, B, big.NewInt(1))
	base.p = primes.MaxPrime // force immediate exhaustion

	_, status := base.RunWorker(1, nil, nil)
	if status != StatusExhausted {
		t.Fatalf("status = %v, want StatusExhausted", status)
	}
}

func TestRunMasterThreadedInnerGCD(t *testing.T) {
	// A master given inner workers reserves their handles and runs its
	// single prime-claiming loop with the intra-image-threaded modular
	// GCD; it must still reach its image count with a degree-1 G and
	// give every reserved handle back to the pool.
	A := univariateU(map[int]int64{2: 1, 1: -3, 0: 2})
	B := univariateU(map[int]int64{2: 1, 1: -4, 0: 3})
	base := NewBase(A, B, big.NewInt(1))

	pool := threadpool.New(4)
	defer pool.Close()

	acc, status := RunMaster(base, 8, 3, pool)
	if status != StatusOK {
		t.Fatalf("status = %v, want StatusOK", status)
	}
	if acc.ImageCount != 8 {
		t.Fatalf("ImageCount = %d, want 8", acc.ImageCount)
	}
	if acc.G.LeadExp() != 1 {
		t.Fatalf("G lead exponent = %d, want 1", acc.G.LeadExp())
	}
	if got := pool.Request(4); len(got) != 4 {
		t.Fatalf("RunMaster leaked handles: only %d of 4 free afterwards", len(got))
	}
}

func TestRunMasterSerialWithoutInnerWorkers(t *testing.T) {
	A := univariateU(map[int]int64{2: 1, 1: -3, 0: 2})
	B := univariateU(map[int]int64{2: 1, 1: -4, 0: 3})
	base := NewBase(A, B, big.NewInt(1))

	acc, status := RunMaster(base, 4, 0, nil)
	if status != StatusOK {
		t.Fatalf("status = %v, want StatusOK", status)
	}
	if acc.ImageCount != 4 {
		t.Fatalf("ImageCount = %d, want 4", acc.ImageCount)
	}
}

func TestTwoMastersShareThePrimeCursor(t *testing.T) {
	// Prime-level parallelism lives at the master level: two masters
	// racing over one Base never fold the same prime, so their merged
	// moduli stay coprime and the image counts add up.
	A := univariateU(map[int]int64{2: 1, 1: -3, 0: 2})
	B := univariateU(map[int]int64{2: 1, 1: -4, 0: 3})
	base := NewBase(A, B, big.NewInt(1))

	done := make(chan struct{})
	var acc2 *Accumulator
	var status2 Status
	go func() {
		defer close(done)
		acc2, status2 = RunMaster(base, 3, 0, nil)
	}()
	acc1, status1 := RunMaster(base, 3, 0, nil)
	<-done

	if status1 != StatusOK || status2 != StatusOK {
		t.Fatalf("statuses = %v, %v, want StatusOK twice", status1, status2)
	}
	if acc1.ImageCount != 3 || acc2.ImageCount != 3 {
		t.Fatalf("ImageCounts = %d, %d, want 3 each", acc1.ImageCount, acc2.ImageCount)
	}
	g := new(big.Int).GCD(nil, nil, acc1.Modulus, acc2.Modulus)
	if g.Cmp(big.NewInt(1)) != 0 {
		t.Fatalf("masters shared a prime: gcd(moduli) = %v", g)
	}
}
