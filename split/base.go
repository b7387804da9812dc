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
	"sync"
	"sync/atomic"

	"github.com/ajroetker/go-polygcd/poly"
	"github.com/ajroetker/go-polygcd/primes"
)

// Base is the state every master's worker shares: the next-prime
// cursor, the gcd-is-one short-circuit flag, and read-only handles to
// the inputs and their leading-coefficient gcd. p and gcdIsOne are the
// only fields any worker writes; A, B, and Gamma never change once a
// Base is constructed.
type Base struct {
	mu       sync.Mutex
	p        uint64
	gcdIsOne atomic.Bool

	A, B  *poly.PolyU
	Gamma *big.Int
}

// NewBase starts a split Base with the prime cursor just below the
// word-sized candidate range.
func NewBase(A, B *poly.PolyU, gamma *big.Int) *Base {
	return &Base{p: primes.InitialCursor, A: A, B: B, Gamma: gamma}
}

// GCDIsOne reports whether any worker has ever discovered a constant
// modular GCD image.
func (b *Base) GCDIsOne() bool {
	return b.gcdIsOne.Load()
}

func (b *Base) nextPrime() (uint64, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	next, ok := primes.NextPrime(b.p)
	if !ok {
		return 0, false
	}
	b.p = next
	return next, true
}

// Accumulator is one worker's private partial CRT lift: the candidate
// (G, Abar, Bbar) reconstructed so far, the product of primes folded
// into it, and how many images that represents.
type Accumulator struct {
	G, Abar, Bbar *poly.PolyU
	Modulus       *big.Int
	ImageCount    int
}

func newAccumulator(nvars int) *Accumulator {
	return &Accumulator{
		G:       poly.ZeroU(nvars),
		Abar:    poly.ZeroU(nvars),
		Bbar:    poly.ZeroU(nvars),
		Modulus: big.NewInt(1),
	}
}

// Status reports how a worker's or master's loop ended.
type Status int

const (
	// StatusOK means the requested image count was reached.
	StatusOK Status = iota
	// StatusGCDIsOne means a constant modular GCD image was found; the
	// accumulated partial lift should be discarded in favor of G = 1.
	StatusGCDIsOne
	// StatusExhausted means the word-sized prime range ran out before
	// enough images were collected: a hard failure of this attempt.
	StatusExhausted
)
