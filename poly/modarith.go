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

import "math/bits"

// AddMod returns (a+b) mod p. a and b must already be reduced mod p.
func AddMod(a, b, p uint64) uint64 {
	s := a + b
	if s < a || s >= p {
		s -= p
	}
	return s
}

// SubMod returns (a-b) mod p. a and b must already be reduced mod p.
func SubMod(a, b, p uint64) uint64 {
	if a >= b {
		return a - b
	}
	return p - (b - a)
}

// NegMod returns (-a) mod p.
func NegMod(a, p uint64) uint64 {
	if a == 0 {
		return 0
	}
	return p - a
}

// MulMod returns (a*b) mod p via a full 128-bit product, since word
// size primes are chosen near 2^(wordbits-2) and a naive uint64
// product overflows.
func MulMod(a, b, p uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	_, rem := bits.Div64(hi, lo, p)
	return rem
}

// PowMod returns (a^e) mod p.
func PowMod(a uint64, e uint64, p uint64) uint64 {
	result := uint64(1) % p
	base := a % p
	for e > 0 {
		if e&1 == 1 {
			result = MulMod(result, base, p)
		}
		base = MulMod(base, base, p)
		e >>= 1
	}
	return result
}

// InvMod returns the inverse of a mod p (p prime) via Fermat's little
// theorem, and false if a is zero mod p.
func InvMod(a, p uint64) (uint64, bool) {
	a %= p
	if a == 0 {
		return 0, false
	}
	return PowMod(a, p-2, p), true
}
