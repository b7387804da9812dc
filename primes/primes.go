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

package primes

import "math/big"

// MaxPrime is the largest prime representable in a 64-bit word; the
// defined upper sentinel beyond which NextPrime reports exhaustion.
const MaxPrime uint64 = 18446744073709551557

// InitialCursor is the split engine's starting prime cursor:
// 2^(wordBits-2) itself, which is not prime, so the first prime
// NextPrime hands out is the smallest one above it, leaving headroom so that doubling products
// during CRT never approach the word boundary prematurely.
const InitialCursor uint64 = 1 << 62

// NextPrime returns the smallest prime strictly greater than n, and
// true. It returns (0, false) once no prime remains at or below
// MaxPrime.
func NextPrime(n uint64) (uint64, bool) {
	if n >= MaxPrime {
		return 0, false
	}
	if n < 2 {
		return 2, true
	}

	candidate := n + 1
	if candidate%2 == 0 {
		candidate++
	}
	for candidate <= MaxPrime {
		if isProbablyPrime(candidate) {
			return candidate, true
		}
		candidate += 2
	}
	return 0, false
}

func isProbablyPrime(n uint64) bool {
	return new(big.Int).SetUint64(n).ProbablyPrime(20)
}
