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

import "testing"

func TestNextPrimeSmall(t *testing.T) {
	cases := []struct{ n, want uint64 }{
		{0, 2}, {2, 3}, {3, 5}, {10, 11}, {14, 17},
	}
	for _, c := range cases {
		got, ok := NextPrime(c.n)
		if !ok || got != c.want {
			t.Errorf("NextPrime(%d) = %d,%v want %d,true", c.n, got, ok, c.want)
		}
	}
}

func TestNextPrimeMonotone(t *testing.T) {
	p := uint64(0)
	for i := 0; i < 50; i++ {
		next, ok := NextPrime(p)
		if !ok {
			t.Fatalf("unexpected exhaustion at %d", p)
		}
		if next <= p {
			t.Fatalf("NextPrime(%d) = %d is not increasing", p, next)
		}
		p = next
	}
}

func TestNextPrimeExhaustion(t *testing.T) {
	if _, ok := NextPrime(MaxPrime); ok {
		t.Fatalf("expected exhaustion at MaxPrime")
	}
}
