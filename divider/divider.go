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

package divider

import (
	"math/big"

	"github.com/samber/lo"
)

// slackFactor is the empirical bound every produced fraction must stay
// under, relative to n/m from above.
const slackFactor = 1.1

// FareyNeighbors returns the Stern-Brocot (Farey) neighbors left and
// right of v, a reduced fraction with denominator ≥ 2: the unique
// fractions with left < v < right, v their mediant, and
// right.Num*left.Denom - left.Num*right.Denom == 1. It returns ok =
// false if v's denominator is below 2.
func FareyNeighbors(v *big.Rat) (left, right *big.Rat, ok bool) {
	a, b := v.Num(), v.Denom()
	if b.Cmp(big.NewInt(2)) < 0 {
		return nil, nil, false
	}

	q1 := new(big.Int).ModInverse(a, b)
	if q1 == nil {
		return nil, nil, false
	}
	p1 := new(big.Int).Mul(a, q1)
	p1.Sub(p1, big.NewInt(1))
	p1.Div(p1, b)

	p2 := new(big.Int).Sub(a, p1)
	q2 := new(big.Int).Sub(b, q1)

	return new(big.Rat).SetFrac(p1, q1), new(big.Rat).SetFrac(p2, q2), true
}

// DivideMasterThreads selects 1 ≤ l ≤ min(n, m) fractions summing (as
// numerators, denominators) to n and m respectively, such that every
// fraction is ≥ n/m and ≤ 1.1·n/m.
func DivideMasterThreads(n, m int) []*big.Rat {
	if n <= 0 || m <= 0 {
		panic("divider: n and m must be positive")
	}

	g := gcdInt(n, m)
	base := big.NewRat(int64(n), int64(m))
	threshold := slackFactor * float64(n) / float64(m)

	v := make([]*big.Rat, g)
	for i := range v {
		v[i] = new(big.Rat).Set(base)
	}

	for i := 0; i < len(v); {
		left, right, ok := FareyNeighbors(v[i])
		if !ok {
			i++
			continue
		}
		rf, _ := right.Float64()
		if rf >= threshold || left.Cmp(base) < 0 {
			// Splitting must keep both halves in [n/m, 1.1*n/m]: the
			// right neighbor grows past the slack bound, the left one
			// can dip under the target ratio.
			i++
			continue
		}
		v[i] = right
		v = append(v, left)
	}

	return v
}

// Images returns each fraction's numerator as the required image
// count for that master.
func Images(fracs []*big.Rat) []int {
	return lo.Map(fracs, func(f *big.Rat, _ int) int {
		return int(f.Num().Int64())
	})
}

// Workers returns each fraction's denominator minus one: the number
// of inner workers that master should be given (it reuses itself as
// the first of its b_i threads).
func Workers(fracs []*big.Rat) []int {
	return lo.Map(fracs, func(f *big.Rat, _ int) int {
		return int(f.Denom().Int64()) - 1
	})
}

func gcdInt(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
