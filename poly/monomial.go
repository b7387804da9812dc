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

// Monomial is an exponent vector with one entry per variable of the
// polynomial that holds it; inside a PolyU that means the variables
// other than the main variable. All Monomials appearing in a single
// Poly/PolyU tree share the same length.
type Monomial []int

// Clone returns an independent copy of m.
func (m Monomial) Clone() Monomial {
	out := make(Monomial, len(m))
	copy(out, m)
	return out
}

// Equal reports whether m and n have identical exponents.
func (m Monomial) Equal(n Monomial) bool {
	if len(m) != len(n) {
		return false
	}
	for i := range m {
		if m[i] != n[i] {
			return false
		}
	}
	return true
}

// Compare implements the fixed total order used throughout: plain
// lexicographic comparison of exponents, most-significant variable
// first. It returns +1 if m sorts before n (m is "greater"), -1 if m
// sorts after n, and 0 if they are equal. "Greater" monomials are the
// ones that appear first in a Poly's strictly-decreasing term list.
func (m Monomial) Compare(n Monomial) int {
	for i := 0; i < len(m) && i < len(n); i++ {
		if m[i] != n[i] {
			if m[i] > n[i] {
				return 1
			}
			return -1
		}
	}
	switch {
	case len(m) > len(n):
		return 1
	case len(m) < len(n):
		return -1
	default:
		return 0
	}
}

// IsZero reports whether every exponent is zero.
func (m Monomial) IsZero() bool {
	for _, e := range m {
		if e != 0 {
			return false
		}
	}
	return true
}
