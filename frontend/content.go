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

package frontend

import (
	"fmt"
	"math/big"

	"github.com/ajroetker/go-polygcd/poly"
)

// Validate reports a non-nil error if a and b cannot be passed to the
// core together: differing variable counts, or either argument nil.
func Validate(a, b *poly.Poly) error {
	if a == nil || b == nil {
		return fmt.Errorf("frontend: inputs must not be nil")
	}
	if a.NVars != b.NVars {
		return fmt.Errorf("frontend: variable count mismatch: %d vs %d", a.NVars, b.NVars)
	}
	return nil
}

// StripContent returns p's integer content (0 for the zero
// polynomial, otherwise positive) and p divided by it.
func StripContent(p *poly.Poly) (*big.Int, *poly.Poly) {
	c := p.Content()
	if c.Sign() == 0 {
		return big.NewInt(0), p.Clone()
	}
	out := p.Clone()
	out.DivExact(c)
	return c, out
}

// ReattachContent multiplies every coefficient of p by c in place and
// returns p.
func ReattachContent(p *poly.Poly, c *big.Int) *poly.Poly {
	return p.MulScalar(c)
}
