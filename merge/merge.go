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

package merge

import (
	"math/big"

	"github.com/ajroetker/go-polygcd/crt"
	"github.com/ajroetker/go-polygcd/poly"
)

// CRTPoly merges count images of one outer coefficient into a single
// integer-coefficient Poly: for each monomial present in any image,
// the result's coefficient at that monomial is the CRT (under prog)
// of the images' coefficients there, treating an absent monomial as
// zero. Amax and Asum are updated with the magnitude of every nonzero
// output coefficient.
func CRTPoly(prog *crt.Prog, amax, asum *big.Int, images []*poly.Poly) *poly.Poly {
	count := len(images)
	nvars := 0
	for _, im := range images {
		if im != nil {
			nvars = im.NVars
			break
		}
	}

	start := make([]int, count)
	input := make([]*big.Int, count)
	zero := big.NewInt(0)
	scratch := crt.NewScratch(prog)
	out := poly.NewBuilder(nvars)

	for {
		k := 0
		var maxExp poly.Monomial
		found := false
		for ; k < count; k++ {
			terms := images[k].Terms
			if start[k] < len(terms) {
				maxExp = terms[start[k]].Exp
				input[k] = terms[start[k]].Coeff
				start[k]++
				found = true
				break
			}
			input[k] = zero
		}
		if !found {
			break
		}

		for j := k + 1; j < count; j++ {
			terms := images[j].Terms
			if start[j] >= len(terms) {
				input[j] = zero
				continue
			}
			cmp := terms[start[j]].Exp.Compare(maxExp)
			switch {
			case cmp == 0:
				input[j] = terms[start[j]].Coeff
				start[j]++
			case cmp > 0:
				for p := 0; p < j; p++ {
					if input[p] != zero {
						start[p]--
					}
					input[p] = zero
				}
				maxExp = terms[start[j]].Exp
				input[j] = terms[start[j]].Coeff
				start[j]++
			default:
				input[j] = zero
			}
		}

		crt.Run(scratch, prog, input)
		c := new(big.Int).Set(scratch[0])
		if c.Sign() != 0 {
			out.Append(maxExp, c)
		}

		abs := new(big.Int).Abs(c)
		if abs.Cmp(amax) > 0 {
			amax.Set(abs)
		}
		asum.Add(asum, abs)
	}

	return out.Build()
}

// CRTExp locates, in each of images, the (at most one) entry whose
// outer exponent is exp (substituting the zero Poly when absent), CRTs
// them via CRTPoly, and appends the resulting term to out if nonzero.
func CRTExp(prog *crt.Prog, amax, asum *big.Int, out *poly.BuilderU, exp int, images []*poly.PolyU) {
	coeffs := make([]*poly.Poly, len(images))
	for i, im := range images {
		coeffs[i] = im.CoeffAt(exp)
	}
	result := CRTPoly(prog, amax, asum, coeffs)
	out.Append(exp, result)
}
