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

// Package modprime is the single-prime modular multivariate GCD
// collaborator the split engine calls at each surviving prime: given
// Ap, Bp reduced modulo p, it returns a candidate Gp together with the
// exact cofactors Abarp = Ap/Gp, Bbarp = Bp/Gp, or ok == false on a bad
// prime (a leading coefficient or remainder-sequence degeneracy that
// only shows up modulo this particular p).
//
// The algorithm is a recursive primitive pseudo-remainder sequence:
// the main variable X already has its own distributed structure
// (PolyP), so the outer GCD is an ordinary Euclidean PRS in X whose
// coefficient ring is GF(p)[y1..yk] (an MPoly). That coefficient ring
// is not a field, so the PRS needs a coefficient-ring GCD at every
// step to take primitive parts; that inner GCD is computed by peeling
// one more variable and recursing, bottoming out at GF(p) itself where
// the ring is a field and ordinary division applies. This is a
// deliberately simpler stand-in for true Brown interpolation-based
// multivariate GCD (see DESIGN.md): correct, but without Brown's
// evaluation/interpolation scheme for controlling expression swell.
package modprime
