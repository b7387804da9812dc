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

// Package poly implements the sparse distributed polynomial data model:
//
//   - Monomial, a fixed-length exponent vector with a total order.
//   - Poly, a sparse multivariate polynomial with big.Int coefficients,
//     terms held in strictly decreasing monomial order.
//   - PolyU, a Poly-coefficient polynomial distributed over one
//     distinguished main variable, terms held in strictly decreasing
//     exponent order on that variable.
//
// Every constructor here enforces the no-zero-coefficient and
// strictly-decreasing-term invariants by construction rather than by
// assertion, so a Poly or PolyU built through this package can never
// observe the invariant broken.
package poly
