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

// Package divider splits n required prime images across at most m
// available threads: it produces 1 ≤ l ≤ min(n, m) master fractions
// a_i/b_i with Σa_i = n, Σb_i = m, each within a factor of 1.1 of n/m
// from above, by repeatedly replacing a fraction with its Stern-Brocot
// (Farey) right neighbor and splitting off the left neighbor whenever
// the right neighbor stays under the 1.1 threshold and the left
// neighbor is not below n/m.
package divider
