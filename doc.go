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

// Package polygcd is the top-level orchestrator for the parallel
// dense-modular multivariate integer GCD: input validation and the
// trivial/univariate fast paths (package frontend), then the
// split-join-lift loop (packages split, join, crt, merge) bounded by
// a height estimate and accepted once a rational-reconstruction
// divisibility check passes.
package polygcd
