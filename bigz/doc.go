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

// Package bigz names the handful of arbitrary-precision integer
// operations the CRT program and orchestrator need, on top of
// math/big.Int: a balanced (smallest absolute value) residue, a
// ceiling base-p logarithm, an unsigned word-sized modular reduction,
// and a multiplication that is routed through an FFT-based
// implementation for the large moduli products the CRT tree builds.
package bigz
