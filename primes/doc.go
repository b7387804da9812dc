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

// Package primes iterates word-sized prime candidates for the split
// engine. There is no ecosystem library in reach for a verified
// next-prime primitive, so NextPrime is built directly on
// math/big.Int's Miller-Rabin/Baillie-PSW ProbablyPrime; see
// DESIGN.md for why this one corner stays on the standard library.
package primes
