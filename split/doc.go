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

// Package split implements the master/worker split engine: masters
// sharing a Base (the next-prime cursor and the gcd-is-one flag) each
// repeatedly pick an unused word-sized prime, compute a modular GCD
// image via modprime, and fold it into a private CRT lift until they
// reach their assigned image count.
//
// A single master is given a_i total images and b_i-1 inner workers by
// the thread-budget divider. The master itself is the only loop that
// claims primes; its inner workers are pool handles reserved for the
// duration of the loop and spent inside each image, on the
// intra-image-threaded modular GCD. Prime-level parallelism comes from
// the orchestrator running l masters at once against one shared Base,
// so no two masters ever claim the same prime.
package split
