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

// Package join implements the master/worker join engine: a pool of
// workers sharing a Base (three independently-decrementing exponent
// cursors for G, Abar, and Bbar) that each repeatedly claim the next
// unclaimed outer exponent, CRT-merge every surviving prime image's
// coefficient there, and accumulate into a private output. Once every
// worker has exited, the disjoint per-worker pieces are concatenated
// by a final top-level merge into the combined G, Abar, Bbar.
package join
