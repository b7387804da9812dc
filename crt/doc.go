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

// Package crt compiles a fixed set of pairwise-coprime moduli into a
// straight-line program (a balanced binary merge tree) and replays
// that program against many residue vectors to reconstruct the
// unique combined integer of smallest absolute value.
//
// Compile once, Run many times:
//
//	prog := crt.Compile(moduli)
//	if !prog.Good {
//	    panic("moduli not pairwise coprime")
//	}
//	scratch := make([]*big.Int, crt.LocalSize(prog))
//	for i := range scratch {
//	    scratch[i] = new(big.Int)
//	}
//	crt.Run(scratch, prog, residues)
//	combined := scratch[0]
package crt
