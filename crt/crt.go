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

package crt

import (
	"math/big"
	"sort"

	"github.com/ajroetker/go-polygcd/bigz"
)

// Instruction computes A = B - idem*(B - C) mod Modulus, where A is a
// scratch slot (AIdx) and B, C are each either a scratch slot (BIdx or
// CIdx ≥ 0) or an input (BIdx/CIdx == -k-1 means input[k]).
type Instruction struct {
	AIdx, BIdx, CIdx int
	Idem, Modulus    *big.Int
}

// Prog is a compiled CRT straight-line program: a balanced binary
// merge tree over a fixed set of moduli. The zero value is not usable;
// construct with Compile.
type Prog struct {
	Instr     []Instruction
	LocalSize int
	Temp1Loc  int
	Temp2Loc  int
	Good      bool
}

// LocalSize returns the scratch buffer length Run requires.
func LocalSize(p *Prog) int {
	return p.LocalSize
}

type idxDeg struct {
	idx    int
	degree uint
}

// Compile builds a CRT program over moduli. The returned program's
// Good field reports whether the moduli are pairwise coprime and
// nonzero; Run must not be called when Good is false.
func Compile(moduli []*big.Int) *Prog {
	n := len(moduli)
	if n == 0 {
		panic("crt: Compile requires a non-empty modulus slice")
	}

	prog := &Prog{Good: true, LocalSize: 1}

	if n > 1 {
		perm := make([]idxDeg, n)
		for i, m := range moduli {
			perm[i] = idxDeg{idx: i, degree: bigz.Bits(m)}
		}
		sort.SliceStable(perm, func(i, j int) bool {
			return perm[i].degree < perm[j].degree
		})
		pushProg(prog, moduli, perm, 0, 0, n)
	} else {
		prog.Instr = []Instruction{{
			AIdx:    0,
			BIdx:    -1,
			CIdx:    -1,
			Idem:    big.NewInt(0),
			Modulus: new(big.Int).Set(moduli[0]),
		}}
		prog.Good = moduli[0].Sign() != 0
	}

	if !prog.Good {
		prog.Instr = nil
	}

	prog.Temp1Loc = prog.LocalSize
	prog.Temp2Loc = prog.LocalSize + 1
	prog.LocalSize += 2

	return prog
}

// pushProg compiles the merge of moduli[perm[start:stop]] into
// scratch slot retIdx, and returns the index of the instruction whose
// AIdx == retIdx (so its Modulus can be read by the caller), or -1 if
// prog.Good became false.
func pushProg(prog *Prog, moduli []*big.Int, perm []idxDeg, retIdx, start, stop int) int {
	mid := start + (stop-start)/2

	var lefttot, righttot uint
	for i := start; i < mid; i++ {
		lefttot += perm[i].degree
	}
	for i := mid; i < stop; i++ {
		righttot += perm[i].degree
	}

	for lefttot < righttot && mid+1 < stop && perm[mid].degree < righttot-lefttot {
		lefttot += perm[mid].degree
		righttot -= perm[mid].degree
		mid++
	}

	if prog.LocalSize < retIdx+1 {
		prog.LocalSize = retIdx + 1
	}

	var bIdx int
	var leftModulus *big.Int
	if start+1 < mid {
		bIdx = retIdx + 1
		leftRet := pushProg(prog, moduli, perm, bIdx, start, mid)
		if !prog.Good {
			return -1
		}
		leftModulus = prog.Instr[leftRet].Modulus
	} else {
		bIdx = -1 - perm[start].idx
		leftModulus = moduli[perm[start].idx]
	}

	var cIdx int
	var rightModulus *big.Int
	if mid+1 < stop {
		cIdx = retIdx + 2
		rightRet := pushProg(prog, moduli, perm, cIdx, mid, stop)
		if !prog.Good {
			return -1
		}
		rightModulus = prog.Instr[rightRet].Modulus
	} else {
		cIdx = -1 - perm[mid].idx
		rightModulus = moduli[perm[mid].idx]
	}

	if leftModulus.Sign() == 0 || rightModulus.Sign() == 0 {
		prog.Good = false
		return -1
	}

	inv, ok := bigz.InvMod(leftModulus, rightModulus)
	if !ok {
		prog.Good = false
		return -1
	}

	idem := bigz.Mul(leftModulus, inv)
	modulus := bigz.Mul(leftModulus, rightModulus)

	idx := len(prog.Instr)
	prog.Instr = append(prog.Instr, Instruction{
		AIdx:    retIdx,
		BIdx:    bIdx,
		CIdx:    cIdx,
		Idem:    idem,
		Modulus: modulus,
	})
	return idx
}

// Run evaluates prog against inputs, writing the combined balanced
// residue into scratch[0]. len(scratch) must be at least LocalSize(prog)
// and len(inputs) must equal the number of moduli passed to Compile.
// Run panics if prog.Good is false, since that indicates a programming
// error (distinct primes are always pairwise coprime in normal flow).
func Run(scratch []*big.Int, prog *Prog, inputs []*big.Int) {
	if !prog.Good {
		panic("crt: Run called on a program with Good == false")
	}
	if len(scratch) < prog.LocalSize {
		panic("crt: scratch buffer shorter than LocalSize(prog)")
	}

	fetch := func(idx int) *big.Int {
		if idx < 0 {
			return inputs[-idx-1]
		}
		return scratch[idx]
	}

	t1 := scratch[prog.Temp1Loc]
	t2 := scratch[prog.Temp2Loc]

	for _, instr := range prog.Instr {
		B := fetch(instr.BIdx)
		C := fetch(instr.CIdx)

		t1.Sub(B, C)
		t2.Set(bigz.Mul(instr.Idem, t1))
		t1.Sub(B, t2)

		scratch[instr.AIdx].Set(bigz.Mods(t1, instr.Modulus))
	}
}

// NewScratch allocates a scratch buffer of the size Run requires for
// prog, with every slot initialized to zero.
func NewScratch(prog *Prog) []*big.Int {
	s := make([]*big.Int, prog.LocalSize)
	for i := range s {
		s[i] = new(big.Int)
	}
	return s
}
