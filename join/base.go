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

package join

import (
	"sync"

	"github.com/ajroetker/go-polygcd/crt"
	"github.com/ajroetker/go-polygcd/poly"
)

// kind selects which of the three exponent cursors a claim serves.
type kind int

const (
	kindG kind = iota
	kindAbar
	kindBbar
)

// Base is the state every join worker shares: three strictly
// decreasing exponent cursors and the compiled CRT program and input
// images every worker reads (never writes).
type Base struct {
	mu                     sync.Mutex
	gExp, abarExp, bbarExp int

	Prog       *crt.Prog
	GImages    []*poly.PolyU
	AbarImages []*poly.PolyU
	BbarImages []*poly.PolyU
}

// NewBase starts a join Base over prog (compiled over the surviving
// per-master moduli, in the same order as each image slice) and the
// three families of per-prime images to merge.
func NewBase(prog *crt.Prog, gImages, abarImages, bbarImages []*poly.PolyU) *Base {
	return &Base{
		gExp:       leadExpOf(gImages),
		abarExp:    leadExpOf(abarImages),
		bbarExp:    leadExpOf(bbarImages),
		Prog:       prog,
		GImages:    gImages,
		AbarImages: abarImages,
		BbarImages: bbarImages,
	}
}

func leadExpOf(images []*poly.PolyU) int {
	e := -1
	for _, im := range images {
		if im == nil {
			continue
		}
		if le := im.LeadExp(); le > e {
			e = le
		}
	}
	return e
}

// claim takes the highest still-unclaimed exponent, preferring G over
// Abar over Bbar, and decrements that cursor. ok is false once all
// three cursors have fallen below zero.
func (b *Base) claim() (k kind, exp int, ok bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch {
	case b.gExp >= 0:
		exp = b.gExp
		b.gExp--
		return kindG, exp, true
	case b.abarExp >= 0:
		exp = b.abarExp
		b.abarExp--
		return kindAbar, exp, true
	case b.bbarExp >= 0:
		exp = b.bbarExp
		b.bbarExp--
		return kindBbar, exp, true
	default:
		return 0, 0, false
	}
}

func nvarsOf(images []*poly.PolyU) int {
	for _, im := range images {
		if im != nil {
			return im.NVars
		}
	}
	return 0
}
