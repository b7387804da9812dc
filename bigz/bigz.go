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

package bigz

import (
	"math/big"

	"github.com/remyoudompheng/bigfft"
)

// Mul returns x*y, computed by bigfft, which picks schoolbook or an
// FFT-based algorithm internally depending on operand size. The CRT
// program multiplies together an ever-growing chain of moduli, so by
// the last few merges the operands are exactly the large-integer case
// bigfft exists for.
func Mul(x, y *big.Int) *big.Int {
	return bigfft.Mul(x, y)
}

// MulUint64 returns x*u.
func MulUint64(x *big.Int, u uint64) *big.Int {
	return new(big.Int).Mul(x, new(big.Int).SetUint64(u))
}

// Mul2Exp returns x * 2^n.
func Mul2Exp(x *big.Int, n uint) *big.Int {
	return new(big.Int).Lsh(x, n)
}

// Mods returns the balanced residue of a modulo m: the unique integer
// r with a ≡ r (mod m) and -m/2 < r ≤ m/2 (for m > 0).
func Mods(a, m *big.Int) *big.Int {
	r := new(big.Int).Mod(a, m)
	half := new(big.Int).Rsh(m, 1)
	if r.Cmp(half) > 0 {
		r.Sub(r, m)
	}
	return r
}

// FdivUI returns z mod p (floor division, nonnegative) as a uint64,
// for a word-sized p.
func FdivUI(z *big.Int, p uint64) uint64 {
	mp := new(big.Int).SetUint64(p)
	r := new(big.Int).Mod(z, mp)
	return r.Uint64()
}

// ClogUI returns the smallest n ≥ 0 such that p^n ≥ z, for z > 0 and
// p ≥ 2.
func ClogUI(z *big.Int, p uint64) int64 {
	if z.Sign() <= 0 {
		return 0
	}
	var n int64
	bound := big.NewInt(1)
	mp := new(big.Int).SetUint64(p)
	for bound.Cmp(z) < 0 {
		bound.Mul(bound, mp)
		n++
	}
	return n
}

// Bits returns the bit length of z (0 for z == 0).
func Bits(z *big.Int) uint {
	return uint(z.BitLen())
}

// InvMod returns r such that r*a ≡ 1 (mod n), and false if a has no
// inverse mod n (gcd(a, n) != 1).
func InvMod(a, n *big.Int) (*big.Int, bool) {
	r := new(big.Int).ModInverse(a, n)
	if r == nil {
		return nil, false
	}
	return r, true
}

// CmpAbs compares |a| to |b|.
func CmpAbs(a, b *big.Int) int {
	return new(big.Int).Abs(a).Cmp(new(big.Int).Abs(b))
}
