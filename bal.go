// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ternary

// bal is a signed integer x of the form
//
//   x = x[n-1]*3^(n-1) + x[n-2]*3^(n-2) + ... + x[1]*3 + x[0]
//
// with x[i] in {-1, 0, +1}, stored least significant digit first in a slice
// of length n.
//
// A number is normalized if the slice contains no leading (most significant)
// Zero digits. During arithmetic operations, denormalized values may occur
// but are always normalized before returning the final result. The
// normalized representation of 0 is the empty or nil slice (length = 0).
//
// Operands are never modified. Results are written to the receiver z, which
// must not alias an operand; callers pass nil to get a fresh slice.
type bal []Trit

func (z bal) make(n int) bal {
	if n <= cap(z) {
		return z[:n]
	}
	if n == 1 {
		return make(bal, 1)
	}
	const e = 4 // extra capacity
	return make(bal, n, n+e)
}

func (z bal) set(x bal) bal {
	z = z.make(len(x))
	copy(z, x)
	return z
}

// norm truncates all leading Zero digits.
func (z bal) norm() bal {
	i := len(z)
	for i > 0 && z[i-1] == Zero {
		i--
	}
	return z[0:i]
}

// canon collapses a single level of redundant leading Zero.
func (z bal) canon() bal {
	if n := len(z); n > 0 && z[n-1] == Zero {
		return z[:n-1]
	}
	return z
}

func (x bal) isNorm() bool {
	return len(x) == 0 || x[len(x)-1] != Zero
}

// at returns the i-th digit of x, or Zero past its most significant digit.
func (x bal) at(i int) Trit {
	if i < len(x) {
		return x[i]
	}
	return Zero
}

// sign returns -1, 0 or +1. x must be normalized.
func (x bal) sign() int {
	if len(x) == 0 {
		return 0
	}
	return int(x[len(x)-1])
}

// cmp compares x and y.
//
// Digits are visited from the least significant end and a difference found
// at a more significant position overrides any difference found below it.
func (x bal) cmp(y bal) (r Ordering) {
	n := len(x)
	if len(y) > n {
		n = len(y)
	}
	for i := 0; i < n; i++ {
		if o := cmpTT(x.at(i), y.at(i)); o != Equal {
			r = o
		}
	}
	return r
}

// equal reports whether x and y are digit-for-digit identical.
func (x bal) equal(y bal) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}

// triple sets z = 3*x. It is equivalent to prepending a Zero digit, except
// that 3*0 stays 0.
func (z bal) triple(x bal) bal {
	x = x.norm()
	if len(x) == 0 {
		return z[:0]
	}
	z = z.make(len(x) + 1)
	z[0] = Zero
	copy(z[1:], x)
	return z
}

// shlAdd sets z = 3*x + d.
func (z bal) shlAdd(x bal, d Trit) bal {
	z = z.make(len(x) + 1)
	z[0] = d
	copy(z[1:], x)
	return z.norm()
}

// rev returns the digits of x, most significant first.
func (x bal) rev() []Trit {
	r := make([]Trit, len(x))
	for i, d := range x {
		r[len(x)-1-i] = d
	}
	return r
}

func (z bal) neg(x bal) bal {
	z = z.make(len(x))
	for i, d := range x {
		z[i] = -d
	}
	return z.norm()
}

// abs sets z = |x|, using the sign reported by comparing x against zero.
func (z bal) abs(x bal) bal {
	if x.cmp(nil) == Less {
		return z.neg(x)
	}
	return z.set(x).norm()
}

// succ sets z = x + 1.
func (z bal) succ(x bal) bal {
	z = z.make(len(x) + 1)
	copy(z, x)
	z[len(x)] = Zero
	i := 0
	for z[i] == Plus {
		z[i] = Minus
		i++
	}
	z[i]++
	return z.norm()
}

// pred sets z = x - 1.
func (z bal) pred(x bal) bal {
	z = z.make(len(x) + 1)
	copy(z, x)
	z[len(x)] = Zero
	i := 0
	for z[i] == Minus {
		z[i] = Plus
		i++
	}
	z[i]--
	return z.norm()
}

// add sets z = x + y.
func (z bal) add(x, y bal) bal {
	m, n := len(x), len(y)
	if m < n {
		x, y = y, x
		m, n = n, m
	}
	if n == 0 {
		return z.set(x).norm()
	}
	z = z.make(m + 1)
	var c Trit
	for i := 0; i < m; i++ {
		z[i], c = addTT(x[i], y.at(i), c)
	}
	z[m] = c
	return z.norm()
}

// sub sets z = x - y.
func (z bal) sub(x, y bal) bal {
	m := len(x)
	if len(y) > m {
		m = len(y)
	}
	if len(y) == 0 {
		return z.set(x).norm()
	}
	z = z.make(m + 1)
	var c Trit
	for i := 0; i < m; i++ {
		z[i], c = addTT(x.at(i), -y.at(i), c)
	}
	z[m] = c
	return z.norm()
}

// mul sets z = x * y.
//
// The digits of y drive the product: x is tripled once per position and
// added to or subtracted from the running sum according to the digit.
func (z bal) mul(x, y bal) bal {
	x, y = x.norm(), y.norm()
	if len(x) == 0 || len(y) == 0 {
		return z[:0]
	}
	var acc bal
	shifted := x
	for i, d := range y {
		if i > 0 {
			shifted = bal(nil).triple(shifted)
		}
		switch d {
		case Plus:
			acc = bal(nil).add(acc, shifted)
		case Minus:
			acc = bal(nil).sub(acc, shifted)
		}
	}
	return z.set(acc)
}

// balTrial is a candidate division step: a partial remainder together with
// the quotient digit that produced it.
type balTrial struct {
	rem   bal
	digit Trit
}

// closer returns the trial whose remainder has the smallest magnitude. On a
// tie, the trial whose remainder sign differs from next, the sign of the
// next non-zero dividend digit, wins; if that does not settle it, a is kept.
func closer(a, b balTrial, next Trit) balTrial {
	o := bal(nil).abs(b.rem).cmp(bal(nil).abs(a.rem))
	if o == Equal && next != Zero && a.rem.sign() == int(next) && b.rem.sign() != int(next) {
		o = Less
	}
	return Select(o, b, a, a)
}

// quoRem returns the remainder and quotient of x / y. y must not be zero.
//
// This is restoring long division over the digits of x taken most
// significant first. At each step the running remainder r is tripled and
// the current digit folded in, and the quotient digit among 0, +1 and -1
// that leaves the smallest remainder is kept. A tie leaves r = ±y/2, which
// only stays bounded if the next non-zero digit has the opposite sign;
// closer settles ties accordingly so that |r| <= |y|/2 throughout.
func (x bal) quoRem(y bal) (r, q bal) {
	y = y.norm()
	if len(y) == 0 {
		panic("ternary: division by zero")
	}
	digits := x.rev()
	ahead := make([]Trit, len(digits))
	var nz Trit
	for i := len(digits) - 1; i >= 0; i-- {
		ahead[i] = nz
		if digits[i] != Zero {
			nz = digits[i]
		}
	}
	for i, d := range digits {
		t := bal(nil).shlAdd(r, d)
		best := balTrial{t, Zero}
		best = closer(best, balTrial{bal(nil).sub(t, y), Plus}, ahead[i])
		best = closer(best, balTrial{bal(nil).add(t, y), Minus}, ahead[i])
		r = best.rem
		q = bal(nil).shlAdd(q, best.digit)
	}
	return r.norm(), q.norm()
}
