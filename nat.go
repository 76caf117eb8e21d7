// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ternary

// nat is an unsigned integer x of the form
//
//   x = x[n-1]*3^(n-1) + x[n-2]*3^(n-2) + ... + x[1]*3 + x[0]
//
// with x[i] in {0, 1, 2}, least significant digit first. Normalization and
// aliasing rules are the same as for bal.
type nat []UTrit

func (z nat) make(n int) nat {
	if n <= cap(z) {
		return z[:n]
	}
	if n == 1 {
		return make(nat, 1)
	}
	const e = 4 // extra capacity
	return make(nat, n, n+e)
}

func (z nat) set(x nat) nat {
	z = z.make(len(x))
	copy(z, x)
	return z
}

func (z nat) norm() nat {
	i := len(z)
	for i > 0 && z[i-1] == UZero {
		i--
	}
	return z[0:i]
}

func (z nat) canon() nat {
	if n := len(z); n > 0 && z[n-1] == UZero {
		return z[:n-1]
	}
	return z
}

func (x nat) isNorm() bool {
	return len(x) == 0 || x[len(x)-1] != UZero
}

func (x nat) at(i int) UTrit {
	if i < len(x) {
		return x[i]
	}
	return UZero
}

// cmp compares x and y, a more significant difference overriding any
// difference found below it.
func (x nat) cmp(y nat) (r Ordering) {
	n := len(x)
	if len(y) > n {
		n = len(y)
	}
	for i := 0; i < n; i++ {
		if o := cmpUU(x.at(i), y.at(i)); o != Equal {
			r = o
		}
	}
	return r
}

func (x nat) equal(y nat) bool {
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

func (z nat) triple(x nat) nat {
	x = x.norm()
	if len(x) == 0 {
		return z[:0]
	}
	z = z.make(len(x) + 1)
	z[0] = UZero
	copy(z[1:], x)
	return z
}

// shlAdd sets z = 3*x + d.
func (z nat) shlAdd(x nat, d UTrit) nat {
	z = z.make(len(x) + 1)
	z[0] = d
	copy(z[1:], x)
	return z.norm()
}

func (x nat) rev() []UTrit {
	r := make([]UTrit, len(x))
	for i, d := range x {
		r[len(x)-1-i] = d
	}
	return r
}

func (z nat) succ(x nat) nat {
	z = z.make(len(x) + 1)
	copy(z, x)
	z[len(x)] = UZero
	i := 0
	for z[i] == UTwo {
		z[i] = UZero
		i++
	}
	z[i]++
	return z.norm()
}

// pred sets z = x - 1. It reports false if x is zero.
func (z nat) pred(x nat) (nat, bool) {
	x = x.norm()
	if len(x) == 0 {
		return z[:0], false
	}
	z = z.set(x)
	i := 0
	for z[i] == UZero {
		z[i] = UTwo
		i++
	}
	z[i]--
	return z.norm(), true
}

func (z nat) add(x, y nat) nat {
	m, n := len(x), len(y)
	if m < n {
		x, y = y, x
		m, n = n, m
	}
	if n == 0 {
		return z.set(x).norm()
	}
	z = z.make(m + 1)
	var c UTrit
	for i := 0; i < m; i++ {
		z[i], c = addUU(x[i], y.at(i), c)
	}
	z[m] = c
	return z.norm()
}

// sub sets z = x - y. It reports false if y > x, in which case z is
// meaningless.
func (z nat) sub(x, y nat) (nat, bool) {
	m := len(x)
	if len(y) > m {
		m = len(y)
	}
	z = z.make(m)
	var b UTrit
	for i := 0; i < m; i++ {
		z[i], b = subUU(x.at(i), y.at(i), b)
	}
	if b != 0 {
		return z[:0], false
	}
	return z.norm(), true
}

// mul sets z = x * y, driven by the digits of y.
func (z nat) mul(x, y nat) nat {
	x, y = x.norm(), y.norm()
	if len(x) == 0 || len(y) == 0 {
		return z[:0]
	}
	var acc nat
	shifted := x
	for i, d := range y {
		if i > 0 {
			shifted = nat(nil).triple(shifted)
		}
		for ; d > UZero; d-- {
			acc = nat(nil).add(acc, shifted)
		}
	}
	return z.set(acc)
}

// quoRem returns the remainder and quotient of x / y. y must not be zero.
//
// Digits of x are consumed most significant first. The quotient digit is
// the largest of 2, 1, 0 whose trial subtraction does not underflow.
func (x nat) quoRem(y nat) (r, q nat) {
	y = y.norm()
	if len(y) == 0 {
		panic("ternary: division by zero")
	}
	for _, d := range x.rev() {
		t := nat(nil).shlAdd(r, d)
		qd := UZero
		r = t
		if t1, ok := nat(nil).sub(t, y); ok {
			r, qd = t1, UOne
			if t2, ok := nat(nil).sub(t1, y); ok {
				r, qd = t2, UTwo
			}
		}
		q = nat(nil).shlAdd(q, qd)
	}
	return r.norm(), q.norm()
}

// bal converts x to balanced ternary.
func (x nat) bal() bal {
	var z bal
	for _, d := range x.rev() {
		switch d {
		case UTwo:
			// 3z + 2 = 3(z+1) - 1
			z = bal(nil).shlAdd(bal(nil).succ(z), Minus)
		default:
			z = bal(nil).shlAdd(z, Trit(d))
		}
	}
	return z
}

// nat converts a non-negative x to unsigned ternary.
func (x bal) nat() nat {
	var z nat
	for _, d := range x.rev() {
		switch d {
		case Minus:
			// 3z - 1 = 3(z-1) + 2; z > 0 for every prefix of a positive x.
			z, _ = nat(nil).pred(z)
			z = nat(nil).shlAdd(z, UTwo)
		default:
			z = nat(nil).shlAdd(z, UTrit(d))
		}
	}
	return z
}
