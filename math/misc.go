// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math provides integer functions for ternary numbers.
package math

import (
	"github.com/db47h/ternary"
)

// one returns the constant 1 of type T. The zero value of any
// ternary.Number is 0.
func one[T ternary.Number[T]]() T {
	var z T
	return z.Succ()
}

// Pow returns x**n. Pow(x, 0) is 1 for any defined x, including 0.
func Pow[T ternary.Number[T]](x T, n uint64) T {
	if x.IsUndefined() {
		return x
	}
	if n == 0 {
		return one[T]()
	}
	z := x
	y := one[T]()
	for n > 1 {
		if n%2 != 0 {
			y = y.Mul(z)
		}
		z = z.Mul(z)
		if z.IsZero() {
			return z
		}
		n /= 2
	}
	return z.Mul(y)
}

// Square returns x×x.
func Square[T ternary.Number[T]](x T) T {
	return x.Mul(x)
}

// Factorial returns n!.
func Factorial(n uint64) ternary.Nat {
	z := ternary.NewNat(1)
	for i := uint64(2); i <= n; i++ {
		z = z.Mul(ternary.NewNat(i))
	}
	return z
}
