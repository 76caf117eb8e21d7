// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import "github.com/db47h/ternary"

// euclid returns a greatest common divisor of x and y, up to sign.
// Any remainder with |r| < |y| makes progress, balanced or truncated.
func euclid[T ternary.Number[T]](x, y T) T {
	for !y.IsZero() && !y.IsUndefined() {
		x, y = y, x.Rem(y)
	}
	if y.IsUndefined() {
		return y
	}
	return x
}

// GCD returns the greatest common divisor of x and y. GCD(0, 0) is 0.
func GCD(x, y ternary.Nat) ternary.Nat {
	return euclid(x, y)
}

// GCDInt returns the non-negative greatest common divisor of x and y.
func GCDInt(x, y ternary.Int) ternary.Int {
	return euclid(x, y).Abs()
}

// LCM returns the least common multiple of x and y. LCM(x, 0) is 0.
func LCM(x, y ternary.Nat) ternary.Nat {
	if x.IsZero() || y.IsZero() {
		return ternary.Nat{}.Mul(x).Mul(y)
	}
	return x.Div(GCD(x, y)).Mul(y)
}
