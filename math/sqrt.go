// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import "github.com/db47h/ternary"

// Sqrt returns ⌊√x⌋, computed with Newton's method.
func Sqrt(x ternary.Nat) ternary.Nat {
	if x.IsUndefined() || x.Cmp(ternary.SmallNat(2)) == ternary.Less {
		return x
	}
	two := ternary.SmallNat(2)
	// z0 = ⌈x/2⌉ >= ⌊√x⌋ for x >= 2; the sequence then decreases to ⌊√x⌋.
	y := x
	z := x.Succ().Div(two)
	for z.Cmp(y) == ternary.Less {
		y = z
		z = z.Add(x.Div(z)).Div(two)
	}
	return y
}

// SqrtInt is like Sqrt for a signed x. The result is Undefined if x is
// negative.
func SqrtInt(x ternary.Int) ternary.Int {
	return Sqrt(x.Nat()).Int()
}
