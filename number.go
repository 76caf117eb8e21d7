// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ternary

import (
	"fmt"
	"math/big"
)

// Number is the set of operations shared by Int and Nat. It allows code to
// be written once for both representations:
//
//   func Square[T ternary.Number[T]](x T) T { return x.Mul(x) }
//
// The zero value of either type is 0.
type Number[T any] interface {
	fmt.Stringer
	fmt.Formatter

	IsUndefined() bool
	IsZero() bool
	Equal(y T) bool
	Cmp(y T) Ordering

	Succ() T
	Pred() T
	Triple() T
	Add(y T) T
	Sub(y T) T
	Mul(y T) T
	Div(y T) T
	Rem(y T) T
	QuoRem(y T) Pair[T]

	BigInt() (*big.Int, error)
	Text(n Notation) string
}

var (
	_ Number[Int] = Int{}
	_ Number[Nat] = Nat{}
)
