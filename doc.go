// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package ternary implements exact arbitrary-precision integer arithmetic on
base 3 digit sequences.

Two representations are provided:

    Int   signed integers in balanced ternary, digits -1, 0, +1
    Nat   non-negative integers in unsigned ternary, digits 0, 1, 2

Digits are stored least significant first. All arithmetic operations are
performed directly on the digits, without conversion to or from binary.

Values are immutable and the zero value denotes 0, so new values can be
declared in the usual ways without further initialization:

    var x ternary.Int          // x is 0
    y := ternary.NewInt(-7)    // y is -7, "-+-" in balanced ternary

Operations are methods that return their result:

    func (x Int) Unary() Int         // z = unary x
    func (x Int) Binary(y Int) Int   // z = x binary y
    func (x Int) IsZero() bool       // predicate on x

so that expressions are written as call chains:

    z := x.Mul(y).Add(ternary.NewInt(1))

Undefined

Some operations have no numeric result: division or remainder by zero, and
unsigned subtraction whose result would be negative. They return the
Undefined value instead. Undefined is absorbing: every operation with an
Undefined operand returns Undefined, so a failure anywhere in a chain of
operations is visible in the final result. Use IsUndefined to check a
result; Int64, Uint64 and BigInt return ErrUndefined for it. The context
sub-package can be used to find out why a computation became Undefined.

Canonical form

A digit sequence is canonical if its most significant digit is not zero; 0
is the empty sequence. Every arithmetic operation returns canonical values,
so that two canonical values are structurally equal (Equal) if and only if
they are numerically equal (Cmp). Non-canonical values can only be built with
FromTrits or FromUTrits; Canonical collapses one redundant leading zero.

Division

Nat division is truncated division. Int division selects each quotient
digit from {0, +1, -1} so as to minimize the magnitude of the partial
remainder; the result satisfies x = q*y + r with |r| <= |y|/2, which
coincides with neither truncated nor floored division:

    ternary.NewInt(-9).QuoRem(ternary.NewInt(5))   // (r, q) = (1, -2)
*/
package ternary
