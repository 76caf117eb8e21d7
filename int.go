// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ternary

// An Int is a signed integer represented in balanced ternary, or the
// Undefined marker.
//
// Int values are immutable: every operation returns a new Int and operands
// are never modified, so Ints may be freely copied and shared between
// goroutines. The zero value for an Int is 0.
//
// Undefined is absorbing: any operation with an Undefined operand returns
// Undefined. Division or remainder by zero return Undefined.
type Int struct {
	mant  bal
	undef bool
}

// UndefinedInt returns the Undefined Int.
func UndefinedInt() Int {
	return Int{undef: true}
}

// FromTrits returns the Int whose digits, least significant first, are
// digits. The digits are kept as given, so the result may carry redundant
// leading Zero digits; see Canonical.
//
// FromTrits panics if a digit is not one of Minus, Zero or Plus.
func FromTrits(digits ...Trit) Int {
	for _, d := range digits {
		if d < Minus || d > Plus {
			panic(Error.New("invalid balanced trit %d", int8(d)))
		}
	}
	return Int{mant: bal(nil).set(digits)}
}

func (x Int) norm() Int {
	if x.undef {
		return x
	}
	return Int{mant: x.mant.norm()}
}

// IsUndefined reports whether x is Undefined.
func (x Int) IsUndefined() bool {
	return x.undef
}

// IsZero reports whether x is 0. It returns false for Undefined.
func (x Int) IsZero() bool {
	return !x.undef && len(x.mant.norm()) == 0
}

// Sign returns -1, 0 or +1 depending on the sign of x.
// It panics with ErrUndefined if x is Undefined.
func (x Int) Sign() int {
	if x.undef {
		panic(ErrUndefined)
	}
	return x.mant.norm().sign()
}

// Len returns the number of digits of x, redundant leading zeros included.
func (x Int) Len() int {
	return len(x.mant)
}

// Trits returns a copy of the digits of x, least significant first.
// It returns nil for 0 and Undefined.
func (x Int) Trits() []Trit {
	if x.undef || len(x.mant) == 0 {
		return nil
	}
	return bal(nil).set(x.mant)
}

// Canonical collapses one redundant leading Zero digit of x, if any.
// Values returned by arithmetic operations are always canonical.
//
// Canonical is idempotent for values with at most one redundant leading Zero:
// FromTrits(Zero, Zero).Canonical() is still not canonical.
func (x Int) Canonical() Int {
	if x.undef {
		return x
	}
	return Int{mant: x.mant.canon()}
}

// IsCanonical reports whether x has no redundant leading Zero digit.
// Undefined is canonical.
func (x Int) IsCanonical() bool {
	return x.undef || x.mant.isNorm()
}

// Equal reports whether x and y are structurally identical: both Undefined,
// or both with the same digits. For canonical values this is the same as
// numeric equality.
func (x Int) Equal(y Int) bool {
	if x.undef || y.undef {
		return x.undef == y.undef
	}
	return x.mant.equal(y.mant)
}

// Cmp compares x and y. It panics with ErrUndefined if either is Undefined.
func (x Int) Cmp(y Int) Ordering {
	if x.undef || y.undef {
		panic(ErrUndefined)
	}
	return x.mant.cmp(y.mant)
}

// Succ returns x + 1.
func (x Int) Succ() Int {
	if x.undef {
		return x
	}
	return Int{mant: bal(nil).succ(x.mant)}
}

// Pred returns x - 1.
func (x Int) Pred() Int {
	if x.undef {
		return x
	}
	return Int{mant: bal(nil).pred(x.mant)}
}

// Neg returns -x.
func (x Int) Neg() Int {
	if x.undef {
		return x
	}
	return Int{mant: bal(nil).neg(x.mant)}
}

// Abs returns |x|.
func (x Int) Abs() Int {
	if x.undef {
		return x
	}
	return Select(x.mant.cmp(nil), x.Neg(), x.norm(), x.norm())
}

// Triple returns 3*x.
func (x Int) Triple() Int {
	if x.undef {
		return x
	}
	return Int{mant: bal(nil).triple(x.mant)}
}

// Add returns x + y.
func (x Int) Add(y Int) Int {
	if x.undef || y.undef {
		return UndefinedInt()
	}
	return Int{mant: bal(nil).add(x.mant, y.mant)}
}

// Sub returns x - y.
func (x Int) Sub(y Int) Int {
	if x.undef || y.undef {
		return UndefinedInt()
	}
	return Int{mant: bal(nil).sub(x.mant, y.mant)}
}

// Mul returns x * y.
func (x Int) Mul(y Int) Int {
	if x.undef || y.undef {
		return UndefinedInt()
	}
	return Int{mant: bal(nil).mul(x.mant, y.mant)}
}

// QuoRem returns the pair (remainder, quotient) of x / y such that
//
//   x = quotient*y + remainder
//
// with |remainder| <= |y|/2. The quotient is rounded to the nearest integer,
// which is neither truncated nor floored division. Both elements are
// Undefined if y is zero or if either operand is Undefined.
func (x Int) QuoRem(y Int) Pair[Int] {
	if x.undef || y.undef || y.IsZero() {
		return MakePair(UndefinedInt(), UndefinedInt())
	}
	r, q := x.mant.quoRem(y.mant)
	return MakePair(Int{mant: r}, Int{mant: q})
}

// Div returns the quotient of x / y as described in QuoRem.
func (x Int) Div(y Int) Int {
	return x.QuoRem(y).Second()
}

// Rem returns the remainder of x / y as described in QuoRem.
func (x Int) Rem(y Int) Int {
	return x.QuoRem(y).First()
}

// Nat converts x to an unsigned Nat. The result is Undefined if x is
// negative or Undefined.
func (x Int) Nat() Nat {
	if x.undef || x.mant.cmp(nil) == Less {
		return UndefinedNat()
	}
	return Nat{mant: x.mant.norm().nat()}
}
