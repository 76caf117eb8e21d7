// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ternary

// A Nat is a non-negative integer represented in unsigned ternary, or the
// Undefined marker.
//
// Nat values follow the same rules as Int: they are immutable, Undefined is
// absorbing, and the zero value is 0. Subtraction is partial: an operation
// whose true result would be negative returns Undefined.
type Nat struct {
	mant  nat
	undef bool
}

// UndefinedNat returns the Undefined Nat.
func UndefinedNat() Nat {
	return Nat{undef: true}
}

// FromUTrits returns the Nat whose digits, least significant first, are
// digits, kept exactly as given.
//
// FromUTrits panics if a digit is greater than UTwo.
func FromUTrits(digits ...UTrit) Nat {
	for _, d := range digits {
		if d > UTwo {
			panic(Error.New("invalid unsigned trit %d", uint8(d)))
		}
	}
	return Nat{mant: nat(nil).set(digits)}
}

func (x Nat) norm() Nat {
	if x.undef {
		return x
	}
	return Nat{mant: x.mant.norm()}
}

// IsUndefined reports whether x is Undefined.
func (x Nat) IsUndefined() bool {
	return x.undef
}

// IsZero reports whether x is 0. It returns false for Undefined.
func (x Nat) IsZero() bool {
	return !x.undef && len(x.mant.norm()) == 0
}

// Len returns the number of digits of x, redundant leading zeros included.
func (x Nat) Len() int {
	return len(x.mant)
}

// UTrits returns a copy of the digits of x, least significant first.
// It returns nil for 0 and Undefined.
func (x Nat) UTrits() []UTrit {
	if x.undef || len(x.mant) == 0 {
		return nil
	}
	return nat(nil).set(x.mant)
}

// Canonical collapses one redundant leading zero digit of x, if any. It is
// idempotent for values with at most one redundant leading zero.
func (x Nat) Canonical() Nat {
	if x.undef {
		return x
	}
	return Nat{mant: x.mant.canon()}
}

// IsCanonical reports whether x has no redundant leading zero digit.
func (x Nat) IsCanonical() bool {
	return x.undef || x.mant.isNorm()
}

// Equal reports whether x and y are structurally identical.
func (x Nat) Equal(y Nat) bool {
	if x.undef || y.undef {
		return x.undef == y.undef
	}
	return x.mant.equal(y.mant)
}

// Cmp compares x and y. It panics with ErrUndefined if either is Undefined.
func (x Nat) Cmp(y Nat) Ordering {
	if x.undef || y.undef {
		panic(ErrUndefined)
	}
	return x.mant.cmp(y.mant)
}

// Succ returns x + 1.
func (x Nat) Succ() Nat {
	if x.undef {
		return x
	}
	return Nat{mant: nat(nil).succ(x.mant)}
}

// Pred returns x - 1, or Undefined if x is 0.
func (x Nat) Pred() Nat {
	if x.undef {
		return x
	}
	z, ok := nat(nil).pred(x.mant)
	if !ok {
		return UndefinedNat()
	}
	return Nat{mant: z}
}

// DoublePred returns x - 2, or Undefined if x < 2.
func (x Nat) DoublePred() Nat {
	return x.Pred().Pred()
}

// Triple returns 3*x.
func (x Nat) Triple() Nat {
	if x.undef {
		return x
	}
	return Nat{mant: nat(nil).triple(x.mant)}
}

// Add returns x + y.
func (x Nat) Add(y Nat) Nat {
	if x.undef || y.undef {
		return UndefinedNat()
	}
	return Nat{mant: nat(nil).add(x.mant, y.mant)}
}

// Sub returns x - y, or Undefined if y > x.
func (x Nat) Sub(y Nat) Nat {
	if x.undef || y.undef {
		return UndefinedNat()
	}
	z, ok := nat(nil).sub(x.mant, y.mant)
	if !ok {
		return UndefinedNat()
	}
	return Nat{mant: z}
}

// Mul returns x * y.
func (x Nat) Mul(y Nat) Nat {
	if x.undef || y.undef {
		return UndefinedNat()
	}
	return Nat{mant: nat(nil).mul(x.mant, y.mant)}
}

// QuoRem returns the pair (remainder, quotient) of the truncated division
// x / y. Both elements are Undefined if y is zero or if either operand is
// Undefined.
func (x Nat) QuoRem(y Nat) Pair[Nat] {
	if x.undef || y.undef || y.IsZero() {
		return MakePair(UndefinedNat(), UndefinedNat())
	}
	r, q := x.mant.quoRem(y.mant)
	return MakePair(Nat{mant: r}, Nat{mant: q})
}

// Div returns the truncated quotient x / y.
func (x Nat) Div(y Nat) Nat {
	return x.QuoRem(y).Second()
}

// Rem returns the remainder x % y.
func (x Nat) Rem(y Nat) Nat {
	return x.QuoRem(y).First()
}

// Int converts x to a balanced ternary Int.
func (x Nat) Int() Int {
	if x.undef {
		return UndefinedInt()
	}
	return Int{mant: x.mant.bal()}
}
