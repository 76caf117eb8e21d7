// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements conversions between ternary numbers, native integers,
// big.Int and strings.

package ternary

import (
	"math/big"
	"strings"
)

const (
	// largest digit counts whose values always fit an int64 ((3^39-1)/2 <
	// 2^63) and a uint64 (3^40-1 < 2^64).
	maxInt64Trits  = 39
	maxUint64Trits = 40

	undefinedText = "undefined"
)

var (
	bigOne   = big.NewInt(1)
	bigThree = big.NewInt(3)
)

// NewInt returns the balanced ternary representation of x.
func NewInt(x int64) Int {
	if -MaxSmall <= x && x <= MaxSmall {
		return SmallInt(int(x))
	}
	return Int{mant: balFromInt64(x)}
}

// NewNat returns the unsigned ternary representation of x.
func NewNat(x uint64) Nat {
	if x <= MaxSmall {
		return SmallNat(uint(x))
	}
	return Nat{mant: natFromUint64(x)}
}

// NewIntFromBig returns the balanced ternary representation of x.
func NewIntFromBig(x *big.Int) Int {
	var z bal
	u := new(big.Int).Abs(x)
	m := new(big.Int)
	for u.Sign() != 0 {
		u.QuoRem(u, bigThree, m)
		if m.Int64() == 2 {
			z = append(z, Minus)
			u.Add(u, bigOne)
		} else {
			z = append(z, Trit(m.Int64()))
		}
	}
	if x.Sign() < 0 {
		z = bal(nil).neg(z)
	}
	return Int{mant: z}
}

// NewNatFromBig returns the unsigned ternary representation of x. It fails
// if x is negative.
func NewNatFromBig(x *big.Int) (Nat, error) {
	if x.Sign() < 0 {
		return Nat{}, Error.New("negative value %s", x)
	}
	var z nat
	u := new(big.Int).Set(x)
	m := new(big.Int)
	for u.Sign() != 0 {
		u.QuoRem(u, bigThree, m)
		z = append(z, UTrit(m.Int64()))
	}
	return Nat{mant: z}, nil
}

func balFromInt64(x int64) bal {
	u := uint64(x)
	if x < 0 {
		u = -u
	}
	var z bal
	for u != 0 {
		d := u % 3
		u /= 3
		if d == 2 {
			z = append(z, Minus)
			u++
		} else {
			z = append(z, Trit(d))
		}
	}
	if x < 0 {
		for i := range z {
			z[i] = -z[i]
		}
	}
	return z
}

func natFromUint64(x uint64) nat {
	var z nat
	for ; x != 0; x /= 3 {
		z = append(z, UTrit(x%3))
	}
	return z
}

func (x bal) big() *big.Int {
	z := new(big.Int)
	d := new(big.Int)
	for i := len(x) - 1; i >= 0; i-- {
		z.Mul(z, bigThree)
		z.Add(z, d.SetInt64(int64(x[i])))
	}
	return z
}

func (x nat) big() *big.Int {
	z := new(big.Int)
	d := new(big.Int)
	for i := len(x) - 1; i >= 0; i-- {
		z.Mul(z, bigThree)
		z.Add(z, d.SetInt64(int64(x[i])))
	}
	return z
}

// Int64 returns the native value of x. It returns ErrUndefined if x is
// Undefined, and an error of class Error if x does not fit an int64.
func (x Int) Int64() (int64, error) {
	if x.undef {
		return 0, ErrUndefined
	}
	m := x.mant.norm()
	if len(m) <= maxInt64Trits {
		var v int64
		for i := len(m) - 1; i >= 0; i-- {
			v = 3*v + int64(m[i])
		}
		return v, nil
	}
	b := m.big()
	if !b.IsInt64() {
		return 0, Error.New("%s overflows int64", b)
	}
	return b.Int64(), nil
}

// MustInt64 is like Int64 but panics on failure.
func (x Int) MustInt64() int64 {
	v, err := x.Int64()
	if err != nil {
		panic(err)
	}
	return v
}

// BigInt returns the value of x as a big.Int. It returns ErrUndefined if x
// is Undefined.
func (x Int) BigInt() (*big.Int, error) {
	if x.undef {
		return nil, ErrUndefined
	}
	return x.mant.big(), nil
}

// Uint64 returns the native value of x. It returns ErrUndefined if x is
// Undefined, and an error of class Error if x does not fit a uint64.
func (x Nat) Uint64() (uint64, error) {
	if x.undef {
		return 0, ErrUndefined
	}
	m := x.mant.norm()
	if len(m) <= maxUint64Trits {
		var v uint64
		for i := len(m) - 1; i >= 0; i-- {
			v = 3*v + uint64(m[i])
		}
		return v, nil
	}
	b := m.big()
	if !b.IsUint64() {
		return 0, Error.New("%s overflows uint64", b)
	}
	return b.Uint64(), nil
}

// MustUint64 is like Uint64 but panics on failure.
func (x Nat) MustUint64() uint64 {
	v, err := x.Uint64()
	if err != nil {
		panic(err)
	}
	return v
}

// BigInt returns the value of x as a big.Int. It returns ErrUndefined if x
// is Undefined.
func (x Nat) BigInt() (*big.Int, error) {
	if x.undef {
		return nil, ErrUndefined
	}
	return x.mant.big(), nil
}

// A Notation selects the textual form of a number.
type Notation byte

// Supported notations.
const (
	TritNotation    Notation = iota // digits, most significant first
	DecimalNotation                 // base 10
)

func (n Notation) String() string {
	switch n {
	case TritNotation:
		return "trits"
	case DecimalNotation:
		return "decimal"
	}
	return "Notation(?)"
}

// ParseNotation returns the Notation named s ("trits" or "decimal").
func ParseNotation(s string) (Notation, error) {
	switch strings.ToLower(s) {
	case "trits", "trit", "ternary":
		return TritNotation, nil
	case "decimal", "dec":
		return DecimalNotation, nil
	}
	return 0, Error.New("unknown notation %q", s)
}

// String returns the digits of x, most significant first, using '+', '0'
// and '-'. Zero is "0" and Undefined is "undefined".
func (x Int) String() string {
	return x.Text(TritNotation)
}

// Text returns x in the given notation.
func (x Int) Text(n Notation) string {
	switch {
	case x.undef:
		return undefinedText
	case n == DecimalNotation:
		return x.mant.big().String()
	}
	m := x.mant
	if len(m) == 0 {
		return "0"
	}
	buf := make([]byte, len(m))
	for i, d := range m {
		buf[len(m)-1-i] = "-0+"[d+1]
	}
	return string(buf)
}

// String returns the digits of x, most significant first. Undefined is
// "undefined".
func (x Nat) String() string {
	return x.Text(TritNotation)
}

// Text returns x in the given notation.
func (x Nat) Text(n Notation) string {
	switch {
	case x.undef:
		return undefinedText
	case n == DecimalNotation:
		return x.mant.big().String()
	}
	m := x.mant
	if len(m) == 0 {
		return "0"
	}
	buf := make([]byte, len(m))
	for i, d := range m {
		buf[len(m)-1-i] = '0' + byte(d)
	}
	return string(buf)
}

// ParseInt parses a balanced ternary string, most significant digit first.
// Digits are '+' or '1' for Plus, '0' for Zero, and '-', 'T' or 't' for
// Minus. The string "undefined" yields Undefined.
func ParseInt(s string) (Int, error) {
	if s == undefinedText {
		return UndefinedInt(), nil
	}
	if s == "" {
		return Int{}, Error.New("empty balanced ternary string")
	}
	z := make(bal, len(s))
	for i := 0; i < len(s); i++ {
		var d Trit
		switch s[i] {
		case '+', '1':
			d = Plus
		case '0':
			d = Zero
		case '-', 'T', 't':
			d = Minus
		default:
			return Int{}, Error.New("invalid balanced trit %q in %q", s[i], s)
		}
		z[len(s)-1-i] = d
	}
	return Int{mant: z.norm()}, nil
}

// ParseNat parses an unsigned ternary string of the digits '0', '1' and
// '2', most significant first. The string "undefined" yields Undefined.
func ParseNat(s string) (Nat, error) {
	if s == undefinedText {
		return UndefinedNat(), nil
	}
	if s == "" {
		return Nat{}, Error.New("empty ternary string")
	}
	z := make(nat, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '2' {
			return Nat{}, Error.New("invalid ternary digit %q in %q", c, s)
		}
		z[len(s)-1-i] = UTrit(c - '0')
	}
	return Nat{mant: z.norm()}, nil
}

// ParseIntDecimal parses a base 10 integer.
func ParseIntDecimal(s string) (Int, error) {
	if s == undefinedText {
		return UndefinedInt(), nil
	}
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Int{}, Error.New("invalid decimal integer %q", s)
	}
	return NewIntFromBig(b), nil
}

// ParseNatDecimal parses a non-negative base 10 integer.
func ParseNatDecimal(s string) (Nat, error) {
	if s == undefinedText {
		return UndefinedNat(), nil
	}
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Nat{}, Error.New("invalid decimal integer %q", s)
	}
	return NewNatFromBig(b)
}
