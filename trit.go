// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ternary

// A Trit is a balanced ternary digit with value -1, 0 or +1.
type Trit int8

// Balanced ternary digits.
const (
	Minus Trit = -1
	Zero  Trit = 0
	Plus  Trit = +1
)

// String returns "-", "0" or "+".
func (t Trit) String() string {
	switch t {
	case Minus:
		return "-"
	case Zero:
		return "0"
	case Plus:
		return "+"
	}
	return "?"
}

// A UTrit is an unsigned ternary digit with value 0, 1 or 2.
type UTrit uint8

// Unsigned ternary digits.
const (
	UZero UTrit = iota
	UOne
	UTwo
)

// String returns "0", "1" or "2".
func (t UTrit) String() string {
	if t > UTwo {
		return "?"
	}
	return string('0' + rune(t))
}

// balSum[s+3] holds the digit and carry for a digit sum s = x + y + c with
// x, y, c in {-1, 0, +1}.
var balSum = [7]struct{ d, c Trit }{
	{Zero, Minus},  // -3
	{Plus, Minus},  // -2
	{Minus, Zero},  // -1
	{Zero, Zero},   //  0
	{Plus, Zero},   // +1
	{Minus, Plus},  // +2
	{Zero, Plus},   // +3
}

// addTT returns the digit and carry of x + y + c.
func addTT(x, y, c Trit) (d, carry Trit) {
	e := balSum[x+y+c+3]
	return e.d, e.c
}

// natSum[s] holds the digit and carry for s = x + y + c with x, y in
// {0, 1, 2} and c in {0, 1}.
var natSum = [6]struct{ d, c UTrit }{
	{UZero, 0}, {UOne, 0}, {UTwo, 0},
	{UZero, 1}, {UOne, 1}, {UTwo, 1},
}

// addUU returns the digit and carry of x + y + c.
func addUU(x, y, c UTrit) (d, carry UTrit) {
	e := natSum[x+y+c]
	return e.d, e.c
}

// natDiff[s+3] holds the digit and borrow for s = x - y - b with x, y in
// {0, 1, 2} and b in {0, 1}.
var natDiff = [6]struct{ d, b UTrit }{
	{UZero, 1}, {UOne, 1}, {UTwo, 1}, // -3, -2, -1
	{UZero, 0}, {UOne, 0}, {UTwo, 0}, //  0, +1, +2
}

// subUU returns the digit and borrow of x - y - b.
func subUU(x, y, b UTrit) (d, borrow UTrit) {
	e := natDiff[int(x)-int(y)-int(b)+3]
	return e.d, e.b
}

// trit order lookup, indexed by [x+1][y+1].
var balOrder = [3][3]Ordering{
	{Equal, Less, Less},
	{Greater, Equal, Less},
	{Greater, Greater, Equal},
}

func cmpTT(x, y Trit) Ordering {
	return balOrder[x+1][y+1]
}

func cmpUU(x, y UTrit) Ordering {
	switch {
	case x < y:
		return Less
	case x > y:
		return Greater
	}
	return Equal
}
