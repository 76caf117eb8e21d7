// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ternary_test

import (
	"fmt"

	"github.com/db47h/ternary"
)

func Example() {
	x := ternary.NewInt(-7)
	y := ternary.NewInt(9)
	s := x.Add(y)
	fmt.Printf("%v + %v = %v (%d)\n", x, y, s, s)

	p := ternary.NewInt(-9).QuoRem(ternary.NewInt(5))
	fmt.Printf("-9 / 5: q = %d, r = %d\n", p.Second(), p.First())

	// Output:
	// -+- + +00 = +- (2)
	// -9 / 5: q = -2, r = 1
}

func ExampleNat_Sub() {
	a, b := ternary.NewNat(5), ternary.NewNat(8)
	fmt.Println(a.Sub(b))
	fmt.Println(b.Sub(a), b.Sub(a).Text(ternary.DecimalNotation))
	// Output:
	// undefined
	// 10 3
}

func ExampleInt_Cmp() {
	x, y := ternary.NewInt(4), ternary.NewInt(-13)
	fmt.Println(ternary.Select(x.Cmp(y), "less", "equal", "greater"))
	// Output:
	// greater
}

func ExampleInt_Canonical() {
	x := ternary.FromTrits(ternary.Plus, ternary.Minus, ternary.Zero)
	fmt.Println(x, x.IsCanonical())
	x = x.Canonical()
	fmt.Println(x, x.IsCanonical(), x.MustInt64())
	// Output:
	// 0-+ false
	// -+ true -2
}

func ExampleParseInt() {
	x, err := ternary.ParseInt("1T0")
	if err != nil {
		panic(err)
	}
	fmt.Printf("%d\n", x)
	_, err = ternary.ParseInt("12")
	fmt.Println(err)
	// Output:
	// 6
	// ternary: invalid balanced trit '2' in "12"
}
