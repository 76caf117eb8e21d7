// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ternary

import "sync"

// MaxSmall is the largest magnitude served by SmallInt and SmallNat.
const MaxSmall = 243

var (
	smallOnce sync.Once
	smallInts [2*MaxSmall + 1]Int
	smallNats [MaxSmall + 1]Nat
)

func initSmall() {
	for i := -MaxSmall; i <= MaxSmall; i++ {
		smallInts[i+MaxSmall] = Int{mant: balFromInt64(int64(i))}
	}
	for i := range smallNats {
		smallNats[i] = Nat{mant: natFromUint64(uint64(i))}
	}
}

// SmallInt returns the constant n for -MaxSmall <= n <= MaxSmall.
// It panics if n is out of range.
func SmallInt(n int) Int {
	if n < -MaxSmall || n > MaxSmall {
		panic(Error.New("small constant %d out of range", n))
	}
	smallOnce.Do(initSmall)
	return smallInts[n+MaxSmall]
}

// SmallNat returns the constant n for n <= MaxSmall.
// It panics if n is out of range.
func SmallNat(n uint) Nat {
	if n > MaxSmall {
		panic(Error.New("small constant %d out of range", n))
	}
	smallOnce.Do(initSmall)
	return smallNats[n]
}
