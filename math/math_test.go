// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import (
	"math/big"
	"testing"

	"github.com/db47h/ternary"
	"github.com/stretchr/testify/require"
)

// upow returns x**n on native integers.
func upow(x, n uint64) uint64 {
	if n == 0 {
		return 1
	}
	z := x
	y := uint64(1)
	for n > 1 {
		if n%2 != 0 {
			y *= z
		}
		z *= z
		n /= 2
	}
	return z * y
}

func TestPow(t *testing.T) {
	for x := int64(-6); x <= 6; x++ {
		for n := uint64(0); n < 20; n++ {
			want := new(big.Int).Exp(big.NewInt(x), new(big.Int).SetUint64(n), nil)
			got, err := Pow(ternary.NewInt(x), n).BigInt()
			require.NoError(t, err)
			require.Equal(t, want.String(), got.String(), "%d**%d", x, n)
		}
	}
	for x := uint64(0); x < 8; x++ {
		for n := uint64(0); n < 15; n++ {
			require.Equal(t, upow(x, n), Pow(ternary.NewNat(x), n).MustUint64(), "%d**%d", x, n)
		}
	}
	require.True(t, Pow(ternary.UndefinedInt(), 0).IsUndefined())
	require.Equal(t, "+000000000", Pow(ternary.NewInt(3), 9).String())
}

func TestSquare(t *testing.T) {
	require.Equal(t, int64(49), Square(ternary.NewInt(-7)).MustInt64())
	require.Equal(t, uint64(64), Square(ternary.NewNat(8)).MustUint64())
}

func TestFactorial(t *testing.T) {
	want := big.NewInt(1)
	for n := uint64(0); n <= 30; n++ {
		if n > 1 {
			want.Mul(want, new(big.Int).SetUint64(n))
		}
		got, err := Factorial(n).BigInt()
		require.NoError(t, err)
		require.Equal(t, want.String(), got.String(), "%d!", n)
	}
}

func TestSqrt(t *testing.T) {
	for x := uint64(0); x < 2000; x++ {
		r := Sqrt(ternary.NewNat(x)).MustUint64()
		if r*r > x || (r+1)*(r+1) <= x {
			t.Fatalf("Sqrt(%d) = %d", x, r)
		}
	}
	b := new(big.Int).Lsh(big.NewInt(1), 130)
	n, err := ternary.NewNatFromBig(b)
	require.NoError(t, err)
	got, err := Sqrt(n).BigInt()
	require.NoError(t, err)
	require.Equal(t, new(big.Int).Sqrt(b).String(), got.String())

	require.True(t, Sqrt(ternary.UndefinedNat()).IsUndefined())
	require.True(t, SqrtInt(ternary.NewInt(-4)).IsUndefined())
	require.Equal(t, int64(12), SqrtInt(ternary.NewInt(150)).MustInt64())
}

func TestGCD(t *testing.T) {
	gcd := func(a, b int64) int64 {
		for b != 0 {
			a, b = b, a%b
		}
		if a < 0 {
			return -a
		}
		return a
	}
	for a := int64(-40); a <= 40; a++ {
		for b := int64(-40); b <= 40; b++ {
			got := GCDInt(ternary.NewInt(a), ternary.NewInt(b)).MustInt64()
			require.Equal(t, gcd(a, b), got, "GCDInt(%d, %d)", a, b)
			if a >= 0 && b >= 0 {
				g := GCD(ternary.NewNat(uint64(a)), ternary.NewNat(uint64(b))).MustUint64()
				require.Equal(t, uint64(gcd(a, b)), g, "GCD(%d, %d)", a, b)
			}
		}
	}
	require.True(t, GCD(ternary.UndefinedNat(), ternary.NewNat(3)).IsUndefined())
	require.True(t, GCDInt(ternary.NewInt(3), ternary.UndefinedInt()).IsUndefined())
}

func TestLCM(t *testing.T) {
	require.Equal(t, uint64(36), LCM(ternary.NewNat(12), ternary.NewNat(18)).MustUint64())
	require.True(t, LCM(ternary.NewNat(12), ternary.Nat{}).IsZero())
	require.Equal(t, uint64(7), LCM(ternary.NewNat(7), ternary.NewNat(1)).MustUint64())
}

func TestProxies(t *testing.T) {
	require.Equal(t, int64(5), Abs(ternary.NewInt(-5)).MustInt64())
	require.Equal(t, -1, Sign(ternary.NewInt(-5)))
	require.Panics(t, func() { Sign(ternary.UndefinedInt()) })
}
