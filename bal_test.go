// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ternary

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

var balCmpTests = []struct {
	x, y bal
	r    Ordering
}{
	{nil, nil, Equal},
	{nil, bal{}, Equal},
	{bal{Zero}, nil, Equal},
	{bal{Zero, Zero}, bal{}, Equal},
	{bal{Plus}, nil, Greater},
	{bal{Minus}, nil, Less},
	{nil, bal{Plus}, Less},
	{bal{Minus, Plus}, bal{Plus}, Greater},               // 2 > 1
	{bal{Plus}, bal{Minus, Plus}, Less},                  // 1 < 2
	{bal{Plus, Minus}, bal{Minus, Plus}, Less},           // -2 < 2
	{bal{Plus, Plus, Minus}, bal{Minus, Minus}, Less},    // -5 < -4
	{bal{Minus, Zero, Plus}, bal{Plus, Zero, Plus}, Less}, // 8 < 10
	{bal{Plus, Zero, Plus}, bal{Minus, Zero, Plus}, Greater},
	{bal{Minus, Minus, Minus, Plus}, bal{Plus, Plus, Plus}, Greater}, // 14 > 13
}

func TestBalCmp(t *testing.T) {
	for i, a := range balCmpTests {
		if r := a.x.cmp(a.y); r != a.r {
			t.Errorf("#%d got r = %v; want %v", i, r, a.r)
		}
		if r := a.y.cmp(a.x); r != -a.r {
			t.Errorf("#%d symmetric got r = %v; want %v", i, r, -a.r)
		}
	}
}

func TestBalSumTable(t *testing.T) {
	for x := Minus; x <= Plus; x++ {
		for y := Minus; y <= Plus; y++ {
			for c := Minus; c <= Plus; c++ {
				d, carry := addTT(x, y, c)
				require.Equal(t, int(x+y+c), int(d)+3*int(carry), "%v+%v+%v", x, y, c)
			}
		}
	}
}

func TestNatSumTables(t *testing.T) {
	for x := UZero; x <= UTwo; x++ {
		for y := UZero; y <= UTwo; y++ {
			for c := UTrit(0); c <= 1; c++ {
				d, carry := addUU(x, y, c)
				require.Equal(t, int(x+y+c), int(d)+3*int(carry))
				d, borrow := subUU(x, y, c)
				require.Equal(t, int(x)-int(y)-int(c), int(d)-3*int(borrow))
			}
		}
	}
}

func TestBalNormCanon(t *testing.T) {
	x := bal{Plus, Zero, Zero, Zero}
	if diff := cmp.Diff(bal{Plus}, x.norm()); diff != "" {
		t.Errorf("norm mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(bal{Plus, Zero, Zero}, x.canon()); diff != "" {
		t.Errorf("canon mismatch (-want +got):\n%s", diff)
	}
	require.Len(t, bal{Zero}.canon(), 0)
	require.Len(t, bal(nil).canon(), 0)
	require.True(t, bal{Minus, Plus}.isNorm())
	require.False(t, bal{Minus, Zero}.isNorm())
	// operands are left untouched
	require.Equal(t, bal{Plus, Zero, Zero, Zero}, x)
}

func TestBalTriple(t *testing.T) {
	require.Len(t, bal(nil).triple(nil), 0)
	require.Len(t, bal(nil).triple(bal{Zero, Zero}), 0)
	require.Equal(t, bal{Zero, Minus, Plus}, bal(nil).triple(bal{Minus, Plus}))
}

func TestBalRev(t *testing.T) {
	if diff := cmp.Diff([]Trit{Plus, Zero, Minus}, bal{Minus, Zero, Plus}.rev()); diff != "" {
		t.Errorf("rev mismatch (-want +got):\n%s", diff)
	}
}

func TestBalSuccPredRipple(t *testing.T) {
	// 4 = ++ -> 5 = +-- : carry ripples through two digits.
	require.Equal(t, bal{Minus, Minus, Plus}, bal(nil).succ(bal{Plus, Plus}))
	// -4 = -- -> -5 = -++
	require.Equal(t, bal{Plus, Plus, Minus}, bal(nil).pred(bal{Minus, Minus}))
	require.Len(t, bal(nil).succ(bal{Minus}), 0)
	require.Equal(t, bal{Minus}, bal(nil).pred(nil))
}

func TestBalQuoRemEvenDivisor(t *testing.T) {
	// With an even divisor, two candidates can tie. Breaking the tie
	// toward the sign opposite to the next non-zero digit keeps |r| <= |y|/2.
	// Always preferring 0 on a tie would leave 13 / 2 with remainder 5.
	r, q := balFromInt64(13).quoRem(balFromInt64(2))
	require.Equal(t, int64(6), q.big().Int64())
	require.Equal(t, int64(1), r.big().Int64())

	for x := int64(-3000); x <= 3000; x++ {
		for _, y := range []int64{2, -2, 4, -4, 6, 10, -12} {
			r, q := balFromInt64(x).quoRem(balFromInt64(y))
			rr, qq := r.big().Int64(), q.big().Int64()
			require.Equal(t, x, qq*y+rr, "%d / %d", x, y)
			require.LessOrEqual(t, 2*abs64(rr), abs64(y), "%d / %d: r = %d", x, y, rr)
		}
	}
}

func TestNatQuoRem(t *testing.T) {
	for x := uint64(0); x < 500; x++ {
		for y := uint64(1); y < 30; y++ {
			r, q := natFromUint64(x).quoRem(natFromUint64(y))
			require.Equal(t, x/y, q.big().Uint64())
			require.Equal(t, x%y, r.big().Uint64())
		}
	}
}

func TestQuoRemPanicsOnZero(t *testing.T) {
	require.Panics(t, func() { bal{Plus}.quoRem(bal{Zero}) })
	require.Panics(t, func() { nat{UOne}.quoRem(nil) })
}

func TestNatBalConversion(t *testing.T) {
	for x := uint64(0); x < 1000; x++ {
		b := natFromUint64(x).bal()
		require.True(t, b.isNorm())
		require.Equal(t, int64(x), b.big().Int64())
		n := b.nat()
		require.True(t, n.isNorm())
		require.Equal(t, x, n.big().Uint64())
	}
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
