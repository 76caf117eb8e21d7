// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package context

import (
	"errors"
	"testing"

	"github.com/db47h/ternary"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestContextSticky(t *testing.T) {
	ctx := New[ternary.Int]()
	one := ternary.NewInt(1)
	z := ctx.Div(one, ternary.Int{})
	require.True(t, z.IsUndefined())

	// further operations are no-ops
	require.True(t, ctx.Add(one, one).IsUndefined())
	require.True(t, ctx.Succ(one).IsUndefined())
	require.Nil(t, ctx.BigInt(one))
	require.Equal(t, ternary.Equal, ctx.Cmp(one, ternary.NewInt(5)))

	err := ctx.Err()
	require.ErrorIs(t, err, ternary.ErrDivisionByZero)
	var oe *OpError
	require.True(t, errors.As(err, &oe))
	require.Equal(t, "Div", oe.Op)
	require.Equal(t, []string{"+", "0"}, oe.Operands)

	// Err clears the state
	require.NoError(t, ctx.Err())
	require.Equal(t, int64(2), ctx.Add(one, one).MustInt64())
	require.NoError(t, ctx.Err())
}

func TestContextCauses(t *testing.T) {
	for _, test := range []struct {
		name string
		run  func(c *Context[ternary.Nat])
		op   string
		want error
	}{
		{"underflow", func(c *Context[ternary.Nat]) { c.Sub(ternary.NewNat(1), ternary.NewNat(2)) }, "Sub", ternary.ErrUnderflow},
		{"pred", func(c *Context[ternary.Nat]) { c.Pred(ternary.Nat{}) }, "Pred", ternary.ErrUnderflow},
		{"rem", func(c *Context[ternary.Nat]) { c.Rem(ternary.NewNat(4), ternary.Nat{}) }, "Rem", ternary.ErrDivisionByZero},
		{"quorem", func(c *Context[ternary.Nat]) { c.QuoRem(ternary.NewNat(4), ternary.Nat{}) }, "QuoRem", ternary.ErrDivisionByZero},
		{"operand", func(c *Context[ternary.Nat]) { c.Mul(ternary.UndefinedNat(), ternary.NewNat(2)) }, "Mul", ternary.ErrUndefined},
		{"divisor", func(c *Context[ternary.Nat]) { c.Div(ternary.NewNat(2), ternary.UndefinedNat()) }, "Div", ternary.ErrUndefined},
		{"triple", func(c *Context[ternary.Nat]) { c.Triple(ternary.UndefinedNat()) }, "Triple", ternary.ErrUndefined},
		{"big", func(c *Context[ternary.Nat]) { c.BigInt(ternary.UndefinedNat()) }, "BigInt", ternary.ErrUndefined},
		{"cmp", func(c *Context[ternary.Nat]) { c.Cmp(ternary.NewNat(2), ternary.UndefinedNat()) }, "Cmp", ternary.ErrUndefined},
	} {
		t.Run(test.name, func(t *testing.T) {
			c := New[ternary.Nat]()
			test.run(c)
			err := c.Err()
			require.ErrorIs(t, err, test.want)
			var oe *OpError
			require.ErrorAs(t, err, &oe)
			require.Equal(t, test.op, oe.Op)
		})
	}
}

func TestContextSuccess(t *testing.T) {
	c := New[ternary.Int]()
	x, y := ternary.NewInt(-9), ternary.NewInt(5)
	p := c.QuoRem(x, y)
	require.Equal(t, int64(1), p.First().MustInt64())
	require.Equal(t, int64(-2), p.Second().MustInt64())
	require.Equal(t, int64(-45), c.Mul(x, y).MustInt64())
	require.Equal(t, int64(-27), c.Triple(x).MustInt64())
	require.Equal(t, int64(-10), c.Pred(x).MustInt64())
	require.Equal(t, ternary.Less, c.Cmp(x, y))
	require.Equal(t, "-9", c.BigInt(x).String())
	require.NoError(t, c.Err())
}

func TestContextSigned(t *testing.T) {
	c := New[ternary.Int]()
	require.Equal(t, int64(7), c.Neg(ternary.NewInt(-7)).MustInt64())
	require.Equal(t, int64(7), c.Abs(ternary.NewInt(-7)).MustInt64())
	require.NoError(t, c.Err())

	for _, op := range []struct {
		name string
		fn   func(ternary.Int) ternary.Int
	}{{"Neg", c.Neg}, {"Abs", c.Abs}} {
		require.True(t, op.fn(ternary.UndefinedInt()).IsUndefined())
		err := c.Err()
		require.ErrorIs(t, err, ternary.ErrUndefined, op.name)
		var oe *OpError
		require.ErrorAs(t, err, &oe)
		require.Equal(t, op.name, oe.Op)
		require.Equal(t, []string{"undefined"}, oe.Operands)
	}
}

func TestContextLogging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	c := New[ternary.Int]().WithLogger(zap.New(core))
	c.Rem(ternary.NewInt(7), ternary.Int{})
	require.Equal(t, 1, logs.Len())
	e := logs.All()[0]
	require.Equal(t, "undefined result", e.Message)
	require.Equal(t, "Rem", e.ContextMap()["op"])

	// a nil logger disables logging
	c = New[ternary.Int]().WithLogger(nil)
	c.Rem(ternary.NewInt(7), ternary.Int{})
	require.Error(t, c.Err())
}
