// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package context provides error tracking contexts for ternary numbers.
//
// Operators on a Context have the same signature as the corresponding
// methods of ternary.Int or ternary.Nat:
//
//    func (c *Context[T]) UnaryOp(x T) T
//    func (c *Context[T]) BinaryOp(x, y T) T
//
// and return x.Op(y).
//
// A Context records why a computation became Undefined: if an operation
// yields Undefined, the cause is saved as an *OpError and the operation
// returns the Undefined result. Further operations with the context are
// no-ops (they simply return Undefined) until (*Context).Err is called to
// check for errors.
package context

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/db47h/ternary"
	"go.uber.org/zap"
)

// An OpError describes the operation that first produced an Undefined value.
type OpError struct {
	Op       string   // operator name, e.g. "Div"
	Operands []string // operands in trit notation
	Err      error    // one of the ternary.Err* sentinels
}

func (e *OpError) Error() string {
	return fmt.Sprintf("%s(%s): %v", e.Op, strings.Join(e.Operands, ", "), e.Err)
}

// Unwrap returns the underlying cause.
func (e *OpError) Unwrap() error { return e.Err }

// A Context wraps operations on T and keeps track of the first error.
type Context[T ternary.Number[T]] struct {
	log   *zap.Logger
	err   error
	undef T
}

// New returns a new Context. It logs nothing until a logger is set with
// WithLogger.
func New[T ternary.Number[T]]() *Context[T] {
	return &Context[T]{log: zap.NewNop()}
}

// WithLogger sets the logger used to report failed operations at debug
// level, and returns c.
func (c *Context[T]) WithLogger(log *zap.Logger) *Context[T] {
	if log == nil {
		log = zap.NewNop()
	}
	c.log = log
	return c
}

// Err returns the first error encountered since the last call to Err and clears
// the error state.
func (c *Context[T]) Err() (err error) {
	err = c.err
	c.err = nil
	return
}

func (c *Context[T]) fail(op string, z T, cause error, operands ...T) {
	ops := make([]string, len(operands))
	for i, x := range operands {
		ops[i] = x.String()
	}
	c.err = &OpError{Op: op, Operands: ops, Err: cause}
	c.undef = z
	c.log.Debug("undefined result",
		zap.String("op", op),
		zap.Strings("operands", ops),
		zap.Error(cause))
}

// check records an error if z is Undefined. divides tells whether the last
// operand is a divisor.
func (c *Context[T]) check(op string, z T, divides bool, operands ...T) T {
	if !z.IsUndefined() {
		return z
	}
	cause := ternary.ErrUnderflow
	switch {
	case anyUndefined(operands):
		cause = ternary.ErrUndefined
	case divides && operands[len(operands)-1].IsZero():
		cause = ternary.ErrDivisionByZero
	}
	c.fail(op, z, cause, operands...)
	return z
}

func anyUndefined[T ternary.Number[T]](xs []T) bool {
	for _, x := range xs {
		if x.IsUndefined() {
			return true
		}
	}
	return false
}

// Add returns x + y.
func (c *Context[T]) Add(x, y T) T {
	if c.err != nil {
		return c.undef
	}
	return c.check("Add", x.Add(y), false, x, y)
}

// Sub returns x - y.
func (c *Context[T]) Sub(x, y T) T {
	if c.err != nil {
		return c.undef
	}
	return c.check("Sub", x.Sub(y), false, x, y)
}

// Mul returns x × y.
func (c *Context[T]) Mul(x, y T) T {
	if c.err != nil {
		return c.undef
	}
	return c.check("Mul", x.Mul(y), false, x, y)
}

// Div returns the quotient x / y.
func (c *Context[T]) Div(x, y T) T {
	if c.err != nil {
		return c.undef
	}
	return c.check("Div", x.Div(y), true, x, y)
}

// Rem returns the remainder of x / y.
func (c *Context[T]) Rem(x, y T) T {
	if c.err != nil {
		return c.undef
	}
	return c.check("Rem", x.Rem(y), true, x, y)
}

// QuoRem returns the pair (remainder, quotient) of x / y.
func (c *Context[T]) QuoRem(x, y T) ternary.Pair[T] {
	if c.err != nil {
		return ternary.MakePair(c.undef, c.undef)
	}
	p := x.QuoRem(y)
	c.check("QuoRem", p.First(), true, x, y)
	return p
}

// Succ returns x + 1.
func (c *Context[T]) Succ(x T) T {
	if c.err != nil {
		return c.undef
	}
	return c.check("Succ", x.Succ(), false, x)
}

// Pred returns x - 1.
func (c *Context[T]) Pred(x T) T {
	if c.err != nil {
		return c.undef
	}
	return c.check("Pred", x.Pred(), false, x)
}

// Triple returns 3 × x.
func (c *Context[T]) Triple(x T) T {
	if c.err != nil {
		return c.undef
	}
	return c.check("Triple", x.Triple(), false, x)
}

// Neg returns -x. T must have a Neg method, as ternary.Int does.
func (c *Context[T]) Neg(x T) T {
	if c.err != nil {
		return c.undef
	}
	return c.check("Neg", any(x).(interface{ Neg() T }).Neg(), false, x)
}

// Abs returns |x|. T must have an Abs method, as ternary.Int does.
func (c *Context[T]) Abs(x T) T {
	if c.err != nil {
		return c.undef
	}
	return c.check("Abs", any(x).(interface{ Abs() T }).Abs(), false, x)
}

// Cmp compares x and y. If either is Undefined, the error is recorded and
// Cmp returns ternary.Equal.
func (c *Context[T]) Cmp(x, y T) (r ternary.Ordering) {
	if c.err != nil {
		return ternary.Equal
	}
	defer func() {
		if err := recover(); err != nil {
			if e, ok := err.(error); !ok || !errors.Is(e, ternary.ErrUndefined) {
				panic(err)
			}
			c.fail("Cmp", pick(x.IsUndefined(), x, y), ternary.ErrUndefined, x, y)
			r = ternary.Equal
		}
	}()
	return x.Cmp(y)
}

// BigInt returns the value of x as a big.Int. It returns nil and records
// the error if x is Undefined or if the context holds an error.
func (c *Context[T]) BigInt(x T) *big.Int {
	if c.err != nil {
		return nil
	}
	b, err := x.BigInt()
	if err != nil {
		c.fail("BigInt", x, err, x)
		return nil
	}
	return b
}

func pick[T any](cond bool, a, b T) T {
	if cond {
		return a
	}
	return b
}
