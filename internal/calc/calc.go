// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package calc evaluates ternary arithmetic expressions given as strings.
package calc

import (
	"fmt"
	"sort"
	"strings"

	"github.com/db47h/ternary"
	"github.com/db47h/ternary/context"
	"github.com/db47h/ternary/internal/config"
	"github.com/zeebo/errs"
	"go.uber.org/zap"
)

// Error is the error class for this package.
var Error = errs.Class("calc")

// A Calculator parses operands, applies an operator and formats the result
// according to its configuration.
type Calculator struct {
	unsigned bool
	in, out  ternary.Notation
	log      *zap.Logger
}

// New returns a Calculator configured by cfg.
func New(cfg *config.Config, log *zap.Logger) (*Calculator, error) {
	in, err := cfg.InputNotation()
	if err != nil {
		return nil, Error.Wrap(err)
	}
	out, err := cfg.OutputNotation()
	if err != nil {
		return nil, Error.Wrap(err)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Calculator{unsigned: cfg.Unsigned, in: in, out: out, log: log}, nil
}

// an operator on T. Unary operators ignore y.
type operator[T ternary.Number[T]] struct {
	arity int
	fn    func(ctx *context.Context[T], x, y T) string
}

func operators[T ternary.Number[T]](out ternary.Notation) map[string]operator[T] {
	text := func(x T) string { return x.Text(out) }
	bin := func(f func(ctx *context.Context[T], x, y T) T) operator[T] {
		return operator[T]{2, func(ctx *context.Context[T], x, y T) string { return text(f(ctx, x, y)) }}
	}
	un := func(f func(ctx *context.Context[T], x T) T) operator[T] {
		return operator[T]{1, func(ctx *context.Context[T], x, _ T) string { return text(f(ctx, x)) }}
	}
	ops := map[string]operator[T]{
		"add":    bin((*context.Context[T]).Add),
		"sub":    bin((*context.Context[T]).Sub),
		"mul":    bin((*context.Context[T]).Mul),
		"div":    bin((*context.Context[T]).Div),
		"rem":    bin((*context.Context[T]).Rem),
		"succ":   un((*context.Context[T]).Succ),
		"pred":   un((*context.Context[T]).Pred),
		"triple": un((*context.Context[T]).Triple),
		"quorem": {2, func(ctx *context.Context[T], x, y T) string {
			p := ctx.QuoRem(x, y)
			return fmt.Sprintf("(%s, %s)", text(p.First()), text(p.Second()))
		}},
		"cmp": {2, func(ctx *context.Context[T], x, y T) string {
			return ctx.Cmp(x, y).String()
		}},
	}
	var x T
	if _, ok := any(x).(interface{ Neg() T }); ok {
		ops["neg"] = un((*context.Context[T]).Neg)
		ops["abs"] = un((*context.Context[T]).Abs)
	}
	return ops
}

// Ops returns the sorted names of the supported operators.
func (c *Calculator) Ops() []string {
	var names []string
	if c.unsigned {
		names = opNames(operators[ternary.Nat](c.out))
	} else {
		names = opNames(operators[ternary.Int](c.out))
	}
	sort.Strings(names)
	return names
}

func opNames[T ternary.Number[T]](ops map[string]operator[T]) []string {
	names := make([]string, 0, len(ops))
	for k := range ops {
		names = append(names, k)
	}
	return names
}

// Eval applies the operator op to args and returns the formatted result.
func (c *Calculator) Eval(op string, args ...string) (string, error) {
	op = strings.ToLower(op)
	if c.unsigned {
		return eval(c, op, args, c.parseNat)
	}
	return eval(c, op, args, c.parseInt)
}

func eval[T ternary.Number[T]](c *Calculator, op string, args []string, parse func(string) (T, error)) (string, error) {
	o, ok := operators[T](c.out)[op]
	if !ok {
		return "", Error.New("unknown operator %q", op)
	}
	if len(args) != o.arity {
		return "", Error.New("%s takes %d operand(s), got %d", op, o.arity, len(args))
	}
	var xs [2]T
	for i, s := range args {
		x, err := parse(s)
		if err != nil {
			return "", Error.Wrap(err)
		}
		xs[i] = x
	}
	ctx := context.New[T]().WithLogger(c.log)
	r := o.fn(ctx, xs[0], xs[1])
	if err := ctx.Err(); err != nil {
		return "", Error.Wrap(err)
	}
	c.log.Debug("eval", zap.String("op", op), zap.Strings("args", args), zap.String("result", r))
	return r, nil
}

func (c *Calculator) parseInt(s string) (ternary.Int, error) {
	if c.in == ternary.DecimalNotation {
		return ternary.ParseIntDecimal(s)
	}
	return ternary.ParseInt(s)
}

func (c *Calculator) parseNat(s string) (ternary.Nat, error) {
	if c.in == ternary.DecimalNotation {
		return ternary.ParseNatDecimal(s)
	}
	return ternary.ParseNat(s)
}

// A Conversion lists the forms of a number.
type Conversion struct {
	Decimal  string
	Balanced string
	Unsigned string // "undefined" for negative numbers
}

// Convert parses s in the input notation and returns all of its forms.
func (c *Calculator) Convert(s string) (Conversion, error) {
	var x ternary.Int
	if c.unsigned {
		n, err := c.parseNat(s)
		if err != nil {
			return Conversion{}, Error.Wrap(err)
		}
		x = n.Int()
	} else {
		var err error
		if x, err = c.parseInt(s); err != nil {
			return Conversion{}, Error.Wrap(err)
		}
	}
	if x.IsUndefined() {
		return Conversion{}, Error.Wrap(ternary.ErrUndefined)
	}
	return Conversion{
		Decimal:  x.Text(ternary.DecimalNotation),
		Balanced: x.String(),
		Unsigned: x.Nat().String(),
	}, nil
}
