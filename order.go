// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ternary

// Ordering is the result of a three-way comparison.
type Ordering int8

// Comparison results.
const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = +1
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	}
	return "Ordering(?)"
}

// Select returns lt, eq or gt depending on o.
//
// Select(x.Cmp(y), lt, eq, gt) picks the value associated with the outcome of
// comparing x and y.
func Select[T any](o Ordering, lt, eq, gt T) T {
	switch o {
	case Less:
		return lt
	case Greater:
		return gt
	}
	return eq
}

// A Pair is an ordered pair of values of the same kind.
//
// The zero value is a pair of zero values.
type Pair[T any] struct {
	first, second T
}

// MakePair returns the pair (a, b).
func MakePair[T any](a, b T) Pair[T] {
	return Pair[T]{a, b}
}

// First returns the first element of p.
func (p Pair[T]) First() T { return p.first }

// Second returns the second element of p.
func (p Pair[T]) Second() T { return p.second }
