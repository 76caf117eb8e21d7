// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ternary

import "github.com/zeebo/errs"

// Error is the error class for this package.
var Error = errs.Class("ternary")

var (
	// ErrUndefined is returned when reifying an Undefined value.
	ErrUndefined = Error.New("undefined value")

	// ErrDivisionByZero tags an Undefined value produced by a division or
	// remainder with a zero divisor.
	ErrDivisionByZero = Error.New("division by zero")

	// ErrUnderflow tags an Undefined value produced by an unsigned
	// operation whose true result is negative.
	ErrUnderflow = Error.New("unsigned underflow")
)
