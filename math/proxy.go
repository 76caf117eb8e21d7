// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import "github.com/db47h/ternary"

// Abs returns |x|.
//
// This function is a proxy for x.Abs()
func Abs(x ternary.Int) ternary.Int {
	return x.Abs()
}

// Sign returns -1, 0 or +1 depending on the sign of x. It panics with
// ternary.ErrUndefined if x is Undefined.
//
// This function is a proxy for x.Sign()
func Sign(x ternary.Int) int {
	return x.Sign()
}
