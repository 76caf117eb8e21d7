// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements encoding/decoding and formatting of Ints and Nats.

package ternary

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Gob codec version. Permits backward-compatible changes to the encoding.
const ternaryGobVersion byte = 1

// digits are packed five per byte (3^5 = 243).
const tritsPerByte = 5

const (
	gobUndefined byte = 1 << iota
	gobBalanced
)

// packTrits packs n digits given by digit(i) in [0, 3) into buf.
func packTrits(buf []byte, n int, digit func(i int) byte) {
	for i := 0; i < n; i += tritsPerByte {
		var b byte
		for j := tritsPerByte - 1; j >= 0; j-- {
			b *= 3
			if i+j < n {
				b += digit(i + j)
			}
		}
		buf[i/tritsPerByte] = b
	}
}

func unpackTrits(buf []byte, n int, set func(i int, d byte)) error {
	for i := 0; i < n; i += tritsPerByte {
		b := buf[i/tritsPerByte]
		if b >= 243 {
			return Error.New("GobDecode: invalid packed byte %d", b)
		}
		for j := 0; j < tritsPerByte; j++ {
			if i+j < n {
				set(i+j, b%3)
			}
			b /= 3
		}
	}
	return nil
}

func gobHeader(flags byte, n int) []byte {
	buf := make([]byte, 2+4+(n+tritsPerByte-1)/tritsPerByte)
	buf[0] = ternaryGobVersion
	buf[1] = flags
	binary.BigEndian.PutUint32(buf[2:], uint32(n))
	return buf
}

func parseGobHeader(buf []byte, want byte) (flags byte, n int, err error) {
	if len(buf) < 6 {
		return 0, 0, Error.New("GobDecode: buffer too short")
	}
	if buf[0] != ternaryGobVersion {
		return 0, 0, Error.New("GobDecode: encoding version %d not supported", buf[0])
	}
	flags = buf[1]
	if flags&gobBalanced != want {
		return 0, 0, Error.New("GobDecode: representation mismatch")
	}
	n = int(binary.BigEndian.Uint32(buf[2:]))
	if (n+tritsPerByte-1)/tritsPerByte > len(buf)-6 {
		return 0, 0, Error.New("GobDecode: short buffer for %d digits", n)
	}
	return flags, n, nil
}

// GobEncode implements the gob.GobEncoder interface.
func (x Int) GobEncode() ([]byte, error) {
	if x.undef {
		return gobHeader(gobUndefined|gobBalanced, 0), nil
	}
	m := x.mant
	buf := gobHeader(gobBalanced, len(m))
	packTrits(buf[6:], len(m), func(i int) byte { return byte(m[i] + 1) })
	return buf, nil
}

// GobDecode implements the gob.GobDecoder interface.
func (z *Int) GobDecode(buf []byte) error {
	if len(buf) == 0 {
		*z = Int{}
		return nil
	}
	flags, n, err := parseGobHeader(buf, gobBalanced)
	if err != nil {
		return err
	}
	if flags&gobUndefined != 0 {
		*z = UndefinedInt()
		return nil
	}
	m := make(bal, n)
	if err := unpackTrits(buf[6:], n, func(i int, d byte) { m[i] = Trit(d) - 1 }); err != nil {
		return err
	}
	*z = Int{mant: m}
	return nil
}

// GobEncode implements the gob.GobEncoder interface.
func (x Nat) GobEncode() ([]byte, error) {
	if x.undef {
		return gobHeader(gobUndefined, 0), nil
	}
	m := x.mant
	buf := gobHeader(0, len(m))
	packTrits(buf[6:], len(m), func(i int) byte { return byte(m[i]) })
	return buf, nil
}

// GobDecode implements the gob.GobDecoder interface.
func (z *Nat) GobDecode(buf []byte) error {
	if len(buf) == 0 {
		*z = Nat{}
		return nil
	}
	flags, n, err := parseGobHeader(buf, 0)
	if err != nil {
		return err
	}
	if flags&gobUndefined != 0 {
		*z = UndefinedNat()
		return nil
	}
	m := make(nat, n)
	if err := unpackTrits(buf[6:], n, func(i int, d byte) { m[i] = UTrit(d) }); err != nil {
		return err
	}
	*z = Nat{mant: m}
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface.
func (x Int) MarshalText() (text []byte, err error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (z *Int) UnmarshalText(text []byte) error {
	x, err := ParseInt(string(text))
	if err != nil {
		return Error.New("cannot unmarshal %q into a *ternary.Int (%v)", text, err)
	}
	*z = x
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface.
func (x Nat) MarshalText() (text []byte, err error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (z *Nat) UnmarshalText(text []byte) error {
	x, err := ParseNat(string(text))
	if err != nil {
		return Error.New("cannot unmarshal %q into a *ternary.Nat (%v)", text, err)
	}
	*z = x
	return nil
}

// Format implements fmt.Formatter. The verbs 's' and 'v' print digits in
// trit notation and 'd' prints the base 10 value.
func (x Int) Format(s fmt.State, verb rune) {
	format(s, verb, x, "Int")
}

// Format implements fmt.Formatter like Int.Format.
func (x Nat) Format(s fmt.State, verb rune) {
	format(s, verb, x, "Nat")
}

func format(s fmt.State, verb rune, x interface{ Text(Notation) string }, name string) {
	switch verb {
	case 's', 'v':
		_, _ = io.WriteString(s, x.Text(TritNotation))
	case 'd':
		_, _ = io.WriteString(s, x.Text(DecimalNotation))
	default:
		fmt.Fprintf(s, "%%!%c(ternary.%s=%s)", verb, name, x.Text(TritNotation))
	}
}
