// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	cfgPath := filepath.Join(t.TempDir(), "tern.yaml")
	rootCmd.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCalc(t *testing.T) {
	out, err := run(t, "-u=false", "-i", "decimal", "-o", "trits", "calc", "add", "--", "-7", "9")
	require.NoError(t, err)
	require.Equal(t, "+-\n", out)

	out, err = run(t, "-u=false", "-i", "decimal", "-o", "decimal", "calc", "quorem", "--", "-9", "5")
	require.NoError(t, err)
	require.Equal(t, "(1, -2)\n", out)

	_, err = run(t, "-u=false", "-i", "decimal", "-o", "decimal", "calc", "div", "1", "0")
	require.Error(t, err)
}

func TestCalcUnsigned(t *testing.T) {
	_, err := run(t, "-u", "-i", "decimal", "-o", "decimal", "calc", "sub", "3", "5")
	require.Error(t, err)

	out, err := run(t, "-u", "-i", "trits", "-o", "trits", "calc", "add", "12", "2")
	require.NoError(t, err)
	require.Equal(t, "21\n", out)
}

func TestConvert(t *testing.T) {
	out, err := run(t, "-u=false", "-i", "decimal", "-o", "trits", "convert", "--", "-7")
	require.NoError(t, err)
	require.Equal(t, "decimal:  -7\nbalanced: -+-\nunsigned: undefined\n", out)
}
