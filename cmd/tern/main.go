// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command tern performs arithmetic on balanced and unsigned ternary numbers.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/db47h/ternary/internal/calc"
	"github.com/db47h/ternary/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	configPath string
	verbose    bool
	unsigned   bool
	input      string
	output     string

	logger *zap.Logger
	cfg    *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "tern",
	Short: "Ternary integer arithmetic",
	Long: `tern evaluates arithmetic on arbitrary-precision integers written in
balanced ternary (digits -, 0, +) or unsigned ternary (digits 0, 1, 2).

Operands are read in the input notation and results printed in the output
notation, "trits" or "decimal".`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		flags := cmd.Flags()
		if flags.Changed("unsigned") {
			cfg.Unsigned = unsigned
		}
		if flags.Changed("input") {
			cfg.Input = input
		}
		if flags.Changed("output") {
			cfg.Output = output
		}

		zc := zap.NewProductionConfig()
		level, err := zapcore.ParseLevel(cfg.Logging.Level)
		if err != nil {
			return fmt.Errorf("invalid log level: %w", err)
		}
		if verbose {
			level = zapcore.DebugLevel
		}
		zc.Level = zap.NewAtomicLevelAt(level)
		if logger, err = zc.Build(); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var calcCmd = &cobra.Command{
	Use:   "calc <op> <x> [y]",
	Short: "Apply an operator to one or two operands",
	Long: `Applies an operator to its operands and prints the result.

Operators: add, sub, mul, div, rem, quorem, succ, pred, triple, cmp,
and for balanced numbers neg and abs. quorem prints (remainder, quotient).

Example:
  tern calc add -- -7 9`,
	Args: cobra.RangeArgs(2, 3),
	RunE: runCalc,
}

var convertCmd = &cobra.Command{
	Use:   "convert <x>",
	Short: "Print a number in every notation",
	Args:  cobra.ExactArgs(1),
	RunE:  runConvert,
}

func runCalc(cmd *cobra.Command, args []string) error {
	c, err := calc.New(cfg, logger)
	if err != nil {
		return err
	}
	r, err := c.Eval(args[0], args[1:]...)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), r)
	return nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	c, err := calc.New(cfg, logger)
	if err != nil {
		return err
	}
	v, err := c.Convert(args[0])
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "decimal:  %s\n", v.Decimal)
	fmt.Fprintf(w, "balanced: %s\n", v.Balanced)
	fmt.Fprintf(w, "unsigned: %s\n", v.Unsigned)
	return nil
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", "tern.yaml", "configuration file")
	pf.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	pf.BoolVarP(&unsigned, "unsigned", "u", false, "use unsigned ternary (digits 0, 1, 2)")
	pf.StringVarP(&input, "input", "i", "decimal", "operand notation: "+notations)
	pf.StringVarP(&output, "output", "o", "trits", "result notation: "+notations)

	rootCmd.AddCommand(calcCmd, convertCmd)
}

var notations = strings.Join([]string{"trits", "decimal"}, " or ")

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
