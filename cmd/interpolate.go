package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/cwbudde/cubelut/internal/cube"
	"github.com/cwbudde/cubelut/internal/lut"
	"github.com/cwbudde/cubelut/internal/probe"
	"github.com/spf13/cobra"
)

var (
	precision   int
	backendName string
)

var interpolateCmd = &cobra.Command{
	Use:   "interpolate <file.cube>",
	Short: "Run every interpolation kernel over the probe list",
	Long: `Loads a 3D CUBE LUT and evaluates the full kernel family at the
canonical probe points, printing each result to the requested decimal
precision. The decimal backend recomputes everything in
arbitrary-precision decimal arithmetic for cross-checking.`,
	Args: cobra.ExactArgs(1),
	RunE: runInterpolate,
}

func init() {
	interpolateCmd.Flags().IntVar(&precision, "precision", 16, "Decimal digits for output and for decimal-backend calculation (4-50)")
	interpolateCmd.Flags().StringVar(&backendName, "backend", "float64", "Precision backend: float64, decimal")
	rootCmd.AddCommand(interpolateCmd)
}

func runInterpolate(cmd *cobra.Command, args []string) error {
	if precision < lut.MinDigits || precision > lut.MaxDigits {
		return fmt.Errorf("precision %d out of range [%d, %d]", precision, lut.MinDigits, lut.MaxDigits)
	}

	grid, err := cube.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load LUT: %w", err)
	}
	slog.Info("Loaded CUBE LUT", "title", grid.Title, "size", grid.NR)

	start := time.Now()
	switch backendName {
	case "float64":
		err = probe.Run(os.Stdout, lut.F64{}, grid, probe.Default, precision)
	case "decimal":
		dec, derr := lut.NewDec(precision)
		if derr != nil {
			return derr
		}
		slog.Info("Using decimal backend", "digits", dec.Digits())
		err = probe.Run(os.Stdout, dec, dec.ConvertGrid(grid), probe.Default, precision)
	default:
		return fmt.Errorf("unknown backend: %s", backendName)
	}
	if err != nil {
		return err
	}

	slog.Info("Interpolation complete", "probes", len(probe.Default), "elapsed", time.Since(start))
	return nil
}
