package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/cwbudde/cubelut/internal/cube"
	"github.com/spf13/cobra"
)

var (
	genSize int
	genKind string
	genDims int
	genOut  string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate identity or negative CUBE LUT files",
	Long: `Writes a CUBE LUT whose samples are either the identity mapping or
its linear negative. These files seed the interpolate command and the
validation suites of downstream implementations.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().IntVar(&genSize, "size", 33, "Points per dimension")
	generateCmd.Flags().StringVar(&genKind, "type", "identity", "LUT type: identity, negative")
	generateCmd.Flags().IntVar(&genDims, "dims", 3, "LUT dimensionality: 3 or 1")
	generateCmd.Flags().StringVar(&genOut, "out", "", "Output path (default <type>_lut_<size>.cube, or <type>_1d_lut_<size>.cube with --dims 1)")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	out := genOut
	if out == "" {
		out = defaultOutputName(genKind, genDims, genSize)
	}

	var write func(io.Writer) error
	points := genSize
	switch {
	case genDims == 3 && genKind == "identity":
		write = func(w io.Writer) error { return cube.WriteIdentity3D(w, genSize) }
		points = genSize * genSize * genSize
	case genDims == 3 && genKind == "negative":
		write = func(w io.Writer) error { return cube.WriteNegative3D(w, genSize) }
		points = genSize * genSize * genSize
	case genDims == 1 && genKind == "identity":
		write = func(w io.Writer) error { return cube.WriteIdentity1D(w, genSize) }
	default:
		return fmt.Errorf("unsupported combination: type %s with %d dimensions", genKind, genDims)
	}

	if err := cube.WriteFile(out, write); err != nil {
		return fmt.Errorf("failed to generate LUT: %w", err)
	}

	slog.Info("LUT generated", "type", genKind, "dims", genDims, "size", genSize, "path", out)
	fmt.Printf("Wrote %s (%d points)\n", out, points)
	return nil
}

func defaultOutputName(kind string, dims, size int) string {
	if dims == 1 {
		return fmt.Sprintf("%s_1d_lut_%d.cube", kind, size)
	}
	return fmt.Sprintf("%s_lut_%d.cube", kind, size)
}
