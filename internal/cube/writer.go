package cube

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Data precision used by the generators: identity tables carry enough
// digits to survive a parse round trip, the negative table matches the
// 6-digit output of typical grading tools.
const (
	identityDigits = 12
	negativeDigits = 6
)

// WriteIdentity3D emits a 3D identity LUT of the given size: every
// sample equals its normalized grid coordinate.
func WriteIdentity3D(w io.Writer, size int) error {
	if size < 2 {
		return fmt.Errorf("%w (got %d)", ErrSizeTooSmall, size)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "TITLE \"Identity LUT %dx%dx%d\"\n\n", size, size, size)
	fmt.Fprintf(bw, "LUT_3D_SIZE %d\n\n", size)
	fmt.Fprintf(bw, "DOMAIN_MIN 0.0 0.0 0.0\nDOMAIN_MAX 1.0 1.0 1.0\n\n")

	div := float64(size - 1)
	for b := 0; b < size; b++ {
		for g := 0; g < size; g++ {
			for r := 0; r < size; r++ {
				fmt.Fprintf(bw, "%.*f %.*f %.*f\n",
					identityDigits, float64(r)/div,
					identityDigits, float64(g)/div,
					identityDigits, float64(b)/div)
			}
		}
	}
	return bw.Flush()
}

// WriteNegative3D emits a 3D negative LUT: every sample is one minus
// its normalized grid coordinate.
func WriteNegative3D(w io.Writer, size int) error {
	if size < 2 {
		return fmt.Errorf("%w (got %d)", ErrSizeTooSmall, size)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "TITLE \"Linear Negative LUT (%dx%dx%d)\"\n\n", size, size, size)
	fmt.Fprintf(bw, "DOMAIN_MIN 0.0 0.0 0.0\nDOMAIN_MAX 1.0 1.0 1.0\n\n")
	fmt.Fprintf(bw, "LUT_3D_SIZE %d\n\n", size)

	div := float64(size - 1)
	for b := 0; b < size; b++ {
		for g := 0; g < size; g++ {
			for r := 0; r < size; r++ {
				fmt.Fprintf(bw, "%.*f %.*f %.*f\n",
					negativeDigits, 1-float64(r)/div,
					negativeDigits, 1-float64(g)/div,
					negativeDigits, 1-float64(b)/div)
			}
		}
	}
	return bw.Flush()
}

// WriteIdentity1D emits a 1D identity LUT. The engine never reads these
// back; they exist for external colour pipelines.
func WriteIdentity1D(w io.Writer, size int) error {
	if size < 2 {
		return fmt.Errorf("LUT_1D_SIZE must be at least 2 (got %d)", size)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "TITLE \"Identity 1D LUT %d\"\n\n", size)
	fmt.Fprintf(bw, "LUT_1D_SIZE %d\n\n", size)
	fmt.Fprintf(bw, "DOMAIN_MIN 0.0 0.0 0.0\nDOMAIN_MAX 1.0 1.0 1.0\n\n")

	div := float64(size - 1)
	for i := 0; i < size; i++ {
		v := float64(i) / div
		fmt.Fprintf(bw, "%.*f %.*f %.*f\n", identityDigits, v, identityDigits, v, identityDigits, v)
	}
	return bw.Flush()
}

// WriteFile renders a LUT with the given writer function and persists
// it atomically using the temp file + rename pattern.
func WriteFile(path string, write func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		return err
	}

	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write temp LUT file: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to rename LUT file: %w", err)
	}

	slog.Debug("LUT file written", "path", path, "bytes", buf.Len())
	return nil
}
