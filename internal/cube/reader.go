// Package cube reads and writes the CUBE text format for 1D and 3D
// colour look-up tables. The engine only consumes 3D LUTs; the 1D
// variant is emitted by the generators for external tooling.
package cube

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/cubelut/internal/lut"
)

var (
	ErrMissingSize  = errors.New("missing LUT_3D_SIZE directive")
	ErrSizeTooSmall = errors.New("LUT_3D_SIZE must be at least 2")
	Err1DLUT        = errors.New("1D LUTs are not supported by the engine")
)

// Load reads a 3D CUBE LUT from disk.
func Load(path string) (*lut.Grid[float64], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CUBE file: %w", err)
	}
	defer f.Close()

	g, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Read parses a 3D CUBE LUT. Lines are UTF-8 text; blank lines and
// lines starting with '#' are ignored. LUT_3D_SIZE must appear exactly
// once before the data section; the data section holds exactly N^3
// triples in R-fastest, B-slowest order.
func Read(r io.Reader) (*lut.Grid[float64], error) {
	var (
		title   string
		size    int
		dmin    = lut.Triple[float64]{R: 0, G: 0, B: 0}
		dmax    = lut.Triple[float64]{R: 1, G: 1, B: 1}
		samples []lut.Triple[float64]
	)

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		switch strings.ToUpper(fields[0]) {
		case "TITLE":
			title = strings.Trim(strings.TrimSpace(strings.TrimPrefix(line, fields[0])), `"`)

		case "LUT_1D_SIZE":
			return nil, Err1DLUT

		case "LUT_3D_SIZE":
			if size != 0 {
				return nil, fmt.Errorf("line %d: duplicate LUT_3D_SIZE", lineNo)
			}
			if len(fields) != 2 {
				return nil, fmt.Errorf("line %d: malformed LUT_3D_SIZE directive", lineNo)
			}
			n, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid LUT_3D_SIZE %q: %w", lineNo, fields[1], err)
			}
			if n < 2 {
				return nil, fmt.Errorf("line %d: %w (got %d)", lineNo, ErrSizeTooSmall, n)
			}
			size = n

		case "DOMAIN_MIN":
			t, err := parseDirectiveTriple(fields, lineNo)
			if err != nil {
				return nil, err
			}
			dmin = t

		case "DOMAIN_MAX":
			t, err := parseDirectiveTriple(fields, lineNo)
			if err != nil {
				return nil, err
			}
			dmax = t

		default:
			if size == 0 {
				return nil, fmt.Errorf("line %d: data before LUT_3D_SIZE: %w", lineNo, ErrMissingSize)
			}
			t, err := parseDataTriple(fields, lineNo)
			if err != nil {
				return nil, err
			}
			samples = append(samples, t)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read CUBE data: %w", err)
	}

	if size == 0 {
		return nil, ErrMissingSize
	}
	if want := size * size * size; len(samples) != want {
		return nil, fmt.Errorf("expected %d data points for size %d, found %d", want, size, len(samples))
	}

	g, err := lut.New(lut.F64{}, title, size, size, size, samples, dmin, dmax)
	if err != nil {
		return nil, fmt.Errorf("invalid LUT: %w", err)
	}
	return g, nil
}

func parseDirectiveTriple(fields []string, lineNo int) (lut.Triple[float64], error) {
	if len(fields) != 4 {
		return lut.Triple[float64]{}, fmt.Errorf("line %d: %s needs three values", lineNo, fields[0])
	}
	return parseTriple(fields[1:], lineNo)
}

func parseDataTriple(fields []string, lineNo int) (lut.Triple[float64], error) {
	if len(fields) != 3 {
		return lut.Triple[float64]{}, fmt.Errorf("line %d: data line needs three values, got %d", lineNo, len(fields))
	}
	return parseTriple(fields, lineNo)
}

func parseTriple(fields []string, lineNo int) (lut.Triple[float64], error) {
	var vals [3]float64
	for n, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return lut.Triple[float64]{}, fmt.Errorf("line %d: invalid number %q: %w", lineNo, f, err)
		}
		vals[n] = v
	}
	return lut.Triple[float64]{R: vals[0], G: vals[1], B: vals[2]}, nil
}
