package gps

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrFieldCount marks a line with fewer than the seven colon-separated
// fields the protocol requires. Callers skip such lines with a
// diagnostic; every other parse error is fatal.
var ErrFieldCount = errors.New("wrong number of fields")

// ParseLine parses a single exported GPS line. Blank lines and comment
// lines (leading '#') produce (nil, nil). A line with too few fields
// produces an error wrapping ErrFieldCount. A coordinate field that is
// not numeric produces a fatal error.
func ParseLine(line string) (*Coordinate, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil, nil
	}

	fields := strings.Split(line, ":")
	if len(fields) < 7 {
		return nil, fmt.Errorf("%w: %s", ErrFieldCount, line)
	}

	x, err := parseAxis(fields[2], "x", line)
	if err != nil {
		return nil, err
	}
	y, err := parseAxis(fields[3], "y", line)
	if err != nil {
		return nil, err
	}
	z, err := parseAxis(fields[4], "z", line)
	if err != nil {
		return nil, err
	}

	return &Coordinate{
		Name:   fields[1],
		X:      x,
		Y:      y,
		Z:      z,
		Colour: fields[5],
		Notes:  fields[6],
	}, nil
}

func parseAxis(field, axis, line string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	if err != nil {
		return 0, fmt.Errorf("bad %s coordinate %q in line %q: %w", axis, field, line, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite %s coordinate %q in line %q", axis, field, line)
	}
	return v, nil
}
