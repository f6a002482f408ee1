package input

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/algotrace/closestpair"
)

// CheckMultiplicationFileName enforces the operand upload naming rule on
// the base name of name.
func CheckMultiplicationFileName(name string) error {
	if !strings.HasPrefix(filepath.Base(name), MultiplicationFilePrefix) {
		return fmt.Errorf("%w: got %q", ErrBadFileName, filepath.Base(name))
	}

	return nil
}

// ParseMultiplicationFile reads an operand upload.
//
// The file name must start with MultiplicationFilePrefix and the content
// must be a JSON object whose "x" and "y" members are JSON numbers of any
// size. Quoted numbers are rejected, like any other non-number value.
func ParseMultiplicationFile(name string, r io.Reader) (Operands, error) {
	if err := CheckMultiplicationFileName(name); err != nil {
		return Operands{}, err
	}

	var doc any
	if err := decodeSingle(r, &doc); err != nil {
		return Operands{}, err
	}
	obj, ok := doc.(map[string]any)
	if !ok {
		return Operands{}, fmt.Errorf("%w: want an object with numeric x and y", ErrBadShape)
	}

	x, err := numberField(obj, "x")
	if err != nil {
		return Operands{}, err
	}
	y, err := numberField(obj, "y")
	if err != nil {
		return Operands{}, err
	}

	return NormalizeOperands(x, y)
}

// ParsePoints reads a point upload: a JSON array of [x, y] number pairs.
// An empty array is valid here; the engine enforces its own minimum.
func ParsePoints(r io.Reader) ([]closestpair.Point, error) {
	var doc any
	if err := decodeSingle(r, &doc); err != nil {
		return nil, err
	}
	arr, ok := doc.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: want an array of [x, y] coordinates", ErrBadShape)
	}

	points := make([]closestpair.Point, 0, len(arr))
	for i, item := range arr {
		pair, ok := item.([]any)
		if !ok || len(pair) != 2 {
			return nil, fmt.Errorf("%w: element %d is not an [x, y] pair", ErrBadShape, i)
		}
		x, err := coordinate(pair[0])
		if err != nil {
			return nil, fmt.Errorf("%w: element %d: x %v", ErrBadShape, i, err)
		}
		y, err := coordinate(pair[1])
		if err != nil {
			return nil, fmt.Errorf("%w: element %d: y %v", ErrBadShape, i, err)
		}
		points = append(points, closestpair.Point{X: x, Y: y})
	}

	return points, nil
}

// decodeSingle decodes exactly one JSON document from r with json.Number
// preserved for numbers.
func decodeSingle(r io.Reader, v any) error {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", ErrBadJSON, err)
	}
	if dec.More() {
		return fmt.Errorf("%w: trailing data after document", ErrBadJSON)
	}

	return nil
}

func numberField(obj map[string]any, key string) (string, error) {
	v, ok := obj[key]
	if !ok {
		return "", fmt.Errorf("%w: missing %q", ErrBadShape, key)
	}
	n, ok := v.(json.Number)
	if !ok {
		return "", fmt.Errorf("%w: %q must be a number", ErrBadShape, key)
	}

	return n.String(), nil
}

func coordinate(v any) (float64, error) {
	n, ok := v.(json.Number)
	if !ok {
		return 0, errors.New("is not a number")
	}
	f, err := strconv.ParseFloat(n.String(), 64)
	if err != nil || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%s is out of range", n)
	}

	return f, nil
}
