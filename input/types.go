package input

import (
	"errors"
	"fmt"
)

// MultiplicationFilePrefix is the required name prefix of operand uploads.
const MultiplicationFilePrefix = "integer_multiplication"

// PointsFilePrefix is the name prefix WriteSamples uses for point files.
// Point uploads are not required to carry it.
const PointsFilePrefix = "closest_pair_points"

// maxExponent bounds the exponent accepted in float notation, so "1e999999999"
// cannot allocate a gigantic integer.
const maxExponent = 10000

// Sentinel errors. All of them satisfy errors.Is(err, ErrInvalidInput).
var (
	// ErrInvalidInput is the root of every input rejection.
	ErrInvalidInput = errors.New("input: invalid input")

	// ErrBadOperand indicates an operand that is not a non-negative integer.
	ErrBadOperand = fmt.Errorf("%w: operand must be a non-negative integer", ErrInvalidInput)

	// ErrBadFileName indicates an operand upload with the wrong name prefix.
	ErrBadFileName = fmt.Errorf("%w: file name must start with %q", ErrInvalidInput, MultiplicationFilePrefix)

	// ErrBadJSON indicates content that is not a single JSON document.
	ErrBadJSON = fmt.Errorf("%w: content is not valid JSON", ErrInvalidInput)

	// ErrBadShape indicates valid JSON with an unexpected structure or types.
	ErrBadShape = fmt.Errorf("%w: unexpected JSON shape", ErrInvalidInput)
)

// Operands is a validated pair of multiplication inputs.
type Operands struct {
	X string `json:"x"`
	Y string `json:"y"`
}
