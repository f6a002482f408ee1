package input

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/katalvlaran/algotrace/closestpair"
)

// Defaults of the interactive visualizer.
const (
	// DefaultPointCount is the size of a freshly generated random set.
	DefaultPointCount = 13
	// DefaultSpan is the coordinate range [0, DefaultSpan) of random floats.
	DefaultSpan = 100.0
)

// defaultSeed is used when callers pass seed == 0.
const defaultSeed int64 = 1

// newRand returns a deterministic RNG; seed 0 maps to defaultSeed.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// RandomPoints returns n points with float coordinates in [0, span).
// n ≤ 0 yields an empty slice.
func RandomPoints(n int, span float64, seed int64) []closestpair.Point {
	return randomPoints(newRand(seed), n, span)
}

func randomPoints(r *rand.Rand, n int, span float64) []closestpair.Point {
	if n < 0 {
		n = 0
	}
	pts := make([]closestpair.Point, n)
	for i := range pts {
		pts[i] = closestpair.Point{X: r.Float64() * span, Y: r.Float64() * span}
	}

	return pts
}

// RandomIntPoints returns n points with integer coordinates in [0, limit],
// the grid the sample files use.
func RandomIntPoints(n, limit int, seed int64) []closestpair.Point {
	return randomIntPoints(newRand(seed), n, limit)
}

func randomIntPoints(r *rand.Rand, n, limit int) []closestpair.Point {
	if n < 0 {
		n = 0
	}
	if limit < 0 {
		limit = 0
	}
	pts := make([]closestpair.Point, n)
	for i := range pts {
		pts[i] = closestpair.Point{X: float64(r.Intn(limit + 1)), Y: float64(r.Intn(limit + 1))}
	}

	return pts
}

// RandomOperands returns two integers of exactly digits digits each
// (no leading zero). digits < 1 → ErrBadOperand.
func RandomOperands(digits int, seed int64) (Operands, error) {
	return randomOperands(newRand(seed), digits)
}

func randomOperands(r *rand.Rand, digits int) (Operands, error) {
	if digits < 1 {
		return Operands{}, fmt.Errorf("%w: digit count must be positive (%d)", ErrBadOperand, digits)
	}

	return Operands{X: randomNumber(r, digits), Y: randomNumber(r, digits)}, nil
}

func randomNumber(r *rand.Rand, digits int) string {
	var sb strings.Builder
	sb.Grow(digits)
	sb.WriteByte(byte('1' + r.Intn(9)))
	for i := 1; i < digits; i++ {
		sb.WriteByte(byte('0' + r.Intn(10)))
	}

	return sb.String()
}
