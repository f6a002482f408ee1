package closestpair

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for Trace.
var (
	// ErrTooFewPoints is returned when fewer than two points are supplied.
	ErrTooFewPoints = errors.New("closestpair: at least two points are required")

	// ErrInvalidPoint is returned when a coordinate is NaN or ±Inf.
	ErrInvalidPoint = errors.New("closestpair: point coordinates must be finite")

	// ErrDistanceOverflow is returned when the closest distance exceeds the
	// float64 range, e.g. for points near -MaxFloat64 and +MaxFloat64.
	ErrDistanceOverflow = errors.New("closestpair: closest distance overflows float64")
)

// Point is a location in the plane.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// String formats p as "(x, y)" with two decimals, as the UI prints it.
func (p Point) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", p.X, p.Y)
}

// Distance returns the Euclidean distance between p and q. It stays finite
// whenever the coordinate differences do.
func Distance(p, q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// StepKind tells which decision point a State was emitted at.
type StepKind int

const (
	// StepInitial is the single state emitted after seeding the best pair.
	StepInitial StepKind = iota
	// StepArrival is emitted when a new sweep point is taken, before pruning.
	StepArrival
	// StepCompare is emitted before measuring the sweep point against a candidate.
	StepCompare
	// StepMeasured is emitted right after the distance is computed.
	StepMeasured
	// StepImproved is emitted when the candidate produced a new best pair.
	StepImproved
)

var stepNames = [...]string{"initial", "arrival", "compare", "measured", "improved"}

// String returns the lower-case name of the step.
func (k StepKind) String() string {
	if k < 0 || int(k) >= len(stepNames) {
		return fmt.Sprintf("StepKind(%d)", int(k))
	}

	return stepNames[k]
}

// MarshalText encodes the step by name.
func (k StepKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a step name produced by MarshalText.
func (k *StepKind) UnmarshalText(b []byte) error {
	for i, n := range stepNames {
		if n == string(b) {
			*k = StepKind(i)

			return nil
		}
	}

	return fmt.Errorf("closestpair: unknown step %q", b)
}

// State is one snapshot of the sweep.
//
// Fields:
//   - Step: decision point that emitted the state.
//   - SweepPoint: point being processed; nil in the initial state.
//   - Candidate: frontier point being compared; nil when none.
//   - BestDistance: best distance known at emission time.
//   - Frontier: copy of the frontier at emission time.
//   - BestPair: copy of the best pair at emission time.
type State struct {
	Step         StepKind  `json:"step"`
	SweepPoint   *Point    `json:"sweepPoint"`
	Candidate    *Point    `json:"candidate"`
	BestDistance float64   `json:"bestDistance"`
	Frontier     []Point   `json:"frontier"`
	BestPair     *[2]Point `json:"bestPair"`
}

// Result is the outcome of a traced sweep.
//
//   - BestPair: an achieving pair, in (earlier, later) sweep order.
//   - BestDistance: minimum pairwise distance.
//   - States: every snapshot, in emission order.
//   - Comparisons: number of distance computations in the sweep loop.
//   - Sorted: the input points in sweep order.
type Result struct {
	BestPair     [2]Point
	BestDistance float64
	States       []State
	Comparisons  int
	Sorted       []Point
}

// Option configures Trace via functional arguments.
type Option func(*Options)

// Options holds the tunables of Trace.
//
//   - OnState: called synchronously with the index and value of every
//     state as it is emitted. The state must be treated as read-only.
type Options struct {
	OnState func(i int, s State)
}

// DefaultOptions returns Options with a no-op OnState hook.
func DefaultOptions() Options {
	return Options{
		OnState: func(int, State) {},
	}
}

// WithOnState registers a callback run on every emitted state.
func WithOnState(fn func(i int, s State)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnState = fn
		}
	}
}
