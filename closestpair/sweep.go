package closestpair

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// sweeper holds the mutable state of one Trace invocation.
type sweeper struct {
	opts        Options
	frontier    []Point
	best        [2]Point
	bestDist    float64
	states      []State
	comparisons int
}

// Trace runs the frontier sweep over points and returns the closest pair
// with the full list of snapshots.
//
// The input slice is not modified. Equal distances keep the pair found
// first, so the result depends only on the input order.
//
// Example:
//
//	res, err := closestpair.Trace([]closestpair.Point{{0, 0}, {3, 4}, {0, 1}, {10, 10}})
//	// res.BestPair == [{0 0} {0 1}], res.BestDistance == 1
//
// Complexity: O(n log n) sort plus O(n·f) comparisons, f = frontier size.
func Trace(points []Point, opts ...Option) (*Result, error) {
	if len(points) < 2 {
		return nil, ErrTooFewPoints
	}
	for i, p := range points {
		if !finite(p.X) || !finite(p.Y) {
			return nil, fmt.Errorf("%w: point %d is %v", ErrInvalidPoint, i, p)
		}
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	sorted := make([]Point, len(points))
	copy(sorted, points)
	slices.SortStableFunc(sorted, func(a, b Point) int { return cmp.Compare(a.X, b.X) })

	s := &sweeper{
		opts:     o,
		frontier: []Point{sorted[0], sorted[1]},
		best:     [2]Point{sorted[0], sorted[1]},
		bestDist: Distance(sorted[0], sorted[1]),
		states:   make([]State, 0, 4*len(sorted)),
	}
	s.emit(StepInitial, nil, nil)

	for _, p := range sorted[2:] {
		s.visit(p)
	}
	if math.IsInf(s.bestDist, 0) {
		return nil, ErrDistanceOverflow
	}

	return &Result{
		BestPair:     s.best,
		BestDistance: s.bestDist,
		States:       s.states,
		Comparisons:  s.comparisons,
		Sorted:       sorted,
	}, nil
}

// visit processes one sweep point: arrival, pruning, comparisons, insertion.
func (s *sweeper) visit(p Point) {
	s.emit(StepArrival, &p, nil)
	s.prune(p)

	for _, q := range s.frontier {
		s.emit(StepCompare, &p, &q)
		s.comparisons++
		d := Distance(p, q)
		s.emit(StepMeasured, &p, &q)
		if d < s.bestDist {
			s.bestDist = d
			s.best = [2]Point{q, p}
			s.emit(StepImproved, &p, &q)
		}
	}

	s.frontier = append(s.frontier, p)
}

// prune drops frontier points lying more than bestDist to the left of p.
// Filtering happens in place; emitted states hold their own copies.
func (s *sweeper) prune(p Point) {
	kept := s.frontier[:0]
	for _, q := range s.frontier {
		if p.X-q.X <= s.bestDist {
			kept = append(kept, q)
		}
	}
	s.frontier = kept
}

// emit appends a snapshot of the current sweep state.
func (s *sweeper) emit(step StepKind, sweep, candidate *Point) {
	st := State{
		Step:         step,
		SweepPoint:   clonePoint(sweep),
		Candidate:    clonePoint(candidate),
		BestDistance: s.bestDist,
		Frontier:     make([]Point, len(s.frontier)),
	}
	copy(st.Frontier, s.frontier)
	pair := s.best
	st.BestPair = &pair

	s.states = append(s.states, st)
	s.opts.OnState(len(s.states)-1, st)
}

// BruteForce compares every pair and returns the first closest pair in
// input order. It is the O(n²) reference used to cross-check Trace.
func BruteForce(points []Point) ([2]Point, float64, error) {
	if len(points) < 2 {
		return [2]Point{}, 0, ErrTooFewPoints
	}
	best := [2]Point{points[0], points[1]}
	bestDist := math.Inf(1)
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			if d := Distance(points[i], points[j]); d < bestDist {
				bestDist = d
				best = [2]Point{points[i], points[j]}
			}
		}
	}
	if math.IsInf(bestDist, 0) {
		return [2]Point{}, 0, ErrDistanceOverflow
	}

	return best, bestDist, nil
}

func clonePoint(p *Point) *Point {
	if p == nil {
		return nil
	}
	c := *p

	return &c
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
