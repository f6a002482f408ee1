// Package closestpair finds the closest pair of points in the plane with an
// incremental x-sweep and records a snapshot at every decision point, so a
// player can animate the search.
//
// What:
//
//   - Points are sorted by X (stable: ties keep input order).
//   - The first two points seed the best pair and the frontier.
//   - Every further point p is an arrival; frontier points q with
//     p.X − q.X > best are pruned, the rest are compared with p, and p joins
//     the frontier.
//
// Trace granularity:
//
//	initial          one state, no sweep point
//	per point p      StepArrival (before pruning)
//	per frontier q   StepCompare, StepMeasured (same values, after the
//	                 distance is known), StepImproved when d < best
//
// The compare/measured pair is deliberate: players use it to hold the
// comparison line on screen for two ticks. Every state owns copies of the
// frontier and best pair; nothing emitted aliases the working set.
//
// Complexity:
//
//   - Worst case O(n²) comparisons (all points share one X), O(n log n)
//     for well spread inputs.
//   - States: O(n + comparisons), each holding an O(frontier) copy.
//
// Errors:
//
//   - ErrTooFewPoints: fewer than two points were supplied.
//   - ErrInvalidPoint: a coordinate is NaN or infinite.
package closestpair
