// Package karatsuba multiplies non-negative decimal integers with the
// Karatsuba digit-splitting scheme and records every sub-multiplication as a
// node of a call tree, so the recursion can be replayed step by step.
//
// What:
//
//   - Trace(x, y) returns the exact product together with the call tree and
//     the number of calls made (the outer call included).
//   - Operands and results are plain digit strings; all arithmetic is done
//     with math/big, so nothing overflows.
//   - Tree exposes the call tree as an arena (pre-order node slice plus
//     parent/child indices) while keeping the path ids of the nodes:
//     the root is "0" and the children of id are id+"-0" (high×high),
//     id+"-1" (low×low) and id+"-2" (cross sums).
//
// Recursion:
//
//	n = max(len(x), len(y))
//	n ≤ 4      → leaf, multiply directly
//	otherwise  → m = n/2
//	             z2 = x_hi·y_hi, z0 = x_lo·y_lo, z1 = (x_hi+x_lo)·(y_hi+y_lo)
//	             x·y = z2·10^(2m) + (z1 − z2 − z0)·10^m + z0
//
// The cross-sum branch decides leaf vs. recursion from its own operand
// width, which may exceed the width of its siblings by one digit.
//
// Complexity:
//
//   - Calls: O(n^log2(3)) ≈ O(n^1.585) nodes for n-digit operands.
//   - Memory: O(number of calls), one CallNode each.
//
// Errors:
//
//   - ErrInvalidOperand: an operand is empty or contains a non-digit.
package karatsuba
