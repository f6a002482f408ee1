package karatsuba

import (
	"errors"
	"fmt"
)

// DefaultLeafDigits is the widest operand solved directly without splitting.
const DefaultLeafDigits = 4

// RootID is the path id of the outermost call.
const RootID = "0"

// Sentinel errors for Trace.
var (
	// ErrInvalidOperand indicates an empty operand or one containing
	// characters other than the decimal digits 0-9.
	ErrInvalidOperand = errors.New("karatsuba: operand must be a non-empty decimal digit string")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("karatsuba: invalid option supplied")
)

// Option configures Trace via functional arguments. An invalid Option is
// recorded and surfaced as ErrOptionViolation when Trace runs.
type Option func(*Options)

// Options holds the tunables of Trace.
//
//   - LeafDigits: a call whose wider operand has at most this many digits
//     is a leaf. Must be ≥ 1; default DefaultLeafDigits.
type Options struct {
	LeafDigits int

	err error
}

// DefaultOptions returns Options with LeafDigits = DefaultLeafDigits.
func DefaultOptions() Options {
	return Options{LeafDigits: DefaultLeafDigits}
}

// WithLeafDigits sets the base-case width.
//
//	k ≥ 1: leaf iff max(len(a), len(b)) ≤ k
//	k < 1: invalid → ErrOptionViolation
func WithLeafDigits(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: LeafDigits must be at least 1 (%d)", ErrOptionViolation, k)

			return
		}
		o.LeafDigits = k
	}
}

// CallNode is one multiplication performed during the recursion.
//
// Fields:
//   - ID: path id ("0", "0-2", "0-2-1", ...).
//   - OperandA: left operand as handed to the call (leading zeros kept).
//   - OperandB: right operand as handed to the call.
//   - Result: canonical decimal product of the two operands.
//   - Depth: recursion depth, 0 for the root.
type CallNode struct {
	ID       string `json:"id"`
	OperandA string `json:"operandA"`
	OperandB string `json:"operandB"`
	Result   string `json:"result"`
	Depth    int    `json:"depth"`
}

// Width returns the digit width that decides leaf vs. recursion.
func (n CallNode) Width() int {
	return max(len(n.OperandA), len(n.OperandB))
}

// Label renders the node the way the flow chart shows it: "x * y = r".
func (n CallNode) Label() string {
	return fmt.Sprintf("%s * %s = %s", n.OperandA, n.OperandB, n.Result)
}

// Result is the outcome of a traced multiplication.
//
//   - Product: exact decimal product of the two inputs.
//   - Root: the outermost call (ID "0").
//   - CallCount: number of calls made, equal to Tree.Len().
//   - LeafDigits: base-case width the tree was built with.
//   - Tree: the complete call tree.
type Result struct {
	Product    string
	Root       CallNode
	CallCount  int
	LeafDigits int
	Tree       *Tree
}
