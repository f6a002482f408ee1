package karatsuba

import (
	"math/big"
)

// tracer accumulates the call tree of a single Trace invocation.
// It is created fresh per call and never shared.
type tracer struct {
	leaf     int
	nodes    []CallNode
	parent   []int
	children [][]int
	calls    int
}

// Trace multiplies x by y with Karatsuba recursion and returns the exact
// product, the call tree and the call count.
//
// Both operands must be non-empty strings of decimal digits; leading zeros
// are allowed and kept in the recorded operands. Invalid operands yield
// ErrInvalidOperand and no partial tree; invalid options yield
// ErrOptionViolation.
//
// Example:
//
//	res, err := karatsuba.Trace("12345678", "87654321")
//	// res.Product == "1082152022374638", res.Tree.Children(0) has 3 entries
//
//	res, err = karatsuba.Trace("1234", "5678", karatsuba.WithLeafDigits(3))
//	// the root splits into "0-0" (12·56), "0-1" (34·78), "0-2" (46·134)
//
// Complexity: O(n^1.585) calls for n-digit operands.
func Trace(x, y string, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !isDigits(x) || !isDigits(y) {
		return nil, ErrInvalidOperand
	}

	t := &tracer{leaf: o.LeafDigits}
	product := t.trace(x, y, 0, RootID, -1)
	tree := newTree(t.nodes, t.parent, t.children)

	return &Result{
		Product:    product.String(),
		Root:       tree.Root(),
		CallCount:  t.calls,
		LeafDigits: o.LeafDigits,
		Tree:       tree,
	}, nil
}

// trace records the call (x, y) under id and returns its exact product.
// The node is appended before its children so the arena stays in pre-order.
func (t *tracer) trace(x, y string, depth int, id string, parent int) *big.Int {
	t.calls++
	idx := len(t.nodes)
	t.nodes = append(t.nodes, CallNode{ID: id, OperandA: x, OperandB: y, Depth: depth})
	t.parent = append(t.parent, parent)
	t.children = append(t.children, nil)
	if parent >= 0 {
		t.children[parent] = append(t.children[parent], idx)
	}

	var product *big.Int
	n := max(len(x), len(y))
	if n <= t.leaf {
		product = new(big.Int).Mul(parse(x), parse(y))
	} else {
		m := n / 2
		xHigh, xLow := split(x, m)
		yHigh, yLow := split(y, m)

		z2 := t.trace(xHigh, yHigh, depth+1, id+"-0", idx)
		z0 := t.trace(xLow, yLow, depth+1, id+"-1", idx)

		xSum := new(big.Int).Add(parse(xHigh), parse(xLow))
		ySum := new(big.Int).Add(parse(yHigh), parse(yLow))
		z1 := t.trace(xSum.String(), ySum.String(), depth+1, id+"-2", idx)

		product = combine(z2, z1, z0, m)
	}

	t.nodes[idx].Result = product.String()

	return product
}

// split returns the high part (all but the last m digits, "0" when empty)
// and the low part (the last m digits, or all of s when shorter) of s.
func split(s string, m int) (high, low string) {
	if len(s) <= m {
		return "0", s
	}
	cut := len(s) - m

	return s[:cut], s[cut:]
}

// combine evaluates z2·10^(2m) + (z1 − z2 − z0)·10^m + z0.
// The middle term is never negative for true sub-products, but the
// arithmetic does not rely on it.
func combine(z2, z1, z0 *big.Int, m int) *big.Int {
	shift := pow10(m)

	mid := new(big.Int).Sub(z1, z2)
	mid.Sub(mid, z0)
	mid.Mul(mid, shift)

	high := new(big.Int).Mul(z2, shift)
	high.Mul(high, shift)

	out := new(big.Int).Add(high, mid)

	return out.Add(out, z0)
}

// pow10 returns 10^k.
func pow10(k int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(k)), nil)
}

// parse converts a validated digit string to a big.Int.
// Callers only pass digit strings, so SetString cannot fail here.
func parse(s string) *big.Int {
	z, _ := new(big.Int).SetString(s, 10)

	return z
}

// isDigits reports whether s is non-empty and consists only of 0-9.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
