package converters

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/katalvlaran/algotrace/closestpair"
	"github.com/katalvlaran/algotrace/karatsuba"
)

// ErrNilResult is returned when a converter is handed a nil result.
var ErrNilResult = errors.New("converters: nil result")

// TreeNode is the wire form of one karatsuba call.
type TreeNode struct {
	ID       string `json:"id"`
	Parent   string `json:"parent,omitempty"`
	OperandA string `json:"operandA"`
	OperandB string `json:"operandB"`
	Result   string `json:"result"`
	Depth    int    `json:"depth"`
	Label    string `json:"label"`
}

// TreeDoc is the wire form of a traced multiplication.
type TreeDoc struct {
	Result    string           `json:"result"`
	CallCount int              `json:"callCount"`
	Nodes     []TreeNode       `json:"nodes"`
	Edges     []karatsuba.Edge `json:"edges"`
}

// StatesDoc is the wire form of a traced sweep.
type StatesDoc struct {
	ClosestPair [2]closestpair.Point `json:"closestPair"`
	Distance    float64              `json:"distance"`
	Comparisons int                  `json:"comparisons"`
	States      []closestpair.State  `json:"states"`
}

// NewTreeDoc flattens r into pre-order nodes and parent→child edges.
func NewTreeDoc(r *karatsuba.Result) (TreeDoc, error) {
	if r == nil || r.Tree == nil {
		return TreeDoc{}, ErrNilResult
	}

	t := r.Tree
	nodes := make([]TreeNode, 0, t.Len())
	t.Walk(func(i int, n karatsuba.CallNode) bool {
		tn := TreeNode{
			ID:       n.ID,
			OperandA: n.OperandA,
			OperandB: n.OperandB,
			Result:   n.Result,
			Depth:    n.Depth,
			Label:    n.Label(),
		}
		if p := t.Parent(i); p >= 0 {
			tn.Parent = t.Node(p).ID
		}
		nodes = append(nodes, tn)

		return true
	})

	return TreeDoc{
		Result:    r.Product,
		CallCount: r.CallCount,
		Nodes:     nodes,
		Edges:     t.Edges(),
	}, nil
}

// NewStatesDoc wraps r for serialization. States are shared, not copied.
func NewStatesDoc(r *closestpair.Result) (StatesDoc, error) {
	if r == nil {
		return StatesDoc{}, ErrNilResult
	}

	states := r.States
	if states == nil {
		states = []closestpair.State{}
	}

	return StatesDoc{
		ClosestPair: r.BestPair,
		Distance:    r.BestDistance,
		Comparisons: r.Comparisons,
		States:      states,
	}, nil
}

// TreeJSON writes the call tree of r to w as one JSON document.
func TreeJSON(w io.Writer, r *karatsuba.Result) error {
	doc, err := NewTreeDoc(r)
	if err != nil {
		return err
	}

	return encode(w, doc)
}

// StatesJSON writes the sweep snapshots of r to w as one JSON document.
func StatesJSON(w io.Writer, r *closestpair.Result) error {
	doc, err := NewStatesDoc(r)
	if err != nil {
		return err
	}

	return encode(w, doc)
}

func encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
