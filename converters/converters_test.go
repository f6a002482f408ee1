package converters_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/katalvlaran/algotrace/closestpair"
	"github.com/katalvlaran/algotrace/converters"
	"github.com/katalvlaran/algotrace/karatsuba"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func traceKaratsuba(t *testing.T) *karatsuba.Result {
	t.Helper()
	r, err := karatsuba.Trace("12345", "678")
	require.NoError(t, err)

	return r
}

// TestTreeJSON checks node order, parent links, labels and edge ids.
func TestTreeJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, converters.TreeJSON(&buf, traceKaratsuba(t)))

	var doc converters.TreeDoc
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, "8369910", doc.Result)
	assert.Equal(t, 4, doc.CallCount)
	require.Len(t, doc.Nodes, 4)
	assert.Equal(t, converters.TreeNode{
		ID: "0", OperandA: "12345", OperandB: "678", Result: "8369910",
		Depth: 0, Label: "12345 * 678 = 8369910",
	}, doc.Nodes[0])
	assert.Equal(t, converters.TreeNode{
		ID: "0-2", Parent: "0", OperandA: "168", OperandB: "84", Result: "14112",
		Depth: 1, Label: "168 * 84 = 14112",
	}, doc.Nodes[3])

	require.Len(t, doc.Edges, 3)
	assert.Equal(t, karatsuba.Edge{ID: "e0-1", Source: "0", Target: "0-1"}, doc.Edges[1])

	// The root carries no parent key at all.
	assert.NotContains(t, strings.SplitN(buf.String(), "}", 2)[0], `"parent"`)
}

// TestStatesJSON checks the snapshot document of a small sweep.
func TestStatesJSON(t *testing.T) {
	pts := []closestpair.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 5, Y: 3}, {X: 6, Y: 0}, {X: 20, Y: 1}}
	r, err := closestpair.Trace(pts)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, converters.StatesJSON(&buf, r))

	var raw struct {
		ClosestPair [2]closestpair.Point `json:"closestPair"`
		Distance    float64              `json:"distance"`
		Comparisons int                  `json:"comparisons"`
		States      []map[string]any     `json:"states"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))

	assert.Equal(t, [2]closestpair.Point{{X: 4, Y: 0}, {X: 6, Y: 0}}, raw.ClosestPair)
	assert.Equal(t, 2.0, raw.Distance)
	assert.Equal(t, 3, raw.Comparisons)
	require.Len(t, raw.States, 12)
	assert.Equal(t, "initial", raw.States[0]["step"])
	assert.Nil(t, raw.States[0]["sweepPoint"])
	assert.Equal(t, "arrival", raw.States[1]["step"])

	// States decode back into the engine type.
	var typed converters.StatesDoc
	require.NoError(t, json.Unmarshal(buf.Bytes(), &typed))
	assert.Equal(t, r.States, typed.States)
}

// TestNilResults checks the guard on every converter.
func TestNilResults(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, converters.TreeJSON(&buf, nil), converters.ErrNilResult)
	assert.ErrorIs(t, converters.StatesJSON(&buf, nil), converters.ErrNilResult)
	assert.Zero(t, buf.Len())
	assert.Equal(t, "graph TD\n", converters.Mermaid(nil))
}

// TestMermaid checks the flowchart body and the playback overlay.
func TestMermaid(t *testing.T) {
	r := traceKaratsuba(t)

	want := "graph TD\n" +
		"    n0[\"12345 * 678 = 8369910\"]\n" +
		"    n0_0(\"123 * 6 = 738\")\n" +
		"    n0_1(\"45 * 78 = 3510\")\n" +
		"    n0_2(\"168 * 84 = 14112\")\n" +
		"    n0 --> n0_0\n" +
		"    n0 --> n0_1\n" +
		"    n0 --> n0_2\n"
	assert.Equal(t, want, converters.Mermaid(r))

	out := converters.Mermaid(r,
		converters.WithVisited("0", "0-0", "0", "9-9"),
		converters.WithCurrent("0-1"),
	)
	assert.True(t, strings.HasPrefix(out, want))
	assert.Equal(t, 1, strings.Count(out, "class n0 visited;"))
	assert.Contains(t, out, "class n0_0 visited;")
	assert.Contains(t, out, "class n0_1 current;")
	assert.NotContains(t, out, "n9_9")
}
