package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/katalvlaran/algotrace/closestpair"
	"github.com/katalvlaran/algotrace/karatsuba"
)

// Palette used by the terminal player.
const (
	colorCurrent = "#fbbf24"
	colorVisited = "#818cf8"
	colorBest    = "#34d399"
	colorMuted   = "#6b7280"
)

// screen draws frames either in place on a terminal or as appended lines.
type screen struct {
	out         *termenv.Output
	interactive bool
}

// newScreen detects whether w is a terminal. Anything else (pipes, files,
// buffers) gets plain uncoloured output, one line per frame.
func newScreen(w io.Writer) *screen {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return &screen{out: termenv.NewOutput(f), interactive: true}
	}

	return &screen{out: termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))}
}

func (s *screen) paint(text, hex string) termenv.Style {
	return s.out.String(text).Foreground(s.out.Color(hex))
}

// karatsubaFrame renders call i of t. On a terminal the whole tree is
// redrawn with visited calls and the current one highlighted.
func (s *screen) karatsubaFrame(t *karatsuba.Tree, i int) {
	header := fmt.Sprintf("[%*d/%d] ", width(t.Len()), i+1, t.Len())
	if !s.interactive {
		n := t.Node(i)
		fmt.Fprintf(s.out, "%s%s%s\n", header, strings.Repeat("  ", n.Depth), n.Label())
		return
	}

	s.out.ClearScreen()
	fmt.Fprintln(s.out, s.paint(header+"karatsuba", colorMuted))
	t.Walk(func(k int, n karatsuba.CallNode) bool {
		line := strings.Repeat("  ", n.Depth) + n.Label()
		switch {
		case k == i:
			fmt.Fprintln(s.out, s.paint(line, colorCurrent).Bold())
		case k < i:
			fmt.Fprintln(s.out, s.paint(line, colorVisited))
		default:
			fmt.Fprintln(s.out, s.paint(line, colorMuted))
		}
		return true
	})
}

// closestPairFrame renders state i of states.
func (s *screen) closestPairFrame(states []closestpair.State, i int) {
	st := states[i]
	header := fmt.Sprintf("[%*d/%d] %-8s", width(len(states)), i+1, len(states), st.Step)
	body := describeState(st)
	if !s.interactive {
		fmt.Fprintf(s.out, "%s %s\n", header, body)
		return
	}

	s.out.ClearScreen()
	fmt.Fprintln(s.out, s.paint(header, colorMuted))
	fmt.Fprintln(s.out, s.paint(body, colorCurrent))
	if st.BestPair != nil {
		fmt.Fprintln(s.out, s.paint(fmt.Sprintf("best %s - %s = %.4f", st.BestPair[0], st.BestPair[1], st.BestDistance), colorBest))
	}
	frontier := make([]string, len(st.Frontier))
	for k, p := range st.Frontier {
		frontier[k] = p.String()
	}
	fmt.Fprintln(s.out, s.paint("frontier "+strings.Join(frontier, " "), colorVisited))
}

func describeState(st closestpair.State) string {
	var sb strings.Builder
	if st.SweepPoint != nil {
		fmt.Fprintf(&sb, "sweep=%s ", st.SweepPoint)
	}
	if st.Candidate != nil {
		fmt.Fprintf(&sb, "candidate=%s ", st.Candidate)
	}
	fmt.Fprintf(&sb, "best=%.4f frontier=%d", st.BestDistance, len(st.Frontier))

	return sb.String()
}

func width(n int) int {
	return len(fmt.Sprint(n))
}
