package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algotrace/converters"
	"github.com/katalvlaran/algotrace/input"
	"github.com/katalvlaran/algotrace/karatsuba"
)

func newKaratsubaCmd(a *app) *cobra.Command {
	var (
		format string
		leaf   int
	)
	cmd := &cobra.Command{
		Use:   "karatsuba X Y",
		Short: "Multiply two integers and print the recursion tree",
		Long: `Multiplies X and Y with Karatsuba's algorithm and prints every call.
Operands may use exponent notation as long as they are integral (1.5e3).`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := traceKaratsuba(args[0], args[1], leaf)
			if err != nil {
				return err
			}
			a.log.Debug("karatsuba traced", "calls", res.CallCount, "product_digits", len(res.Product))

			out := cmd.OutOrStdout()
			switch format {
			case "text":
				writeKaratsubaText(out, res)
				return nil
			case "json":
				return converters.TreeJSON(out, res)
			case "mermaid":
				_, err := io.WriteString(out, converters.Mermaid(res))
				return err
			default:
				return fmt.Errorf("unknown format %q (want text, json or mermaid)", format)
			}
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text, json, mermaid")
	cmd.Flags().IntVar(&leaf, "leaf", karatsuba.DefaultLeafDigits, "Widest operand multiplied directly")

	return cmd
}

func traceKaratsuba(x, y string, leaf int) (*karatsuba.Result, error) {
	ops, err := input.NormalizeOperands(x, y)
	if err != nil {
		return nil, err
	}

	return karatsuba.Trace(ops.X, ops.Y, karatsuba.WithLeafDigits(leaf))
}

func writeKaratsubaText(w io.Writer, res *karatsuba.Result) {
	t := res.Tree
	fmt.Fprintf(w, "%s\n", res.Root.Label())
	fmt.Fprintf(w, "calls: %d  leaves: %d  depth: %d\n\n", res.CallCount, len(t.Leaves()), t.MaxDepth())
	t.Walk(func(_ int, n karatsuba.CallNode) bool {
		fmt.Fprintf(w, "%s%-*s %s\n", strings.Repeat("  ", n.Depth), 8, n.ID, n.Label())
		return true
	})
}
