package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algotrace/closestpair"
	"github.com/katalvlaran/algotrace/converters"
	"github.com/katalvlaran/algotrace/input"
)

// pointSource collects the flags that choose a point set.
type pointSource struct {
	file   string
	random int
	seed   int64
}

func (ps *pointSource) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&ps.file, "file", "", "JSON file holding [[x, y], ...]")
	cmd.Flags().IntVar(&ps.random, "random", 0, "Generate N random points (default from config)")
	cmd.Flags().Int64Var(&ps.seed, "seed", 0, "Seed for --random; 0 uses the default seed")
	cmd.MarkFlagsMutuallyExclusive("file", "random")
}

func (ps *pointSource) load(a *app) ([]closestpair.Point, error) {
	if ps.file != "" {
		f, err := os.Open(ps.file)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		return input.ParsePoints(f)
	}
	n := ps.random
	if n == 0 {
		n = a.cfg.Playback.RandomPoints
	}

	return input.RandomPoints(n, input.DefaultSpan, ps.seed), nil
}

func newClosestPairCmd(a *app) *cobra.Command {
	var (
		src    pointSource
		format string
		verify bool
	)
	cmd := &cobra.Command{
		Use:   "closest-pair",
		Short: "Find the closest pair of points with a sweep and print the trace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pts, err := src.load(a)
			if err != nil {
				return err
			}
			res, err := closestpair.Trace(pts)
			if err != nil {
				return err
			}
			a.log.Debug("closest pair traced", "points", len(pts), "states", len(res.States))

			if verify {
				if err := verifyClosestPair(pts, res); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			switch format {
			case "text":
				writeClosestPairText(out, res)
				return nil
			case "json":
				return converters.StatesJSON(out, res)
			default:
				return fmt.Errorf("unknown format %q (want text or json)", format)
			}
		},
	}
	src.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text, json")
	cmd.Flags().BoolVar(&verify, "verify", false, "Cross-check the result against brute force")

	return cmd
}

var errMismatch = errors.New("sweep and brute force disagree")

func verifyClosestPair(pts []closestpair.Point, res *closestpair.Result) error {
	_, want, err := closestpair.BruteForce(pts)
	if err != nil {
		return err
	}
	if want != res.BestDistance {
		return fmt.Errorf("%w: sweep %v, brute force %v", errMismatch, res.BestDistance, want)
	}

	return nil
}

func writeClosestPairText(w io.Writer, res *closestpair.Result) {
	fmt.Fprintf(w, "points:       %d\n", len(res.Sorted))
	fmt.Fprintf(w, "closest pair: %s - %s\n", res.BestPair[0], res.BestPair[1])
	fmt.Fprintf(w, "distance:     %.4f\n", res.BestDistance)
	fmt.Fprintf(w, "comparisons:  %d\n", res.Comparisons)
	fmt.Fprintf(w, "states:       %d\n", len(res.States))
}
