package main

import (
	"bufio"
	"context"
	"errors"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algotrace/closestpair"
	"github.com/katalvlaran/algotrace/karatsuba"
	"github.com/katalvlaran/algotrace/playback"
)

// playFlags are shared by both play subcommands.
type playFlags struct {
	step     bool
	loop     bool
	interval time.Duration
}

func (pf *playFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&pf.step, "step", false, "Advance on Enter instead of a timer (q quits, b goes back)")
	cmd.Flags().BoolVar(&pf.loop, "loop", false, "Restart from the first frame after the last one")
	cmd.Flags().DurationVar(&pf.interval, "interval", 0, "Delay between frames (default from config)")
}

func newPlayCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Replay a trace frame by frame in the terminal",
	}

	var kf playFlags
	var leaf int
	kc := &cobra.Command{
		Use:   "karatsuba X Y",
		Short: "Replay the Karatsuba call sequence",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := traceKaratsuba(args[0], args[1], leaf)
			if err != nil {
				return err
			}
			scr := newScreen(cmd.OutOrStdout())
			draw := func(i int) { scr.karatsubaFrame(res.Tree, i) }

			return play(cmd, a, kf, res.Tree.Nodes(), draw)
		},
	}
	kf.register(kc)
	kc.Flags().IntVar(&leaf, "leaf", karatsuba.DefaultLeafDigits, "Widest operand multiplied directly")

	var cf playFlags
	var src pointSource
	cc := &cobra.Command{
		Use:   "closest-pair",
		Short: "Replay the closest-pair sweep",
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
			scr := newScreen(cmd.OutOrStdout())
			draw := func(i int) { scr.closestPairFrame(res.States, i) }

			return play(cmd, a, cf, res.States, draw)
		},
	}
	cf.register(cc)
	src.register(cc)

	cmd.AddCommand(kc, cc)

	return cmd
}

// play drives frames through a playback.Player, either on a timer or on
// Enter presses read from the command's input.
func play[T any](cmd *cobra.Command, a *app, pf playFlags, frames []T, draw func(int)) error {
	interval := pf.interval
	if interval <= 0 {
		interval = a.cfg.Playback.Interval.Std()
	}
	p, err := playback.New(frames,
		playback.WithInterval(interval),
		playback.WithLoop(pf.loop && !pf.step),
		playback.WithOnFrame(draw),
	)
	if err != nil {
		return err
	}

	draw(p.Index())
	if pf.step {
		return stepThrough(cmd, p)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	a.log.Debug("playing", "frames", p.Len(), "interval", interval)
	if err := p.Play(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}

func stepThrough[T any](cmd *cobra.Command, p *playback.Player[T]) error {
	sc := bufio.NewScanner(cmd.InOrStdin())
	for !p.AtEnd() && sc.Scan() {
		switch strings.TrimSpace(sc.Text()) {
		case "q":
			return nil
		case "b":
			p.Prev()
		default:
			p.Next()
		}
	}

	return sc.Err()
}
