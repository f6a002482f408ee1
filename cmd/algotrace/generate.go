package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algotrace/input"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		dir   string
		count int
		seed  int64
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write sample upload files for both algorithms",
		Long: `Writes COUNT point files (closest_pair_points_<i>.txt) and COUNT operand
files (integer_multiplication_<i>.txt) into DIR. Same seed, same files.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("--count must be positive, got %d", count)
			}
			paths, err := input.WriteSamples(dir, count, seed)
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			a.log.Info("samples written", "dir", dir, "files", len(paths))

			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "data_files", "Output directory")
	cmd.Flags().IntVar(&count, "count", 5, "Files to write per algorithm")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed; 0 uses the default seed")

	return cmd
}
