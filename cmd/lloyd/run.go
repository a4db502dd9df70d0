package main

import (
	"fmt"
	"io"
	"time"

	"github.com/hupe1980/lloyd"
	"github.com/spf13/cobra"
)

func NewRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Cluster a point table once",
		Long: `Read a point table, cluster it with k-means and write every point with its label.

Input and output may carry a .zst or .lz4 suffix for compressed tables.`,
		Example: `  lloyd run --input mall_data.csv --output output.csv --k 5 --epochs 100`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			return runJob(cmd, s)
		},
	}

	addJobFlags(cmd)
	return cmd
}

func runJob(cmd *cobra.Command, s *settings) error {
	ctx := cmd.Context()

	store, err := newStore(ctx, s.cfg.Storage)
	if err != nil {
		return err
	}

	p := lloyd.NewPipeline(store, store, s.options(cmd.ErrOrStderr())...)
	summary, err := p.Execute(ctx, s.job())
	if err != nil {
		return err
	}

	printSummary(cmd.OutOrStdout(), s.output, summary)
	return nil
}

func printSummary(w io.Writer, output string, s *lloyd.Summary) {
	fmt.Fprintf(w, "Clustered %d points into %d clusters over %d epochs in %s\n",
		s.Points, s.K, s.Epochs, s.Duration.Round(time.Microsecond))
	for c, n := range s.Sizes {
		fmt.Fprintf(w, "  cluster %d: %d points\n", c, n)
	}
	if len(s.Empty) > 0 {
		fmt.Fprintf(w, "  empty clusters: %v\n", s.Empty)
	}
	if s.Unassigned > 0 {
		fmt.Fprintf(w, "  unassigned: %d points\n", s.Unassigned)
	}
	fmt.Fprintf(w, "  index: %d bytes\n", s.IndexBytes)
	fmt.Fprintf(w, "Wrote %s\n", output)
}
