package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/hupe1980/lloyd"
	"github.com/hupe1980/lloyd/codec"
	"github.com/hupe1980/lloyd/internal/config"
	"github.com/spf13/cobra"
)

// settings is the merged view of config file and flags for one job.
type settings struct {
	cfg    *config.Config
	input  string
	output string
}

func addJobFlags(cmd *cobra.Command) {
	defaults := config.DefaultConfig()

	cmd.Flags().StringP("input", "i", "", "Input point table (CSV or JSON lines)")
	cmd.Flags().StringP("output", "o", "output.csv", "Output table with cluster labels")
	cmd.Flags().IntP("k", "k", defaults.K, "Number of clusters")
	cmd.Flags().IntP("epochs", "e", defaults.Epochs, "Number of passes")
	cmd.Flags().Int64("seed", 0, "Random seed (0 seeds from the clock)")
	cmd.Flags().Int("workers", defaults.Workers, "Goroutines used by the assignment step")
	cmd.Flags().String("empty-cluster", defaults.EmptyCluster, "Empty cluster policy (freeze|reseed|reject)")
	cmd.Flags().String("format", "", "Table format (csv|jsonl), guessed from the input name if empty")
	_ = cmd.MarkFlagRequired("input")
}

// loadSettings reads the config file and applies explicitly set flags on top.
func loadSettings(cmd *cobra.Command) (*settings, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("k") {
		cfg.K, _ = flags.GetInt("k")
	}
	if flags.Changed("epochs") {
		cfg.Epochs, _ = flags.GetInt("epochs")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetInt64("seed")
	}
	if flags.Changed("workers") {
		cfg.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("empty-cluster") {
		cfg.EmptyCluster, _ = flags.GetString("empty-cluster")
	}
	if flags.Changed("format") {
		cfg.Format, _ = flags.GetString("format")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	s := &settings{cfg: cfg}
	s.input, _ = flags.GetString("input")
	s.output, _ = flags.GetString("output")
	return s, nil
}

func (s *settings) format() codec.Format {
	if s.cfg.Format == "" {
		return codec.FormatFromPath(s.input)
	}
	f, _ := codec.FormatByName(s.cfg.Format)
	return f
}

func (s *settings) job() lloyd.Job {
	return lloyd.Job{
		Input:  s.input,
		Output: s.output,
		Epochs: s.cfg.Epochs,
		K:      s.cfg.K,
		Format: s.format(),
	}
}

func (s *settings) options(w io.Writer) []lloyd.Option {
	policy, _ := lloyd.ParseEmptyClusterPolicy(s.cfg.EmptyCluster)

	opts := []lloyd.Option{
		lloyd.WithEmptyClusterPolicy(policy),
		lloyd.WithWorkers(s.cfg.Workers),
		lloyd.WithLogger(newLogger(s.cfg.Log, w)),
	}
	if s.cfg.Seed != 0 {
		opts = append(opts, lloyd.WithSeed(s.cfg.Seed))
	}
	return opts
}

func newLogger(lc config.LogConfig, w io.Writer) *lloyd.Logger {
	level, _ := lc.SlogLevel()
	ho := &slog.HandlerOptions{Level: level}
	if lc.Format == "json" {
		return lloyd.NewLogger(slog.NewJSONHandler(w, ho))
	}
	return lloyd.NewLogger(slog.NewTextHandler(w, ho))
}
