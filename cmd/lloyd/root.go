package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "lloyd",
		Short:         "k-means clustering of 2D point tables",
		Long:          `Cluster two-dimensional points with Lloyd's algorithm and write the labeled table.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}

	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")

	rootCmd.AddCommand(
		NewRunCmd(),
		NewWatchCmd(),
		NewVersionCmd(version),
	)

	return rootCmd
}

func NewVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}
