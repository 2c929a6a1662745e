package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/posterlab/calgrid"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("render failed", "err", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "calposter",
		Short:         "Generate personalized calendar posters",
		Long:          "Generate personalized calendar posters: a week-per-box life calendar and a radial monthly goal calendar.",
		Version:       calgrid.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newLifeCmd(), newGoalCmd())
	return root
}
