package main

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/posterlab/calgrid"
)

func newGoalCmd() *cobra.Command {
	var (
		dateStr string
		sunday  bool
		output  string
		format  string
	)

	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Generate a radial goal calendar poster",
		Long: "Generate a radial goal calendar: the twelve months of the year fanned " +
			"around a circle, with the days before the reference date filled in.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			date := time.Now().UTC().Truncate(24 * time.Hour)
			if dateStr != "" {
				var err error
				date, err = calgrid.ParseDate(dateStr)
				if err != nil {
					return err
				}
			}

			gc := calgrid.NewGoalCalendar(date)
			if sunday {
				gc.FirstDay = time.Sunday
			}

			cfg := calgrid.DefaultConfig()
			side := cfg.CanvasSize * cfg.PixelScale
			if err := writePoster(output, format, side, side, gc.Render); err != nil {
				return err
			}
			slog.Info("wrote goal calendar", "path", output, "year", date.Year())
			return nil
		},
	}

	cmd.Flags().StringVarP(&dateStr, "date", "d", "", "reference date, ISO format (default is today)")
	cmd.Flags().BoolVarP(&sunday, "sunday", "s", false, "start weeks on Sunday instead of Monday")
	cmd.Flags().StringVarP(&output, "output", "o", "goal.pdf", "output file")
	cmd.Flags().StringVar(&format, "format", "", "output format: pdf, png or svg (default is inferred from the output file)")
	return cmd
}
