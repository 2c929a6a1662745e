package main

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/posterlab/calgrid"
)

func newLifeCmd() *cobra.Command {
	var (
		title       string
		subtitle    string
		sidebar     string
		age         int
		darkenUntil string
		output      string
		format      string
	)

	cmd := &cobra.Command{
		Use:   "life <birthdate>",
		Short: "Generate a life calendar poster",
		Long: "Generate a personalized \"Life Calendar\", inspired by the calendar " +
			"with the same name from the waitbutwhy.com store. The birth date is " +
			"given in ISO format (YYYY-MM-DD).",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			birth, err := calgrid.ParseDate(args[0])
			if err != nil {
				return err
			}

			shadeUntil := time.Now().UTC().Truncate(24 * time.Hour)
			if darkenUntil != "" {
				shadeUntil, err = calgrid.ParseDate(darkenUntil)
				if err != nil {
					return err
				}
			}

			lc := calgrid.NewLifeCalendar(birth)
			lc.Age = age
			lc.Title = title
			lc.Subtitle = subtitle
			if lc.Subtitle == "" {
				lc.Subtitle = birth.Format(calgrid.DateFormat)
			}
			lc.Sidebar = sidebar
			lc.ShadeUntil = shadeUntil

			cfg := calgrid.DefaultConfig()
			if err := writePoster(output, format, cfg.CanvasWidth, cfg.CanvasHeight, lc.Render); err != nil {
				return err
			}
			slog.Info("wrote life calendar", "path", output, "age", age, "birth", args[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", calgrid.DefaultTitle, "calendar title text")
	cmd.Flags().StringVarP(&subtitle, "subtitle-text", "b", "", "text to show under the calendar title (default is the birth date)")
	cmd.Flags().StringVarP(&sidebar, "sidebar-text", "s", "", "text to show along the right side of the grid")
	cmd.Flags().IntVarP(&age, "age", "a", 90, "number of rows to generate, representing years of life [80-100]")
	cmd.Flags().StringVarP(&darkenUntil, "darken-until", "d", "", "darken until date, ISO format (default is today)")
	cmd.Flags().StringVarP(&output, "output", "o", "life_calendar.pdf", "output file")
	cmd.Flags().StringVar(&format, "format", "", "output format: pdf, png or svg (default is inferred from the output file)")
	return cmd
}
