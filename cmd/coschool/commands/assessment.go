package commands

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"coschooldata/internal/domain"
)

// assessment <year> [year...]: fetch CMAS assessment data.
func assessmentCmd() *cobra.Command {
	var (
		subject string
		wide    bool
		format  string
	)
	cmd := &cobra.Command{
		Use:   "assessment <year> [year...]",
		Short: "Fetch Colorado CMAS assessment data",
		Long: `Fetch Colorado CMAS assessment data for one or more school end-years
(2024 means the 2023-24 school year). Tidy long format is the default;
--wide keeps the separate pct_* columns instead.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			years, err := parseYears(args)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), callTimeout)
			defer cancel()

			subj := domain.Subject(subject)
			tidy := !wide
			var frame *domain.Frame
			if len(years) == 1 {
				frame, err = appCtx.Assessment.FetchYear(ctx, years[0], subj, tidy)
			} else {
				frame, err = appCtx.Assessment.FetchYears(ctx, years, subj, tidy)
			}
			if err != nil {
				return err
			}
			return writeFrame(os.Stdout, frame, format)
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "all", "subject: all, ela, math, science, or csla")
	cmd.Flags().BoolVar(&wide, "wide", false, "wide format with pct_* columns instead of tidy")
	cmd.Flags().StringVar(&format, "format", "csv", "output format: csv or json")
	return cmd
}
