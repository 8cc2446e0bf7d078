package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"coschooldata/internal/domain"
)

// enrollment <year> [year...]: fetch enrollment data, optionally tidied.
func enrollmentCmd() *cobra.Command {
	var (
		tidy   bool
		format string
	)
	cmd := &cobra.Command{
		Use:   "enrollment <year> [year...]",
		Short: "Fetch Colorado school enrollment data",
		Long: `Fetch Colorado school enrollment data for one or more school end-years
(2025 means the 2024-25 school year). Multiple years come back as one
combined table.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			years, err := parseYears(args)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), callTimeout)
			defer cancel()

			var frame *domain.Frame
			if len(years) == 1 {
				frame, err = appCtx.Enrollment.FetchYear(ctx, years[0])
			} else {
				frame, err = appCtx.Enrollment.FetchYears(ctx, years)
			}
			if err != nil {
				return err
			}
			if tidy {
				frame, err = appCtx.Enrollment.Tidy(ctx, frame)
				if err != nil {
					return err
				}
			}
			return writeFrame(os.Stdout, frame, format)
		},
	}
	cmd.Flags().BoolVar(&tidy, "tidy", false, "reshape to long format, one row per observation")
	cmd.Flags().StringVar(&format, "format", "csv", "output format: csv or json")
	return cmd
}

// parseYears converts CLI arguments into end-years.
func parseYears(args []string) ([]int, error) {
	years := make([]int, 0, len(args))
	for _, a := range args {
		y, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid year %q", a)
		}
		years = append(years, y)
	}
	return years, nil
}
