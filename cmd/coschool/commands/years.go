package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// years: print the available enrollment year range, or the assessment years
// record with --assessment.
func yearsCmd() *cobra.Command {
	var assessment bool
	cmd := &cobra.Command{
		Use:   "years",
		Short: "Show which school end-years have published data",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), callTimeout)
			defer cancel()

			if assessment {
				info, err := appCtx.Assessment.AvailableYears(ctx)
				if err != nil {
					return err
				}
				years := make([]string, len(info.Years))
				for i, y := range info.Years {
					years[i] = fmt.Sprint(y)
				}
				fmt.Printf("years: %s\n", strings.Join(years, " "))
				if info.AssessmentSystem != "" {
					fmt.Printf("assessment system: %s\n", info.AssessmentSystem)
				}
				if info.Note != "" {
					fmt.Printf("note: %s\n", info.Note)
				}
				return nil
			}

			r, err := appCtx.Enrollment.AvailableYears(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("enrollment data available from %d to %d\n", r.MinYear, r.MaxYear)
			return nil
		},
	}
	cmd.Flags().BoolVar(&assessment, "assessment", false, "show assessment years instead of enrollment")
	return cmd
}
