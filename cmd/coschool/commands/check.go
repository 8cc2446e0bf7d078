package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"coschooldata/internal/rlang"
)

// check: probe the R installation and report the data package version.
func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify the R installation and data package",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), callTimeout)
			defer cancel()

			v, err := appCtx.RLang.PackageVersion(ctx)
			if errors.Is(err, rlang.ErrPackageMissing) {
				return fmt.Errorf("%w: install the coschooldata package in R first", err)
			}
			if err != nil {
				return err
			}
			fmt.Printf("coschooldata R package %s\n", v)
			return nil
		},
	}
}
