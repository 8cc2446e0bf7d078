package commands

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// tidy [file]: reshape an enrollment CSV (file or stdin) to long format.
func tidyCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "tidy [file]",
		Short: "Reshape an enrollment CSV to tidy long format",
		Long: `Read an enrollment table previously fetched with "coschool enrollment"
(from a file, or stdin when no file is given), forward it through the R
package's tidy reshape, and print the long-format result.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = os.Stdin
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			frame, err := readFrameCSV(in)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), callTimeout)
			defer cancel()

			out, err := appCtx.Enrollment.Tidy(ctx, frame)
			if err != nil {
				return err
			}
			return writeFrame(os.Stdout, out, format)
		},
	}
	cmd.Flags().StringVar(&format, "format", "csv", "output format: csv or json")
	return cmd
}
