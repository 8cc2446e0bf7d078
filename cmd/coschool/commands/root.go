package commands

import (
	"time"

	"github.com/spf13/cobra"

	"coschooldata"
	"coschooldata/internal/app"
)

var (
	appCtx *app.Wire

	rscript  string
	cacheDir string
	timeout  time.Duration
	refresh  bool
	noCache  bool
)

// Execute builds and runs the coschool CLI.
func Execute() error {
	root := &cobra.Command{
		Use:     "coschool",
		Short:   "Colorado school enrollment and assessment data via the coschooldata R package",
		Version: coschooldata.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.FromEnv()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("rscript") {
				cfg.Rscript = rscript
			}
			if cmd.Flags().Changed("cache-dir") {
				cfg.CacheDir = cacheDir
			}
			if cmd.Flags().Changed("timeout") {
				cfg.Timeout = timeout
			}
			if noCache {
				cfg.NoCache = true
			}
			cfg.Refresh = refresh

			appCtx, err = app.NewWire(cfg)
			if err != nil {
				return err
			}
			callTimeout = cfg.Timeout
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return appCtx.Close()
		},
	}

	root.PersistentFlags().StringVar(&rscript, "rscript", "Rscript", "R interpreter binary")
	root.PersistentFlags().StringVar(&cacheDir, "cache-dir", "", "payload cache dir (default user cache dir)")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 5*time.Minute, "per-call timeout")
	root.PersistentFlags().BoolVar(&refresh, "refresh", false, "bypass cached payloads, fetch fresh")
	root.PersistentFlags().BoolVar(&noCache, "no-cache", false, "disable the payload cache")

	root.AddCommand(enrollmentCmd(), assessmentCmd(), yearsCmd(), tidyCmd(), checkCmd())
	return root.Execute()
}

// callTimeout bounds each R call; set from config in PersistentPreRunE.
var callTimeout time.Duration
