package cmd

import (
	"fmt"
	"os"

	"github.com/askmilo/askmilo-cli/display"
	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that the backend is reachable",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()
		logger := loggerFromCtx(ctx).With("command", "health")

		cfg, cl, err := newClient()
		if err != nil {
			display.FatalErr(err)
		}

		logger.Debug("checking backend", "backend", cfg.APIHost())
		health, err := cl.Health(ctx)
		if err != nil {
			display.ErrorWithSupportCTA(fmt.Errorf("%s is unreachable: %w", cfg.APIHost(), err))
			os.Exit(1)
		}

		display.Success(fmt.Sprintf("%s is %s", cfg.APIHost(), health.Status))
		display.Muted(fmt.Sprintf("cache entries: %d, cache file: %t", health.CacheSize, health.CacheFileExists))
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}
