package cmd

import (
	"os"

	"github.com/askmilo/askmilo-cli/config"
	"github.com/askmilo/askmilo-cli/display"
	"github.com/getsavvyinc/upgrade-cli"
	"github.com/getsavvyinc/upgrade-cli/release/asset"
	"github.com/spf13/cobra"
)

const owner = "askmilo"
const repo = "askmilo-cli"

// upgradeCmd represents the upgrade command
var upgradeCmd = &cobra.Command{
	Use:   "upgrade",
	Short: "upgrade milo to the latest version",
	Long:  `upgrade milo to the latest release published on GitHub`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()
		logger := loggerFromCtx(ctx).With("command", "upgrade")

		executablePath, err := os.Executable()
		if err != nil {
			display.Error(err)
			os.Exit(1)
		}
		version := config.Version()
		logger.Debug("checking for a new release", "current", version, "executable", executablePath)

		assetDownloader := asset.NewAssetDownloader(executablePath, asset.WithLookupArchFallback(map[string]string{
			"amd64": "x86_64",
			"386":   "i386",
		}))
		upgrader := upgrade.NewUpgrader(owner, repo, executablePath, upgrade.WithAssetDownloader(assetDownloader))

		if ok, err := upgrader.IsNewVersionAvailable(ctx, version); err != nil {
			display.Error(err)
			return
		} else if !ok {
			display.Info("milo is already up to date")
			return
		}

		display.Info("Upgrading milo...")
		if err := upgrader.Upgrade(ctx, version); err != nil {
			display.Error(err)
			os.Exit(1)
		} else {
			display.Success("milo has been upgraded to the latest version")
		}
	},
}

func init() {
	rootCmd.AddCommand(upgradeCmd)
}
