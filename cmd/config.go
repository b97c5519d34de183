package cmd

import (
	"fmt"
	"os"

	"github.com/askmilo/askmilo-cli/config"
	"github.com/askmilo/askmilo-cli/display"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or update the milo configuration",
	Example: `
  milo config
  milo config --backend-url https://askmilo.example.com
  milo config --subject OS --timeout 90s
  `,
	Long: `
  Without flags, config prints the settings milo will use, including environment overrides.
  With flags, the given settings are written to the config file.
  `,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		logger := loggerFromCtx(cmd.Context()).With("command", "config")

		flags := cmd.Flags()
		if !flags.Changed("backend-url") && !flags.Changed("upload-url") && !flags.Changed("subject") && !flags.Changed("timeout") {
			showConfig()
			return
		}

		cfg, err := config.LoadFromFile()
		if err != nil {
			display.FatalErr(err)
		}
		if flags.Changed("backend-url") {
			cfg.BackendURL = configBackendURL
		}
		if flags.Changed("upload-url") {
			cfg.UploadURL = configUploadURL
		}
		if flags.Changed("subject") {
			cfg.Subject = configSubject
		}
		if flags.Changed("timeout") {
			cfg.Timeout = configTimeout
		}
		if err := cfg.Validate(); err != nil {
			display.FatalErr(err)
		}
		if err := cfg.Save(); err != nil {
			display.FatalErr(fmt.Errorf("error saving config: %w", err))
		}
		logger.Debug("config saved", "path", config.DefaultConfigFilePath)
		display.Success("Saved " + config.DefaultConfigFilePath)
	},
}

var (
	configBackendURL string
	configUploadURL  string
	configSubject    string
	configTimeout    string
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().StringVar(&configBackendURL, "backend-url", "", "Base url of the AskMilo backend")
	configCmd.Flags().StringVar(&configUploadURL, "upload-url", "", "Full upload endpoint, if not <backend-url>/upload")
	configCmd.Flags().StringVar(&configSubject, "subject", "", "Default subject (CN, OS or DBMS)")
	configCmd.Flags().StringVar(&configTimeout, "timeout", "", "Request timeout, e.g. 60s")
}

func showConfig() {
	cfg, err := config.Load()
	if err != nil {
		display.FatalErr(err)
	}
	s, _ := cfg.DefaultSubject()
	timeout, _ := cfg.RequestTimeout()

	fmt.Printf("config file: %s\n", config.DefaultConfigFilePath)
	fmt.Printf("backend:     %s\n", cfg.APIHost())
	fmt.Printf("upload:      %s\n", cfg.UploadEndpoint())
	fmt.Printf("subject:     %s (%s)\n", s, s.Label())
	fmt.Printf("timeout:     %s\n", timeout)

	for _, env := range []string{config.EnvBackendURL, config.EnvLegacyBackendURL, config.EnvUploadURL, config.EnvSubject, config.EnvTimeout} {
		if v := os.Getenv(env); v != "" {
			display.Muted(fmt.Sprintf("%s=%s overrides the config file", env, v))
		}
	}
}
