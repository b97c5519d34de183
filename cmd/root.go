package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "milo",
	Short: "Ask computer science questions from the command line",
	Long: `AskMilo answers Computer Networks, Operating Systems and Database
Management questions and suggests follow-ups to keep you going.

Run milo without a subcommand to start an interactive session.`,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		logLevel := slog.LevelInfo
		if debugFlag {
			logLevel = slog.LevelDebug
		}
		// stdout carries answers, keep logs out of it
		textHandler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			AddSource: debugFlag,
			Level:     logLevel,
		})
		logger := slog.New(textHandler)
		slog.SetDefault(logger)
		cmd.SetContext(ctxWithLogger(cmd.Context(), logger))
	},
	Args: cobra.NoArgs,
	Run:  runChat,
}

var debugFlag bool

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false, "Enable debug mode")
	rootCmd.Flags().StringVarP(&chatSubject, "subject", "s", "", "Subject to start with (CN, OS or DBMS)")
}
