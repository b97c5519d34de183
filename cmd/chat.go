package cmd

import (
	"os"

	"github.com/askmilo/askmilo-cli/cmd/component/chat"
	"github.com/askmilo/askmilo-cli/display"
	"github.com/askmilo/askmilo-cli/session"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive question and answer session",
	Long: `Start an interactive question and answer session.

  enter       ask the question
  ctrl+t      switch subject
  tab         browse follow-up questions
  ctrl+y      copy the answer
  esc         quit`,
	Args: cobra.NoArgs,
	Run:  runChat,
}

var chatSubject string

var programOutput = termenv.NewOutput(os.Stdout, termenv.WithColorCache(true))

func runChat(cmd *cobra.Command, _ []string) {
	ctx := cmd.Context()
	logger := loggerFromCtx(ctx).With("command", "chat")

	cfg, cl, err := newClient()
	if err != nil {
		display.FatalErr(err)
	}
	s, err := resolveSubject(chatSubject, cfg)
	if err != nil {
		display.FatalErr(err)
	}

	tuiLog, closeLog, err := tuiLogger(debugFlag)
	if err != nil {
		logger.Debug("failed to open debug log", "error", err)
		tuiLog, closeLog, _ = tuiLogger(false)
	}
	defer closeLog()

	logger.Debug("starting chat", "backend", cfg.APIHost(), "subject", s)
	runner := session.NewRunner(cl, session.WithLogger(tuiLog.With("component", "chat")))
	m := chat.New(ctx, runner, chat.WithSubject(s))

	p := tea.NewProgram(m, tea.WithOutput(programOutput), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		logger.Debug("chat exited", "error", err)
		display.FatalErr(err)
	}
}

func init() {
	rootCmd.AddCommand(chatCmd)
	chatCmd.Flags().StringVarP(&chatSubject, "subject", "s", "", "Subject to start with (CN, OS or DBMS)")
}
