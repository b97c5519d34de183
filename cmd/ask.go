package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/askmilo/askmilo-cli/display"
	"github.com/askmilo/askmilo-cli/session"
	"github.com/askmilo/askmilo-cli/subject"
	"github.com/askmilo/askmilo-cli/theme"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/huh"
	huhSpinner "github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a single question and print the answer",
	Example: `
  milo ask "what is a three way handshake?"
  milo ask --subject OS "what causes thrashing?"
  milo ask --subject DBMS --plain "explain 3NF" > 3nf.md
  milo ask
  `,
	Long: `
  Ask a single question and print the answer followed by suggested follow-up questions.
  Without a question milo prompts for one.
  `,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		logger := loggerFromCtx(ctx).With("command", "ask")

		cfg, cl, err := newClient()
		if err != nil {
			display.FatalErr(err)
		}
		s, err := resolveSubject(askSubject, cfg)
		if err != nil {
			display.FatalErr(err)
		}

		// users can pass questions as one string or multiple strings
		question := strings.Join(args, " ")
		if len(args) == 0 {
			if question, s, err = promptQuestion(s); err != nil {
				display.FatalErr(err)
			}
		}
		if strings.TrimSpace(question) == "" {
			display.ErrorMsg("Please enter a question.")
			os.Exit(1)
		}

		rec := &answerRecorder{Client: cl}
		runner := session.NewRunner(rec, session.WithLogger(logger))

		q := session.NewQuery()
		q, _ = q.Apply(session.SubjectSelected{Subject: s})
		q, _ = q.Apply(session.QuestionEdited{Text: question})

		if err := huhSpinner.New().Title("Generating answer...").Action(func() {
			q = runner.DriveQuery(ctx, q, session.Submitted{})
		}).Run(); err != nil {
			display.FatalErr(err)
		}
		logger.Debug("query settled", "subject", q.Subject(), "followups", len(q.Followups()))

		printAnswer(q.Answer())
		if rec.last != nil && rec.last.ResponseTime != "" {
			detail := "answered in " + rec.last.ResponseTime
			if rec.last.Cached {
				detail += " (cached)"
			}
			display.Muted(detail)
		}
		printFollowups(q.Followups())

		if askCopy && q.Answer() != session.AnswerError {
			if err := clipboard.WriteAll(q.Answer()); err != nil {
				display.Error(fmt.Errorf("error copying answer: %w", err))
				return
			}
			display.Info("Answer copied to clipboard")
		}
	},
}

var (
	askSubject string
	askCopy    bool
	askPlain   bool
)

func init() {
	rootCmd.AddCommand(askCmd)
	askCmd.Flags().StringVarP(&askSubject, "subject", "s", "", "Subject of the question (CN, OS or DBMS)")
	askCmd.Flags().BoolVar(&askCopy, "copy", false, "Copy the answer to the clipboard")
	askCmd.Flags().BoolVar(&askPlain, "plain", false, "Print the answer as raw markdown")
}

func subjectOptions() []huh.Option[subject.Subject] {
	var opts []huh.Option[subject.Subject]
	for _, s := range subject.All() {
		opts = append(opts, huh.NewOption(s.Label(), s))
	}
	return opts
}

func promptQuestion(s subject.Subject) (string, subject.Subject, error) {
	var question string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[subject.Subject]().
			Title("Subject").
			Options(subjectOptions()...).
			Value(&s),
		huh.NewText().
			Title("Ask your question").
			Description("e.g., What is deadlock in operating systems?").
			Validate(func(v string) error {
				if strings.TrimSpace(v) == "" {
					return errors.New("Please enter a question.")
				}
				return nil
			}).
			Value(&question),
	)).WithTheme(theme.New())
	if err := form.Run(); err != nil {
		return "", s, err
	}
	return question, s, nil
}

func printAnswer(answer string) {
	fd := int(os.Stdout.Fd())
	if askPlain || !term.IsTerminal(fd) || answer == session.AnswerError || answer == session.NoAnswer {
		fmt.Println(answer)
		return
	}
	width := 80
	if w, _, err := term.GetSize(fd); err == nil && w > 0 && w < width {
		width = w
	}
	fmt.Println(display.Markdown(answer, width))
}

func printFollowups(followups []string) {
	if len(followups) == 0 {
		return
	}
	display.Info("Follow-up questions")
	for i, f := range followups {
		fmt.Printf("  %d. %s\n", i+1, f)
	}
}
