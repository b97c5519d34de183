package cmd

import (
	"errors"
	"os"
	"strings"

	"github.com/askmilo/askmilo-cli/display"
	"github.com/askmilo/askmilo-cli/model"
	"github.com/askmilo/askmilo-cli/session"
	"github.com/askmilo/askmilo-cli/subject"
	"github.com/askmilo/askmilo-cli/theme"
	"github.com/charmbracelet/huh"
	huhSpinner "github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

var uploadCmd = &cobra.Command{
	Use:   "upload [path]",
	Short: "Upload study material for a subject",
	Example: `
  milo upload --subject OS ./notes/scheduling.pdf
  milo upload
  `,
	Long: `
  Upload a PDF of study material so answers for the subject can draw on it.
  Without a path milo prompts for the file and subject.
  `,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		logger := loggerFromCtx(ctx).With("command", "upload")

		cfg, cl, err := newClient()
		if err != nil {
			display.FatalErr(err)
		}
		s, err := resolveSubject(uploadSubject, cfg)
		if err != nil {
			display.FatalErr(err)
		}

		var path string
		if len(args) > 0 {
			path = args[0]
		} else if path, s, err = promptUpload(s); err != nil {
			display.FatalErr(err)
		}

		u := session.NewUpload()
		u, _ = u.Apply(session.SubjectSelected{Subject: s})
		u, _ = u.Apply(session.FileSelected{File: model.File{Path: strings.TrimSpace(path)}})

		runner := session.NewRunner(cl, session.WithLogger(logger))
		if err := huhSpinner.New().Title("Uploading...").Action(func() {
			u = runner.DriveUpload(ctx, u, session.UploadRequested{})
		}).Run(); err != nil {
			display.FatalErr(err)
		}
		logger.Debug("upload settled", "endpoint", cfg.UploadEndpoint(), "status", u.Status())

		switch u.Status() {
		case session.UploadPrompt:
			display.ErrorMsg(u.Status())
			os.Exit(1)
		case session.UploadFailed:
			display.ErrorMsg(u.Status())
		default:
			display.Success(u.Status())
		}
	},
}

var uploadSubject string

func init() {
	rootCmd.AddCommand(uploadCmd)
	uploadCmd.Flags().StringVarP(&uploadSubject, "subject", "s", "", "Subject the material belongs to (CN, OS or DBMS)")
}

func promptUpload(s subject.Subject) (string, subject.Subject, error) {
	var path string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("File").
			Description("Path to a PDF file").
			Prompt("> ").
			Validate(func(v string) error {
				v = strings.TrimSpace(v)
				if v == "" {
					return errors.New(session.UploadPrompt)
				}
				info, err := os.Stat(v)
				if err != nil {
					return err
				}
				if info.IsDir() {
					return errors.New("path is a directory")
				}
				return nil
			}).
			Value(&path),
		huh.NewSelect[subject.Subject]().
			Title("Subject").
			Options(subjectOptions()...).
			Value(&s),
	)).WithTheme(theme.New())
	if err := form.Run(); err != nil {
		return "", s, err
	}
	return path, s, nil
}
