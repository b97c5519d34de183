package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/askmilo/askmilo-cli/client"
	"github.com/askmilo/askmilo-cli/config"
	"github.com/askmilo/askmilo-cli/model"
	"github.com/askmilo/askmilo-cli/subject"
)

// newClient loads the config and builds a gateway client from it.
func newClient() (*config.Config, client.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("error loading config: %w", err)
	}
	cl, err := client.New(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("error creating client: %w", err)
	}
	return cfg, cl, nil
}

// resolveSubject prefers the --subject flag over the configured default.
func resolveSubject(flag string, cfg *config.Config) (subject.Subject, error) {
	if strings.TrimSpace(flag) != "" {
		return subject.Parse(flag)
	}
	return cfg.DefaultSubject()
}

// answerRecorder keeps the last ask response so a command can show the
// details the session drops, like response time.
type answerRecorder struct {
	client.Client
	last *model.Answer
}

func (r *answerRecorder) Ask(ctx context.Context, question string, s subject.Subject) (*model.Answer, error) {
	answer, err := r.Client.Ask(ctx, question, s)
	if err == nil {
		r.last = answer
	}
	return answer, err
}
