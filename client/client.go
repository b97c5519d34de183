package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/askmilo/askmilo-cli/config"
	"github.com/askmilo/askmilo-cli/model"
	"github.com/askmilo/askmilo-cli/subject"
)

// Client talks to the AskMilo backend.
type Client interface {
	Ask(ctx context.Context, question string, s subject.Subject) (*model.Answer, error)
	Followups(ctx context.Context, question string, s subject.Subject) (*model.Followups, error)
	Upload(ctx context.Context, file model.File, s subject.Subject) (*model.UploadResult, error)
	Health(ctx context.Context) (*model.Health, error)
}

type client struct {
	cl        *http.Client
	apiHost   string
	uploadURL string
}

var _ Client = (*client)(nil)

func New(cfg *config.Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	timeout, err := cfg.RequestTimeout()
	if err != nil {
		return nil, err
	}

	return &client{
		cl: &http.Client{
			Timeout:   timeout,
			Transport: NewRoundTripper(config.Version(), http.DefaultTransport),
		},
		apiHost:   cfg.APIHost(),
		uploadURL: cfg.UploadEndpoint(),
	}, nil
}

// apiURL returns the full url to the api endpoint
// path must start with a slash. e.g. /api/ask
// apiURL will add a slash if it's missing
func (c *client) apiURL(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.apiHost + path
}

func (c *client) Ask(ctx context.Context, question string, s subject.Subject) (*model.Answer, error) {
	var answer model.Answer
	qi := model.QuestionInfo{Question: question, Subject: s.String()}
	if err := c.postJSON(ctx, "/api/ask", qi, &answer); err != nil {
		return nil, err
	}
	return &answer, nil
}

func (c *client) Followups(ctx context.Context, question string, s subject.Subject) (*model.Followups, error) {
	var followups model.Followups
	qi := model.QuestionInfo{Question: question, Subject: s.String()}
	if err := c.postJSON(ctx, "/api/followup", qi, &followups); err != nil {
		return nil, err
	}
	return &followups, nil
}

func (c *client) Health(ctx context.Context) (*model.Health, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL("/api/health"), nil)
	if err != nil {
		return nil, err
	}

	var health model.Health
	if err := c.do(req, &health); err != nil {
		return nil, err
	}
	return &health, nil
}

func (c *client) postJSON(ctx context.Context, path string, body, out any) error {
	bs, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL(path), bytes.NewReader(bs))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

// do sends req and decodes a 2xx JSON response into out.
func (c *client) do(req *http.Request, out any) error {
	resp, err := c.cl.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrRequest, req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newStatusError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decoding %s response: %w", ErrRequest, req.URL.Path, err)
	}
	return nil
}
