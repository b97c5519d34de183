package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/askmilo/askmilo-cli/model"
	"github.com/askmilo/askmilo-cli/subject"
)

// Gateway is the backend a session talks to. client.Client satisfies it.
type Gateway interface {
	Ask(ctx context.Context, question string, s subject.Subject) (*model.Answer, error)
	Followups(ctx context.Context, question string, s subject.Subject) (*model.Followups, error)
	Upload(ctx context.Context, file model.File, s subject.Subject) (*model.UploadResult, error)
}

// ErrPanicked wraps a panic raised by a gateway call.
var ErrPanicked = errors.New("gateway call panicked")

// Runner executes session effects against a Gateway. Every effect produces
// exactly one event, failed or not, so a session never stays loading.
type Runner struct {
	gw     Gateway
	logger *slog.Logger
}

type RunnerOption func(*Runner)

func WithLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

func NewRunner(gw Gateway, opts ...RunnerOption) *Runner {
	r := &Runner{
		gw:     gw,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ExecuteQuery performs the gateway call described by eff.
func (r *Runner) ExecuteQuery(ctx context.Context, eff QueryEffect) QueryEvent {
	switch eff := eff.(type) {
	case AskEffect:
		res := call(func() (*model.Answer, error) {
			return r.gw.Ask(ctx, eff.Question, eff.Subject)
		})
		if !res.OK() {
			r.logger.Warn("ask failed", "seq", eff.Seq, "subject", eff.Subject, "error", res.Err)
		} else if res.Value != nil && res.Value.Error != "" {
			r.logger.Debug("ask returned an error message", "seq", eff.Seq, "message", res.Value.Error)
		}
		return AnswerReceived{Seq: eff.Seq, Result: res}

	case FollowupsEffect:
		res := call(func() (*model.Followups, error) {
			return r.gw.Followups(ctx, eff.Question, eff.Subject)
		})
		if !res.OK() {
			r.logger.Debug("followups failed", "seq", eff.Seq, "subject", eff.Subject, "error", res.Err)
		}
		return FollowupsReceived{Seq: eff.Seq, Result: res}
	}
	panic(fmt.Sprintf("session: unknown query effect %T", eff))
}

// ExecuteUpload performs the upload described by eff.
func (r *Runner) ExecuteUpload(ctx context.Context, eff UploadEffect) UploadEvent {
	res := call(func() (*model.UploadResult, error) {
		return r.gw.Upload(ctx, eff.File, eff.Subject)
	})
	if !res.OK() {
		r.logger.Warn("upload failed", "seq", eff.Seq, "file", eff.File.Name(), "subject", eff.Subject, "error", res.Err)
	}
	return UploadFinished{Seq: eff.Seq, Result: res}
}

// DriveQuery applies ev and executes the resulting effects until the session
// settles.
func (r *Runner) DriveQuery(ctx context.Context, q Query, ev QueryEvent) Query {
	q, eff := q.Apply(ev)
	for eff != nil {
		q, eff = q.Apply(r.ExecuteQuery(ctx, eff))
	}
	return q
}

// DriveUpload applies ev and, if it starts an upload, runs it to completion.
func (r *Runner) DriveUpload(ctx context.Context, u Upload, ev UploadEvent) Upload {
	u, eff := u.Apply(ev)
	if eff == nil {
		return u
	}
	u, _ = u.Apply(r.ExecuteUpload(ctx, *eff))
	return u
}

func call[T any](fn func() (T, error)) (res Result[T]) {
	defer func() {
		if p := recover(); p != nil {
			res = Err[T](fmt.Errorf("%w: %v", ErrPanicked, p))
		}
	}()

	v, err := fn()
	if err != nil {
		return Err[T](err)
	}
	return Ok(v)
}
