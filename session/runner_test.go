package session_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/askmilo/askmilo-cli/model"
	"github.com/askmilo/askmilo-cli/session"
	"github.com/askmilo/askmilo-cli/subject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoggedRunner(gw session.Gateway) (*session.Runner, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return session.NewRunner(gw, session.WithLogger(logger)), &buf
}

func TestExecuteQuery(t *testing.T) {
	t.Run("AskFailureIsLoggedAsWarning", func(t *testing.T) {
		gw := &fakeGateway{ask: func() (*model.Answer, error) { return nil, errGateway }}
		r, logs := newLoggedRunner(gw)

		ev := r.ExecuteQuery(context.Background(), session.AskEffect{Seq: 7, Question: "q", Subject: subject.OS})
		received, ok := ev.(session.AnswerReceived)
		require.True(t, ok)
		assert.Equal(t, uint64(7), received.Seq)
		assert.ErrorIs(t, received.Result.Err, errGateway)
		assert.Contains(t, logs.String(), "level=WARN")
		assert.Contains(t, logs.String(), "ask failed")
	})
	t.Run("FollowupsFailureIsLoggedAsDebug", func(t *testing.T) {
		gw := &fakeGateway{followups: func() (*model.Followups, error) { return nil, errGateway }}
		r, logs := newLoggedRunner(gw)

		ev := r.ExecuteQuery(context.Background(), session.FollowupsEffect{Seq: 3, Question: "q", Subject: subject.CN})
		received, ok := ev.(session.FollowupsReceived)
		require.True(t, ok)
		assert.False(t, received.Result.OK())
		assert.Contains(t, logs.String(), "level=DEBUG")
		assert.NotContains(t, logs.String(), "level=WARN")
	})
	t.Run("PanicBecomesError", func(t *testing.T) {
		gw := &fakeGateway{ask: func() (*model.Answer, error) { panic("boom") }}
		r := session.NewRunner(gw)

		ev := r.ExecuteQuery(context.Background(), session.AskEffect{Seq: 1, Question: "q", Subject: subject.CN})
		received := ev.(session.AnswerReceived)
		assert.ErrorIs(t, received.Result.Err, session.ErrPanicked)
		assert.Contains(t, received.Result.Err.Error(), "boom")
	})
}

func TestExecuteUpload(t *testing.T) {
	gw := &fakeGateway{upload: func() (*model.UploadResult, error) { return nil, errGateway }}
	r, logs := newLoggedRunner(gw)

	ev := r.ExecuteUpload(context.Background(), session.UploadEffect{Seq: 2, File: notes, Subject: subject.DBMS})
	finished, ok := ev.(session.UploadFinished)
	require.True(t, ok)
	assert.Equal(t, uint64(2), finished.Seq)
	assert.ErrorIs(t, finished.Result.Err, errGateway)
	assert.Contains(t, logs.String(), "upload failed")
	assert.Contains(t, logs.String(), "file=os-notes.pdf")
}

func TestWithNilLoggerKeepsDefault(t *testing.T) {
	gw := &fakeGateway{ask: func() (*model.Answer, error) { return nil, errGateway }}
	r := session.NewRunner(gw, session.WithLogger(nil))

	assert.NotPanics(t, func() {
		r.ExecuteQuery(context.Background(), session.AskEffect{Seq: 1})
	})
}
