package cmd

import (
	"context"
	"errors"
	"testing"

	"github.com/askmilo/askmilo-cli/client"
	"github.com/askmilo/askmilo-cli/config"
	"github.com/askmilo/askmilo-cli/model"
	"github.com/askmilo/askmilo-cli/subject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSubject(t *testing.T) {
	tests := []struct {
		name    string
		flag    string
		cfg     config.Config
		want    subject.Subject
		wantErr error
	}{
		{name: "default", want: subject.CN},
		{name: "from config", cfg: config.Config{Subject: "dbms"}, want: subject.DBMS},
		{name: "flag wins", flag: "os", cfg: config.Config{Subject: "DBMS"}, want: subject.OS},
		{name: "unknown flag", flag: "math", wantErr: subject.ErrUnknownSubject},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := resolveSubject(tc.flag, &tc.cfg)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

type askOnly struct {
	client.Client
	answer *model.Answer
	err    error
}

func (a askOnly) Ask(context.Context, string, subject.Subject) (*model.Answer, error) {
	return a.answer, a.err
}

func TestAnswerRecorder(t *testing.T) {
	answer := &model.Answer{Answer: "x", ResponseTime: "0.52s"}
	rec := &answerRecorder{Client: askOnly{answer: answer}}
	got, err := rec.Ask(context.Background(), "q", subject.CN)
	require.NoError(t, err)
	assert.Same(t, answer, got)
	assert.Same(t, answer, rec.last)

	rec.Client = askOnly{err: errors.New("boom")}
	_, err = rec.Ask(context.Background(), "q", subject.CN)
	assert.Error(t, err)
	assert.Same(t, answer, rec.last, "a failed ask keeps the previous answer")
}
