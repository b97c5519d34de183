package session_test

import (
	"context"
	"sync"

	"github.com/askmilo/askmilo-cli/model"
	"github.com/askmilo/askmilo-cli/subject"
)

type call struct {
	Method   string
	Question string
	Subject  subject.Subject
	File     model.File
}

// fakeGateway records every call and answers with the configured funcs.
type fakeGateway struct {
	mu    sync.Mutex
	calls []call

	ask       func() (*model.Answer, error)
	followups func() (*model.Followups, error)
	upload    func() (*model.UploadResult, error)
}

func (f *fakeGateway) record(c call) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, c)
}

func (f *fakeGateway) Calls() []call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]call(nil), f.calls...)
}

func (f *fakeGateway) Count(method string) int {
	n := 0
	for _, c := range f.Calls() {
		if c.Method == method {
			n++
		}
	}
	return n
}

func (f *fakeGateway) Ask(_ context.Context, question string, s subject.Subject) (*model.Answer, error) {
	f.record(call{Method: "ask", Question: question, Subject: s})
	if f.ask == nil {
		return &model.Answer{}, nil
	}
	return f.ask()
}

func (f *fakeGateway) Followups(_ context.Context, question string, s subject.Subject) (*model.Followups, error) {
	f.record(call{Method: "followups", Question: question, Subject: s})
	if f.followups == nil {
		return &model.Followups{}, nil
	}
	return f.followups()
}

func (f *fakeGateway) Upload(_ context.Context, file model.File, s subject.Subject) (*model.UploadResult, error) {
	f.record(call{Method: "upload", File: file, Subject: s})
	if f.upload == nil {
		return &model.UploadResult{}, nil
	}
	return f.upload()
}
