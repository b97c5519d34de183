package session

import (
	"github.com/askmilo/askmilo-cli/model"
	"github.com/askmilo/askmilo-cli/subject"
)

// Upload status messages.
const (
	UploadPrompt    = "Please select a PDF file to upload."
	UploadSucceeded = "Upload successful."
	UploadFailed    = "Upload failed."
)

// Upload is the state of a material upload session.
type Upload struct {
	file    *model.File
	subject subject.Subject
	status  string
	loading bool
	seq     uint64
}

func NewUpload() Upload {
	return Upload{subject: subject.Default}
}

func (u Upload) Subject() subject.Subject { return u.subject }
func (u Upload) Status() string           { return u.status }
func (u Upload) Loading() bool            { return u.loading }

// File returns the staged file and whether one is staged.
func (u Upload) File() (model.File, bool) {
	if u.file == nil {
		return model.File{}, false
	}
	return *u.file, true
}

type UploadEvent interface {
	uploadEvent()
}

type UploadEffect struct {
	Seq     uint64
	File    model.File
	Subject subject.Subject
}

// FileSelected stages File for upload. An empty path clears the selection.
type FileSelected struct {
	File model.File
}

type UploadRequested struct{}

type UploadFinished struct {
	Seq    uint64
	Result Result[*model.UploadResult]
}

func (SubjectSelected) uploadEvent() {}
func (FileSelected) uploadEvent()    {}
func (UploadRequested) uploadEvent() {}
func (UploadFinished) uploadEvent()  {}

// Apply is the upload session's transition function. A non-nil effect must
// be executed and its UploadFinished fed back.
func (u Upload) Apply(ev UploadEvent) (Upload, *UploadEffect) {
	switch ev := ev.(type) {
	case SubjectSelected:
		if ev.Subject.Valid() {
			u.subject = ev.Subject
		}
		return u, nil

	case FileSelected:
		if ev.File.Path == "" {
			u.file = nil
			return u, nil
		}
		f := ev.File
		u.file = &f
		return u, nil

	case UploadRequested:
		if u.file == nil {
			u.status = UploadPrompt
			return u, nil
		}
		u.seq++
		u.loading = true
		u.status = ""
		return u, &UploadEffect{Seq: u.seq, File: *u.file, Subject: u.subject}

	case UploadFinished:
		if ev.Seq != u.seq || !u.loading {
			return u, nil
		}
		u.loading = false
		if !ev.Result.OK() {
			u.status = UploadFailed
			return u, nil
		}
		u.status = UploadSucceeded
		if ev.Result.Value != nil && ev.Result.Value.Message != "" {
			u.status = ev.Result.Value.Message
		}
		return u, nil
	}
	return u, nil
}
