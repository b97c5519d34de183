package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"strings"

	"github.com/askmilo/askmilo-cli/model"
	"github.com/askmilo/askmilo-cli/subject"
	"github.com/gabriel-vasile/mimetype"
)

func (c *client) Upload(ctx context.Context, file model.File, s subject.Subject) (*model.UploadResult, error) {
	body, contentType, err := multipartBody(file, s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequest, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.uploadURL, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)

	var result model.UploadResult
	if err := c.do(req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// multipartBody builds the form with a "file" part and a "subject" field.
func multipartBody(file model.File, s subject.Subject) (*bytes.Buffer, string, error) {
	f, err := os.Open(file.Path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	contentType := "application/octet-stream"
	if mtype, err := mimetype.DetectFile(file.Path); err == nil {
		contentType = mtype.String()
	}

	buf := new(bytes.Buffer)
	w := multipart.NewWriter(buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, quoteEscaper.Replace(file.Name())))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, "", err
	}

	if err := w.WriteField("subject", s.String()); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}
