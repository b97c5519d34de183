package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// ErrRequest wraps every error returned by the client.
var ErrRequest = errors.New("gateway request failed")

// maxErrorBody bounds how much of a failed response is read into a StatusError.
const maxErrorBody = 4 << 10

// StatusError is returned when the backend answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("gateway returned %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("gateway returned %d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Message)
}

func (e *StatusError) Unwrap() error {
	return ErrRequest
}

// ErrorResponse covers the error shapes the backend produces: FastAPI's
// {"detail": ...} and the handlers' own {"error": ...} or {"message": ...}.
type ErrorResponse struct {
	Detail  json.RawMessage `json:"detail,omitempty"`
	Error   string          `json:"error,omitempty"`
	Message string          `json:"message,omitempty"`
}

func (e ErrorResponse) text() string {
	if len(e.Detail) > 0 {
		var detail string
		if err := json.Unmarshal(e.Detail, &detail); err == nil {
			return detail
		}
		return string(e.Detail)
	}
	if e.Error != "" {
		return e.Error
	}
	return e.Message
}

func newStatusError(resp *http.Response) *StatusError {
	se := &StatusError{StatusCode: resp.StatusCode}

	bs, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(bs) == 0 {
		return se
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(bs, &errResp); err == nil {
		se.Message = errResp.text()
		return se
	}
	se.Message = strings.TrimSpace(string(bs))
	return se
}
