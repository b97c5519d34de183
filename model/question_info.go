package model

// QuestionInfo is the request body of both the ask and followup endpoints.
type QuestionInfo struct {
	Question string `json:"question"`
	Subject  string `json:"subject"`
}

// Answer is the ask response. Only Answer is required by the client; the
// backend may also report an Error for malformed requests and timing data.
type Answer struct {
	Answer       string `json:"answer,omitempty"`
	Error        string `json:"error,omitempty"`
	ResponseTime string `json:"response_time,omitempty"`
	Cached       bool   `json:"cached,omitempty"`
}

// Followups holds newline delimited, optionally numbered, suggested questions.
type Followups struct {
	Followups string `json:"followups,omitempty"`
}
