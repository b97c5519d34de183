package session

import (
	"strings"

	"github.com/askmilo/askmilo-cli/followup"
	"github.com/askmilo/askmilo-cli/model"
	"github.com/askmilo/askmilo-cli/subject"
)

// Messages shown in place of an answer.
const (
	NoAnswer    = "No answer returned."
	AnswerError = "⚠️ Error fetching answer"
)

// Phase is where a query session is in its request cycle.
type Phase int

const (
	Idle Phase = iota
	Asking
	FetchingFollowups
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Asking:
		return "asking"
	case FetchingFollowups:
		return "fetching followups"
	default:
		return "unknown"
	}
}

// Query is the state of one question-answer session. It is a value: Apply
// returns the next state and never mutates the receiver.
type Query struct {
	subject   subject.Subject
	question  string
	answer    string
	followups []string
	phase     Phase

	// seq identifies the latest submission; responses for older ones are dropped.
	seq uint64
	// inflight is the question and subject the latest submission was sent with.
	inflight model.QuestionInfo
}

func NewQuery() Query {
	return Query{subject: subject.Default}
}

func (q Query) Subject() subject.Subject { return q.subject }
func (q Query) Question() string         { return q.question }
func (q Query) Answer() string           { return q.answer }
func (q Query) Phase() Phase             { return q.phase }
func (q Query) Loading() bool            { return q.phase != Idle }

// Followups returns a copy of the current suggestions.
func (q Query) Followups() []string {
	return append([]string(nil), q.followups...)
}

// CanSubmit reports whether Submitted would start a request.
func (q Query) CanSubmit() bool {
	return strings.TrimSpace(q.question) != ""
}

// QueryEvent is an input to Query.Apply.
type QueryEvent interface {
	queryEvent()
}

// QueryEffect is a gateway call requested by Query.Apply.
type QueryEffect interface {
	queryEffect()
}

// SubjectSelected replaces the subject of a query or upload session.
// Subjects outside the closed set are ignored.
type SubjectSelected struct {
	Subject subject.Subject
}

type QuestionEdited struct {
	Text string
}

// FollowupSelected copies a suggestion into the question. It does not submit.
type FollowupSelected struct {
	Question string
}

type Submitted struct{}

type AnswerReceived struct {
	Seq    uint64
	Result Result[*model.Answer]
}

type FollowupsReceived struct {
	Seq    uint64
	Result Result[*model.Followups]
}

func (SubjectSelected) queryEvent()   {}
func (QuestionEdited) queryEvent()    {}
func (FollowupSelected) queryEvent()  {}
func (Submitted) queryEvent()         {}
func (AnswerReceived) queryEvent()    {}
func (FollowupsReceived) queryEvent() {}

type AskEffect struct {
	Seq      uint64
	Question string
	Subject  subject.Subject
}

type FollowupsEffect struct {
	Seq      uint64
	Question string
	Subject  subject.Subject
}

func (AskEffect) queryEffect()       {}
func (FollowupsEffect) queryEffect() {}

// Apply is the query session's transition function. The returned effect, if
// not nil, must be executed and its result fed back as the next event.
func (q Query) Apply(ev QueryEvent) (Query, QueryEffect) {
	switch ev := ev.(type) {
	case SubjectSelected:
		if ev.Subject.Valid() {
			q.subject = ev.Subject
		}
		return q, nil

	case QuestionEdited:
		q.question = ev.Text
		return q, nil

	case FollowupSelected:
		q.question = ev.Question
		return q, nil

	case Submitted:
		question := strings.TrimSpace(q.question)
		if question == "" {
			return q, nil
		}
		q.seq++
		q.phase = Asking
		q.answer = ""
		q.followups = nil
		q.inflight = model.QuestionInfo{Question: question, Subject: q.subject.String()}
		return q, AskEffect{Seq: q.seq, Question: question, Subject: q.subject}

	case AnswerReceived:
		if ev.Seq != q.seq || q.phase != Asking {
			return q, nil
		}
		if !ev.Result.OK() {
			q.answer = AnswerError
			q.followups = nil
			q.phase = Idle
			return q, nil
		}

		q.answer = NoAnswer
		if ev.Result.Value != nil && ev.Result.Value.Answer != "" {
			q.answer = ev.Result.Value.Answer
		}
		q.phase = FetchingFollowups
		return q, FollowupsEffect{
			Seq:      q.seq,
			Question: q.inflight.Question,
			Subject:  subject.Subject(q.inflight.Subject),
		}

	case FollowupsReceived:
		if ev.Seq != q.seq || q.phase != FetchingFollowups {
			return q, nil
		}
		q.followups = nil
		if ev.Result.OK() && ev.Result.Value != nil {
			q.followups = followup.Parse(ev.Result.Value.Followups)
		}
		q.phase = Idle
		return q, nil
	}
	return q, nil
}
