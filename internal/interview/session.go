// Package interview holds the per-candidate session state machine and the
// process-owned registry that serializes access to it.
package interview

import (
	"time"

	"github.com/google/uuid"

	"github.com/gridhire/gridhire/internal/models"
)

const defaultTotalQuestions = 5

// QuestionAnswer pairs an issued question with the candidate's reply, kept
// for audit alongside the turn log.
type QuestionAnswer struct {
	Question models.Question
	Answer   string
}

// Session tracks one candidate's run through a generated question set.
// The turn log and evaluation list are append-only; the question index never
// decreases. Not safe for concurrent use on its own: callers go through
// Registry.With, which serializes mutations per session id.
type Session struct {
	ID             string
	CandidateName  string
	StartedAt      time.Time
	Questions      []models.Question
	CurrentIndex   int
	TotalQuestions int
	Finished       bool
	Turns          []models.Turn
	Evaluations    []models.Evaluation
	Pairs          []QuestionAnswer

	lastQuestion *models.Question
}

func NewSession(candidateName string) *Session {
	return &Session{
		ID:             uuid.NewString(),
		CandidateName:  candidateName,
		StartedAt:      time.Now().UTC(),
		TotalQuestions: defaultTotalQuestions,
	}
}

// SetQuestions installs the generated question set. Valid once, before the
// first NextQuestion. A set shorter than the target clamps the total so the
// session simply ends earlier instead of indexing past the end.
func (s *Session) SetQuestions(qs []models.Question) {
	s.Questions = qs
	if len(qs) < s.TotalQuestions {
		s.TotalQuestions = len(qs)
	}
}

// NextQuestion returns the current question and advances the index. Past the
// end it marks the session finished and returns nil; no earlier call touches
// the finished flag.
func (s *Session) NextQuestion() *models.Question {
	if s.CurrentIndex >= s.TotalQuestions {
		s.Finished = true
		return nil
	}
	q := s.Questions[s.CurrentIndex]
	s.CurrentIndex++
	s.lastQuestion = &q
	return &q
}

// AddTurn appends one utterance to the log. A candidate turn arriving after a
// question has been issued also records the question/answer pairing.
func (s *Session) AddTurn(role, text string) {
	s.Turns = append(s.Turns, models.Turn{
		Role:      role,
		Text:      text,
		Timestamp: time.Now().UTC(),
	})

	if role == "candidate" && s.lastQuestion != nil {
		s.Pairs = append(s.Pairs, QuestionAnswer{Question: *s.lastQuestion, Answer: text})
	}
}

// LastQuestion is the most recently issued question, nil before the first
// NextQuestion.
func (s *Session) LastQuestion() *models.Question { return s.lastQuestion }

func (s *Session) AddEvaluation(ev models.Evaluation) {
	s.Evaluations = append(s.Evaluations, ev)
}

// Transcript snapshots the session for persistence, embedding the full turn
// log and every evaluation.
func (s *Session) Transcript(finishedAt time.Time) *models.Transcript {
	return &models.Transcript{
		SessionID:      s.ID,
		CandidateName:  s.CandidateName,
		StartedAt:      s.StartedAt,
		FinishedAt:     finishedAt,
		Turns:          s.Turns,
		Evaluations:    s.Evaluations,
		Finished:       s.Finished,
		CurrentIndex:   s.CurrentIndex,
		TotalQuestions: s.TotalQuestions,
	}
}
