package evaluator

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/gridhire/gridhire/internal/models"
	"github.com/gridhire/gridhire/internal/providers/llm"
)

type stubResult struct {
	text string
	err  error
}

// stubProvider replays scripted completions and records every request so
// tests can assert call counts and parameters.
type stubProvider struct {
	queue []stubResult
	calls []llm.Request
}

func (s *stubProvider) Complete(_ context.Context, req llm.Request) (string, error) {
	s.calls = append(s.calls, req)
	if len(s.queue) == 0 {
		return "", errors.New("stub: no scripted response left")
	}
	r := s.queue[0]
	s.queue = s.queue[1:]
	return r.text, r.err
}

func (s *stubProvider) Close() error { return nil }

func newTestLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func sampleQuestion() models.Question {
	return models.Question{
		ID:               "q1",
		Text:             "Write a formula using VLOOKUP to fetch employee salary from a table.",
		Type:             "practical",
		ExpectedKeywords: []string{"VLOOKUP", "table"},
		Difficulty:       "medium",
	}
}

func TestEvaluateBlendsKeywordAndJudgment(t *testing.T) {
	stub := &stubProvider{queue: []stubResult{
		{text: `{"score": 0.5, "reasoning": "Solid formula usage.", "suggestions": ["Mention exact match mode"]}`},
		{text: `{"status": "original", "explanation": "Personal phrasing."}`},
	}}
	e := New(stub, newTestLogger())

	q := sampleQuestion()
	answer := "I would use VLOOKUP on the salary table."
	ev := e.Evaluate(context.Background(), q, answer)

	// kw = 1.0, llm = 0.5 -> 0.4*1.0 + 0.6*0.5 = 0.7
	require.NotNil(t, ev.Score)
	require.Equal(t, 0.7, *ev.Score)
	require.Equal(t, "Solid formula usage.", ev.Reasoning)
	require.Equal(t, []string{"Mention exact match mode"}, ev.Suggestions)

	require.Equal(t, q.ID, ev.QuestionID)
	require.Equal(t, q.Text, ev.QuestionText)
	require.Equal(t, q.Difficulty, ev.Difficulty)
	require.Equal(t, answer, ev.Answer)
	require.Equal(t, models.PlagiarismCheck{Status: "original", Explanation: "Personal phrasing."}, ev.Plagiarism)

	require.Len(t, stub.calls, 2)
	judge := stub.calls[0]
	require.Equal(t, "You are an AI assistant.", judge.System)
	require.Zero(t, judge.Temperature)
	require.Equal(t, 400, judge.MaxTokens)
	require.Contains(t, judge.Prompt, q.Text)
	require.Contains(t, judge.Prompt, answer)
	require.Contains(t, stub.calls[1].Prompt, "'suspicious'")
}

func TestEvaluateJudgmentFailureEqualsKeywordScore(t *testing.T) {
	stub := &stubProvider{queue: []stubResult{
		{err: errors.New("connection refused")},
		{text: `{"status": "original", "explanation": "ok"}`},
	}}
	e := New(stub, newTestLogger())

	q := sampleQuestion()
	// one of two keywords -> kw = 0.5
	ev := e.Evaluate(context.Background(), q, "vlookup does it")

	require.NotNil(t, ev.Score)
	require.Equal(t, 0.5, *ev.Score)
	require.True(t, strings.HasPrefix(ev.Reasoning, "LLM error: "))
	require.Empty(t, ev.Suggestions)
	require.NotNil(t, ev.Suggestions)
}

func TestEvaluateMalformedJudgmentFallsBack(t *testing.T) {
	stub := &stubProvider{queue: []stubResult{
		{text: "I think the answer deserves a 7/10"},
		{text: `{"status": "suspicious", "explanation": "Too generic."}`},
	}}
	e := New(stub, newTestLogger())

	ev := e.Evaluate(context.Background(), sampleQuestion(), "vlookup does it")

	require.Equal(t, 0.5, *ev.Score)
	require.True(t, strings.HasPrefix(ev.Reasoning, "LLM error: "))
	require.Equal(t, "suspicious", ev.Plagiarism.Status)
}

func TestEvaluateNullScoreKeepsReasoning(t *testing.T) {
	stub := &stubProvider{queue: []stubResult{
		{text: `{"score": null, "reasoning": "Could not grade confidently.", "suggestions": null}`},
		{text: `{"status": "original", "explanation": "ok"}`},
	}}
	e := New(stub, newTestLogger())

	ev := e.Evaluate(context.Background(), sampleQuestion(), "vlookup does it")

	// llm component falls back to kw = 0.5
	require.Equal(t, 0.5, *ev.Score)
	require.Equal(t, "Could not grade confidently.", ev.Reasoning)
	require.NotNil(t, ev.Suggestions)
	require.Empty(t, ev.Suggestions)
}

func TestEvaluateClampsJudgmentScore(t *testing.T) {
	// kw is 0 in every case, so the final score is 0.6 * clamped judgment.
	cases := []struct {
		name  string
		score string
		want  float64
	}{
		{"above one", "1.5", 0.6},
		{"below zero", "-2", 0.0},
		{"in range", "0.5", 0.3},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			stub := &stubProvider{queue: []stubResult{
				{text: `{"score": ` + c.score + `, "reasoning": "r", "suggestions": []}`},
				{text: `{"status": "original", "explanation": "ok"}`},
			}}
			e := New(stub, newTestLogger())

			q := models.Question{ID: "q", Text: "t", ExpectedKeywords: []string{"absent"}, Difficulty: "easy"}
			ev := e.Evaluate(context.Background(), q, "nothing relevant")
			require.Equal(t, c.want, *ev.Score)
		})
	}
}

func TestEvaluateEmptyAnswerSkipsPlagiarismCall(t *testing.T) {
	stub := &stubProvider{queue: []stubResult{
		{text: `{"score": 0.2, "reasoning": "Blank answer.", "suggestions": []}`},
	}}
	e := New(stub, newTestLogger())

	ev := e.Evaluate(context.Background(), sampleQuestion(), "   \t ")

	require.Len(t, stub.calls, 1)
	require.Equal(t, models.PlagiarismCheck{Status: "empty", Explanation: "No answer provided."}, ev.Plagiarism)
}

func TestEvaluatePlagiarismFailureDefaultsToUnknown(t *testing.T) {
	stub := &stubProvider{queue: []stubResult{
		{text: `{"score": 1, "reasoning": "r", "suggestions": []}`},
		{text: "definitely original, trust me"},
	}}
	e := New(stub, newTestLogger())

	ev := e.Evaluate(context.Background(), sampleQuestion(), "VLOOKUP on the table")

	require.Equal(t, "unknown", ev.Plagiarism.Status)
	require.Equal(t, "No explanation provided", ev.Plagiarism.Explanation)
}

func TestEvaluateDefaultsReasoningToKeywordBaseline(t *testing.T) {
	stub := &stubProvider{queue: []stubResult{
		{text: `{"score": 0.8}`},
		{text: `{"status": "original", "explanation": "ok"}`},
	}}
	e := New(stub, newTestLogger())

	ev := e.Evaluate(context.Background(), sampleQuestion(), "vlookup does it")

	require.Equal(t, "Keyword coverage baseline: 0.5", ev.Reasoning)
	require.Equal(t, 0.68, *ev.Score) // 0.4*0.5 + 0.6*0.8
}

func TestEvaluateParsesFencedJudgment(t *testing.T) {
	stub := &stubProvider{queue: []stubResult{
		{text: "```json\n{\"score\": 1, \"reasoning\": \"Complete.\", \"suggestions\": []}\n```"},
		{text: "```json\n{\"status\": \"original\", \"explanation\": \"ok\"}\n```"},
	}}
	e := New(stub, newTestLogger())

	ev := e.Evaluate(context.Background(), sampleQuestion(), "VLOOKUP against the table")

	require.Equal(t, 1.0, *ev.Score)
	require.Equal(t, "Complete.", ev.Reasoning)
	require.Equal(t, "original", ev.Plagiarism.Status)
}
