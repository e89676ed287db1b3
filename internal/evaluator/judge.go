package evaluator

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gridhire/gridhire/internal/models"
	"github.com/gridhire/gridhire/internal/providers/llm"
)

const judgeSystem = "You are an AI assistant."

// Judgment is the parsed result of one scoring call. Score stays nil when the
// model did not return a usable number.
type Judgment struct {
	Score       *float64 `json:"score"`
	Reasoning   string   `json:"reasoning"`
	Suggestions []string `json:"suggestions"`
}

// errJudgment is the sentinel every judgment failure collapses into. It is
// returned as data; no error crosses the evaluator boundary.
func errJudgment(err error) Judgment {
	return Judgment{Reasoning: "LLM error: " + err.Error(), Suggestions: []string{}}
}

// judge runs the rubric prompt against the provider once. Deterministic
// settings, single attempt, no retry.
func (e *Evaluator) judge(ctx context.Context, q models.Question, answer string) Judgment {
	kws := q.ExpectedKeywords
	if kws == nil {
		kws = []string{}
	}
	keywords, _ := json.Marshal(kws)

	prompt := fmt.Sprintf(
		"Question: %s\n\n"+
			"Expected keywords / concepts: %s\n\n"+
			"Candidate answer: %s\n\n"+
			"Provide a JSON object with fields:\n"+
			" - score: a number between 0 and 1 (float)\n"+
			" - reasoning: short explanation (1-2 sentences)\n"+
			" - suggestions: list of 1-3 concise improvement suggestions\n\n"+
			"Be objective and concise.",
		q.Text, keywords, answer)

	raw, err := e.llm.Complete(ctx, llm.Request{
		System:      judgeSystem,
		Prompt:      prompt,
		Temperature: 0,
		MaxTokens:   400,
	})
	if err != nil {
		e.log.WithError(err).Warn("answer judgment call failed")
		return errJudgment(err)
	}

	var j Judgment
	if err := json.Unmarshal([]byte(llm.CleanFences(raw)), &j); err != nil {
		e.log.WithError(err).Warn("answer judgment response is not valid JSON")
		return errJudgment(err)
	}
	return j
}
