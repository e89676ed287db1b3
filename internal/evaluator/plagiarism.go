package evaluator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gridhire/gridhire/internal/models"
	"github.com/gridhire/gridhire/internal/providers/llm"
)

const (
	plagiarismStatusDefault      = "unknown"
	plagiarismExplanationDefault = "No explanation provided"
)

// checkPlagiarism classifies an answer as original or suspicious. Blank
// answers short-circuit to "empty" without touching the provider; call or
// parse failures degrade to the "unknown" defaults.
func (e *Evaluator) checkPlagiarism(ctx context.Context, answer string) models.PlagiarismCheck {
	if strings.TrimSpace(answer) == "" {
		return models.PlagiarismCheck{Status: "empty", Explanation: "No answer provided."}
	}

	prompt := fmt.Sprintf(
		"Analyze the following text:\n\n%s\n\n"+
			"Classify if the response is:\n"+
			"- 'original': written by a human in their own words.\n"+
			"- 'suspicious': likely AI-generated, copied, or too generic.\n\n"+
			"Return a JSON object with fields:\n"+
			" - status (original or suspicious)\n"+
			" - explanation (short reason)",
		answer)

	fallback := models.PlagiarismCheck{
		Status:      plagiarismStatusDefault,
		Explanation: plagiarismExplanationDefault,
	}

	raw, err := e.llm.Complete(ctx, llm.Request{
		System:      judgeSystem,
		Prompt:      prompt,
		Temperature: 0,
		MaxTokens:   400,
	})
	if err != nil {
		e.log.WithError(err).Warn("plagiarism check call failed")
		return fallback
	}

	var verdict models.PlagiarismCheck
	if err := json.Unmarshal([]byte(llm.CleanFences(raw)), &verdict); err != nil {
		e.log.WithError(err).Warn("plagiarism check response is not valid JSON")
		return fallback
	}

	if verdict.Status == "" {
		verdict.Status = plagiarismStatusDefault
	}
	if verdict.Explanation == "" {
		verdict.Explanation = plagiarismExplanationDefault
	}
	return verdict
}
