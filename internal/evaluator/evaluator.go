// Package evaluator scores candidate answers: a deterministic keyword
// coverage baseline blended with an LLM judgment, plus an independent
// plagiarism classification. External failures never escape as errors; they
// collapse into sentinel values inside the evaluation record.
package evaluator

import (
	"context"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/gridhire/gridhire/internal/models"
	"github.com/gridhire/gridhire/internal/providers/llm"
	"github.com/gridhire/gridhire/internal/utils"
)

// Keyword coverage is a 40% floor; the LLM's qualitative judgment dominates
// at 60%. Fixed design constants, not tunables.
const (
	keywordWeight  = 0.4
	judgmentWeight = 0.6
)

type Evaluator struct {
	llm llm.Provider
	log *logrus.Logger
}

func New(p llm.Provider, log *logrus.Logger) *Evaluator {
	return &Evaluator{llm: p, log: log}
}

// Evaluate produces the evaluation record for one answered question. Up to
// two provider calls happen here (judgment, then plagiarism). When the
// judgment path fails entirely the keyword score stands in for the LLM
// component, so the final score equals the keyword score exactly.
func (e *Evaluator) Evaluate(ctx context.Context, q models.Question, answer string) models.Evaluation {
	kw := KeywordScore(answer, q.ExpectedKeywords)

	j := e.judge(ctx, q, answer)

	llmScore := kw
	if j.Score != nil {
		llmScore = clamp01(*j.Score)
	}
	final := utils.Round3(keywordWeight*kw + judgmentWeight*llmScore)

	reasoning := j.Reasoning
	if reasoning == "" {
		reasoning = fmt.Sprintf("Keyword coverage baseline: %g", kw)
	}
	suggestions := j.Suggestions
	if suggestions == nil {
		suggestions = []string{}
	}

	plagiarism := e.checkPlagiarism(ctx, answer)

	return models.Evaluation{
		QuestionID:   q.ID,
		QuestionText: q.Text,
		Difficulty:   q.Difficulty,
		Answer:       answer,
		Score:        &final,
		Reasoning:    reasoning,
		Suggestions:  suggestions,
		Plagiarism:   plagiarism,
	}
}

func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}
