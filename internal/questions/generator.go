// Package questions produces the interview question set: one LLM call
// requesting a difficulty-ordered JSON array, with a fixed fallback set when
// the call or the parse fails.
package questions

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/gridhire/gridhire/internal/models"
	"github.com/gridhire/gridhire/internal/providers/llm"
)

const generatorSystem = "You are an AI interviewer. Always reply in valid JSON."

type Generator struct {
	llm llm.Provider
	log *logrus.Logger
}

func NewGenerator(p llm.Provider, log *logrus.Logger) *Generator {
	return &Generator{llm: p, log: log}
}

// Generate requests n questions ordered easy to expert. Any transport or
// parse failure returns the static fallback set, which has 5 questions no
// matter what n was asked for. A successfully parsed empty array is returned
// unchanged.
func (g *Generator) Generate(ctx context.Context, n int) []models.Question {
	prompt := fmt.Sprintf(
		"Generate %d Excel interview questions with increasing difficulty. "+
			"Start from easy and move up to expert level. "+
			"Mix theory, formulas, pivot tables, scenarios, and error handling. "+
			"Return strictly a JSON array of objects with fields: "+
			"[{id, text, type, expected_keywords, difficulty}] "+
			"where 'type' ∈ {theory, practical, scenario} and "+
			"'difficulty' ∈ {easy, medium, hard, very hard, expert}.",
		n)

	raw, err := g.llm.Complete(ctx, llm.Request{
		System:      generatorSystem,
		Prompt:      prompt,
		Temperature: 0.7,
	})
	if err != nil {
		g.log.WithError(err).Warn("question generation failed, using fallback set")
		return FallbackQuestions()
	}

	var qs []models.Question
	if err := json.Unmarshal([]byte(llm.CleanFences(raw)), &qs); err != nil {
		g.log.WithError(err).Warn("question generation returned unparseable JSON, using fallback set")
		return FallbackQuestions()
	}
	return qs
}

// FallbackQuestions is the static set served when generation fails.
func FallbackQuestions() []models.Question {
	return []models.Question{
		{
			ID:               "fallback_q1",
			Text:             "Explain the difference between relative and absolute references in Excel.",
			Type:             "theory",
			ExpectedKeywords: []string{"relative", "absolute", "cell reference", "dollar sign"},
			Difficulty:       "easy",
		},
		{
			ID:               "fallback_q2",
			Text:             "Write a formula using VLOOKUP to fetch employee salary from a table.",
			Type:             "practical",
			ExpectedKeywords: []string{"VLOOKUP", "formula", "table"},
			Difficulty:       "medium",
		},
		{
			ID:               "fallback_q3",
			Text:             "How would you handle errors in Excel formulas using IFERROR?",
			Type:             "theory",
			ExpectedKeywords: []string{"IFERROR", "formula", "error handling"},
			Difficulty:       "hard",
		},
		{
			ID:               "fallback_q4",
			Text:             "Describe how you would create and analyze a Pivot Table for sales data.",
			Type:             "scenario",
			ExpectedKeywords: []string{"Pivot Table", "rows", "columns", "filters"},
			Difficulty:       "very hard",
		},
		{
			ID:               "fallback_q5",
			Text:             "Optimize a complex Excel sheet with multiple formulas to improve performance.",
			Type:             "scenario",
			ExpectedKeywords: []string{"optimization", "formulas", "Excel performance"},
			Difficulty:       "expert",
		},
	}
}
