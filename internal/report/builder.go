// Package report aggregates a finished interview's evaluations into the
// persisted candidate report.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/gridhire/gridhire/internal/models"
	"github.com/gridhire/gridhire/internal/utils"
)

// The 0.7 cut is shared by the strengths list and the recommendation label.
const (
	strengthThreshold = 0.7
	weaknessThreshold = 0.4
	reasoningPreview  = 80
)

// Only the canonical buckets are summarized; "very hard" and "expert"
// questions count toward the overall score but are not bucketed here.
var difficultyBuckets = []string{"easy", "medium", "hard"}

// Build produces the report snapshot for one finished session. Deterministic
// for a given evaluation sequence except GeneratedAt. The overall score
// averages only evaluations carrying a non-null score; a null score reads as
// 0 for the threshold cuts and the bucket averages.
func Build(transcriptID, candidateName string, evals []models.Evaluation) *models.Report {
	overall := 0.0
	sum := 0.0
	scored := 0
	for _, e := range evals {
		if e.Score != nil {
			sum += *e.Score
			scored++
		}
	}
	if scored > 0 {
		overall = utils.Round3(sum / float64(scored))
	}

	strengths := []string{}
	weaknesses := []string{}

	bucketScores := make(map[string][]float64, len(difficultyBuckets))
	for _, b := range difficultyBuckets {
		bucketScores[b] = nil
	}
	plagiarism := map[string]int{"original": 0, "suspicious": 0, "empty": 0, "unknown": 0}

	for _, e := range evals {
		score := 0.0
		if e.Score != nil {
			score = *e.Score
		}

		if score >= strengthThreshold {
			strengths = append(strengths, fmt.Sprintf("%s: %s", e.QuestionID, preview(e.Reasoning)))
		}
		if score <= weaknessThreshold {
			weaknesses = append(weaknesses, fmt.Sprintf("%s: %s", e.QuestionID, preview(e.Reasoning)))
		}

		diff := strings.ToLower(e.Difficulty)
		if _, ok := bucketScores[diff]; ok {
			bucketScores[diff] = append(bucketScores[diff], score)
		}

		status := strings.ToLower(e.Plagiarism.Status)
		if _, ok := plagiarism[status]; !ok {
			status = "unknown"
		}
		plagiarism[status]++
	}

	summary := make(map[string]models.DifficultyStat, len(difficultyBuckets))
	for level, scores := range bucketScores {
		if len(scores) == 0 {
			summary[level] = models.DifficultyStat{}
			continue
		}
		total := 0.0
		for _, sc := range scores {
			total += sc
		}
		avg := utils.Round3(total / float64(len(scores)))
		summary[level] = models.DifficultyStat{Count: len(scores), AvgScore: &avg}
	}

	recommendation := "needs_improvement"
	if overall >= strengthThreshold {
		recommendation = "strong"
	}

	// snapshot, detached from the live session
	evalsCopy := make([]models.Evaluation, len(evals))
	copy(evalsCopy, evals)

	return &models.Report{
		TranscriptID:      transcriptID,
		CandidateName:     candidateName,
		Evaluations:       evalsCopy,
		OverallScore:      overall,
		Strengths:         strengths,
		Weaknesses:        weaknesses,
		Recommendation:    recommendation,
		GeneratedAt:       time.Now().UTC(),
		TotalQuestions:    len(evals),
		DifficultySummary: summary,
		PlagiarismSummary: plagiarism,
	}
}

// preview keeps the first 80 runes of a reasoning string for the summary
// lines, counting runes so multibyte text is not split.
func preview(s string) string {
	r := []rune(s)
	if len(r) <= reasoningPreview {
		return s
	}
	return string(r[:reasoningPreview])
}
