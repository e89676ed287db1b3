package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DifficultyStat summarizes scores inside one difficulty bucket. AvgScore is
// null when the bucket is empty.
type DifficultyStat struct {
	Count    int      `bson:"count" json:"count"`
	AvgScore *float64 `bson:"avg_score" json:"avg_score"`
}

// Report is the aggregated, persisted summary of a finished session. Built
// exactly once at completion and never mutated afterwards.
type Report struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TranscriptID  string             `bson:"transcript_id" json:"transcript_id"`
	CandidateName string             `bson:"candidate_name" json:"candidate_name"`

	Evaluations    []Evaluation `bson:"evaluations" json:"evaluations"`
	OverallScore   float64      `bson:"overall_score" json:"overall_score"`
	Strengths      []string     `bson:"strengths" json:"strengths"`
	Weaknesses     []string     `bson:"weaknesses" json:"weaknesses"`
	Recommendation string       `bson:"recommendation" json:"recommendation"` // strong|needs_improvement

	GeneratedAt    time.Time `bson:"generated_at" json:"generated_at"`
	TotalQuestions int       `bson:"total_questions" json:"total_questions"`

	DifficultySummary map[string]DifficultyStat `bson:"difficulty_summary" json:"difficulty_summary"`
	PlagiarismSummary map[string]int            `bson:"plagiarism_summary" json:"plagiarism_summary"`
}

// Analytics is the dashboard rollup computed across persisted reports.
// Never stored, so JSON tags only.
type Analytics struct {
	Count                  int            `json:"count"`
	AvgScore               float64        `json:"avg_score"`
	DifficultyDistribution map[string]int `json:"difficulty_distribution"`
	PlagiarismDistribution map[string]int `json:"plagiarism_distribution"`
}
