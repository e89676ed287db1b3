package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Turn is one utterance in a session's chronological log. Append-only.
type Turn struct {
	Role      string    `bson:"role" json:"role"` // interviewer|candidate
	Text      string    `bson:"text" json:"text"`
	Timestamp time.Time `bson:"ts" json:"ts"`
}

// Transcript is the persisted snapshot of a finished interview session,
// embedding the full turn log and every evaluation.
type Transcript struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	SessionID string             `bson:"id" json:"id"` // uuid v4, assigned at start

	CandidateName string    `bson:"candidate_name" json:"candidate_name"`
	StartedAt     time.Time `bson:"started_at" json:"started_at"`
	FinishedAt    time.Time `bson:"finished_at" json:"finished_at"`

	Turns       []Turn       `bson:"turns" json:"turns"`
	Evaluations []Evaluation `bson:"evaluations" json:"evaluations"`

	Finished       bool `bson:"finished" json:"finished"`
	CurrentIndex   int  `bson:"current_q_index" json:"current_q_index"`
	TotalQuestions int  `bson:"total_questions" json:"total_questions"`
}
