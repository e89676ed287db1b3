package models

// PlagiarismCheck is the integrity classification attached to every scored
// answer. Status "empty" is assigned without an LLM call; "unknown" covers
// classifier failures and unexpected payloads.
type PlagiarismCheck struct {
	Status      string `bson:"status" json:"status"` // original|suspicious|empty|unknown
	Explanation string `bson:"explanation" json:"explanation"`
}

// Evaluation is the scored record for one answered question. Score is a
// pointer because the data contract allows null, though the keyword fallback
// means a blended value is always produced in practice.
type Evaluation struct {
	QuestionID   string          `bson:"question_id" json:"question_id"`
	QuestionText string          `bson:"question_text" json:"question_text"`
	Difficulty   string          `bson:"difficulty" json:"difficulty"`
	Answer       string          `bson:"answer" json:"answer"`
	Score        *float64        `bson:"score" json:"score"`
	Reasoning    string          `bson:"reasoning" json:"reasoning"`
	Suggestions  []string        `bson:"suggestions" json:"suggestions"`
	Plagiarism   PlagiarismCheck `bson:"plagiarism_check" json:"plagiarism_check"`
}
