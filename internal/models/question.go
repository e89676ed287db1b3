package models

// Question is one generated interview item. Immutable once a session holds it.
type Question struct {
	ID               string   `bson:"id" json:"id"`
	Text             string   `bson:"text" json:"text"`
	Type             string   `bson:"type" json:"type"` // theory|practical|scenario
	ExpectedKeywords []string `bson:"expected_keywords" json:"expected_keywords"`
	Difficulty       string   `bson:"difficulty" json:"difficulty"` // easy|medium|hard|very hard|expert
}
