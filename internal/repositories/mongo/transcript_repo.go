package mongo

import (
	"context"
	"time"

	"github.com/gridhire/gridhire/internal/models"
	"go.mongodb.org/mongo-driver/mongo"
)

type TranscriptRepository interface {
	Insert(ctx context.Context, t *models.Transcript) error
}

type transcriptRepo struct {
	col *mongo.Collection
}

func NewTranscriptRepo(db *mongo.Database) TranscriptRepository {
	return &transcriptRepo{col: db.Collection("transcripts")}
}

func (r *transcriptRepo) Insert(ctx context.Context, t *models.Transcript) error {
	if t.StartedAt.IsZero() {
		t.StartedAt = time.Now().UTC()
	}
	_, err := r.col.InsertOne(ctx, t)
	return err
}
