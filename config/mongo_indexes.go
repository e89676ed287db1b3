package config

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func EnsureMongoIndexes() error {
	if MongoClient == nil {
		return errors.New("MongoClient is nil; call InitMongo() first")
	}

	db := MongoDatabase()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// transcripts indexes
	transcripts := db.Collection("transcripts")
	_, err := transcripts.Indexes().CreateMany(ctx, []mongo.IndexModel{
		// 1) one document per interview session
		{
			Keys: bson.D{{Key: "id", Value: 1}},
			Options: options.Index().
				SetName("uniq_transcript_id").
				SetUnique(true),
		},
		// 2) Query helper
		{
			Keys:    bson.D{{Key: "candidate_name", Value: 1}, {Key: "started_at", Value: -1}},
			Options: options.Index().SetName("by_candidate_started"),
		},
	})
	if err != nil {
		return err
	}

	// reports are listed newest first and filtered by generation date
	reports := db.Collection("reports")
	_, err = reports.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "generated_at", Value: -1}},
			Options: options.Index().SetName("by_generated_at"),
		},
	})
	return err
}
