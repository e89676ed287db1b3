package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/gridhire/gridhire/internal/models"
	"github.com/gridhire/gridhire/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ReportRepository interface {
	Insert(ctx context.Context, rep *models.Report) error
	List(ctx context.Context, from, to *time.Time, limit int64) ([]models.Report, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Report, error)
}

type reportRepo struct {
	col *mongo.Collection
}

func NewReportRepo(db *mongo.Database) ReportRepository {
	return &reportRepo{col: db.Collection("reports")}
}

func (r *reportRepo) Insert(ctx context.Context, rep *models.Report) error {
	if rep.GeneratedAt.IsZero() {
		rep.GeneratedAt = time.Now().UTC()
	}
	res, err := r.col.InsertOne(ctx, rep)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		rep.ID = oid
	}
	return nil
}

// List returns reports newest first. from is inclusive and to exclusive, so
// callers can pass day boundaries directly.
func (r *reportRepo) List(ctx context.Context, from, to *time.Time, limit int64) ([]models.Report, error) {
	if limit <= 0 {
		limit = 200
	}

	filter := bson.M{}
	if from != nil || to != nil {
		rng := bson.M{}
		if from != nil {
			rng["$gte"] = from.UTC()
		}
		if to != nil {
			rng["$lt"] = to.UTC()
		}
		filter["generated_at"] = rng
	}

	cur, err := r.col.Find(ctx,
		filter,
		options.Find().
			SetSort(bson.D{{Key: "generated_at", Value: -1}}).
			SetLimit(limit),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Report{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *reportRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Report, error) {
	var rep models.Report
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&rep)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	return &rep, err
}
