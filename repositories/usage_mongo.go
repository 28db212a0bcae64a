package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"deep-summarizer/db"
	"deep-summarizer/models"
)

// UsageMongoRepository stores usage entries in the usage_entries collection.
type UsageMongoRepository struct {
	col *mongo.Collection
}

func NewUsageMongoRepository(d *mongo.Database) *UsageMongoRepository {
	return &UsageMongoRepository{col: d.Collection(db.UsageCollection)}
}

func (r *UsageMongoRepository) Append(ctx context.Context, entry models.UsageEntry) error {
	_, err := r.col.InsertOne(ctx, entry)
	return err
}

// List returns every entry, oldest first.
func (r *UsageMongoRepository) List(ctx context.Context) ([]models.UsageEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp_ms", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	entries := []models.UsageEntry{}
	if err := cur.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
