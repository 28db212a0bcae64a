package db

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"deep-summarizer/config"
	"deep-summarizer/logger"
)

// UsageCollection holds one document per billable model call.
const UsageCollection = "usage_entries"

var (
	clientOnce sync.Once
	client     *mongo.Client
	db         *mongo.Database
)

// Init initializes the global Mongo client and database using config values.
func Init(ctx context.Context) error {
	var initErr error
	clientOnce.Do(func() {
		cfg := config.GetConfig().Mongo
		if cfg.URI == "" {
			initErr = errors.New("MONGO_URI is not configured")
			return
		}

		cl, err := mongo.NewClient(options.Client().ApplyURI(cfg.URI))
		if err != nil {
			initErr = err
			return
		}
		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := cl.Connect(ctx); err != nil {
			initErr = err
			return
		}
		if err := cl.Ping(ctx, readpref.Primary()); err != nil {
			initErr = err
			return
		}
		client = cl
		db = client.Database(cfg.Database)

		if err := ensureIndexes(ctx, db); err != nil {
			initErr = err
			return
		}
		logger.InfoWithFields("MongoDB connected and indexes ensured", logger.Fields{"database": cfg.Database})
	})
	return initErr
}

func Client() *mongo.Client     { return client }
func Database() *mongo.Database { return db }

// Close disconnects the global client if Init succeeded.
func Close(ctx context.Context) error {
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}

func ensureIndexes(ctx context.Context, d *mongo.Database) error {
	// usage_entries: newest first for stats, endpoint for breakdowns
	if _, err := d.Collection(UsageCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "timestamp_ms", Value: -1}},
		Options: options.Index().SetName("idx_timestamp_desc"),
	}); err != nil {
		return err
	}
	if _, err := d.Collection(UsageCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "endpoint", Value: 1}},
		Options: options.Index().SetName("idx_endpoint"),
	}); err != nil {
		return err
	}
	return nil
}
