package databases

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Schema lists the secondary indexes the application declares for each collection.
// The implicit _id index is not part of it.
var Schema = map[string][]mongo.IndexModel{
	UserCollection: {
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	},
	RideBillCollection: {
		{Keys: bson.D{{Key: "user", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	},
	RideLocationCollection: {
		{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "location", Value: "2dsphere"}}},
	},
}

// SchemaCollections is the order collections are created and reported in
var SchemaCollections = []string{UserCollection, RideBillCollection, RideLocationCollection}

// ExpectedIndexCounts returns the number of indexes each collection should carry once
// the application has started against it, _id included.
func ExpectedIndexCounts() map[string]int {
	counts := make(map[string]int, len(Schema))
	for name, idx := range Schema {
		counts[name] = len(idx) + 1
	}
	return counts
}

// EnsureIndexes creates the schema indexes. Only the API server calls this; the
// maintenance commands never change indexes.
func EnsureIndexes(ctx context.Context, db DatabaseHelper) error {
	for _, name := range SchemaCollections {
		created, err := db.Collection(name).Indexes().CreateMany(ctx, Schema[name])
		if err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", name, err)
		}
		zap.S().Debugw("indexes ensured", "collection", name, "indexes", created)
	}
	return nil
}
