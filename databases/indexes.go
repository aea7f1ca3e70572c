package databases

import (
	"context"

	"github.com/linesmerrill/campus-rides/models"
)

// IndexLister reads index metadata for a single collection
type IndexLister interface {
	CollectionName() string
	ListIndexes(ctx context.Context) ([]models.IndexSpec, error)
}

func listIndexes(ctx context.Context, coll CollectionHelper) ([]models.IndexSpec, error) {
	cursor, err := coll.Indexes().List(ctx)
	if err != nil {
		return nil, err
	}
	specs := []models.IndexSpec{}
	if err = cursor.Decode(&specs); err != nil {
		return nil, err
	}
	return specs, nil
}
