package databases

import (
	"context"

	"github.com/linesmerrill/campus-rides/models"
)

// RideBillCollection is the name of the ride bills collection
const RideBillCollection = "ridebills"

// RideBillDatabase contains the methods to use with the ride bill database
type RideBillDatabase interface {
	IndexLister
}

type rideBillDatabase struct {
	db DatabaseHelper
}

// NewRideBillDatabase initializes a new instance of ride bill database with the provided db connection
func NewRideBillDatabase(db DatabaseHelper) RideBillDatabase {
	return &rideBillDatabase{
		db: db,
	}
}

func (r *rideBillDatabase) CollectionName() string {
	return RideBillCollection
}

func (r *rideBillDatabase) ListIndexes(ctx context.Context) ([]models.IndexSpec, error) {
	return listIndexes(ctx, r.db.Collection(RideBillCollection))
}
