package databases

import (
	"context"

	"github.com/linesmerrill/campus-rides/models"
)

// RideLocationCollection is the name of the ride locations collection
const RideLocationCollection = "ridelocations"

// RideLocationDatabase contains the methods to use with the ride location database
type RideLocationDatabase interface {
	IndexLister
}

type rideLocationDatabase struct {
	db DatabaseHelper
}

// NewRideLocationDatabase initializes a new instance of ride location database with the provided db connection
func NewRideLocationDatabase(db DatabaseHelper) RideLocationDatabase {
	return &rideLocationDatabase{
		db: db,
	}
}

func (r *rideLocationDatabase) CollectionName() string {
	return RideLocationCollection
}

func (r *rideLocationDatabase) ListIndexes(ctx context.Context) ([]models.IndexSpec, error) {
	return listIndexes(ctx, r.db.Collection(RideLocationCollection))
}
