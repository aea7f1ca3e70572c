package databases

// go generate: mockery --name UserDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/linesmerrill/campus-rides/models"
)

// UserCollection is the name of the users collection
const UserCollection = "users"

// MissingPasswordFilter matches users whose password field is absent, null or empty
func MissingPasswordFilter() bson.M {
	return bson.M{"$or": bson.A{
		bson.M{"password": bson.M{"$exists": false}},
		bson.M{"password": nil},
		bson.M{"password": ""},
	}}
}

// UserDatabase contains the methods to use with the user database
type UserDatabase interface {
	CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error)
	UpdateMany(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error)
	IndexLister
}

type userDatabase struct {
	db DatabaseHelper
}

// NewUserDatabase initializes a new instance of user database with the provided db connection
func NewUserDatabase(db DatabaseHelper) UserDatabase {
	return &userDatabase{
		db: db,
	}
}

func (u *userDatabase) CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error) {
	count, err := u.db.Collection(UserCollection).CountDocuments(ctx, filter, opts...)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (u *userDatabase) UpdateMany(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
	res, err := u.db.Collection(UserCollection).UpdateMany(ctx, filter, update, opts...)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (u *userDatabase) CollectionName() string {
	return UserCollection
}

func (u *userDatabase) ListIndexes(ctx context.Context) ([]models.IndexSpec, error) {
	return listIndexes(ctx, u.db.Collection(UserCollection))
}
