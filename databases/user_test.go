package databases_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/linesmerrill/campus-rides/config"
	"github.com/linesmerrill/campus-rides/databases"
	"github.com/linesmerrill/campus-rides/databases/mocks"
	"github.com/linesmerrill/campus-rides/models"
)

func TestNewUserDatabase(t *testing.T) {
	t.Setenv("DB_URI", "mongodb://127.0.0.1:27017")
	t.Setenv("DB_NAME", "test")
	conf, err := config.New()
	assert.NoError(t, err)

	dbClient, err := databases.NewClient(conf)
	assert.NoError(t, err)

	db := databases.NewDatabase(conf, dbClient)

	userDB := databases.NewUserDatabase(db)

	assert.NotEmpty(t, userDB)
	assert.Equal(t, "users", userDB.CollectionName())
}

func TestMissingPasswordFilter(t *testing.T) {
	filter := databases.MissingPasswordFilter()

	or, ok := filter["$or"].(bson.A)
	assert.True(t, ok)
	assert.ElementsMatch(t, bson.A{
		bson.M{"password": bson.M{"$exists": false}},
		bson.M{"password": nil},
		bson.M{"password": ""},
	}, or)
}

func TestUserDatabase_CountDocuments(t *testing.T) {

	// define variables for interfaces
	var dbHelper databases.DatabaseHelper
	var collectionHelper databases.CollectionHelper

	// set interfaces implementation to mocked structures
	dbHelper = &mocks.DatabaseHelper{}
	collectionHelper = &mocks.CollectionHelper{}

	collectionHelper.(*mocks.CollectionHelper).
		On("CountDocuments", context.Background(), bson.M{"error": true}).
		Return(int64(0), errors.New("mocked-error"))

	collectionHelper.(*mocks.CollectionHelper).
		On("CountDocuments", context.Background(), bson.M{"error": false}).
		Return(int64(2), nil)

	dbHelper.(*mocks.DatabaseHelper).
		On("Collection", "users").Return(collectionHelper)

	userDba := databases.NewUserDatabase(dbHelper)

	count, err := userDba.CountDocuments(context.Background(), bson.M{"error": true})

	assert.Zero(t, count)
	assert.EqualError(t, err, "mocked-error")

	count, err = userDba.CountDocuments(context.Background(), bson.M{"error": false})

	assert.Equal(t, int64(2), count)
	assert.NoError(t, err)
}

func TestUserDatabase_UpdateMany(t *testing.T) {
	dbHelper := mocks.NewDatabaseHelper(t)
	collectionHelper := mocks.NewCollectionHelper(t)

	update := bson.M{"$set": bson.M{"password": "hash"}}

	collectionHelper.
		On("UpdateMany", context.Background(), bson.M{"error": true}, update).
		Return(nil, errors.New("mocked-error"))

	collectionHelper.
		On("UpdateMany", context.Background(), bson.M{"error": false}, update).
		Return(&mongo.UpdateResult{MatchedCount: 2, ModifiedCount: 2}, nil)

	dbHelper.On("Collection", "users").Return(collectionHelper)

	userDba := databases.NewUserDatabase(dbHelper)

	res, err := userDba.UpdateMany(context.Background(), bson.M{"error": true}, update)

	assert.Nil(t, res)
	assert.EqualError(t, err, "mocked-error")

	res, err = userDba.UpdateMany(context.Background(), bson.M{"error": false}, update)

	assert.NoError(t, err)
	assert.Equal(t, int64(2), res.ModifiedCount)
}

func TestUserDatabase_ListIndexes(t *testing.T) {
	dbHelper := mocks.NewDatabaseHelper(t)
	collectionHelper := mocks.NewCollectionHelper(t)
	indexView := mocks.NewIndexViewHelper(t)
	cursor := mocks.NewCursorHelper(t)

	cursor.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(*[]models.IndexSpec)
		*arg = []models.IndexSpec{
			{Name: "_id_", Key: bson.D{{Key: "_id", Value: int32(1)}}},
			{Name: "email_1", Key: bson.D{{Key: "email", Value: int32(1)}}, Unique: true},
		}
	})
	indexView.On("List", mock.Anything).Return(cursor, nil)
	collectionHelper.On("Indexes").Return(indexView)
	dbHelper.On("Collection", "users").Return(collectionHelper)

	specs, err := databases.NewUserDatabase(dbHelper).ListIndexes(context.Background())

	assert.NoError(t, err)
	assert.Len(t, specs, 2)
	assert.Equal(t, "email_1", specs[1].Name)
	assert.True(t, specs[1].Unique)
}

func TestUserDatabase_ListIndexesError(t *testing.T) {
	dbHelper := mocks.NewDatabaseHelper(t)
	collectionHelper := mocks.NewCollectionHelper(t)
	indexView := mocks.NewIndexViewHelper(t)

	indexView.On("List", mock.Anything).Return(nil, errors.New("mocked-error"))
	collectionHelper.On("Indexes").Return(indexView)
	dbHelper.On("Collection", "users").Return(collectionHelper)

	specs, err := databases.NewUserDatabase(dbHelper).ListIndexes(context.Background())

	assert.Nil(t, specs)
	assert.EqualError(t, err, "mocked-error")
}

func TestUserDatabase_ListIndexesDecodeError(t *testing.T) {
	dbHelper := mocks.NewDatabaseHelper(t)
	collectionHelper := mocks.NewCollectionHelper(t)
	indexView := mocks.NewIndexViewHelper(t)
	cursor := mocks.NewCursorHelper(t)

	cursor.On("Decode", mock.Anything).Return(errors.New("mocked-decode-error"))
	indexView.On("List", mock.Anything).Return(cursor, nil)
	collectionHelper.On("Indexes").Return(indexView)
	dbHelper.On("Collection", "users").Return(collectionHelper)

	specs, err := databases.NewUserDatabase(dbHelper).ListIndexes(context.Background())

	assert.Nil(t, specs)
	assert.EqualError(t, err, "mocked-decode-error")
}
