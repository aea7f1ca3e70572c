package maintenance_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/linesmerrill/campus-rides/databases"
	"github.com/linesmerrill/campus-rides/databases/mocks"
	"github.com/linesmerrill/campus-rides/maintenance"
)

func TestRunPasswordBackfill(t *testing.T) {
	conf := testConfig()
	conf.DefaultSecret = "TempPass1!"
	conf.DefaultSecretSet = true

	var update bson.M
	coll := mocks.NewCollectionHelper(t)
	coll.On("CountDocuments", mock.Anything, databases.MissingPasswordFilter()).Return(int64(2), nil).Once()
	coll.On("UpdateMany", mock.Anything, databases.MissingPasswordFilter(), mock.Anything).
		Return(&mongo.UpdateResult{MatchedCount: 2, ModifiedCount: 2}, nil).
		Run(func(args mock.Arguments) {
			update = args.Get(2).(bson.M)
		}).Once()

	db := mocks.NewDatabaseHelper(t)
	db.On("Collection", "users").Return(coll)

	client := mocks.NewClientHelper(t)
	client.On("Database", "test").Return(db)
	client.On("Disconnect", mock.Anything).Return(nil).Once()

	result, err := maintenance.RunPasswordBackfill(context.Background(), conf, connectTo(client))

	require.NoError(t, err)
	assert.Equal(t, maintenance.BackfillResult{Matched: 2, Modified: 2}, result)
	assert.Equal(t, bson.M{"resetPasswordToken": "", "resetPasswordExpires": ""}, update["$unset"])
	hashed := update["$set"].(bson.M)["password"].(string)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hashed), []byte("TempPass1!")))
	client.AssertNumberOfCalls(t, "Disconnect", 1)
}

func TestRunPasswordBackfill_CountFailureDisconnects(t *testing.T) {
	coll := mocks.NewCollectionHelper(t)
	coll.On("CountDocuments", mock.Anything, mock.Anything).Return(int64(0), errors.New("mocked-error"))

	db := mocks.NewDatabaseHelper(t)
	db.On("Collection", "users").Return(coll)

	client := mocks.NewClientHelper(t)
	client.On("Database", "test").Return(db)
	client.On("Disconnect", mock.Anything).Return(nil).Once()

	_, err := maintenance.RunPasswordBackfill(context.Background(), testConfig(), connectTo(client))

	assert.EqualError(t, err, "failed to count users without a password: mocked-error")
	client.AssertNumberOfCalls(t, "Disconnect", 1)
}

func TestRunIndexVerification(t *testing.T) {
	db, _ := indexDatabase(t, indexFixtures(), "")

	client := mocks.NewClientHelper(t)
	client.On("Database", "test").Return(db)
	client.On("Disconnect", mock.Anything).Return(nil).Once()

	report, err := maintenance.RunIndexVerification(context.Background(), testConfig(), connectTo(client))

	require.NoError(t, err)
	assert.Len(t, report.Collections, 3)
	client.AssertNumberOfCalls(t, "Disconnect", 1)
}
