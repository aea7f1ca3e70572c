package maintenance

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/linesmerrill/campus-rides/config"
	"github.com/linesmerrill/campus-rides/databases"
)

// ErrInvalidHashCost is returned for a bcrypt cost outside bcrypt.MinCost..bcrypt.MaxCost
var ErrInvalidHashCost = errors.New("invalid bcrypt cost")

// HashSecret returns the bcrypt hash of secret. bcrypt quietly swaps a too-low cost
// for its default, so the range is checked here instead.
func HashSecret(secret string, cost int) (string, error) {
	if err := validateCost(cost); err != nil {
		return "", err
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash default password: %w", err)
	}
	return string(hashed), nil
}

func validateCost(cost int) error {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return fmt.Errorf("%w: %d (want %d-%d)", ErrInvalidHashCost, cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return nil
}

// BackfillResult summarises one password backfill run
type BackfillResult struct {
	Matched            int64
	Modified           int64
	UsedFallbackSecret bool
}

// PasswordBackfill gives every user without a password the same default password
type PasswordBackfill struct {
	DB        databases.UserDatabase
	Secret    string
	SecretSet bool
	Cost      int

	hash func(secret string, cost int) (string, error)
	log  *zap.SugaredLogger
}

// NewPasswordBackfill builds a backfill from the explicit config values
func NewPasswordBackfill(conf *config.Config, db databases.UserDatabase) *PasswordBackfill {
	return &PasswordBackfill{
		DB:        db,
		Secret:    conf.DefaultSecret,
		SecretSet: conf.DefaultSecretSet,
		Cost:      conf.HashCost,
		hash:      HashSecret,
		log:       zap.S().With("job", "password-backfill", "runId", uuid.NewString()),
	}
}

// Run counts users missing a password and, if there are any, sets the hashed default
// password on them and drops their reset token and expiry. The count and the update
// are separate round trips; a user fixed in between is simply not matched again.
func (p *PasswordBackfill) Run(ctx context.Context) (BackfillResult, error) {
	result := BackfillResult{}

	if err := validateCost(p.Cost); err != nil {
		return result, err
	}

	filter := databases.MissingPasswordFilter()

	count, err := p.DB.CountDocuments(ctx, filter)
	if err != nil {
		return result, fmt.Errorf("failed to count users without a password: %w", err)
	}
	result.Matched = count
	if count == 0 {
		p.log.Info("no users need a password, nothing to do")
		return result, nil
	}
	p.log.Infow("users without a password", "count", count)

	hashed, err := p.hash(p.Secret, p.Cost)
	if err != nil {
		return result, err
	}

	update := bson.M{
		"$set":   bson.M{"password": hashed},
		"$unset": bson.M{"resetPasswordToken": "", "resetPasswordExpires": ""},
	}
	res, err := p.DB.UpdateMany(ctx, filter, update)
	if err != nil {
		return result, fmt.Errorf("failed to backfill passwords: %w", err)
	}
	result.Modified = res.ModifiedCount
	p.log.Infow("passwords backfilled", "matched", res.MatchedCount, "modified", res.ModifiedCount)

	if !p.SecretSet {
		result.UsedFallbackSecret = true
		p.log.Warnw("backfilled users were given the development fallback password, set "+config.DefaultSecretEnv+" to choose one",
			"env", config.DefaultSecretEnv)
	}
	return result, nil
}

// RunPasswordBackfill opens a connection, runs the backfill and releases the connection
func RunPasswordBackfill(ctx context.Context, conf *config.Config, connect Connector) (BackfillResult, error) {
	var result BackfillResult
	err := WithConnection(ctx, conf, connect, func(ctx context.Context, db databases.DatabaseHelper) error {
		var err error
		result, err = NewPasswordBackfill(conf, databases.NewUserDatabase(db)).Run(ctx)
		return err
	})
	return result, err
}
