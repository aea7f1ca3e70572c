package maintenance

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/linesmerrill/campus-rides/config"
	"github.com/linesmerrill/campus-rides/databases"
	"github.com/linesmerrill/campus-rides/models"
)

// CollectionIndexes is what one collection carried when it was inspected
type CollectionIndexes struct {
	Name     string
	Indexes  []models.IndexSpec
	Expected int
}

// Matches reports whether the index count agrees with the schema
func (c CollectionIndexes) Matches() bool {
	return len(c.Indexes) == c.Expected
}

// IndexReport lists the indexes found per collection, in inspection order
type IndexReport struct {
	Collections []CollectionIndexes
}

// IndexVerifier lists indexes and compares their count with the schema. It is
// read only: index creation belongs to the API server's start-up.
type IndexVerifier struct {
	Listers  []databases.IndexLister
	Expected map[string]int

	log *zap.SugaredLogger
}

// NewIndexVerifier inspects users, ride bills and ride locations
func NewIndexVerifier(db databases.DatabaseHelper) *IndexVerifier {
	return &IndexVerifier{
		Listers: []databases.IndexLister{
			databases.NewUserDatabase(db),
			databases.NewRideBillDatabase(db),
			databases.NewRideLocationDatabase(db),
		},
		Expected: databases.ExpectedIndexCounts(),
		log:      zap.S().With("job", "verify-indexes", "runId", uuid.NewString()),
	}
}

// Run lists the indexes of every collection, then logs the expected counts as a
// summary to check the listing against. A count mismatch is a warning, not an error.
func (v *IndexVerifier) Run(ctx context.Context) (IndexReport, error) {
	report := IndexReport{}

	for _, l := range v.Listers {
		name := l.CollectionName()
		specs, err := l.ListIndexes(ctx)
		if err != nil {
			return report, fmt.Errorf("failed to list indexes on %s: %w", name, err)
		}
		v.log.Infow("collection indexes", "collection", name, "count", len(specs))
		for _, spec := range specs {
			v.log.Infow("index", "collection", name, "name", spec.Name, "key", formatKey(spec.Key), "unique", spec.Unique)
		}
		report.Collections = append(report.Collections, CollectionIndexes{
			Name:     name,
			Indexes:  specs,
			Expected: v.Expected[name],
		})
	}

	for _, c := range report.Collections {
		if c.Matches() {
			v.log.Infow("expected indexes", "collection", c.Name, "expected", c.Expected, "found", len(c.Indexes))
			continue
		}
		v.log.Warnw("index count differs from schema", "collection", c.Name, "expected", c.Expected, "found", len(c.Indexes))
	}
	return report, nil
}

func formatKey(key bson.D) string {
	b, err := bson.MarshalExtJSON(key, false, false)
	if err != nil {
		return fmt.Sprintf("%v", key)
	}
	return string(b)
}

// RunIndexVerification opens a connection, reports indexes and releases the connection
func RunIndexVerification(ctx context.Context, conf *config.Config, connect Connector) (IndexReport, error) {
	var report IndexReport
	err := WithConnection(ctx, conf, connect, func(ctx context.Context, db databases.DatabaseHelper) error {
		var err error
		report, err = NewIndexVerifier(db).Run(ctx)
		return err
	})
	return report, err
}
