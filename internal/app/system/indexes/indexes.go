// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// EnsureAll reconciles every collection's indexes. It is idempotent and
// called at startup; errors are aggregated so one bad collection does
// not hide the rest.
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	for _, e := range []struct {
		collection string
		indexes    []mongo.IndexModel
	}{
		{"users", userIndexes()},
		{"sub_companies", subCompanyIndexes()},
		{"news", newsIndexes()},
		{"galleries", galleryIndexes()},
		{"organizations", memberIndexes()},
		{"divisions", divisionIndexes()},
		{"benefits", benefitIndexes()},
		{"emails", emailIndexes()},
		{"pages", pageIndexes()},
	} {
		if err := ensureIndexSet(ctx, db.Collection(e.collection), e.indexes); err != nil {
			problems = append(problems, e.collection+": "+err.Error())
		}
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func userIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{{
		Keys:    bson.D{{Key: "email_ci", Value: 1}},
		Options: options.Index().SetName("uniq_email_ci").SetUnique(true),
	}, {
		Keys:    bson.D{{Key: "name_ci", Value: 1}},
		Options: options.Index().SetName("name_ci"),
	}}
}

func subCompanyIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{{
		Keys:    bson.D{{Key: "name_ci", Value: 1}},
		Options: options.Index().SetName("uniq_name_ci").SetUnique(true),
	}}
}

func newsIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetName("uniq_slug").SetUnique(true),
		},
		{
			// Serves the public published feed: filter + sort in one index.
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "published_at", Value: -1}},
			Options: options.Index().SetName("status_published_at"),
		},
	}
}

func galleryIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{{
		Keys:    bson.D{{Key: "type", Value: 1}, {Key: "created_at", Value: -1}},
		Options: options.Index().SetName("type_created_at"),
	}}
}

func memberIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{{
		Keys:    bson.D{{Key: "name_ci", Value: 1}},
		Options: options.Index().SetName("name_ci"),
	}}
}

func divisionIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{{
		Keys:    bson.D{{Key: "sub_company_id", Value: 1}, {Key: "name_ci", Value: 1}},
		Options: options.Index().SetName("sub_company_name_ci"),
	}}
}

func benefitIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{{
		Keys:    bson.D{{Key: "sub_company_id", Value: 1}, {Key: "name_ci", Value: 1}},
		Options: options.Index().SetName("sub_company_name_ci"),
	}}
}

func emailIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{{
		Keys:    bson.D{{Key: "created_at", Value: -1}},
		Options: options.Index().SetName("created_at"),
	}}
}

func pageIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetName("uniq_slug").SetUnique(true),
	}}
}

// ensureIndexSet creates each desired index, tolerating ones that already
// exist with the same keys under another name.
func ensureIndexSet(ctx context.Context, coll *mongo.Collection, models []mongo.IndexModel) error {
	var errs []string

	for _, m := range models {
		name := ""
		if m.Options != nil && m.Options.Name != nil {
			name = *m.Options.Name
		}

		if _, err := coll.Indexes().CreateOne(ctx, m); err != nil {
			if isOptionsConflictErr(err) {
				zap.L().Info("reusing existing index with same keys",
					zap.String("collection", coll.Name()),
					zap.String("name", name))
				continue
			}
			errs = append(errs, fmt.Sprintf("%s(%s): %v", coll.Name(), name, err))
			continue
		}

		zap.L().Info("index ensured",
			zap.String("collection", coll.Name()),
			zap.String("name", name))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

// Mongo/DocDB returns IndexOptionsConflict when an index with the same
// keys already exists under a different name or with different options.
func isOptionsConflictErr(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "IndexOptionsConflict")
}
