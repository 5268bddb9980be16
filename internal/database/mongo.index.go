package database

import (
	"context"
	"reflect"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fvs_dash/internal/logger"
)

// CreateIndexes creates the indexes declared by `index` struct tags on the
// model type. Supported tag values:
//
//	index:"single:1"   ascending single-field index
//	index:"single:-1"  descending single-field index
//	index:"unique"     unique ascending index
//	index:"text"       text index
//
// The indexed field name comes from the bson tag. Existing indexes are left
// untouched (CreateOne is idempotent for identical definitions).
func CreateIndexes(ctx context.Context, collection *mongo.Collection, model interface{}) {
	log := logger.GetAppLogger()

	t := reflect.TypeOf(model)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return
	}

	var indexModels []mongo.IndexModel
	var textFields []string

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		indexTag := field.Tag.Get("index")
		if indexTag == "" {
			continue
		}

		bsonName := bsonFieldName(field)
		if bsonName == "" || bsonName == "-" {
			continue
		}

		switch {
		case indexTag == "text":
			// Text fields are combined into one compound text index below.
			textFields = append(textFields, bsonName)
		case indexTag == "unique":
			indexModels = append(indexModels, mongo.IndexModel{
				Keys:    bson.D{{Key: bsonName, Value: 1}},
				Options: options.Index().SetUnique(true),
			})
		case strings.HasPrefix(indexTag, "single:"):
			direction := 1
			if strings.TrimPrefix(indexTag, "single:") == "-1" {
				direction = -1
			}
			indexModels = append(indexModels, mongo.IndexModel{
				Keys: bson.D{{Key: bsonName, Value: direction}},
			})
		}
	}

	if len(textFields) > 0 {
		keys := bson.D{}
		for _, name := range textFields {
			keys = append(keys, bson.E{Key: name, Value: "text"})
		}
		indexModels = append(indexModels, mongo.IndexModel{Keys: keys})
	}

	if len(indexModels) == 0 {
		return
	}

	if _, err := collection.Indexes().CreateMany(ctx, indexModels); err != nil {
		log.WithError(err).WithField("collection", collection.Name()).Error("Failed to create indexes")
		return
	}
	log.WithFields(map[string]interface{}{
		"collection": collection.Name(),
		"indexes":    len(indexModels),
	}).Info("Ensured collection indexes")
}

// bsonFieldName extracts the field name from a bson struct tag.
func bsonFieldName(field reflect.StructField) string {
	tag := field.Tag.Get("bson")
	if tag == "" {
		return strings.ToLower(field.Name)
	}
	return strings.Split(tag, ",")[0]
}
