package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dcode-github/listing_storefront/models"
)

const PropertiesCollection = "properties"

// MongoSource reads the catalog from a properties collection. Records are
// returned in insertion order.
type MongoSource struct {
	collection *mongo.Collection
}

func NewMongoSource(db *mongo.Database) *MongoSource {
	return &MongoSource{collection: db.Collection(PropertiesCollection)}
}

func (s *MongoSource) Load(ctx context.Context) ([]models.Property, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := s.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("find properties: %w", err)
	}
	defer cursor.Close(ctx)

	var properties []models.Property
	if err := cursor.All(ctx, &properties); err != nil {
		return nil, fmt.Errorf("decode properties: %w", err)
	}
	return properties, nil
}

// documentInserter is the part of *mongo.Collection seeding needs.
type documentInserter interface {
	CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error)
	InsertMany(ctx context.Context, documents []interface{}, opts ...*options.InsertManyOptions) (*mongo.InsertManyResult, error)
}

// SeedMongo fills an empty properties collection. It reports how many
// records were inserted; a non-empty collection is left alone.
func SeedMongo(ctx context.Context, db *mongo.Database, properties []models.Property) (int, error) {
	return seedDocuments(ctx, db.Collection(PropertiesCollection), properties)
}

func seedDocuments(ctx context.Context, coll documentInserter, properties []models.Property) (int, error) {
	count, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count properties: %w", err)
	}
	if count > 0 {
		slog.Info("catalog already seeded", "backend", "mongo", "existing", count)
		return 0, nil
	}
	if len(properties) == 0 {
		return 0, nil
	}

	docs := make([]interface{}, 0, len(properties))
	for _, p := range properties {
		docs = append(docs, p)
	}
	res, err := coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true))
	if err != nil {
		return 0, fmt.Errorf("insert properties: %w", err)
	}
	return len(res.InsertedIDs), nil
}
