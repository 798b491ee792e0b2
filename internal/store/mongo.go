package store

import (
	"context"
	"fmt"

	"github.com/jobscout-in/jobscout/internal/models"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	databaseName       = "jobs"
	jobsCollection     = "saved-jobs"
	insightsCollection = "saved-insights"
)

type jobDoc struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	models.Posting `bson:",inline"`
}

type insightDoc struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty"`
	models.JobInsights `bson:",inline"`
}

// Mongo stores saved jobs and insights in MongoDB Atlas.
type Mongo struct {
	client   *mongo.Client
	jobs     *mongo.Collection
	insights *mongo.Collection
	log      zerolog.Logger
}

func NewMongo(ctx context.Context, uri string, logger zerolog.Logger) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("store: connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("store: ping: %w", err)
	}

	db := client.Database(databaseName)
	return &Mongo{
		client:   client,
		jobs:     db.Collection(jobsCollection),
		insights: db.Collection(insightsCollection),
		log:      logger.With().Str("component", "store").Logger(),
	}, nil
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

func (m *Mongo) SaveJob(ctx context.Context, posting models.Posting) (string, error) {
	res, err := m.jobs.InsertOne(ctx, jobDoc{Posting: posting})
	if err != nil {
		return "", err
	}
	return insertedHex(res)
}

func (m *Mongo) ListJobs(ctx context.Context) ([]SavedJob, error) {
	cursor, err := m.jobs.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []jobDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]SavedJob, 0, len(docs))
	for _, doc := range docs {
		out = append(out, SavedJob{StorageID: doc.ID.Hex(), Posting: doc.Posting})
	}
	return out, nil
}

func (m *Mongo) DeleteJob(ctx context.Context, id string) (int64, error) {
	return deleteByHex(ctx, m.jobs, id)
}

func (m *Mongo) SaveInsight(ctx context.Context, insight models.JobInsights) (string, error) {
	res, err := m.insights.InsertOne(ctx, insightDoc{JobInsights: insight})
	if err != nil {
		return "", err
	}
	return insertedHex(res)
}

func (m *Mongo) ListInsights(ctx context.Context) ([]SavedInsight, error) {
	cursor, err := m.insights.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []insightDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]SavedInsight, 0, len(docs))
	for _, doc := range docs {
		out = append(out, SavedInsight{StorageID: doc.ID.Hex(), JobInsights: doc.JobInsights})
	}
	return out, nil
}

func (m *Mongo) DeleteInsight(ctx context.Context, id string) (int64, error) {
	return deleteByHex(ctx, m.insights, id)
}

func insertedHex(res *mongo.InsertOneResult) (string, error) {
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("store: unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

func deleteByHex(ctx context.Context, coll *mongo.Collection, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, ErrInvalidID
	}
	res, err := coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, err
	}
	if res.DeletedCount == 0 {
		return 0, ErrNotFound
	}
	return res.DeletedCount, nil
}
