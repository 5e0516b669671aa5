package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/voicescribe/backend/internal/models"
)

const (
	statusChecksCollection   = "status_checks"
	transcriptionsCollection = "transcriptions"
	summariesCollection      = "summaries"
)

// MongoStore implements Store backed by a MongoDB database.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect establishes a MongoDB connection and verifies it with a ping.
func Connect(ctx context.Context, uri string, dbName string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("pinging mongodb: %w", err)
	}

	return &MongoStore{
		client: client,
		db:     client.Database(dbName),
	}, nil
}

// CreateStatusCheck inserts a status check record.
func (s *MongoStore) CreateStatusCheck(ctx context.Context, check *models.StatusCheck) error {
	if _, err := s.db.Collection(statusChecksCollection).InsertOne(ctx, check); err != nil {
		return fmt.Errorf("inserting status check: %w", err)
	}
	return nil
}

// ListStatusChecks returns up to limit status checks.
func (s *MongoStore) ListStatusChecks(ctx context.Context, limit int64) ([]*models.StatusCheck, error) {
	cur, err := s.db.Collection(statusChecksCollection).Find(ctx, bson.M{},
		options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("listing status checks: %w", err)
	}

	checks := []*models.StatusCheck{}
	if err := cur.All(ctx, &checks); err != nil {
		return nil, fmt.Errorf("decoding status checks: %w", err)
	}
	return checks, nil
}

// CreateTranscription inserts a transcription record.
func (s *MongoStore) CreateTranscription(ctx context.Context, rec *models.Transcription) error {
	if _, err := s.db.Collection(transcriptionsCollection).InsertOne(ctx, rec); err != nil {
		return fmt.Errorf("inserting transcription: %w", err)
	}
	return nil
}

// ListTranscriptions returns up to limit transcriptions, newest first.
func (s *MongoStore) ListTranscriptions(ctx context.Context, limit int64) ([]*models.Transcription, error) {
	cur, err := s.db.Collection(transcriptionsCollection).Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}).SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("listing transcriptions: %w", err)
	}

	recs := []*models.Transcription{}
	if err := cur.All(ctx, &recs); err != nil {
		return nil, fmt.Errorf("decoding transcriptions: %w", err)
	}
	return recs, nil
}

// GetTranscription retrieves a transcription by its generated id.
func (s *MongoStore) GetTranscription(ctx context.Context, id string) (*models.Transcription, error) {
	var rec models.Transcription
	err := s.db.Collection(transcriptionsCollection).FindOne(ctx, bson.M{"id": id}).Decode(&rec)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("finding transcription: %w", err)
	}
	return &rec, nil
}

// DeleteTranscription removes a transcription by id.
func (s *MongoStore) DeleteTranscription(ctx context.Context, id string) error {
	res, err := s.db.Collection(transcriptionsCollection).DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("deleting transcription: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// CreateSummary inserts a summary record.
func (s *MongoStore) CreateSummary(ctx context.Context, sum *models.Summary) error {
	if _, err := s.db.Collection(summariesCollection).InsertOne(ctx, sum); err != nil {
		return fmt.Errorf("inserting summary: %w", err)
	}
	return nil
}

// ListSummaries returns up to limit summaries for a transcription, newest first.
func (s *MongoStore) ListSummaries(ctx context.Context, transcriptionID string, limit int64) ([]*models.Summary, error) {
	cur, err := s.db.Collection(summariesCollection).Find(ctx,
		bson.M{"transcription_id": transcriptionID},
		options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}).SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("listing summaries: %w", err)
	}

	sums := []*models.Summary{}
	if err := cur.All(ctx, &sums); err != nil {
		return nil, fmt.Errorf("decoding summaries: %w", err)
	}
	return sums, nil
}

// DeleteSummariesByTranscription removes all summaries for a transcription.
func (s *MongoStore) DeleteSummariesByTranscription(ctx context.Context, transcriptionID string) error {
	_, err := s.db.Collection(summariesCollection).DeleteMany(ctx,
		bson.M{"transcription_id": transcriptionID})
	if err != nil {
		return fmt.Errorf("deleting summaries: %w", err)
	}
	return nil
}

// Ping verifies the database connection is alive.
func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

var _ Store = (*MongoStore)(nil)
