// Package store persists API records in a document collection.
package store

import (
	"context"
	"errors"

	"github.com/voicescribe/backend/internal/models"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// Store defines the persistence interface for API records.
type Store interface {
	CreateStatusCheck(ctx context.Context, check *models.StatusCheck) error
	ListStatusChecks(ctx context.Context, limit int64) ([]*models.StatusCheck, error)

	CreateTranscription(ctx context.Context, rec *models.Transcription) error
	// ListTranscriptions returns up to limit records, newest first.
	ListTranscriptions(ctx context.Context, limit int64) ([]*models.Transcription, error)
	GetTranscription(ctx context.Context, id string) (*models.Transcription, error)
	// DeleteTranscription returns ErrNotFound when no record matched.
	DeleteTranscription(ctx context.Context, id string) error

	CreateSummary(ctx context.Context, sum *models.Summary) error
	// ListSummaries returns up to limit summaries for a transcription, newest
	// first. An unknown transcription id yields an empty list, not an error.
	ListSummaries(ctx context.Context, transcriptionID string, limit int64) ([]*models.Summary, error)
	// DeleteSummariesByTranscription removes every summary referencing the
	// given transcription. Removing zero summaries is not an error.
	DeleteSummariesByTranscription(ctx context.Context, transcriptionID string) error

	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
