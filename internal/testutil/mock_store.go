// mock_store.go - Mock store implementation for testing
package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/voicescribe/backend/internal/models"
	"github.com/voicescribe/backend/internal/store"
)

// MockStore implements store.Store for testing
type MockStore struct {
	mu             sync.RWMutex
	statusChecks   []*models.StatusCheck
	transcriptions map[string]*models.Transcription
	summaries      map[string]*models.Summary
	seq            map[string]int // id -> insertion order, tie-break for equal timestamps
	nextSeq        int

	// ForcedErr, when set, is returned by every store method.
	ForcedErr error
}

// NewMockStore creates a new empty mock store
func NewMockStore() *MockStore {
	return &MockStore{
		transcriptions: make(map[string]*models.Transcription),
		summaries:      make(map[string]*models.Summary),
		seq:            make(map[string]int),
	}
}

func (m *MockStore) CreateStatusCheck(_ context.Context, check *models.StatusCheck) error {
	if m.ForcedErr != nil {
		return m.ForcedErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statusChecks = append(m.statusChecks, check)
	return nil
}

func (m *MockStore) ListStatusChecks(_ context.Context, limit int64) ([]*models.StatusCheck, error) {
	if m.ForcedErr != nil {
		return nil, m.ForcedErr
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	checks := make([]*models.StatusCheck, 0, len(m.statusChecks))
	checks = append(checks, m.statusChecks...)
	if int64(len(checks)) > limit {
		checks = checks[:limit]
	}
	return checks, nil
}

func (m *MockStore) CreateTranscription(_ context.Context, rec *models.Transcription) error {
	if m.ForcedErr != nil {
		return m.ForcedErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transcriptions[rec.ID] = rec
	m.track(rec.ID)
	return nil
}

func (m *MockStore) ListTranscriptions(_ context.Context, limit int64) ([]*models.Transcription, error) {
	if m.ForcedErr != nil {
		return nil, m.ForcedErr
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	recs := make([]*models.Transcription, 0, len(m.transcriptions))
	for _, rec := range m.transcriptions {
		recs = append(recs, rec)
	}
	sort.Slice(recs, func(i, j int) bool {
		if !recs[i].Timestamp.Equal(recs[j].Timestamp) {
			return recs[i].Timestamp.After(recs[j].Timestamp)
		}
		return m.seq[recs[i].ID] > m.seq[recs[j].ID]
	})
	if int64(len(recs)) > limit {
		recs = recs[:limit]
	}
	return recs, nil
}

func (m *MockStore) GetTranscription(_ context.Context, id string) (*models.Transcription, error) {
	if m.ForcedErr != nil {
		return nil, m.ForcedErr
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.transcriptions[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return rec, nil
}

func (m *MockStore) DeleteTranscription(_ context.Context, id string) error {
	if m.ForcedErr != nil {
		return m.ForcedErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.transcriptions[id]; !ok {
		return store.ErrNotFound
	}
	delete(m.transcriptions, id)
	return nil
}

func (m *MockStore) CreateSummary(_ context.Context, sum *models.Summary) error {
	if m.ForcedErr != nil {
		return m.ForcedErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.summaries[sum.ID] = sum
	m.track(sum.ID)
	return nil
}

func (m *MockStore) ListSummaries(_ context.Context, transcriptionID string, limit int64) ([]*models.Summary, error) {
	if m.ForcedErr != nil {
		return nil, m.ForcedErr
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	sums := []*models.Summary{}
	for _, sum := range m.summaries {
		if sum.TranscriptionID == transcriptionID {
			sums = append(sums, sum)
		}
	}
	sort.Slice(sums, func(i, j int) bool {
		if !sums[i].Timestamp.Equal(sums[j].Timestamp) {
			return sums[i].Timestamp.After(sums[j].Timestamp)
		}
		return m.seq[sums[i].ID] > m.seq[sums[j].ID]
	})
	if int64(len(sums)) > limit {
		sums = sums[:limit]
	}
	return sums, nil
}

func (m *MockStore) DeleteSummariesByTranscription(_ context.Context, transcriptionID string) error {
	if m.ForcedErr != nil {
		return m.ForcedErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, sum := range m.summaries {
		if sum.TranscriptionID == transcriptionID {
			delete(m.summaries, id)
		}
	}
	return nil
}

func (m *MockStore) Ping(_ context.Context) error {
	return m.ForcedErr
}

func (m *MockStore) Close(_ context.Context) error {
	return m.ForcedErr
}

// Ensure MockStore implements store.Store
var _ store.Store = (*MockStore)(nil)

// Test Helper Methods

// AddTranscription adds a transcription directly to the mock
func (m *MockStore) AddTranscription(rec *models.Transcription) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transcriptions[rec.ID] = rec
	m.track(rec.ID)
}

// AddSummary adds a summary directly to the mock
func (m *MockStore) AddSummary(sum *models.Summary) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.summaries[sum.ID] = sum
	m.track(sum.ID)
}

// SummaryCount returns the number of stored summaries
func (m *MockStore) SummaryCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.summaries)
}

// TranscriptionCount returns the number of stored transcriptions
func (m *MockStore) TranscriptionCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.transcriptions)
}

// StatusCheckCount returns the number of stored status checks
func (m *MockStore) StatusCheckCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.statusChecks)
}

// track must be called with the write lock held.
func (m *MockStore) track(id string) {
	m.nextSeq++
	m.seq[id] = m.nextSeq
}
