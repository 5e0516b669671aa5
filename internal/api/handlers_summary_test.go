// handlers_summary_test.go - Tests for summary handlers
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/voicescribe/backend/internal/models"
	"github.com/voicescribe/backend/internal/testutil"
)

func seedTranscription(st *testutil.MockStore, id string, text string) {
	st.AddTranscription(&models.Transcription{
		ID:        id,
		Text:      text,
		Language:  "auto",
		Filename:  "a.wav",
		FileSize:  10,
		Timestamp: time.Now().UTC(),
	})
}

func TestHandleSummarize(t *testing.T) {
	tests := []struct {
		name          string
		seedID        string
		seedText      string
		body          string
		summarizerErr error
		wantStatus    int
		wantErr       bool
		errCode       string
		wantLanguage  string
	}{
		{
			name:         "summary in english",
			seedID:       "t-1",
			seedText:     "a long discussion about shipping dates",
			body:         `{"transcription_id":"t-1","summary_language":"en"}`,
			wantStatus:   http.StatusOK,
			wantLanguage: "en",
		},
		{
			name:     "unrecognized language code is echoed verbatim",
			seedID:   "t-1",
			seedText: "a long discussion about shipping dates",
			body:     `{"transcription_id":"t-1","summary_language":"xx"}`,
			// prompt content falls back to English, but the stored and
			// returned code stays "xx"
			wantStatus:   http.StatusOK,
			wantLanguage: "xx",
		},
		{
			name:       "unknown transcription id",
			seedID:     "t-1",
			seedText:   "text",
			body:       `{"transcription_id":"ghost","summary_language":"en"}`,
			wantStatus: http.StatusNotFound,
			wantErr:    true,
			errCode:    "NOT_FOUND",
		},
		{
			name:       "empty transcription text",
			seedID:     "t-1",
			seedText:   "",
			body:       `{"transcription_id":"t-1","summary_language":"en"}`,
			wantStatus: http.StatusBadRequest,
			wantErr:    true,
			errCode:    "BAD_REQUEST",
		},
		{
			name:       "whitespace-only transcription text",
			seedID:     "t-1",
			seedText:   "  \n\t ",
			body:       `{"transcription_id":"t-1","summary_language":"en"}`,
			wantStatus: http.StatusBadRequest,
			wantErr:    true,
			errCode:    "BAD_REQUEST",
		},
		{
			name:       "missing transcription_id",
			seedID:     "t-1",
			seedText:   "text",
			body:       `{"summary_language":"en"}`,
			wantStatus: http.StatusBadRequest,
			wantErr:    true,
			errCode:    "VALIDATION_ERROR",
		},
		{
			name:       "missing summary_language",
			seedID:     "t-1",
			seedText:   "text",
			body:       `{"transcription_id":"t-1"}`,
			wantStatus: http.StatusBadRequest,
			wantErr:    true,
			errCode:    "VALIDATION_ERROR",
		},
		{
			name:          "generation failure surfaces as server error",
			seedID:        "t-1",
			seedText:      "text",
			body:          `{"transcription_id":"t-1","summary_language":"en"}`,
			summarizerErr: errors.New("model overloaded"),
			wantStatus:    http.StatusInternalServerError,
			wantErr:       true,
			errCode:       "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := testutil.NewMockStore()
			seedTranscription(st, tt.seedID, tt.seedText)
			sm := &testutil.MockSummarizer{SummaryText: "structured summary", Err: tt.summarizerErr}
			h := newTestHandler(st, nil, sm)

			c, rec := newJSONContext(t, http.MethodPost, "/api/summarize", tt.body)
			err := h.HandleSummarize(c)

			if tt.wantErr {
				apiErr, ok := err.(*APIError)
				if !ok {
					t.Fatalf("expected APIError, got %T", err)
				}
				if apiErr.Status != tt.wantStatus {
					t.Errorf("expected status %d, got %d", tt.wantStatus, apiErr.Status)
				}
				if apiErr.Code != tt.errCode {
					t.Errorf("expected code %s, got %s", tt.errCode, apiErr.Code)
				}
				if st.SummaryCount() != 0 {
					t.Error("expected nothing persisted on error")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rec.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}

			var resp models.Summary
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to unmarshal response: %v", err)
			}
			if resp.ID == "" {
				t.Error("expected non-empty id")
			}
			if resp.TranscriptionID != tt.seedID {
				t.Errorf("expected transcription_id %s, got %s", tt.seedID, resp.TranscriptionID)
			}
			if resp.Language != tt.wantLanguage {
				t.Errorf("expected language %q, got %q", tt.wantLanguage, resp.Language)
			}
			if resp.Summary != "structured summary" {
				t.Errorf("unexpected summary: %s", resp.Summary)
			}

			if len(sm.Calls) != 1 {
				t.Fatalf("expected 1 summarizer call, got %d", len(sm.Calls))
			}
			if sm.Calls[0].Text != tt.seedText {
				t.Errorf("summarizer got text %q, want %q", sm.Calls[0].Text, tt.seedText)
			}
			if st.SummaryCount() != 1 {
				t.Errorf("expected 1 persisted summary, got %d", st.SummaryCount())
			}
		})
	}
}

func TestHandleListSummariesEmpty(t *testing.T) {
	st := testutil.NewMockStore()
	seedTranscription(st, "t-1", "text")
	h := newTestHandler(st, nil, nil)

	// A transcription with zero summaries lists as empty, not an error,
	// and without any existence check against the transcription.
	for _, id := range []string{"t-1", "never-created"} {
		c, rec := newJSONContext(t, http.MethodGet, "/api/summaries/"+id, "")
		c.SetParamNames("transcriptionId")
		c.SetParamValues(id)

		if err := h.HandleListSummaries(c); err != nil {
			t.Fatalf("unexpected error for %s: %v", id, err)
		}
		if rec.Code != http.StatusOK {
			t.Errorf("expected 200 for %s, got %d", id, rec.Code)
		}
		if strings.TrimSpace(rec.Body.String()) != "[]" {
			t.Errorf("expected empty JSON array for %s, got %s", id, rec.Body.String())
		}
	}
}

func TestHandleListSummariesOrder(t *testing.T) {
	st := testutil.NewMockStore()
	base := time.Now().UTC()
	st.AddSummary(&models.Summary{ID: "s-en", TranscriptionID: "t-1", Language: "en", Timestamp: base})
	st.AddSummary(&models.Summary{ID: "s-ru", TranscriptionID: "t-1", Language: "ru", Timestamp: base.Add(time.Second)})
	st.AddSummary(&models.Summary{ID: "s-other", TranscriptionID: "t-2", Language: "en", Timestamp: base})
	h := newTestHandler(st, nil, nil)

	c, rec := newJSONContext(t, http.MethodGet, "/api/summaries/t-1", "")
	c.SetParamNames("transcriptionId")
	c.SetParamValues("t-1")

	if err := h.HandleListSummaries(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var resp []models.Summary
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(resp))
	}
	if resp[0].ID != "s-ru" || resp[1].ID != "s-en" {
		t.Errorf("expected newest-first [s-ru s-en], got [%s %s]", resp[0].ID, resp[1].ID)
	}
}
