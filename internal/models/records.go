package models

import "time"

// StatusCheck is a diagnostic ping record written by clients. It is unrelated
// to the transcription workflow and never deleted.
type StatusCheck struct {
	ID         string    `bson:"id" json:"id"`
	ClientName string    `bson:"client_name" json:"client_name"`
	Timestamp  time.Time `bson:"timestamp" json:"timestamp"`
}

// Transcription is the stored result of one speech recognition call.
// Records are immutable after creation except for deletion.
type Transcription struct {
	ID        string    `bson:"id" json:"id"`
	Text      string    `bson:"text" json:"text"`
	Language  string    `bson:"language" json:"language"` // user-supplied code or "auto"
	Filename  string    `bson:"filename" json:"filename"`
	FileSize  int64     `bson:"file_size" json:"file_size"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

// Summary is a structured summary generated from a Transcription's text.
// Language holds the requested target code, not the resolved display name.
// Many summaries may reference one transcription.
type Summary struct {
	ID              string    `bson:"id" json:"id"`
	TranscriptionID string    `bson:"transcription_id" json:"transcription_id"`
	Summary         string    `bson:"summary" json:"summary"`
	Language        string    `bson:"language" json:"language"`
	Timestamp       time.Time `bson:"timestamp" json:"timestamp"`
}
