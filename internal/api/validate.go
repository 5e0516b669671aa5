// validate.go - Upload constraint checks for the transcribe endpoint
package api

import (
	"fmt"
	"path/filepath"
	"strings"
)

// MaxUploadSize is the upload size cap in bytes (200 MiB).
const MaxUploadSize = 200 * 1024 * 1024

// allowedMIMETypes lists the audio/video content types accepted for
// transcription.
var allowedMIMETypes = map[string]struct{}{
	"audio/mpeg":      {},
	"audio/wav":       {},
	"audio/x-wav":     {},
	"audio/mp4":       {},
	"audio/m4a":       {},
	"audio/mp3":       {},
	"audio/flac":      {},
	"audio/webm":      {},
	"video/mp4":       {},
	"video/mpeg":      {},
	"video/quicktime": {},
	"video/x-msvideo": {},
	"video/webm":      {},
}

// allowedExtensions is the fallback allow-list used when the declared
// content type is unrecognized. Either match is sufficient.
var allowedExtensions = map[string]struct{}{
	".mp3":  {},
	".wav":  {},
	".m4a":  {},
	".mp4":  {},
	".mov":  {},
	".avi":  {},
	".flac": {},
	".webm": {},
}

// validateUpload enforces the size and type constraints on an uploaded file.
// A recognized content type or a recognized extension is enough to accept.
func validateUpload(filename string, contentType string, size int64) *APIError {
	if size > MaxUploadSize {
		return NewPayloadTooLargeError(size, MaxUploadSize)
	}

	if _, ok := allowedMIMETypes[normalizeContentType(contentType)]; ok {
		return nil
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := allowedExtensions[ext]; ok {
		return nil
	}

	return NewBadRequestError(fmt.Sprintf(
		"unsupported file type: %s. Supported formats: MP3, WAV, M4A, MP4, MOV, AVI, FLAC, WebM",
		contentType), nil)
}

// normalizeContentType strips media type parameters and case.
func normalizeContentType(contentType string) string {
	if i := strings.IndexByte(contentType, ';'); i >= 0 {
		contentType = contentType[:i]
	}
	return strings.ToLower(strings.TrimSpace(contentType))
}
