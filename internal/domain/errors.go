package domain

import "errors"

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")

	// Pipeline failures. Each is wrapped with the collaborator's detail and
	// converted into a user-visible reply at the router boundary.
	ErrDownloadFailed       = errors.New("media download failed")
	ErrTranscriptionFailed  = errors.New("transcription failed")
	ErrClassificationFailed = errors.New("classification failed")
	ErrPersistenceFailed    = errors.New("persistence failed")

	// ErrRateLimited is reported by the messaging transport when the outbound
	// channel's daily quota is exhausted. Per-recipient, never fatal for a batch.
	ErrRateLimited = errors.New("delivery rate limited")
)
