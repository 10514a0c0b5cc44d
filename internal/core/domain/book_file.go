package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// BookFile represents one accepted book-list CSV file.
// The record is built in memory during validation and is only persisted once
// the background store operation is confirmed successful.
type BookFile struct {
	ID           uuid.UUID
	FileName     string
	StorageURL   string
	MD5Checksum  string
	DateUploaded time.Time
}

// StorageKey returns the object key derived from the storage URL (last path segment)
func (b BookFile) StorageKey() string {
	index := strings.LastIndex(b.StorageURL, "/")
	if index == -1 {
		return b.StorageURL
	}
	return b.StorageURL[index+1:]
}

// ValidationOutcome is the tagged result of upload validation. Business-rule
// rejections (duplicate checksum, header mismatch, malformed content) are
// carried as a failure message, never as an error.
type ValidationOutcome struct {
	IsSuccess bool
	Message   string
	BookFile  *BookFile
}

// ValidationSuccess builds a passing outcome carrying the constructed record
func ValidationSuccess(file *BookFile) ValidationOutcome {
	return ValidationOutcome{IsSuccess: true, BookFile: file}
}

// ValidationFailure builds a rejecting outcome carrying a human-readable reason
func ValidationFailure(message string) ValidationOutcome {
	return ValidationOutcome{IsSuccess: false, Message: message}
}

// RejectKind distinguishes why an upload ended in Rejected
type RejectKind string

const (
	// RejectKindValidation means dedup or schema validation failed
	RejectKindValidation RejectKind = "validation"
	// RejectKindStorageFailed means the background store operation reported failure
	RejectKindStorageFailed RejectKind = "storage_failed"
	// RejectKindStillPending means the poll budget elapsed without a terminal state;
	// the operation may still be in flight and the caller should retry later
	RejectKindStillPending RejectKind = "still_pending"
)

// UploadState is the terminal state of an upload flow
type UploadState string

const (
	UploadStatePersisted UploadState = "persisted"
	UploadStateRejected  UploadState = "rejected"
)

// UploadResult is the outcome of the full upload lifecycle
type UploadResult struct {
	State      UploadState
	BookFile   *BookFile
	RejectKind RejectKind
	Message    string
}
