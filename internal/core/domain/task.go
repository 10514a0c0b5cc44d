package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// TaskKind is the type of background storage operation
type TaskKind string

const (
	TaskKindStore    TaskKind = "store"
	TaskKindRetrieve TaskKind = "retrieve"
	TaskKindNotify   TaskKind = "notify"
)

// TaskState is the poll-able state of a background operation
type TaskState string

const (
	TaskStatePending   TaskState = "pending"
	TaskStateRunning   TaskState = "running"
	TaskStateRetrying  TaskState = "retrying"
	TaskStateSucceeded TaskState = "succeeded"
	TaskStateFailed    TaskState = "failed"
	TaskStateCancelled TaskState = "cancelled"
)

// IsTerminal reports whether no further state transitions are possible
func (s TaskState) IsTerminal() bool {
	return s == TaskStateSucceeded || s == TaskStateFailed || s == TaskStateCancelled
}

// StorageTask is a unit of work handed to the background worker, tracked by
// correlation ID and polled for completion.
type StorageTask struct {
	ID          uuid.UUID
	Kind        TaskKind
	State       TaskState
	Payload     json.RawMessage
	Result      []byte
	Error       string
	Attempts    int
	MaxAttempts int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// StorePayload carries the bytes to write and the object key to write them under
type StorePayload struct {
	Key     string `json:"key"`
	Content []byte `json:"content"`
}

// RetrievePayload addresses a previously stored object
type RetrievePayload struct {
	Key string `json:"key"`
}

// NotifyPayload carries the storage location for the third-party notification
type NotifyPayload struct {
	StorageURL string `json:"storage_url"`
}

// TaskEnvelope is the wire message published to the task queue. The payload
// itself lives in the task row; the envelope only correlates the delivery.
type TaskEnvelope struct {
	TaskID uuid.UUID `json:"task_id"`
}

// NewStorageTask builds a pending task with a fresh correlation ID
func NewStorageTask(kind TaskKind, payload any, maxAttempts int) (StorageTask, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return StorageTask{}, err
	}
	now := time.Now().UTC()
	return StorageTask{
		ID:          uuid.New(),
		Kind:        kind,
		State:       TaskStatePending,
		Payload:     data,
		MaxAttempts: maxAttempts,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// PollStatus is the trichotomy a bounded wait resolves to
type PollStatus string

const (
	PollSucceeded PollStatus = "succeeded"
	PollFailed    PollStatus = "failed"
	PollTimedOut  PollStatus = "timed_out"
)

// PollOutcome is the result of waiting on a background operation. TimedOut is
// distinct from Failed: the operation may still be in flight.
type PollOutcome struct {
	Status PollStatus
	Result []byte
	Reason string
}
