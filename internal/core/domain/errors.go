package domain

import "errors"

// ErrFileAlreadyUploaded is returned when a file with the same checksum already exists
var ErrFileAlreadyUploaded = errors.New("file already been upload to system")

// ErrMalformedInput is returned when uploaded bytes are not valid UTF-8 CSV text
var ErrMalformedInput = errors.New("malformed csv input")

// ErrEmptyDocument is returned when encoding a document with no rows
var ErrEmptyDocument = errors.New("document has no rows")

// ErrHeaderMismatch is returned when CSV column headers do not match the required set
var ErrHeaderMismatch = errors.New("csv column header mismatch")

// ErrBookFileNotFound is returned when a book file record is not found
var ErrBookFileNotFound = errors.New("book file not found")

// ErrTaskNotFound is returned when a storage task is not found
var ErrTaskNotFound = errors.New("storage task not found")

// ErrTaskResultUnavailable is returned when a result is requested before the task succeeded
var ErrTaskResultUnavailable = errors.New("storage task result unavailable")

// ErrObjectNotFound is returned when the requested object does not exist in storage
var ErrObjectNotFound = errors.New("object not found in storage")

// ErrStorageConflict is returned when storage reports a conflict for the target identifier
var ErrStorageConflict = errors.New("storage conflict")

// ErrStorageAccessDenied is returned when storage denies access to the object
var ErrStorageAccessDenied = errors.New("storage access denied")

// ErrStorageTransient marks storage failures worth retrying (network blips, timeouts)
var ErrStorageTransient = errors.New("transient storage failure")
