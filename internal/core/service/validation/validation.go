// Package validation runs checksum dedup and header schema checks over
// uploaded book-list files before anything is handed to storage.
package validation

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/coliin8/book-explorer/internal/config"
	"github.com/coliin8/book-explorer/internal/core/domain"
	"github.com/coliin8/book-explorer/internal/core/port"
	"github.com/coliin8/book-explorer/internal/core/tabular"

	"github.com/google/uuid"
)

type validationService struct {
	bookFiles port.BookFileRepository
	uploadCfg config.UploadConfig
	minioCfg  config.MinioConfig
}

// NewValidationService creates a new validation service
func NewValidationService(bookFiles port.BookFileRepository, uploadCfg config.UploadConfig, minioCfg config.MinioConfig) port.Validator {
	return &validationService{
		bookFiles: bookFiles,
		uploadCfg: uploadCfg,
		minioCfg:  minioCfg,
	}
}

// Validate short-circuits on the first failing check, in order: checksum
// dedup, tabular decode, header schema. Dedup runs first so a byte-identical
// resubmission is rejected without paying for parsing again. Business-rule
// rejections come back as a failure outcome; only infrastructure faults
// (the checksum lookup failing) are returned as errors.
func (v *validationService) Validate(ctx context.Context, fileName string, content []byte) (domain.ValidationOutcome, error) {

	checksum, err := Checksum(bytes.NewReader(content))
	if err != nil {
		return domain.ValidationOutcome{}, err
	}

	exists, err := v.bookFiles.ExistsByChecksum(ctx, checksum)
	if err != nil {
		return domain.ValidationOutcome{}, fmt.Errorf("failed to look up checksum: %w", err)
	}
	if exists {
		return v.failure(fileName, domain.ErrFileAlreadyUploaded.Error()), nil
	}

	doc, err := tabular.Decode(content)
	if err != nil {
		return v.failure(fileName, err.Error()), nil
	}

	if msg := v.validateHeaders(doc.Columns); msg != "" {
		return v.failure(fileName, msg), nil
	}

	objectName := fmt.Sprintf("%s.csv", uuid.New().String())
	record := &domain.BookFile{
		ID:           uuid.New(),
		FileName:     fileName,
		StorageURL:   v.storageURL(objectName),
		MD5Checksum:  checksum,
		DateUploaded: time.Now().UTC(),
	}

	return domain.ValidationSuccess(record), nil
}

// validateHeaders compares the actual header set against the required set.
// Both sides are normalized to uppercase; order does not matter, extra or
// missing columns both fail. Returns "" when the sets match.
func (v *validationService) validateHeaders(actual []string) string {
	actualUpper := make([]string, len(actual))
	for i, header := range actual {
		actualUpper[i] = strings.ToUpper(header)
	}
	sort.Strings(actualUpper)

	required := make([]string, len(v.uploadCfg.RequiredHeaders))
	for i, header := range v.uploadCfg.RequiredHeaders {
		required[i] = strings.ToUpper(header)
	}
	sort.Strings(required)

	if equalStringSlices(actualUpper, required) {
		return ""
	}

	sortedActual := make([]string, len(actual))
	copy(sortedActual, actual)
	sort.Strings(sortedActual)

	return fmt.Sprintf("CSV column headers were %v and should be %v", sortedActual, required)
}

func (v *validationService) failure(fileName, reason string) domain.ValidationOutcome {
	return domain.ValidationFailure(fmt.Sprintf("failed to upload %s due to validation - %s", fileName, reason))
}

func (v *validationService) storageURL(objectName string) string {
	return fmt.Sprintf("%s/%s/%s",
		strings.TrimRight(v.minioCfg.PublicBaseURL, "/"),
		v.minioCfg.BucketName,
		objectName,
	)
}

func equalStringSlices(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
