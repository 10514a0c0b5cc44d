package booklist

import (
	"context"
	"errors"
	"fmt"

	"github.com/coliin8/book-explorer/internal/core/domain"
	"github.com/coliin8/book-explorer/internal/core/port"
	"github.com/coliin8/book-explorer/internal/core/tabular"
)

// Upload runs the full lifecycle: Validating -> Submitting -> Waiting ->
// {Persisted, Rejected}. The metadata record is only saved once the
// background store operation confirms success; a hard storage failure and a
// poll timeout both reject, but with distinct kinds so the caller can tell
// "failed" from "come back later".
func (s *bookListService) Upload(ctx context.Context, fileName string, content []byte) (domain.UploadResult, error) {

	outcome, err := s.validator.Validate(ctx, fileName, content)
	if err != nil {
		return domain.UploadResult{}, err
	}
	if !outcome.IsSuccess {
		return rejected(domain.RejectKindValidation, outcome.Message), nil
	}
	record := outcome.BookFile

	doc, err := tabular.Decode(content)
	if err != nil {
		// validation already decoded this content once
		return domain.UploadResult{}, fmt.Errorf("decode after validation: %w", err)
	}

	encoded, err := tabular.Encode(doc)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyDocument) {
			return rejected(domain.RejectKindValidation,
				fmt.Sprintf("failed to upload %s due to validation - %s", fileName, err)), nil
		}
		return domain.UploadResult{}, err
	}

	taskID, err := s.gateway.SubmitStore(ctx, record.StorageKey(), encoded)
	if err != nil {
		return domain.UploadResult{}, err
	}

	s.logger.Info("waiting on store task", "taskID", taskID, "fileName", fileName, "storageKey", record.StorageKey())

	poll, err := s.gateway.Wait(ctx, taskID, s.taskCfg.UploadWaitBudget)
	if err != nil {
		return domain.UploadResult{}, err
	}

	switch poll.Status {
	case domain.PollFailed:
		return rejected(domain.RejectKindStorageFailed, poll.Reason), nil
	case domain.PollTimedOut:
		return rejected(domain.RejectKindStillPending, poll.Reason), nil
	}

	txErr := s.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		return uow.BookFileRepo().Save(ctx, *record)
	})
	if txErr != nil {
		return domain.UploadResult{}, fmt.Errorf("failed to persist book file record: %w", txErr)
	}

	// fire-and-forget: notification failures never affect the upload outcome
	if _, err := s.gateway.SubmitNotify(ctx, record.StorageURL); err != nil {
		s.logger.Warn("failed to submit notification task", "error", err, "storageURL", record.StorageURL)
	}

	return domain.UploadResult{State: domain.UploadStatePersisted, BookFile: record}, nil
}

func rejected(kind domain.RejectKind, message string) domain.UploadResult {
	return domain.UploadResult{
		State:      domain.UploadStateRejected,
		RejectKind: kind,
		Message:    message,
	}
}
