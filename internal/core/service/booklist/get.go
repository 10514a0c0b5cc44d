package booklist

import (
	"context"
	"fmt"

	"github.com/coliin8/book-explorer/internal/core/domain"
	"github.com/coliin8/book-explorer/internal/core/tabular"

	"github.com/google/uuid"
)

// Get looks up a record and re-fetches its CSV content through a background
// retrieve operation so the rows can be rendered. A timed-out retrieve
// surfaces domain.ErrTaskResultUnavailable so callers can advise a retry
// instead of asserting definite failure.
func (s *bookListService) Get(ctx context.Context, id uuid.UUID) (*domain.BookFile, *domain.Document, error) {

	record, err := s.uow.BookFileRepo().FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	taskID, err := s.gateway.SubmitRetrieve(ctx, record.StorageKey())
	if err != nil {
		return nil, nil, err
	}

	poll, err := s.gateway.Wait(ctx, taskID, s.taskCfg.RetrieveWaitBudget)
	if err != nil {
		return nil, nil, err
	}

	switch poll.Status {
	case domain.PollFailed:
		return nil, nil, fmt.Errorf("failed to retrieve %s: %s", record.StorageKey(), poll.Reason)
	case domain.PollTimedOut:
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrTaskResultUnavailable, poll.Reason)
	}

	doc, err := tabular.Decode(poll.Result)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode retrieved csv: %w", err)
	}

	return record, doc, nil
}
