package booklist

import (
	"context"

	"github.com/coliin8/book-explorer/internal/core/domain"
)

const defaultListLimit = 10

// List returns records ordered by upload date, newest first
func (s *bookListService) List(ctx context.Context, limit, offset int) ([]domain.BookFile, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return s.uow.BookFileRepo().List(ctx, limit, offset)
}
