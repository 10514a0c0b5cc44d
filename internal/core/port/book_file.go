package port

import (
	"context"

	"github.com/coliin8/book-explorer/internal/core/domain"

	"github.com/google/uuid"
)

// BookFileRepository is an interface to define book file metadata interactions
type BookFileRepository interface {
	Save(ctx context.Context, file domain.BookFile) error
	ExistsByChecksum(ctx context.Context, checksum string) (bool, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.BookFile, error)
	FindByStorageURL(ctx context.Context, storageURL string) (*domain.BookFile, error)
	List(ctx context.Context, limit, offset int) ([]domain.BookFile, error)
}

// Validator runs checksum dedup and schema validation over uploaded bytes,
// producing a pass/fail verdict without performing any storage I/O.
type Validator interface {
	Validate(ctx context.Context, fileName string, content []byte) (domain.ValidationOutcome, error)
}

// BookListService is the top-level upload/detail/list flow
type BookListService interface {
	Upload(ctx context.Context, fileName string, content []byte) (domain.UploadResult, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.BookFile, *domain.Document, error)
	List(ctx context.Context, limit, offset int) ([]domain.BookFile, error)
}
