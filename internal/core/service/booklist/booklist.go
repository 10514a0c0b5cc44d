// Package booklist drives the upload lifecycle of book-list files:
// validate, submit to background storage, wait bounded, then persist and
// notify on confirmed success.
package booklist

import (
	"log/slog"

	"github.com/coliin8/book-explorer/internal/config"
	"github.com/coliin8/book-explorer/internal/core/port"
)

type bookListService struct {
	uow       port.UnitOfWork
	validator port.Validator
	gateway   port.StorageGateway
	taskCfg   config.TaskConfig
	logger    *slog.Logger
}

// NewBookListService creates a new book list service
func NewBookListService(uow port.UnitOfWork, validator port.Validator, gateway port.StorageGateway, taskCfg config.TaskConfig, logger *slog.Logger) port.BookListService {
	return &bookListService{
		uow:       uow,
		validator: validator,
		gateway:   gateway,
		taskCfg:   taskCfg,
		logger:    logger,
	}
}
