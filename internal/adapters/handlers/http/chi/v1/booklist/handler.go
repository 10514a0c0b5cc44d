package booklist

import (
	"log/slog"

	"github.com/coliin8/book-explorer/internal/core/port"

	"github.com/go-chi/chi/v5"
)

// HandlerV1 is the handler for v1 book list routes
type HandlerV1 struct {
	bookListService port.BookListService
	logger          *slog.Logger
}

// NewBookListHandlerV1 creates HandlerV1
func NewBookListHandlerV1(service port.BookListService, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		bookListService: service,
		logger:          logger,
	}
}

// Routes exposes handler routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/upload", h.UploadBookListV1)
	router.Get("/", h.ListBookFilesV1)
	router.Get("/{bookFileID}", h.GetBookFileV1)

	return router
}
