package booklist

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/coliin8/book-explorer/internal/core/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// V1BookFileDetailResponse is the record plus its decoded CSV rows
type V1BookFileDetailResponse struct {
	File    V1UploadResponse    `json:"file"`
	Columns []string            `json:"columns"`
	Rows    []map[string]string `json:"rows"`
}

func (h *HandlerV1) GetBookFileV1(w http.ResponseWriter, r *http.Request) {

	id, err := uuid.Parse(chi.URLParam(r, "bookFileID"))
	if err != nil {
		http.Error(w, "invalid book file id", http.StatusBadRequest)
		return
	}

	record, doc, err := h.bookListService.Get(r.Context(), id)
	switch {
	case errors.Is(err, domain.ErrBookFileNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	case errors.Is(err, domain.ErrTaskResultUnavailable):
		// content is still being fetched, the record exists
		h.logger.Warn("book file content not ready", "error", err, "bookFileID", id)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(V1ErrorResponse{Message: err.Error()})
		return
	case err != nil:
		h.logger.Error("error getting book file", "error", err, "bookFileID", id)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	}

	rows := make([]map[string]string, 0, len(doc.Rows))
	for _, row := range doc.Rows {
		rows = append(rows, row)
	}

	resp := V1BookFileDetailResponse{
		File: V1UploadResponse{
			ID:           record.ID,
			FileName:     record.FileName,
			StorageURL:   record.StorageURL,
			MD5Checksum:  record.MD5Checksum,
			DateUploaded: record.DateUploaded,
		},
		Columns: doc.Columns,
		Rows:    rows,
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}
