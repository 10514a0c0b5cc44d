package booklist

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// V1BookFileListItem is one record in the listing
type V1BookFileListItem struct {
	ID           uuid.UUID `json:"id"`
	FileName     string    `json:"file_name"`
	StorageURL   string    `json:"storage_url"`
	DateUploaded time.Time `json:"date_uploaded"`
}

func (h *HandlerV1) ListBookFilesV1(w http.ResponseWriter, r *http.Request) {

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	files, err := h.bookListService.List(r.Context(), limit, offset)
	if err != nil {
		h.logger.Error("error listing book files", "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	}

	items := make([]V1BookFileListItem, 0, len(files))
	for _, f := range files {
		items = append(items, V1BookFileListItem{
			ID:           f.ID,
			FileName:     f.FileName,
			StorageURL:   f.StorageURL,
			DateUploaded: f.DateUploaded,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(items); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}
