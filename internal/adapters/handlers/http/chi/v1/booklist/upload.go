package booklist

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/coliin8/book-explorer/internal/core/domain"

	"github.com/google/uuid"
)

// uploadFormField is the multipart form field carrying the CSV file
const uploadFormField = "upload"

// V1UploadResponse is the response for a persisted upload
type V1UploadResponse struct {
	ID           uuid.UUID `json:"id"`
	FileName     string    `json:"file_name"`
	StorageURL   string    `json:"storage_url"`
	MD5Checksum  string    `json:"md5_checksum"`
	DateUploaded time.Time `json:"date_uploaded"`
}

// V1ErrorResponse carries a rejection or error message
type V1ErrorResponse struct {
	Message string `json:"message"`
}

func (h *HandlerV1) UploadBookListV1(w http.ResponseWriter, r *http.Request) {

	file, header, err := r.FormFile(uploadFormField)
	if err != nil {
		h.logger.Error("error reading upload form file", "error", err)
		http.Error(w, "missing form file 'upload'", http.StatusBadRequest)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("error reading upload content", "error", err)
		http.Error(w, "failed to read upload", http.StatusBadRequest)
		return
	}

	result, err := h.bookListService.Upload(r.Context(), header.Filename, content)
	if err != nil {
		h.logger.Error("error uploading book list", "error", err, "fileName", header.Filename)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	}

	if result.State == domain.UploadStateRejected {
		h.writeRejection(w, result)
		return
	}

	record := result.BookFile
	resp := V1UploadResponse{
		ID:           record.ID,
		FileName:     record.FileName,
		StorageURL:   record.StorageURL,
		MD5Checksum:  record.MD5Checksum,
		DateUploaded: record.DateUploaded,
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}

// writeRejection maps a rejection kind to its status code: validation problems
// are the client's fault, a confirmed storage failure is an upstream fault,
// and a still pending operation asks the client to come back later.
func (h *HandlerV1) writeRejection(w http.ResponseWriter, result domain.UploadResult) {
	status := http.StatusUnprocessableEntity
	switch result.RejectKind {
	case domain.RejectKindStorageFailed:
		status = http.StatusBadGateway
	case domain.RejectKindStillPending:
		status = http.StatusAccepted
	}

	h.logger.Warn("upload rejected", "kind", result.RejectKind, "message", result.Message)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(V1ErrorResponse{Message: result.Message}); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}
