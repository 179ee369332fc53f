package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/tutor-api/internal/api/shared"
	"github.com/phrazzld/tutor-api/internal/store"
)

// DownloadHandler serves stored artifacts as file attachments.
type DownloadHandler struct {
	files *store.FileStore
}

// NewDownloadHandler creates a DownloadHandler.
func NewDownloadHandler(files *store.FileStore) *DownloadHandler {
	return &DownloadHandler{files: files}
}

// Download handles GET /download/{kind}/{filename} requests.
func (h *DownloadHandler) Download(w http.ResponseWriter, r *http.Request) {
	kind, err := store.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "File not found")
		return
	}
	filename := chi.URLParam(r, "filename")

	path, err := h.files.Path(kind, filename)
	if err != nil {
		if errors.Is(err, store.ErrFileNotFound) || errors.Is(err, store.ErrInvalidFilename) {
			shared.RespondWithError(w, r, http.StatusNotFound, "File not found")
			return
		}
		slog.ErrorContext(r.Context(), "failed to resolve download path",
			"kind", kind,
			"filename", filename,
			"error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Download failed")
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	http.ServeFile(w, r, path)
}
