package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/tutor-api/internal/api/shared"
	"github.com/phrazzld/tutor-api/internal/store"
)

// AudioDeleter removes stored audio lessons.
type AudioDeleter interface {
	Delete(filename string) error
}

// FilesHandler handles artifact listing and deletion requests.
type FilesHandler struct {
	files *store.FileStore
	audio AudioDeleter
}

// NewFilesHandler creates a FilesHandler.
func NewFilesHandler(files *store.FileStore, audio AudioDeleter) *FilesHandler {
	return &FilesHandler{files: files, audio: audio}
}

// ListFiles handles GET /api/files/{kind} requests.
func (h *FilesHandler) ListFiles(w http.ResponseWriter, r *http.Request) {
	kind, err := store.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		shared.RespondWithError(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err))
		return
	}

	infos, err := h.files.List(kind)
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to list artifacts", "kind", kind, "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to list files")
		return
	}

	items := make([]FileItem, 0, len(infos))
	for _, info := range infos {
		items = append(items, FileItem{
			Filename:    info.Filename,
			DownloadURL: info.RelativePath,
			Size:        info.Size,
		})
	}

	shared.RespondWithJSON(w, r, http.StatusOK, FileListResponse{
		Success: true,
		Kind:    string(kind),
		Files:   items,
		Count:   len(items),
	})
}

// DeleteAudio handles DELETE /api/audio/{filename} requests.
func (h *FilesHandler) DeleteAudio(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")

	if err := h.audio.Delete(filename); err != nil {
		shared.RespondWithError(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err))
		return
	}

	slog.InfoContext(r.Context(), "deleted audio lesson", "filename", filename)
	shared.RespondWithJSON(w, r, http.StatusOK, DeleteResponse{Success: true, Filename: filename})
}
