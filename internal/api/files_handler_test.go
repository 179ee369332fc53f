package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/tutor-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAudioDeleter struct {
	err     error
	deleted []string
}

func (s *stubAudioDeleter) Delete(filename string) error {
	s.deleted = append(s.deleted, filename)
	return s.err
}

func filesRouter(files *store.FileStore, audio AudioDeleter) http.Handler {
	r := chi.NewRouter()
	h := NewFilesHandler(files, audio)
	r.Get("/api/files/{kind}", h.ListFiles)
	r.Delete("/api/audio/{filename}", h.DeleteAudio)
	return r
}

func TestListFiles(t *testing.T) {
	files := newTestFileStore(t)
	_, err := files.Save(store.KindAudio, "b_lesson.mp3", []byte("two"))
	require.NoError(t, err)
	_, err = files.Save(store.KindAudio, "a_lesson.mp3", []byte("one"))
	require.NoError(t, err)

	router := filesRouter(files, &stubAudioDeleter{})

	t.Run("lists sorted artifacts", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/files/audio", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp FileListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "audio", resp.Kind)
		assert.Equal(t, 2, resp.Count)
		require.Len(t, resp.Files, 2)
		assert.Equal(t, "a_lesson.mp3", resp.Files[0].Filename)
		assert.Equal(t, "/download/audio/a_lesson.mp3", resp.Files[0].DownloadURL)
		assert.Equal(t, int64(3), resp.Files[0].Size)
	})

	t.Run("empty kind directory", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/files/image", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp FileListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 0, resp.Count)
		assert.NotNil(t, resp.Files)
	})

	t.Run("unknown kind", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/files/video", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDeleteAudio(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		deleter := &stubAudioDeleter{}
		router := filesRouter(newTestFileStore(t), deleter)

		req := httptest.NewRequest(http.MethodDelete, "/api/audio/lesson.mp3", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []string{"lesson.mp3"}, deleter.deleted)

		var resp DeleteResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "lesson.mp3", resp.Filename)
	})

	t.Run("missing file", func(t *testing.T) {
		deleter := &stubAudioDeleter{err: store.ErrFileNotFound}
		router := filesRouter(newTestFileStore(t), deleter)

		req := httptest.NewRequest(http.MethodDelete, "/api/audio/nope.mp3", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "File not found", decodeBodyString(t, w.Body.Bytes(), "error"))
	})

	t.Run("unexpected error", func(t *testing.T) {
		deleter := &stubAudioDeleter{err: errors.New("disk on fire")}
		router := filesRouter(newTestFileStore(t), deleter)

		req := httptest.NewRequest(http.MethodDelete, "/api/audio/lesson.mp3", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "disk on fire")
	})
}

func decodeBodyString(t *testing.T, body []byte, key string) string {
	t.Helper()
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &m))
	s, _ := m[key].(string)
	return s
}
