package store

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	s, err := NewFileStore(t.TempDir(), slog.New(slog.NewTextHandler(os.Stderr, nil)))
	require.NoError(t, err)
	return s
}

func TestNewFileStoreCreatesKindDirectories(t *testing.T) {
	root := t.TempDir()
	_, err := NewFileStore(root, slog.Default())
	require.NoError(t, err)

	for _, kind := range []Kind{KindCode, KindAudio, KindImage} {
		info, err := os.Stat(filepath.Join(root, string(kind)))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestParseKind(t *testing.T) {
	for _, valid := range []string{"code", "audio", "image"} {
		kind, err := ParseKind(valid)
		assert.NoError(t, err)
		assert.Equal(t, Kind(valid), kind)
	}

	_, err := ParseKind("video")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestSave(t *testing.T) {
	t.Run("writes file and reports web path", func(t *testing.T) {
		s := newTestStore(t)

		info, err := s.Save(KindCode, "Gradient_Descent_20240101_120000.py", []byte("print('hi')"))
		require.NoError(t, err)

		assert.Equal(t, "Gradient_Descent_20240101_120000.py", info.Filename)
		assert.Equal(t, "/download/code/Gradient_Descent_20240101_120000.py", info.RelativePath)
		assert.Equal(t, int64(len("print('hi')")), info.Size)

		data, err := os.ReadFile(info.Path)
		require.NoError(t, err)
		assert.Equal(t, "print('hi')", string(data))
	})

	t.Run("collision appends numeric suffix instead of overwriting", func(t *testing.T) {
		s := newTestStore(t)

		first, err := s.Save(KindCode, "topic_20240101_120000.py", []byte("first"))
		require.NoError(t, err)
		second, err := s.Save(KindCode, "topic_20240101_120000.py", []byte("second"))
		require.NoError(t, err)

		assert.Equal(t, "topic_20240101_120000.py", first.Filename)
		assert.Equal(t, "topic_20240101_120000_1.py", second.Filename)

		data, err := os.ReadFile(first.Path)
		require.NoError(t, err)
		assert.Equal(t, "first", string(data))
	})

	t.Run("rejects path traversal", func(t *testing.T) {
		s := newTestStore(t)

		_, err := s.Save(KindCode, "../escape.py", []byte("x"))
		assert.ErrorIs(t, err, ErrInvalidFilename)
	})
}

func TestPath(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Save(KindAudio, "lesson.mp3", []byte("mp3"))
	require.NoError(t, err)

	t.Run("existing file", func(t *testing.T) {
		path, err := s.Path(KindAudio, "lesson.mp3")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(s.Dir(KindAudio), "lesson.mp3"), path)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := s.Path(KindAudio, "nope.mp3")
		assert.ErrorIs(t, err, ErrFileNotFound)
	})

	t.Run("traversal rejected", func(t *testing.T) {
		_, err := s.Path(KindAudio, "../../etc/passwd")
		assert.ErrorIs(t, err, ErrInvalidFilename)
	})
}

func TestList(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Save(KindImage, "b_diagram.png", []byte("png"))
	require.NoError(t, err)
	_, err = s.Save(KindImage, "a_diagram.png", []byte("png"))
	require.NoError(t, err)
	_, err = s.Save(KindImage, "notes.txt", []byte("txt"))
	require.NoError(t, err)

	infos, err := s.List(KindImage, ".png", ".jpg", ".jpeg")
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, "a_diagram.png", infos[0].Filename)
	assert.Equal(t, "b_diagram.png", infos[1].Filename)
	assert.Equal(t, "/download/image/a_diagram.png", infos[0].RelativePath)
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Save(KindAudio, "lesson.mp3", []byte("mp3"))
	require.NoError(t, err)

	require.NoError(t, s.Delete(KindAudio, "lesson.mp3"))

	_, err = s.Path(KindAudio, "lesson.mp3")
	assert.ErrorIs(t, err, ErrFileNotFound)

	assert.ErrorIs(t, s.Delete(KindAudio, "lesson.mp3"), ErrFileNotFound)
}
