package store

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Kind identifies the type of artifact a file holds. Each kind maps to its
// own subdirectory of the output root.
type Kind string

const (
	KindCode  Kind = "code"
	KindAudio Kind = "audio"
	KindImage Kind = "image"
)

// ParseKind validates a kind string from the request path.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindCode, KindAudio, KindImage:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// FileInfo describes a stored artifact.
type FileInfo struct {
	Filename     string `json:"filename"`
	Path         string `json:"-"`
	RelativePath string `json:"relative_path"`
	Size         int64  `json:"size"`
}

// maxCollisionRetries bounds the numeric-suffix search when two requests
// derive the same timestamped filename in the same second.
const maxCollisionRetries = 10

// FileStore owns the output directory tree for generated artifacts.
type FileStore struct {
	root   string
	logger *slog.Logger
}

// NewFileStore creates the per-kind subdirectories under root and returns a
// store rooted there.
func NewFileStore(root string, logger *slog.Logger) (*FileStore, error) {
	if root == "" {
		return nil, fmt.Errorf("output root cannot be empty")
	}
	for _, kind := range []Kind{KindCode, KindAudio, KindImage} {
		dir := filepath.Join(root, string(kind))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}
	return &FileStore{root: root, logger: logger}, nil
}

// Dir returns the absolute directory for a kind.
func (s *FileStore) Dir(kind Kind) string {
	return filepath.Join(s.root, string(kind))
}

// Save writes data to a new file under the kind's directory. Files are
// created with O_EXCL; when the derived name already exists (two requests in
// the same second) a numeric suffix is appended before the extension rather
// than overwriting. Returns the info of the file actually written.
func (s *FileStore) Save(kind Kind, filename string, data []byte) (FileInfo, error) {
	if err := validateFilename(filename); err != nil {
		return FileInfo{}, err
	}

	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filename, ext)

	for attempt := 0; attempt < maxCollisionRetries; attempt++ {
		name := filename
		if attempt > 0 {
			name = fmt.Sprintf("%s_%d%s", base, attempt, ext)
		}
		path := filepath.Join(s.Dir(kind), name)

		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if os.IsExist(err) {
			s.logger.Debug("filename collision, retrying with suffix",
				"kind", kind, "filename", name)
			continue
		}
		if err != nil {
			return FileInfo{}, fmt.Errorf("failed to create %s file: %w", kind, err)
		}

		if _, err := f.Write(data); err != nil {
			_ = f.Close()
			_ = os.Remove(path)
			return FileInfo{}, fmt.Errorf("failed to write %s file: %w", kind, err)
		}
		if err := f.Close(); err != nil {
			return FileInfo{}, fmt.Errorf("failed to close %s file: %w", kind, err)
		}

		return FileInfo{
			Filename:     name,
			Path:         path,
			RelativePath: RelativePath(kind, name),
			Size:         int64(len(data)),
		}, nil
	}

	return FileInfo{}, fmt.Errorf("failed to find a free filename for %s after %d attempts",
		filename, maxCollisionRetries)
}

// Path resolves a stored filename to its absolute path, rejecting names
// that would escape the kind's directory. Returns ErrFileNotFound when the
// file does not exist.
func (s *FileStore) Path(kind Kind, filename string) (string, error) {
	if err := validateFilename(filename); err != nil {
		return "", err
	}
	path := filepath.Join(s.Dir(kind), filename)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrFileNotFound, filename)
		}
		return "", fmt.Errorf("failed to stat %s: %w", filename, err)
	}
	return path, nil
}

// List returns the stored artifacts of a kind whose extension is in exts
// (all files when exts is empty), sorted by filename.
func (s *FileStore) List(kind Kind, exts ...string) ([]FileInfo, error) {
	entries, err := os.ReadDir(s.Dir(kind))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s directory: %w", kind, err)
	}

	infos := make([]FileInfo, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !matchesExt(entry.Name(), exts) {
			continue
		}
		fi, err := entry.Info()
		if err != nil {
			continue
		}
		infos = append(infos, FileInfo{
			Filename:     entry.Name(),
			Path:         filepath.Join(s.Dir(kind), entry.Name()),
			RelativePath: RelativePath(kind, entry.Name()),
			Size:         fi.Size(),
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Filename < infos[j].Filename })
	return infos, nil
}

// Delete removes a stored artifact. Returns ErrFileNotFound when the file
// does not exist.
func (s *FileStore) Delete(kind Kind, filename string) error {
	path, err := s.Path(kind, filename)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to delete %s: %w", filename, err)
	}
	s.logger.Info("deleted artifact", "kind", kind, "filename", filename)
	return nil
}

// RelativePath is the web path a stored artifact is served from.
func RelativePath(kind Kind, filename string) string {
	return "/download/" + string(kind) + "/" + filename
}

func validateFilename(filename string) error {
	if filename == "" {
		return fmt.Errorf("%w: empty", ErrInvalidFilename)
	}
	if strings.ContainsAny(filename, `/\`) || filename != filepath.Base(filename) {
		return fmt.Errorf("%w: %q", ErrInvalidFilename, filename)
	}
	return nil
}

func matchesExt(name string, exts []string) bool {
	if len(exts) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(name))
	for _, want := range exts {
		if ext == want {
			return true
		}
	}
	return false
}
