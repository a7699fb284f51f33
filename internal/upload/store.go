package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
)

// Store writes uploaded images into a single configured directory. Re-uploads
// with the same filename overwrite the previous file (last-write-wins).
type Store struct {
	dir string
}

// NewStore creates the upload directory when needed and returns a Store.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory files are written to.
func (s *Store) Dir() string {
	return s.dir
}

// Save buffers the uploaded file to disk and returns the stored filename,
// which is what gets recorded on the entity's image column.
func (s *Store) Save(file *multipart.FileHeader) (string, error) {
	name := sanitize(file.Filename)
	if name == "" {
		return "", fmt.Errorf("invalid upload filename %q", file.Filename)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write upload file: %w", err)
	}
	return name, nil
}

// Remove deletes a stored file. Missing files are not an error: the image
// column may reference a file that was already overwritten or cleaned up.
func (s *Store) Remove(name string) error {
	name = sanitize(name)
	if name == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// sanitize strips any path components so uploads cannot escape the store
// directory.
func sanitize(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == ".." || name == "/" {
		return ""
	}
	return name
}
