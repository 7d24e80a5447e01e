package upload

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// MaxFileSize is the upload ceiling for images.
const MaxFileSize = 2 * 1024 * 1024 // 2MB limit

var (
	// ErrNotImage is returned when the uploaded file is not an image.
	ErrNotImage = errors.New("not an image, please upload only images")
	// ErrFileTooLarge is returned when the upload exceeds MaxFileSize.
	ErrFileTooLarge = errors.New("file exceeds the 2MB upload limit")
)

// Saver persists uploaded images under a local directory that is served
// statically. Filenames are generated, never taken from client input;
// only the original extension is kept.
type Saver struct {
	dir string
}

// NewSaver creates the upload directory if needed and returns a Saver.
func NewSaver(dir string) (*Saver, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Saver{dir: dir}, nil
}

// Save validates and stores an uploaded image, returning the public path
// under /uploads that should be persisted on the record.
func (s *Saver) Save(file *multipart.FileHeader) (string, error) {
	if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
		return "", ErrNotImage
	}
	if file.Size > MaxFileSize {
		return "", ErrFileTooLarge
	}

	name := GenerateName(file.Filename)

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

	// Bound the copy as well: the size header comes from the parsed form,
	// the limit reader keeps a lying stream from writing past the ceiling.
	written, err := io.Copy(dst, io.LimitReader(src, MaxFileSize+1))
	if err != nil {
		return "", fmt.Errorf("write upload file: %w", err)
	}
	if written > MaxFileSize {
		_ = os.Remove(filepath.Join(s.dir, name))
		return "", ErrFileTooLarge
	}

	return "/uploads/" + name, nil
}

// GenerateName builds a collision-resistant filename from a millisecond
// timestamp, a random suffix and the original file's extension.
func GenerateName(original string) string {
	return fmt.Sprintf("%d-%d%s",
		time.Now().UnixMilli(),
		rand.Int64N(1_000_000_000),
		filepath.Ext(original))
}
