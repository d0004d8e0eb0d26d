package imagestore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/lakhweratechnologies3/apptodopro/internal/domain/attachment"
)

var ErrInvalidStorageID = errors.New("invalid storage id")

var extensions = map[string]string{
	"image/png":     ".png",
	"image/jpeg":    ".jpg",
	"image/gif":     ".gif",
	"image/webp":    ".webp",
	"image/bmp":     ".bmp",
	"image/x-icon":  ".ico",
	"image/svg+xml": ".svg",
	"image/heic":    ".heic",
	"image/heif":    ".heif",
	"image/avif":    ".avif",
}

// Local хранит изображения на диске. StorageID это путь относительно dir.
type Local struct {
	dir       string
	publicURL string
}

func NewLocal(dir, publicURL string) (*Local, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve upload dir: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Local{dir: abs, publicURL: strings.TrimRight(publicURL, "/")}, nil
}

func (l *Local) Dir() string {
	return l.dir
}

func (l *Local) Upload(ctx context.Context, data []byte, folder string) (attachment.Ref, error) {
	if err := ctx.Err(); err != nil {
		return attachment.Ref{}, err
	}

	id := path.Join(folder, uuid.NewString()+extension(data))
	target, err := l.resolve(id)
	if err != nil {
		return attachment.Ref{}, err
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return attachment.Ref{}, fmt.Errorf("create folder: %w", err)
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return attachment.Ref{}, fmt.Errorf("write image: %w", err)
	}
	return attachment.Ref{URL: l.publicURL + "/" + id, StorageID: id}, nil
}

// Delete не считает ошибкой уже удаленный файл.
func (l *Local) Delete(_ context.Context, storageID string) error {
	target, err := l.resolve(storageID)
	if err != nil {
		return err
	}
	if err := os.Remove(target); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove image: %w", err)
	}
	return nil
}

// resolve не выпускает путь за пределы dir.
func (l *Local) resolve(id string) (string, error) {
	if id == "" || filepath.IsAbs(id) {
		return "", ErrInvalidStorageID
	}
	target := filepath.Join(l.dir, filepath.FromSlash(id))
	rel, err := filepath.Rel(l.dir, target)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", ErrInvalidStorageID
	}
	return target, nil
}

func extension(data []byte) string {
	if ext, ok := extensions[attachment.ContentType(data)]; ok {
		return ext
	}
	return ".bin"
}
