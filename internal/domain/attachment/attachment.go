// Package attachment управляет изображениями, привязанными к записям:
// загрузкой во внешнее хранилище, заменой и фоновым удалением.
package attachment

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/lakhweratechnologies3/apptodopro/internal/domain/apperr"

	"golang.org/x/exp/slog"
)

const defaultTimeout = 120 * time.Second

// Папки во внешнем хранилище.
const (
	FolderTodo      = "todo_items"
	FolderRoutine   = "routine_diary"
	FolderDashboard = "dashboard_images"
)

var (
	ErrNotConfigured    = apperr.New(apperr.ErrUpstream, "storage_not_configured", "Image storage is not configured")
	ErrUnsupportedImage = apperr.Validation("unsupported_image", "Uploaded file is not an image")
	ErrUploadTimeout    = apperr.New(apperr.ErrTimeout, "upload_timeout", "Image upload timed out")
	ErrUploadFailed     = apperr.New(apperr.ErrUpstream, "upload_failed", "Failed to upload image")
)

// Ref ссылка на загруженное изображение: публичный URL и непрозрачный id для удаления.
type Ref struct {
	URL       string
	StorageID string
}

func (r Ref) IsZero() bool {
	return r.URL == "" && r.StorageID == ""
}

// Storage внешнее хранилище изображений.
type Storage interface {
	Upload(ctx context.Context, data []byte, folder string) (Ref, error)
	Delete(ctx context.Context, storageID string) error
}

type Manager struct {
	storage Storage
	timeout time.Duration
	log     *slog.Logger
	wg      sync.WaitGroup
}

// NewManager принимает nil storage: тогда изображения не сохраняются.
func NewManager(storage Storage, timeout time.Duration, log *slog.Logger) *Manager {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Manager{
		storage: storage,
		timeout: timeout,
		log:     log.With("component", "attachment_manager"),
	}
}

func (m *Manager) Configured() bool {
	return m != nil && m.storage != nil
}

// Attach загружает изображение. Ошибка загрузки возвращается вызывающему.
func (m *Manager) Attach(ctx context.Context, data []byte, folder string) (Ref, error) {
	if !m.Configured() {
		return Ref{}, ErrNotConfigured
	}
	if !isImage(data) {
		return Ref{}, ErrUnsupportedImage
	}

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	ref, err := m.storage.Upload(ctx, data, folder)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			m.log.Error("image upload timed out", "folder", folder, "timeout", m.timeout)
			return Ref{}, fmt.Errorf("%w: %v", ErrUploadTimeout, err)
		}
		m.log.Error("failed to upload image", "folder", folder, "error", err)
		return Ref{}, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	m.log.Debug("image uploaded", "folder", folder, "storage_id", ref.StorageID)
	return ref, nil
}

// AttachOptional загружает файл, если он передан. Без настроенного
// хранилища запись сохраняется без изображения.
func (m *Manager) AttachOptional(ctx context.Context, data []byte, folder string) (Ref, error) {
	if len(data) == 0 {
		return Ref{}, nil
	}
	if !m.Configured() {
		m.skipped(folder)
		return Ref{}, nil
	}
	return m.Attach(ctx, data, folder)
}

// Change итог Apply. Запись обновляется ссылкой Ref, затем вызывается
// Commit при успешной записи или Rollback при ошибке.
type Change struct {
	Ref Ref

	stale    string
	uploaded string
}

// Apply вычисляет ссылку после обновления записи. Новый файл имеет
// приоритет над remove и загружается сразу, старое изображение удаляет только Commit.
func (m *Manager) Apply(ctx context.Context, current Ref, data []byte, remove bool, folder string) (Change, error) {
	switch {
	case len(data) > 0:
		if !m.Configured() {
			m.skipped(folder)
			return Change{Ref: current}, nil
		}
		ref, err := m.Attach(ctx, data, folder)
		if err != nil {
			return Change{Ref: current}, err
		}
		return Change{Ref: ref, stale: current.StorageID, uploaded: ref.StorageID}, nil
	case remove && !current.IsZero():
		return Change{stale: current.StorageID}, nil
	default:
		return Change{Ref: current}, nil
	}
}

// Commit удаляет замененное изображение.
func (m *Manager) Commit(ctx context.Context, c Change) {
	if c.stale == c.uploaded {
		return
	}
	m.Detach(ctx, c.stale)
}

// Rollback удаляет только что загруженное изображение, старое остается.
func (m *Manager) Rollback(ctx context.Context, c Change) {
	if c.uploaded == c.stale {
		return
	}
	m.Detach(ctx, c.uploaded)
}

// Detach удаляет объект в фоне. Ошибки только логируются.
func (m *Manager) Detach(ctx context.Context, storageID string) {
	if storageID == "" || !m.Configured() {
		return
	}

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()

		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), m.timeout)
		defer cancel()

		if err := m.storage.Delete(ctx, storageID); err != nil {
			m.log.Warn("failed to delete image", "storage_id", storageID, "error", err)
			return
		}
		m.log.Debug("image deleted", "storage_id", storageID)
	}()
}

// Wait дожидается завершения фоновых удалений.
func (m *Manager) Wait() {
	if m == nil {
		return
	}
	m.wg.Wait()
}

func (m *Manager) skipped(folder string) {
	if m == nil {
		return
	}
	m.log.Warn("image storage is not configured, image skipped", "folder", folder)
}

// Бренды ISO BMFF, которых не знает http.DetectContentType.
var bmffBrands = map[string]string{
	"heic": "image/heic",
	"heix": "image/heic",
	"hevc": "image/heic-sequence",
	"hevx": "image/heic-sequence",
	"heim": "image/heic",
	"heis": "image/heic",
	"mif1": "image/heif",
	"msf1": "image/heif-sequence",
	"avif": "image/avif",
	"avis": "image/avif",
}

// ContentType определяет тип файла по содержимому. В дополнение к
// http.DetectContentType распознает SVG, HEIC/HEIF и AVIF.
func ContentType(data []byte) string {
	ct := http.DetectContentType(data)
	if strings.HasPrefix(ct, "image/") {
		return ct
	}
	if t := bmffType(data); t != "" {
		return t
	}
	if isSVG(data) {
		return "image/svg+xml"
	}
	return ct
}

func isImage(data []byte) bool {
	return strings.HasPrefix(ContentType(data), "image/")
}

// bmffType читает коробку ftyp: основной бренд, затем совместимые.
func bmffType(data []byte) string {
	if len(data) < 12 || string(data[4:8]) != "ftyp" {
		return ""
	}
	size := int(binary.BigEndian.Uint32(data[:4]))
	if size < 16 || size > len(data) {
		size = min(len(data), 64)
	}
	for off := 8; off+4 <= size; off += 4 {
		if off == 12 {
			continue // minor version
		}
		if t, ok := bmffBrands[string(data[off:off+4])]; ok {
			return t
		}
	}
	return ""
}

func isSVG(data []byte) bool {
	head := data[:min(len(data), 1024)]
	return bytes.Contains(bytes.ToLower(head), []byte("<svg"))
}
