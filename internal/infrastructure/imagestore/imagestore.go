// Package imagestore реализует хранилища изображений для attachment.Manager.
package imagestore

import (
	"fmt"

	"github.com/lakhweratechnologies3/apptodopro/internal/app/server/config"
	"github.com/lakhweratechnologies3/apptodopro/internal/domain/attachment"

	"golang.org/x/exp/slog"
)

// New выбирает бэкенд по конфигурации. Для ImageBackendNone возвращает nil.
func New(cfg config.Images, log *slog.Logger) (attachment.Storage, error) {
	switch backend := cfg.ResolvedBackend(); backend {
	case config.ImageBackendCloudinary:
		c, err := NewCloudinary(cfg)
		if err != nil {
			return nil, err
		}
		log.Info("image storage: cloudinary")
		return c, nil
	case config.ImageBackendLocal:
		l, err := NewLocal(cfg.LocalDir, cfg.PublicURL)
		if err != nil {
			return nil, err
		}
		log.Info("image storage: local", "dir", cfg.LocalDir)
		return l, nil
	case config.ImageBackendNone:
		log.Warn("image storage is not configured, uploads are disabled")
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown image backend %q", backend)
	}
}
