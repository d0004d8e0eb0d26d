package imagestore

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/lakhweratechnologies3/apptodopro/internal/app/server/config"
	"github.com/lakhweratechnologies3/apptodopro/internal/domain/attachment"
)

var ErrCloudinary = errors.New("cloudinary")

type uploadAPI interface {
	Upload(ctx context.Context, file interface{}, params uploader.UploadParams) (*uploader.UploadResult, error)
	Destroy(ctx context.Context, params uploader.DestroyParams) (*uploader.DestroyResult, error)
}

// Cloudinary хранит изображения в Cloudinary. StorageID это public_id.
type Cloudinary struct {
	api uploadAPI
}

func NewCloudinary(cfg config.Images) (*Cloudinary, error) {
	var (
		cld *cloudinary.Cloudinary
		err error
	)
	if cfg.CloudinaryURL != "" {
		cld, err = cloudinary.NewFromURL(cfg.CloudinaryURL)
	} else {
		cld, err = cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	}
	if err != nil {
		return nil, fmt.Errorf("init cloudinary: %w", err)
	}
	return &Cloudinary{api: &cld.Upload}, nil
}

func (c *Cloudinary) Upload(ctx context.Context, data []byte, folder string) (attachment.Ref, error) {
	res, err := c.api.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		Folder:       folder,
		ResourceType: "image",
	})
	if err != nil {
		return attachment.Ref{}, err
	}
	if res.Error.Message != "" {
		return attachment.Ref{}, fmt.Errorf("%w: %s", ErrCloudinary, res.Error.Message)
	}
	if res.SecureURL == "" || res.PublicID == "" {
		return attachment.Ref{}, fmt.Errorf("%w: empty upload result", ErrCloudinary)
	}
	return attachment.Ref{URL: res.SecureURL, StorageID: res.PublicID}, nil
}

func (c *Cloudinary) Delete(ctx context.Context, storageID string) error {
	res, err := c.api.Destroy(ctx, uploader.DestroyParams{PublicID: storageID})
	if err != nil {
		return err
	}
	if res.Error.Message != "" {
		return fmt.Errorf("%w: %s", ErrCloudinary, res.Error.Message)
	}
	return nil
}
